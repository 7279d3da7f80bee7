// SPDX-License-Identifier: MPL-2.0

// Package helpdoc produces the reference text shown by `fakerhelp provider` and
// `fakerhelp func`. Documents are assembled as Markdown from registry metadata and
// rendered for the terminal with glamour.
package helpdoc
