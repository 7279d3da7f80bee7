// SPDX-License-Identifier: MPL-2.0

// Package cmd implements the fakerhelp command tree: listing gofakeit providers,
// rendering help for providers and functions, searching function names and the
// configuration and completion utilities around them.
package cmd
