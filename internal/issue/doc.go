// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable errors and a catalog of Markdown help texts.
//
// ActionableError carries the failed operation, the resource involved and suggestions
// for the user. The catalog holds longer guidance, rendered with glamour, that the CLI
// prints for recoverable conditions such as unknown provider or function names.
package issue
