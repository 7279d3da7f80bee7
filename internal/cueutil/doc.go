// SPDX-License-Identifier: MPL-2.0

// Package cueutil validates CUE documents against an embedded schema and decodes
// them into Go values. Errors name the offending field in JSON-path notation.
package cueutil
