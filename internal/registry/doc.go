// SPDX-License-Identifier: MPL-2.0

// Package registry builds the static provider and function tables that fakerhelp explores.
//
// Fake-data libraries in Go do not expose a class hierarchy that can be scanned at runtime.
// Instead, gofakeit publishes structured metadata for every generator it ships
// (gofakeit.FuncLookups). A Source adapts such metadata into Entry values, and Build turns
// the entries into a Registry: one Provider per category, and a name-to-Function table
// covering every generator, including those that belong to no category.
//
// Entries without a category are owned by the base provider. The base provider is kept in
// the registry so callers can tell it apart, but it is never a real provider.
package registry
