// SPDX-License-Identifier: MPL-2.0

// Package explorer answers questions about the providers and generator functions of a
// fake-data library: which providers exist, which functions each one owns, and which
// provider or function a user-supplied name refers to.
//
// The Explorer is read-only. Every query is answered from the registry it was built with,
// and lookups that match nothing return a *NotFoundError wrapping ErrNotFound.
package explorer
