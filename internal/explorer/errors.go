// SPDX-License-Identifier: MPL-2.0

package explorer

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

const (
	// KindProvider identifies a provider lookup.
	KindProvider Kind = "provider"
	// KindFunction identifies a generator function lookup.
	KindFunction Kind = "function"
)

// ErrNotFound is the sentinel error wrapped by NotFoundError.
var ErrNotFound = errors.New("not found")

type (
	// Kind names the kind of entity a lookup was searching for.
	Kind string

	// NotFoundError is returned when no provider or function has the requested name.
	// It wraps ErrNotFound for errors.Is() compatibility.
	NotFoundError struct {
		Kind Kind
		Name string
	}
)

// Error renders the user-facing message, e.g. "No Faker provider named 'foo'".
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("No Faker %s named %s", e.Kind, Quote(e.Name))
}

// Unwrap returns ErrNotFound for errors.Is() compatibility.
func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// Quote renders a user-supplied name in single quotes, switching to double quotes
// when the name contains a single quote but no double quote. Backslashes, the
// enclosing quote and non-printable characters are escaped.
func Quote(name string) string {
	q := '\''
	if strings.ContainsRune(name, '\'') && !strings.ContainsRune(name, '"') {
		q = '"'
	}

	var sb strings.Builder
	sb.WriteRune(q)
	for _, r := range name {
		switch {
		case r == q || r == '\\':
			sb.WriteRune('\\')
			sb.WriteRune(r)
		case r == '\n':
			sb.WriteString(`\n`)
		case r == '\r':
			sb.WriteString(`\r`)
		case r == '\t':
			sb.WriteString(`\t`)
		case unicode.IsPrint(r):
			sb.WriteRune(r)
		case r < 0x100:
			fmt.Fprintf(&sb, `\x%02x`, r)
		case r < 0x10000:
			fmt.Fprintf(&sb, `\u%04x`, r)
		default:
			fmt.Fprintf(&sb, `\U%08x`, r)
		}
	}
	sb.WriteRune(q)
	return sb.String()
}
