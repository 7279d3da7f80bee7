// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
)

type (
	// ActionableError is a failure reported to the user together with what fakerhelp
	// was doing, the file or name involved and how to recover.
	//
	//	return issue.New("load configuration", err,
	//		issue.On(path),
	//		issue.Suggest("Run 'fakerhelp config init' to create one"),
	//		issue.Catalog(issue.ConfigLoadFailedId))
	ActionableError struct {
		Operation   string
		Resource    string
		Suggestions []string
		// Issue is the catalog entry with background on this failure, or zero.
		Issue Id
		Cause error
	}

	// Option adds detail to an ActionableError.
	Option func(*ActionableError)
)

// New reports that operation failed because of cause. It returns nil for a nil cause.
func New(operation string, cause error, opts ...Option) *ActionableError {
	if cause == nil {
		return nil
	}
	e := &ActionableError{Operation: operation, Cause: cause}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// On names the file or entity the operation was working on.
func On(resource string) Option {
	return func(e *ActionableError) { e.Resource = resource }
}

// Suggest appends recovery hints.
func Suggest(hints ...string) Option {
	return func(e *ActionableError) { e.Suggestions = append(e.Suggestions, hints...) }
}

// Catalog links the error to an issue catalog entry.
func Catalog(id Id) Option {
	return func(e *ActionableError) { e.Issue = id }
}

// Error returns "failed to <operation>[: <resource>]: <cause>".
func (e *ActionableError) Error() string {
	parts := []string{"failed to " + e.Operation}
	if e.Resource != "" {
		parts = append(parts, e.Resource)
	}
	if e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}
	return strings.Join(parts, ": ")
}

// Unwrap returns the cause.
func (e *ActionableError) Unwrap() error { return e.Cause }

// Format renders the message with one bullet per suggestion. Verbose output also
// lists every error in the cause chain.
func (e *ActionableError) Format(verbose bool) string {
	var sb strings.Builder
	sb.WriteString(e.Error())

	if len(e.Suggestions) > 0 {
		sb.WriteString("\n")
		for _, s := range e.Suggestions {
			sb.WriteString("\n  • " + s)
		}
	}

	if verbose && e.Cause != nil {
		sb.WriteString("\n\nError chain:")
		n := 0
		for err := e.Cause; err != nil; err = errors.Unwrap(err) {
			n++
			fmt.Fprintf(&sb, "\n  %d. %s", n, err)
		}
	}

	return sb.String()
}

// CatalogEntry returns the catalog entry linked from err's chain, or nil.
func CatalogEntry(err error) *Issue {
	var ae *ActionableError
	if !errors.As(err, &ae) || ae.Issue == 0 {
		return nil
	}
	return Get(ae.Issue)
}
