// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Namespace is the root of every qualified provider name.
const Namespace = "gofakeit"

var (
	// ErrInvalidEntry is the sentinel error wrapped by InvalidEntryError.
	ErrInvalidEntry = errors.New("invalid registry entry")
	// ErrDuplicateFunction is returned when two entries share a function name.
	ErrDuplicateFunction = errors.New("duplicate function")
)

type (
	// GenerateFunc produces one fake value using the given facade and string parameters.
	GenerateFunc func(f *gofakeit.Faker, params map[string][]string) (any, error)

	// Param describes one parameter accepted by a generator function.
	Param struct {
		Field       string
		Display     string
		Type        string
		Optional    bool
		Default     string
		Options     []string
		Description string
	}

	// Entry is a single generator function as published by a Source.
	Entry struct {
		// Name is the lookup key of the function (e.g., "ipv4address").
		Name string
		// Category groups functions into providers. Empty means the base provider.
		// Dots nest a category below another namespace (e.g., "text.word").
		Category    string
		Display     string
		Description string
		Example     string
		Output      string
		ContentType string
		Params      []Param
		// Generate is nil for metadata-only entries.
		Generate GenerateFunc
	}

	// Source publishes generator metadata.
	Source interface {
		Entries() []Entry
	}

	// StaticSource is a Source backed by a fixed slice of entries.
	StaticSource []Entry

	// Provider is a themed group of generator functions.
	Provider struct {
		// QualifiedName is the dotted path of the provider (e.g., "gofakeit.internet").
		QualifiedName string
		// Name is the last segment of QualifiedName (e.g., "internet").
		Name string
		// Base marks the provider that owns uncategorized functions.
		Base bool
	}

	// Function is a generator function owned by exactly one provider.
	Function struct {
		Entry
		// QualifiedName is "<owner name>.<function name>" (e.g., "internet.url").
		QualifiedName string
		// Provider is the qualified name of the owning provider.
		Provider string
	}

	// Registry is the immutable provider and function table built from a Source.
	Registry struct {
		base      Provider
		providers []Provider
		functions map[string]Function
	}

	// InvalidEntryError is returned by Build for an entry that cannot be registered.
	InvalidEntryError struct {
		Index  int
		Reason string
	}
)

// Entries returns the entries unchanged.
func (s StaticSource) Entries() []Entry { return s }

// Error implements the error interface.
func (e *InvalidEntryError) Error() string {
	return fmt.Sprintf("entry %d: %s", e.Index, e.Reason)
}

// Unwrap returns ErrInvalidEntry for errors.Is() compatibility.
func (e *InvalidEntryError) Unwrap() error { return ErrInvalidEntry }

// Callable reports whether the function can be invoked.
func (fn Function) Callable() bool { return fn.Generate != nil }

// Call invokes the generator with the facade and the given parameters.
// Parameters that are not supplied fall back to the generator's defaults.
func (fn Function) Call(f *gofakeit.Faker, params map[string][]string) (any, error) {
	if fn.Generate == nil {
		return nil, fmt.Errorf("function %q is not callable", fn.Name)
	}
	if params == nil {
		params = map[string][]string{}
	}
	return fn.Generate(f, params)
}

// Build validates the source entries and assembles a Registry.
func Build(src Source) (*Registry, error) {
	r := &Registry{
		base: Provider{
			QualifiedName: Namespace,
			Name:          Namespace,
			Base:          true,
		},
		functions: make(map[string]Function),
	}

	byName := make(map[string]Provider)
	for i, e := range src.Entries() {
		if strings.TrimSpace(e.Name) == "" {
			return nil, &InvalidEntryError{Index: i, Reason: "empty function name"}
		}
		if _, exists := r.functions[e.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateFunction, e.Name)
		}

		owner := r.base
		if e.Category != "" {
			if strings.HasPrefix(e.Category, ".") || strings.HasSuffix(e.Category, ".") {
				return nil, &InvalidEntryError{Index: i, Reason: fmt.Sprintf("malformed category %q", e.Category)}
			}
			owner = newProvider(e.Category)
			byName[owner.QualifiedName] = owner
		}

		r.functions[e.Name] = Function{
			Entry:         e,
			QualifiedName: owner.Name + "." + e.Name,
			Provider:      owner.QualifiedName,
		}
	}

	r.providers = maps.Values(byName)
	slices.SortFunc(r.providers, func(a, b Provider) int {
		return strings.Compare(a.QualifiedName, b.QualifiedName)
	})

	return r, nil
}

func newProvider(category string) Provider {
	qualified := Namespace + "." + category
	return Provider{
		QualifiedName: qualified,
		Name:          qualified[strings.LastIndex(qualified, ".")+1:],
	}
}

// Base returns the provider that owns uncategorized functions.
func (r *Registry) Base() Provider { return r.base }

// Providers returns every provider including the base provider, sorted by qualified name.
func (r *Registry) Providers() []Provider {
	out := make([]Provider, 0, len(r.providers)+1)
	out = append(out, r.base)
	out = append(out, r.providers...)
	slices.SortFunc(out, func(a, b Provider) int {
		return strings.Compare(a.QualifiedName, b.QualifiedName)
	})
	return out
}

// Functions returns every registered function sorted by name.
func (r *Registry) Functions() []Function {
	out := maps.Values(r.functions)
	slices.SortFunc(out, func(a, b Function) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// Lookup returns the function registered under name.
func (r *Registry) Lookup(name string) (Function, bool) {
	fn, ok := r.functions[name]
	return fn, ok
}

// Len returns the number of registered functions.
func (r *Registry) Len() int { return len(r.functions) }
