// SPDX-License-Identifier: MPL-2.0

package explorer

import (
	"io"
	"iter"
	"strings"

	"github.com/fakerhelp/fakerhelp/internal/registry"

	"github.com/charmbracelet/log"
	"golang.org/x/exp/slices"
)

type (
	// Explorer enumerates and resolves provider and function metadata.
	Explorer struct {
		reg    *registry.Registry
		seed   uint64
		logger *log.Logger
	}

	// Option configures an Explorer.
	Option func(*Explorer)

	// Callable is a resolved generator function bound to the facade it was looked up on.
	Callable struct {
		registry.Function
		facade *registry.Facade
	}
)

// WithSeed sets the seed of the facades built by ResolveFunction and SearchFunctionNames.
// Zero, the default, seeds randomly.
func WithSeed(seed uint64) Option {
	return func(e *Explorer) { e.seed = seed }
}

// WithLogger sets the logger used for lookup diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(e *Explorer) { e.logger = logger }
}

// New creates an Explorer over reg.
func New(reg *registry.Registry, opts ...Option) *Explorer {
	e := &Explorer{reg: reg}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}
	return e
}

// ListProviders returns every provider except the base provider, sorted by qualified name.
func (e *Explorer) ListProviders() []registry.Provider {
	base := e.reg.Base()
	var providers []registry.Provider
	for _, p := range e.reg.Providers() {
		if p == base {
			continue
		}
		providers = append(providers, p)
	}
	return providers
}

// ListProviderFunctions returns the public, callable functions owned directly by p,
// sorted by name.
func (e *Explorer) ListProviderFunctions(p registry.Provider) []registry.Function {
	prefix := p.Name + "."

	var funcs []registry.Function
	for _, fn := range e.reg.Functions() {
		if fn.Provider != p.QualifiedName ||
			!strings.HasPrefix(fn.QualifiedName, prefix) ||
			strings.HasPrefix(fn.Name, "_") ||
			!fn.Callable() {
			continue
		}
		funcs = append(funcs, fn)
	}

	slices.SortFunc(funcs, func(a, b registry.Function) int {
		return strings.Compare(a.Name, b.Name)
	})
	return funcs
}

// FindProviders returns every provider whose short name equals name exactly,
// in qualified-name order.
func (e *Explorer) FindProviders(name string) ([]registry.Provider, error) {
	var matches []registry.Provider
	for _, p := range e.ListProviders() {
		if p.Name == name {
			matches = append(matches, p)
		}
	}
	if len(matches) == 0 {
		return nil, &NotFoundError{Kind: KindProvider, Name: name}
	}
	return matches, nil
}

// FindProvider returns the provider whose short name equals name. When several
// providers share the short name, the first in qualified-name order wins and the
// others are reported through the logger.
func (e *Explorer) FindProvider(name string) (registry.Provider, error) {
	matches, err := e.FindProviders(name)
	if err != nil {
		return registry.Provider{}, err
	}
	if len(matches) > 1 {
		others := make([]string, 0, len(matches)-1)
		for _, p := range matches[1:] {
			others = append(others, p.QualifiedName)
		}
		e.logger.Warn("ambiguous provider name",
			"name", name,
			"using", matches[0].QualifiedName,
			"ignored", strings.Join(others, ", "))
	}
	return matches[0], nil
}

// ResolveFunction builds a fresh facade and looks up name on it.
func (e *Explorer) ResolveFunction(name string) (Callable, error) {
	facade := e.reg.NewFacade(e.seed)
	fn, ok := facade.Lookup(name)
	if !ok {
		return Callable{}, &NotFoundError{Kind: KindFunction, Name: name}
	}
	e.logger.Debug("resolved function", "name", name, "provider", fn.Provider)
	return Callable{Function: fn, facade: facade}, nil
}

// SearchFunctionNames yields, in sorted order, every facade function name that
// contains substr. Each iteration rebuilds the facade.
func (e *Explorer) SearchFunctionNames(substr string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, name := range e.reg.NewFacade(e.seed).Names() {
			if !strings.Contains(name, substr) {
				continue
			}
			if !yield(name) {
				return
			}
		}
	}
}

// Invoke calls the function on its facade with the given parameters.
func (c Callable) Invoke(params map[string][]string) (any, error) {
	return c.Call(c.facade.Faker(), params)
}
