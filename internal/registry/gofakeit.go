// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"github.com/brianvoe/gofakeit/v7"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type (
	gofakeitSource struct {
		lookups map[string]gofakeit.Info
	}

	// Facade is a gofakeit instance paired with the registry's name-to-function table.
	// It stands in for the library's single entry object exposing every generator by name.
	Facade struct {
		faker     *gofakeit.Faker
		functions map[string]Function
	}
)

// Gofakeit returns a Source over the generators gofakeit registers at init time.
func Gofakeit() Source {
	return &gofakeitSource{lookups: gofakeit.FuncLookups}
}

// Entries converts gofakeit lookup metadata into registry entries, ordered by name.
func (s *gofakeitSource) Entries() []Entry {
	names := maps.Keys(s.lookups)
	slices.Sort(names)

	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		entries = append(entries, entryFromInfo(name, s.lookups[name]))
	}
	return entries
}

func entryFromInfo(name string, info gofakeit.Info) Entry {
	e := Entry{
		Name:        name,
		Category:    info.Category,
		Display:     info.Display,
		Description: info.Description,
		Example:     info.Example,
		Output:      info.Output,
		ContentType: info.ContentType,
	}
	for _, p := range info.Params {
		e.Params = append(e.Params, Param{
			Field:       p.Field,
			Display:     p.Display,
			Type:        p.Type,
			Optional:    p.Optional,
			Default:     p.Default,
			Options:     slices.Clone(p.Options),
			Description: p.Description,
		})
	}
	if info.Generate != nil {
		e.Generate = func(f *gofakeit.Faker, params map[string][]string) (any, error) {
			mp := gofakeit.NewMapParams()
			for field, values := range params {
				for _, v := range values {
					mp.Add(field, v)
				}
			}
			return info.Generate(f, mp, &info)
		}
	}
	return e
}

// NewFacade creates a facade seeded with seed. A zero seed draws a random seed.
func (r *Registry) NewFacade(seed uint64) *Facade {
	return &Facade{
		faker:     gofakeit.New(seed),
		functions: r.functions,
	}
}

// Faker returns the underlying gofakeit instance.
func (f *Facade) Faker() *gofakeit.Faker { return f.faker }

// Lookup returns the function exposed under name.
func (f *Facade) Lookup(name string) (Function, bool) {
	fn, ok := f.functions[name]
	return fn, ok
}

// Names returns the name of every function exposed by the facade, sorted.
func (f *Facade) Names() []string {
	names := maps.Keys(f.functions)
	slices.Sort(names)
	return names
}
