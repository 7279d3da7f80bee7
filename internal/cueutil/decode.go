// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// DefaultMaxFileSize bounds the size of a document accepted by Decode (1MB).
const DefaultMaxFileSize int64 = 1 << 20

type (
	decodeOptions struct {
		maxFileSize int64
		concrete    bool
		filename    string
	}

	// Option configures Decode.
	Option func(*decodeOptions)
)

// WithMaxFileSize sets the maximum accepted document size in bytes.
func WithMaxFileSize(size int64) Option {
	return func(o *decodeOptions) { o.maxFileSize = size }
}

// WithConcrete requires every value to be concrete after unification.
// Configuration files leave optional fields unset, so the default is false.
func WithConcrete(concrete bool) Option {
	return func(o *decodeOptions) { o.concrete = concrete }
}

// WithFilename sets the file name reported in errors.
func WithFilename(name string) Option {
	return func(o *decodeOptions) { o.filename = name }
}

// Decode compiles schema, unifies data with the definition at schemaPath (e.g. "#Config"),
// validates the result and decodes it into a T.
func Decode[T any](schema, data []byte, schemaPath string, opts ...Option) (*T, error) {
	o := decodeOptions{maxFileSize: DefaultMaxFileSize, filename: "<input>"}
	for _, opt := range opts {
		opt(&o)
	}

	if int64(len(data)) > o.maxFileSize {
		return nil, fmt.Errorf("%s: file size %d bytes exceeds maximum %d bytes", o.filename, len(data), o.maxFileSize)
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileBytes(schema)
	if schemaValue.Err() != nil {
		return nil, fmt.Errorf("internal error: failed to compile schema: %w", schemaValue.Err())
	}
	root := schemaValue.LookupPath(cue.ParsePath(schemaPath))
	if root.Err() != nil {
		return nil, fmt.Errorf("internal error: schema definition %s not found: %w", schemaPath, root.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(o.filename))
	if userValue.Err() != nil {
		return nil, FormatError(userValue.Err(), o.filename)
	}

	unified := root.Unify(userValue)
	if err := unified.Validate(cue.Concrete(o.concrete)); err != nil {
		return nil, FormatError(err, o.filename)
	}

	var out T
	if err := unified.Decode(&out); err != nil {
		return nil, FormatError(err, o.filename)
	}
	return &out, nil
}
