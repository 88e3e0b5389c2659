// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonschema validates JSON values against
// JSON Schema draft 2020-12 schemas.
//
// The simplest entry point is [Validate]:
//
//	ok, err := jsonschema.Validate(instance, schema, nil)
//
// ok reports whether the instance satisfies the schema.
// err is non-nil only when validation could not be carried out:
// the schema is malformed, a reference cannot be resolved,
// or a pattern is not a valid regular expression.
// An instance that does not satisfy the schema is never an error.
//
// To validate many instances against one schema, [Compile] it once.
// To validate against many schemas that share remote documents,
// use a [Validator].
package jsonschema

import (
	"context"
	"fmt"
	"log/slog"
	"maps"

	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"

	"github.com/altshiftab/jsonvalidate/internal/schemacache"
	"github.com/altshiftab/jsonvalidate/internal/uri"
	"github.com/altshiftab/jsonvalidate/internal/validerr"
	"github.com/altshiftab/jsonvalidate/pkg/draft202012"
	"github.com/altshiftab/jsonvalidate/pkg/format"
	"github.com/altshiftab/jsonvalidate/pkg/jsonvalue"
	"github.com/altshiftab/jsonvalidate/pkg/types"
)

// DefaultBaseURI is the URI of a root schema that has no "$id".
const DefaultBaseURI = draft202012.DefaultBaseURI

// MetaSchemaURI is the URI of the draft 2020-12 meta-schema.
// It and its vocabulary meta-schemas are always available
// without fetching.
const MetaSchemaURI = draft202012.SchemaID

// Options are options for compiling and validating.
// The zero value is ready to use.
type Options struct {
	// DefaultBaseURI is the URI of the root schema when it
	// has no "$id". It must be absolute and have no fragment.
	// The default is [DefaultBaseURI].
	DefaultBaseURI string

	// Preloaded maps absolute URIs to schema documents.
	// They are consulted before Fetch.
	Preloaded map[string]jsonvalue.Value

	// Fetch retrieves the schema document at an absolute URI
	// without fragment. It is called when a reference to the
	// document is first evaluated, at most once per URI for each
	// compiled schema, and never concurrently for one schema.
	// If Fetch is nil, references to documents that are not
	// preloaded fail.
	Fetch func(ctx context.Context, uri string) (jsonvalue.Value, error)

	// Context is passed to Fetch. The default is context.Background().
	Context context.Context

	// FormatAssertion makes the format keyword an assertion.
	// By default it is only an annotation.
	FormatAssertion bool

	// Formats adds to or replaces the format checkers
	// used when FormatAssertion is set. See [format.Checkers].
	Formats map[string]format.Checker

	// Logger receives debug messages. Nil means no logging.
	Logger *slog.Logger
}

// Schema is a compiled schema.
// A Schema is immutable and may be used by concurrent goroutines.
type Schema struct {
	root *types.Schema
	doc  jsonvalue.Value
	opts *types.ValidateOpts
}

// Validate reports whether instance satisfies the schema.
// The error is non-nil only for a fatal problem,
// such as unbounded recursion.
func (s *Schema) Validate(instance jsonvalue.Value) (bool, error) {
	ok, err := s.root.ValidateWithOpts(instance, s.opts)
	if err != nil {
		return false, motmedelErrors.NewWithTrace(err)
	}
	return ok, nil
}

// ResolveAll resolves every reference reachable from the schema,
// fetching documents as needed, and returns the problems found.
// A schema whose references all resolve never fails validation
// with an [UnresolvedReference].
func (s *Schema) ResolveAll() error {
	if err := draft202012.ResolveAll(s.root); err != nil {
		return motmedelErrors.NewWithTrace(err)
	}
	return nil
}

// Document returns the schema document s was compiled from.
func (s *Schema) Document() jsonvalue.Value {
	return s.doc
}

// String returns the location of the root schema.
func (s *Schema) String() string {
	return s.root.Location()
}

// Compile compiles a schema document.
// A reference is resolved when it is first evaluated, compiling
// the preloaded or fetched document it leads to; a reference that
// is never evaluated is never fetched. Fetch is called at most once
// per URI for the life of the returned Schema. Use
// [Schema.ResolveAll] to resolve every reference at once.
func Compile(schema jsonvalue.Value, opts *Options) (*Schema, error) {
	if opts == nil {
		opts = &Options{}
	}
	docs := new(schemacache.Cache)
	return compile(schema, opts, func(u string) (jsonvalue.Value, error) {
		return docs.Retrieve(u, opts.fetch)
	})
}

// compile compiles schema, retrieving documents that are
// not preloaded with retrieve.
func compile(schema jsonvalue.Value, opts *Options, retrieve func(string) (jsonvalue.Value, error)) (*Schema, error) {
	preloaded, err := opts.preloaded()
	if err != nil {
		return nil, motmedelErrors.NewWithTrace(err)
	}
	root, err := draft202012.Load(schema, &draft202012.LoadOpts{
		BaseURI: opts.DefaultBaseURI,
		Retrieve: func(u string) (jsonvalue.Value, error) {
			if doc, ok := preloaded[u]; ok {
				opts.logger().Debug("using preloaded schema document", "uri", u)
				return doc, nil
			}
			return retrieve(u)
		},
		Logger: opts.Logger,
	})
	if err != nil {
		return nil, motmedelErrors.NewWithTrace(err)
	}
	return &Schema{root: root, doc: schema, opts: opts.validateOpts()}, nil
}

// Validate reports whether instance satisfies schema.
// It compiles schema on every call; see [Compile] and [Validator]
// to reuse the work.
func Validate(instance, schema jsonvalue.Value, opts *Options) (bool, error) {
	s, err := Compile(schema, opts)
	if err != nil {
		return false, err
	}
	return s.Validate(instance)
}

// New parses and compiles a schema from JSON text
// with default options.
func New(data []byte) (*Schema, error) {
	v, err := jsonvalue.Parse(data)
	if err != nil {
		return nil, motmedelErrors.NewWithTrace(&validerr.InvalidJSON{Err: err})
	}
	return Compile(v, nil)
}

// CheckSchema reports whether schema is valid against
// the draft 2020-12 meta-schema.
func CheckSchema(schema jsonvalue.Value) (bool, error) {
	meta, err := metaSchema()
	if err != nil {
		return false, err
	}
	return meta.Validate(schema)
}

// metaSchema compiles a schema that refers to the meta-schema.
func metaSchema() (*Schema, error) {
	ref := jsonvalue.ObjectOf(jsonvalue.NewObject(jsonvalue.Member{
		Key:   "$ref",
		Value: jsonvalue.String(MetaSchemaURI),
	}))
	return Compile(ref, nil)
}

// fetch calls the Fetch hook.
func (o *Options) fetch(u string) (jsonvalue.Value, error) {
	if o.Fetch == nil {
		return jsonvalue.Value{}, fmt.Errorf("no document preloaded for %s and no fetch hook", u)
	}
	ctx := o.Context
	if ctx == nil {
		ctx = context.Background()
	}
	o.logger().Debug("fetching schema document", "uri", u)
	return o.Fetch(ctx, u)
}

// preloaded returns the preloaded documents keyed by normalized URI.
func (o *Options) preloaded() (map[string]jsonvalue.Value, error) {
	m := make(map[string]jsonvalue.Value, len(o.Preloaded))
	for k, v := range o.Preloaded {
		n, err := uri.Normalize(k)
		if err != nil {
			return nil, &validerr.SchemaLoadError{URI: k, Message: "bad preloaded URI", Err: err}
		}
		n, frag := uri.Split(n)
		if frag != "" {
			return nil, &validerr.SchemaLoadError{URI: k, Message: "preloaded URI has a fragment"}
		}
		m[n] = v
	}
	return m, nil
}

// validateOpts returns the evaluation options.
func (o *Options) validateOpts() *types.ValidateOpts {
	if !o.FormatAssertion {
		return nil
	}
	formats := format.Checkers()
	maps.Copy(formats, o.Formats)
	return &types.ValidateOpts{FormatAssertion: true, Formats: formats}
}

func (o *Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}
