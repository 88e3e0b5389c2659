// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package draft202012

import (
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/dlclark/regexp2"
	"github.com/hashicorp/go-multierror"

	"github.com/altshiftab/jsonvalidate/internal/argtype"
	"github.com/altshiftab/jsonvalidate/internal/uri"
	"github.com/altshiftab/jsonvalidate/internal/validerr"
	"github.com/altshiftab/jsonvalidate/pkg/jsonpointer"
	"github.com/altshiftab/jsonvalidate/pkg/jsonvalue"
	"github.com/altshiftab/jsonvalidate/pkg/types"
)

// DefaultBaseURI is the URI of a root schema that has no "$id".
const DefaultBaseURI = "urn:validator:root"

// LoadOpts are options for [Load]. These are all optional.
type LoadOpts struct {
	// BaseURI is the URI of the document when it has no "$id".
	// It must be absolute. The default is [DefaultBaseURI].
	BaseURI string

	// Retrieve returns the schema document at an absolute URI
	// without fragment. It is called when a reference to a document
	// that is neither part of the schema nor an embedded meta-schema
	// is first evaluated, at most once per URI.
	// It may be called by concurrent validations, but never
	// twice at the same time.
	// If Retrieve is nil every such reference fails.
	Retrieve func(uri string) (jsonvalue.Value, error)

	// Logger receives debug messages. Nil means no logging.
	Logger *slog.Logger
}

// location is the position of a schema within a resource.
type location struct {
	res *types.Resource
	ptr string
}

// loader holds state while loading a schema and the
// documents it refers to. It lives as long as the schema,
// since references are resolved as they are evaluated.
type loader struct {
	opts   LoadOpts
	logger *slog.Logger

	// mu guards the fields below once Load has returned.
	mu        sync.Mutex
	resources map[string]*types.Resource
	// added lists resource URIs in registration order.
	added []string
	// retrieveErrs holds the documents Retrieve failed to return.
	retrieveErrs map[string]error
	// loadErrs holds the problems of documents and schemas
	// compiled after Load returned, by URI.
	loadErrs map[string]error
	errs     *multierror.Error
}

// Load compiles the schema document doc.
// The result may be used by concurrent validations.
//
// Structural problems in a document are reported together as
// [validerr.SchemaLoadError] and [validerr.RegexCompileError] values.
//
// A "$ref" or "$dynamicRef" is not followed until it is first
// evaluated, when other documents are loaded as needed.
// A reference that cannot be resolved then fails that validation
// with a [validerr.UnresolvedReference]; references that are never
// evaluated do not matter. See [ResolveAll].
func Load(doc jsonvalue.Value, opts *LoadOpts) (*types.Schema, error) {
	l := &loader{
		resources:    make(map[string]*types.Resource),
		retrieveErrs: make(map[string]error),
		loadErrs:     make(map[string]error),
	}
	if opts != nil {
		l.opts = *opts
	}
	l.logger = l.opts.Logger
	if l.logger == nil {
		l.logger = slog.New(slog.DiscardHandler)
	}

	base := l.opts.BaseURI
	if base == "" {
		base = DefaultBaseURI
	}
	base, err := uri.Normalize(base)
	if err != nil {
		return nil, &validerr.SchemaLoadError{URI: l.opts.BaseURI, Message: "bad base URI", Err: err}
	}
	if uri.HasFragment(base) {
		return nil, &validerr.SchemaLoadError{URI: base, Message: "base URI has a fragment"}
	}

	res := l.addResource(base, doc)
	root := l.compile(doc, []location{{res, ""}})
	if err := l.err(); err != nil {
		return nil, err
	}
	return root, nil
}

// err returns the errors found so far, if any.
func (l *loader) err() error {
	if l.errs == nil || len(l.errs.Errors) == 0 {
		return nil
	}
	if len(l.errs.Errors) == 1 {
		return l.errs.Errors[0]
	}
	return l.errs
}

// fail records a structural problem with the schema at loc.
func (l *loader) fail(loc location, msg string, err error) {
	l.errs = multierror.Append(l.errs, &validerr.SchemaLoadError{
		URI:     loc.res.URI,
		Pointer: loc.ptr,
		Message: msg,
		Err:     err,
	})
}

// addResource registers a new resource.
func (l *loader) addResource(resURI string, v jsonvalue.Value) *types.Resource {
	res := types.NewResource(resURI, v)
	l.resources[resURI] = res
	l.added = append(l.added, resURI)
	l.logger.Debug("registered schema resource", "uri", resURI)
	return res
}

// compile compiles the schema v. locs holds every location of v,
// innermost resource first; the schema is registered at each,
// so that a JSON pointer from an enclosing resource reaches it.
func (l *loader) compile(v jsonvalue.Value, locs []location) *types.Schema {
	here := locs[0]
	if s, ok := here.res.SchemaAt(here.ptr); ok {
		return s
	}

	switch v.Kind() {
	case jsonvalue.KindBool:
		b, _ := v.AsBool()
		s := types.NewBoolSchema(b, here.res, here.ptr)
		l.register(s, locs)
		return s
	case jsonvalue.KindObject:
	default:
		l.fail(here, fmt.Sprintf("schema must be an object or a boolean, not %s", v.Kind()), nil)
		return types.NewBoolSchema(false, here.res, here.ptr)
	}

	obj := v.Object()
	if idv, ok := obj.Get("$id"); ok {
		if res := l.enterResource(idv, v, here); res != nil {
			locs = append([]location{{res, ""}}, locs...)
			here = locs[0]
		}
	}

	s := &types.Schema{
		Resource: here.res,
		Pointer:  here.ptr,
	}
	l.register(s, locs)

	for name, val := range obj.All() {
		kw := Vocabulary.Lookup(name)
		if kw == nil {
			// Unknown keywords are kept but never evaluated,
			// and nothing beneath them is a schema.
			unknown := &types.Keyword{Name: name, ArgType: types.ArgTypeAny}
			s.Parts = append(s.Parts, types.MakePart(unknown, types.PartAny{V: val}))
			continue
		}
		if pv, ok := l.parsePart(s, kw, val, locs); ok {
			s.Parts = append(s.Parts, types.MakePart(kw, pv))
		}
	}

	s.Finalize(Vocabulary)
	return s
}

// register records s at each of its locations.
func (l *loader) register(s *types.Schema, locs []location) {
	for _, loc := range locs {
		loc.res.AddSchema(loc.ptr, s)
		if loc.ptr == "" && loc.res.Root == nil {
			loc.res.Root = s
		}
	}
}

// enterResource handles the "$id" of the schema v at loc.
// It returns the new resource, or nil if v does not start one.
func (l *loader) enterResource(idv, v jsonvalue.Value, loc location) *types.Resource {
	id, ok := idv.AsString()
	if !ok {
		l.fail(loc, `"$id" must be a string`, nil)
		return nil
	}
	abs, err := uri.Resolve(loc.res.URI, id)
	if err != nil {
		l.fail(loc, `malformed "$id"`, err)
		return nil
	}
	resURI, frag := uri.Split(abs)
	if frag != "" {
		l.fail(loc, fmt.Sprintf(`"$id" %q has a non-empty fragment`, id), nil)
		return nil
	}
	if resURI == loc.res.URI {
		// A document whose "$id" is the URI it was loaded from.
		return nil
	}
	if _, dup := l.resources[resURI]; dup {
		l.fail(loc, fmt.Sprintf("duplicate schema resource %q", resURI), nil)
		return nil
	}
	return l.addResource(resURI, v)
}

// parsePart converts the value of keyword kw to a part value.
// It reports false if the value is malformed.
func (l *loader) parsePart(s *types.Schema, kw *types.Keyword, val jsonvalue.Value, locs []location) (types.PartValue, bool) {
	here := locs[0]
	bad := func() (types.PartValue, bool) {
		l.fail(here, fmt.Sprintf("%q must be %s", kw.Name, argtype.Describe(kw.ArgType)), nil)
		return nil, false
	}
	// sub returns the locations of the subschema at
	// the given tokens below the keyword.
	sub := func(toks ...string) []location {
		ret := make([]location, len(locs))
		for i, loc := range locs {
			ret[i] = location{loc.res, jsonpointer.Append(loc.ptr, append([]string{kw.Name}, toks...)...)}
		}
		return ret
	}

	switch kw.ArgType {
	case types.ArgTypeBool:
		b, ok := val.AsBool()
		if !ok {
			return bad()
		}
		return types.PartBool(b), true

	case types.ArgTypeString:
		str, ok := val.AsString()
		if !ok {
			if kw.Name == "$id" {
				// Reported by enterResource.
				return nil, false
			}
			return bad()
		}
		switch kw.Name {
		case "$anchor":
			l.addAnchor(s, here, str, false)
		case "$dynamicAnchor":
			l.addAnchor(s, here, str, true)
		}
		return types.PartString(str), true

	case types.ArgTypeStrings:
		strs, ok := stringArray(val)
		if !ok {
			return bad()
		}
		return types.PartStrings(strs), true

	case types.ArgTypeStringOrStrings:
		if str, ok := val.AsString(); ok {
			if !validTypeName(str) {
				l.fail(here, fmt.Sprintf("unknown type %q", str), nil)
				return nil, false
			}
			return types.PartStringOrStrings{String: str}, true
		}
		strs, ok := stringArray(val)
		if !ok {
			return bad()
		}
		for _, str := range strs {
			if !validTypeName(str) {
				l.fail(here, fmt.Sprintf("unknown type %q", str), nil)
				return nil, false
			}
		}
		return types.PartStringOrStrings{Strings: strs}, true

	case types.ArgTypeInt:
		n, ok := val.AsInt()
		if !ok || n < 0 {
			return bad()
		}
		return types.PartInt(n), true

	case types.ArgTypeNumber:
		if !val.IsNumber() {
			return bad()
		}
		if kw.Name == "multipleOf" && val.Rat().Sign() <= 0 {
			l.fail(here, `"multipleOf" must be greater than 0`, nil)
			return nil, false
		}
		return types.PartNumber{V: val}, true

	case types.ArgTypeSchema:
		return types.PartSchema{S: l.compile(val, sub())}, true

	case types.ArgTypeSchemas:
		items := val.Items()
		if val.Kind() != jsonvalue.KindArray || len(items) == 0 {
			return bad()
		}
		schemas := make(types.PartSchemas, len(items))
		for i, item := range items {
			schemas[i] = l.compile(item, sub(strconv.Itoa(i)))
		}
		return schemas, true

	case types.ArgTypeMapSchema:
		obj := val.Object()
		if obj == nil {
			return bad()
		}
		m := make(types.PartMapSchema, obj.Len())
		for k, v := range obj.All() {
			m[k] = l.compile(v, sub(k))
		}
		return m, true

	case types.ArgTypeMapStrings:
		obj := val.Object()
		if obj == nil {
			return bad()
		}
		m := make(types.PartMapStrings, obj.Len())
		for k, v := range obj.All() {
			strs, ok := stringArray(v)
			if !ok {
				return bad()
			}
			m[k] = strs
		}
		return m, true

	case types.ArgTypePatternSchemas:
		obj := val.Object()
		if obj == nil {
			return bad()
		}
		var ps types.PartPatternSchemas
		for k, v := range obj.All() {
			re, ok := l.compileRegexp(k, here, kw.Name)
			if !ok {
				continue
			}
			ps = append(ps, types.PatternSchema{
				Pattern: k,
				Re:      re,
				Schema:  l.compile(v, sub(k)),
			})
		}
		return ps, true

	case types.ArgTypeRegexp:
		str, ok := val.AsString()
		if !ok {
			return bad()
		}
		re, ok := l.compileRegexp(str, here, kw.Name)
		if !ok {
			return nil, false
		}
		return types.PartRegexp{Pattern: str, Re: re}, true

	case types.ArgTypeRef, types.ArgTypeDynamicRef:
		str, ok := val.AsString()
		if !ok {
			return bad()
		}
		ref, err := uri.Resolve(here.res.URI, str)
		if err != nil {
			l.fail(here, fmt.Sprintf("malformed %q", kw.Name), err)
			return nil, false
		}
		if kw.ArgType == types.ArgTypeRef {
			return types.PartRef{Ref: ref, Target: l.target(ref, s)}, true
		}
		return types.PartDynamicRef{Ref: ref, Target: l.target(ref, s), Anchor: fragmentAnchor(ref)}, true

	case types.ArgTypeValues:
		if val.Kind() != jsonvalue.KindArray {
			return bad()
		}
		return types.PartValues(val.Items()), true

	case types.ArgTypeAny:
		return types.PartAny{V: val}, true

	default:
		panic(fmt.Sprintf("keyword %s: unexpected argument type %d", kw.Name, kw.ArgType))
	}
}

// addAnchor registers an anchor declared by s.
func (l *loader) addAnchor(s *types.Schema, loc location, name string, dynamic bool) {
	if !validAnchor(name) {
		l.fail(loc, fmt.Sprintf("invalid anchor name %q", name), nil)
		return
	}
	res := loc.res
	if old, ok := res.Anchors[name]; ok && old != s {
		l.fail(loc, fmt.Sprintf("duplicate anchor %q in %s", name, res.URI), nil)
		return
	}
	res.Anchors[name] = s
	if dynamic {
		res.DynamicAnchors[name] = s
	}
}

// compileRegexp compiles an ECMA-262 regular expression
// used by the keyword kw of the schema at loc.
func (l *loader) compileRegexp(pattern string, loc location, kw string) (*regexp2.Regexp, bool) {
	re, err := regexp2.Compile(pattern, regexp2.ECMAScript)
	if err != nil {
		l.errs = multierror.Append(l.errs, &validerr.RegexCompileError{
			Pattern:  pattern,
			Location: uri.Join(loc.res.URI, jsonpointer.Append(loc.ptr, kw)),
			Err:      err,
		})
		return nil, false
	}
	return re, true
}

// stringArray returns the elements of an array of strings.
func stringArray(v jsonvalue.Value) ([]string, bool) {
	if v.Kind() != jsonvalue.KindArray {
		return nil, false
	}
	items := v.Items()
	strs := make([]string, len(items))
	for i, item := range items {
		str, ok := item.AsString()
		if !ok {
			return nil, false
		}
		strs[i] = str
	}
	return strs, true
}

// validTypeName reports whether t is a value of the "type" keyword.
func validTypeName(t string) bool {
	switch t {
	case "null", "boolean", "integer", "number", "string", "array", "object":
		return true
	}
	return false
}

// validAnchor reports whether name matches ^[A-Za-z_][-A-Za-z0-9._]*$.
func validAnchor(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c == '_':
		case i > 0 && (c >= '0' && c <= '9' || c == '-' || c == '.'):
		default:
			return false
		}
	}
	return true
}
