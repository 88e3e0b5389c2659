// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package draft202012

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/altshiftab/jsonvalidate/internal/uri"
	"github.com/altshiftab/jsonvalidate/internal/validerr"
	"github.com/altshiftab/jsonvalidate/pkg/jsonpointer"
	"github.com/altshiftab/jsonvalidate/pkg/types"
)

// errNoRetrieve is the cause of an unresolved reference
// to a document when there is no way to retrieve it.
var errNoRetrieve = errors.New("remote loading not permitted")

// target returns the lazily resolved target of the absolute
// reference ref found in the schema from.
// Lookups may run during concurrent validations, so they
// hold the loader's lock.
func (l *loader) target(ref string, from *types.Schema) *types.RefTarget {
	return types.NewRefTarget(func() (*types.Schema, error) {
		l.mu.Lock()
		defer l.mu.Unlock()
		return l.lookup(ref, from)
	})
}

// fragmentAnchor returns the anchor named by the fragment of ref,
// or "" if the fragment is a JSON pointer.
func fragmentAnchor(ref string) string {
	_, frag := uri.Split(ref)
	if uri.IsPointer(frag) {
		return ""
	}
	name, err := uri.Anchor(frag)
	if err != nil {
		return ""
	}
	return name
}

// bookends reports whether a "$dynamicRef" whose fragment names
// anchor, and whose initial target is target, is resolved through
// the dynamic scope. Otherwise it behaves like a "$ref".
func bookends(anchor string, target *types.Schema) bool {
	if anchor == "" {
		return false
	}
	_, ok := target.Resource.DynamicAnchors[anchor]
	return ok
}

// lookup returns the schema to which the absolute reference ref,
// found in the schema from, refers.
func (l *loader) lookup(ref string, from *types.Schema) (*types.Schema, error) {
	unresolved := func(err error) error {
		return &validerr.UnresolvedReference{Ref: ref, From: from.Location(), Err: err}
	}

	resURI, frag := uri.Split(ref)
	res, err := l.resource(resURI, unresolved)
	if err != nil {
		return nil, err
	}

	if !uri.IsPointer(frag) {
		name, err := uri.Anchor(frag)
		if err != nil {
			return nil, unresolved(err)
		}
		s, ok := res.Anchors[name]
		if !ok {
			return nil, unresolved(fmt.Errorf("no anchor %q in %s", name, res.URI))
		}
		return s, nil
	}

	if frag == "" {
		if s, ok := res.SchemaAt(""); ok {
			return s, nil
		}
	}
	toks, err := jsonpointer.Parse(frag)
	if err != nil {
		return nil, unresolved(err)
	}
	ptr := jsonpointer.Format(toks)
	loc := uri.Join(res.URI, ptr)
	if err, ok := l.loadErrs[loc]; ok {
		return nil, err
	}
	if s, ok := res.SchemaAt(ptr); ok {
		return s, nil
	}

	// The pointer leads somewhere the loader did not walk,
	// such as an unknown keyword. Compile the value found there.
	v, err := jsonpointer.DerefTokens(res.Value, toks)
	if err != nil {
		return nil, unresolved(err)
	}
	l.logger.Debug("compiling schema at reference target", "uri", res.URI, "pointer", ptr)
	var s *types.Schema
	if err := l.compileLate(loc, func() { s = l.compile(v, []location{{res, ptr}}) }); err != nil {
		return nil, err
	}
	return s, nil
}

// resource returns the resource with the absolute URI resURI,
// loading its document if necessary.
// unresolved converts a retrieval failure to the error to return.
func (l *loader) resource(resURI string, unresolved func(error) error) (*types.Resource, error) {
	if err, ok := l.loadErrs[resURI]; ok {
		return nil, err
	}
	if err, ok := l.retrieveErrs[resURI]; ok {
		return nil, unresolved(err)
	}
	if res, ok := l.resources[resURI]; ok {
		return res, nil
	}

	doc, ok, err := checkMetaSchema(resURI)
	if err != nil {
		return nil, unresolved(err)
	}
	if ok {
		l.logger.Debug("using embedded meta-schema", "uri", resURI)
	} else {
		if l.opts.Retrieve == nil {
			return nil, unresolved(errNoRetrieve)
		}
		l.logger.Debug("retrieving schema document", "uri", resURI)
		doc, err = l.opts.Retrieve(resURI)
		if err != nil {
			l.retrieveErrs[resURI] = err
			return nil, unresolved(err)
		}
	}

	var res *types.Resource
	err = l.compileLate(resURI, func() {
		res = l.addResource(resURI, doc)
		l.compile(doc, []location{{res, ""}})
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// compileLate runs compile, which compiles a schema after Load
// has returned, and returns the problems it finds.
// If there are any, key and every resource compile registered
// are remembered as failed, so later references to them fail
// the same way.
func (l *loader) compileLate(key string, compile func()) error {
	l.errs = nil
	added := len(l.added)
	compile()
	err := l.err()
	l.errs = nil
	if err == nil {
		return nil
	}
	l.loadErrs[key] = err
	for _, resURI := range l.added[added:] {
		l.loadErrs[resURI] = err
	}
	return err
}

// ResolveAll looks up the target of every reference reachable
// from s, following references into other resources, and
// returns the problems found. Without ResolveAll a reference
// is looked up only when it is first evaluated.
func ResolveAll(s *types.Schema) error {
	var errs *multierror.Error
	seen := make(map[*types.Schema]bool)
	work := []*types.Schema{s}
	for len(work) > 0 {
		next := work[len(work)-1]
		work = work[:len(work)-1]
		for sub := range next.All() {
			if seen[sub] {
				continue
			}
			seen[sub] = true
			for _, part := range sub.Parts {
				var t *types.RefTarget
				switch v := part.Value.(type) {
				case types.PartRef:
					t = v.Target
				case types.PartDynamicRef:
					t = v.Target
				default:
					continue
				}
				target, err := t.Schema()
				if err != nil {
					errs = multierror.Append(errs, err)
					continue
				}
				if !seen[target] {
					work = append(work, target)
				}
			}
		}
	}
	if errs == nil {
		return nil
	}
	if len(errs.Errors) == 1 {
		return errs.Errors[0]
	}
	return errs
}
