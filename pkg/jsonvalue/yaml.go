// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonvalue

import (
	"math"
	"strconv"

	"github.com/go-faster/errors"
	"gopkg.in/yaml.v3"
)

// FromYAML decodes a YAML document into a Value.
// Mapping order is preserved. Only the JSON-compatible subset of YAML
// is accepted: mapping keys must be strings, and numbers must be finite.
func FromYAML(data []byte) (Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Value{}, errors.Wrap(err, "invalid yaml")
	}
	if doc.Kind == 0 {
		// Empty input.
		return Null(), nil
	}
	return fromNode(&doc)
}

func fromNode(n *yaml.Node) (Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null(), nil
		}
		return fromNode(n.Content[0])
	case yaml.AliasNode:
		return fromNode(n.Alias)
	case yaml.SequenceNode:
		items := make([]Value, 0, len(n.Content))
		for i, c := range n.Content {
			v, err := fromNode(c)
			if err != nil {
				return Value{}, errors.Wrapf(err, "[%d]", i)
			}
			items = append(items, v)
		}
		return Array(items...), nil
	case yaml.MappingNode:
		obj := &Object{}
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if k.Kind != yaml.ScalarNode {
				return Value{}, errors.Errorf("line %d: mapping key is not a scalar", k.Line)
			}
			val, err := fromNode(v)
			if err != nil {
				return Value{}, errors.Wrapf(err, "%q", k.Value)
			}
			obj.Set(k.Value, val)
		}
		return ObjectOf(obj), nil
	case yaml.ScalarNode:
		return fromScalar(n)
	default:
		return Value{}, errors.Errorf("line %d: unsupported yaml node kind %d", n.Line, n.Kind)
	}
}

func fromScalar(n *yaml.Node) (Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return Null(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return Value{}, errors.Wrapf(err, "line %d", n.Line)
		}
		return Bool(b), nil
	case "!!int":
		if v, err := Number(n.Value); err == nil {
			return v, nil
		}
		var i int64
		if err := n.Decode(&i); err != nil {
			return Value{}, errors.Wrapf(err, "line %d", n.Line)
		}
		return Int(i), nil
	case "!!float":
		if v, err := Number(n.Value); err == nil {
			return v, nil
		}
		var f float64
		if err := n.Decode(&f); err != nil {
			return Value{}, errors.Wrapf(err, "line %d", n.Line)
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Value{}, errors.Errorf("line %d: %s is not a JSON number", n.Line, n.Value)
		}
		return Number(strconv.FormatFloat(f, 'g', -1, 64))
	default:
		return String(n.Value), nil
	}
}
