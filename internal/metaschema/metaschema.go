// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metaschema serves the meta-schema documents embedded
// by the draft packages.
package metaschema

import (
	"embed"
	"fmt"
	"io/fs"
	"net/url"
	"strings"

	"github.com/altshiftab/jsonvalidate/internal/schemacache"
	"github.com/altshiftab/jsonvalidate/pkg/jsonvalue"
)

// metaCache is a cache of the parsed meta-schemas.
// We use a single cache since they shouldn't change.
var metaCache = schemacache.NewConcurrent[jsonvalue.Value](64, 0)

// Load checks whether uri refers to a meta-schema in metaFS,
// and returns the document if it does. If uri is not a meta-schema,
// the bool result is false. metaFS is for schemaID,
// and prefix is the URI path prefix of its documents.
func Load(schemaID, prefix string, metaFS *embed.FS, uri string) (jsonvalue.Value, bool, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return jsonvalue.Value{}, false, nil
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return jsonvalue.Value{}, false, nil
	}
	if u.Host != "json-schema.org" {
		return jsonvalue.Value{}, false, nil
	}
	path, ok := strings.CutPrefix(u.Path, prefix)
	if !ok {
		return jsonvalue.Value{}, false, nil
	}

	file := "metaschema/" + path + ".json"
	if _, err := fs.Stat(metaFS, file); err != nil {
		return jsonvalue.Value{}, false, nil
	}

	v, _, err := metaCache.Fetch(schemaID+" "+path, func() (jsonvalue.Value, error) {
		data, err := metaFS.ReadFile(file)
		if err != nil {
			return jsonvalue.Value{}, fmt.Errorf("can't read meta-schema URI %q: %v", uri, err)
		}
		v, err := jsonvalue.Parse(data)
		if err != nil {
			return jsonvalue.Value{}, fmt.Errorf("can't parse meta-schema URI %q: %v", uri, err)
		}
		return v, nil
	})
	if err != nil {
		return jsonvalue.Value{}, true, err
	}
	return v, true, nil
}
