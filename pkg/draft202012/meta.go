// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package draft202012

import (
	"embed"

	"github.com/altshiftab/jsonvalidate/internal/metaschema"
	"github.com/altshiftab/jsonvalidate/pkg/jsonvalue"
)

//go:embed metaschema/*.json metaschema/*/*.json
var metaFS embed.FS

// checkMetaSchema checks whether uri refers to the meta-schema
// or one of its vocabularies, and returns the document if it does.
// If uri is not a meta-schema, the bool result is false.
func checkMetaSchema(uri string) (jsonvalue.Value, bool, error) {
	return metaschema.Load(SchemaID, "/draft/2020-12/", &metaFS, uri)
}
