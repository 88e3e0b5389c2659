// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argtype

import (
	"testing"

	"github.com/altshiftab/jsonvalidate/pkg/types"
)

func TestTables(t *testing.T) {
	for name, at := range byName {
		got, err := Parse(name)
		if err != nil || got != at {
			t.Errorf("Parse(%q) = %v, %v, want %v", name, got, err, at)
		}
		if Const(at) == "" {
			t.Errorf("no constant name for %q", name)
		}
		if _, ok := descriptions[at]; !ok {
			t.Errorf("no description for %q", name)
		}
	}
	if len(byName) != int(types.ArgTypeAny) {
		t.Errorf("byName has %d entries, want %d", len(byName), types.ArgTypeAny)
	}
}

func TestParseUnknown(t *testing.T) {
	if _, err := Parse("float"); err == nil {
		t.Error("Parse(float) succeeded, want error")
	}
}
