// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// keywordgen generates the keyword table of a schema draft
// from JSON files that describe the keywords.
// This is normally invoked by "go generate" in the draft package.
//
// Usage:
//
//	keywordgen -p package -o output.go keywords.json...
//
// Each input file holds an object with a "keywords" array.
// Keywords are evaluated in the order they are listed;
// the "after" list of a keyword names keywords that must come first.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"

	"github.com/altshiftab/jsonvalidate/internal/argtype"
)

var (
	pkg = flag.String("p", "", "package name")
	out = flag.String("o", "keywords.go", "output file")
)

// keywordsData is the contents of a keyword file.
type keywordsData struct {
	Keywords []keywordData `json:"keywords"`
}

// keywordData describes a single keyword.
type keywordData struct {
	Name     string   `json:"name"`
	ArgType  string   `json:"argType"`
	Validate string   `json:"validate"`
	After    []string `json:"after"`
	Comment  string   `json:"comment"`
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("keywordgen: ")
	flag.Parse()
	if *pkg == "" || flag.NArg() == 0 {
		log.Fatal("usage: keywordgen -p package -o output.go keywords.json...")
	}

	var keywords []keywordData
	for _, file := range flag.Args() {
		data, err := os.ReadFile(file)
		if err != nil {
			log.Fatal(err)
		}
		var kd keywordsData
		if err := json.Unmarshal(data, &kd); err != nil {
			log.Fatalf("%s: %v", file, err)
		}
		keywords = append(keywords, kd.Keywords...)
	}

	src, err := generate(*pkg, keywords)
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatal(err)
	}
}

// generate returns the formatted source of the keyword table.
func generate(pkg string, keywords []keywordData) ([]byte, error) {
	ranked, err := rankKeywords(keywords)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	fmt.Fprintln(&buf, "// Code generated by keywordgen. DO NOT EDIT.")
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "package %s\n", pkg)
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "import (")
	fmt.Fprintln(&buf, "\t\"cmp\"")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "\t\"github.com/altshiftab/jsonvalidate/internal/validator\"")
	fmt.Fprintln(&buf, "\t\"github.com/altshiftab/jsonvalidate/pkg/types\"")
	fmt.Fprintln(&buf, ")")

	for _, k := range keywords {
		at, err := argtype.Parse(k.ArgType)
		if err != nil {
			return nil, fmt.Errorf("%s: %v", k.Name, err)
		}
		fmt.Fprintln(&buf)
		if k.Comment != "" {
			fmt.Fprintf(&buf, "// %s\n", k.Comment)
		} else {
			fmt.Fprintf(&buf, "// %s is the %s keyword.\n", varName(k.Name), k.Name)
		}
		fmt.Fprintf(&buf, "var %s = types.Keyword{\n", varName(k.Name))
		fmt.Fprintf(&buf, "\tName: %q,\n", k.Name)
		fmt.Fprintf(&buf, "\tArgType: types.%s,\n", argtype.Const(at))
		if k.Validate != "" {
			fmt.Fprintf(&buf, "\tValidate: validator.Wrap(%s),\n", k.Validate)
		}
		fmt.Fprintln(&buf, "}")
	}

	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "// keywordMap maps keyword names to keywords.")
	fmt.Fprintln(&buf, "var keywordMap = map[string]*types.Keyword{")
	for _, k := range keywords {
		fmt.Fprintf(&buf, "\t%q: &%s,\n", k.Name, varName(k.Name))
	}
	fmt.Fprintln(&buf, "}")
	fmt.Fprintln(&buf)

	printKeywordsSort(&buf, ranked)

	return format.Source(buf.Bytes())
}

// varName returns the name of the variable holding a keyword.
func varName(name string) string {
	return strings.TrimPrefix(name, "$") + "Keyword"
}
