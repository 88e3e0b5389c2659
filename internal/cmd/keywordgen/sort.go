// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
)

// rankKeywords returns the keywords in evaluation order.
// That is the order of the input, which must list every keyword
// after the keywords named in its After field.
// Sorting keywords ensures that a keyword sees any required annotations.
func rankKeywords(keywords []keywordData) ([]keywordData, error) {
	rank := make(map[string]int, len(keywords))
	for i, k := range keywords {
		if _, dup := rank[k.Name]; dup {
			return nil, fmt.Errorf("keyword %s listed twice", k.Name)
		}
		rank[k.Name] = i
	}
	for i, k := range keywords {
		for _, a := range k.After {
			r, ok := rank[a]
			if !ok {
				return nil, fmt.Errorf("keyword %s: unknown keyword %s in after list", k.Name, a)
			}
			if r > i {
				return nil, fmt.Errorf("keyword %s must be listed after %s", k.Name, a)
			}
		}
	}
	return keywords, nil
}

// printKeywordsSort writes out the keyword sorting function.
// Keywords that are not in the table rank first;
// they never affect validation.
func printKeywordsSort(sortBuf *bytes.Buffer, ranked []keywordData) {
	fmt.Fprintln(sortBuf, "// sortRank is the ranking of each keyword when sorting")
	fmt.Fprintln(sortBuf, "var sortRank = map[string]int{")
	for i, r := range ranked {
		fmt.Fprintf(sortBuf, "\t%q: %d,\n", r.Name, i+1)
	}
	fmt.Fprintln(sortBuf, "}")
	fmt.Fprintln(sortBuf)

	fmt.Fprintln(sortBuf, "// keywordCmp is the keyword comparison routine.")
	fmt.Fprintln(sortBuf, "func keywordCmp(a, b string) int {")
	fmt.Fprintln(sortBuf, "\treturn cmp.Compare(sortRank[a], sortRank[b])")
	fmt.Fprintln(sortBuf, "}")
}
