// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sax

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// FuzzChunkInvariance checks that feeding a corpus of arbitrary input in
// one shot produces the same tokens and the same error (if any) as
// feeding it one byte at a time. This is the chunk-invariance property:
// the Tokenizer's output must never depend on how the caller happened
// to slice the input into chunks.
func FuzzChunkInvariance(f *testing.F) {
	seeds := []string{
		`<a><b>text</b></a>`,
		`<!-- comment --><![CDATA[raw <data>]]>`,
		`<?xml version="1.0"?>`,
		`<self closed="attr"/>`,
		`</mismatch>`,
		`<a><b></a>`,
		`<!DOCTYPE html>`,
		`<!-- a -- b -->`,
		`< bad>`,
		`<unterminated`,
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		whole, wholeErr := New().Parse(input)

		byteAtATime := New()
		var chunked []Token
		var chunkedErr error
		for i := 0; i < len(input) && chunkedErr == nil; i++ {
			var toks []Token
			toks, chunkedErr = byteAtATime.Feed(input[i : i+1])
			chunked = append(chunked, toks...)
		}
		if chunkedErr == nil {
			var toks []Token
			toks, chunkedErr = byteAtATime.Finish()
			chunked = append(chunked, toks...)
		}

		if (wholeErr == nil) != (chunkedErr == nil) {
			t.Fatalf("error mismatch: whole=%v chunked=%v, input=%q", wholeErr, chunkedErr, input)
		}
		if wholeErr != nil && chunkedErr != nil && wholeErr.Error() != chunkedErr.Error() {
			t.Fatalf("error text mismatch: whole=%q chunked=%q, input=%q", wholeErr, chunkedErr, input)
		}
		if diff := cmp.Diff(whole, chunked); diff != "" {
			t.Fatalf("token mismatch for input %q (-whole +chunked)\n%s", input, diff)
		}
	})
}
