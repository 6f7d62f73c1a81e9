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
	"strings"

	"github.com/Goodwine/triemap"
)

// tagStack tracks the names of tags that have been opened but not yet
// closed, bottom of stack first. It only exists to detect mismatched
// close tags; it never drives emission.
//
// Repeated tag names (the common case: thousands of <item> in a feed)
// are interned through a trie: each distinct name is copied once, and
// every stack entry for it shares that copy instead of pointing into
// the chunk it was read from. The same trick the teacher's
// Decoder.names field plays for tag/attribute identifiers. The trie
// keeps every distinct name pushed during the Tokenizer's lifetime.
type tagStack struct {
	names    []string
	interned triemap.RuneSliceMap
}

// push records name as freshly opened.
func (s *tagStack) push(name string) {
	s.names = append(s.names, s.intern(name))
}

// pop removes and returns the most recently opened name. ok is false
// when the stack was already empty, in which case the returned name is
// always "".
func (s *tagStack) pop() (name string, ok bool) {
	n := len(s.names)
	if n == 0 {
		return "", false
	}
	name = s.names[n-1]
	s.names = s.names[:n-1]
	return name, true
}

// clear discards all open tags, used once a mismatch has already been
// reported fatally.
func (s *tagStack) clear() {
	s.names = s.names[:0]
}

func (s *tagStack) empty() bool {
	return len(s.names) == 0
}

// snapshot returns the open names bottom-to-top, for the "Unclosed
// tags: ..." error at Finish.
func (s *tagStack) snapshot() []string {
	return append([]string(nil), s.names...)
}

func (s *tagStack) intern(name string) string {
	key := []rune(name)
	if v, ok := s.interned.Get(key); ok {
		return v.(string)
	}
	name = strings.Clone(name)
	s.interned.Put(key, name)
	return name
}
