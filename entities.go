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
	"strconv"
	"strings"
	"unicode/utf8"
)

// ExpandEntities returns a copy of s with recognized XML character
// entities replaced by the character they denote. Unrecognized or
// malformed references, including ones missing a terminating ';', are
// left exactly as they appear in s. ExpandEntities never fails: a
// reference it can't expand is just not a reference as far as it's
// concerned.
//
// Recognized references: the five predefined named entities (&amp;
// &lt; &gt; &quot; &apos;), decimal numeric references (&#65;), and
// hexadecimal numeric references (&#x41;).
func ExpandEntities(s string) string {
	if !strings.ContainsRune(s, '&') {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for {
		amp := strings.IndexByte(s, '&')
		if amp == -1 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:amp])

		semi := strings.IndexByte(s[amp+1:], ';')
		if semi == -1 {
			// No terminator anywhere in the remainder: nothing past
			// this point can be a valid reference either.
			b.WriteString(s[amp:])
			return b.String()
		}

		end := amp + 1 + semi
		ref := s[amp+1 : end]
		if expansion, ok := expandEntityRef(ref); ok {
			b.WriteString(expansion)
			s = s[end+1:]
		} else {
			// This '&' isn't the start of a valid reference, but a
			// later '&' might still start one (the ';' found above
			// could belong to an entity further on). Only the stray
			// '&' itself is literal; resume right after it.
			b.WriteByte('&')
			s = s[amp+1:]
		}
	}
}

func expandEntityRef(ref string) (string, bool) {
	switch ref {
	case "amp":
		return "&", true
	case "lt":
		return "<", true
	case "gt":
		return ">", true
	case "quot":
		return `"`, true
	case "apos":
		return "'", true
	}

	if !strings.HasPrefix(ref, "#") {
		return "", false
	}
	body := ref[1:]
	base := 10
	if strings.HasPrefix(body, "x") {
		base = 16
		body = body[1:]
	}
	if body == "" {
		return "", false
	}

	n, err := strconv.ParseUint(body, base, 32)
	if err != nil || n > utf8.MaxRune || !utf8.ValidRune(rune(n)) {
		return "", false
	}
	return string(rune(n)), true
}
