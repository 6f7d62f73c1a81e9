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
	"fmt"
	"strings"
)

// parseError is a fixed, descriptive error string. No line/column is
// attached: positional diagnostics are out of scope.
type parseError string

func (e parseError) Error() string { return string(e) }

// Fixed tokenizer error messages. These strings are part of the public
// contract: callers may match on them with errors.Is.
const (
	ErrUnclosedCDATA     parseError = "Unclosed CDATA section"
	ErrUnclosedComment   parseError = "Unclosed comment"
	ErrCommentDoubleDash parseError = "Unexpected -- inside comment"
	ErrUnclosedPI        parseError = "Unclosed processing instruction"
	ErrUnclosedTag       parseError = "Unclosed tag"
	ErrTagNameWhitespace parseError = "Tag names may not start with whitespace"
	ErrTokenizerFinished parseError = "Tokenizer has already finished or failed"
)

// Fixed attribute-parser error messages.
const (
	ErrAttrNameWhitespace parseError = "Attribute names may not contain whitespace"
	ErrAttrExpectedValue  parseError = "Expected a value for the attribute"
	ErrAttrValueUnquoted  parseError = "Attribute values should be quoted"
	ErrAttrValueUnclosed  parseError = "Unclosed attribute value"
)

// errUnrecognizedMarkup reports the fatal "<!X" case from spec rule 4:
// any "<!" not followed by "--" or "[CDATA[".
func errUnrecognizedMarkup(next byte) error {
	return fmt.Errorf("Unrecognized sequence: <!%c", next)
}

// errMismatchedClose reports a closing tag that doesn't match the name
// popped off the open-tag stack (including the empty-stack case, where
// popped is "").
func errMismatchedClose(popped string) error {
	return fmt.Errorf("Unclosed tag: %s", popped)
}

// errUnclosedTags reports a non-empty open-tag stack at Finish, bottom
// of stack first.
func errUnclosedTags(names []string) error {
	return fmt.Errorf("Unclosed tags: %s", strings.Join(names, ","))
}
