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

// Token is one of the six events the Tokenizer emits. All payloads carry
// the raw characters lying between delimiters: no entity expansion, no
// whitespace trimming, no attribute splitting. Use ExpandEntities and
// ParseAttrs to get at the processed form.
type Token interface {
	token()
}

// Text is a run of character data outside of any tag, comment, CDATA
// section, or processing instruction.
type Text struct {
	Contents string
}

func (*Text) token() {}

// CData is the payload of a <![CDATA[ ... ]]> section, excluding the
// wrapper.
type CData struct {
	Contents string
}

func (*CData) token() {}

// Comment is the payload of a <!-- ... --> comment, excluding the
// delimiters.
type Comment struct {
	Contents string
}

func (*Comment) token() {}

// ProcessingInstruction is the payload of a <? ... ?> instruction,
// excluding the delimiters.
type ProcessingInstruction struct {
	Contents string
}

func (*ProcessingInstruction) token() {}

// TagOpen is an opening tag, <name attrs> or <name attrs/>.
//
// RawAttributes is the unparsed substring following Name, including its
// leading whitespace when non-empty. Pass it to ParseAttrs to obtain a
// name-to-value mapping.
type TagOpen struct {
	Name          string
	RawAttributes string
	SelfClosing   bool
}

func (*TagOpen) token() {}

// TagClose is a closing tag, </name>.
type TagClose struct {
	Name string
}

func (*TagClose) token() {}
