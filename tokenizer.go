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

import "strings"

// pendingKind identifies which token is under construction when a Feed
// call runs out of input before finding a terminator. It only matters
// for the message Finish produces if end-of-input arrives while still
// pending: Feed itself always re-derives the token kind from scratch by
// re-scanning the buffered prefix together with the new chunk.
type pendingKind int

const (
	pendingNone pendingKind = iota
	pendingText
	pendingCData
	pendingComment
	pendingProcessingInstruction
	// pendingMarkupDeclaration covers "<!" before enough of the input has
	// arrived to tell a comment from a CDATA section from an error.
	pendingMarkupDeclaration
	// pendingTagLike covers a bare "<" and any opening or closing tag
	// that hasn't seen its ">" yet.
	pendingTagLike
)

// Tokenizer turns a stream of text chunks into a linear sequence of
// Token values. It is single-use: create one with New, call Feed for
// each chunk in order, and call Finish exactly once at end of input.
//
// Tokenizer is not safe for concurrent use; a single instance is owned
// by one writer at a time, matching the teacher's own Decoder.
type Tokenizer struct {
	pendKind pendingKind
	pendBuf  string

	openTags tagStack

	finished bool
	errored  bool
}

// New creates an empty Tokenizer.
func New() *Tokenizer {
	return &Tokenizer{}
}

// Feed accepts the next chunk of decoded text and returns the tokens it
// completes. A token spanning a chunk boundary produces exactly the
// event it would have produced had the whole input arrived in one
// chunk: the unfinished prefix is carried as pending state and merged
// with the start of the next chunk.
//
// On a structural error, Feed returns the tokens emitted before the
// fault together with the error, and the Tokenizer stops accepting
// input: every later Feed or Finish call returns ErrTokenizerFinished.
func (t *Tokenizer) Feed(chunk string) ([]Token, error) {
	if t.finished || t.errored {
		return nil, ErrTokenizerFinished
	}

	data := chunk
	if t.pendKind != pendingNone {
		data = t.pendBuf + chunk
		t.pendKind = pendingNone
		t.pendBuf = ""
	}

	tokens, err := t.scan(data)
	if err != nil {
		t.errored = true
	}
	return tokens, err
}

// Finish signals end of input. It returns any final text fragment still
// pending, then nil to mean the stream ended cleanly (the Go spelling
// of the spec's "end" event). If pending state or the open-tag stack
// can't be legally closed, it returns a descriptive error instead.
func (t *Tokenizer) Finish() ([]Token, error) {
	if t.finished || t.errored {
		return nil, ErrTokenizerFinished
	}
	t.finished = true

	var tokens []Token
	switch t.pendKind {
	case pendingNone:
		// Nothing left to flush.
	case pendingText:
		tokens = append(tokens, &Text{Contents: t.pendBuf})
	case pendingCData:
		t.errored = true
		return tokens, ErrUnclosedCDATA
	case pendingComment:
		t.errored = true
		return tokens, ErrUnclosedComment
	case pendingProcessingInstruction:
		t.errored = true
		return tokens, ErrUnclosedPI
	case pendingMarkupDeclaration, pendingTagLike:
		t.errored = true
		return tokens, ErrUnclosedTag
	}
	t.pendKind = pendingNone
	t.pendBuf = ""

	if !t.openTags.empty() {
		t.errored = true
		return tokens, errUnclosedTags(t.openTags.snapshot())
	}

	return tokens, nil
}

// Parse is a convenience for Feed(input) followed by Finish.
func (t *Tokenizer) Parse(input string) ([]Token, error) {
	tokens, err := t.Feed(input)
	if err != nil {
		return tokens, err
	}
	more, err := t.Finish()
	return append(tokens, more...), err
}

// scan advances through data from position 0, emitting every token that
// becomes fully determined, and either returns cleanly (recording any
// unfinished suffix as pending state) or returns a fatal error.
func (t *Tokenizer) scan(data string) ([]Token, error) {
	var tokens []Token
	pos := 0

	for pos < len(data) {
		if data[pos] != '<' {
			idx := strings.IndexByte(data[pos:], '<')
			if idx == -1 {
				t.pendKind = pendingText
				t.pendBuf = data[pos:]
				return tokens, nil
			}
			if idx > 0 {
				tokens = append(tokens, &Text{Contents: data[pos : pos+idx]})
			}
			pos += idx
			continue
		}

		res, err := t.recognizeMarkup(data, pos)
		if err != nil {
			return tokens, err
		}
		if res.stalled {
			t.pendKind = res.stallKind
			t.pendBuf = data[pos:]
			return tokens, nil
		}
		if res.token != nil {
			tokens = append(tokens, res.token)
		}
		pos = res.next
	}

	return tokens, nil
}

// scanResult is the outcome of trying to recognize one token starting
// at a '<'.
type scanResult struct {
	token     Token
	next      int
	stalled   bool
	stallKind pendingKind
}

func stallAs(kind pendingKind) (scanResult, error) {
	return scanResult{stalled: true, stallKind: kind}, nil
}

// recognizeMarkup recognizes the token beginning at data[pos], where
// data[pos] == '<'. It dispatches on the character(s) following '<',
// per spec.md §4.1's priority-ordered grammar.
func (t *Tokenizer) recognizeMarkup(data string, pos int) (scanResult, error) {
	rem := data[pos:]
	if len(rem) < 2 {
		return stallAs(pendingTagLike)
	}

	switch rem[1] {
	case '!':
		return t.recognizeBang(data, pos)
	case '?':
		return recognizeProcessingInstruction(data, pos)
	case '/':
		return t.recognizeCloseTag(data, pos)
	default:
		return t.recognizeOpenTag(data, pos)
	}
}

// recognizeBang handles everything starting "<!": comments, CDATA
// sections, and the fatal catch-all for anything else (DOCTYPE
// included — see SPEC_FULL.md §5.1).
func (t *Tokenizer) recognizeBang(data string, pos int) (scanResult, error) {
	rem := data[pos:]
	if len(rem) < 3 {
		return stallAs(pendingMarkupDeclaration)
	}

	switch rem[2] {
	case '-':
		if len(rem) < 4 {
			return stallAs(pendingMarkupDeclaration)
		}
		if rem[3] != '-' {
			return scanResult{}, errUnrecognizedMarkup(rem[2])
		}
		return recognizeComment(data, pos)
	case '[':
		const want = "[CDATA["
		avail := rem[2:]
		limit := len(avail)
		if limit > len(want) {
			limit = len(want)
		}
		for i := 0; i < limit; i++ {
			if avail[i] != want[i] {
				return scanResult{}, errUnrecognizedMarkup(rem[2])
			}
		}
		if len(avail) < len(want) {
			return stallAs(pendingMarkupDeclaration)
		}
		return recognizeCData(data, pos)
	default:
		return scanResult{}, errUnrecognizedMarkup(rem[2])
	}
}

func recognizeComment(data string, pos int) (scanResult, error) {
	bodyStart := pos + 4 // past "<!--"
	idx := strings.Index(data[bodyStart:], "--")
	if idx == -1 {
		return stallAs(pendingComment)
	}
	dashes := bodyStart + idx
	if dashes+2 >= len(data) {
		// Found "--" but don't yet know what follows it.
		return stallAs(pendingComment)
	}
	if data[dashes+2] != '>' {
		return scanResult{}, ErrCommentDoubleDash
	}
	return scanResult{
		token: &Comment{Contents: data[bodyStart:dashes]},
		next:  dashes + 3,
	}, nil
}

func recognizeCData(data string, pos int) (scanResult, error) {
	bodyStart := pos + len("<![CDATA[")
	idx := strings.Index(data[bodyStart:], "]]>")
	if idx == -1 {
		return stallAs(pendingCData)
	}
	return scanResult{
		token: &CData{Contents: data[bodyStart : bodyStart+idx]},
		next:  bodyStart + idx + 3,
	}, nil
}

func recognizeProcessingInstruction(data string, pos int) (scanResult, error) {
	bodyStart := pos + 2 // past "<?"
	idx := strings.Index(data[bodyStart:], "?>")
	if idx == -1 {
		return stallAs(pendingProcessingInstruction)
	}
	return scanResult{
		token: &ProcessingInstruction{Contents: data[bodyStart : bodyStart+idx]},
		next:  bodyStart + idx + 2,
	}, nil
}

func (t *Tokenizer) recognizeCloseTag(data string, pos int) (scanResult, error) {
	bodyStart := pos + 2 // past "</"
	idx := strings.IndexByte(data[bodyStart:], '>')
	if idx == -1 {
		return stallAs(pendingTagLike)
	}
	name := data[bodyStart : bodyStart+idx]

	popped, ok := t.openTags.pop()
	if !ok || popped != name {
		t.openTags.clear()
		return scanResult{}, errMismatchedClose(popped)
	}

	return scanResult{
		token: &TagClose{Name: name},
		next:  bodyStart + idx + 1,
	}, nil
}

func (t *Tokenizer) recognizeOpenTag(data string, pos int) (scanResult, error) {
	rem := data[pos:]
	if isTokenizerSpace(rem[1]) {
		return scanResult{}, ErrTagNameWhitespace
	}

	idx := strings.IndexByte(rem[1:], '>')
	if idx == -1 {
		return stallAs(pendingTagLike)
	}

	closeAt := pos + 1 + idx
	interior := data[pos+1 : closeAt]
	next := closeAt + 1

	selfClosing := len(interior) > 0 && interior[len(interior)-1] == '/'
	if selfClosing {
		interior = interior[:len(interior)-1]
	}

	name, rawAttrs := splitNameAttrs(interior)
	if !selfClosing {
		t.openTags.push(name)
	}

	return scanResult{
		token: &TagOpen{Name: name, RawAttributes: rawAttrs, SelfClosing: selfClosing},
		next:  next,
	}, nil
}

// splitNameAttrs splits a tag's interior (the part between '<'/the
// stripped self-closing '/' and '>') into its name and the raw
// attribute substring, per spec.md §4.1 rule 7.
func splitNameAttrs(interior string) (name, rawAttrs string) {
	for i := 0; i < len(interior); i++ {
		if isTokenizerSpace(interior[i]) {
			return interior[:i], interior[i:]
		}
	}
	return interior, ""
}

// isTokenizerSpace reports whether b is whitespace for tokenizer
// purposes: exactly space, tab, CR, LF (spec.md §4.1).
func isTokenizerSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n':
		return true
	}
	return false
}
