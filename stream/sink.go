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

package stream

import (
	"fmt"
	"io"

	events "github.com/docker/go-events"

	sax "github.com/go-sax/tokenizer"
)

// WriterSink formats each TokenEvent as a single line and writes it to
// w. It implements events.Sink, the same role LogSink would play in a
// webhook pipeline, except events land on an io.Writer instead of an
// HTTP endpoint.
type WriterSink struct {
	w      io.Writer
	closed bool
}

// NewWriterSink returns a WriterSink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

var _ events.Sink = (*WriterSink)(nil)

// Write renders event and appends a newline. event must be a
// TokenEvent; anything else is rejected so mistakes fail loudly instead
// of silently no-op'ing.
func (s *WriterSink) Write(event events.Event) error {
	if s.closed {
		return fmt.Errorf("stream: write to closed sink")
	}
	te, ok := event.(TokenEvent)
	if !ok {
		return fmt.Errorf("stream: unexpected event type %T", event)
	}
	_, err := fmt.Fprintf(s.w, "%04d %s\n", te.Seq, formatToken(te.Token))
	return err
}

// Close marks the sink closed; further Writes fail.
func (s *WriterSink) Close() error {
	s.closed = true
	return nil
}

func formatToken(t sax.Token) string {
	switch t := t.(type) {
	case *sax.Text:
		return fmt.Sprintf("TEXT %q", t.Contents)
	case *sax.CData:
		return fmt.Sprintf("CDATA %q", t.Contents)
	case *sax.Comment:
		return fmt.Sprintf("COMMENT %q", t.Contents)
	case *sax.ProcessingInstruction:
		return fmt.Sprintf("PI %q", t.Contents)
	case *sax.TagOpen:
		if t.SelfClosing {
			return fmt.Sprintf("TAG_OPEN %s %q /", t.Name, t.RawAttributes)
		}
		return fmt.Sprintf("TAG_OPEN %s %q", t.Name, t.RawAttributes)
	case *sax.TagClose:
		return fmt.Sprintf("TAG_CLOSE %s", t.Name)
	default:
		return fmt.Sprintf("UNKNOWN %T", t)
	}
}
