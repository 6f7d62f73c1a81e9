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

// Package stream wires the pure sax.Tokenizer up to an actual byte
// source: decoding bytes to UTF-8 text, splitting them into chunks, and
// publishing the resulting tokens as events.
package stream

import (
	"bufio"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// DefaultChunkSize is used by Pump.Run when the caller doesn't override
// it, chosen to exercise the Tokenizer's stall/resume path on real
// documents instead of reading them whole.
const DefaultChunkSize = 4096

// Decoder validates a byte stream as UTF-8 and hands back text chunks
// ready to pass to a Tokenizer's Feed method. Invalid byte sequences
// surface as an error from Next rather than being silently replaced:
// the core Tokenizer assumes it's always handed valid text, so the
// validation has to happen here, at the boundary.
type Decoder struct {
	r         *bufio.Reader
	chunkSize int
}

// NewDecoder wraps r with a UTF-8 validating transform and buffers reads
// in chunkSize-sized pieces. A non-positive chunkSize falls back to
// DefaultChunkSize.
func NewDecoder(r io.Reader, chunkSize int) *Decoder {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	validated := transform.NewReader(r, encoding.UTF8Validator)
	return &Decoder{r: bufio.NewReaderSize(validated, chunkSize), chunkSize: chunkSize}
}

// Next returns the next decoded chunk of text, or io.EOF once the
// underlying reader is exhausted.
func (d *Decoder) Next() (string, error) {
	buf := make([]byte, d.chunkSize)
	n, err := d.r.Read(buf)
	if n == 0 {
		return "", err
	}
	// A partial read is returned together with any error other than
	// io.EOF; io.EOF is dropped here and reported by the following call,
	// which reads nothing.
	if err != nil && err != io.EOF {
		return string(buf[:n]), err
	}
	return string(buf[:n]), nil
}
