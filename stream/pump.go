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
	"github.com/sirupsen/logrus"

	sax "github.com/go-sax/tokenizer"
)

// TokenEvent is the events.Event published for every token the
// Tokenizer emits. It carries the token alongside a running sequence
// number so a Sink can reconstruct ordering even if it reorders
// delivery internally.
type TokenEvent struct {
	Seq   int
	Token sax.Token
}

// Pump reads chunks from a Decoder, feeds them to a sax.Tokenizer, and
// publishes each resulting token to a Sink, the way
// distribution-distribution's notification eventQueue drains a Decoder
// of webhook payloads into a sink. Unlike that queue, Pump runs
// synchronously: Run doesn't return until the input is exhausted or a
// parse error occurs, so the caller controls backpressure directly.
type Pump struct {
	Sink    events.Sink
	Log     logrus.FieldLogger
	Metrics *Metrics

	seq int
}

// NewPump builds a Pump publishing to sink. If log is nil, logging is
// silent; if m is nil, metrics are not recorded.
func NewPump(sink events.Sink, log logrus.FieldLogger, m *Metrics) *Pump {
	if log == nil {
		silent := logrus.New()
		silent.SetOutput(io.Discard)
		log = silent
	}
	return &Pump{Sink: sink, Log: log, Metrics: m}
}

// Run decodes r in chunks of chunkSize bytes, feeds them to a fresh
// Tokenizer, and publishes every token to p.Sink in order. It returns
// the first error encountered, whether from decoding, tokenizing, or
// from the sink itself.
func (p *Pump) Run(r io.Reader, chunkSize int) error {
	dec := NewDecoder(r, chunkSize)
	tok := sax.New()

	for {
		chunk, err := dec.Next()
		if chunk != "" {
			tokens, feedErr := tok.Feed(chunk)
			if pubErr := p.publish(tokens); pubErr != nil {
				return pubErr
			}
			if feedErr != nil {
				p.logError(feedErr)
				return feedErr
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			p.logError(err)
			return fmt.Errorf("stream: reading input: %w", err)
		}
	}

	tokens, err := tok.Finish()
	if pubErr := p.publish(tokens); pubErr != nil {
		return pubErr
	}
	if err != nil {
		p.logError(err)
		return err
	}

	p.Log.Debug("stream: input fully tokenized")
	return nil
}

func (p *Pump) publish(tokens []sax.Token) error {
	for _, t := range tokens {
		p.seq++
		if p.Metrics != nil {
			p.Metrics.ObserveToken(t)
		}
		if err := p.Sink.Write(TokenEvent{Seq: p.seq, Token: t}); err != nil {
			p.Log.WithError(err).Error("stream: sink rejected token")
			return fmt.Errorf("stream: writing to sink: %w", err)
		}
	}
	return nil
}

func (p *Pump) logError(err error) {
	if p.Metrics != nil {
		p.Metrics.ObserveError()
	}
	p.Log.WithError(err).Warn("stream: tokenization stopped")
}
