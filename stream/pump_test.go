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
	"bytes"
	"strings"
	"testing"

	events "github.com/docker/go-events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sax "github.com/go-sax/tokenizer"
)

// recordingSink collects every TokenEvent it receives, in order.
type recordingSink struct {
	events []TokenEvent
}

func (s *recordingSink) Write(event events.Event) error {
	s.events = append(s.events, event.(TokenEvent))
	return nil
}

func (s *recordingSink) Close() error { return nil }

func TestPumpRunPublishesTokensInOrder(t *testing.T) {
	sink := &recordingSink{}
	pump := NewPump(sink, nil, nil)

	err := pump.Run(strings.NewReader(`<a><b>hi</b></a>`), 3)
	require.NoError(t, err)

	require.Len(t, sink.events, 5)
	assert.Equal(t, 1, sink.events[0].Seq)
	assert.IsType(t, &sax.TagOpen{}, sink.events[0].Token)
	assert.IsType(t, &sax.TagOpen{}, sink.events[1].Token)
	assert.IsType(t, &sax.Text{}, sink.events[2].Token)
	assert.IsType(t, &sax.TagClose{}, sink.events[3].Token)
	assert.IsType(t, &sax.TagClose{}, sink.events[4].Token)
}

func TestPumpRunPropagatesTokenizeError(t *testing.T) {
	sink := &recordingSink{}
	pump := NewPump(sink, nil, nil)

	err := pump.Run(strings.NewReader(`</unopened>`), 64)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unclosed tag")
}

func TestPumpRunRecordsMetrics(t *testing.T) {
	sink := &recordingSink{}
	m := NewMetrics()
	pump := NewPump(sink, nil, m)

	err := pump.Run(strings.NewReader(`<a/>`), 64)
	require.NoError(t, err)
	assert.Len(t, sink.events, 1)
}

func TestWriterSinkFormatsTokens(t *testing.T) {
	var buf bytes.Buffer
	sink := NewWriterSink(&buf)

	require.NoError(t, sink.Write(TokenEvent{Seq: 1, Token: &sax.TagOpen{Name: "a"}}))
	require.NoError(t, sink.Write(TokenEvent{Seq: 2, Token: &sax.Text{Contents: "hi"}}))
	require.NoError(t, sink.Close())

	err := sink.Write(TokenEvent{Seq: 3, Token: &sax.TagClose{Name: "a"}})
	assert.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "0001 TAG_OPEN a")
	assert.Contains(t, out, `0002 TEXT "hi"`)
}
