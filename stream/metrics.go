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

	"github.com/docker/go-metrics"

	sax "github.com/go-sax/tokenizer"
)

// Metrics tracks token throughput and error counts for a Pump, the
// streaming equivalent of distribution-distribution's
// notifications.EndpointMetrics (Events/Errors counters per endpoint).
type Metrics struct {
	tokens metrics.LabeledCounter
	errors metrics.Counter
}

// NewMetrics creates a Namespace named "sax" and registers it with the
// process-wide metrics registry, returning a Metrics handle for its
// counters. The counter names are fixed, so every call registers the
// same process-wide names again.
func NewMetrics() *Metrics {
	ns := metrics.NewNamespace("sax", "", nil)
	m := &Metrics{
		tokens: ns.NewLabeledCounter("tokens_total", "Number of tokens emitted, by kind", "kind"),
		errors: ns.NewCounter("errors_total", "Number of tokenization errors encountered"),
	}
	metrics.Register(ns)
	return m
}

// ObserveToken increments the counter for t's concrete kind.
func (m *Metrics) ObserveToken(t sax.Token) {
	m.tokens.WithValues(tokenKind(t)).Inc(1)
}

// ObserveError increments the error counter.
func (m *Metrics) ObserveError() {
	m.errors.Inc(1)
}

func tokenKind(t sax.Token) string {
	switch t.(type) {
	case *sax.Text:
		return "text"
	case *sax.CData:
		return "cdata"
	case *sax.Comment:
		return "comment"
	case *sax.ProcessingInstruction:
		return "processing_instruction"
	case *sax.TagOpen:
		return "tag_open"
	case *sax.TagClose:
		return "tag_close"
	default:
		return fmt.Sprintf("%T", t)
	}
}
