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

// Package sax is a streaming, event-driven XML tokenizer in the SAX
// tradition. It consumes text in arbitrarily-sized chunks and emits a
// linear sequence of token events without ever building a document tree,
// so memory use is bounded by the deepest open-tag nesting, the largest
// single token, and one copy of each distinct tag name opened so far
// (kept for interning), rather than by document size.
//
// A Tokenizer is single-use: create one with New, feed it chunks with
// Feed, and call Finish once at end of input. A token whose closing
// delimiter hasn't arrived yet is held as pending state across Feed
// calls; the next Feed picks up exactly where the previous one stalled.
//
// Entity expansion and attribute-list parsing are not performed by the
// Tokenizer itself. They're exposed as the pure functions ExpandEntities
// and ParseAttrs so callers only pay for them on the tags and text nodes
// that need it.
package sax
