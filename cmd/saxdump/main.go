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

// Command saxdump tokenizes an XML document and prints its token
// stream, one event per line, reading from a file argument or stdin.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/go-sax/tokenizer/stream"
)

var (
	chunkSize  int
	withMetric bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "saxdump [file]",
	Short: "Dump the token stream produced by a streaming XML tokenizer",
	Long: `saxdump feeds an XML document to a sax.Tokenizer in fixed-size
chunks and prints each emitted token, exercising the same stall/resume
path a network reader would drive in production.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDump,
}

func init() {
	rootCmd.Flags().IntVarP(&chunkSize, "chunk-size", "c", stream.DefaultChunkSize, "bytes read per Feed call")
	rootCmd.Flags().BoolVar(&withMetric, "metrics", false, "register and update token/error counters")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
}

func runDump(cmd *cobra.Command, args []string) error {
	logger := logrus.New()
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	in := os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("saxdump: %w", err)
		}
		defer f.Close()
		in = f
	}

	var m *stream.Metrics
	if withMetric {
		m = stream.NewMetrics()
	}

	pump := stream.NewPump(stream.NewWriterSink(os.Stdout), logger, m)
	if err := pump.Run(in, chunkSize); err != nil {
		return fmt.Errorf("saxdump: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
