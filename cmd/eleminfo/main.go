// Copyright 2026 elemwise Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command eleminfo reports the SIMD tiers elemwise detected on this
// machine and runs quick elementwise micro-benchmarks against them.
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/go-highway/elemwise/elem"
	"github.com/go-highway/elemwise/elem/engine"
	"github.com/go-highway/elemwise/elem/workerpool"
)

func main() {
	root := &cobra.Command{
		Use:   "eleminfo",
		Short: "Inspect and benchmark the elemwise dispatch engine",
	}
	root.AddCommand(newFeaturesCmd(), newBenchCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newFeaturesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "features",
		Short: "Print detected CPU SIMD tiers",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "GOOS: %s\n", runtime.GOOS)
			fmt.Fprintf(out, "GOARCH: %s\n", runtime.GOARCH)
			fmt.Fprintf(out, "NumCPU: %d\n", runtime.NumCPU())
			fmt.Fprintln(out)

			fmt.Fprintf(out, "Dispatch level: %s\n", elem.CurrentLevel())
			fmt.Fprintf(out, "Dispatch width: %d bytes\n", elem.CurrentWidth())
			fmt.Fprintf(out, "FMA hardware:   %v\n", elem.HasFMA())
			fmt.Fprintln(out)

			for _, level := range []elem.DispatchLevel{
				elem.DispatchAVX512, elem.DispatchAVX2,
				elem.DispatchSSE2, elem.DispatchNEON, elem.DispatchScalar,
			} {
				fmt.Fprintf(out, "  %-8s %v\n", level, elem.Supported(level))
			}
		},
	}
}

func newBenchCmd() *cobra.Command {
	var (
		size    int
		rounds  int
		workers int
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run elementwise micro-benchmarks",
		RunE: func(cmd *cobra.Command, args []string) error {
			if size <= 0 {
				return fmt.Errorf("invalid --size %d", size)
			}
			if rounds <= 0 {
				return fmt.Errorf("invalid --rounds %d", rounds)
			}

			pool := workerpool.New(workers)
			defer pool.Close()
			e := engine.New(pool)

			a := make([]float64, size)
			b := make([]float64, size)
			dst := make([]float64, size)
			for i := range a {
				a[i] = float64(i)
				b[i] = float64(i) * 0.5
			}

			p := message.NewPrinter(language.English)
			out := cmd.OutOrStdout()
			p.Fprintf(out, "workers=%d  elements=%d  rounds=%d\n",
				pool.NumWorkers(), size, rounds)

			for _, bench := range []struct {
				name string
				run  func(r engine.Range) error
			}{
				{"add", func(r engine.Range) error {
					for i := r.Start; i < r.End; i++ {
						dst[i] = a[i] + b[i]
					}
					return nil
				}},
				{"mul", func(r engine.Range) error {
					for i := r.Start; i < r.End; i++ {
						dst[i] = a[i] * b[i]
					}
					return nil
				}},
				{"fma", func(r engine.Range) error {
					for i := r.Start; i < r.End; i++ {
						dst[i] = a[i]*b[i] + dst[i]
					}
					return nil
				}},
			} {
				start := time.Now()
				for r := 0; r < rounds; r++ {
					if err := e.Run(size, size, bench.run); err != nil {
						return err
					}
				}
				elapsed := time.Since(start)
				perRound := elapsed / time.Duration(rounds)
				rate := float64(size) / perRound.Seconds()
				p.Fprintf(out, "%-4s  %v/round  %.0f elems/sec\n",
					bench.name, perRound.Round(time.Microsecond), rate)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&size, "size", 1<<20, "elements per buffer")
	cmd.Flags().IntVar(&rounds, "rounds", 50, "benchmark rounds per operation")
	cmd.Flags().IntVar(&workers, "workers", 0, "worker count (0 = GOMAXPROCS)")
	return cmd
}
