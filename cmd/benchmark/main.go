package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/delaneyj/guardsignal/pkg/promise"
	"github.com/delaneyj/guardsignal/signal"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

const (
	cpuProfileKey = "cpuprofile"
	itersKey      = "iters"
	asyncKey      = "async"
	policyKey     = "policy"
)

var (
	ww          = []int{1, 10, 100}
	hh          = []int{1, 10, 100}
	guardCounts = []int{1, 4, 16}
)

func main() {
	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Benchmark signal propagation and guard policies",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  cpuProfileKey,
				Usage: "Write a CPU profile to this file",
			},
			&cli.UintFlag{
				Name:  itersKey,
				Usage: "Emits per benchmark",
				Value: 100,
			},
			&cli.BoolFlag{
				Name:  asyncKey,
				Usage: "Guards answer with promises instead of plain values",
			},
			&cli.StringFlag{
				Name:  policyKey,
				Usage: "Only benchmark this stop policy (never, fail-any, fail-all)",
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	if path := cmd.String(cpuProfileKey); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating cpu profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("starting cpu profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	iters := int(cmd.Uint(itersKey))

	policies := []signal.StopPolicy{signal.StopNever, signal.StopFailAny, signal.StopFailAll}
	if name := cmd.String(policyKey); name != "" {
		policy, err := signal.ParseStopPolicy(name)
		if err != nil {
			return err
		}
		policies = []signal.StopPolicy{policy}
	}

	log.Printf("warming up")
	if err := benchmarkPropagate(ctx, iters, false); err != nil {
		return err
	}

	if err := benchmarkPropagate(ctx, iters, true); err != nil {
		return err
	}
	return benchmarkGuards(ctx, iters, policies, cmd.Bool(asyncKey), true)
}

func newTable(title string) table.Writer {
	tbl := table.NewWriter()
	tbl.SetTitle(title)
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max", "checksum"})
	return tbl
}

func appendCalc(tbl table.Writer, name string, calc *tachymeter.Metrics, checksum uint64) {
	tbl.AppendRows([]table.Row{
		{
			name,
			calc.Time.Avg,
			calc.Time.Min,
			calc.Time.P75,
			calc.Time.P99,
			calc.Time.Max,
			fmt.Sprintf("%016x", checksum),
		},
	})
}

func addOne(v int) int {
	return v + 1
}

// benchmarkPropagate builds w chains of h computed signals over one source
// and times each emit on the source.
func benchmarkPropagate(ctx context.Context, iters int, shouldRender bool) error {
	tbl := newTable("Guarded Signals: propagate")

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			src := signal.New(1)
			leaves := make([]signal.ReadonlySignal[int], 0, w)
			effects := 0
			for i := 0; i < w; i++ {
				var last signal.ReadonlySignal[int] = src
				for j := 0; j < h; j++ {
					last = signal.Computed1(last, addOne)
				}
				last.Bind(func(next, prev int) {
					effects++
				}, false)
				leaves = append(leaves, last)
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				if err := src.Emit(ctx, src.Get()+1); err != nil {
					return fmt.Errorf("propagate %dx%d: %w", w, h, err)
				}
				tach.AddTime(time.Since(start))
			}

			if effects != w*iters {
				return fmt.Errorf("propagate %dx%d: expected %d effects, got %d", w, h, w*iters, effects)
			}

			appendCalc(tbl, fmt.Sprintf("propagate: %d * %d", w, h), tach.Calc(), checksum(leaves))
		}
	}

	if shouldRender {
		tbl.Render()
	}
	return nil
}

// benchmarkGuards times emits that pass through n guards under each stop
// policy. Every second guard fails, so fail-any blocks and fail-all commits.
func benchmarkGuards(ctx context.Context, iters int, policies []signal.StopPolicy, async, shouldRender bool) error {
	title := "Guarded Signals: guards"
	if async {
		title += " (async)"
	}
	tbl := newTable(title)
	errOdd := errors.New("odd guard")

	for _, policy := range policies {
		for _, n := range guardCounts {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			s := signal.New(0, signal.WithStopEmit(policy))
			for g := 0; g < n; g++ {
				fails := g%2 == 1
				s.Guard(func(ctx context.Context, next, prev int) any {
					if async {
						if fails {
							return promise.Rejected(errOdd)
						}
						return promise.Resolved(true)
					}
					return !fails
				})
			}

			blocked := 0
			for i := 0; i < iters; i++ {
				start := time.Now()
				err := s.Emit(ctx, i+1)
				tach.AddTime(time.Since(start))
				switch {
				case errors.Is(err, signal.ErrBlocked):
					blocked++
				case err != nil:
					return fmt.Errorf("guards %s/%d: %w", policy, n, err)
				}
			}

			name := fmt.Sprintf("%s: %d guards, %d blocked", policy, n, blocked)
			appendCalc(tbl, name, tach.Calc(), checksum([]signal.ReadonlySignal[int]{s}))
		}
	}

	if shouldRender {
		tbl.Render()
	}
	return nil
}

func checksum(signals []signal.ReadonlySignal[int]) uint64 {
	d := xxhash.New()
	for _, s := range signals {
		d.WriteString(strconv.Itoa(s.Get()))
		d.WriteString(",")
	}
	return d.Sum64()
}
