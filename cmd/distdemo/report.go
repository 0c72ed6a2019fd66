package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"sync"

	"github.com/logrusorgru/aurora"

	"github.com/katalvlaran/lvprob/dist"
)

// row compares the exact and the sampled probability of one value.
type row struct {
	Value     string
	Exact     float64
	Empirical float64
}

// report is the comparison table of one scenario.
type report struct {
	Name    string
	Samples int
	Rows    []row
}

// measure enumerates d exactly and samples it cfg.samples times, split over
// cfg.workers goroutines with independent streams derived from base.
func measure[T comparable](name string, d dist.Distribution[T], base *rand.Rand, cfg config, logger *slog.Logger) (report, error) {
	exact, err := dist.Enumerate(d, dist.WithLogger(logger))
	if err != nil {
		return report{}, fmt.Errorf("%s: %w", name, err)
	}
	counts, err := sampleParallel(d, cfg.samples, cfg.workers, base)
	if err != nil {
		return report{}, fmt.Errorf("%s: %w", name, err)
	}

	rep := report{Name: name, Samples: cfg.samples}
	for _, e := range exact.Entries() {
		rep.Rows = append(rep.Rows, row{
			Value:     fmt.Sprint(e.Value),
			Exact:     e.Prob,
			Empirical: float64(counts[e.Value]) / float64(cfg.samples),
		})
	}
	logger.Debug("scenario measured", "name", name, "values", len(rep.Rows), "samples", cfg.samples)
	return rep, nil
}

func sampleParallel[T comparable](d dist.Distribution[T], n, workers int, base *rand.Rand) (map[T]int, error) {
	if workers > n {
		workers = n
	}
	streams := make([]*rand.Rand, workers)
	for i := range streams {
		streams[i] = dist.DeriveRand(base, uint64(i))
	}

	var (
		wg      sync.WaitGroup
		results = make([]map[T]int, workers)
		errs    = make([]error, workers)
	)
	for i := 0; i < workers; i++ {
		share := n / workers
		if i < n%workers {
			share++
		}
		wg.Add(1)
		go func(i, share int) {
			defer wg.Done()
			results[i], errs[i] = dist.SampleN(d, share, streams[i])
		}(i, share)
	}
	wg.Wait()

	counts := make(map[T]int)
	for i := range results {
		if errs[i] != nil {
			return nil, errs[i]
		}
		for v, c := range results[i] {
			counts[v] += c
		}
	}
	return counts, nil
}

// printReport writes rep as an aligned table; the empirical column is green
// when within 0.01 of the exact value and yellow otherwise.
func printReport(w io.Writer, au aurora.Aurora, rep report) {
	fmt.Fprintf(w, "%s (%d samples)\n", au.Bold(au.Cyan(rep.Name)), rep.Samples)
	fmt.Fprintf(w, "  %-12s %8s %10s\n", "value", "exact", "sampled")
	for _, r := range rep.Rows {
		sampled := fmt.Sprintf("%10.4f", r.Empirical)
		colored := au.Green(sampled)
		if diff := r.Empirical - r.Exact; diff > 0.01 || diff < -0.01 {
			colored = au.Yellow(sampled)
		}
		fmt.Fprintf(w, "  %-12s %8.4f %s\n", r.Value, r.Exact, colored)
	}
	fmt.Fprintln(w)
}
