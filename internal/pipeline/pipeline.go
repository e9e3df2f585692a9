// Package pipeline assembles the corpus: it runs the registered
// generators, validates every pair, and concatenates the outputs in
// registration order.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/swsemantic/swcorpus/internal/corpus"
)

// GeneratorCount records how many pairs one generator contributed.
type GeneratorCount struct {
	Name  string `json:"name"`
	Pairs int    `json:"pairs"`
}

// Result is a fully assembled corpus: the concatenated pairs plus the
// per-generator counts, both in registration order.
type Result struct {
	Pairs  []corpus.Pair
	Counts []GeneratorCount
}

// Total returns the pair count across all generators.
func (r *Result) Total() int { return len(r.Pairs) }

// Registry holds generators in registration order. That order is the
// corpus order: Run never reorders, samples, drops, or deduplicates.
type Registry struct {
	gens []corpus.Generator
}

// NewRegistry returns a registry seeded with the given generators.
func NewRegistry(gens ...corpus.Generator) *Registry {
	return &Registry{gens: gens}
}

// Register appends a generator to the end of the run order.
func (r *Registry) Register(g corpus.Generator) {
	r.gens = append(r.gens, g)
}

// Generators returns the registered generators in run order.
func (r *Registry) Generators() []corpus.Generator {
	return r.gens
}

// Options control a pipeline run. A nil Logger disables logging.
type Options struct {
	Parallel bool
	Logger   *zap.Logger
}

// GenerateAll executes every registered generator and returns the assembled
// corpus. Any generator error or malformed pair fails the whole run; the
// returned error is always a generator failure, never a cancellation
// that failure triggered.
func (r *Registry) GenerateAll(ctx context.Context, opts Options) (*Result, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	start := time.Now()

	var slots [][]corpus.Pair
	var err error
	if opts.Parallel {
		slots, err = r.runParallel(ctx, log)
	} else {
		slots, err = r.runSequential(ctx, log)
	}
	if err != nil {
		return nil, err
	}

	res := &Result{Counts: make([]GeneratorCount, len(r.gens))}
	for i, g := range r.gens {
		res.Counts[i] = GeneratorCount{Name: g.Name(), Pairs: len(slots[i])}
		res.Pairs = append(res.Pairs, slots[i]...)
	}
	log.Info("corpus assembled",
		zap.Int("generators", len(r.gens)),
		zap.Int("pairs", res.Total()),
		zap.Duration("elapsed", time.Since(start)))
	return res, nil
}

func (r *Registry) runSequential(ctx context.Context, log *zap.Logger) ([][]corpus.Pair, error) {
	slots := make([][]corpus.Pair, len(r.gens))
	for i, g := range r.gens {
		pairs, err := runOne(ctx, g, log)
		if err != nil {
			return nil, err
		}
		slots[i] = pairs
	}
	return slots, nil
}

// runParallel fans the generators out across goroutines. Each generator
// writes into its own slot so the assembled order is identical to the
// sequential run. The first failure cancels the group context, which
// aborts generators that have not started yet. Slot errors are examined
// in registration order with cancellations skipped, so the reported
// error is always a generator's own failure when one exists.
func (r *Registry) runParallel(ctx context.Context, log *zap.Logger) ([][]corpus.Pair, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	slots := make([][]corpus.Pair, len(r.gens))
	errs := make([]error, len(r.gens))

	eg, gctx := errgroup.WithContext(ctx)
	for i, g := range r.gens {
		i, g := i, g
		eg.Go(func() error {
			pairs, err := runOne(gctx, g, log)
			if err != nil {
				errs[i] = err
				return err
			}
			slots[i] = pairs
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		for _, e := range errs {
			if e != nil && !errors.Is(e, context.Canceled) {
				return nil, e
			}
		}
		return nil, err
	}
	return slots, nil
}

func runOne(ctx context.Context, g corpus.Generator, log *zap.Logger) ([]corpus.Pair, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	start := time.Now()
	pairs, err := g.GenerateAll()
	if err != nil {
		return nil, fmt.Errorf("pipeline: generator %q: %w", g.Name(), err)
	}
	if err := corpus.Validate(g.Name(), pairs); err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	log.Info("generator finished",
		zap.String("generator", g.Name()),
		zap.Int("pairs", len(pairs)),
		zap.Duration("elapsed", time.Since(start)))
	return pairs, nil
}
