// Package audit implements the classification engine that resolves
// expectations against the lockfile occurrence index.
package audit

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/soldera/lockaudit/internal/core/domain"
)

// Engine classifies expectations against an occurrence index. It holds no
// mutable state across calls; the index it reads is immutable, so batch
// expectations can be resolved concurrently.
type Engine struct {
	parallelism int
}

// New creates an Engine with parallelism bounded by the available CPUs.
func New() *Engine {
	return &Engine{parallelism: runtime.GOMAXPROCS(0)}
}

// Query audits a single ad-hoc expectation: a package name with an optional
// version. An empty version means presence alone decides the status.
func (e *Engine) Query(ix *domain.Index, name, version string) domain.Result {
	exp := domain.Expectation{Name: domain.NewInternedString(name)}
	if version != "" {
		exp.Versions = []domain.VersionSpec{domain.VersionSpec(version)}
	}
	return resolve(ix, exp)
}

// Run audits each expectation independently and assembles the run. Results
// land at their expectation's input position regardless of completion order;
// the final ordering always equals the input ordering.
func (e *Engine) Run(ctx context.Context, ix *domain.Index, exps []domain.Expectation) domain.Run {
	results := make([]domain.Result, len(exps))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(e.parallelism)
	for i, exp := range exps {
		g.Go(func() error {
			results[i] = resolve(ix, exp)
			return nil
		})
	}
	// resolve never fails; Wait only fences the goroutines.
	_ = g.Wait()

	return domain.NewRun(results)
}

func resolve(ix *domain.Index, exp domain.Expectation) domain.Result {
	res := domain.Result{Expectation: exp}

	occs := ix.OccurrencesFor(exp.Name.String())
	if len(occs) == 0 {
		res.Status = domain.StatusNotFound
		return res
	}
	res.Occurrences = occs

	if len(exp.Versions) == 0 {
		res.Status = domain.StatusFound
		res.Matches = occs
		return res
	}

	for _, o := range occs {
		for _, spec := range exp.Versions {
			if spec.Matches(o.Version) {
				res.Matches = append(res.Matches, o)
				break
			}
		}
	}

	switch domain.Classify(exp.Versions, res.FoundVersions()) {
	case domain.AllSatisfied:
		res.Status = domain.StatusFound
	case domain.SomeSatisfied:
		res.Status = domain.StatusPartialMatch
	default:
		res.Status = domain.StatusVersionMismatch
	}
	return res
}
