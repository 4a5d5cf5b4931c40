package morphing

import (
	"context"
	"sync"

	"github.com/notargets/gomorph/types"
	"github.com/notargets/gomorph/utils"
)

// Case is one independent solve of a sweep
type Case struct {
	Direction types.MorphingDirection
	FreeUpper []float64
	Spars     []float64
	Parent    Configuration
}

type Outcome struct {
	Result *Result
	Err    error
}

// Sweep solves the cases over parallelDegree goroutines, each working through
// a contiguous bucket of cases. Outcomes are in case order. Cases not yet
// started when ctx is done report the context error.
func (s *Solver) Sweep(ctx context.Context, cases []Case, parallelDegree int) (out []Outcome) {
	var (
		pm = utils.NewPartitionMap(parallelDegree, len(cases))
		wg = sync.WaitGroup{}
	)
	out = make([]Outcome, len(cases))
	for np := 0; np < pm.ParallelDegree; np++ {
		if pm.GetBucketDimension(np) == 0 {
			continue
		}
		wg.Add(1)
		go func(np int) {
			defer wg.Done()
			kMin, kMax := pm.GetBucketRange(np)
			for k := kMin; k < kMax; k++ {
				if err := ctx.Err(); err != nil {
					out[k].Err = err
					continue
				}
				c := cases[k]
				out[k].Result, out[k].Err = s.Solve(c.Direction, c.FreeUpper, c.Spars, c.Parent)
			}
		}(np)
	}
	wg.Wait()
	return
}
