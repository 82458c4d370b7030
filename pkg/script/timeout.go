package script

import (
	"fmt"
	"sync"
	"time"

	"github.com/chazu/strata/pkg/kernel"
)

// EvalTimeout is the hard limit for a single evaluation.
const EvalTimeout = 5 * time.Second

type evalResult struct {
	solid  *kernel.VoxelSolid
	errors []EvalError
	err    error
}

// waitWithTimeout waits for a result from ch, returning a timeout error
// if evaluation exceeds EvalTimeout. If another Evaluate call has started
// since this one (the generation counter has moved past gen), this
// call's result is discarded and a "superseded" error is returned.
func waitWithTimeout(
	ch <-chan evalResult,
	gen uint64,
	mu *sync.Mutex,
	currentGen *uint64,
) (*kernel.VoxelSolid, []EvalError, error) {
	timer := time.NewTimer(EvalTimeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		mu.Lock()
		current := *currentGen
		mu.Unlock()

		if gen != current {
			return nil, nil, fmt.Errorf("evaluation superseded by newer request")
		}
		return res.solid, res.errors, res.err

	case <-timer.C:
		return nil, nil, fmt.Errorf("evaluation timed out after %s", EvalTimeout)
	}
}
