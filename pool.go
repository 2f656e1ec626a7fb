package posemap

import (
	"sync"
)

// EstimatorFactory creates the Estimator for the given pool slot, slots are
// numbered from zero
type EstimatorFactory func(slot int) (Estimator, error)

// Pool is a simple pool of Estimators so images can be processed
// concurrently without two calls sharing the same model instance
type Pool struct {
	// pool of estimators
	estimators chan Estimator
	// size of pool
	size  int
	close sync.Once
}

// NewPool creates a new estimator pool of the given size
func NewPool(size int, factory EstimatorFactory) (*Pool, error) {

	if size < 1 {
		size = 1
	}

	p := &Pool{
		estimators: make(chan Estimator, size),
		size:       size,
	}

	for i := 0; i < size; i++ {
		est, err := factory(i)

		if err != nil {
			// close any instances that may have been created before receiving
			// the error
			p.Close()
			return nil, err
		}

		// attach to pool
		p.Return(est)
	}

	return p, nil
}

// PoolOf returns a pool holding the given estimators
func PoolOf(ests ...Estimator) *Pool {

	p := &Pool{
		estimators: make(chan Estimator, len(ests)),
		size:       len(ests),
	}

	for _, est := range ests {
		p.Return(est)
	}

	return p
}

// Get an estimator from the pool, blocks until one is available
func (p *Pool) Get() Estimator {
	return <-p.estimators
}

// Return an estimator to the pool
func (p *Pool) Return(est Estimator) {
	select {
	case p.estimators <- est:
	default:
		// pool is full or closed
	}
}

// Size returns the number of estimators the pool was created with
func (p *Pool) Size() int {
	return p.size
}

// Close the pool and all estimators in it
func (p *Pool) Close() {
	p.close.Do(func() {
		// close channel
		close(p.estimators)

		// close all estimators
		for next := range p.estimators {
			_ = next.Close()
		}
	})
}
