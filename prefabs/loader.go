package prefabs

import (
	"context"
	"errors"
	"sync"
)

// FetchFunc retrieves a recipe by name.
type FetchFunc func(ctx context.Context, name string) (*Recipe, error)

// Request asks the loader for a recipe. Tag is handed back untouched with the
// result so the caller can tell what the recipe was for.
type Request struct {
	Name string
	Tag  any
}

// Result is a finished request. Exactly one of Recipe and Err is set.
type Result struct {
	Request
	Recipe *Recipe
	Err    error
}

// Loader fetches recipes on background goroutines and queues the results
// until the frame thread drains them.
type Loader struct {
	ctx     context.Context
	fetch   FetchFunc
	results chan Result
	wg      sync.WaitGroup

	mu      sync.Mutex
	pending int
}

// NewLoader returns a loader using fetch, or LoadRecipe when fetch is nil.
func NewLoader(ctx context.Context, fetch FetchFunc) *Loader {
	if ctx == nil {
		ctx = context.Background()
	}
	if fetch == nil {
		fetch = func(_ context.Context, name string) (*Recipe, error) {
			return LoadRecipe(name)
		}
	}
	return &Loader{
		ctx:     ctx,
		fetch:   fetch,
		results: make(chan Result, 64),
	}
}

func (l *Loader) Request(req Request) {
	if l == nil {
		return
	}
	l.mu.Lock()
	l.pending++
	l.mu.Unlock()

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()

		recipe, err := l.fetch(l.ctx, req.Name)
		if err == nil && recipe == nil {
			err = &AssetLoadError{Name: req.Name, Err: ErrEmptyRecipe}
		}
		if err != nil {
			var loadErr *AssetLoadError
			if !errors.As(err, &loadErr) {
				err = &AssetLoadError{Name: req.Name, Err: err}
			}
			recipe = nil
		}

		select {
		case l.results <- Result{Request: req, Recipe: recipe, Err: err}:
		case <-l.ctx.Done():
			l.mu.Lock()
			l.pending--
			l.mu.Unlock()
		}
	}()
}

// Drain returns every result that has arrived so far without blocking.
func (l *Loader) Drain() []Result {
	if l == nil {
		return nil
	}
	var out []Result
	for {
		select {
		case r := <-l.results:
			l.mu.Lock()
			l.pending--
			l.mu.Unlock()
			out = append(out, r)
		default:
			return out
		}
	}
}

// Pending is the number of requests not yet drained.
func (l *Loader) Pending() int {
	if l == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pending
}

// Wait blocks until every in-flight fetch has posted its result. Results
// beyond the channel buffer stay blocked until drained, so callers with many
// outstanding requests should drain concurrently.
func (l *Loader) Wait() {
	if l == nil {
		return
	}
	l.wg.Wait()
}
