package poker

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/google/uuid"
)

// Match is one black-versus-white pairing waiting to be adjudicated.
type Match struct {
	ID    string
	Black []string
	White []string
}

// NewMatch pairs two hands under a fresh random ID.
func NewMatch(black, white []string) Match {
	return Match{ID: uuid.NewString(), Black: black, White: white}
}

// Result pairs a Match with its Outcome, or with the error that prevented it.
type Result struct {
	Match   Match
	Outcome Outcome
	Err     error
}

// PlayAll adjudicates independent matches on a bounded pool of goroutines.
// Results are returned in the order of matches. Matches not started before ctx
// is done get ctx.Err() as their error.
func (r Referee) PlayAll(ctx context.Context, matches []Match) []Result {
	results := make([]Result, len(matches))
	jobs := make(chan int)
	var wg sync.WaitGroup

	workers := r.workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = min(workers, len(matches))
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				o, err := r.Play(matches[i].Black, matches[i].White)
				results[i] = Result{Match: matches[i], Outcome: o, Err: err}
			}
		}()
	}

	next := 0
feed:
	for ; next < len(matches); next++ {
		if ctx.Err() != nil {
			break
		}
		select {
		case <-ctx.Done():
			break feed
		case jobs <- next:
		}
	}
	close(jobs)
	wg.Wait()

	for i := next; i < len(matches); i++ {
		results[i] = Result{Match: matches[i], Err: ctx.Err()}
	}
	if next < len(matches) {
		r.log().Warn("batch interrupted", slog.Int("played", next), slog.Int("skipped", len(matches)-next))
	}
	return results
}
