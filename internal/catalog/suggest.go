package catalog

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"
)

const (
	// suggestDebounce is how long after the last keystroke a suggestion
	// fetch waits before firing.
	suggestDebounce = 300 * time.Millisecond

	// suggestLimit caps the returned suggestions.
	suggestLimit = 8

	// suggestPrefixTarget is the prefix-match count under which the
	// contains-match pass also runs.
	suggestPrefixTarget = 6
)

// NewSuggester returns the autocomplete engine.
func NewSuggester(remote Querier) *Suggester {
	return &Suggester{remote: remote, debounce: suggestDebounce}
}

// Suggester serves debounced title suggestions. Update supersedes any
// pending or in-flight fetch; the timer callback runs on its own
// goroutine, so the pending state is guarded by a mutex.
type Suggester struct {
	remote   Querier
	debounce time.Duration

	mu     sync.Mutex
	timer  *time.Timer
	cancel context.CancelFunc
}

// Update registers a keystroke. After the debounce delay elapses with no
// further call, suggestions for query are fetched and passed to deliver.
// A newer call cancels both the pending timer and any in-flight fetch.
func (s *Suggester) Update(ctx context.Context, query string, deliver func([]string)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return
	}

	s.timer = time.AfterFunc(s.debounce, func() {
		s.mu.Lock()
		fetchCtx, cancel := context.WithCancel(ctx)
		s.cancel = cancel
		s.mu.Unlock()
		defer cancel()

		suggestions, err := s.Suggest(fetchCtx, query)
		if err != nil {
			if fetchCtx.Err() == nil {
				slog.WarnContext(ctx, "catalog: suggestion fetch failed", "query", query, "error", err)
			}
			return
		}
		deliver(suggestions)
	})
}

// Suggest fetches suggestions synchronously: a prefix pass, widened to a
// contains pass when the prefix pass comes up short, deduplicated by exact
// title and capped.
func (s *Suggester) Suggest(ctx context.Context, query string) ([]string, error) {
	prefix, err := s.remote.Recipes(ctx, Query{TitlePrefix: query, Limit: suggestLimit})
	if err != nil {
		return nil, err
	}

	titles := make([]string, 0, suggestLimit)
	seen := map[string]bool{}
	for _, r := range prefix {
		if seen[r.Title] {
			continue
		}
		seen[r.Title] = true
		titles = append(titles, r.Title)
	}

	if len(titles) < suggestPrefixTarget {
		contains, err := s.remote.Recipes(ctx, Query{TitleContains: query, Limit: suggestLimit})
		if err != nil {
			return nil, err
		}
		for _, r := range contains {
			if seen[r.Title] {
				continue
			}
			seen[r.Title] = true
			titles = append(titles, r.Title)
		}
	}

	if len(titles) > suggestLimit {
		titles = titles[:suggestLimit]
	}
	return titles, nil
}
