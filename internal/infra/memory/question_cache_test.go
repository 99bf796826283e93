package memory

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"pokequiz-service/internal/domain"
)

type countingSource struct {
	inner *StaticQuestionSource
	lists int32
}

func (s *countingSource) ListQuestions(ctx context.Context) ([]domain.Question, error) {
	atomic.AddInt32(&s.lists, 1)
	return s.inner.ListQuestions(ctx)
}

func (s *countingSource) GetQuestion(ctx context.Context, id int) (domain.Question, error) {
	return s.inner.GetQuestion(ctx, id)
}

func newCountingSource() *countingSource {
	return &countingSource{inner: NewStaticQuestionSource([]domain.Question{
		{ID: 1, CategoryName: "a", PokemonCount: 2, Slots: []domain.Slot{
			{Name: "pikachu", ResultType: domain.ResultValid},
			{Name: "snorlax", ResultType: domain.ResultNo},
		}},
		{ID: 2, CategoryName: "b", PokemonCount: 2, Slots: []domain.Slot{
			{Name: "ditto", ResultType: domain.ResultSuperValid},
			{Name: "magikarp", ResultType: domain.ResultHellNo},
		}},
	})}
}

func TestQuestionCacheServesFromCache(t *testing.T) {
	source := newCountingSource()
	cache := NewQuestionCache(source, time.Minute)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		questions, err := cache.ListQuestions(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(questions) != 2 {
			t.Fatalf("expected 2 questions, got %d", len(questions))
		}
	}
	if got := atomic.LoadInt32(&source.lists); got != 1 {
		t.Fatalf("expected one source hit, got %d", got)
	}
}

func TestQuestionCacheAnswersByIDFromList(t *testing.T) {
	source := newCountingSource()
	cache := NewQuestionCache(source, time.Minute)
	ctx := context.Background()

	q, err := cache.GetQuestion(ctx, 2)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if q.CategoryName != "b" {
		t.Fatalf("wrong question: %+v", q)
	}
	if _, err := cache.GetQuestion(ctx, 1); err != nil {
		t.Fatalf("get cached: %v", err)
	}
	if got := atomic.LoadInt32(&source.lists); got != 1 {
		t.Fatalf("expected byID reads to reuse the list, got %d source hits", got)
	}
}

func TestQuestionCacheMissOnFreshCache(t *testing.T) {
	source := newCountingSource()
	cache := NewQuestionCache(source, time.Minute)
	ctx := context.Background()

	if _, err := cache.ListQuestions(ctx); err != nil {
		t.Fatalf("warm: %v", err)
	}
	if _, err := cache.GetQuestion(ctx, 42); !errors.Is(err, domain.ErrQuestionNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	// A miss on a fresh cache must not trigger a refill stampede.
	if got := atomic.LoadInt32(&source.lists); got != 1 {
		t.Fatalf("expected no refill on fresh miss, got %d source hits", got)
	}
}

func TestQuestionCacheExpires(t *testing.T) {
	source := newCountingSource()
	cache := NewQuestionCache(source, time.Minute)
	now := time.Now()
	cache.clock = func() time.Time { return now }
	ctx := context.Background()

	if _, err := cache.ListQuestions(ctx); err != nil {
		t.Fatalf("warm: %v", err)
	}
	now = now.Add(2 * time.Minute)
	if _, err := cache.ListQuestions(ctx); err != nil {
		t.Fatalf("list after expiry: %v", err)
	}
	if got := atomic.LoadInt32(&source.lists); got != 2 {
		t.Fatalf("expected a refill after expiry, got %d source hits", got)
	}
}

func TestQuestionCacheInvalidate(t *testing.T) {
	source := newCountingSource()
	cache := NewQuestionCache(source, time.Minute)
	ctx := context.Background()

	if _, err := cache.ListQuestions(ctx); err != nil {
		t.Fatalf("warm: %v", err)
	}
	if err := cache.Invalidate(ctx); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	if _, err := cache.ListQuestions(ctx); err != nil {
		t.Fatalf("list after invalidate: %v", err)
	}
	if got := atomic.LoadInt32(&source.lists); got != 2 {
		t.Fatalf("expected a refill after invalidate, got %d source hits", got)
	}
}
