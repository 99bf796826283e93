package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"pokequiz-service/internal/app"
	"pokequiz-service/internal/domain"
)

// QuestionCache wraps a QuestionRepository with a TTL cache of the full
// question set. Questions are immutable between reseeds, so one cached
// list answers both the list and single-question reads.
type QuestionCache struct {
	source app.QuestionRepository
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand

	mu        sync.RWMutex
	byID      map[int]domain.Question
	ordered   []domain.Question
	expiresAt time.Time
}

func NewQuestionCache(source app.QuestionRepository, ttl time.Duration) *QuestionCache {
	return &QuestionCache{
		source: source,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (c *QuestionCache) ListQuestions(ctx context.Context) ([]domain.Question, error) {
	if ordered, ok := c.cachedList(); ok {
		return ordered, nil
	}
	if err := c.refill(ctx); err != nil {
		return nil, err
	}
	ordered, _ := c.cachedList()
	return ordered, nil
}

func (c *QuestionCache) GetQuestion(ctx context.Context, id int) (domain.Question, error) {
	if q, ok := c.cachedQuestion(id); ok {
		return q, nil
	}

	c.mu.RLock()
	fresh := c.expiresAt.After(c.clock())
	c.mu.RUnlock()
	if fresh {
		// Cache is current and the id simply is not there.
		return domain.Question{}, domain.ErrQuestionNotFound
	}

	if err := c.refill(ctx); err != nil {
		return domain.Question{}, err
	}
	if q, ok := c.cachedQuestion(id); ok {
		return q, nil
	}
	return domain.Question{}, domain.ErrQuestionNotFound
}

// Invalidate drops the cached set so the next read hits the source.
func (c *QuestionCache) Invalidate(_ context.Context) error {
	c.mu.Lock()
	c.byID = nil
	c.ordered = nil
	c.expiresAt = time.Time{}
	c.mu.Unlock()
	return nil
}

func (c *QuestionCache) cachedList() ([]domain.Question, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.ordered != nil && c.expiresAt.After(c.clock()) {
		return c.ordered, true
	}
	return nil, false
}

func (c *QuestionCache) cachedQuestion(id int) (domain.Question, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.byID == nil || !c.expiresAt.After(c.clock()) {
		return domain.Question{}, false
	}
	q, ok := c.byID[id]
	return q, ok
}

func (c *QuestionCache) refill(ctx context.Context) error {
	_, err, _ := c.sf.Do("questions", func() (interface{}, error) {
		if _, ok := c.cachedList(); ok {
			return nil, nil
		}
		questions, err := c.source.ListQuestions(ctx)
		if err != nil {
			return nil, err
		}
		byID := make(map[int]domain.Question, len(questions))
		for _, q := range questions {
			byID[q.ID] = q
		}
		c.mu.Lock()
		c.byID = byID
		c.ordered = questions
		c.expiresAt = c.clock().Add(c.ttlWithJitter())
		c.mu.Unlock()
		return nil, nil
	})
	return err
}

func (c *QuestionCache) ttlWithJitter() time.Duration {
	if c.ttl <= 0 {
		return 0
	}
	// up to 10% jitter to spread expirations
	jitterMax := int64(c.ttl) / 10
	return c.ttl + time.Duration(c.rnd.Int63n(jitterMax+1))
}
