package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"pokequiz-service/internal/domain"
)

// CommentStore is an in-memory implementation of app.CommentRepository.
type CommentStore struct {
	mu       sync.RWMutex
	comments map[int]domain.Comment
	nextID   int
	now      func() time.Time
}

func NewCommentStore() *CommentStore {
	return &CommentStore{
		comments: make(map[int]domain.Comment),
		nextID:   1,
		now:      time.Now,
	}
}

// NewCommentStoreWithClock is test-only for deterministic timestamps.
func NewCommentStoreWithClock(now func() time.Time) *CommentStore {
	s := NewCommentStore()
	s.now = now
	return s
}

func (s *CommentStore) ListForQuestion(_ context.Context, questionID int) ([]domain.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Comment
	for _, c := range s.comments {
		if c.QuestionID == questionID {
			out = append(out, c)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (s *CommentStore) ListForPokemon(_ context.Context, questionID int, pokemonName string) ([]domain.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Comment
	for _, c := range s.comments {
		if c.QuestionID == questionID && c.PokemonName == pokemonName {
			out = append(out, c)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (s *CommentStore) Add(_ context.Context, comment domain.Comment) (domain.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	comment.ID = s.nextID
	s.nextID++
	comment.CreatedAt = s.now()
	s.comments[comment.ID] = comment
	return comment, nil
}

func (s *CommentStore) Delete(_ context.Context, commentID int) (domain.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.comments[commentID]
	if !ok {
		return domain.Comment{}, domain.ErrCommentNotFound
	}
	delete(s.comments, commentID)
	return c, nil
}

// Count reports the stored comment total; handy in tests.
func (s *CommentStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.comments)
}

// sortNewestFirst orders by creation time descending, id descending as
// tie-break for same-instant inserts.
func sortNewestFirst(comments []domain.Comment) {
	sort.Slice(comments, func(i, j int) bool {
		if !comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].CreatedAt.After(comments[j].CreatedAt)
		}
		return comments[i].ID > comments[j].ID
	})
}
