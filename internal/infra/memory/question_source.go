package memory

import (
	"context"
	"sort"
	"sync"

	"pokequiz-service/internal/domain"
)

// StaticQuestionSource serves questions from an in-memory slice (useful
// for tests/demos and as the fallback when no Postgres is configured).
// It also implements the seeder contract so the whole reseed path can
// run without a database.
type StaticQuestionSource struct {
	mu        sync.RWMutex
	questions map[int]domain.Question
	nextID    int
}

func NewStaticQuestionSource(questions []domain.Question) *StaticQuestionSource {
	s := &StaticQuestionSource{questions: make(map[int]domain.Question), nextID: 1}
	for _, q := range questions {
		if q.ID == 0 {
			q.ID = s.nextID
		}
		if q.ID >= s.nextID {
			s.nextID = q.ID + 1
		}
		s.questions[q.ID] = q
	}
	return s
}

func (s *StaticQuestionSource) ListQuestions(_ context.Context) ([]domain.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Question, 0, len(s.questions))
	for _, q := range s.questions {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *StaticQuestionSource) GetQuestion(_ context.Context, id int) (domain.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if q, ok := s.questions[id]; ok {
		return q, nil
	}
	return domain.Question{}, domain.ErrQuestionNotFound
}

// Reseed replaces all questions with the dataset, assigning fresh ids.
func (s *StaticQuestionSource) Reseed(_ context.Context, questions []domain.Question) (domain.SeedReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.questions = make(map[int]domain.Question, len(questions))
	s.nextID = 1
	for _, q := range questions {
		q.ID = s.nextID
		s.nextID++
		s.questions[q.ID] = q
	}
	n := len(questions)
	return domain.SeedReport{Inserted: n, Verified: n, Expected: n}, nil
}

func (s *StaticQuestionSource) CountQuestions(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.questions), nil
}
