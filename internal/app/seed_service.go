package app

import (
	"context"

	"pokequiz-service/internal/domain"
)

// QuestionSeeder wipes and repopulates the question store.
type QuestionSeeder interface {
	Reseed(ctx context.Context, questions []domain.Question) (domain.SeedReport, error)
	CountQuestions(ctx context.Context) (int, error)
}

// CacheInvalidator drops cached question content after a reseed.
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

// SeedStatus describes how much of the fixed dataset is present.
type SeedStatus struct {
	Seeded        bool   `json:"seeded"`
	QuestionCount int    `json:"questionCount"`
	ExpectedCount int    `json:"expectedCount"`
	Status        string `json:"status"`
}

// SeedService owns the admin reseed path: wipe, repopulate from the
// fixed in-code dataset, verify the row count.
type SeedService struct {
	seeder  QuestionSeeder
	dataset []domain.Question
	caches  []CacheInvalidator
}

func NewSeedService(seeder QuestionSeeder, dataset []domain.Question, caches ...CacheInvalidator) *SeedService {
	return &SeedService{seeder: seeder, dataset: dataset, caches: caches}
}

// ExpectedCount is the size of the fixed dataset.
func (s *SeedService) ExpectedCount() int {
	return len(s.dataset)
}

// Reseed wipes existing questions (comments cascade with them) and
// inserts the dataset. Per-row failures are collected in the report
// without aborting the batch; caches are invalidated best-effort.
func (s *SeedService) Reseed(ctx context.Context) (domain.SeedReport, error) {
	report, err := s.seeder.Reseed(ctx, s.dataset)
	if err != nil {
		return report, err
	}
	for _, cache := range s.caches {
		_ = cache.Invalidate(ctx)
	}
	return report, nil
}

// Status reports the current seeding state without requiring auth.
func (s *SeedService) Status(ctx context.Context) (SeedStatus, error) {
	count, err := s.seeder.CountQuestions(ctx)
	if err != nil {
		return SeedStatus{}, err
	}
	status := SeedStatus{
		Seeded:        count > 0,
		QuestionCount: count,
		ExpectedCount: len(s.dataset),
	}
	switch {
	case count == 0:
		status.Status = "empty"
	case count == len(s.dataset):
		status.Status = "complete"
	default:
		status.Status = "partial"
	}
	return status, nil
}
