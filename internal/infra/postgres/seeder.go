package postgres

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v4/pgxpool"

	"pokequiz-service/internal/domain"
)

// Seeder wipes and repopulates quiz_questions from the fixed dataset.
// The wipe plus per-row inserts are deliberately not one transaction:
// reseeding is an admin maintenance action and a partial batch is an
// accepted risk, reported row by row instead of aborting the run.
type Seeder struct {
	pool *pgxpool.Pool
}

func NewSeeder(pool *pgxpool.Pool) *Seeder {
	return &Seeder{pool: pool}
}

func (s *Seeder) Reseed(ctx context.Context, questions []domain.Question) (domain.SeedReport, error) {
	report := domain.SeedReport{Expected: len(questions)}

	if _, err := s.pool.Exec(ctx, `DELETE FROM quiz_questions`); err != nil {
		return report, fmt.Errorf("clear questions: %w", err)
	}
	log.Printf("seed: cleared existing quiz questions")

	for _, q := range questions {
		if err := s.insertQuestion(ctx, q); err != nil {
			msg := fmt.Sprintf("failed to insert question %q: %v", q.CategoryName, err)
			report.Warnings = append(report.Warnings, msg)
			log.Printf("seed: %s", msg)
			continue
		}
		report.Inserted++
	}

	verified, err := s.CountQuestions(ctx)
	if err != nil {
		return report, fmt.Errorf("verify seed: %w", err)
	}
	report.Verified = verified
	if verified == 0 {
		return report, fmt.Errorf("seed verification failed: no questions in database after seeding")
	}
	if verified != report.Inserted {
		log.Printf("seed: expected %d questions but found %d", report.Inserted, verified)
	}
	return report, nil
}

func (s *Seeder) insertQuestion(ctx context.Context, q domain.Question) error {
	args := []interface{}{q.CategoryName, q.PokemonCount}
	for i := 0; i < domain.MaxSlots; i++ {
		if i < len(q.Slots) {
			slot := q.Slots[i]
			args = append(args, slot.Name, nullable(slot.ImageURL), slot.Dialogue, string(slot.ResultType))
		} else {
			args = append(args, nil, nil, nil, nil)
		}
	}

	_, err := s.pool.Exec(ctx, `INSERT INTO quiz_questions (
		category_name, pokemon_count,
		pokemon1_name, pokemon1_image_url, pokemon1_dialogue, pokemon1_result_type,
		pokemon2_name, pokemon2_image_url, pokemon2_dialogue, pokemon2_result_type,
		pokemon3_name, pokemon3_image_url, pokemon3_dialogue, pokemon3_result_type,
		pokemon4_name, pokemon4_image_url, pokemon4_dialogue, pokemon4_result_type,
		pokemon5_name, pokemon5_image_url, pokemon5_dialogue, pokemon5_result_type
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`,
		args...)
	return err
}

func (s *Seeder) CountQuestions(ctx context.Context) (int, error) {
	var count int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM quiz_questions`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return count, nil
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
