package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"pokequiz-service/internal/domain"
)

const questionColumns = `id, category_name, pokemon_count,
	pokemon1_name, pokemon1_image_url, pokemon1_dialogue, pokemon1_result_type,
	pokemon2_name, pokemon2_image_url, pokemon2_dialogue, pokemon2_result_type,
	pokemon3_name, pokemon3_image_url, pokemon3_dialogue, pokemon3_result_type,
	pokemon4_name, pokemon4_image_url, pokemon4_dialogue, pokemon4_result_type,
	pokemon5_name, pokemon5_image_url, pokemon5_dialogue, pokemon5_result_type,
	created_at`

// QuestionStore reads the wide quiz_questions table.
type QuestionStore struct {
	pool *pgxpool.Pool
}

func NewQuestionStore(pool *pgxpool.Pool) *QuestionStore {
	return &QuestionStore{pool: pool}
}

func (s *QuestionStore) ListQuestions(ctx context.Context) ([]domain.Question, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+questionColumns+` FROM quiz_questions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()

	var questions []domain.Question
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return questions, nil
}

func (s *QuestionStore) GetQuestion(ctx context.Context, id int) (domain.Question, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+questionColumns+` FROM quiz_questions WHERE id=$1`, id)
	q, err := scanQuestion(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Question{}, domain.ErrQuestionNotFound
	}
	if err != nil {
		return domain.Question{}, fmt.Errorf("get question %d: %w", id, err)
	}
	return q, nil
}

func (s *QuestionStore) CountQuestions(ctx context.Context) (int, error) {
	var count int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM quiz_questions`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return count, nil
}

// Ping verifies database connectivity for the health endpoint.
func (s *QuestionStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func scanQuestion(row pgx.Row) (domain.Question, error) {
	var q domain.Question
	names := make([]sql.NullString, domain.MaxSlots)
	images := make([]sql.NullString, domain.MaxSlots)
	dialogues := make([]sql.NullString, domain.MaxSlots)
	results := make([]sql.NullString, domain.MaxSlots)

	dest := []interface{}{&q.ID, &q.CategoryName, &q.PokemonCount}
	for i := 0; i < domain.MaxSlots; i++ {
		dest = append(dest, &names[i], &images[i], &dialogues[i], &results[i])
	}
	dest = append(dest, &q.CreatedAt)

	if err := row.Scan(dest...); err != nil {
		return domain.Question{}, err
	}

	for i := 0; i < domain.MaxSlots; i++ {
		if !names[i].Valid || names[i].String == "" {
			continue
		}
		q.Slots = append(q.Slots, domain.Slot{
			Name:       names[i].String,
			ImageURL:   images[i].String,
			Dialogue:   dialogues[i].String,
			ResultType: domain.ResultCategory(results[i].String),
		})
	}
	return q, nil
}
