package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"pokequiz-service/internal/domain"
)

const commentColumns = `id, question_id, pokemon_name, commenter_name, comment_text, created_at`

// CommentStore persists visitor comments.
type CommentStore struct {
	pool *pgxpool.Pool
}

func NewCommentStore(pool *pgxpool.Pool) *CommentStore {
	return &CommentStore{pool: pool}
}

func (s *CommentStore) ListForQuestion(ctx context.Context, questionID int) ([]domain.Comment, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+commentColumns+` FROM comments WHERE question_id=$1 ORDER BY created_at DESC, id DESC`,
		questionID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()
	return collectComments(rows)
}

func (s *CommentStore) ListForPokemon(ctx context.Context, questionID int, pokemonName string) ([]domain.Comment, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+commentColumns+` FROM comments WHERE question_id=$1 AND pokemon_name=$2 ORDER BY created_at DESC, id DESC`,
		questionID, pokemonName)
	if err != nil {
		return nil, fmt.Errorf("list comments for pokemon: %w", err)
	}
	defer rows.Close()
	return collectComments(rows)
}

func (s *CommentStore) Add(ctx context.Context, comment domain.Comment) (domain.Comment, error) {
	row := s.pool.QueryRow(ctx,
		`INSERT INTO comments (question_id, pokemon_name, commenter_name, comment_text)
		 VALUES ($1, $2, $3, $4) RETURNING `+commentColumns,
		comment.QuestionID, comment.PokemonName, comment.CommenterName, comment.CommentText)
	created, err := scanComment(row)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("add comment: %w", err)
	}
	return created, nil
}

func (s *CommentStore) Delete(ctx context.Context, commentID int) (domain.Comment, error) {
	row := s.pool.QueryRow(ctx,
		`DELETE FROM comments WHERE id=$1 RETURNING `+commentColumns, commentID)
	deleted, err := scanComment(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Comment{}, domain.ErrCommentNotFound
	}
	if err != nil {
		return domain.Comment{}, fmt.Errorf("delete comment %d: %w", commentID, err)
	}
	return deleted, nil
}

func collectComments(rows pgx.Rows) ([]domain.Comment, error) {
	var comments []domain.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return comments, nil
}

func scanComment(row pgx.Row) (domain.Comment, error) {
	var c domain.Comment
	err := row.Scan(&c.ID, &c.QuestionID, &c.PokemonName, &c.CommenterName, &c.CommentText, &c.CreatedAt)
	return c, err
}
