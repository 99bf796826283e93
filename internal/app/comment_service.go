package app

import (
	"context"
	"strings"

	"pokequiz-service/internal/domain"
)

// CommentRepository abstracts comment storage (postgres, in-memory).
type CommentRepository interface {
	ListForQuestion(ctx context.Context, questionID int) ([]domain.Comment, error)
	ListForPokemon(ctx context.Context, questionID int, pokemonName string) ([]domain.Comment, error)
	Add(ctx context.Context, comment domain.Comment) (domain.Comment, error)
	Delete(ctx context.Context, commentID int) (domain.Comment, error)
}

// CommentService is CRUD over visitor comments, scoped to a question.
type CommentService struct {
	comments CommentRepository
}

func NewCommentService(comments CommentRepository) *CommentService {
	return &CommentService{comments: comments}
}

// List returns every comment on a question, newest first.
func (s *CommentService) List(ctx context.Context, questionID int) ([]domain.Comment, error) {
	return s.comments.ListForQuestion(ctx, questionID)
}

// ListForPokemon filters to one option name, exact match against the
// stored value. Kept for older clients; new ones list and filter locally.
func (s *CommentService) ListForPokemon(ctx context.Context, questionID int, pokemonName string) ([]domain.Comment, error) {
	return s.comments.ListForPokemon(ctx, questionID, pokemonName)
}

// Add trims every field and stores the comment. Returns ErrValidation
// without touching storage when any field is empty after trimming.
func (s *CommentService) Add(ctx context.Context, questionID int, pokemonName, commenterName, commentText string) (domain.Comment, error) {
	pokemonName = strings.TrimSpace(pokemonName)
	commenterName = strings.TrimSpace(commenterName)
	commentText = strings.TrimSpace(commentText)

	if questionID <= 0 || pokemonName == "" || commenterName == "" || commentText == "" {
		return domain.Comment{}, domain.ErrValidation
	}

	return s.comments.Add(ctx, domain.Comment{
		QuestionID:    questionID,
		PokemonName:   pokemonName,
		CommenterName: commenterName,
		CommentText:   commentText,
	})
}

// Delete removes a comment by id and returns the removed record for
// confirmation display. ErrCommentNotFound when no such id.
func (s *CommentService) Delete(ctx context.Context, commentID int) (domain.Comment, error) {
	return s.comments.Delete(ctx, commentID)
}
