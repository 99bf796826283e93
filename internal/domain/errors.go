package domain

import "errors"

var (
	// ErrQuestionNotFound indicates the requested question id does not exist.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrPokemonNotFound indicates a submitted name matched none of the
	// question's stored slots.
	ErrPokemonNotFound = errors.New("selected pokemon not found in question")
	// ErrCommentNotFound indicates the comment id does not exist.
	ErrCommentNotFound = errors.New("comment not found")
	// ErrValidation is returned when a required field is empty after trimming.
	ErrValidation = errors.New("missing required fields")
)
