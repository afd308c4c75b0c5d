package domain

import (
	"context"
	"errors"
)

// Common errors
var (
	ErrQuestionNotFound = errors.New("question not found")
)

// QuestionRepository defines the interface for question-related operations
type QuestionRepository interface {
	// List retrieves all questions in insertion order
	List(ctx context.Context) ([]Question, error)

	// ListByDifficulty retrieves all questions ordered by difficulty
	ListByDifficulty(ctx context.Context) ([]Question, error)

	// ListByCategory retrieves the questions of a category ordered by difficulty
	ListByCategory(ctx context.Context, categoryID int) ([]Question, error)

	// Search retrieves the questions whose text contains the term, ordered by difficulty
	Search(ctx context.Context, term string) ([]Question, error)

	// Create creates a new question
	Create(ctx context.Context, question *Question) error

	// BulkCreate creates multiple questions in a single transaction
	BulkCreate(ctx context.Context, questions []*Question) error

	// Delete deletes a question
	Delete(ctx context.Context, id int) error

	// Count returns the total number of questions
	Count(ctx context.Context) (int, error)
}

// Question represents a trivia question
type Question struct {
	ID         int    `json:"id"`
	Text       string `json:"question"`
	Answer     string `json:"answer"`
	CategoryID int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}
