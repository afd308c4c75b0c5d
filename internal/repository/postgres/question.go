package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

// QuestionRepository implements the domain.QuestionRepository interface
type QuestionRepository struct {
	pool *pgxpool.Pool
}

// NewQuestionRepository creates a new question repository
func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{
		pool: pool,
	}
}

// List retrieves all questions in insertion order
func (r *QuestionRepository) List(ctx context.Context) ([]domain.Question, error) {
	query := `
		SELECT id, question, answer, category_id, difficulty
		FROM questions
		ORDER BY id
	`

	return r.queryQuestions(ctx, query)
}

// ListByDifficulty retrieves all questions ordered by difficulty
func (r *QuestionRepository) ListByDifficulty(ctx context.Context) ([]domain.Question, error) {
	query := `
		SELECT id, question, answer, category_id, difficulty
		FROM questions
		ORDER BY difficulty
	`

	return r.queryQuestions(ctx, query)
}

// ListByCategory retrieves the questions of a category ordered by difficulty
func (r *QuestionRepository) ListByCategory(ctx context.Context, categoryID int) ([]domain.Question, error) {
	query := `
		SELECT id, question, answer, category_id, difficulty
		FROM questions
		WHERE category_id = $1
		ORDER BY difficulty
	`

	return r.queryQuestions(ctx, query, categoryID)
}

// Search retrieves the questions whose text contains the term, ordered by difficulty
func (r *QuestionRepository) Search(ctx context.Context, term string) ([]domain.Question, error) {
	query := `
		SELECT id, question, answer, category_id, difficulty
		FROM questions
		WHERE question ILIKE '%' || $1 || '%'
		ORDER BY difficulty
	`

	return r.queryQuestions(ctx, query, term)
}

// Create creates a new question
func (r *QuestionRepository) Create(ctx context.Context, question *domain.Question) error {
	query := `
		INSERT INTO questions (question, answer, category_id, difficulty)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return r.pool.QueryRow(ctx, query,
		question.Text,
		question.Answer,
		question.CategoryID,
		question.Difficulty,
	).Scan(&question.ID)
}

// BulkCreate creates multiple questions in a single transaction
func (r *QuestionRepository) BulkCreate(ctx context.Context, questions []*domain.Question) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO questions (question, answer, category_id, difficulty)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	for _, question := range questions {
		err := tx.QueryRow(ctx, query,
			question.Text,
			question.Answer,
			question.CategoryID,
			question.Difficulty,
		).Scan(&question.ID)
		if err != nil {
			return fmt.Errorf("failed to create question: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Delete deletes a question
func (r *QuestionRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM questions WHERE id = $1`
	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrQuestionNotFound
	}
	return nil
}

// Count returns the total number of questions
func (r *QuestionRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM questions`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}
	return count, nil
}

// queryQuestions runs a question SELECT and scans the rows
func (r *QuestionRepository) queryQuestions(ctx context.Context, query string, args ...any) ([]domain.Question, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	var questions []domain.Question
	for rows.Next() {
		var question domain.Question
		err := rows.Scan(
			&question.ID,
			&question.Text,
			&question.Answer,
			&question.CategoryID,
			&question.Difficulty,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, question)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating questions: %w", err)
	}

	return questions, nil
}
