package service

import (
	"context"
	"math/rand"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

// QuizService picks the next question for a quiz session. It keeps no state
// of its own: the caller carries the set of already-asked question IDs from
// turn to turn.
type QuizService struct {
	questionRepo domain.QuestionRepository
}

// NewQuizService creates a new quiz service
func NewQuizService(questionRepo domain.QuestionRepository) *QuizService {
	return &QuizService{
		questionRepo: questionRepo,
	}
}

// NextQuestion returns a uniformly random question from the given category
// (or from all categories when categoryID is 0) that is not in previousIDs.
// A nil question with a nil error means the eligible pool is exhausted and
// the quiz is over; it is not an error.
func (s *QuizService) NextQuestion(ctx context.Context, categoryID int, previousIDs []int) (*domain.Question, error) {
	var (
		pool []domain.Question
		err  error
	)
	if categoryID == 0 {
		pool, err = s.questionRepo.ListByDifficulty(ctx)
	} else {
		pool, err = s.questionRepo.ListByCategory(ctx, categoryID)
	}
	if err != nil {
		return nil, err
	}

	asked := make(map[int]bool, len(previousIDs))
	for _, id := range previousIDs {
		asked[id] = true
	}

	eligible := make([]domain.Question, 0, len(pool))
	for _, question := range pool {
		if !asked[question.ID] {
			eligible = append(eligible, question)
		}
	}

	if len(eligible) == 0 {
		return nil, nil
	}

	return &eligible[rand.Intn(len(eligible))], nil
}
