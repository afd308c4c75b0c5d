package handler

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

// QuestionsPerPage is the fixed page size for question listings.
const QuestionsPerPage = 10

// FlexInt is an int that also accepts its JSON value as a numeric string,
// since the browser frontend sends category ids both ways.
type FlexInt int

// UnmarshalJSON decodes an integer from a JSON number or numeric string.
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*f = FlexInt(n)
	return nil
}

// CategoryListResponse is the body of GET /categories.
type CategoryListResponse struct {
	Success    bool              `json:"success"`
	Categories []domain.Category `json:"categories"`
}

// QuestionListResponse is the body shared by the question list, delete,
// search and by-category endpoints.
type QuestionListResponse struct {
	Success         bool              `json:"success"`
	Questions       []domain.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	Categories      []domain.Category `json:"categories"`
	CurrentCategory any               `json:"current_category"`
}

// CreateQuestionResponse is the body of POST /questions/create.
type CreateQuestionResponse struct {
	Success bool `json:"success"`
	Created int  `json:"created"`
}

// QuizResponse is the body of POST /quizzes. Question is null when the
// eligible pool is exhausted.
type QuizResponse struct {
	Success  bool             `json:"success"`
	Question *domain.Question `json:"question"`
}

// newQuestionListResponse shapes a question list body, normalising nil
// slices so they serialize as [].
func newQuestionListResponse(questions []domain.Question, total int, categories []domain.Category) QuestionListResponse {
	if questions == nil {
		questions = []domain.Question{}
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	return QuestionListResponse{
		Success:         true,
		Questions:       questions,
		TotalQuestions:  total,
		Categories:      categories,
		CurrentCategory: nil,
	}
}

// pageParam reads the 1-based page query parameter. Absence or a value that
// does not parse falls back to page 1; out-of-range values are passed through
// untouched and yield empty pages downstream.
func pageParam(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil {
		return 1
	}
	return page
}
