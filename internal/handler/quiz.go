package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zizouhuweidi/trivia/internal/service"
)

// QuizHandler handles quiz HTTP requests
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
	}
}

// Register registers the quiz routes
func (h *QuizHandler) Register(e *echo.Echo) {
	e.POST("/quizzes", h.NextQuestion)
}

// QuizCategoryRequest identifies the category a quiz is played in. ID 0 is
// the frontend's "All" sentinel.
type QuizCategoryRequest struct {
	ID   FlexInt `json:"id"`
	Type string  `json:"type"`
}

// QuizRequest represents the request for the next quiz question
type QuizRequest struct {
	PreviousQuestions []int                `json:"previous_questions"`
	QuizCategory      *QuizCategoryRequest `json:"quiz_category"`
}

// NextQuestion returns one random question not yet asked in this quiz
// session, or a null question when the pool is exhausted.
func (h *QuizHandler) NextQuestion(c echo.Context) error {
	var req QuizRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	categoryID := 0
	if req.QuizCategory != nil {
		categoryID = int(req.QuizCategory.ID)
	}

	question, err := h.quizService.NextQuestion(c.Request().Context(), categoryID, req.PreviousQuestions)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	return c.JSON(http.StatusOK, QuizResponse{
		Success:  true,
		Question: question,
	})
}
