package handler

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/pagination"
)

// QuestionHandler handles question-related HTTP requests
type QuestionHandler struct {
	questionRepo domain.QuestionRepository
	categoryRepo domain.CategoryRepository
	validate     *validator.Validate
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(questionRepo domain.QuestionRepository, categoryRepo domain.CategoryRepository) *QuestionHandler {
	return &QuestionHandler{
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
		validate:     validator.New(),
	}
}

// Register registers the question routes
func (h *QuestionHandler) Register(e *echo.Echo) {
	e.GET("/questions", h.List)
	e.DELETE("/questions/:id", h.Delete)
	e.POST("/questions/create", h.Create)
	e.POST("/question/search", h.Search)
	e.GET("/categories/:id/questions", h.ListByCategory)
}

// List returns one page of questions plus the totals and category list the
// frontend renders alongside them. An out-of-range page yields an empty
// questions list, not an error; only an empty store is a 404.
func (h *QuestionHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	questions, err := h.questionRepo.List(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if len(questions) == 0 {
		return echo.NewHTTPError(http.StatusNotFound)
	}

	categories, err := h.categoryRepo.List(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	page := pagination.Paginate(pageParam(c), questions, QuestionsPerPage)
	return c.JSON(http.StatusOK, newQuestionListResponse(page, len(questions), categories))
}

// Delete removes a question by id and returns the refreshed question list.
func (h *QuestionHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}

	ctx := c.Request().Context()
	if err := h.questionRepo.Delete(ctx, id); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	questions, err := h.questionRepo.List(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	categories, err := h.categoryRepo.List(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	page := pagination.Paginate(pageParam(c), questions, QuestionsPerPage)
	return c.JSON(http.StatusOK, newQuestionListResponse(page, len(questions), categories))
}

// CreateQuestionRequest represents the request to create a new question
type CreateQuestionRequest struct {
	Question   string  `json:"question"   validate:"required"`
	Answer     string  `json:"answer"     validate:"required"`
	Category   FlexInt `json:"category"   validate:"required"`
	Difficulty int     `json:"difficulty" validate:"required"`
}

// Create inserts a new question. Any failure, from a malformed body to an
// unknown category to a rejected insert, is a 422.
func (h *QuestionHandler) Create(c echo.Context) error {
	var req CreateQuestionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	if err := h.validate.Struct(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	ctx := c.Request().Context()
	if _, err := h.categoryRepo.GetByID(ctx, int(req.Category)); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	question := &domain.Question{
		Text:       req.Question,
		Answer:     req.Answer,
		CategoryID: int(req.Category),
		Difficulty: req.Difficulty,
	}
	if err := h.questionRepo.Create(ctx, question); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	return c.JSON(http.StatusOK, CreateQuestionResponse{
		Success: true,
		Created: question.ID,
	})
}

// SearchRequest represents the request to search questions. SearchTerm is a
// pointer so an absent key can be told apart from an empty string: only the
// absent key is an error, an empty string matches everything.
type SearchRequest struct {
	SearchTerm *string `json:"searchTerm"`
}

// Search returns every question containing the term, unpaginated, ordered by
// difficulty. The reported total counts all questions, not just the matches.
func (h *QuestionHandler) Search(c echo.Context) error {
	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.SearchTerm == nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}

	ctx := c.Request().Context()
	questions, err := h.questionRepo.Search(ctx, *req.SearchTerm)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	total, err := h.questionRepo.Count(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	categories, err := h.categoryRepo.List(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, newQuestionListResponse(questions, total, categories))
}

// ListByCategory returns one page of a category's questions ordered by
// difficulty. The reported total counts all questions across categories.
func (h *QuestionHandler) ListByCategory(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}

	ctx := c.Request().Context()
	questions, err := h.questionRepo.ListByCategory(ctx, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if len(questions) == 0 {
		return echo.NewHTTPError(http.StatusNotFound)
	}

	total, err := h.questionRepo.Count(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	categories, err := h.categoryRepo.List(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	page := pagination.Paginate(pageParam(c), questions, QuestionsPerPage)
	return c.JSON(http.StatusOK, newQuestionListResponse(page, total, categories))
}
