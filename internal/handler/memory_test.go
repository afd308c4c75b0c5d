package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/service"
)

// memQuestionRepo is an in-memory domain.QuestionRepository for handler tests.
type memQuestionRepo struct {
	questions []domain.Question
	nextID    int
	err       error
}

func newMemQuestionRepo(questions ...domain.Question) *memQuestionRepo {
	nextID := 1
	for _, q := range questions {
		if q.ID >= nextID {
			nextID = q.ID + 1
		}
	}
	return &memQuestionRepo{questions: questions, nextID: nextID}
}

func (r *memQuestionRepo) List(ctx context.Context) ([]domain.Question, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]domain.Question, len(r.questions))
	copy(out, r.questions)
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memQuestionRepo) ListByDifficulty(ctx context.Context) ([]domain.Question, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]domain.Question, len(r.questions))
	copy(out, r.questions)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Difficulty < out[j].Difficulty })
	return out, nil
}

func (r *memQuestionRepo) ListByCategory(ctx context.Context, categoryID int) ([]domain.Question, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []domain.Question
	for _, q := range r.questions {
		if q.CategoryID == categoryID {
			out = append(out, q)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Difficulty < out[j].Difficulty })
	return out, nil
}

func (r *memQuestionRepo) Search(ctx context.Context, term string) ([]domain.Question, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []domain.Question
	for _, q := range r.questions {
		if strings.Contains(strings.ToLower(q.Text), strings.ToLower(term)) {
			out = append(out, q)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Difficulty < out[j].Difficulty })
	return out, nil
}

func (r *memQuestionRepo) Create(ctx context.Context, question *domain.Question) error {
	if r.err != nil {
		return r.err
	}
	question.ID = r.nextID
	r.nextID++
	r.questions = append(r.questions, *question)
	return nil
}

func (r *memQuestionRepo) BulkCreate(ctx context.Context, questions []*domain.Question) error {
	for _, q := range questions {
		if err := r.Create(ctx, q); err != nil {
			return err
		}
	}
	return nil
}

func (r *memQuestionRepo) Delete(ctx context.Context, id int) error {
	if r.err != nil {
		return r.err
	}
	for i, q := range r.questions {
		if q.ID == id {
			r.questions = append(r.questions[:i], r.questions[i+1:]...)
			return nil
		}
	}
	return domain.ErrQuestionNotFound
}

func (r *memQuestionRepo) Count(ctx context.Context) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	return len(r.questions), nil
}

// memCategoryRepo is an in-memory domain.CategoryRepository for handler tests.
type memCategoryRepo struct {
	categories []domain.Category
	err        error
}

func newMemCategoryRepo(categories ...domain.Category) *memCategoryRepo {
	return &memCategoryRepo{categories: categories}
}

func (r *memCategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]domain.Category, len(r.categories))
	copy(out, r.categories)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out, nil
}

func (r *memCategoryRepo) GetByID(ctx context.Context, id int) (*domain.Category, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, c := range r.categories {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

func (r *memCategoryRepo) Create(ctx context.Context, category *domain.Category) error {
	if r.err != nil {
		return r.err
	}
	for _, c := range r.categories {
		if c.ID == category.ID {
			return nil
		}
	}
	r.categories = append(r.categories, *category)
	return nil
}

// newTestServer wires the handlers onto an echo instance the way main does,
// with the error handler installed and logging discarded.
func newTestServer(t *testing.T, questionRepo domain.QuestionRepository, categoryRepo domain.CategoryRepository) *echo.Echo {
	t.Helper()

	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil)))

	NewCategoryHandler(categoryRepo).Register(e)
	NewQuestionHandler(questionRepo, categoryRepo).Register(e)
	NewQuizHandler(service.NewQuizService(questionRepo)).Register(e)

	return e
}

// doRequest performs a request against the test server and returns the
// recorded response.
func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// seedCategories returns the category fixtures used across handler tests.
func seedCategories() []domain.Category {
	return []domain.Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
	}
}

// seedQuestions returns n question fixtures alternating between the two
// fixture categories.
func seedQuestions(n int) []domain.Question {
	questions := make([]domain.Question, n)
	for i := range questions {
		questions[i] = domain.Question{
			ID:         i + 1,
			Text:       "Question " + string(rune('A'+i%26)),
			Answer:     "Answer",
			CategoryID: i%2 + 1,
			Difficulty: i%5 + 1,
		}
	}
	return questions
}
