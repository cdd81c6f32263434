package helper

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name       string
		page, take int
		total      int64
		want       Pagination
	}{
		{"first page", 1, 10, 25, Pagination{Page: 1, Take: 10, Skip: 0, TotalPages: 3}},
		{"page clamped", 0, 10, 25, Pagination{Page: 1, Take: 10, Skip: 0, TotalPages: 3}},
		{"exact fit", 2, 10, 20, Pagination{Page: 2, Take: 10, Skip: 10, TotalPages: 2}},
		{"empty", 1, 10, 0, Pagination{Page: 1, Take: 10, Skip: 0, TotalPages: 0}},
		{"default take", 3, 0, 41, Pagination{Page: 3, Take: 20, Skip: 40, TotalPages: 3}},
		{"past last page", 7, 10, 25, Pagination{Page: 3, Take: 10, Skip: 20, TotalPages: 3}},
		{"huge page", math.MaxInt, 10, 25, Pagination{Page: 3, Take: 10, Skip: 20, TotalPages: 3}},
		{"huge page empty", math.MaxInt, 10, 0, Pagination{Page: 1, Take: 10, Skip: 0, TotalPages: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPagination(tt.page, tt.take, tt.total))
		})
	}
}

func TestFromError(t *testing.T) {
	fb := FromError(Conflict("Taken"), "fallback")
	assert.Equal(t, Feedback{Message: "Taken", Status: http.StatusConflict}, fb)

	fb = FromError(errors.New("boom"), "Unable to save")
	assert.False(t, fb.Success)
	assert.Equal(t, "Unable to save", fb.Message)
	assert.Equal(t, http.StatusInternalServerError, fb.Status)

	fb = FromError(RecordErr(gorm.ErrRecordNotFound, "Quiz not found"), "x")
	assert.Equal(t, http.StatusNotFound, fb.Status)
	assert.Equal(t, "Quiz not found", fb.Message)
}

func TestOkList(t *testing.T) {
	p := NewPagination(2, 5, 11)
	fb := OkList("ok", []int{1}, &p)
	assert.True(t, fb.Success)
	assert.Equal(t, 2, fb.Page)
	assert.Equal(t, 3, fb.Pages)

	fb = OkList("ok", []int{}, nil)
	assert.Zero(t, fb.Page)
	assert.Zero(t, fb.Pages)
}

type bindReq struct {
	Title string `json:"title" validate:"required"`
	Score int    `json:"score" validate:"gte=0"`
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) (int, Feedback) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	var fb Feedback
	require.NoError(t, json.Unmarshal(raw, &fb))
	return res.StatusCode, fb
}

func TestBindJSONAndFeedbackWriters(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: FiberErrorHandler})
	v := NewValidator()
	app.Post("/items/:id", func(c *fiber.Ctx) error {
		if _, err := ParamUint(c, "id"); err != nil {
			return JsonAppError(c, err, "bad id")
		}
		var req bindReq
		if err := BindJSON(c, v, &req); err != nil {
			return JsonBindError(c, err)
		}
		return JsonCreated(c, Ok("created", req.Title))
	})

	status, fb := doJSON(t, app, http.MethodPost, "/items/1", `{"title":"x"}`)
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "x", fb.Result)

	status, fb = doJSON(t, app, http.MethodPost, "/items/1", `{"score":-1}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Validation failed", fb.Message)
	assert.ElementsMatch(t, []string{"title: required", "score: gte=0"}, fb.Errors)

	status, fb = doJSON(t, app, http.MethodPost, "/items/1", `{`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid request body", fb.Message)

	status, fb = doJSON(t, app, http.MethodPost, "/items/zero", `{}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid id", fb.Message)

	status, fb = doJSON(t, app, http.MethodGet, "/missing", ``)
	assert.Equal(t, http.StatusNotFound, status)
	assert.False(t, fb.Success)
}

func TestQueryReaders(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"page":     QueryPage(c),
			"dept":     QueryUint(c, "dept"),
			"paginate": QueryBool(c, "paginate", true),
		})
	})

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/?page=-2&dept=abc&paginate=false", nil))
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
	assert.Equal(t, float64(1), got["page"])
	assert.Equal(t, float64(0), got["dept"])
	assert.Equal(t, false, got["paginate"])
}
