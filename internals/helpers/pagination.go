package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Page sizes per listing
=================================*/

const (
	PerPageAdmins      = 10
	PerPageStudents    = 10
	PerPageTeachers    = 20
	PerPageCourses     = 20
	PerPageTopics      = 20
	PerPageQuizzes     = 20
	PerPageQuestions   = 20
	PerPageDepartments = 20
)

// Pagination is the window for one page of a listing.
type Pagination struct {
	Page       int `json:"page"`
	Take       int `json:"take"`
	Skip       int `json:"skip"`
	TotalPages int `json:"total_pages"`
}

// NewPagination clamps page into [1, max(TotalPages, 1)] and take to a positive size,
// then derives the offset and the page count (ceil(total/take)).
func NewPagination(page, take int, total int64) Pagination {
	if take <= 0 {
		take = 20
	}
	if page < 1 {
		page = 1
	}
	totalPages := int((total + int64(take) - 1) / int64(take))
	if last := max(totalPages, 1); page > last {
		page = last
	}
	return Pagination{
		Page:       page,
		Take:       take,
		Skip:       (page - 1) * take,
		TotalPages: totalPages,
	}
}

/* ===============================
   Query string readers
=================================*/

// QueryPage reads ?page= and falls back to 1.
func QueryPage(c *fiber.Ctx) int {
	page, err := strconv.Atoi(strings.TrimSpace(c.Query("page", "1")))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// QueryUint reads an unsigned id from the query string; 0 when absent or invalid.
func QueryUint(c *fiber.Ctx, key string) uint {
	v, err := strconv.ParseUint(strings.TrimSpace(c.Query(key)), 10, 64)
	if err != nil {
		return 0
	}
	return uint(v)
}

// QueryBoolPtr reads an optional boolean; nil when absent or invalid.
func QueryBoolPtr(c *fiber.Ctx, key string) *bool {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &b
}

// QueryBool reads a boolean with a default.
func QueryBool(c *fiber.Ctx, key string, def bool) bool {
	if b := QueryBoolPtr(c, key); b != nil {
		return *b
	}
	return def
}

// ParamUint parses a positive path parameter.
func ParamUint(c *fiber.Ctx, key string) (uint, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(c.Params(key)), 10, 64)
	if err != nil || v == 0 {
		return 0, BadRequest("Invalid " + key)
	}
	return uint(v), nil
}
