package helper

import (
	"errors"
	"log/slog"
	"net/http"
)

/* ===============================
   Feedback envelope
=================================*/

// Feedback is the uniform result of every service operation.
type Feedback struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Result  any      `json:"result,omitempty"`
	Results any      `json:"results,omitempty"`
	Page    int      `json:"page,omitempty"`
	Pages   int      `json:"pages,omitempty"`
	Errors  []string `json:"errors,omitempty"`

	// HTTP status hint for the transport; zero means 200 on success, 400 on failure.
	Status int `json:"-"`
}

func NewFeedback(success bool, message string) Feedback {
	return Feedback{Success: success, Message: message}
}

func Ok(message string, result any) Feedback {
	return Feedback{Success: true, Message: message, Result: result}
}

func OkList(message string, results any, p *Pagination) Feedback {
	fb := Feedback{Success: true, Message: message, Results: results}
	if p != nil {
		fb.Page = p.Page
		fb.Pages = p.TotalPages
	}
	return fb
}

func Fail(message string) Feedback {
	return Feedback{Success: false, Message: message}
}

func FailStatus(status int, message string) Feedback {
	return Feedback{Success: false, Message: message, Status: status}
}

func FailErrors(message string, errs []string) Feedback {
	return Feedback{Success: false, Message: message, Errors: errs, Status: http.StatusBadRequest}
}

// FromError turns err into a failure envelope. An *AppError keeps its own
// message and status; anything else is logged and reported as fallback.
func FromError(err error, fallback string) Feedback {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return Feedback{Success: false, Message: appErr.Message, Status: appErr.Status}
	}
	slog.Error(fallback, "err", err)
	return Feedback{Success: false, Message: fallback, Status: http.StatusInternalServerError}
}

/* ===============================
   Typed errors
=================================*/

// AppError is an error whose message is safe to show to the caller.
type AppError struct {
	Status  int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func NewAppError(status int, message string) *AppError {
	return &AppError{Status: status, Message: message}
}

func BadRequest(message string) *AppError { return NewAppError(http.StatusBadRequest, message) }
func NotFound(message string) *AppError   { return NewAppError(http.StatusNotFound, message) }
func Conflict(message string) *AppError   { return NewAppError(http.StatusConflict, message) }
func Forbidden(message string) *AppError  { return NewAppError(http.StatusForbidden, message) }
