package errors

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"salesiq/internal/sales"
)

// ErrorHandler converts errors into problem-details responses and logs
// them with request context. Every transport handler routes failures
// through one shared instance so clients see a uniform error shape.
type ErrorHandler struct {
	logger *slog.Logger
}

// NewErrorHandler creates an error handler
func NewErrorHandler(logger *slog.Logger) *ErrorHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ErrorHandler{
		logger: logger.With(slog.String("component", "error_handler")),
	}
}

// HandleError logs the error and writes its RFC 7807 representation
func (h *ErrorHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	reqID := middleware.GetReqID(r.Context())
	problem := h.ErrorToProblem(err, r)

	level := slog.LevelWarn
	if problem.Status >= 500 {
		level = slog.LevelError
	}
	h.logger.Log(r.Context(), level, "request failed",
		slog.String("error", err.Error()),
		slog.Int("status", problem.Status),
		slog.String("request_id", reqID),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	)

	if reqID != "" {
		problem.WithExtension("trace_id", reqID)
	}
	render.Render(w, r, problem)
}

// ErrorToProblem maps an error to its problem-details representation.
// Core sentinels get dedicated types; anything unrecognized is an
// internal error with the detail withheld from the client.
func (h *ErrorHandler) ErrorToProblem(err error, r *http.Request) *ProblemDetails {
	var problem *ProblemDetails
	switch {
	case errors.As(err, &problem):
		// already a problem, pass through
	case errors.Is(err, sales.ErrInvalidArgument):
		problem = NewProblemDetails(http.StatusBadRequest, TypeInvalidArgument,
			"Invalid Argument", err.Error())
	case errors.Is(err, sales.ErrUndefinedStatistic):
		problem = NewProblemDetails(http.StatusUnprocessableEntity, TypeUndefinedStat,
			"Statistic Undefined", err.Error())
	default:
		problem = NewProblemDetails(http.StatusInternalServerError, TypeInternal,
			"Internal Server Error", "An unexpected error occurred")
	}
	problem.Instance = r.URL.Path
	return problem
}
