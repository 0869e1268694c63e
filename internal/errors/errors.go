// Package errors provides RFC 7807 problem-details responses and the
// central error handler the HTTP transport routes every failure through.
package errors

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/render"
)

// Problem types exposed by the API, used as the RFC 7807 "type" member
const (
	TypeValidation      = "/errors/validation"
	TypeNotFound        = "/errors/not-found"
	TypeUndefinedStat   = "/errors/statistic-undefined"
	TypeInvalidArgument = "/errors/invalid-argument"
	TypeRateLimit       = "/errors/rate-limit"
	TypeInternal        = "/errors/internal"
)

// ProblemDetails implements RFC 7807 Problem Details for HTTP APIs
type ProblemDetails struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`

	// Extensions carries additional response members (trace_id etc.)
	Extensions map[string]interface{} `json:"-"`
}

// Render implements the render.Renderer interface
func (pd *ProblemDetails) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, pd.Status)
	return nil
}

// Error implements the error interface so a ProblemDetails can travel as
// an ordinary error through handler code
func (pd *ProblemDetails) Error() string {
	return pd.Title + ": " + pd.Detail
}

// MarshalJSON flattens extensions into the response object
func (pd *ProblemDetails) MarshalJSON() ([]byte, error) {
	data := make(map[string]interface{}, 5+len(pd.Extensions))
	data["type"] = pd.Type
	data["title"] = pd.Title
	data["status"] = pd.Status
	if pd.Detail != "" {
		data["detail"] = pd.Detail
	}
	if pd.Instance != "" {
		data["instance"] = pd.Instance
	}
	for k, v := range pd.Extensions {
		data[k] = v
	}
	return json.Marshal(data)
}

// NewProblemDetails creates an RFC 7807 compliant error
func NewProblemDetails(status int, problemType, title, detail string) *ProblemDetails {
	return &ProblemDetails{
		Type:       problemType,
		Title:      title,
		Status:     status,
		Detail:     detail,
		Extensions: make(map[string]interface{}),
	}
}

// WithExtension adds an extension member to the problem details
func (pd *ProblemDetails) WithExtension(key string, value interface{}) *ProblemDetails {
	pd.Extensions[key] = value
	return pd
}

// ErrValidation builds a field-addressed validation problem
func ErrValidation(field, detail string) *ProblemDetails {
	return NewProblemDetails(http.StatusBadRequest, TypeValidation, "Validation Failed", detail).
		WithExtension("field", field)
}

// ErrNotFound builds a resource-not-found problem
func ErrNotFound(detail string) *ProblemDetails {
	return NewProblemDetails(http.StatusNotFound, TypeNotFound, "Not Found", detail)
}
