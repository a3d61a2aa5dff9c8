package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/reversigame/internal/model"
	"github.com/mcoot/reversigame/internal/storage"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Error codes
const (
	CodeInvalidRequest  = "INVALID_REQUEST"
	CodeInvalidBoard    = "INVALID_BOARD"
	CodeInvalidPosition = "INVALID_POSITION"
	CodeInvalidColor    = "INVALID_COLOR"
	CodeIllegalMove     = "ILLEGAL_MOVE"
	CodePlayerNotFound  = "PLAYER_NOT_FOUND"
	CodeAlreadyBanned   = "ALREADY_BANNED"
	CodeNameTaken       = "NAME_TAKEN"
	CodeNotAdmin        = "NOT_ADMIN"
	CodeUnavailable     = "UNAVAILABLE"
	CodeNotFound        = "NOT_FOUND"
	CodeInternalError   = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	// Rules engine
	case errors.Is(err, model.ErrIllegalMove):
		return &httpError{http.StatusBadRequest, APIError{CodeIllegalMove, "Move is not legal"}}
	case errors.Is(err, model.ErrInvalidBoard):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidBoard, "Board must be 8x8 with cells 0, 1 or 2"}}
	case errors.Is(err, model.ErrInvalidPosition):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPosition, "Position is off the board"}}
	case errors.Is(err, model.ErrInvalidColor):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidColor, "Color must be 1 (dark) or 2 (light)"}}

	// Moderation
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrAlreadyBanned):
		return &httpError{http.StatusForbidden, APIError{CodeAlreadyBanned, "Username is banned"}}
	case errors.Is(err, model.ErrNameTaken):
		return &httpError{http.StatusConflict, APIError{CodeNameTaken, "Username is already registered"}}
	case errors.Is(err, model.ErrNotAdmin):
		return &httpError{http.StatusForbidden, APIError{CodeNotAdmin, "Administrator secret required"}}

	case errors.Is(err, storage.ErrUnavailable):
		return &httpError{http.StatusServiceUnavailable, APIError{CodeUnavailable, "Player directory unavailable"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}

// NewNotFoundError creates an error for an unknown route
func NewNotFoundError(path string) error {
	return &httpError{http.StatusNotFound, APIError{CodeNotFound, "No route for " + path}}
}
