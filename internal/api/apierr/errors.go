package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/azzbr/padelx/internal/model"
	"github.com/azzbr/padelx/internal/services/auth"
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

// Common error codes
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodePlayerNotFound      = "PLAYER_NOT_FOUND"
	CodeMatchNotFound       = "MATCH_NOT_FOUND"
	CodeSessionNotFound     = "SESSION_NOT_FOUND"
	CodeInvalidRosterSize   = "INVALID_ROSTER_SIZE"
	CodeUnknownStrategy     = "UNKNOWN_STRATEGY"
	CodeInvalidPreview      = "INVALID_PREVIEW"
	CodeInvalidSkill        = "INVALID_SKILL"
	CodeInvalidName         = "INVALID_NAME"
	CodeMatchNotWaiting     = "MATCH_NOT_WAITING"
	CodeMatchNotLive        = "MATCH_NOT_LIVE"
	CodeMatchCompleted      = "MATCH_COMPLETED"
	CodeInvalidSessionState = "INVALID_SESSION_STATE"
	CodeUsernameExists      = "USERNAME_EXISTS"
	CodeInvalidCredentials  = "INVALID_CREDENTIALS"
	CodeInternalError       = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
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

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrMatchNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeMatchNotFound, "Match not found"}}
	case errors.Is(err, model.ErrSessionNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeSessionNotFound, "Session not found"}}
	case errors.Is(err, model.ErrInvalidRosterSize):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRosterSize, "Roster size must be a positive multiple of 4"}}
	case errors.Is(err, model.ErrUnknownStrategy):
		return &httpError{http.StatusBadRequest, APIError{CodeUnknownStrategy, "Unknown matchmaking strategy"}}
	case errors.Is(err, model.ErrInvalidPreview):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPreview, err.Error()}}
	case errors.Is(err, model.ErrInvalidSkill):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidSkill, "Skill must be between 1 and 100"}}
	case errors.Is(err, model.ErrInvalidName):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidName, "Display name is required"}}
	case errors.Is(err, model.ErrDuplicatePlayer):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPreview, "Duplicate player in team"}}
	case errors.Is(err, model.ErrMatchNotWaiting):
		return &httpError{http.StatusConflict, APIError{CodeMatchNotWaiting, "Match has already started"}}
	case errors.Is(err, model.ErrMatchNotLive):
		return &httpError{http.StatusConflict, APIError{CodeMatchNotLive, "Match is not live"}}
	case errors.Is(err, model.ErrMatchCompleted):
		return &httpError{http.StatusConflict, APIError{CodeMatchCompleted, "Match is already completed"}}
	case errors.Is(err, model.ErrInvalidSessionState):
		return &httpError{http.StatusConflict, APIError{CodeInvalidSessionState, "Session is not in the required state"}}

	// Map auth errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid username or password"}}
	case errors.Is(err, auth.ErrInvalidSession):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or expired session"}}
	case errors.Is(err, auth.ErrUsernameExists):
		return &httpError{http.StatusConflict, APIError{CodeUsernameExists, "Username already exists"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
