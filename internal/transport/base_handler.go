package transport

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"sort"
	"strconv"
	"strings"

	errors "github.com/frahmantamala/budget-tracker/internal"
	"github.com/frahmantamala/budget-tracker/pkg/logger"
	"github.com/go-chi/chi"
)

// maxBodyBytes caps request bodies decoded by DecodeJSON.
const maxBodyBytes = 1 << 20

// BaseHandler provides common functionality for HTTP handlers
type BaseHandler struct {
	Logger *slog.Logger
}

// NewBaseHandler creates a base handler with logger
func NewBaseHandler(lg *slog.Logger) *BaseHandler {
	if lg == nil {
		lg = logger.LoggerWrapper()
		if lg == nil {
			lg = slog.Default()
		}
	}
	return &BaseHandler{Logger: lg}
}

// Log returns the request-scoped logger when the request carries one.
func (h *BaseHandler) Log(r *http.Request) *slog.Logger {
	if r != nil {
		if l, ok := logger.Lookup(r.Context()); ok {
			return l
		}
	}
	return h.Logger
}

// WriteJSON writes a JSON response
func (h *BaseHandler) WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError writes a {message} error response
func (h *BaseHandler) WriteError(w http.ResponseWriter, status int, message string) {
	h.WriteJSON(w, status, errors.ErrorBody{Message: message})
}

// WriteAppError renders an AppError with its status code and, for validation failures, the field list.
func (h *BaseHandler) WriteAppError(w http.ResponseWriter, appErr *errors.AppError) {
	status, body := appErr.ToHTTPResponse()
	h.WriteJSON(w, status, body)
}

// HandleServiceError maps any service error onto a response. Unknown errors become a generic 500.
func (h *BaseHandler) HandleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := errors.IsAppError(err)
	if !ok {
		h.Log(r).Error("unhandled service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if appErr.StatusCode >= http.StatusInternalServerError {
		h.Log(r).Error("service error", "error", appErr.Error(), "code", appErr.Code)
	} else {
		h.Log(r).Warn("request rejected", "status", appErr.StatusCode, "code", appErr.Code, "error", appErr.GetDetailedMessage())
	}
	h.WriteAppError(w, appErr)
}

// DecodeJSON reads the request body into dst. An empty body decodes as an empty object.
// A top-level field of the wrong type is reported as a field error.
func (h *BaseHandler) DecodeJSON(r *http.Request, dst interface{}) *errors.AppError {
	if r.Body == nil {
		return nil
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return errors.NewValidationError("Invalid request body", errors.ErrCodeValidationFailed).WithCause(err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, dst); err != nil {
		if field, value, ok := offendingField(body, dst); ok {
			return errors.NewValidationFieldError(field, field+" has an invalid type", value).WithCause(err)
		}
		return errors.NewValidationError("Invalid request body", errors.ErrCodeValidationFailed).WithCause(err)
	}
	return nil
}

// offendingField decodes each top-level member of body on its own into a fresh value of
// dst's type and returns the first member that fails along with the value the client sent.
func offendingField(body []byte, dst interface{}) (string, interface{}, bool) {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(body, &members); err != nil {
		return "", nil, false
	}
	rt := reflect.TypeOf(dst)
	if rt == nil || rt.Kind() != reflect.Ptr {
		return "", nil, false
	}

	keys := make([]string, 0, len(members))
	for k := range members {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		single, err := json.Marshal(map[string]json.RawMessage{k: members[k]})
		if err != nil {
			continue
		}
		if err := json.Unmarshal(single, reflect.New(rt.Elem()).Interface()); err != nil {
			var value interface{}
			_ = json.Unmarshal(members[k], &value)
			return k, value, true
		}
	}
	return "", nil, false
}

// PathID parses a positive integer route parameter.
func (h *BaseHandler) PathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ExtractTokenFromHeader extracts Bearer token from Authorization header
func (h *BaseHandler) ExtractTokenFromHeader(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ""
	}

	return strings.TrimSpace(authHeader[7:])
}
