package category

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/budget-tracker/internal"
	"github.com/frahmantamala/budget-tracker/internal/transport"
)

type ServiceAPI interface {
	List(ctx context.Context, userID int64) ([]*Category, error)
	Create(ctx context.Context, userID int64, dto CreateCategoryDTO) (*Category, error)
	Update(ctx context.Context, userID, id int64, dto UpdateCategoryDTO) (*Category, error)
	Delete(ctx context.Context, userID, id int64) error
}

var errInvalidID = internal.NewValidationError("Invalid category ID", internal.ErrCodeInvalidID)

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	if baseHandler == nil {
		baseHandler = transport.NewBaseHandler(slog.Default())
	}
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	userID, ok := internal.UserIDFromContext(r.Context())
	if !ok {
		h.WriteAppError(w, internal.ErrMissingToken)
		return
	}

	categories, err := h.Service.List(r.Context(), userID)
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}

	resp := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		resp = append(resp, c.ToResponse())
	}
	h.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := internal.UserIDFromContext(r.Context())
	if !ok {
		h.WriteAppError(w, internal.ErrMissingToken)
		return
	}

	var dto CreateCategoryDTO
	if appErr := h.DecodeJSON(r, &dto); appErr != nil {
		h.WriteAppError(w, appErr)
		return
	}

	c, err := h.Service.Create(r.Context(), userID, dto)
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, c.ToResponse())
}

func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := internal.UserIDFromContext(r.Context())
	if !ok {
		h.WriteAppError(w, internal.ErrMissingToken)
		return
	}

	id, ok := h.PathID(r, "id")
	if !ok {
		h.WriteAppError(w, errInvalidID)
		return
	}

	var dto UpdateCategoryDTO
	if appErr := h.DecodeJSON(r, &dto); appErr != nil {
		h.WriteAppError(w, appErr)
		return
	}

	c, err := h.Service.Update(r.Context(), userID, id, dto)
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, c.ToResponse())
}

func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := internal.UserIDFromContext(r.Context())
	if !ok {
		h.WriteAppError(w, internal.ErrMissingToken)
		return
	}

	id, ok := h.PathID(r, "id")
	if !ok {
		h.WriteAppError(w, errInvalidID)
		return
	}

	if err := h.Service.Delete(r.Context(), userID, id); err != nil {
		h.HandleServiceError(w, r, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, DeleteResponse{Message: "Category deleted successfully"})
}
