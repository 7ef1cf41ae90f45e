// AngelaMos | 2026
// handler.go

package menu

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/angelamos/eatgreet/internal/core"
	"github.com/angelamos/eatgreet/internal/middleware"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// RegisterRoutes mounts the menu surface. Reads are public; writes require
// a catalog-managing role, with ownership enforced per item below.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, catalogManagerOnly func(http.Handler) http.Handler,
) {
	r.Route("/menu", func(r chi.Router) {
		r.Get("/", h.ListItems)
		r.Get("/{itemID}", h.GetItem)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Use(catalogManagerOnly)

			r.Post("/", h.CreateItem)
			r.Put("/{itemID}", h.UpdateItem)
			r.Delete("/{itemID}", h.DeleteItem)
		})
	})
}

func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	params := ListMenuItemsParams{
		RestaurantID: r.URL.Query().Get("restaurant"),
		CategoryID:   r.URL.Query().Get("category"),
		OnlyVeg:      r.URL.Query().Get("veg") == "true",
	}

	items, err := h.service.ListItems(r.Context(), params)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, MenuItemListResponse{Items: ToMenuItemResponseList(items)})
}

func (h *Handler) GetItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")

	item, err := h.service.GetItem(r.Context(), itemID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "menu item")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToMenuItemResponse(item))
}

func (h *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipal(r.Context())

	var req CreateMenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	item, err := h.service.CreateItem(r.Context(), principal, req)
	if err != nil {
		h.writeItemError(w, err)
		return
	}

	core.Created(w, ToMenuItemResponse(item))
}

func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipal(r.Context())
	itemID := chi.URLParam(r, "itemID")

	var req UpdateMenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	item, err := h.service.UpdateItem(r.Context(), principal, itemID, req)
	if err != nil {
		h.writeItemError(w, err)
		return
	}

	core.OK(w, ToMenuItemResponse(item))
}

func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipal(r.Context())
	itemID := chi.URLParam(r, "itemID")

	if err := h.service.DeleteItem(r.Context(), principal, itemID); err != nil {
		h.writeItemError(w, err)
		return
	}

	core.NoContent(w)
}

func (h *Handler) writeItemError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrNotFound):
		core.NotFound(w, "menu item")
	case errors.Is(err, core.ErrForbidden):
		core.Forbidden(w, "not authorized to modify this item")
	case errors.Is(err, core.ErrUnauthorized):
		core.Unauthorized(w, "")
	case errors.Is(err, core.ErrInvalidInput):
		core.BadRequest(w, "referenced category does not exist")
	default:
		core.InternalServerError(w, err)
	}
}
