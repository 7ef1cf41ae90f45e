// AngelaMos | 2026
// handler.go

package stats

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelamos/eatgreet/internal/core"
	"github.com/angelamos/eatgreet/internal/middleware"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts both stats views. The admin view is admin-only
// (the super-admin has its own cross-tenant view and no tenant of its
// own to scope by).
func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/stats", func(r chi.Router) {
		r.Use(authenticator)

		r.With(middleware.RequireRole(core.RoleAdmin)).
			Get("/admin", h.AdminStats)
		r.With(middleware.RequireRole(core.RoleSuperAdmin)).
			Get("/super-admin", h.SuperAdminStats)
	})
}

func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	restaurantID := middleware.GetUserID(r.Context())

	resp, err := h.service.AdminStats(r.Context(), restaurantID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, resp)
}

func (h *Handler) SuperAdminStats(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.SuperAdminStats(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, resp)
}
