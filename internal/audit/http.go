package audit

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/danghoanh/cinevault/internal/platform/middleware"
	"github.com/danghoanh/cinevault/internal/platform/respond"
	"github.com/danghoanh/cinevault/internal/platform/sec"
	"github.com/danghoanh/cinevault/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Audit trail is admin-only
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireRole(sec.RoleAdmin))

		adminRoute.Get("/roles", handler.listRoleEntries)
		adminRoute.Get("/equipment", handler.listEquipmentEntries)
		adminRoute.Get("/films", handler.listFilmEntries)
		adminRoute.Get("/users", handler.listUserActivity)
	})
}

// filterFromQuery parses the shared audit query parameters.
func filterFromQuery(request *http.Request) Filter {
	query := request.URL.Query()

	filter := Filter{
		Action: query.Get("action"),
	}

	if raw := query.Get("entity_id"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			filter.EntityID = id
		}
	}
	if raw := query.Get("from"); raw != "" {
		if from, err := time.Parse(time.RFC3339, raw); err == nil {
			filter.From = &from
		}
	}
	if raw := query.Get("to"); raw != "" {
		if to, err := time.Parse(time.RFC3339, raw); err == nil {
			filter.To = &to
		}
	}

	return filter
}

func (handler *Handler) listRoleEntries(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	filter := filterFromQuery(request)

	entries, total, err := handler.service.ListRoleEntries(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, entries, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) listEquipmentEntries(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	filter := filterFromQuery(request)

	entries, total, err := handler.service.ListEquipmentEntries(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, entries, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) listFilmEntries(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	filter := filterFromQuery(request)

	entries, total, err := handler.service.ListFilmEntries(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, entries, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) listUserActivity(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	filter := filterFromQuery(request)
	username := request.URL.Query().Get("username")

	entries, total, err := handler.service.ListUserActivity(request.Context(), username, filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, entries, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}
