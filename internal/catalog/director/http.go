package director

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/danghoanh/cinevault/internal/platform/middleware"
	requestutil "github.com/danghoanh/cinevault/internal/platform/request"
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
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.listDirectors)
	router.Get("/{id}", handler.getDirector)

	router.Group(func(writeRoute chi.Router) {
		writeRoute.Use(middleware.RequireRole(sec.RoleManager))

		writeRoute.Post("/", handler.createDirector)
		writeRoute.Put("/{id}", handler.updateDirector)

		writeRoute.With(middleware.RequireRole(sec.RoleAdmin)).Delete("/{id}", handler.deleteDirector)
	})
}

func (handler *Handler) listDirectors(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Query:          request.URL.Query().Get("q"),
		Specialization: request.URL.Query().Get("specialization"),
	}

	directors, total, err := handler.service.ListDirectors(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, directors, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getDirector(writer http.ResponseWriter, request *http.Request) {
	directorID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	director, err := handler.service.GetDirector(request.Context(), directorID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, director)
}

func (handler *Handler) createDirector(writer http.ResponseWriter, request *http.Request) {
	var input Director
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateDirector(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateDirector(writer http.ResponseWriter, request *http.Request) {
	directorID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Director
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateDirector(request.Context(), directorID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteDirector(writer http.ResponseWriter, request *http.Request) {
	directorID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteDirector(request.Context(), directorID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
