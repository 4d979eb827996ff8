package actor

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

	router.Get("/", handler.listActors)
	router.Get("/{id}", handler.getActor)

	router.Group(func(writeRoute chi.Router) {
		writeRoute.Use(middleware.RequireRole(sec.RoleManager))

		writeRoute.Post("/", handler.createActor)
		writeRoute.Put("/{id}", handler.updateActor)

		writeRoute.With(middleware.RequireRole(sec.RoleAdmin)).Delete("/{id}", handler.deleteActor)
	})
}

func (handler *Handler) listActors(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Query:       request.URL.Query().Get("q"),
		Nationality: request.URL.Query().Get("nationality"),
	}

	actors, total, err := handler.service.ListActors(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, actors, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getActor(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	actor, err := handler.service.GetActor(request.Context(), actorID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, actor)
}

func (handler *Handler) createActor(writer http.ResponseWriter, request *http.Request) {
	var input Actor
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateActor(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateActor(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Actor
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateActor(request.Context(), actorID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteActor(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteActor(request.Context(), actorID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
