package film

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

	// Read access (any authenticated role)
	router.Get("/", handler.listFilms)
	router.Get("/{id}", handler.getFilm)
	router.Get("/slug/{slug}", handler.getFilmBySlug)
	router.Get("/{id}/scenes", handler.listScenes)
	router.Get("/{id}/certificate", handler.getCertificate)

	// Write access (manager and above)
	router.Group(func(writeRoute chi.Router) {
		writeRoute.Use(middleware.RequireRole(sec.RoleManager))

		writeRoute.Post("/", handler.createFilm)
		writeRoute.Put("/{id}", handler.updateFilm)
		writeRoute.Patch("/{id}/status", handler.updateFilmStatus)
		writeRoute.Post("/{id}/scenes", handler.addScene)
		writeRoute.Delete("/{id}/scenes/{sceneID}", handler.deleteScene)
		writeRoute.Put("/{id}/certificate", handler.setCertificate)

		// Admin strict only
		writeRoute.With(middleware.RequireRole(sec.RoleAdmin)).Delete("/{id}", handler.deleteFilm)
	})
}

func (handler *Handler) listFilms(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Query:  request.URL.Query().Get("q"),
		Genre:  request.URL.Query().Get("genre"),
		Status: request.URL.Query().Get("status"),
	}

	films, total, err := handler.service.ListFilms(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, films, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getFilm(writer http.ResponseWriter, request *http.Request) {
	filmID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	film, err := handler.service.GetFilm(request.Context(), filmID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, film)
}

func (handler *Handler) getFilmBySlug(writer http.ResponseWriter, request *http.Request) {
	filmSlug := requestutil.Param(request, "slug")

	film, err := handler.service.GetFilmBySlug(request.Context(), filmSlug)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, film)
}

func (handler *Handler) createFilm(writer http.ResponseWriter, request *http.Request) {
	var input Film
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateFilm(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateFilm(writer http.ResponseWriter, request *http.Request) {
	filmID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Film
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateFilm(request.Context(), filmID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) updateFilmStatus(writer http.ResponseWriter, request *http.Request) {
	filmID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	caller, err := requestutil.CallerUsername(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateFilmStatus(request.Context(), filmID, input.Status, caller); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) listScenes(writer http.ResponseWriter, request *http.Request) {
	filmID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	scenes, err := handler.service.ListScenes(request.Context(), filmID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, scenes)
}

func (handler *Handler) addScene(writer http.ResponseWriter, request *http.Request) {
	filmID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Scene
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	input.FilmID = filmID

	if err := handler.service.AddScene(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) deleteScene(writer http.ResponseWriter, request *http.Request) {
	filmID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	sceneID, err := requestutil.IntParam(request, "sceneID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteScene(request.Context(), filmID, sceneID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) getCertificate(writer http.ResponseWriter, request *http.Request) {
	filmID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	certificate, err := handler.service.GetCertificate(request.Context(), filmID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, certificate)
}

func (handler *Handler) setCertificate(writer http.ResponseWriter, request *http.Request) {
	filmID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Certificate
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	input.FilmID = filmID

	if err := handler.service.SetCertificate(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteFilm(writer http.ResponseWriter, request *http.Request) {
	filmID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteFilm(request.Context(), filmID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
