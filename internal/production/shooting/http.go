package shooting

import (
	"net/http"
	"strconv"

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

	router.Get("/", handler.listWindows)
	router.Get("/{id}", handler.getWindow)

	router.Group(func(writeRoute chi.Router) {
		writeRoute.Use(middleware.RequireRole(sec.RoleManager))

		writeRoute.Post("/", handler.bookWindow)
		writeRoute.Delete("/{id}", handler.cancelWindow)
	})
}

func (handler *Handler) listWindows(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filmID, _ := strconv.ParseInt(request.URL.Query().Get("film_id"), 10, 64)

	windows, total, err := handler.service.ListWindows(request.Context(), filmID, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, windows, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getWindow(writer http.ResponseWriter, request *http.Request) {
	windowID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	window, err := handler.service.GetWindow(request.Context(), windowID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, window)
}

func (handler *Handler) bookWindow(writer http.ResponseWriter, request *http.Request) {
	var input Window
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.BookWindow(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) cancelWindow(writer http.ResponseWriter, request *http.Request) {
	windowID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CancelWindow(request.Context(), windowID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
