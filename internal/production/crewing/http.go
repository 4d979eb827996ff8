package crewing

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

	router.Get("/assignments", handler.listAssignments)
	router.Get("/allocations", handler.listAllocations)

	router.Group(func(writeRoute chi.Router) {
		writeRoute.Use(middleware.RequireRole(sec.RoleManager))

		writeRoute.Post("/assignments", handler.assignCrew)
		writeRoute.Delete("/assignments/{id}", handler.removeAssignment)
		writeRoute.Post("/allocations", handler.allocateEquipment)
		writeRoute.Delete("/allocations/{id}", handler.removeAllocation)
	})
}

// filmIDQuery parses the required film_id query parameter.
func filmIDQuery(request *http.Request) int64 {
	raw := request.URL.Query().Get("film_id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

func (handler *Handler) listAssignments(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	filmID := filmIDQuery(request)

	assignments, total, err := handler.service.ListAssignments(request.Context(), filmID, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, assignments, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) assignCrew(writer http.ResponseWriter, request *http.Request) {
	var input Assignment
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.AssignCrew(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) removeAssignment(writer http.ResponseWriter, request *http.Request) {
	assignmentID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.RemoveAssignment(request.Context(), assignmentID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) listAllocations(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	filmID := filmIDQuery(request)

	allocations, total, err := handler.service.ListAllocations(request.Context(), filmID, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, allocations, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) allocateEquipment(writer http.ResponseWriter, request *http.Request) {
	var input Allocation
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.AllocateEquipment(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) removeAllocation(writer http.ResponseWriter, request *http.Request) {
	allocationID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.RemoveAllocation(request.Context(), allocationID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
