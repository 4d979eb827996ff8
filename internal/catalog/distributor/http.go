package distributor

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

	router.Get("/", handler.listDistributors)
	router.Get("/{id}", handler.getDistributor)
	router.Get("/{id}/deals", handler.listDeals)

	router.Group(func(writeRoute chi.Router) {
		writeRoute.Use(middleware.RequireRole(sec.RoleManager))

		writeRoute.Post("/", handler.createDistributor)
		writeRoute.Put("/{id}", handler.updateDistributor)
		writeRoute.Post("/{id}/deals", handler.addDeal)

		writeRoute.With(middleware.RequireRole(sec.RoleAdmin)).Delete("/{id}", handler.deleteDistributor)
	})
}

func (handler *Handler) listDistributors(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Query:  request.URL.Query().Get("q"),
		Region: request.URL.Query().Get("region"),
	}

	distributors, total, err := handler.service.ListDistributors(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, distributors, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getDistributor(writer http.ResponseWriter, request *http.Request) {
	distributorID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	distributor, err := handler.service.GetDistributor(request.Context(), distributorID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, distributor)
}

func (handler *Handler) createDistributor(writer http.ResponseWriter, request *http.Request) {
	var input Distributor
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateDistributor(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateDistributor(writer http.ResponseWriter, request *http.Request) {
	distributorID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Distributor
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateDistributor(request.Context(), distributorID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) listDeals(writer http.ResponseWriter, request *http.Request) {
	distributorID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	deals, err := handler.service.ListDeals(request.Context(), distributorID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, deals)
}

func (handler *Handler) addDeal(writer http.ResponseWriter, request *http.Request) {
	distributorID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Deal
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	input.DistributorID = distributorID

	if err := handler.service.AddDeal(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) deleteDistributor(writer http.ResponseWriter, request *http.Request) {
	distributorID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteDistributor(request.Context(), distributorID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
