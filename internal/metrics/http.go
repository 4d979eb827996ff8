package metrics

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/danghoanh/cinevault/internal/platform/middleware"
	requestutil "github.com/danghoanh/cinevault/internal/platform/request"
	"github.com/danghoanh/cinevault/internal/platform/respond"
	"github.com/danghoanh/cinevault/pkg/pagination"
)

// Handler exposes the derived-figure reports. Every route is read-only
// and open to any authenticated role.
type Handler struct {
	calculator *Calculator
}

func NewHandler(calculator *Calculator) *Handler {
	return &Handler{calculator: calculator}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Use(middleware.RequireAuth)

	router.Get("/films/{id}/financials", handler.filmFinancials)
	router.Get("/films/{id}/summary", handler.productionSummary)
	router.Get("/actors/{id}/age", handler.actorAge)
	router.Get("/directors/{id}/film-count", handler.directorFilmCount)
	router.Get("/producers/{id}/investment-total", handler.producerInvestmentTotal)
	router.Get("/box-office", handler.boxOfficeReport)
}

func (handler *Handler) filmFinancials(writer http.ResponseWriter, request *http.Request) {
	filmID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	financials, err := handler.calculator.FilmFinancials(request.Context(), filmID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, financials)
}

func (handler *Handler) productionSummary(writer http.ResponseWriter, request *http.Request) {
	filmID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	summary, err := handler.calculator.ProductionSummary(request.Context(), filmID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, summary)
}

func (handler *Handler) actorAge(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	age, err := handler.calculator.ActorAge(request.Context(), actorID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]int64{"actor_id": actorID, "age": age})
}

func (handler *Handler) directorFilmCount(writer http.ResponseWriter, request *http.Request) {
	directorID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	count, err := handler.calculator.DirectorFilmCount(request.Context(), directorID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]int64{"director_id": directorID, "film_count": count})
}

func (handler *Handler) producerInvestmentTotal(writer http.ResponseWriter, request *http.Request) {
	producerID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	total, err := handler.calculator.ProducerTotalInvestment(request.Context(), producerID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]int64{"producer_id": producerID, "total_investment": total})
}

func (handler *Handler) boxOfficeReport(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	genre := request.URL.Query().Get("genre")

	entries, total, err := handler.calculator.BoxOfficeReport(request.Context(), genre, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, entries, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}
