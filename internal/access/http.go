package access

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/danghoanh/cinevault/internal/platform/middleware"
	requestutil "github.com/danghoanh/cinevault/internal/platform/request"
	"github.com/danghoanh/cinevault/internal/platform/respond"
	"github.com/danghoanh/cinevault/internal/platform/sec"
	"github.com/danghoanh/cinevault/internal/platform/validate"
	"github.com/danghoanh/cinevault/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterAuthRoutes mounts the credential endpoints. They are public:
// login is how a caller becomes authenticated in the first place.
func (handler *Handler) RegisterAuthRoutes(router chi.Router) {
	router.Post("/login", handler.login)
	router.Post("/refresh", handler.refresh)
	router.Post("/logout", handler.logout)
}

// RegisterUserRoutes mounts the user-administration endpoints behind
// the admin role. The service re-checks the caller's account on every
// call, so a stale token cannot outlive a demotion.
func (handler *Handler) RegisterUserRoutes(router chi.Router) {
	router.Use(middleware.RequireRole(sec.RoleAdmin))

	router.Get("/", handler.listUsers)
	router.Post("/", handler.createUser)
	router.Get("/{username}", handler.getUser)
	router.Patch("/{username}/status", handler.updateStatus)
	router.Patch("/{username}/role", handler.updateRole)
	router.Delete("/{username}", handler.deleteUser)
}

// ── 1. Authentication endpoints ───────────────────────────────────────────

func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	pair, err := handler.service.Login(request.Context(), input.Username, input.Password, middleware.RealIP(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, pair)
}

func (handler *Handler) refresh(writer http.ResponseWriter, request *http.Request) {
	var input struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	if input.RefreshToken == "" {
		respond.Error(writer, request, validate.RequiredError("refresh_token", "This field is required"))
		return
	}

	pair, err := handler.service.Refresh(request.Context(), input.RefreshToken)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, pair)
}

func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	var input struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Logout(request.Context(), input.RefreshToken); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// ── 2. User administration endpoints ──────────────────────────────────────

func (handler *Handler) listUsers(writer http.ResponseWriter, request *http.Request) {
	caller, err := requestutil.CallerUsername(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	paginationParams := pagination.FromRequest(request)

	accounts, total, err := handler.service.ListUsers(request.Context(), caller, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, accounts, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getUser(writer http.ResponseWriter, request *http.Request) {
	caller, err := requestutil.CallerUsername(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	account, err := handler.service.GetUser(request.Context(), caller, requestutil.Param(request, "username"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, account)
}

func (handler *Handler) createUser(writer http.ResponseWriter, request *http.Request) {
	caller, err := requestutil.CallerUsername(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
		FullName string `json:"full_name"`
		Email    string `json:"email"`
		Role     string `json:"role"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	account := &Account{
		Username: input.Username,
		FullName: input.FullName,
		Email:    input.Email,
		Role:     input.Role,
	}
	if err := handler.service.CreateUser(request.Context(), caller, account, input.Password); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, account)
}

func (handler *Handler) updateStatus(writer http.ResponseWriter, request *http.Request) {
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

	username := requestutil.Param(request, "username")
	if err := handler.service.UpdateStatus(request.Context(), caller, username, input.Status); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) updateRole(writer http.ResponseWriter, request *http.Request) {
	caller, err := requestutil.CallerUsername(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input struct {
		Role string `json:"role"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	username := requestutil.Param(request, "username")
	if err := handler.service.UpdateRole(request.Context(), caller, username, input.Role); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) deleteUser(writer http.ResponseWriter, request *http.Request) {
	caller, err := requestutil.CallerUsername(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	username := requestutil.Param(request, "username")
	if err := handler.service.DeleteUser(request.Context(), caller, username); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
