package film_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/danghoanh/cinevault/internal/catalog/film"
	"github.com/danghoanh/cinevault/internal/platform/ctxkey"
	"github.com/danghoanh/cinevault/internal/platform/sec"
)

func newTestRouter() *chi.Mux {
	router := chi.NewRouter()
	handler := film.NewHandler(newTestService(&fakeRepository{}))
	router.Route("/films", handler.RegisterRoutes)
	return router
}

func authenticatedRequest(method, target string, role sec.UserRole) *http.Request {
	request := httptest.NewRequest(method, target, nil)
	claims := &sec.AuthClaims{Username: "v.reader", Role: string(role)}
	return request.WithContext(context.WithValue(request.Context(), ctxkey.KeyUser, claims))
}

/*
TestRegisterRoutes_ReadsRequireAuthentication verifies no film route is
reachable anonymously: reads demand an authenticated caller of any role,
and only then does the role guard decide about writes.
*/
func TestRegisterRoutes_ReadsRequireAuthentication(t *testing.T) {
	router := newTestRouter()

	readTargets := []string{
		"/films/",
		"/films/1",
		"/films/slug/midnight-reel",
		"/films/1/scenes",
		"/films/1/certificate",
	}

	for _, target := range readTargets {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equalf(t, http.StatusUnauthorized, recorder.Code, "anonymous GET %s", target)
	}
}

/*
TestRegisterRoutes_ViewerCanRead verifies an authenticated viewer passes the
authentication gate on read routes.
*/
func TestRegisterRoutes_ViewerCanRead(t *testing.T) {
	router := newTestRouter()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, authenticatedRequest(http.MethodGet, "/films/", sec.RoleViewer))

	assert.Equal(t, http.StatusOK, recorder.Code)
}

/*
TestRegisterRoutes_ViewerCannotWrite verifies the write group still demands
the manager role once authentication has passed.
*/
func TestRegisterRoutes_ViewerCannotWrite(t *testing.T) {
	router := newTestRouter()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, authenticatedRequest(http.MethodPost, "/films/", sec.RoleViewer))

	assert.Equal(t, http.StatusForbidden, recorder.Code)
}
