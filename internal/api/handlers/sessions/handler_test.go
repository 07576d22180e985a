package sessions

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/OtoCare-BookingService/internal/api/middleware"
	"github.com/m04kA/OtoCare-BookingService/internal/domain"
	catalogRepo "github.com/m04kA/OtoCare-BookingService/internal/infra/storage/catalog"
	sessionStore "github.com/m04kA/OtoCare-BookingService/internal/infra/storage/session"
	"github.com/m04kA/OtoCare-BookingService/internal/infra/storage/storagetest"
	userRepo "github.com/m04kA/OtoCare-BookingService/internal/infra/storage/user"
	"github.com/m04kA/OtoCare-BookingService/internal/service/sessions"
	"github.com/m04kA/OtoCare-BookingService/pkg/logger"
)

func newRouter(t *testing.T) *mux.Router {
	t.Helper()
	db := storagetest.NewDB(t)
	storagetest.Exec(t, db, `INSERT INTO cities (name) VALUES ('Jakarta')`)
	storagetest.Exec(t, db, `INSERT INTO garages (id, city, name, address) VALUES ('G1', 'Jakarta', 'Kemang', 'Jl. Kemang Raya 1')`)

	users := userRepo.NewRepository(db)
	require.NoError(t, users.Upsert(context.Background(), &domain.User{Phone: "+628111222", Name: "Budi"}))

	log := logger.NewNop()
	svc := sessions.NewService(sessionStore.NewMemoryStore(), users, catalogRepo.NewRepository(db), time.Hour, log)
	h := NewHandler(svc, log)

	r := mux.NewRouter()
	r.HandleFunc("/sessions", h.Login).Methods(http.MethodPost)

	auth := middleware.Auth(svc, log)
	r.Handle("/sessions/current", auth(http.HandlerFunc(h.Current))).Methods(http.MethodGet)
	r.Handle("/sessions/current", auth(http.HandlerFunc(h.Select))).Methods(http.MethodPut)
	r.Handle("/sessions/current", auth(http.HandlerFunc(h.Logout))).Methods(http.MethodDelete)
	return r
}

func call(r http.Handler, method, target, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestSessionLifecycle(t *testing.T) {
	r := newRouter(t)

	rec := call(r, http.MethodPost, "/sessions", "", `{"phone":"+628111222"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var opened struct {
		Token string `json:"token"`
		Name  string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &opened))
	require.NotEmpty(t, opened.Token)
	assert.Equal(t, "Budi", opened.Name)

	rec = call(r, http.MethodPut, "/sessions/current", opened.Token, `{"city":"Jakarta","garageId":"G1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = call(r, http.MethodGet, "/sessions/current", opened.Token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"garageId":"G1"`)
	assert.NotContains(t, rec.Body.String(), opened.Token)

	rec = call(r, http.MethodPut, "/sessions/current", opened.Token, `{"city":"Jakarta","garageId":"G9"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = call(r, http.MethodDelete, "/sessions/current", opened.Token, "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = call(r, http.MethodGet, "/sessions/current", opened.Token, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_Errors(t *testing.T) {
	r := newRouter(t)

	assert.Equal(t, http.StatusBadRequest, call(r, http.MethodPost, "/sessions", "", `{"phone":""}`).Code)
	assert.Equal(t, http.StatusNotFound, call(r, http.MethodPost, "/sessions", "", `{"phone":"+620000000"}`).Code)
	assert.Equal(t, http.StatusUnauthorized, call(r, http.MethodGet, "/sessions/current", "", "").Code)
}
