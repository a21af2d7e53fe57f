package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	redisv9 "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"research-nest.backend/internal/domain/entities"
	domainerrors "research-nest.backend/internal/domain/errors"
	"research-nest.backend/internal/interfaces/http/middleware"
	"research-nest.backend/internal/usecases"
	"research-nest.backend/pkg/crypto"
	redispkg "research-nest.backend/pkg/redis"
)

const testEncryptionKey = "0000000000000000000000000000000000000000000000000000000000000000"

type userRepoStub struct {
	users map[uuid.UUID]*entities.User
}

func newUserRepoStub() *userRepoStub {
	return &userRepoStub{users: map[uuid.UUID]*entities.User{}}
}

func (s *userRepoStub) Create(_ context.Context, user *entities.User) error {
	s.users[user.ID] = user
	return nil
}

func (s *userRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return user, nil
}

func (s *userRepoStub) GetByUsername(_ context.Context, username string) (*entities.User, error) {
	for _, user := range s.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func newAuthRouter(t *testing.T, repo *userRepoStub) (*gin.Engine, *redispkg.SessionStore) {
	t.Helper()
	mr := miniredis.RunT(t)
	redispkg.SetClient(redisv9.NewClient(&redisv9.Options{Addr: mr.Addr()}))

	sessionStore, err := redispkg.NewSessionStore(testEncryptionKey)
	require.NoError(t, err)

	handler := NewAuthHandler(usecases.NewAuthUsecase(repo), sessionStore, 24*time.Hour, false)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	auth := r.Group("/api/auth")
	auth.POST("/login", handler.Login)
	auth.POST("/logout", handler.Logout)
	auth.GET("/me", middleware.SessionAuth(sessionStore), handler.GetMe)
	return r, sessionStore
}

func seedAdmin(t *testing.T, repo *userRepoStub, password string) *entities.User {
	t.Helper()
	hash, err := crypto.HashPassword(password)
	require.NoError(t, err)
	user := &entities.User{
		ID:           uuid.New(),
		Username:     "admin",
		PasswordHash: hash,
		Email:        "admin@quantum-group.edu",
		CreatedAt:    time.Now(),
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func doLogin(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookieName {
			return c
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestAuthHandler_LoginSuccess(t *testing.T) {
	repo := newUserRepoStub()
	user := seedAdmin(t, repo, "admin")
	r, store := newAuthRouter(t, repo)

	w := doLogin(r, `{"username":"admin","password":"admin"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	userBody := body["user"].(map[string]interface{})
	assert.Equal(t, user.ID.String(), userBody["id"])
	assert.Equal(t, "admin", userBody["username"])
	assert.Equal(t, "admin@quantum-group.edu", userBody["email"])
	assert.NotContains(t, w.Body.String(), user.PasswordHash)

	cookie := sessionCookie(t, w)
	assert.True(t, cookie.HttpOnly)
	assert.Len(t, cookie.Value, 64)

	session, err := store.GetSession(context.Background(), cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), session.UserID)
}

func TestAuthHandler_LoginMissingCredentials(t *testing.T) {
	repo := newUserRepoStub()
	seedAdmin(t, repo, "admin")
	r, _ := newAuthRouter(t, repo)

	for _, body := range []string{`{}`, `{"username":"admin"}`, `{"password":"admin"}`, `not json`} {
		w := doLogin(r, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body=%s", body)
		assert.JSONEq(t, `{"error":"Username and password required"}`, w.Body.String())
	}
}

func TestAuthHandler_LoginBadCredentials(t *testing.T) {
	repo := newUserRepoStub()
	seedAdmin(t, repo, "admin")
	r, _ := newAuthRouter(t, repo)

	unknown := doLogin(r, `{"username":"ghost","password":"admin"}`)
	wrong := doLogin(r, `{"username":"admin","password":"nope"}`)

	// Unknown account and wrong password are indistinguishable on the wire.
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wrong.Code)
	assert.Equal(t, unknown.Body.String(), wrong.Body.String())
	assert.JSONEq(t, `{"error":"Invalid credentials"}`, wrong.Body.String())
}

func TestAuthHandler_LogoutDestroysSession(t *testing.T) {
	repo := newUserRepoStub()
	seedAdmin(t, repo, "admin")
	r, store := newAuthRouter(t, repo)

	login := doLogin(r, `{"username":"admin","password":"admin"}`)
	cookie := sessionCookie(t, login)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.AddCookie(cookie)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	_, err := store.GetSession(context.Background(), cookie.Value)
	assert.Error(t, err)

	cleared := sessionCookie(t, w)
	assert.Empty(t, cleared.Value)
}

func TestAuthHandler_LogoutWithoutSession(t *testing.T) {
	r, _ := newAuthRouter(t, newUserRepoStub())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
}

func TestAuthHandler_GetMe(t *testing.T) {
	repo := newUserRepoStub()
	user := seedAdmin(t, repo, "admin")
	r, _ := newAuthRouter(t, repo)

	login := doLogin(r, `{"username":"admin","password":"admin"}`)
	cookie := sessionCookie(t, login)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(cookie)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, user.ID.String(), body["id"])
	assert.Equal(t, "admin", body["username"])
}

func TestAuthHandler_GetMeWithoutSession(t *testing.T) {
	r, _ := newAuthRouter(t, newUserRepoStub())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Authentication required"}`, w.Body.String())
}

func TestAuthHandler_GetMeDeletedUser(t *testing.T) {
	repo := newUserRepoStub()
	user := seedAdmin(t, repo, "admin")
	r, _ := newAuthRouter(t, repo)

	login := doLogin(r, `{"username":"admin","password":"admin"}`)
	cookie := sessionCookie(t, login)

	// Session survives the account; lookups then come back 404.
	delete(repo.users, user.ID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(cookie)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"User not found"}`, w.Body.String())
}
