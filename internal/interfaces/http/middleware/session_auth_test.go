package middleware

import (
	"context"
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
	redispkg "research-nest.backend/pkg/redis"
)

const testEncryptionKey = "0000000000000000000000000000000000000000000000000000000000000000"

func newSessionTestSetup(t *testing.T) (*gin.Engine, *redispkg.SessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	redispkg.SetClient(redisv9.NewClient(&redisv9.Options{Addr: mr.Addr()}))

	store, err := redispkg.NewSessionStore(testEncryptionKey)
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", SessionAuth(store), func(c *gin.Context) {
		userID, ok := GetUserID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"userId": userID.String()})
	})
	return r, store, mr
}

func TestSessionAuth_ValidSession(t *testing.T) {
	r, store, _ := newSessionTestSetup(t)

	userID := uuid.New()
	sessionID := "a1b2c3"
	require.NoError(t, store.CreateSession(context.Background(), sessionID, &redispkg.SessionData{UserID: userID.String()}, time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sessionID})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
}

func TestSessionAuth_MissingCookie(t *testing.T) {
	r, _, _ := newSessionTestSetup(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Authentication required"}`, w.Body.String())
}

func TestSessionAuth_UnknownSessionID(t *testing.T) {
	r, _, _ := newSessionTestSetup(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "never-issued"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Authentication required"}`, w.Body.String())
}

func TestSessionAuth_ExpiredSession(t *testing.T) {
	r, store, mr := newSessionTestSetup(t)

	sessionID := "expiring"
	require.NoError(t, store.CreateSession(context.Background(), sessionID, &redispkg.SessionData{UserID: uuid.New().String()}, time.Minute))

	mr.FastForward(2 * time.Minute)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sessionID})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionAuth_CorruptSessionPayload(t *testing.T) {
	r, _, mr := newSessionTestSetup(t)

	// A value that never went through the store's encryption.
	require.NoError(t, mr.Set("session:tampered", "deadbeef"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "tampered"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetUserID_Absent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := GetUserID(c)
	assert.False(t, ok)
}
