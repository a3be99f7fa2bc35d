package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"adviceglobe/globe-api/model"
	"adviceglobe/globe-api/security"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuardedRouter(t *testing.T) (*gin.Engine, *security.TokenManager) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	tm, err := security.NewTokenManager("test-secret")
	require.NoError(t, err)

	router := gin.New()
	router.Use(NewRequestIDMiddleware())
	router.POST("/guarded", NewAuthMiddleware(tm, model.RoleAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID": c.GetString("userID"),
			"email":  c.GetString("userEmail"),
		})
	})

	return router, tm
}

func request(router *gin.Engine, header, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
	if header != "" {
		req.Header.Set("Authorization", "Bearer "+header)
	}
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "token", Value: cookie})
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMissingToken(t *testing.T) {
	router, _ := newGuardedRouter(t)

	w := request(router, "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthInvalidToken(t *testing.T) {
	router, _ := newGuardedRouter(t)

	w := request(router, "garbage", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthNonAdminForbidden(t *testing.T) {
	router, tm := newGuardedRouter(t)

	token, err := tm.Issue("u1", "user@x.com", model.RoleUser)
	require.NoError(t, err)

	w := request(router, token, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthAdminPasses(t *testing.T) {
	router, tm := newGuardedRouter(t)

	token, err := tm.Issue("u1", "admin@x.com", model.RoleAdmin)
	require.NoError(t, err)

	w := request(router, token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userID":"u1"`)
}

func TestAuthCookieFallback(t *testing.T) {
	router, tm := newGuardedRouter(t)

	token, err := tm.Issue("u1", "admin@x.com", model.RoleAdmin)
	require.NoError(t, err)

	w := request(router, "", token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthHeaderBeatsCookie(t *testing.T) {
	router, tm := newGuardedRouter(t)

	valid, err := tm.Issue("u1", "admin@x.com", model.RoleAdmin)
	require.NoError(t, err)

	// A valid cookie can't rescue a bad header
	w := request(router, "garbage", valid)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
