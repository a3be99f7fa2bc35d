package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"adviceglobe/globe-api/db"
	"adviceglobe/globe-api/middleware"
	"adviceglobe/globe-api/model"
	"adviceglobe/globe-api/security"

	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	sendErr error
	sentTo  []string
	tokens  []string
}

func (f *fakeMailer) SendPasswordReset(to, token string) error {
	if f.sendErr != nil {
		return f.sendErr
	}

	f.sentTo = append(f.sentTo, to)
	f.tokens = append(f.tokens, token)
	return nil
}

// newTestAPI wires the handlers against an in-memory database and a
// fake mailer, with the same middleware chain the real router uses.
func newTestAPI(t *testing.T) (*API, *fakeMailer) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	d, err := db.New(":memory:")
	require.NoError(t, err)

	tm, err := security.NewTokenManager("test-secret")
	require.NoError(t, err)

	fm := &fakeMailer{}

	a := &API{
		DB:     d,
		Tokens: tm,
		Mailer: fm,
	}

	admin := middleware.NewAuthMiddleware(tm, model.RoleAdmin)

	router := gin.New()
	router.Use(middleware.NewRequestIDMiddleware())

	router.POST("/auth/login", a.AuthLogin)
	router.POST("/auth/forgot-password", a.AuthForgotPassword)
	router.POST("/auth/reset-password", a.AuthResetPassword)

	router.GET("/videos", a.VideoList)
	router.POST("/videos", admin, a.VideoCreate)
	router.PUT("/videos/:id", admin, a.VideoUpdate)
	router.DELETE("/videos/:id", admin, a.VideoDelete)

	a.Router = router

	return a, fm
}

func createUser(t *testing.T, a *API, email, password string, role model.Role) model.User {
	t.Helper()

	hash, err := security.HashPassword(password)
	require.NoError(t, err)

	id, err := gonanoid.New()
	require.NoError(t, err)

	user := model.User{
		ID:           id,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}

	require.NoError(t, a.DB.Create(&user).Error)
	return user
}

func issueToken(t *testing.T, a *API, user model.User) string {
	t.Helper()

	token, err := a.Tokens.Issue(user.ID, user.Email, user.Role)
	require.NoError(t, err)
	return token
}

func doRequest(a *API, method, path string, body any, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var m map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	return m
}
