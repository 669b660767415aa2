package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"blog/cache"
	"blog/config"
	"blog/db"
	"blog/models"
	"blog/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// setupRouter gives each test its own in-memory database and a fully
// wired router - the same one main runs.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.TEMPLATES_DIR = "../templates"
	config.SQLITE_FILE = "file:handlers_" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db.Init()
	models.Init()
	storage.Init()
	cache.InvalidateIndex()
	return NewRouter()
}

func doGET(router *gin.Engine, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func doPOST(router *gin.Engine, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func doMultipartPOST(router *gin.Engine, path, contentType string, body io.Reader, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", contentType)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// signup registers a user through the real endpoint and returns the
// session cookies for follow-up requests
func signup(t *testing.T, router *gin.Engine, username string) []*http.Cookie {
	t.Helper()
	w := doPOST(router, "/auth/signup/", url.Values{
		"username": {username},
		"name":     {username},
		"email":    {username + "@example.com"},
		"password": {"secret"},
	}, nil)
	require.Equal(t, http.StatusFound, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies, "signup must establish a session")
	return cookies
}

func login(t *testing.T, router *gin.Engine, username, password string) []*http.Cookie {
	t.Helper()
	w := doPOST(router, "/auth/login/", url.Values{
		"username": {username},
		"password": {password},
	}, nil)
	require.Equal(t, http.StatusFound, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}

func postCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Instance.Model(&models.Post{}).Count(&count).Error)
	return count
}
