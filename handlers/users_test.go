package handlers

import (
	"net/http"
	"net/url"
	"testing"

	"blog/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginRedirectsToNext(t *testing.T) {
	router := setupRouter(t)
	_, err := models.UserCreate("bob", "Bob", "bob@example.com", "secret")
	require.NoError(t, err)

	w := doPOST(router, "/auth/login/", url.Values{
		"username": {"bob"},
		"password": {"secret"},
		"next":     {"/create/"},
	}, nil)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/create/", w.Header().Get("Location"))
}

func TestLoginRejectsOffsiteNext(t *testing.T) {
	router := setupRouter(t)
	_, err := models.UserCreate("bob", "Bob", "bob@example.com", "secret")
	require.NoError(t, err)

	w := doPOST(router, "/auth/login/", url.Values{
		"username": {"bob"},
		"password": {"secret"},
		"next":     {"//evil.example.com/"},
	}, nil)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestLoginWrongPasswordRerenders(t *testing.T) {
	router := setupRouter(t)
	_, err := models.UserCreate("bob", "Bob", "bob@example.com", "secret")
	require.NoError(t, err)

	w := doPOST(router, "/auth/login/", url.Values{
		"username": {"bob"},
		"password": {"nope"},
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Wrong username or password")
}

func TestSignupDuplicateUsername(t *testing.T) {
	router := setupRouter(t)
	signup(t, router, "bob")

	w := doPOST(router, "/auth/signup/", url.Values{
		"username": {"bob"},
		"email":    {"other@example.com"},
		"password": {"secret"},
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "username is taken")
}

func TestLogoutEndsSession(t *testing.T) {
	router := setupRouter(t)
	cookies := signup(t, router, "bob")

	w := doPOST(router, "/auth/logout/", url.Values{}, cookies)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	// The old session must no longer authorize writes
	after := doPOST(router, "/create/", url.Values{"text": {"hi"}}, cookies)
	require.Equal(t, http.StatusFound, after.Code)
	assert.Contains(t, after.Header().Get("Location"), "/auth/login/")
}
