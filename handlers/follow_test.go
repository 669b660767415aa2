package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"blog/db"
	"blog/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func edgeCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Instance.Model(&models.Follow{}).Count(&count).Error)
	return count
}

func TestFollowEndpointsRoundTrip(t *testing.T) {
	router := setupRouter(t)
	createUserWithPost(t, "author", "a post")
	cookies := signup(t, router, "reader")

	w := doPOST(router, "/profile/author/follow/", url.Values{}, cookies)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/profile/author/", w.Header().Get("Location"))
	assert.Equal(t, int64(1), edgeCount(t))

	// Following again must not add a second edge
	w = doPOST(router, "/profile/author/follow/", url.Values{}, cookies)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, int64(1), edgeCount(t))

	w = doPOST(router, "/profile/author/unfollow/", url.Values{}, cookies)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, int64(0), edgeCount(t))

	// Unfollowing somebody you don't follow is a quiet no-op
	w = doPOST(router, "/profile/author/unfollow/", url.Values{}, cookies)
	require.Equal(t, http.StatusFound, w.Code)
}

func TestSelfFollowCreatesNoEdge(t *testing.T) {
	router := setupRouter(t)
	cookies := signup(t, router, "loner")

	w := doPOST(router, "/profile/loner/follow/", url.Values{}, cookies)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, int64(0), edgeCount(t))
}

func TestFollowUnknownUser404(t *testing.T) {
	router := setupRouter(t)
	cookies := signup(t, router, "reader")
	w := doPOST(router, "/profile/ghost/follow/", url.Values{}, cookies)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFollowRequiresLogin(t *testing.T) {
	router := setupRouter(t)
	createUserWithPost(t, "author", "a post")
	w := doPOST(router, "/profile/author/follow/", url.Values{}, nil)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "/auth/login/")
}

// U follows A but not B: the feed shows A's post and not B's
func TestFeedShowsOnlyFollowedAuthors(t *testing.T) {
	router := setupRouter(t)
	createUserWithPost(t, "alice", "post by alice")
	createUserWithPost(t, "bob", "post by bob")
	cookies := signup(t, router, "reader")

	w := doPOST(router, "/profile/alice/follow/", url.Values{}, cookies)
	require.Equal(t, http.StatusFound, w.Code)

	feed := doGET(router, "/follow/?format=json", cookies)
	require.Equal(t, http.StatusOK, feed.Code)
	var posts []PostInfo
	require.NoError(t, json.Unmarshal(feed.Body.Bytes(), &posts))
	require.Len(t, posts, 1)
	assert.Equal(t, "post by alice", posts[0].Text)
	assert.Equal(t, "alice", posts[0].Author)
}

func TestFeedEmptyForNewUser(t *testing.T) {
	router := setupRouter(t)
	createUserWithPost(t, "alice", "unseen")
	cookies := signup(t, router, "reader")

	feed := doGET(router, "/follow/?format=json", cookies)
	require.Equal(t, http.StatusOK, feed.Code)
	var posts []PostInfo
	require.NoError(t, json.Unmarshal(feed.Body.Bytes(), &posts))
	assert.Empty(t, posts)
}

func TestFeedRequiresLogin(t *testing.T) {
	router := setupRouter(t)
	w := doGET(router, "/follow/", nil)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "/auth/login/")
}
