package handlers

import (
	"strings"

	"blog/models"
	"blog/storage"

	"github.com/gin-gonic/gin"
)

// MediaFetch serves a post's image or thumbnail. Only paths actually
// referenced by a post are served - the storage layer is never exposed
// for arbitrary lookups.
func MediaFetch(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("mediapath"), "/")
	if path == "" || strings.Contains(path, "..") {
		notFound(c)
		return
	}
	post, err := models.PostByMediaPath(path)
	if err != nil || post.BucketID == nil {
		notFound(c)
		return
	}
	stor := storage.StorageFromBucketID(*post.BucketID)
	if stor == nil {
		notFound(c)
		return
	}
	stor.Serve(path, c.Request, c.Writer)
}
