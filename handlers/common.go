package handlers

import (
	"log"
	"net/http"
	"strconv"

	"blog/models"

	"github.com/gin-gonic/gin"
)

type PostInfo struct {
	ID      uint64 `json:"id"`
	Text    string `json:"text"`
	PubDate int64  `json:"pub_date"`
	Author  string `json:"author"`
	Group   string `json:"group,omitempty"`
	Image   string `json:"image,omitempty"`
	Thumb   string `json:"thumb,omitempty"`
}

type CommentInfo struct {
	ID      uint64 `json:"id"`
	Text    string `json:"text"`
	Created int64  `json:"created"`
	Author  string `json:"author"`
}

func NewPostInfo(post *models.Post) PostInfo {
	info := PostInfo{
		ID:      post.ID,
		Text:    post.Text,
		PubDate: post.PubDate,
		Author:  post.User.Username,
	}
	if post.Group != nil && post.Group.Slug != nil {
		info.Group = *post.Group.Slug
	}
	if post.HasImage() {
		info.Image = "/media/" + post.ImagePath
		info.Thumb = "/media/" + post.ThumbPath
	}
	return info
}

func NewCommentInfo(comment *models.Comment) CommentInfo {
	return CommentInfo{
		ID:      comment.ID,
		Text:    comment.Text,
		Created: comment.Created,
		Author:  comment.User.Username,
	}
}

func postInfoList(posts []models.Post) []PostInfo {
	result := make([]PostInfo, 0, len(posts))
	for i := range posts {
		result = append(result, NewPostInfo(&posts[i]))
	}
	return result
}

func notFound(c *gin.Context) {
	if c.Query("format") == "json" {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.HTML(http.StatusNotFound, "not_found.tmpl", gin.H{})
}

func serverError(c *gin.Context, err error) {
	log.Printf("DB error: %v", err)
	c.HTML(http.StatusInternalServerError, "server_error.tmpl", gin.H{})
}

// pageParam reads ?page=; absent means page 1, garbage is rejected.
// Range checking happens in the paginator.
func pageParam(c *gin.Context) (int, bool) {
	raw := c.Query("page")
	if raw == "" {
		return 1, true
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return page, true
}

func idParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}
