package handlers

import (
	"errors"
	"net/http"

	"blog/models"

	"github.com/gin-gonic/gin"
)

func CommentAdd(c *gin.Context, user *models.User) {
	id, ok := idParam(c)
	if !ok {
		notFound(c)
		return
	}
	if _, err := models.PostByID(id); err != nil {
		notFound(c)
		return
	}
	_, err := models.CommentCreate(user.ID, id, c.PostForm("text"))
	if errors.Is(err, models.ErrCommentEmpty) || errors.Is(err, models.ErrCommentTooLong) {
		// Show the form again on the detail page, with the message
		detail, derr := models.GetPost(id)
		if derr != nil {
			notFound(c)
			return
		}
		renderPostDetail(c, &detail, user, err.Error())
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, postPath(id))
}
