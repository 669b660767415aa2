package handlers

import (
	"net/http"

	"blog/config"
	"blog/models"
	"blog/utils"

	"github.com/gin-gonic/gin"
)

// FollowIndex is the personalized feed: posts from every followed author
func FollowIndex(c *gin.Context, user *models.User) {
	page, ok := pageParam(c)
	if !ok {
		notFound(c)
		return
	}
	posts, err := models.FeedPosts(user.ID)
	if err != nil {
		serverError(c, err)
		return
	}
	pg, err := utils.Paginate(posts, page, config.PAGE_SIZE)
	if err != nil {
		notFound(c)
		return
	}
	if c.Query("format") == "json" {
		c.JSON(http.StatusOK, postInfoList(pg.Items))
		return
	}
	c.HTML(http.StatusOK, "follow.tmpl", gin.H{
		"Page": pg,
	})
}

func FollowCreate(c *gin.Context, user *models.User) {
	target, err := models.UserByUsername(c.Param("username"))
	if err != nil {
		notFound(c)
		return
	}
	// Self-follow is silently refused, everything else is idempotent
	if err := models.FollowAuthor(user.ID, target.ID); err != nil && err != models.ErrSelfFollow {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+target.Username+"/")
}

func FollowDelete(c *gin.Context, user *models.User) {
	target, err := models.UserByUsername(c.Param("username"))
	if err != nil {
		notFound(c)
		return
	}
	if err := models.UnfollowAuthor(user.ID, target.ID); err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+target.Username+"/")
}
