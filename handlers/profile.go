package handlers

import (
	"net/http"

	"blog/auth"
	"blog/config"
	"blog/models"
	"blog/utils"

	"github.com/gin-gonic/gin"
)

func Profile(c *gin.Context) {
	page, ok := pageParam(c)
	if !ok {
		notFound(c)
		return
	}
	author, posts, err := models.PostsByAuthor(c.Param("username"))
	if err != nil {
		notFound(c)
		return
	}
	pg, err := utils.Paginate(posts, page, config.PAGE_SIZE)
	if err != nil {
		notFound(c)
		return
	}
	if c.Query("format") == "json" {
		c.JSON(http.StatusOK, gin.H{
			"author":     author.Username,
			"post_count": pg.TotalItems,
			"posts":      postInfoList(pg.Items),
		})
		return
	}
	viewer := auth.LoadSession(c).User()
	c.HTML(http.StatusOK, "profile.tmpl", gin.H{
		"Author":    author,
		"Page":      pg,
		"IsSelf":    viewer.ID == author.ID,
		"LoggedIn":  viewer.ID != 0,
		"Following": viewer.ID != 0 && models.IsFollowing(viewer.ID, author.ID),
	})
}
