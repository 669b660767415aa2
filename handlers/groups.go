package handlers

import (
	"net/http"

	"blog/config"
	"blog/models"
	"blog/utils"

	"github.com/gin-gonic/gin"
)

func GroupPosts(c *gin.Context) {
	page, ok := pageParam(c)
	if !ok {
		notFound(c)
		return
	}
	group, posts, err := models.PostsByGroup(c.Param("slug"))
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
			"group": gin.H{"title": group.Title, "slug": group.Slug, "description": group.Description},
			"posts": postInfoList(pg.Items),
		})
		return
	}
	c.HTML(http.StatusOK, "group.tmpl", gin.H{
		"Group": group,
		"Page":  pg,
	})
}
