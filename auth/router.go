package auth

import (
	"net/http"
	"net/url"

	"blog/models"

	"github.com/gin-gonic/gin"
)

const LoginPath = "/auth/login/"

// HandlerFunc receives the authenticated acting user explicitly -
// handlers never reach into ambient session state themselves
type HandlerFunc func(c *gin.Context, user *models.User)

// Router is a wrapper that adds the login check + acting user
// pre-loading to web routes. Anonymous requests are redirected to the
// login page, keeping the original destination in ?next= so the user
// lands back where they were going.
type Router struct {
	Base *gin.Engine
}

func RedirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusFound, LoginPath+"?next="+url.QueryEscape(c.Request.URL.RequestURI()))
}

func (cr *Router) baseExec(c *gin.Context, handler HandlerFunc) {
	session := LoadSession(c)
	user := session.User()
	if user.ID == 0 {
		RedirectToLogin(c)
		return
	}
	handler(c, &user)
}

func (cr *Router) GET(path string, handler HandlerFunc) {
	cr.Base.GET(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}

func (cr *Router) POST(path string, handler HandlerFunc) {
	cr.Base.POST(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}
