package handlers

import (
	"net/http"
	"strings"

	"blog/auth"
	"blog/models"

	"github.com/gin-gonic/gin"
)

// safeNext keeps the post-login redirect on this site
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/"
	}
	return next
}

func LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.tmpl", gin.H{
		"Next":     c.Query("next"),
		"Username": "",
		"Error":    "",
	})
}

func Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	user, err := models.UserLogin(username, password)
	if err != nil {
		c.HTML(http.StatusOK, "login.tmpl", gin.H{
			"Error":    "Wrong username or password",
			"Username": username,
			"Next":     c.PostForm("next"),
		})
		return
	}
	auth.LoadSession(c).LoginUser(&user)
	c.Redirect(http.StatusFound, safeNext(c.PostForm("next")))
}

func SignupForm(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.tmpl", gin.H{
		"Username": "",
		"Name":     "",
		"Email":    "",
		"Error":    "",
	})
}

func Signup(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	name := strings.TrimSpace(c.PostForm("name"))
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")

	renderError := func(message string) {
		c.HTML(http.StatusOK, "signup.tmpl", gin.H{
			"Error":    message,
			"Username": username,
			"Name":     name,
			"Email":    email,
		})
	}
	if username == "" || email == "" || password == "" {
		renderError("Username, email and password are required")
		return
	}
	if _, err := models.UserByUsername(username); err == nil {
		renderError("That username is taken")
		return
	}
	user, err := models.UserCreate(username, name, email, password)
	if err != nil {
		renderError("Could not create the account")
		return
	}
	auth.LoadSession(c).LoginUser(&user)
	c.Redirect(http.StatusFound, "/")
}

func Logout(c *gin.Context, user *models.User) {
	auth.LoadSession(c).LogoutUser()
	c.Redirect(http.StatusFound, "/")
}
