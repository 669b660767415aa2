package handlers

import (
	"time"

	"blog/auth"
	"blog/config"
	"blog/db"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/gin"
)

const (
	sessionCookieName     = "token"
	sessionExpirationTime = 30 * 86400 // 30 days
)

// NewRouter wires middleware, templates and every route. main and the
// handler tests share it so both exercise the same surface.
func NewRouter() *gin.Engine {
	if !config.DEBUG_MODE {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           30 * 24 * time.Hour,
	}))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/media/"})))
	}
	cookieStore := gormsessions.NewStore(db.Instance, true, []byte(config.SESSION_KEY))
	cookieStore.Options(sessions.Options{Path: "/", MaxAge: sessionExpirationTime})
	router.Use(sessions.Sessions(sessionCookieName, cookieStore))

	router.SetFuncMap(templateFuncs)
	router.LoadHTMLGlob(config.TEMPLATES_DIR + "/*.tmpl")

	// Public pages
	router.GET("/", Index)
	router.GET("/group/:slug/", GroupPosts)
	router.GET("/profile/:username/", Profile)
	router.GET("/posts/:id/", PostDetail)
	router.GET("/media/*mediapath", MediaFetch)
	// Account pages
	router.GET("/auth/login/", LoginForm)
	router.POST("/auth/login/", Login)
	router.GET("/auth/signup/", SignupForm)
	router.POST("/auth/signup/", Signup)
	// Pages that need a logged-in user
	authRouter := &auth.Router{Base: router}
	authRouter.GET("/create/", PostCreateForm)
	authRouter.POST("/create/", PostCreate)
	authRouter.GET("/posts/:id/edit/", PostEditForm)
	authRouter.POST("/posts/:id/edit/", PostEdit)
	authRouter.POST("/posts/:id/comment/", CommentAdd)
	authRouter.GET("/follow/", FollowIndex)
	authRouter.POST("/profile/:username/follow/", FollowCreate)
	authRouter.POST("/profile/:username/unfollow/", FollowDelete)
	authRouter.POST("/auth/logout/", Logout)
	return router
}
