package routes

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/cppla/coauthors/coauthors"
	"github.com/cppla/coauthors/config"
	"github.com/cppla/coauthors/controllers"
	"github.com/cppla/coauthors/middleware"
	"github.com/cppla/coauthors/store"
	"github.com/cppla/coauthors/utils"
)

// NewService assembles the co-author service over db, reading through redis when rc is not nil.
// Extra hooks are registered after the built-in ones.
func NewService(cfg config.AppConfig, db *gorm.DB, rc *redis.Client, hooks *coauthors.Hooks) *coauthors.Service {
	if hooks == nil {
		hooks = &coauthors.Hooks{}
	}
	log := utils.Logger.Named("coauthors")

	gs := store.NewGormStore(db, cfg.Taxonomy)
	var authors coauthors.AuthorStore = gs
	if rc != nil {
		cached := store.NewCachedAuthorStore(gs, utils.NewCache(rc, time.Duration(cfg.CacheTTLSeconds)*time.Second))
		authors = cached
		hooks.InsertAuthor = append([]coauthors.InsertAction{func(termID int64, req *coauthors.Request) {
			cached.ForgetPost(context.Background(), req.ParentID)
		}}, hooks.InsertAuthor...)
	}

	resolver := coauthors.NewResolver(gs, authors, gs, cfg.Taxonomy, log)
	presenter := coauthors.NewPresenter(cfg.APIBase(), cfg.Namespace, hooks)
	bases := coauthors.Bases{
		Parent: cfg.ParentBase,
		Terms:  cfg.TermsBase,
		Posts:  cfg.PostsBase,
		Users:  cfg.UsersBase,
	}
	return coauthors.NewService(resolver, presenter, hooks, bases, log)
}

// SetupRouter mounts the co-author routes and their middleware.
func SetupRouter(cfg config.AppConfig, svc *coauthors.Service) *gin.Engine {
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())
	gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err == nil {
		r.Use(utils.Ginzap(gl, time.RFC3339, true))
		r.Use(utils.RecoveryWithZap(gl, false))
	} else {
		utils.Sugar.Warnf("gin access log disabled: %v", err)
		r.Use(utils.RecoveryWithZap(utils.Logger, false))
	}

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Location", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	bases := svc.Bases()
	termsController := controllers.NewAuthorTermsController(svc)
	postsController := controllers.NewAuthorPostsController(svc)
	usersController := controllers.NewAuthorUsersController(svc)

	prefix := "/" + strings.Trim(cfg.APIRoot, "/") + "/" + strings.Trim(cfg.Namespace, "/")
	api := r.Group(prefix)
	api.Use(middleware.RateLimitMiddleware(cfg.RateLimitPerMinute))

	scoped := "/" + bases.Parent + "/:parent_id"
	families := []struct {
		base string
		list gin.HandlerFunc
		get  gin.HandlerFunc
	}{
		{bases.Terms, termsController.List, termsController.Get},
		{bases.Posts, postsController.List, postsController.Get},
		{bases.Users, usersController.List, usersController.Get},
	}
	for _, f := range families {
		api.GET("/"+f.base, f.list)
		api.GET("/"+f.base+"/:id", f.get)
		api.GET(scoped+"/"+f.base, f.list)
		api.GET(scoped+"/"+f.base+"/:id", f.get)
	}

	writes := api.Group(scoped + "/" + bases.Terms)
	writes.Use(middleware.AuthRequired(cfg.JWTSecret))
	writes.POST("", termsController.Create)
	writes.DELETE("/:id", termsController.Delete)

	r.NoRoute(func(ctx *gin.Context) {
		utils.Error(ctx, http.StatusNotFound, "rest_no_route", "No route was found matching the URL and request method.")
	})

	return r
}
