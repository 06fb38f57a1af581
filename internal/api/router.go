// Package api wires the HTTP surface of PeerPath.
package api

import (
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/d60-Lab/peerpath/config"
	_ "github.com/d60-Lab/peerpath/docs"
	"github.com/d60-Lab/peerpath/internal/api/handler"
	"github.com/d60-Lab/peerpath/internal/api/middleware"
	"github.com/d60-Lab/peerpath/internal/service"
	"github.com/d60-Lab/peerpath/pkg/auth"
)

// HealthFunc reports readiness details for /health.
type HealthFunc func() gin.H

// Options groups what the router needs beyond the forum service.
type Options struct {
	Tokens  *auth.TokenManager
	Limiter *middleware.RateLimiter
	Health  HealthFunc
}

// NewRouter builds the gin engine with every route under /api/v1.
func NewRouter(cfg *config.Config, forum service.ForumService, opts Options) (*gin.Engine, error) {
	gin.SetMode(cfg.Server.Mode)
	if err := handler.RegisterValidators(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(middleware.Recovery(), middleware.Sentry())
	if cfg.Tracing.Enabled {
		r.Use(otelgin.Middleware(cfg.Tracing.ServiceName))
	}
	r.Use(middleware.Logger(), gzip.Gzip(gzip.DefaultCompression))

	r.GET("/health", func(c *gin.Context) {
		body := gin.H{"status": "ok"}
		if opts.Health != nil {
			for k, v := range opts.Health() {
				body[k] = v
			}
		}
		c.JSON(http.StatusOK, body)
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	limiter := opts.Limiter
	if limiter == nil {
		limiter = middleware.NewRateLimiter(cfg.AI.RateLimit, cfg.AI.Burst)
	}
	h := handler.NewHandler(forum, opts.Tokens)
	authed := middleware.JWTAuth(opts.Tokens)
	ai := limiter.Middleware()

	v1 := r.Group("/api/v1")
	{
		a := v1.Group("/auth")
		a.POST("/signup", h.Signup)
		a.POST("/login", h.Login)

		users := v1.Group("/users")
		users.PATCH("/me", authed, h.UpdateMe)
		users.GET("/:id", h.GetUser)

		q := v1.Group("/questions")
		q.GET("", h.ListQuestions)
		q.POST("", authed, ai, h.AskQuestion)
		q.POST("/draft", authed, ai, h.Draft)
		q.GET("/:id", h.GetQuestion)
		q.POST("/:id/answers", authed, h.PostAnswer)
		q.POST("/:id/summary", authed, ai, h.Summarize)

		ans := v1.Group("/answers", authed)
		ans.POST("/:id/comments", h.Comment)
		ans.POST("/:id/upvote", h.Upvote)
		ans.POST("/:id/helped", h.Helped)

		me := v1.Group("/me", authed)
		me.GET("/dashboard", h.Dashboard)
		me.GET("/mentions", h.Mentions)
		me.POST("/mentions/read", h.MarkMentionsRead)
	}
	return r, nil
}
