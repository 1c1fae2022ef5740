package transport

import (
	"context"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/imtaco/showroom-live/internal/errors"
	"github.com/imtaco/showroom-live/internal/log"
	"github.com/imtaco/showroom-live/internal/validation"
	"github.com/imtaco/showroom-live/lives"
)

const (
	serviceName     = "showroom-live"
	headerRequestID = "X-Request-Id"
	ctxRequestID    = "requestId"
)

type Router struct {
	service lives.Service
	groups  Groups
	engine  *gin.Engine
	logger  *log.Logger
}

func NewRouter(service lives.Service, groups []string, logger *log.Logger) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(otelgin.Middleware(serviceName))
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", headerRequestID},
		ExposeHeaders:    []string{"Content-Length", headerRequestID},
		AllowCredentials: false,
	}))

	r := &Router{
		service: service,
		groups:  NewGroups(groups),
		engine:  engine,
		logger:  logger,
	}

	r.engine.Use(r.requestID)
	r.setupRoutes()
	return r
}

func (r *Router) Handler() http.Handler {
	return r.engine
}

func (r *Router) setupRoutes() {
	api := r.engine.Group("/api/showroom")
	api.GET("/now_live", r.nowLive)
	api.GET("/now_live/direct", r.nowLiveDirect)
	api.GET("/now_live/followed", r.nowLiveFollowed)
	api.GET("/now_live/global", r.nowLiveGlobal)

	r.engine.GET("/health", r.healthCheck)
}

func (r *Router) requestID(c *gin.Context) {
	id := c.GetHeader(headerRequestID)
	if id == "" {
		id = uuid.New().String()
	}
	c.Set(ctxRequestID, id)
	c.Header(headerRequestID, id)

	r.logger.Debug("Incoming request",
		log.String("requestId", id),
		log.String("method", c.Request.Method),
		log.String("url", c.Request.URL.String()))
	c.Next()
}

func (r *Router) nowLive(c *gin.Context) {
	group, ok := r.bindGroup(c)
	if !ok {
		return
	}
	r.serve(c, "now_live", func(ctx context.Context) ([]lives.LiveRoom, error) {
		return r.service.GetNowLive(ctx, group)
	})
}

func (r *Router) nowLiveDirect(c *gin.Context) {
	group, ok := r.bindGroup(c)
	if !ok {
		return
	}
	r.serve(c, "now_live_direct", func(ctx context.Context) ([]lives.LiveRoom, error) {
		return r.service.GetNowLiveDirect(ctx, nil, group)
	})
}

func (r *Router) nowLiveFollowed(c *gin.Context) {
	group, ok := r.bindGroup(c)
	if !ok {
		return
	}
	r.serve(c, "now_live_followed", func(ctx context.Context) ([]lives.LiveRoom, error) {
		return r.service.GetNowLiveFollowed(ctx, nil, group)
	})
}

func (r *Router) nowLiveGlobal(c *gin.Context) {
	r.serve(c, "now_live_global", func(ctx context.Context) ([]lives.LiveRoom, error) {
		return r.service.GetNowLiveGlobal(ctx, nil)
	})
}

// bindGroup resolves the optional group query against the allow-list.
func (r *Router) bindGroup(c *gin.Context) (string, bool) {
	var q NowLiveQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Validation failed",
			"details": validation.FormatValidationError(err),
		})
		return "", false
	}

	group := r.groups.Resolve(q.Group)
	if q.Group != "" && group == "" {
		unknownGroups.Add(c.Request.Context(), 1)
		r.logger.Debug("unknown group, using full roster", log.String("group", q.Group))
	}
	return group, true
}

func (r *Router) serve(c *gin.Context, route string, fn func(ctx context.Context) ([]lives.LiveRoom, error)) {
	ctx := c.Request.Context()
	attrs := metric.WithAttributes(attribute.String("route", route))

	inflight.Add(ctx, 1, attrs)
	rooms, err := fn(ctx)
	inflight.Add(ctx, -1, attrs)
	if err != nil {
		requestsFailed.Add(ctx, 1, attrs)
		status, msg := statusOf(err)
		r.logger.Error("now live failed",
			log.String("route", route),
			log.String("requestId", c.GetString(ctxRequestID)),
			log.Error(err))
		c.JSON(status, gin.H{
			"success": false,
			"error":   msg,
		})
		return
	}

	requestsServed.Add(ctx, 1, attrs)
	if rooms == nil {
		rooms = []lives.LiveRoom{}
	}
	c.JSON(http.StatusOK, rooms)
}

func statusOf(err error) (int, string) {
	switch code := errors.CodeOf(err); code {
	case lives.ErrDirectory, lives.ErrFeed:
		return http.StatusBadGateway, string(code)
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func (r *Router) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": serviceName,
	})
}
