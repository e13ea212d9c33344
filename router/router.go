package router

import (
	"comment-service/handler"
	"comment-service/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func Setup(h *handler.CommentHandler, serviceName string) *gin.Engine {
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Length", "Content-Type"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition"},
	}))
	r.Use(middleware.PrometheusMiddleware(serviceName))

	r.SetHTMLTemplate(handler.Templates())

	// Browser UI
	r.GET("/", h.Index)
	r.POST("/", h.Submit)
	r.GET("/export/:id", h.ExportSession)
	r.GET("/chart/:id", h.SessionChart)

	api := r.Group("/api")
	{
		api.GET("/resolve", h.ResolveURL)
		api.GET("/comments", h.GetComments)
		api.GET("/comments/stream", h.StreamComments)
		api.GET("/sessions/:id", h.GetSession)
	}

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "service": serviceName})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
