package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"wedding-planner/internal/handler"
)

type RouterConfig struct {
	Planner     *handler.Planner
	Log         zerolog.Logger
	CORSOrigins []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), RequestLogger(cfg.Log))

	if len(cfg.CORSOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:  cfg.CORSOrigins,
			AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders:  []string{"Content-Type", requestIDHeader},
			ExposeHeaders: []string{requestIDHeader},
			MaxAge:        12 * time.Hour,
		}))
	}

	rpc := NewRPCHandler(cfg.Planner)

	router.GET("/healthcheck", rpc.HealthCheck)
	router.GET("/rpc/:procedure", rpc.Call)
	router.POST("/rpc/:procedure", rpc.Call)

	return router
}
