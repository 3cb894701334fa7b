package route

import (
	"time"

	"archviz/config"
	"archviz/controller"
	mw "archviz/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
)

// New builds the gin engine with middleware and every route mounted.
func New(cfg *config.Config, h *controller.Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), mw.Logger())

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.CORSOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORSOrigins
	} else {
		corsConfig.AllowOriginFunc = func(string) bool { return true }
	}
	router.Use(cors.New(corsConfig))

	if cfg.Pprof {
		pprof.Register(router)
	}

	Unprotected(router, h)
	Protected(router, h, cfg.Auth.Secret)

	router.NoRoute(h.NotFound)
	return router
}
