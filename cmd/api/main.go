package main

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/barbercloud/agenda-api/internal/config"
	dbpkg "github.com/barbercloud/agenda-api/internal/db"
	"github.com/barbercloud/agenda-api/internal/logging"
	"github.com/barbercloud/agenda-api/internal/metrics"
	"github.com/barbercloud/agenda-api/internal/middleware"
	"github.com/barbercloud/agenda-api/internal/routes"
)

func main() {

	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	db := dbpkg.NewDB(cfg)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(logging.RequestLogger())
	r.Use(metrics.Middleware())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "X-Request-ID"}
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
