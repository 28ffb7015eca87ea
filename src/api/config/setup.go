package config

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// APIConfig contiene la configuración del módulo API (health y metadata).
type APIConfig struct {
	Version    string
	BackendURL string
	startedAt  time.Time
}

// DefaultAPIConfig devuelve una configuración por defecto.
func DefaultAPIConfig() APIConfig {
	return APIConfig{
		Version:   "dev",
		startedAt: time.Now(),
	}
}

// SetupAPIModule registra el health check en la raíz y bajo /api/v1.
func SetupAPIModule(router *gin.Engine, v1 *gin.RouterGroup, cfg APIConfig) {
	handler := func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":      "ok",
			"version":     cfg.Version,
			"backend_url": cfg.BackendURL,
			"uptime":      time.Since(cfg.startedAt).Round(time.Second).String(),
		})
	}

	router.GET("/health", handler)
	v1.GET("/health", handler)
}
