package config

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// GetEnv obtiene una variable de entorno o devuelve un valor por defecto.
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// BackendBaseURL devuelve la dirección base del backend REST.
// Se configura una sola vez por entorno; todos los clientes la comparten.
func BackendBaseURL() string {
	return GetEnv("BACKEND_BASE_URL", "http://localhost:3333")
}

// BackendTimeout devuelve el timeout HTTP para llamadas al backend.
func BackendTimeout() time.Duration {
	seconds, err := strconv.Atoi(GetEnv("BACKEND_TIMEOUT_SECONDS", "10"))
	if err != nil || seconds <= 0 {
		seconds = 10
	}
	return time.Duration(seconds) * time.Second
}

// SharedConfig contiene la configuración de los middlewares compartidos.
type SharedConfig struct {
	EnableCORS        bool
	AllowedOrigin     string
	CORSExcludedPaths []string
}

// DefaultSharedConfig devuelve una configuración por defecto.
func DefaultSharedConfig() SharedConfig {
	return SharedConfig{
		EnableCORS:        true,
		AllowedOrigin:     GetEnv("CORS_ALLOWED_ORIGIN", "*"),
		CORSExcludedPaths: []string{"/health", "/metrics"},
	}
}

// SetupSharedMiddleware configura los middlewares compartidos del gateway.
func SetupSharedMiddleware(router *gin.Engine, cfg SharedConfig) {
	if cfg.EnableCORS {
		router.Use(corsMiddleware(cfg))
	}

	// Aquí se pueden agregar más middlewares compartidos en el futuro.
	// Por ejemplo:
	// - Autenticación/Autorización
	// - Rate limiting
}

// corsMiddleware permite que el front consuma el gateway desde otro origen.
func corsMiddleware(cfg SharedConfig) gin.HandlerFunc {
	excluded := make(map[string]bool, len(cfg.CORSExcludedPaths))
	for _, path := range cfg.CORSExcludedPaths {
		excluded[path] = true
	}

	return func(ctx *gin.Context) {
		if excluded[ctx.Request.URL.Path] {
			ctx.Next()
			return
		}

		ctx.Header("Access-Control-Allow-Origin", cfg.AllowedOrigin)
		ctx.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		ctx.Header("Access-Control-Allow-Headers", "Content-Type")

		if ctx.Request.Method == http.MethodOptions {
			ctx.AbortWithStatus(http.StatusNoContent)
			return
		}
		ctx.Next()
	}
}
