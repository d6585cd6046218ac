package server

import (
	"fmt"
	"net/http"
	"time"

	"NutriScan_Backend/internal/auth"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

const apiVersion = "1.0.0"

func (s *Server) RegisterRoutes() http.Handler {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(LoggerMiddleware)
	e.Use(RequestLogMiddleware())

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     s.cfg.CORSAllowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	e.Use(middleware.BodyLimit("1M"))

	// Public routes
	e.GET("/", s.indexHandler)
	e.GET("/health", s.healthHandler)
	e.GET("/api/gemini/health", s.geminiHealthHandler)

	// Protected routes
	gemini := e.Group("/api/gemini")
	gemini.Use(auth.JwtAuthMiddleware(s.cfg.SessionSecret))
	gemini.Use(RateLimitMiddleware(s.limiter))

	gemini.POST("/chat", s.deps.Chat.ChatHandler)
	gemini.POST("/nutrition-question", s.deps.Chat.NutritionQuestionHandler)

	return e
}

func (s *Server) indexHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Welcome to NutriScan API",
		"version": apiVersion,
		"endpoints": map[string]string{
			"health":             "GET /health",
			"gemini_health":      "GET /api/gemini/health",
			"chat":               "POST /api/gemini/chat",
			"nutrition_question": "POST /api/gemini/nutrition-question",
		},
	})
}

func (s *Server) healthHandler(c echo.Context) error {
	db := s.deps.DB.Health(c.Request().Context())

	status := http.StatusOK
	if db["status"] != "up" {
		status = http.StatusServiceUnavailable
	}

	return c.JSON(status, map[string]interface{}{
		"status":   db["status"],
		"database": db,
		"system":   systemStats(s.started),
	})
}

// systemStats is a cheap host snapshot; collection errors just drop the field.
func systemStats(started time.Time) map[string]interface{} {
	stats := map[string]interface{}{
		"uptime": time.Since(started).Round(time.Second).String(),
	}

	if v, err := mem.VirtualMemory(); err == nil {
		stats["memory"] = map[string]interface{}{
			"total_gb":     fmt.Sprintf("%.2f GB", float64(v.Total)/1024/1024/1024),
			"used_gb":      fmt.Sprintf("%.2f GB", float64(v.Used)/1024/1024/1024),
			"used_percent": fmt.Sprintf("%.2f%%", v.UsedPercent),
		}
	}

	// Interval 0 compares against the previous call instead of blocking.
	if pct, err := cpu.Percent(0, false); err == nil && len(pct) > 0 {
		stats["cpu"] = map[string]interface{}{
			"usage_percent": fmt.Sprintf("%.2f%%", pct[0]),
		}
	}

	return stats
}

func (s *Server) geminiHealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":    true,
		"service":    "gemini",
		"configured": s.deps.AIConfigured,
		"model":      s.deps.AIModel,
	})
}
