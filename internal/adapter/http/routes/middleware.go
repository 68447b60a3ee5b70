package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"morais_erp/internal/infrastructure/logging"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func setMiddlewares() {
	log := logging.GetLogger()
	router.Use(requestLogger(log))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.WithFields(logrus.Fields{
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		}).Errorf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(cors.New(corsConfig(os.Getenv("CORS_ALLOWED_ORIGINS"))))
}

// corsConfig allows every origin unless CORS_ALLOWED_ORIGINS lists some.
func corsConfig(allowed string) cors.Config {
	cfg := cors.DefaultConfig()
	origins := splitAndTrim(allowed)
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AddAllowMethods("PATCH")
	cfg.AddAllowHeaders("Authorization")
	cfg.AddExposeHeaders("Content-Disposition")
	return cfg
}

func splitAndTrim(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func requestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := log.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
		})
		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			entry.Error("[http] request")
		case status >= http.StatusBadRequest:
			entry.Warn("[http] request")
		default:
			entry.Info("[http] request")
		}
	}
}
