package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/azul/internal/pkg/logger"
)

// Logger configuration
type LoggerConfig struct {
	Logger         *logger.Logger
	LogRequestBody bool
	MaxBodySize    int64 // Max body size to log (in bytes)
	SkipPrefixes   []string
}

func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		LogRequestBody: true,
		MaxBodySize:    2048,
		SkipPrefixes:   []string{"/health", "/swagger"},
	}
}

func Logger() gin.HandlerFunc {
	return LoggerWithConfig(DefaultLoggerConfig())
}

// LoggerWithConfig logs one line per request. Bodies are only read when the
// logger is at debug level.
func LoggerWithConfig(config LoggerConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := config.Logger
		if log == nil {
			log = logger.Default()
		}

		path := c.Request.URL.Path
		for _, prefix := range config.SkipPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		start := time.Now()

		if config.LogRequestBody && log.GetLevel() <= logger.DebugLevel {
			if body := readBody(c, config.MaxBodySize); body != "" {
				log.Debug("request body", "method", c.Request.Method, "path", path, "body", body)
			}
		}

		c.Next()

		status := c.Writer.Status()
		keyvals := []interface{}{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"latency", time.Since(start),
			"size", c.Writer.Size(),
			"ip", c.ClientIP(),
		}
		if id := c.GetString(RequestIDKey); id != "" {
			keyvals = append(keyvals, "request_id", id)
		}
		if query := c.Request.URL.RawQuery; query != "" {
			keyvals = append(keyvals, "query", truncateString(query, 100))
		}
		if len(c.Errors) > 0 {
			keyvals = append(keyvals, "errors", c.Errors.String())
		}

		switch {
		case status >= 500:
			log.Error("request", keyvals...)
		case status >= 400:
			log.Warn("request", keyvals...)
		default:
			log.Info("request", keyvals...)
		}
	}
}

// readBody reads and restores the request body.
func readBody(c *gin.Context, maxSize int64) string {
	if c.Request.Body == nil || c.Request.ContentLength <= 0 {
		return ""
	}
	if c.Request.ContentLength > maxSize {
		return "[Request body too large to log]"
	}

	bodyBytes, err := io.ReadAll(io.LimitReader(c.Request.Body, maxSize))
	if err != nil {
		return ""
	}
	c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
	return sanitizeBody(string(bodyBytes), c.GetHeader("Content-Type"))
}

func sanitizeBody(body, contentType string) string {
	if len(body) == 0 {
		return ""
	}

	if len(body) > 1024 {
		return "[Body too large to log]"
	}

	if strings.Contains(contentType, "application/json") {
		var jsonData interface{}
		if json.Unmarshal([]byte(body), &jsonData) == nil {
			sanitized := hideSensitiveFields(jsonData)
			if formatted, err := json.Marshal(sanitized); err == nil {
				return string(formatted)
			}
		}
	}

	return truncateString(body, 200)
}

func hideSensitiveFields(data interface{}) interface{} {
	switch v := data.(type) {
	case map[string]interface{}:
		result := make(map[string]interface{})
		for key, value := range v {
			if isSensitiveField(strings.ToLower(key)) {
				result[key] = "********"
			} else {
				result[key] = hideSensitiveFields(value)
			}
		}
		return result
	case []interface{}:
		result := make([]interface{}, len(v))
		for i, item := range v {
			result[i] = hideSensitiveFields(item)
		}
		return result
	default:
		return v
	}
}

func isSensitiveField(field string) bool {
	sensitive := []string{"password", "token", "secret", "key", "auth", "credential"}
	for _, s := range sensitive {
		if strings.Contains(field, s) {
			return true
		}
	}
	return false
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
