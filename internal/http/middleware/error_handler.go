package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/adilkhanov/hrdoc-backend/internal/logger"
	"github.com/adilkhanov/hrdoc-backend/internal/pkg/apperror"
)

// ErrorHandler обрабатывает ошибки централизованно.
// Маскирует внутренние ошибки и возвращает понятные сообщения клиенту.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Проверяем, не был ли уже отправлен ответ
		if c.Writer.Written() {
			return
		}

		if len(c.Errors) > 0 {
			err := c.Errors.Last()

			statusCode := http.StatusInternalServerError
			message := "внутренняя ошибка сервера"
			code := apperror.ErrCodeInternal

			// Логируем ошибку
			if logger.Log != nil {
				logger.Log.WithFields(logrus.Fields{
					"error":  err.Error(),
					"path":   c.Request.URL.Path,
					"method": c.Request.Method,
				}).Error("Request error")
			}

			var appErr *apperror.AppError
			if errors.As(err.Err, &appErr) {
				statusCode = appErr.HTTPStatus
				message = appErr.Message
				code = appErr.Code
			} else if err.Error() != "" && !containsInternalKeywords(err.Error()) {
				// Если ошибка содержит понятное сообщение, используем его
				message = err.Error()
				statusCode = http.StatusBadRequest
				code = apperror.ErrCodeBadRequest
			}

			c.JSON(statusCode, gin.H{"error": message, "code": code})
		}
	}
}

// containsInternalKeywords проверяет, содержит ли строка ключевые слова внутренних ошибок.
func containsInternalKeywords(s string) bool {
	keywords := []string{
		"sql:",
		"database",
		"connection",
		"timeout",
		"internal",
		"panic",
		"runtime",
	}

	for _, keyword := range keywords {
		if contains(s, keyword) {
			return true
		}
	}
	return false
}

// contains проверяет, содержит ли строка подстроку (case-insensitive).
func contains(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
