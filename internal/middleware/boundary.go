package middleware

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/abidnoul/portfolio/internal/service"

	"github.com/gin-gonic/gin"
)

// ErrorBoundary is the single request-boundary failure handler: page and
// API handlers record errors with c.Error and return, and this middleware
// maps them to the right response shape. NotFound becomes a 404 page (or
// JSON 404 on API routes); everything else becomes a generic 500 with the
// detail kept in the server log only. Panics are treated like internal
// errors.
func ErrorBoundary() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logFailure(c, fmt.Errorf("panic: %v", r))
				renderInternalError(c)
			}
		}()

		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		if errors.Is(err, service.ErrNotFound) {
			renderNotFound(c)
			return
		}

		logFailure(c, err)
		renderInternalError(c)
	}
}

func wantsJSON(c *gin.Context) bool {
	return strings.HasPrefix(c.Request.URL.Path, "/api/")
}

func renderNotFound(c *gin.Context) {
	if wantsJSON(c) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.HTML(http.StatusNotFound, "error.html", gin.H{
		"Status":    http.StatusNotFound,
		"Message":   "The page you are looking for does not exist.",
		"RequestID": c.GetString(RequestIDKey),
	})
}

func renderInternalError(c *gin.Context) {
	if wantsJSON(c) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":      "internal server error",
			"request_id": c.GetString(RequestIDKey),
		})
		return
	}
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{
		"Status":    http.StatusInternalServerError,
		"Message":   "Something went wrong. Please try again later.",
		"RequestID": c.GetString(RequestIDKey),
	})
}

func logFailure(c *gin.Context, err error) {
	log.Printf("request failed: %s %s request_id=%s err=%v",
		c.Request.Method, c.Request.URL.Path, c.GetString(RequestIDKey), err)
}
