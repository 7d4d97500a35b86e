package utils

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSONRecovery turns a panic in a handler into a JSON 500 instead of an empty
// response.
func JSONRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("panic serving %s %s: %v", c.Request.Method, c.Request.URL.Path, r)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unexpected error occurred"})
			}
		}()
		c.Next()
	}
}

// NotFound answers unknown routes with a JSON body.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	}
}
