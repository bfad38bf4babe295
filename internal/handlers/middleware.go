package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey = "userId"

	errMissingHeader = "missing Authorization header"
	errHeaderFormat  = "invalid Authorization header format"
	errInvalidToken  = "invalid or expired token"
)

func (h *Handler) userIdMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		respondFail(c.AbortWithStatusJSON, http.StatusUnauthorized, errMissingHeader)
		return
	}

	token, ok := bearerToken(header)
	if !ok {
		respondFail(c.AbortWithStatusJSON, http.StatusUnauthorized, errHeaderFormat)
		return
	}

	h.authenticate(c, token)
}

// wsUserIdMiddleware prefers ?token= and falls back to the Authorization header.
func (h *Handler) wsUserIdMiddleware(c *gin.Context) {
	if token := strings.TrimSpace(c.Query("token")); token != "" {
		h.authenticate(c, token)
		return
	}
	h.userIdMiddleware(c)
}

func (h *Handler) authenticate(c *gin.Context, token string) {
	userId, err := h.services.ParseToken(token)
	if err != nil {
		respondFail(c.AbortWithStatusJSON, http.StatusUnauthorized, errInvalidToken)
		return
	}

	// store in Gin context
	c.Set(userIDKey, userId)
	c.Next()
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

// currentUserID reads the id stored by the auth middleware.
func currentUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

func (h *Handler) requestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()
	if h.log == nil {
		return
	}
	h.log.Infow("http_request",
		"method", c.Request.Method,
		"path", c.FullPath(),
		"status", c.Writer.Status(),
		"latency_ms", time.Since(start).Milliseconds(),
		"client_ip", c.ClientIP(),
	)
}
