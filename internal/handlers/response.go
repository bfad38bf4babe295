package handlers

import (
	"errors"
	"net/http"
	"strings"

	"todo_backend/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	statusOK      = "ok"
	statusSuccess = "success"
	statusFail    = "fail"

	errInvalidBodyPref = "invalid body: "
	errInternal        = "internal server error"
	errBadCredentials  = "invalid credentials"
)

// respondFail writes the error envelope through write, which is either
// c.JSON or c.AbortWithStatusJSON.
func respondFail(write func(int, any), code int, msg string) {
	write(code, gin.H{"status": statusFail, "error": msg})
}

func respondData(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"status": statusSuccess, "data": data})
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any, logKey string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow(logKey, "err", err)
		}
		respondFail(c.JSON, http.StatusBadRequest, errInvalidBodyPref+err.Error())
		return false
	}
	return true
}

// writeServiceError maps service errors to HTTP status codes. Anything
// unrecognized is logged and hidden behind a generic 500.
func (h *Handler) writeServiceError(c *gin.Context, err error, logKey string, kv ...any) {
	switch {
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrTodoNotFound):
		respondFail(c.JSON, http.StatusBadRequest, clientMessage(err))
	case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrInvalidPassword):
		respondFail(c.JSON, http.StatusUnauthorized, errBadCredentials)
	case errors.Is(err, service.ErrInvalidToken):
		respondFail(c.JSON, http.StatusUnauthorized, errInvalidToken)
	default:
		if h.log != nil {
			h.log.Errorw(logKey, append([]any{"err", err}, kv...)...)
		}
		respondFail(c.JSON, http.StatusInternalServerError, errInternal)
	}
}

func clientMessage(err error) string {
	return strings.TrimPrefix(err.Error(), service.ErrInvalidInput.Error()+": ")
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}
