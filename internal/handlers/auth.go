package handlers

import (
	"net/http"

	"todo_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SignUpRequest is the sign-up payload. Email syntax is checked by the
// service after trimming.
type SignUpRequest struct {
	Email           string `json:"email" binding:"required" example:"jane@example.com"`
	Username        string `json:"username" binding:"required" example:"jane"`
	Password        string `json:"password" binding:"required" example:"s3cret-pass"`
	PasswordConfirm string `json:"passwordConfirm" binding:"required" example:"s3cret-pass"`
}

// SignInRequest is the sign-in payload.
type SignInRequest struct {
	Email    string `json:"email" binding:"required" example:"jane@example.com"`
	Password string `json:"password" binding:"required" example:"s3cret-pass"`
}

// @Summary      Sign up
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      SignUpRequest  true  "New account"
// @Success      200   {object}  map[string]interface{}  "status, data.user"
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/auth/sign-up [post]
func (h *Handler) signUp(c *gin.Context) {
	var input SignUpRequest
	if ok := h.bindJSONOrBadRequest(c, &input, "auth_bad_request_body"); !ok {
		return
	}

	user, err := h.services.SignUp(c.Request.Context(), service.SignUpInput{
		Email:           input.Email,
		Username:        input.Username,
		Password:        input.Password,
		PasswordConfirm: input.PasswordConfirm,
	})
	if err != nil {
		if h.log != nil {
			h.log.Infow("auth_sign_up_failed", "email", input.Email, "err", err)
		}
		h.writeServiceError(c, err, "auth_sign_up_error")
		return
	}

	respondData(c, gin.H{"user": user})
}

// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      SignInRequest  true  "Credentials"
// @Success      200   {object}  map[string]interface{}  "status, token"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/v1/auth/sign-in [post]
func (h *Handler) signIn(c *gin.Context) {
	var input SignInRequest
	if ok := h.bindJSONOrBadRequest(c, &input, "auth_bad_request_body"); !ok {
		return
	}

	token, err := h.services.GenerateToken(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if h.log != nil {
			h.log.Infow("auth_sign_in_failed", "email", input.Email, "err", err)
		}
		h.writeServiceError(c, err, "auth_sign_in_error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": statusSuccess, "token": token})
}

// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, data.user"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/auth/me [get]
// @Security     BearerAuth
func (h *Handler) me(c *gin.Context) {
	user, err := h.services.GetUser(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.writeServiceError(c, err, "auth_me_failed")
		return
	}
	respondData(c, gin.H{"user": user})
}
