package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ecoquest/internal/domain"
)

// MsgInvalidCredentials is the only message a failed sign-in ever returns.
const MsgInvalidCredentials = "Email atau password tidak valid."

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	respond(c, http.StatusOK, data, message)
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	respond(c, http.StatusCreated, data, message)
}

func respond(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError maps service errors to HTTP responses. Unknown errors are
// logged with the request's trace id and hidden behind a generic 500.
func HandleServiceError(c *gin.Context, err error) {
	var ve *domain.ValidationError

	switch {
	case errors.As(err, &ve):
		RespondError(c, http.StatusBadRequest, ve.Error())
	case errors.Is(err, ErrInvalidLimit):
		RespondError(c, http.StatusBadRequest, "limit must be between 1 and 50")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, MsgInvalidCredentials)
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrSessionRevoked):
		RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
	case errors.Is(err, ErrForbidden):
		RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
	case errors.Is(err, ErrCannotDeleteSuperAdmin):
		RespondError(c, http.StatusForbidden, "Super admin cannot be deleted")
	case errors.Is(err, ErrCannotDeleteSelf):
		RespondError(c, http.StatusForbidden, "You cannot delete your own account")
	case errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, "Account not found")
	case errors.Is(err, ErrRewardNotFound):
		RespondError(c, http.StatusNotFound, "Reward not found")
	case errors.Is(err, ErrTrashBinNotFound):
		RespondError(c, http.StatusNotFound, "Trash bin not found")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, "Email already registered")
	default:
		zap.L().Error("request failed",
			zap.String("trace_id", c.GetString("trace_id")),
			zap.String("path", c.FullPath()),
			zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
