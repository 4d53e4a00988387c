package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/leadvault_backend/internal/apperrors"
	"github.com/SscSPs/leadvault_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Error string `json:"error" example:"Lead not found"`
}

// respondError writes err with the status it maps to. AppError messages are
// passed through; notFoundMsg names the missing resource for bare ErrNotFound.
func respondError(c *gin.Context, err error, notFoundMsg string) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Code != 0 {
		if appErr.Code >= http.StatusInternalServerError {
			logServerError(c, err)
		}
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
		return
	}

	status := apperrors.StatusCode(err)
	msg := err.Error()
	switch status {
	case http.StatusNotFound:
		msg = notFoundMsg
	case http.StatusUnauthorized:
		msg = "Unauthorized"
		if errors.Is(err, apperrors.ErrRefreshTokenExpired) {
			msg = "Refresh token expired"
		}
	case http.StatusConflict:
		msg = "Resource already exists"
	case http.StatusBadGateway:
		logServerError(c, err)
		msg = "Upstream provider error"
	case http.StatusInternalServerError:
		logServerError(c, err)
		msg = "Internal server error"
	}
	c.JSON(status, ErrorResponse{Error: msg})
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
}

func logServerError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).ErrorContext(c.Request.Context(), "Request failed",
		slog.String("error", err.Error()))
}

// requireUserID returns the authenticated user id, writing 401 when absent.
func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return "", false
	}
	return userID, true
}
