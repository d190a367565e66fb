package middleware

import (
	"errors"
	"net/http"

	"agroflow-backend/internal/delivery/http/response"
	"agroflow-backend/pkg/apperror"
	"agroflow-backend/pkg/i18n"
	"agroflow-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error attached with c.Error. In production
// responses carry only the localized message and field map; details and
// debug text stay in the server log.
func ErrorHandler(production bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			logger.Log.Error("unhandled error", "path", c.FullPath(), "error", err)
			extra := &response.Extra{}
			if !production {
				extra.Debug = err.Error()
			}
			response.Error(c, http.StatusInternalServerError, i18n.Translate(i18n.KeyErrUnknown, i18n.Default), extra)
			return
		}

		if appErr.Code >= http.StatusInternalServerError {
			logger.Log.Error("request failed",
				"path", c.FullPath(),
				"kind", appErr.Kind,
				"details", appErr.Details,
				"error", appErr.Err,
			)
		}

		extra := &response.Extra{Fields: appErr.Fields}
		if !production {
			extra.Details = appErr.Details
			if appErr.Err != nil {
				extra.Debug = appErr.Err.Error()
			}
		}
		response.Error(c, appErr.Code, appErr.Message, extra)
	}
}
