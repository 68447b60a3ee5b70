package handlers

import (
	"morais_erp/internal/infrastructure/logging"
	"morais_erp/pkg"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var errInvalidDate = pkg.NewDomainErrorSimple("INVALID_DATE", "Dates must use the YYYY-MM-DD format", http.StatusBadRequest)

// clock is replaced in tests to pin overdue flags.
var clock = func() time.Time { return time.Now().UTC() }

func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logging.GetLogger().WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.FullPath(),
			"code":   appErr.Code,
		}).WithError(appErr.Err).Error("[http][handler] request failed")
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// bindJSON binds the body into dst and answers 400 with per-field details on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		writeError(c, pkg.NewValidationError(err, http.StatusBadRequest))
		return false
	}
	return true
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
