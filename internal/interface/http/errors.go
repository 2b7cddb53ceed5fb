package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/flogin/flogin-api/internal/application"
	"github.com/flogin/flogin-api/pkg/response"
)

// writeError is the single place where domain failures become HTTP
// responses. Unknown errors are logged and rendered as a generic 500; their
// text never reaches the client.
func writeError(c *gin.Context, logger *logrus.Logger, err error) {
	switch {
	case errors.Is(err, application.ErrUserNotFound):
		response.Message(c, http.StatusNotFound, err.Error())
	case errors.Is(err, application.ErrWrongPassword):
		response.Message(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, application.ErrUsernameTaken),
		errors.Is(err, application.ErrCategoryNameTaken),
		errors.Is(err, application.ErrCategoryNotFound),
		errors.Is(err, application.ErrProductNotFound):
		response.Message(c, http.StatusBadRequest, err.Error())
	default:
		if logger != nil {
			logger.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		}
		response.Internal(c)
	}
}
