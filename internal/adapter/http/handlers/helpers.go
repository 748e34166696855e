package handlers

import (
	"net/http"

	"convoyage/pkg"

	"github.com/gin-gonic/gin"
)

// ownerHeader carries the opaque user id. Authentication itself is owned
// by the upstream gateway; this service only scopes data by the id.
const ownerHeader = "X-User-ID"

func ownerID(c *gin.Context) (string, bool) {
	id := c.GetHeader(ownerHeader)
	if id == "" {
		appErr := pkg.NewDomainErrorSimple("MISSING_USER", "Missing X-User-ID header", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return "", false
	}
	return id, true
}
