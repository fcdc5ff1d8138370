package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/marsestates/brokerage-api/internal/modules/serializer"
)

// pathID parses a numeric :param. Only non-numeric segments are a 400;
// ids that merely do not exist (0, negatives) fall through to the
// lookup and come back as 404.
func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ErrorResponse{
			Error: "invalid " + name,
		})
		return 0, false
	}
	return id, true
}

// optText normalizes optional text inputs: nil or blank becomes
// absent, everything else is kept as-is.
func optText(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}

// successBody is the `{"success": true}` delete acknowledgement.
func successBody() gin.H {
	return gin.H{"success": true}
}
