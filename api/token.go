package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/visitcacapava/checkin-api/store"
)

// issueToken mints a signed check-in token for a POI. Called by kiosks
// and staff devices; the resulting string is rendered as a QR code on
// site. The signing secret never leaves this service.
func (s *Server) issueToken(c *gin.Context) {
	var body struct {
		PoiID string `json:"poi_id" binding:"required"`
	}
	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	tokenString, err := s.orchestrator.IssueToken(body.PoiID)
	if err != nil {
		switch err {
		case store.ErrPOINotFound:
			abortWithEncoding(c, http.StatusNotFound, errorUnknownPOI)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": tokenString})
}
