package api

import (
	"net/http"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/visitcacapava/checkin-api/store"
)

// adminRemoveCheckin is the restore hook: it deletes a redemption record
// and rolls its points and counters back out of the visitor's ledger.
func (s *Server) adminRemoveCheckin(c *gin.Context) {
	checkinID, err := primitive.ObjectIDFromHex(c.Param("checkinID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if err := s.mongoStore.RemoveCheckin(checkinID); err != nil {
		switch err {
		case store.ErrCheckinNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorCheckinNotFound)
		default:
			abortWithEncoding(c, http.StatusServiceUnavailable, errorStorageUnavailable, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// adminAwardNotification is an internal only api to re-send a badge
// notification to a visitor
func (s *Server) adminAwardNotification(c *gin.Context) {
	var body struct {
		AccountNumber string `json:"account_number" binding:"required"`
		Badge         string `json:"badge" binding:"required"`
	}
	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if _, err := s.background.SendTask(&tasks.Signature{
		Name: "award_notification",
		Args: []tasks.Arg{
			{Type: "string", Value: body.AccountNumber},
			{Type: "string", Value: body.Badge},
		},
	}); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
