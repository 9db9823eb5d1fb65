package api

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/visitcacapava/checkin-api/checkin"
	"github.com/visitcacapava/checkin-api/schema"
	"github.com/visitcacapava/checkin-api/utils"
)

type checkinRequest struct {
	Method   string           `json:"method" binding:"required"`
	Token    string           `json:"token"`
	PoiID    string           `json:"poi_id"`
	Location *schema.Location `json:"location" binding:"required"`
}

type checkinResponse struct {
	Success bool   `json:"success"`
	Points  int    `json:"points,omitempty"`
	Badge   string `json:"badge,omitempty"`
	Reason  string `json:"reason,omitempty"`
	Code    int64  `json:"code,omitempty"`
}

// checkinCreate is the redemption API. Both methods run the same
// pipeline; validation failures come back as a 200 with success=false
// and a localized reason, since they are expected visitor outcomes, not
// request errors.
func (s *Server) checkinCreate(c *gin.Context) {
	account := currentAccount(c)
	if account == nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	var req checkinRequest
	if err := c.BindJSON(&req); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	tz := utils.GetLocation(account.Timezone())
	if tz == nil {
		tz = utils.DefaultLocation()
	}
	now := time.Now().In(tz)

	var result *checkin.Result
	var err error

	switch schema.CheckinMethod(req.Method) {
	case schema.CheckinMethodToken:
		if req.Token == "" {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
		result, err = s.orchestrator.RedeemWithToken(req.Token, account.AccountNumber, *req.Location, now)
	case schema.CheckinMethodProximity:
		if req.PoiID == "" {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
		result, err = s.orchestrator.RedeemByProximity(req.PoiID, account.AccountNumber, *req.Location, now)
	default:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if err != nil {
		abortWithEncoding(c, http.StatusServiceUnavailable, errorStorageUnavailable, err)
		return
	}

	// remember where the visitor was; losing this is not worth failing
	// the redemption over
	if err := s.store.UpdateAccountGeoPosition(account.AccountNumber,
		req.Location.Latitude, req.Location.Longitude); err != nil {
		log.WithError(err).Warn("update account geo position")
	}

	if !result.Success {
		c.JSON(http.StatusOK, checkinResponse{
			Success: false,
			Reason:  s.localizeReason(c, result),
			Code:    reasonCodeMap[string(result.Reason)],
		})
		return
	}

	if result.Badge != "" {
		s.enqueueBadgeNotification(account.AccountNumber, result.Badge)
	}

	c.JSON(http.StatusOK, checkinResponse{
		Success: true,
		Points:  result.Points,
		Badge:   result.Badge,
	})
}

// checkinList returns the visitor's redemption history, newest first
func (s *Server) checkinList(c *gin.Context) {
	account := currentAccount(c)
	if account == nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)
	skip, _ := strconv.ParseInt(c.DefaultQuery("skip", "0"), 10, 64)
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if skip < 0 {
		skip = 0
	}

	records, err := s.mongoStore.ListCheckins(account.AccountNumber, limit, skip)
	if err != nil {
		abortWithEncoding(c, http.StatusServiceUnavailable, errorStorageUnavailable, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"checkins": records})
}

// checkinProfile returns the visitor's ledger summary: total points,
// badges and per-category progress.
func (s *Server) checkinProfile(c *gin.Context) {
	account := currentAccount(c)
	if account == nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	profile, err := s.mongoStore.GetCheckinProfile(account.AccountNumber)
	if err != nil {
		abortWithEncoding(c, http.StatusServiceUnavailable, errorStorageUnavailable, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_points": profile.TotalPoints,
		"badges":       profile.Badges,
		"categories":   profile.Categories,
	})
}

// localizeReason renders a failure reason in the caller's language.
func (s *Server) localizeReason(c *gin.Context, result *checkin.Result) string {
	localizer := utils.NewLocalizer(c.GetHeader("Accept-Language"))
	if localizer == nil {
		return string(result.Reason)
	}

	var messageID string
	var data map[string]interface{}

	switch result.Reason {
	case checkin.ReasonMalformedToken:
		messageID = "checkin_reason_malformed_token"
	case checkin.ReasonExpiredToken:
		messageID = "checkin_reason_expired_token"
	case checkin.ReasonBadSignature:
		messageID = "checkin_reason_bad_signature"
	case checkin.ReasonUnknownPOI:
		messageID = "checkin_reason_unknown_poi"
	case checkin.ReasonOutOfRange:
		messageID = "checkin_reason_out_of_range"
		data = map[string]interface{}{"Distance": int(math.Round(result.DistanceMeters))}
	case checkin.ReasonCooldownActive:
		messageID = "checkin_reason_cooldown"
		data = map[string]interface{}{"Minutes": int(math.Ceil(result.Remaining.Minutes()))}
	case checkin.ReasonDailyLimitReached:
		messageID = "checkin_reason_daily_limit"
	default:
		return string(result.Reason)
	}

	message, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil {
		log.WithError(err).Warn("localize checkin reason")
		return string(result.Reason)
	}
	return message
}

func (s *Server) enqueueBadgeNotification(accountNumber, badge string) {
	if s.background == nil {
		return
	}

	if _, err := s.background.SendTask(&tasks.Signature{
		Name: "award_notification",
		Args: []tasks.Arg{
			{Type: "string", Value: accountNumber},
			{Type: "string", Value: badge},
		},
	}); err != nil {
		log.WithError(err).Error("enqueue award notification")
	}
}
