package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CheckinCollection        = "checkin"
	CheckinProfileCollection = "checkin_profile"
)

// CheckinMethod is how a visitor proved presence at a POI.
type CheckinMethod string

const (
	// CheckinMethodToken - the visitor scanned a signed QR token at the POI
	CheckinMethodToken CheckinMethod = "token"
	// CheckinMethodProximity - the visitor was auto-discovered by location only
	CheckinMethodProximity CheckinMethod = "proximity"
)

// CheckinRecord - a single successful redemption, kept for history and
// admin restore tooling. Failed attempts are never recorded.
type CheckinRecord struct {
	ID            primitive.ObjectID `bson:"_id" json:"id"`
	AccountNumber string             `bson:"account_number" json:"-"`
	PoiID         primitive.ObjectID `bson:"poi_id" json:"poi_id"`
	Method        CheckinMethod      `bson:"method" json:"method"`
	Points        int                `bson:"points" json:"points"`
	Badge         string             `bson:"badge,omitempty" json:"badge,omitempty"`
	Timestamp     time.Time          `bson:"ts" json:"timestamp"`
	// Day is the ledger daily-counter key this redemption was counted
	// under. It follows the visitor's local date, which can differ from
	// the UTC date of Timestamp.
	Day string `bson:"day" json:"-"`
}

// PoiVisit - per-POI visit state of one account. Timestamps are epoch
// milliseconds to match the token wire format.
type PoiVisit struct {
	LastRedeemedAt  int64 `bson:"last_redeemed_at"`
	FirstRedeemedAt int64 `bson:"first_redeemed_at"`
	Count           int   `bson:"count"`
}

// CheckinProfile - the per-account ledger document. Cooldown and daily-cap
// gating runs as a single conditional update against this document, so all
// counters for one account live together.
type CheckinProfile struct {
	ID            primitive.ObjectID `bson:"_id"`
	AccountNumber string             `bson:"account_number"`
	Visits        map[string]PoiVisit `bson:"visits"`
	Daily         map[string]int      `bson:"daily"`
	Categories    map[string]int      `bson:"categories"`
	Badges        []string            `bson:"badges"`
	TotalPoints   int                 `bson:"total_points"`
}

// DailyKey formats the daily-counter key of a clock value. The key follows
// the location attached to the value, so callers decide which timezone a
// visitor's day rolls over in.
func DailyKey(now time.Time) string {
	return now.Format("2006-01-02")
}
