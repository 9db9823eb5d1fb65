package reward

import (
	"fmt"

	"github.com/visitcacapava/checkin-api/schema"
)

const (
	// TokenBasePoints - scanning a QR token is a deliberate physical
	// action and is worth more than passive proximity discovery.
	TokenBasePoints     = 25
	ProximityBasePoints = 10

	FirstVisitMultiplier = 2

	// DefaultBadgeThreshold - distinct POIs of one category a visitor
	// must check into before earning the category badge.
	DefaultBadgeThreshold = 3
)

// VisitSnapshot is the visitor's ledger state for the POI being redeemed,
// taken before the redemption is applied.
type VisitSnapshot struct {
	// FirstVisit - the visitor has no prior redemption of this POI
	FirstVisit bool
	// CategoryVisits - distinct POIs of the POI's category the visitor
	// has already checked into
	CategoryVisits int
	// HasCategoryBadge - the category badge was already awarded
	HasCategoryBadge bool
}

// AwardFunc computes the outcome of a redemption from the visitor's
// pre-redemption snapshot. Ledger implementations call it inside their
// atomic redemption step.
type AwardFunc func(VisitSnapshot) Outcome

// Outcome of a successful redemption.
type Outcome struct {
	Points int
	// Badge is non-empty when this redemption crosses the category
	// threshold for the first time.
	Badge string
}

// BadgeID returns the one-time badge identifier of a category.
func BadgeID(category string) string {
	return fmt.Sprintf("%s-explorer", category)
}

// Compute returns the points and optional badge for one successful
// redemption. It is a pure function of the POI, the redemption method and
// the pre-redemption snapshot; repeated calls with the same inputs give
// the same outcome.
func Compute(poi schema.POI, method schema.CheckinMethod, snap VisitSnapshot, badgeThreshold int) Outcome {
	var points int
	switch method {
	case schema.CheckinMethodToken:
		points = TokenBasePoints
		if poi.BaseReward > 0 {
			// the catalog may price individual POIs above the default
			points = poi.BaseReward
		}
	default:
		points = ProximityBasePoints
	}

	if snap.FirstVisit {
		points *= FirstVisitMultiplier
	}

	out := Outcome{Points: points}

	if badgeThreshold <= 0 {
		badgeThreshold = DefaultBadgeThreshold
	}

	if snap.FirstVisit && !snap.HasCategoryBadge && poi.Category != "" &&
		snap.CategoryVisits+1 >= badgeThreshold {
		out.Badge = BadgeID(poi.Category)
	}

	return out
}
