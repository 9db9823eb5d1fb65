package checkin

import (
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/visitcacapava/checkin-api/credential"
	"github.com/visitcacapava/checkin-api/geo"
	"github.com/visitcacapava/checkin-api/reward"
	"github.com/visitcacapava/checkin-api/schema"
	"github.com/visitcacapava/checkin-api/store"
)

// Reason - terminal outcome of a failed redemption attempt. Every reason
// is an expected, user-recoverable condition; storage faults surface as
// errors instead.
type Reason string

const (
	ReasonMalformedToken    Reason = "malformed-token"
	ReasonExpiredToken      Reason = "expired-token"
	ReasonBadSignature      Reason = "bad-signature"
	ReasonUnknownPOI        Reason = "unknown-poi"
	ReasonOutOfRange        Reason = "out-of-range"
	ReasonCooldownActive    Reason = "cooldown"
	ReasonDailyLimitReached Reason = "daily-limit"
)

// Result of one redemption attempt.
type Result struct {
	Success bool
	Points  int
	Badge   string
	Record  *schema.CheckinRecord

	// failure details
	Reason Reason
	// DistanceMeters is set for out-of-range failures
	DistanceMeters float64
	// Remaining is set for cooldown failures
	Remaining time.Duration
}

// Catalog - the read-only POI lookup the orchestrator consults. Owned by
// the catalog store; the orchestrator never mutates POIs.
type Catalog interface {
	GetPOI(poiID primitive.ObjectID) (*schema.POI, error)
}

// Ledger - the atomic redemption gate and history. See
// store.CheckinLedger for the atomicity contract.
type Ledger interface {
	RedeemCheckin(accountNumber string, poi *schema.POI, method schema.CheckinMethod,
		now time.Time, award reward.AwardFunc) (*schema.CheckinRecord, error)
}

// Config - tunables of the redemption pipeline.
type Config struct {
	// Secret - HMAC key for token issuance and verification. Never
	// leaves this process.
	Secret []byte
	// ValidityWindow of issued tokens
	ValidityWindow time.Duration
	// TokenRadiusMeters - redemption radius for token check-ins
	TokenRadiusMeters float64
	// ProximityRadiusMeters - tighter radius for location-only check-ins
	ProximityRadiusMeters float64
	// BadgeThreshold - distinct category POIs before the category badge
	BadgeThreshold int
}

// DefaultConfig returns the standard pipeline settings with the given
// secret.
func DefaultConfig(secret []byte) Config {
	return Config{
		Secret:                secret,
		ValidityWindow:        credential.DefaultValidityWindow,
		TokenRadiusMeters:     100,
		ProximityRadiusMeters: 60,
		BadgeThreshold:        reward.DefaultBadgeThreshold,
	}
}

// Orchestrator composes token verification, the proximity gate, the
// rate-limiting ledger and the reward calculator into the two public
// redemption operations plus token issuance.
type Orchestrator struct {
	config  Config
	catalog Catalog
	ledger  Ledger
}

func NewOrchestrator(config Config, catalog Catalog, ledger Ledger) *Orchestrator {
	return &Orchestrator{
		config:  config,
		catalog: catalog,
		ledger:  ledger,
	}
}

// IssueToken mints a signed check-in token for a catalog POI. Kiosk and
// staff devices call this through the trusted API; the signing secret
// stays on the server side.
func (o *Orchestrator) IssueToken(poiID string) (string, error) {
	poi, err := o.lookupPOI(poiID)
	if err != nil {
		return "", err
	}

	return credential.Issue(poi.ID.Hex(), o.config.Secret)
}

// RedeemWithToken validates a scanned token end to end and, if every gate
// passes, records the redemption and awards points. Failures return a
// typed reason and leave the ledger untouched.
func (o *Orchestrator) RedeemWithToken(tokenString, accountNumber string, userLocation schema.Location, now time.Time) (*Result, error) {
	poiID, err := credential.Verify(tokenString, o.config.Secret, now, o.config.ValidityWindow)
	if err != nil {
		switch err {
		case credential.ErrMalformedToken:
			return failure(ReasonMalformedToken), nil
		case credential.ErrExpiredToken:
			return failure(ReasonExpiredToken), nil
		case credential.ErrBadSignature:
			return failure(ReasonBadSignature), nil
		default:
			return nil, err
		}
	}

	return o.redeem(poiID, accountNumber, userLocation, now, schema.CheckinMethodToken, o.config.TokenRadiusMeters)
}

// RedeemByProximity records a location-only check-in. There is no token
// proof of intent, so the radius is tighter and the reward smaller.
func (o *Orchestrator) RedeemByProximity(poiID, accountNumber string, userLocation schema.Location, now time.Time) (*Result, error) {
	return o.redeem(poiID, accountNumber, userLocation, now, schema.CheckinMethodProximity, o.config.ProximityRadiusMeters)
}

func (o *Orchestrator) redeem(poiID, accountNumber string, userLocation schema.Location,
	now time.Time, method schema.CheckinMethod, radiusMeters float64) (*Result, error) {
	poi, err := o.lookupPOI(poiID)
	if err == store.ErrPOINotFound {
		return failure(ReasonUnknownPOI), nil
	} else if err != nil {
		return nil, err
	}

	if !geo.WithinRadius(userLocation, poi.Coordinates(), radiusMeters) {
		result := failure(ReasonOutOfRange)
		result.DistanceMeters = geo.DistanceMeters(userLocation, poi.Coordinates())
		return result, nil
	}

	record, err := o.ledger.RedeemCheckin(accountNumber, poi, method, now, func(snap reward.VisitSnapshot) reward.Outcome {
		return reward.Compute(*poi, method, snap, o.config.BadgeThreshold)
	})
	if err != nil {
		if cooldownErr, ok := err.(*store.CooldownError); ok {
			result := failure(ReasonCooldownActive)
			result.Remaining = cooldownErr.Remaining
			return result, nil
		}
		if err == store.ErrDailyLimitReached {
			return failure(ReasonDailyLimitReached), nil
		}
		return nil, err
	}

	log.WithFields(log.Fields{
		"prefix":  "checkin",
		"account": accountNumber,
		"poi":     poi.ID.Hex(),
		"method":  method,
		"points":  record.Points,
	}).Info("check-in recorded")

	return &Result{
		Success: true,
		Points:  record.Points,
		Badge:   record.Badge,
		Record:  record,
	}, nil
}

func (o *Orchestrator) lookupPOI(poiID string) (*schema.POI, error) {
	id, err := primitive.ObjectIDFromHex(poiID)
	if err != nil {
		return nil, store.ErrPOINotFound
	}
	return o.catalog.GetPOI(id)
}

func failure(reason Reason) *Result {
	return &Result{
		Success: false,
		Reason:  reason,
	}
}
