package store

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/visitcacapava/checkin-api/reward"
	"github.com/visitcacapava/checkin-api/schema"
)

var (
	ErrDailyLimitReached = fmt.Errorf("daily check-in limit reached")
	ErrCheckinNotFound   = fmt.Errorf("check-in record not found")
	ErrProfileNotFound   = fmt.Errorf("checkin profile not found")
)

// CooldownError - the same account redeemed the same POI too recently.
type CooldownError struct {
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("checked in recently, wait %s", e.Remaining.Round(time.Second))
}

// CheckinLedger - per-account redemption history and anti-fraud counters.
//
// RedeemCheckin is the contract the orchestrator depends on: the cooldown
// and daily-cap gate and the counter update happen as one atomic step per
// account, so two concurrent redemptions can never both pass the gate.
type CheckinLedger interface {
	CreateCheckinProfile(accountNumber string) error
	GetCheckinProfile(accountNumber string) (*schema.CheckinProfile, error)
	DeleteCheckinProfile(accountNumber string) error

	RedeemCheckin(accountNumber string, poi *schema.POI, method schema.CheckinMethod,
		now time.Time, award reward.AwardFunc) (*schema.CheckinRecord, error)

	ListCheckins(accountNumber string, limit int64, skip int64) ([]schema.CheckinRecord, error)
	GetCheckin(id primitive.ObjectID) (*schema.CheckinRecord, error)
	RemoveCheckin(id primitive.ObjectID) error
}

// CreateCheckinProfile inserts an empty ledger document for a new account.
func (m *mongoDB) CreateCheckinProfile(accountNumber string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.CheckinProfileCollection)

	update := bson.M{
		"$setOnInsert": bson.M{
			"visits":       bson.M{},
			"daily":        bson.M{},
			"categories":   bson.M{},
			"badges":       bson.A{},
			"total_points": 0,
		},
	}
	opts := options.Update().SetUpsert(true)

	_, err := c.UpdateOne(ctx, bson.M{"account_number": accountNumber}, update, opts)
	return err
}

// GetCheckinProfile reads the full ledger state of an account.
func (m *mongoDB) GetCheckinProfile(accountNumber string) (*schema.CheckinProfile, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.CheckinProfileCollection)

	var profile schema.CheckinProfile
	if err := c.FindOne(ctx, bson.M{"account_number": accountNumber}).Decode(&profile); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	return &profile, nil
}

// DeleteCheckinProfile removes an account's ledger and history.
func (m *mongoDB) DeleteCheckinProfile(accountNumber string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	db := m.client.Database(m.database)
	if _, err := db.Collection(schema.CheckinProfileCollection).DeleteOne(ctx, bson.M{"account_number": accountNumber}); err != nil {
		return err
	}
	_, err := db.Collection(schema.CheckinCollection).DeleteMany(ctx, bson.M{"account_number": accountNumber})
	return err
}

// RedeemCheckin runs the cooldown and daily-cap gate and the counter
// update as a single conditional update on the account's ledger document.
// The document filter encodes both preconditions, so the classic
// check-then-act race cannot double-redeem: whichever concurrent attempt
// matches first consumes the slot, the other sees a cooldown failure.
//
// The award callback receives the pre-redemption snapshot and computes
// the points and optional badge, which are then committed together with
// the history record. A failed gate never mutates the ledger.
func (m *mongoDB) RedeemCheckin(accountNumber string, poi *schema.POI, method schema.CheckinMethod,
	now time.Time, award reward.AwardFunc) (*schema.CheckinRecord, error) {
	return m.redeemCheckin(accountNumber, poi, method, now, award, true)
}

func (m *mongoDB) redeemCheckin(accountNumber string, poi *schema.POI, method schema.CheckinMethod,
	now time.Time, award reward.AwardFunc, retry bool) (*schema.CheckinRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.CheckinProfileCollection)

	poiKey := poi.ID.Hex()
	visitField := "visits." + poiKey
	dailyField := "daily." + schema.DailyKey(now)
	nowMs := now.UnixNano() / int64(time.Millisecond)
	cutoff := nowMs - m.limits.Cooldown.Milliseconds()

	filter := bson.M{
		"account_number": accountNumber,
		"$and": bson.A{
			bson.M{"$or": bson.A{
				bson.M{visitField + ".last_redeemed_at": bson.M{"$exists": false}},
				bson.M{visitField + ".last_redeemed_at": bson.M{"$lte": cutoff}},
			}},
			bson.M{"$or": bson.A{
				bson.M{dailyField: bson.M{"$exists": false}},
				bson.M{dailyField: bson.M{"$lt": m.limits.DailyCap}},
			}},
		},
	}
	update := bson.M{
		"$set": bson.M{visitField + ".last_redeemed_at": nowMs},
		"$inc": bson.M{
			visitField + ".count": 1,
			dailyField:            1,
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.Before)

	var prior schema.CheckinProfile
	if err := c.FindOneAndUpdate(ctx, filter, update, opts).Decode(&prior); err != nil {
		if err != mongo.ErrNoDocuments {
			return nil, err
		}
		return m.resolveGateFailure(accountNumber, poi, method, now, award, retry, nowMs, poiKey, dailyField)
	}

	visit := prior.Visits[poiKey]
	badgeID := reward.BadgeID(poi.Category)
	snap := reward.VisitSnapshot{
		FirstVisit:       visit.Count == 0,
		CategoryVisits:   prior.Categories[poi.Category],
		HasCategoryBadge: containsString(prior.Badges, badgeID),
	}
	out := award(snap)

	commit := bson.M{
		"$inc": bson.M{"total_points": out.Points},
	}
	if snap.FirstVisit {
		commit["$inc"].(bson.M)["categories."+poi.Category] = 1
		commit["$set"] = bson.M{visitField + ".first_redeemed_at": nowMs}
	}
	if out.Badge != "" {
		commit["$addToSet"] = bson.M{"badges": out.Badge}
	}
	if _, err := c.UpdateOne(ctx, bson.M{"account_number": accountNumber}, commit); err != nil {
		return nil, err
	}

	record := schema.CheckinRecord{
		ID:            primitive.NewObjectID(),
		AccountNumber: accountNumber,
		PoiID:         poi.ID,
		Method:        method,
		Points:        out.Points,
		Badge:         out.Badge,
		Timestamp:     now.UTC(),
		Day:           schema.DailyKey(now),
	}
	if _, err := m.client.Database(m.database).Collection(schema.CheckinCollection).InsertOne(ctx, record); err != nil {
		return nil, err
	}

	return &record, nil
}

// resolveGateFailure turns a non-matching gate update into a typed
// failure, creating the ledger document on the fly for accounts that
// predate it.
func (m *mongoDB) resolveGateFailure(accountNumber string, poi *schema.POI, method schema.CheckinMethod,
	now time.Time, award reward.AwardFunc, retry bool, nowMs int64, poiKey, dailyField string) (*schema.CheckinRecord, error) {
	profile, err := m.GetCheckinProfile(accountNumber)
	if err == ErrProfileNotFound {
		if !retry {
			return nil, fmt.Errorf("checkin profile for %s keeps disappearing", accountNumber)
		}
		if err := m.CreateCheckinProfile(accountNumber); err != nil {
			return nil, err
		}
		return m.redeemCheckin(accountNumber, poi, method, now, award, false)
	} else if err != nil {
		return nil, err
	}

	if profile.Daily[schema.DailyKey(now)] >= m.limits.DailyCap {
		return nil, ErrDailyLimitReached
	}

	visit := profile.Visits[poiKey]
	remaining := time.Duration(visit.LastRedeemedAt+m.limits.Cooldown.Milliseconds()-nowMs) * time.Millisecond
	if remaining > 0 {
		return nil, &CooldownError{Remaining: remaining}
	}

	// the profile changed between the gate and this read; one more try
	if retry {
		return m.redeemCheckin(accountNumber, poi, method, now, award, false)
	}

	log.WithFields(log.Fields{
		"prefix":  mongoLogPrefix,
		"account": accountNumber,
		"poi":     poiKey,
	}).Error("checkin gate kept failing without a diagnosable reason")
	return nil, fmt.Errorf("checkin gate failed for account %s", accountNumber)
}

// ListCheckins returns an account's redemption history, newest first.
func (m *mongoDB) ListCheckins(accountNumber string, limit int64, skip int64) ([]schema.CheckinRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.CheckinCollection)

	opts := options.Find().
		SetSort(bson.M{"ts": -1}).
		SetLimit(limit).
		SetSkip(skip)

	cur, err := c.Find(ctx, bson.M{"account_number": accountNumber}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	records := make([]schema.CheckinRecord, 0)
	for cur.Next(ctx) {
		var r schema.CheckinRecord
		if err := cur.Decode(&r); err != nil {
			return nil, err
		}
		records = append(records, r)
	}

	return records, nil
}

// GetCheckin looks up a single redemption record.
func (m *mongoDB) GetCheckin(id primitive.ObjectID) (*schema.CheckinRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.CheckinCollection)

	var r schema.CheckinRecord
	if err := c.FindOne(ctx, bson.M{"_id": id}).Decode(&r); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrCheckinNotFound
		}
		return nil, err
	}

	return &r, nil
}

// RemoveCheckin is the removal hook for admin restore tooling. It deletes
// the record and rolls its counters and points back out of the ledger.
// The per-POI cooldown timestamp is left as is: a removed redemption does
// not entitle an immediate re-redemption.
func (m *mongoDB) RemoveCheckin(id primitive.ObjectID) error {
	record, err := m.GetCheckin(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	db := m.client.Database(m.database)
	if _, err := db.Collection(schema.CheckinCollection).DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return err
	}

	// records predating the day field fall back to the UTC date
	day := record.Day
	if day == "" {
		day = schema.DailyKey(record.Timestamp)
	}

	poiKey := record.PoiID.Hex()
	update := bson.M{
		"$inc": bson.M{
			"total_points":                -record.Points,
			"visits." + poiKey + ".count": -1,
			"daily." + day:                -1,
		},
	}
	_, err = db.Collection(schema.CheckinProfileCollection).UpdateOne(ctx,
		bson.M{"account_number": record.AccountNumber}, update)
	return err
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
