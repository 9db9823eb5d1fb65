package store

import (
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/visitcacapava/checkin-api/reward"
	"github.com/visitcacapava/checkin-api/schema"
)

// MemoryLedger is an in-process CheckinLedger used by tests and
// single-node development setups. A single mutex serializes every
// redemption, which trivially satisfies the atomic gate contract.
type MemoryLedger struct {
	mu       sync.Mutex
	limits   LedgerLimits
	profiles map[string]*schema.CheckinProfile
	records  []schema.CheckinRecord
}

func NewMemoryLedger(limits LedgerLimits) *MemoryLedger {
	return &MemoryLedger{
		limits:   limits,
		profiles: map[string]*schema.CheckinProfile{},
	}
}

func (l *MemoryLedger) CreateCheckinProfile(accountNumber string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.ensureProfile(accountNumber)
	return nil
}

func (l *MemoryLedger) ensureProfile(accountNumber string) *schema.CheckinProfile {
	if p, ok := l.profiles[accountNumber]; ok {
		return p
	}
	p := &schema.CheckinProfile{
		ID:            primitive.NewObjectID(),
		AccountNumber: accountNumber,
		Visits:        map[string]schema.PoiVisit{},
		Daily:         map[string]int{},
		Categories:    map[string]int{},
		Badges:        []string{},
	}
	l.profiles[accountNumber] = p
	return p
}

func (l *MemoryLedger) GetCheckinProfile(accountNumber string) (*schema.CheckinProfile, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	p, ok := l.profiles[accountNumber]
	if !ok {
		return nil, ErrProfileNotFound
	}

	// deep copy, so the snapshot cannot race with later redemptions
	clone := *p
	clone.Visits = make(map[string]schema.PoiVisit, len(p.Visits))
	for k, v := range p.Visits {
		clone.Visits[k] = v
	}
	clone.Daily = make(map[string]int, len(p.Daily))
	for k, v := range p.Daily {
		clone.Daily[k] = v
	}
	clone.Categories = make(map[string]int, len(p.Categories))
	for k, v := range p.Categories {
		clone.Categories[k] = v
	}
	clone.Badges = append([]string{}, p.Badges...)
	return &clone, nil
}

func (l *MemoryLedger) DeleteCheckinProfile(accountNumber string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.profiles, accountNumber)

	kept := l.records[:0]
	for _, r := range l.records {
		if r.AccountNumber != accountNumber {
			kept = append(kept, r)
		}
	}
	l.records = kept
	return nil
}

func (l *MemoryLedger) RedeemCheckin(accountNumber string, poi *schema.POI, method schema.CheckinMethod,
	now time.Time, award reward.AwardFunc) (*schema.CheckinRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	profile := l.ensureProfile(accountNumber)

	poiKey := poi.ID.Hex()
	dayKey := schema.DailyKey(now)
	nowMs := now.UnixNano() / int64(time.Millisecond)

	if profile.Daily[dayKey] >= l.limits.DailyCap {
		return nil, ErrDailyLimitReached
	}

	visit := profile.Visits[poiKey]
	if visit.Count > 0 {
		remaining := time.Duration(visit.LastRedeemedAt+l.limits.Cooldown.Milliseconds()-nowMs) * time.Millisecond
		if remaining > 0 {
			return nil, &CooldownError{Remaining: remaining}
		}
	}

	badgeID := reward.BadgeID(poi.Category)
	snap := reward.VisitSnapshot{
		FirstVisit:       visit.Count == 0,
		CategoryVisits:   profile.Categories[poi.Category],
		HasCategoryBadge: containsString(profile.Badges, badgeID),
	}
	out := award(snap)

	if snap.FirstVisit {
		visit.FirstRedeemedAt = nowMs
		profile.Categories[poi.Category]++
	}
	visit.LastRedeemedAt = nowMs
	visit.Count++
	profile.Visits[poiKey] = visit
	profile.Daily[dayKey]++
	profile.TotalPoints += out.Points
	if out.Badge != "" && !containsString(profile.Badges, out.Badge) {
		profile.Badges = append(profile.Badges, out.Badge)
	}

	record := schema.CheckinRecord{
		ID:            primitive.NewObjectID(),
		AccountNumber: accountNumber,
		PoiID:         poi.ID,
		Method:        method,
		Points:        out.Points,
		Badge:         out.Badge,
		Timestamp:     now.UTC(),
		Day:           dayKey,
	}
	l.records = append(l.records, record)

	return &record, nil
}

func (l *MemoryLedger) ListCheckins(accountNumber string, limit int64, skip int64) ([]schema.CheckinRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	matched := make([]schema.CheckinRecord, 0)
	for _, r := range l.records {
		if r.AccountNumber == accountNumber {
			matched = append(matched, r)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Timestamp.After(matched[j].Timestamp)
	})

	if skip >= int64(len(matched)) {
		return []schema.CheckinRecord{}, nil
	}
	matched = matched[skip:]
	if limit > 0 && limit < int64(len(matched)) {
		matched = matched[:limit]
	}
	return matched, nil
}

func (l *MemoryLedger) GetCheckin(id primitive.ObjectID) (*schema.CheckinRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, r := range l.records {
		if r.ID == id {
			clone := r
			return &clone, nil
		}
	}
	return nil, ErrCheckinNotFound
}

func (l *MemoryLedger) RemoveCheckin(id primitive.ObjectID) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, r := range l.records {
		if r.ID != id {
			continue
		}
		l.records = append(l.records[:i], l.records[i+1:]...)

		if profile, ok := l.profiles[r.AccountNumber]; ok {
			profile.TotalPoints -= r.Points
			visit := profile.Visits[r.PoiID.Hex()]
			visit.Count--
			profile.Visits[r.PoiID.Hex()] = visit
			day := r.Day
			if day == "" {
				day = schema.DailyKey(r.Timestamp)
			}
			profile.Daily[day]--
		}
		return nil
	}
	return ErrCheckinNotFound
}
