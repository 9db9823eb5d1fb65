package credential

import (
	"crypto/hmac"
	"time"
)

const (
	// DefaultValidityWindow - how long an issued token can be redeemed.
	DefaultValidityWindow = 24 * time.Hour

	// issueTimeSkewTolerance - how far into the future an issue time may
	// sit before the token is rejected. Covers clock drift between the
	// issuing kiosk and this service.
	issueTimeSkewTolerance = 5 * time.Minute
)

// Verify validates a token string end to end: structural decode, expiry
// against the validity window, then HMAC recomputation over the decoded
// fields. The signature comparison is constant-time. On success it
// returns the validated POI id.
func Verify(tokenString string, secret []byte, now time.Time, window time.Duration) (string, error) {
	token, err := Decode(tokenString)
	if err != nil {
		return "", err
	}

	nowMs := now.UnixNano() / int64(time.Millisecond)
	age := nowMs - token.IssuedAt
	if age > window.Milliseconds() {
		return "", ErrExpiredToken
	}
	// A token issued in the future cannot have been minted legitimately;
	// treat it as expired rather than honoring it for longer than the window.
	if age < -issueTimeSkewTolerance.Milliseconds() {
		return "", ErrExpiredToken
	}

	expected := sign(secret, token.PoiID, token.Nonce, token.IssuedAt)
	if !hmac.Equal([]byte(expected), []byte(token.Signature)) {
		return "", ErrBadSignature
	}

	return token.PoiID, nil
}
