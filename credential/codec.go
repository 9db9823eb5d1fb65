package credential

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// TokenPrefix tags every token string. The format is a boundary
	// contract with the QR rendering and scanning tooling and must stay
	// byte-for-byte stable: VC:<poiID>:<nonce>:<issuedAtMillis>:<signature>
	TokenPrefix = "VC"

	tokenFieldCount = 5
	nonceSize       = 8
)

var (
	ErrMalformedToken = fmt.Errorf("malformed token")
	ErrExpiredToken   = fmt.Errorf("token expired")
	ErrBadSignature   = fmt.Errorf("bad token signature")
)

// Token is the decoded form of an issued check-in credential. Immutable
// once minted; any mutation of PoiID, Nonce or IssuedAt invalidates the
// signature.
type Token struct {
	PoiID     string
	Nonce     string
	IssuedAt  int64 // epoch milliseconds
	Signature string
}

// Issue mints a signed token bound to a POI, issued at the current time.
func Issue(poiID string, secret []byte) (string, error) {
	return IssueAt(poiID, secret, time.Now())
}

// IssueAt mints a signed token with an explicit issue time.
func IssueAt(poiID string, secret []byte, now time.Time) (string, error) {
	if poiID == "" || strings.Contains(poiID, ":") {
		return "", ErrMalformedToken
	}

	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}
	nonceHex := hex.EncodeToString(nonce)

	issuedAt := now.UnixNano() / int64(time.Millisecond)
	sig := sign(secret, poiID, nonceHex, issuedAt)

	return strings.Join([]string{
		TokenPrefix,
		poiID,
		nonceHex,
		strconv.FormatInt(issuedAt, 10),
		sig,
	}, ":"), nil
}

// Decode parses a token string. The parser is strict: exact prefix,
// exactly five fields, no empty field, numeric issue time. Everything
// else fails as malformed so that confusable inputs never reach the
// signature check.
func Decode(tokenString string) (*Token, error) {
	fields := strings.Split(tokenString, ":")
	if len(fields) != tokenFieldCount {
		return nil, ErrMalformedToken
	}
	if fields[0] != TokenPrefix {
		return nil, ErrMalformedToken
	}
	for _, f := range fields[1:] {
		if f == "" {
			return nil, ErrMalformedToken
		}
	}

	issuedAt, err := strconv.ParseInt(fields[3], 10, 64)
	if err != nil || issuedAt < 0 {
		return nil, ErrMalformedToken
	}

	if _, err := hex.DecodeString(fields[2]); err != nil {
		return nil, ErrMalformedToken
	}

	return &Token{
		PoiID:     fields[1],
		Nonce:     fields[2],
		IssuedAt:  issuedAt,
		Signature: fields[4],
	}, nil
}

func sign(secret []byte, poiID, nonce string, issuedAt int64) string {
	mac := hmac.New(sha256.New, secret)
	fmt.Fprintf(mac, "%s:%s:%d", poiID, nonce, issuedAt)
	return hex.EncodeToString(mac.Sum(nil))
}
