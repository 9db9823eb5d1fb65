package credential

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testSecret = []byte("test-checkin-secret")

func TestIssueAtWireFormat(t *testing.T) {
	now := time.Unix(1700000000, 0)
	tokenString, err := IssueAt("5eb24091af0b5b275bfabb25", testSecret, now)
	assert.Nil(t, err)

	fields := strings.Split(tokenString, ":")
	assert.Equal(t, 5, len(fields))
	assert.Equal(t, "VC", fields[0])
	assert.Equal(t, "5eb24091af0b5b275bfabb25", fields[1])
	assert.Equal(t, 16, len(fields[2]))
	assert.Equal(t, fmt.Sprintf("%d", now.UnixNano()/int64(time.Millisecond)), fields[3])
	assert.Equal(t, 64, len(fields[4]))
}

func TestIssueRejectsPoiIDWithDelimiter(t *testing.T) {
	_, err := Issue("poi:1", testSecret)
	assert.Equal(t, ErrMalformedToken, err)

	_, err = Issue("", testSecret)
	assert.Equal(t, ErrMalformedToken, err)
}

func TestIssueNoncesDiffer(t *testing.T) {
	a, err := Issue("poi-1", testSecret)
	assert.Nil(t, err)
	b, err := Issue("poi-1", testSecret)
	assert.Nil(t, err)
	assert.NotEqual(t, strings.Split(a, ":")[2], strings.Split(b, ":")[2])
}

func TestDecodeRoundTrip(t *testing.T) {
	now := time.Unix(1700000000, 500*int64(time.Millisecond))
	tokenString, err := IssueAt("poi-1", testSecret, now)
	assert.Nil(t, err)

	token, err := Decode(tokenString)
	assert.Nil(t, err)
	assert.Equal(t, "poi-1", token.PoiID)
	assert.Equal(t, now.UnixNano()/int64(time.Millisecond), token.IssuedAt)
	assert.Equal(t, sign(testSecret, token.PoiID, token.Nonce, token.IssuedAt), token.Signature)
}

func TestDecodeStrictness(t *testing.T) {
	valid, _ := IssueAt("poi-1", testSecret, time.Now())

	malformed := []string{
		"",
		"VC",
		"VC:poi-1",
		"VC:poi-1:aabbccddeeff0011:1700000000000",                      // missing signature
		valid + ":extra",                                               // extra field
		strings.Replace(valid, "VC:", "QR:", 1),                        // wrong prefix
		strings.Replace(valid, "VC:", "vc:", 1),                        // prefix is case sensitive
		"VC:poi-1::1700000000000:deadbeef",                             // empty nonce
		"VC:poi-1:zzzz:1700000000000:deadbeef",                         // non-hex nonce
		"VC:poi-1:aabbccddeeff0011:notatime:deadbeef",                  // non-numeric time
		"VC:poi-1:aabbccddeeff0011:-1:deadbeef",                        // negative time
	}

	for _, s := range malformed {
		_, err := Decode(s)
		assert.Equal(t, ErrMalformedToken, err, "input %q", s)
	}
}
