package api

import "github.com/visitcacapava/checkin-api/store"

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: "this account has been registered or has been taken",
		1101: "account not found",

		1300: store.ErrPOINotFound.Error(),
		1301: store.ErrUnknownCategory.Error(),

		1400: "malformed check-in token",
		1401: "check-in token expired",
		1402: "bad check-in token signature",
		1403: "too far from the point of interest",
		1404: "checked in recently, cooldown active",
		1405: store.ErrDailyLimitReached.Error(),
		1406: store.ErrCheckinNotFound.Error(),

		1500: "storage unavailable",
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorAccountTaken    = errorJSON(1100)
	errorAccountNotFound = errorJSON(1101)

	errorUnknownPOI      = errorJSON(1300)
	errorUnknownCategory = errorJSON(1301)

	errorCheckinNotFound = errorJSON(1406)

	errorStorageUnavailable = errorJSON(1500)
)

// reasonCodeMap gives each redemption failure reason a stable code so
// clients can branch without parsing localized text.
var reasonCodeMap = map[string]int64{
	"malformed-token": 1400,
	"expired-token":   1401,
	"bad-signature":   1402,
	"out-of-range":    1403,
	"cooldown":        1404,
	"daily-limit":     1405,
	"unknown-poi":     1300,
}

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
