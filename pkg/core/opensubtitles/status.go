package opensubtitles

import (
	"fmt"
	"strconv"
	"strings"

	coreErrors "github.com/angelospk/opensubtitles-xmlrpc/pkg/core/errors"
)

// Response is the struct returned by every XML-RPC method: a "status" string
// such as "200 OK", usually a "seconds" float and an optional "data" payload.
type Response map[string]interface{}

// Status returns the raw status string, or "" if it is missing.
func (r Response) Status() string {
	s, _ := r["status"].(string)
	return s
}

// StatusCode parses the leading integer of the status string.
func (r Response) StatusCode() (int, error) {
	status, ok := r["status"].(string)
	if !ok {
		return 0, fmt.Errorf("status field missing or %T: %w", r["status"], coreErrors.ErrMalformedResponse)
	}
	fields := strings.Fields(status)
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty status: %w", coreErrors.ErrMalformedResponse)
	}
	code, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("status %q has no numeric code: %w", status, coreErrors.ErrMalformedResponse)
	}
	return code, nil
}

// statusOK is the lenient check used by LogOut, NoOperation and AutoUpdate:
// the status text only has to contain "200".
func (r Response) statusOK() (bool, error) {
	status, ok := r["status"].(string)
	if !ok {
		return false, fmt.Errorf("status field missing or %T: %w", r["status"], coreErrors.ErrMalformedResponse)
	}
	return strings.Contains(status, "200"), nil
}

// Field returns the value stored at key when the status is 200 and maps any
// other status to its error kind. A missing key yields nil with no error.
func (r Response) Field(key string) (interface{}, error) {
	code, err := r.StatusCode()
	if err != nil {
		return nil, err
	}
	switch code {
	case 200:
		return r[key], nil
	case 401:
		return nil, coreErrors.ErrUnauthorized
	case 406:
		return nil, coreErrors.ErrNoSession
	case 407:
		return nil, coreErrors.ErrDownloadLimitReached
	case 429:
		return nil, coreErrors.ErrTooManyRequests
	case 503:
		return nil, coreErrors.ErrServiceUnavailable
	case 506:
		return nil, coreErrors.ErrServerMaintenance
	default:
		return nil, coreErrors.RequestFailed(r.Status())
	}
}

// asInt accepts the integer shapes a decoded XML-RPC value may take.
// A boolean counts as 0 or 1; numeric strings are also accepted.
func asInt(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		if n == float64(int64(n)) {
			return int64(n), true
		}
	case string:
		if i, err := strconv.ParseInt(n, 10, 64); err == nil {
			return i, true
		}
	}
	return 0, false
}
