package supabase

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when a keyed read or filtered update matches no row.
var ErrNotFound = errors.New("record not found")

// RemoteError carries the failure reported by the remote store or blob
// service. Status is the HTTP status of the gateway response, or 0 when the
// request never completed (network failure, timeout at the transport).
type RemoteError struct {
	Status  int
	Code    string
	Message string
	Details string
}

func (e *RemoteError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("supabase: %s (code %s, status %d)", e.Message, e.Code, e.Status)
	}
	return fmt.Sprintf("supabase: %s (status %d)", e.Message, e.Status)
}

// IsColumnMissing reports whether err is the store complaining about an
// unrecognized column. Used for the schema-compatibility retry on
// hero_images.show_content.
func IsColumnMissing(err error, column string) bool {
	var re *RemoteError
	if !errors.As(err, &re) {
		return false
	}
	return strings.Contains(re.Message, column) || strings.Contains(re.Details, column)
}
