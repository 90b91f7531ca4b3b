package ulid

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string. IDs minted by this process within the same
// millisecond still sort in creation order.
var NewULID = func() string {
	return ulid.Make().String()
}

// Timestamp returns the UTC creation time encoded in id.
func Timestamp(id string) (time.Time, error) {
	parsed, err := ulid.ParseStrict(id)
	if err != nil {
		return time.Time{}, err
	}
	return ulid.Time(parsed.Time()).UTC(), nil
}
