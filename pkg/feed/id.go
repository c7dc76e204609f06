package feed

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewPostID generates a unique post identifier.
//
// The ID combines a base-36 millisecond timestamp with a random suffix, so IDs
// from the same client sort roughly by creation time while staying unique
// across sessions sharing the same storage. This is practical uniqueness,
// not a cryptographic guarantee.
func NewPostID() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	return ts + suffix
}
