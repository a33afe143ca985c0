package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateOrderID produces a human-readable order id with a date prefix and
// a random suffix, e.g. ORD-20260830-7F3A2C. Uniqueness is overwhelmingly
// probable but not guaranteed; the order repository enforces it with a
// conditional put and callers retry on collision.
func GenerateOrderID() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:6]
	return fmt.Sprintf("ORD-%s-%s", time.Now().UTC().Format("20060102"), suffix)
}
