package types

import (
	"fmt"
	"strings"

	"github.com/oklog/ulid/v2"
)

const (
	UUID_PREFIX_MEMBER       = "member"
	UUID_PREFIX_PLAN         = "plan"
	UUID_PREFIX_PAYMENT      = "payment"
	UUID_PREFIX_EXPENSE      = "expense"
	UUID_PREFIX_USER         = "user"
	UUID_PREFIX_AUDIT_LOG    = "audit"
	UUID_PREFIX_SETTING      = "setting"
	UUID_PREFIX_NOTIFICATION = "notif"
	UUID_PREFIX_REQUEST      = "req"
)

// GenerateUUID returns a lowercase ULID. ULIDs sort lexicographically by
// creation time, which keeps in-memory listings stable.
func GenerateUUID() string {
	return strings.ToLower(ulid.Make().String())
}

// GenerateUUIDWithPrefix returns an id of the form "<prefix>_<ulid>".
func GenerateUUIDWithPrefix(prefix string) string {
	if prefix == "" {
		return GenerateUUID()
	}
	return fmt.Sprintf("%s_%s", prefix, GenerateUUID())
}
