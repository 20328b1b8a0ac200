package profile

import (
	"fmt"
	"math/rand"
	"time"

	"resolvehub/internal/domain"
)

var permanentNumberPrefixes = map[domain.UserRole]string{
	domain.RoleServiceSeekerIndividual:    "SSI",
	domain.RoleServiceSeekerEntity:        "SSE",
	domain.RoleServiceProviderIndividual:  "SPI",
	domain.RoleServiceProviderEntityAdmin: "SPE",
	domain.RoleTeamMember:                 "STM",
}

// GeneratePermanentNumber builds a display identifier from the role
// prefix, the last six digits of the current timestamp and a random
// three-digit suffix. Not guaranteed globally unique; concurrent calls
// can collide.
func GeneratePermanentNumber(role domain.UserRole) string {
	prefix, ok := permanentNumberPrefixes[role]
	if !ok {
		prefix = "UNK"
	}
	tail := time.Now().UnixMilli() % 1_000_000
	return fmt.Sprintf("%s%06d%03d", prefix, tail, rand.Intn(1000))
}
