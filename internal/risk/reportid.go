package risk

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

const base36Digits = "0123456789abcdefghijklmnopqrstuvwxyz"

func randomBase36(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = base36Digits[rand.IntN(len(base36Digits))]
	}
	return string(b)
}

// RomanceReportID returns "RSC-<base36 unix ms>-<6 upper-case base36 chars>".
// Uniqueness is best effort.
func RomanceReportID(now time.Time) string {
	return "RSC-" + strconv.FormatInt(now.UnixMilli(), 36) + "-" + strings.ToUpper(randomBase36(6))
}

// PlatformReportID returns "PV-<unix ms>-<9 base36 chars>".
func PlatformReportID(now time.Time) string {
	return "PV-" + strconv.FormatInt(now.UnixMilli(), 10) + "-" + randomBase36(9)
}
