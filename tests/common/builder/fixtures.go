//go:build unit || e2e

package builder

import "time"

// PKT is Asia/Karachi as a fixed offset, so fixtures do not depend on zoneinfo.
var PKT = time.FixedZone("PKT", 5*60*60)

// BaseTime is the "now" most fixtures are anchored on: 2025-03-10 12:00 PKT.
var BaseTime = time.Date(2025, time.March, 10, 12, 0, 0, 0, PKT)

// Day returns BaseTime shifted by n days.
func Day(n int) time.Time {
	return BaseTime.AddDate(0, 0, n)
}
