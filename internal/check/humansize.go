package check

import "strconv"

//nolint:gochecknoglobals
var humanSizeUnits = []string{" bytes", "KB", "MB", "GB", "TB"}

// HumanSize renders a byte count with binary scaling, e.g. "512 bytes",
// "3KB" or "50GB". Every step divides by 1024 (truncating) until the value is
// below 1024 or the largest unit is reached.
func HumanSize(bytes uint64) string {
	unit := 0
	for bytes >= 1024 && unit < len(humanSizeUnits)-1 {
		bytes >>= 10
		unit++
	}

	return strconv.FormatUint(bytes, 10) + humanSizeUnits[unit]
}
