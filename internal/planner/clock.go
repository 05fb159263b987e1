package planner

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jengzang/food-itinerary-go/internal/spatial"
)

// DefaultStartMinutes is 20:00, used when a start time cannot be parsed
const DefaultStartMinutes = 20 * 60

// ParseClock converts "HH:MM" into minutes since midnight.
// An unparsable hour falls back to 20, an unparsable or missing minute to 0;
// parsed components are clamped to [0,23] and [0,59].
func ParseClock(hhmm string) int {
	hhmm = strings.TrimSpace(hhmm)
	if hhmm == "" {
		return DefaultStartMinutes
	}

	parts := strings.SplitN(hhmm, ":", 3)
	hour := 20
	if h, err := strconv.Atoi(strings.TrimSpace(parts[0])); err == nil {
		hour = spatial.ClampInt(h, 0, 23)
	}

	minute := 0
	if len(parts) > 1 {
		if m, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil {
			minute = spatial.ClampInt(m, 0, 59)
		}
	}
	return hour*60 + minute
}

// FormatClock renders minutes since midnight as HH:MM.
// The hour keeps counting past 23 (a plan ending at 01:30 the next day reads "25:30").
func FormatClock(minutes float64) string {
	total := int(math.Round(minutes))
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// FormatDuration renders a duration as "45m", "1h" or "1h 15m"
func FormatDuration(minutes float64) string {
	total := int(math.Round(minutes))
	h, m := total/60, total%60
	switch {
	case h <= 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dm", h, m)
	}
}

// FormatINR renders an amount as rupees with Indian digit grouping, e.g. ₹1,23,456
func FormatINR(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	n := int64(math.Round(amount))
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := strconv.FormatInt(n, 10)
	if len(digits) <= 3 {
		return sign + "₹" + digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)
	return sign + "₹" + strings.Join(groups, ",") + "," + tail
}
