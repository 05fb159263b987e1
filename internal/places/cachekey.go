package places

import (
	"fmt"
	"strconv"
	"strings"
)

// CacheKey fingerprints a places lookup. Coordinates are rounded to 4 decimals
// (~11 m), so near-identical homes share a cache entry; every other input is kept verbatim.
func CacheKey(lat, lng, radiusKm float64, keyword string, openNow bool) string {
	open := "0"
	if openNow {
		open = "1"
	}
	return fmt.Sprintf("places:%s:%s:r%s:k=%s:o=%s",
		strconv.FormatFloat(lat, 'f', 4, 64),
		strconv.FormatFloat(lng, 'f', 4, 64),
		strconv.FormatFloat(radiusKm, 'f', -1, 64),
		keyword,
		open,
	)
}

// KeywordFor joins selected cuisines into the search keyword
func KeywordFor(cuisines []string) string {
	return strings.Join(cuisines, " ")
}
