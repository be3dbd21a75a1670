package card

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var isoDuration = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+(?:\.\d+)?)S)?)?$`)

// Duration renders prepTime/cookTime/totalTime. ISO-8601 durations such as
// PT1H30M become "1 hr 30 min"; any other text is returned trimmed.
func Duration(v any) (string, bool) {
	s, ok := Text(v)
	if !ok {
		return "", false
	}
	if human, ok := humanizeISO(strings.ToUpper(s)); ok {
		return human, true
	}
	return s, true
}

func humanizeISO(s string) (string, bool) {
	m := isoDuration.FindStringSubmatch(s)
	if m == nil || s == "P" || s == "PT" {
		return "", false
	}

	days := atoi(m[1])
	hours := atoi(m[2]) + days*24
	minutes := atoi(m[3])
	if secs, err := strconv.ParseFloat(m[4], 64); err == nil && secs >= 30 {
		minutes++
	}
	for minutes >= 60 {
		hours++
		minutes -= 60
	}

	var parts []string
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%d hr", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%d min", minutes))
	}
	if len(parts) == 0 {
		return "0 min", true
	}
	return strings.Join(parts, " "), true
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
