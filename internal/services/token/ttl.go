package token

import (
	"regexp"
	"strconv"
	"time"
)

var ttlPattern = regexp.MustCompile(`^(\d+)(s|m|h|d)$`)

// ParseTTL converts an expiry string to a duration.
//
// Accepted forms are a pure integer (seconds) or an integer with a unit
// suffix: "90s", "15m", "1h", "7d". Anything else, including the empty
// string, yields the fallback. There is no partial parsing: "1h30m" or
// "60 s" are rejected outright.
//
// "0" parses to a zero duration. New treats a non-positive TTL as
// unset, so a configured "0" still ends up as the default lifetime.
func ParseTTL(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}

	if n, err := strconv.Atoi(value); err == nil && n >= 0 && value == strconv.Itoa(n) {
		return time.Duration(n) * time.Second
	}

	m := ttlPattern.FindStringSubmatch(value)
	if m == nil {
		return fallback
	}

	n, err := strconv.Atoi(m[1])
	if err != nil {
		return fallback
	}

	switch m[2] {
	case "s":
		return time.Duration(n) * time.Second
	case "m":
		return time.Duration(n) * time.Minute
	case "h":
		return time.Duration(n) * time.Hour
	case "d":
		return time.Duration(n) * 24 * time.Hour
	}
	return fallback
}
