package store

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var wallClockPattern = regexp.MustCompile(`^\d{1,2}:\d{2}(:\d{2})?$`)

// datetime layouts accepted from upstream callers, tried in order after
// the bare wall-clock form.
var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// CanonicalTime normalizes an incoming date/time string to an absolute
// instant. A bare HH:mm (or HH:mm:ss) is read as today at that local
// wall-clock time; other parseable forms are converted as written;
// anything unparseable falls back to now. Upstream NL extraction is
// known to emit suffixed UTC-style strings while intending local wall
// time, so display code must always format the stored instant back into
// the viewer's local time rather than showing raw UTC components.
func CanonicalTime(input string, now time.Time) time.Time {
	input = strings.TrimSpace(input)
	if input == "" {
		return now
	}

	if wallClockPattern.MatchString(input) {
		parts := strings.Split(input, ":")
		hour, _ := strconv.Atoi(parts[0])
		minute, _ := strconv.Atoi(parts[1])
		return time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	}

	for _, layout := range datetimeLayouts {
		if t, err := time.ParseInLocation(layout, input, now.Location()); err == nil {
			return t
		}
	}

	return now
}

// FormatClinicalTime renders a stored instant as local wall-clock time
// for display. Zero instants render as TBD.
func FormatClinicalTime(t time.Time) string {
	if t.IsZero() {
		return "TBD"
	}
	return t.Local().Format("3:04 PM")
}
