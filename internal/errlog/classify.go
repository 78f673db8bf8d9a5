package errlog

import (
	"regexp"
	"strings"
)

type rule struct {
	match    func(line, body string) bool
	category Category
}

var (
	// The bare "Deprecated:" and "Notice:" forms are only honoured at the
	// start of the message; anywhere else they collide with static calls
	// such as App\Notice::send() in trace frames.
	deprecatedMarker  = "PHP Deprecated"
	noticeMarker      = "PHP Notice"
	deprecatedLabel   = "Deprecated:"
	noticeLabel       = "Notice:"
	traceTitleMarkers = []string{"Stack trace:", "PHP Stack trace:"}
	traceOriginMarker = "thrown in"
	errorMarkers      = []string{
		"PHP Fatal error",
		"PHP Parse error",
		"PHP Catchable fatal error",
		"PHP Recoverable fatal error",
		"Fatal error:",
		"Parse error:",
		"PHP Error",
	}
	warningMarkers = []string{"PHP Warning", "Warning:"}

	// Xdebug writes frames as "PHP   1. {main}() /path:0".
	xdebugFrame = regexp.MustCompile(`^PHP\s+\d+\.\s`)
)

// rules is evaluated top to bottom; the first match wins.
var rules = []rule{
	{func(line, body string) bool { return hasMarker(line, body, deprecatedMarker, deprecatedLabel) }, Deprecated},
	{func(line, body string) bool { return hasMarker(line, body, noticeMarker, noticeLabel) }, Notice},
	{func(_, body string) bool { return hasAnyPrefix(body, traceTitleMarkers) }, StackTraceTitle},
	{func(_, body string) bool { return strings.HasPrefix(body, "#") || xdebugFrame.MatchString(body) }, StackTraceStep},
	{func(_, body string) bool { return strings.HasPrefix(body, traceOriginMarker) }, StackTraceOrigin},
	{func(line, _ string) bool { return containsAny(line, errorMarkers) }, Error},
	{func(line, _ string) bool { return containsAny(line, warningMarkers) }, Warning},
}

// Classify maps a single log line to its category. It is deterministic and
// never fails; lines matching no rule are Other.
func Classify(line string) Category {
	line = strings.TrimSpace(line)
	body := lineBody(line)
	for _, r := range rules {
		if r.match(line, body) {
			return r.category
		}
	}
	return Other
}

// lineBody strips a leading datetime token and everything up to a vendor
// streaming prefix so that markers can be matched at the start of the
// message. The prefixes are the ones Segments removes for display.
func lineBody(line string) string {
	body := line
	if loc := datetimePattern.FindStringIndex(body); loc != nil && loc[0] == 0 {
		body = strings.TrimSpace(body[loc[1]:])
	}
	for _, p := range vendorPrefixes {
		if _, after, found := strings.Cut(body, p); found {
			return strings.TrimSpace(after)
		}
	}
	return body
}

func hasMarker(line, body, marker, label string) bool {
	return strings.Contains(line, marker) || strings.HasPrefix(body, label)
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
