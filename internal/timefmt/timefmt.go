// Package timefmt renders task timestamps as a short local time of day.
package timefmt

import (
	"os"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/nibzard/tasklist-go/internal/utils"
)

// Regions whose short time format uses a 12-hour clock.
var twelveHourRegions = map[string]bool{
	"US": true, "CA": true, "AU": true, "NZ": true, "IN": true,
	"PH": true, "PK": true, "BD": true, "EG": true, "SA": true,
	"JO": true, "MY": true, "CO": true, "SV": true, "HN": true,
	"NI": true, "GT": true, "PR": true,
}

// Formatter formats timestamps for display.
type Formatter struct {
	hour12 bool
	loc    *time.Location
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithLocation sets the time zone timestamps are shown in. Defaults to time.Local.
func WithLocation(loc *time.Location) Option {
	return func(f *Formatter) {
		if loc != nil {
			f.loc = loc
		}
	}
}

// New returns a Formatter for the given locale and clock preference.
// clock is "12h", "24h" or "auto"; "auto" derives the hour cycle from locale.
// An empty locale is read from the environment (see DetectLocale).
func New(locale, clock string, opts ...Option) *Formatter {
	if strings.TrimSpace(locale) == "" {
		locale = DetectLocale()
	}

	f := &Formatter{loc: time.Local}
	switch utils.NormalizeClock(clock) {
	case "12h":
		f.hour12 = true
	case "24h":
		f.hour12 = false
	default:
		f.hour12 = Uses12Hour(ParseLocale(locale))
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Hour12 reports whether the formatter uses a 12-hour clock.
func (f *Formatter) Hour12() bool {
	return f.hour12
}

// Format returns "" for nil, otherwise a two-digit hour and minute in the
// formatter's time zone, e.g. "09:05" or "09:05 AM".
func (f *Formatter) Format(ts *time.Time) string {
	if ts == nil {
		return ""
	}
	local := ts.In(f.loc)
	if f.hour12 {
		return local.Format("03:04 PM")
	}
	return local.Format("15:04")
}

// DetectLocale returns the locale from LC_ALL, LC_TIME, LANG or the first
// entry of LANGUAGE, in that order.
func DetectLocale() string {
	for _, key := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
	}
	for _, lang := range strings.Split(os.Getenv("LANGUAGE"), ":") {
		if lang = strings.TrimSpace(lang); lang != "" {
			return lang
		}
	}
	return ""
}

// ParseLocale converts a POSIX ("en_US.UTF-8@euro") or BCP 47 ("en-US")
// locale name to a language tag. "C", "POSIX" and unparsable names yield
// language.Und.
func ParseLocale(locale string) language.Tag {
	s := strings.TrimSpace(locale)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	s = strings.ReplaceAll(s, "_", "-")
	switch strings.ToUpper(s) {
	case "", "C", "POSIX":
		return language.Und
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und
	}
	return tag
}

// Uses12Hour reports whether tag's region conventionally shows a 12-hour clock.
// A tag without a region uses the most likely region for its language, so
// "en" counts as en-US.
func Uses12Hour(tag language.Tag) bool {
	if tag == language.Und {
		return false
	}
	region, conf := tag.Region()
	if conf == language.No {
		return false
	}
	return twelveHourRegions[region.String()]
}
