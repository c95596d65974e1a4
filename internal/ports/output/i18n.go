package output

import "meetmatch/internal/domain/availability"

// T exposes a minimal i18n contract for user-facing messages.
type T interface {
	// T renders the message identified by key for the given locale.
	// data is an optional map used for template placeholders (may be nil).
	T(locale, key string, data map[string]any) string
	// Locale picks the supported locale that best matches prefs, which may be
	// plain tags or Accept-Language values. It falls back to the default.
	Locale(prefs ...string) string
	// Weekdays returns the weekday label table for locale.
	Weekdays(locale string) availability.WeekdayTable
}
