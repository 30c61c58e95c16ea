package utils

import "time"

// LoadLocation resolves the display timezone, falling back to IST (+05:30)
// when the tz database is unavailable.
func LoadLocation(name string) *time.Location {
	if loc, err := time.LoadLocation(name); err == nil {
		return loc
	}
	return time.FixedZone("IST", 5*3600+30*60)
}

// FormatISO renders t in loc as RFC 3339. Zero time renders as nil so the
// JSON field comes out null.
func FormatISO(t time.Time, loc *time.Location) *string {
	if t.IsZero() {
		return nil
	}
	s := t.In(loc).Format(time.RFC3339)
	return &s
}

func FormatISOPtr(t *time.Time, loc *time.Location) *string {
	if t == nil {
		return nil
	}
	return FormatISO(*t, loc)
}
