package timezone

import "time"

// ClinicTimezone is the fixed reference timezone for every calendar-day
// comparison. Appointment dates are stored as absolute instants but always
// normalized against this zone.
const ClinicTimezone = "America/Mexico_City"

func Location() *time.Location {
	loc, err := time.LoadLocation(ClinicTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}

// StartOfDay truncates an instant to 00:00 clinic-local. Two instants on the
// same clinic-local calendar day map to the same value.
func StartOfDay(t time.Time) time.Time {
	local := t.In(Location())
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, Location())
}

// ParseDate accepts either a plain calendar date (2006-01-02) or a full
// RFC3339 timestamp and returns the start of that clinic-local day.
func ParseDate(s string) (time.Time, error) {
	if d, err := time.ParseInLocation("2006-01-02", s, Location()); err == nil {
		return d, nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return StartOfDay(t), nil
}

// FormatDay renders an instant as its clinic-local calendar day.
func FormatDay(t time.Time) string {
	return t.In(Location()).Format("2006-01-02")
}
