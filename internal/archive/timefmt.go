package archive

import "time"

// InvalidDate is returned for timestamps outside the plausible window.
const InvalidDate = "invalid date"

const (
	minValidYear = 2020
	maxValidYear = 2025
)

// FormatCreateTime renders an export timestamp whose unit is not
// declared anywhere in the format. Magnitude decides: below 1e10 the
// value is taken as seconds, above 1e12 as microseconds, in between as
// milliseconds already. The heuristic can misclassify edge values, so a
// normalized result outside 2020-2025 renders the invalid-date sentinel
// instead of a wrong-looking date.
func FormatCreateTime(ts float64) string {
	if ts <= 0 {
		return InvalidDate
	}

	ms := ts
	switch {
	case ts < 1e10:
		ms = ts * 1000
	case ts > 1e12:
		ms = ts / 1000
	}

	t := time.UnixMilli(int64(ms)).Local()
	if year := t.Year(); year < minValidYear || year > maxValidYear {
		return InvalidDate
	}
	return t.Format("January 2, 2006 15:04")
}
