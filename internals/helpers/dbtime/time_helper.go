// file: internals/helpers/dbtime/time_helper.go
package dbtime

import (
	"sync"
	"time"

	"hostelku_backend/internals/configs"
)

var (
	locOnce sync.Once
	appLoc  *time.Location
)

// AppLocation is APP_TIMEZONE, resolved once. Month boundaries and "today" use it.
func AppLocation() *time.Location {
	locOnce.Do(func() {
		appLoc = configs.Location()
	})
	return appLoc
}

func NowInApp() time.Time {
	return time.Now().In(AppLocation())
}

// StartOfDay is midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysIn returns the number of days in month of year.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ToAppTimePtr converts a stored timestamp for display; nil stays nil.
func ToAppTimePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.In(AppLocation())
	return &v
}
