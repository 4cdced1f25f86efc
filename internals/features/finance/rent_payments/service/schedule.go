// file: internals/features/finance/rent_payments/service/schedule.go
package service

import (
	"fmt"
	"time"

	"hostelku_backend/internals/features/finance/rent_payments/model"
	blockModel "hostelku_backend/internals/features/hostels/blocks/model"
	"hostelku_backend/internals/helpers/dbtime"
)

// Settings is the per-block payment policy the schedule needs.
type Settings struct {
	GenerationType    blockModel.PaymentGenerationType
	RentGenerationDay int
	VisibilityDays    int
}

func SettingsFromBlock(b *blockModel.BlockModel) Settings {
	return Settings{
		GenerationType:    b.BlockPaymentGenerationType,
		RentGenerationDay: b.BlockRentGenerationDay,
		VisibilityDays:    b.BlockPaymentVisibilityDays,
	}
}

// Period is one calendar month.
type Period struct {
	Year  int
	Month time.Month
}

func (p Period) String() string { return fmt.Sprintf("%s %d", p.Month, p.Year) }

func (p Period) Next() Period {
	if p.Month == time.December {
		return Period{Year: p.Year + 1, Month: time.January}
	}
	return Period{Year: p.Year, Month: p.Month + 1}
}

func (p Period) Before(o Period) bool {
	return p.Year < o.Year || (p.Year == o.Year && p.Month < o.Month)
}

func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

// GenerationPeriods are the current and next month of now (already in the app location).
func GenerationPeriods(now time.Time) []Period {
	cur := PeriodOf(now)
	return []Period{cur, cur.Next()}
}

// ComputeDueDate picks the due day for one month.
//
//	global:          the block's rent day
//	join_date_based: the day of month the tenant joined
//
// Days past the end of the month clamp to its last day (joined on the 31st => Feb 28/29).
// In the join month itself a global day earlier than the join date moves to the join date.
func ComputeDueDate(s Settings, joinDate dbtime.Date, p Period) dbtime.Date {
	day := s.RentGenerationDay
	if s.GenerationType == blockModel.GenerationJoinDateBased {
		day = joinDate.Day()
	}
	if day < 1 {
		day = 1
	}
	if last := dbtime.DaysIn(p.Year, p.Month); day > last {
		day = last
	}
	due := dbtime.NewDate(p.Year, p.Month, day)

	if PeriodOf(joinDate.Time) == p && due.Before(joinDate) {
		return joinDate
	}
	return due
}

// IsVisible: now >= start of due day - visibilityDays. Exactly at the boundary counts as visible.
// The due date is read as a calendar day in now's location.
func IsVisible(due dbtime.Date, visibilityDays int, now time.Time) bool {
	if visibilityDays < 0 {
		visibilityDays = 0
	}
	opensAt := due.In(now.Location()).AddDate(0, 0, -visibilityDays)
	return !now.Before(opensAt)
}

// DisplayStatus derives what views show. Overdue is never written by a job:
// a pending payment whose due day has passed reads as overdue.
func DisplayStatus(p *model.RentPaymentModel, now time.Time) string {
	if p.IsCancelled() {
		return "cancelled"
	}
	if p.RentPaymentStatus == model.StatusPending && p.RentPaymentDueDate.Before(dbtime.DateOf(now)) {
		return string(model.StatusOverdue)
	}
	return string(p.RentPaymentStatus)
}

// IsDue reports whether a payment counts toward what the tenant still owes.
func IsDue(p *model.RentPaymentModel) bool {
	return !p.IsCancelled() && p.RentPaymentStatus != model.StatusPaid
}
