package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"hostelku_backend/internals/features/finance/rent_payments/model"
	blockModel "hostelku_backend/internals/features/hostels/blocks/model"
	"hostelku_backend/internals/helpers/dbtime"
)

func TestComputeDueDate(t *testing.T) {
	global := Settings{GenerationType: blockModel.GenerationGlobal, RentGenerationDay: 5}
	joinBased := Settings{GenerationType: blockModel.GenerationJoinDateBased, RentGenerationDay: 1}

	cases := []struct {
		name string
		s    Settings
		join dbtime.Date
		p    Period
		want dbtime.Date
	}{
		{"global day", global, dbtime.NewDate(2026, 1, 20), Period{2026, time.October}, dbtime.NewDate(2026, 10, 5)},
		{"global in join month moves to join date", global, dbtime.NewDate(2026, 10, 12), Period{2026, time.October}, dbtime.NewDate(2026, 10, 12)},
		{"global in join month after join date", global, dbtime.NewDate(2026, 10, 2), Period{2026, time.October}, dbtime.NewDate(2026, 10, 5)},
		{"join day", joinBased, dbtime.NewDate(2026, 3, 17), Period{2026, time.November}, dbtime.NewDate(2026, 11, 17)},
		{"31st clamps in february", joinBased, dbtime.NewDate(2026, 1, 31), Period{2026, time.February}, dbtime.NewDate(2026, 2, 28)},
		{"31st clamps in leap february", joinBased, dbtime.NewDate(2027, 12, 31), Period{2028, time.February}, dbtime.NewDate(2028, 2, 29)},
		{"31st clamps in april", joinBased, dbtime.NewDate(2026, 1, 31), Period{2026, time.April}, dbtime.NewDate(2026, 4, 30)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeDueDate(tc.s, tc.join, tc.p)
			assert.Equal(t, tc.want.String(), got.String())
		})
	}
}

func TestGenerationPeriodsRollsOverYear(t *testing.T) {
	got := GenerationPeriods(time.Date(2026, 12, 20, 8, 0, 0, 0, time.UTC))
	assert.Equal(t, []Period{{2026, time.December}, {2027, time.January}}, got)
	assert.True(t, got[0].Before(got[1]))
	assert.Equal(t, "January 2027", got[1].String())
}

func TestIsVisible(t *testing.T) {
	due := dbtime.NewDate(2026, 10, 10)

	assert.True(t, IsVisible(due, 5, time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC)), "boundary is visible")
	assert.False(t, IsVisible(due, 5, time.Date(2026, 10, 4, 23, 59, 0, 0, time.UTC)))
	assert.True(t, IsVisible(due, 0, time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC)))
	assert.False(t, IsVisible(due, 0, time.Date(2026, 10, 9, 12, 0, 0, 0, time.UTC)))
	assert.True(t, IsVisible(due, -3, time.Date(2026, 10, 11, 0, 0, 0, 0, time.UTC)), "negative window reads as zero")

	// calendar day in the viewer's zone, not UTC midnight
	ist := time.FixedZone("IST", 5*3600+1800)
	assert.True(t, IsVisible(due, 5, time.Date(2026, 10, 5, 0, 30, 0, 0, ist)))
}

func TestDisplayStatus(t *testing.T) {
	now := time.Date(2026, 10, 17, 10, 0, 0, 0, time.UTC)
	p := model.RentPaymentModel{RentPaymentStatus: model.StatusPending, RentPaymentDueDate: dbtime.NewDate(2026, 10, 16)}
	assert.Equal(t, "overdue", DisplayStatus(&p, now))

	p.RentPaymentDueDate = dbtime.NewDate(2026, 10, 17)
	assert.Equal(t, "pending", DisplayStatus(&p, now), "due today is not overdue yet")

	p.RentPaymentStatus = model.StatusPaid
	p.RentPaymentDueDate = dbtime.NewDate(2026, 9, 1)
	assert.Equal(t, "paid", DisplayStatus(&p, now))

	cancelled := now
	p.RentPaymentCancelledAt = &cancelled
	assert.Equal(t, "cancelled", DisplayStatus(&p, now))
	assert.False(t, IsDue(&p))
}

func TestSummarizeDue(t *testing.T) {
	now := time.Date(2026, 10, 17, 10, 0, 0, 0, time.UTC)
	cancelledAt := now
	rows := []model.RentPaymentModel{
		{RentPaymentStatus: model.StatusPending, RentPaymentAmount: decimal.NewFromInt(6500), RentPaymentDueDate: dbtime.NewDate(2026, 10, 5)},
		{RentPaymentStatus: model.StatusPending, RentPaymentAmount: decimal.NewFromInt(6500), RentPaymentDueDate: dbtime.NewDate(2026, 11, 5)},
		{RentPaymentStatus: model.StatusPaid, RentPaymentAmount: decimal.NewFromInt(6500), RentPaymentDueDate: dbtime.NewDate(2026, 9, 5)},
		{RentPaymentStatus: model.StatusPending, RentPaymentAmount: decimal.NewFromInt(300), RentPaymentDueDate: dbtime.NewDate(2026, 10, 1), RentPaymentCancelledAt: &cancelledAt},
	}

	all := SummarizeDue(rows, now, 5, false)
	assert.True(t, decimal.NewFromInt(13000).Equal(all.TotalDue))
	assert.Equal(t, 2, all.Count)
	assert.Equal(t, 1, all.OverdueCount)
	if assert.NotNil(t, all.NextDueDate) {
		assert.Equal(t, "2026-10-05", all.NextDueDate.String())
	}

	// November opens on Oct 31
	visible := SummarizeDue(rows, now, 5, true)
	assert.True(t, decimal.NewFromInt(6500).Equal(visible.TotalDue))
	assert.Equal(t, 1, visible.Count)

	assert.Len(t, VisiblePayments(rows, now, 5), 2, "october rent and the paid september row")

	empty := SummarizeDue(nil, now, 5, true)
	assert.True(t, empty.TotalDue.IsZero())
	assert.Nil(t, empty.NextDueDate)
}
