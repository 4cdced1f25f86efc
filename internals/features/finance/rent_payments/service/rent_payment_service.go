// file: internals/features/finance/rent_payments/service/rent_payment_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hostelku_backend/internals/features/finance/rent_payments/model"
	blockModel "hostelku_backend/internals/features/hostels/blocks/model"
	blockService "hostelku_backend/internals/features/hostels/blocks/service"
	roomTypeModel "hostelku_backend/internals/features/rooms/room_types/model"
	tenantModel "hostelku_backend/internals/features/tenants/tenants/model"
	"hostelku_backend/internals/helpers/dbtime"
)

var (
	ErrNotFound           = errors.New("rent payment not found")
	ErrTenantNotFound     = errors.New("tenant not found")
	ErrMessageRequired    = errors.New("message is required")
	ErrNoChanges          = errors.New("no changes to apply")
	ErrCancelled          = errors.New("payment is cancelled")
	ErrGenerationDisabled = errors.New("rent generation is disabled for this block")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidMethod      = errors.New("invalid payment method")
	ErrInvalidAmount      = errors.New("amount must be greater than zero")
	ErrInvalidPaidDate    = errors.New("paid date can only be set on a paid payment")
	ErrLabelNotAllowed    = errors.New("label can only be set on additional charges")
	ErrLabelRequired      = errors.New("label is required")
	ErrAlreadyPaid        = errors.New("payment is already paid")
)

type Service struct {
	DB  *gorm.DB
	Loc *time.Location
	Now func() time.Time
}

func New(db *gorm.DB) *Service {
	return &Service{DB: db, Loc: dbtime.AppLocation(), Now: time.Now}
}

func (s *Service) now() time.Time {
	loc := s.Loc
	if loc == nil {
		loc = time.UTC
	}
	return s.Now().In(loc)
}

// LocalNow is the service clock in the app location.
func (s *Service) LocalNow() time.Time { return s.now() }

/* =========================================================
   Generation
========================================================= */

type RefreshResult struct {
	Tenants   int      `json:"tenants"`
	Generated int      `json:"generated"`
	Skipped   int      `json:"skipped"`
	Months    []string `json:"months"`
}

// Refresh runs generation for one block of ownerID.
func (s *Service) Refresh(ctx context.Context, ownerID string, blockID uuid.UUID) (*RefreshResult, error) {
	b, err := blockService.FindOwnedBlock(ctx, s.DB, blockID, ownerID)
	if err != nil {
		return nil, err
	}
	return s.RefreshBlock(ctx, b)
}

// RefreshBlock creates the monthly payment of the current and next month for every
// active tenant of b. Insert-if-absent on the monthly unique index, so repeated or
// concurrent runs never duplicate a row (cancelled rows included).
func (s *Service) RefreshBlock(ctx context.Context, b *blockModel.BlockModel) (*RefreshResult, error) {
	if !b.BlockRentGenerationEnabled {
		return nil, ErrGenerationDisabled
	}

	now := s.now()
	periods := GenerationPeriods(now)
	res := &RefreshResult{Months: make([]string, 0, len(periods))}
	for _, p := range periods {
		res.Months = append(res.Months, p.String())
	}

	db := s.DB.WithContext(ctx)

	var tenants []tenantModel.TenantModel
	if err := db.
		Where("tenant_block_id = ? AND tenant_status = ?", b.BlockID, tenantModel.TenantActive).
		Order("tenant_created_at ASC").
		Find(&tenants).Error; err != nil {
		return nil, fmt.Errorf("load tenants: %w", err)
	}
	res.Tenants = len(tenants)
	if len(tenants) == 0 {
		return res, nil
	}

	rents, err := s.roomTypeRents(ctx, b.BlockID)
	if err != nil {
		return nil, err
	}

	settings := SettingsFromBlock(b)
	onConflict := clause.OnConflict{
		Columns: []clause.Column{
			{Name: "rent_payment_tenant_id"},
			{Name: "rent_payment_year"},
			{Name: "rent_payment_month_number"},
		},
		TargetWhere: clause.Where{Exprs: []clause.Expression{
			clause.Expr{SQL: "rent_payment_type = 'monthly'"},
		}},
		DoNothing: true,
	}

	for i := range tenants {
		t := &tenants[i]
		amount, ok := rents.resolve(t)
		if !ok {
			res.Skipped += len(periods)
			continue
		}
		joinPeriod := PeriodOf(t.TenantJoinDate.Time)

		for _, p := range periods {
			if p.Before(joinPeriod) {
				res.Skipped++
				continue
			}
			row := model.RentPaymentModel{
				RentPaymentOwnerUserID: b.BlockOwnerUserID,
				RentPaymentTenantID:    t.TenantID,
				RentPaymentBlockID:     b.BlockID,
				RentPaymentAmount:      amount,
				RentPaymentMonth:       p.Month.String(),
				RentPaymentMonthNumber: int(p.Month),
				RentPaymentYear:        p.Year,
				RentPaymentDueDate:     ComputeDueDate(settings, t.TenantJoinDate, p),
				RentPaymentStatus:      model.StatusPending,
				RentPaymentType:        model.TypeMonthly,
			}
			tx := db.Clauses(onConflict).Create(&row)
			if tx.Error != nil {
				return nil, fmt.Errorf("insert payment tenant=%s %s: %w", t.TenantID, p, tx.Error)
			}
			if tx.RowsAffected > 0 {
				res.Generated++
			} else {
				res.Skipped++
			}
		}
	}
	return res, nil
}

type rentTable struct {
	byID   map[uuid.UUID]decimal.Decimal
	byName map[string]decimal.Decimal
}

func (s *Service) roomTypeRents(ctx context.Context, blockID uuid.UUID) (*rentTable, error) {
	var rts []roomTypeModel.RoomTypeModel
	if err := s.DB.WithContext(ctx).
		Select("room_type_id", "room_type_name", "room_type_rent").
		Where("room_type_block_id = ?", blockID).
		Find(&rts).Error; err != nil {
		return nil, fmt.Errorf("load room types: %w", err)
	}
	out := &rentTable{
		byID:   make(map[uuid.UUID]decimal.Decimal, len(rts)),
		byName: make(map[string]decimal.Decimal, len(rts)),
	}
	for _, rt := range rts {
		out.byID[rt.RoomTypeID] = rt.RoomTypeRent
		out.byName[strings.ToLower(strings.TrimSpace(rt.RoomTypeName))] = rt.RoomTypeRent
	}
	return out, nil
}

// resolve: tenant override, else the room type by id, else by the assigned name.
func (r *rentTable) resolve(t *tenantModel.TenantModel) (decimal.Decimal, bool) {
	if t.TenantRentOverride != nil && t.TenantRentOverride.IsPositive() {
		return *t.TenantRentOverride, true
	}
	if t.TenantRoomTypeID != nil {
		if v, ok := r.byID[*t.TenantRoomTypeID]; ok && v.IsPositive() {
			return v, true
		}
	}
	if v, ok := r.byName[strings.ToLower(strings.TrimSpace(t.TenantRoomTypeName))]; ok && v.IsPositive() {
		return v, true
	}
	return decimal.Zero, false
}

/* =========================================================
   Reads
========================================================= */

type ListFilter struct {
	TenantID *uuid.UUID
	BlockID  *uuid.UUID
	Status   string // stored status, or "overdue" / "cancelled" as displayed
	Year     int
	Month    int
	Offset   int
	Limit    int
}

func (s *Service) List(ctx context.Context, ownerID string, f ListFilter) ([]model.RentPaymentModel, int64, error) {
	q := s.DB.WithContext(ctx).Model(&model.RentPaymentModel{}).
		Where("rent_payment_owner_user_id = ?", ownerID)

	if f.TenantID != nil {
		q = q.Where("rent_payment_tenant_id = ?", *f.TenantID)
	}
	if f.BlockID != nil {
		q = q.Where("rent_payment_block_id = ?", *f.BlockID)
	}
	if f.Year > 0 {
		q = q.Where("rent_payment_year = ?", f.Year)
	}
	if f.Month > 0 {
		q = q.Where("rent_payment_month_number = ?", f.Month)
	}
	switch strings.ToLower(strings.TrimSpace(f.Status)) {
	case "":
	case "cancelled":
		q = q.Where("rent_payment_cancelled_at IS NOT NULL")
	case string(model.StatusOverdue):
		today := dbtime.DateOf(s.now())
		q = q.Where("rent_payment_cancelled_at IS NULL").
			Where("(rent_payment_status = ? OR (rent_payment_status = ? AND rent_payment_due_date < ?))",
				model.StatusOverdue, model.StatusPending, today)
	case string(model.StatusPending):
		today := dbtime.DateOf(s.now())
		q = q.Where("rent_payment_cancelled_at IS NULL AND rent_payment_status = ? AND rent_payment_due_date >= ?",
			model.StatusPending, today)
	default:
		q = q.Where("rent_payment_cancelled_at IS NULL AND rent_payment_status = ?", strings.ToLower(f.Status))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.RentPaymentModel
	q = q.Order("rent_payment_due_date DESC").Order("rent_payment_created_at DESC")
	if f.Limit > 0 {
		q = q.Offset(f.Offset).Limit(f.Limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (s *Service) Get(ctx context.Context, ownerID string, id uuid.UUID) (*model.RentPaymentModel, error) {
	var p model.RentPaymentModel
	err := s.DB.WithContext(ctx).
		Where("rent_payment_id = ? AND rent_payment_owner_user_id = ?", id, ownerID).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// TenantPayments lists every payment of one tenant, oldest due first.
func (s *Service) TenantPayments(ctx context.Context, tenantID uuid.UUID) ([]model.RentPaymentModel, error) {
	var rows []model.RentPaymentModel
	err := s.DB.WithContext(ctx).
		Where("rent_payment_tenant_id = ?", tenantID).
		Order("rent_payment_due_date ASC").
		Order("rent_payment_created_at ASC").
		Find(&rows).Error
	return rows, err
}

type DueSummary struct {
	TotalDue     decimal.Decimal `json:"totalDue"`
	Count        int             `json:"count"`
	OverdueCount int             `json:"overdueCount"`
	NextDueDate  *dbtime.Date    `json:"nextDueDate,omitempty"`
}

// SummarizeDue adds up what is still owed: not cancelled, not paid. With onlyVisible
// the rows the tenant can't see yet are left out.
func SummarizeDue(payments []model.RentPaymentModel, now time.Time, visibilityDays int, onlyVisible bool) DueSummary {
	sum := DueSummary{TotalDue: decimal.Zero}
	for i := range payments {
		p := &payments[i]
		if !IsDue(p) {
			continue
		}
		if onlyVisible && !IsVisible(p.RentPaymentDueDate, visibilityDays, now) {
			continue
		}
		sum.TotalDue = sum.TotalDue.Add(p.RentPaymentAmount)
		sum.Count++
		if DisplayStatus(p, now) == string(model.StatusOverdue) {
			sum.OverdueCount++
		}
		if sum.NextDueDate == nil || p.RentPaymentDueDate.Before(*sum.NextDueDate) {
			d := p.RentPaymentDueDate
			sum.NextDueDate = &d
		}
	}
	return sum
}

// VisiblePayments keeps what a tenant may see: not cancelled and inside the visibility window.
func VisiblePayments(payments []model.RentPaymentModel, now time.Time, visibilityDays int) []model.RentPaymentModel {
	out := make([]model.RentPaymentModel, 0, len(payments))
	for _, p := range payments {
		if p.IsCancelled() || !IsVisible(p.RentPaymentDueDate, visibilityDays, now) {
			continue
		}
		out = append(out, p)
	}
	return out
}
