// file: internals/features/tenants/tenants/controller/tenant_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	blockModel "hostelku_backend/internals/features/hostels/blocks/model"
	blockService "hostelku_backend/internals/features/hostels/blocks/service"
	"hostelku_backend/internals/features/tenants/tenants/dto"
	"hostelku_backend/internals/features/tenants/tenants/model"
	"hostelku_backend/internals/features/tenants/tenants/service"
	helper "hostelku_backend/internals/helpers"
	helperAuth "hostelku_backend/internals/helpers/auth"
	"hostelku_backend/internals/helpers/dbtime"
)

type TenantController struct {
	DB *gorm.DB
}

func NewTenantController(db *gorm.DB) *TenantController {
	return &TenantController{DB: db}
}

func (h *TenantController) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrTenantNotFound),
		errors.Is(err, blockService.ErrBlockNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrRoomTypeNotFound),
		errors.Is(err, helper.ErrInvalidPhone):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	log.Printf("[ERROR] tenants %s %s: %v", c.Method(), c.Path(), err)
	return helper.JsonError(c, fiber.StatusInternalServerError, "internal error")
}

func (h *TenantController) ownedBlock(c *fiber.Ctx) (*blockModel.BlockModel, error) {
	ownerID, err := helperAuth.GetUserID(c)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("blockId")))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "blockId must be a UUID")
	}
	b, err := blockService.FindOwnedBlock(c.UserContext(), h.DB, id, ownerID)
	if errors.Is(err, blockService.ErrBlockNotFound) {
		return nil, fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	return b, err
}

func (h *TenantController) owned(c *fiber.Ctx) (*model.TenantModel, error) {
	ownerID, err := helperAuth.GetUserID(c)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "id must be a UUID")
	}
	t, err := service.FindOwnedTenant(c.UserContext(), h.DB, id, ownerID)
	if errors.Is(err, service.ErrTenantNotFound) {
		return nil, fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	return t, err
}

/* =========================
   GET /blocks/:blockId/tenants
   ?status=&q=&page=&per_page=
========================= */

func (h *TenantController) List(c *fiber.Ctx) error {
	b, err := h.ownedBlock(c)
	if err != nil {
		return err
	}

	q := h.DB.WithContext(c.UserContext()).Model(&model.TenantModel{}).
		Where("tenant_block_id = ?", b.BlockID)
	if s := strings.ToLower(strings.TrimSpace(c.Query("status"))); s != "" {
		if !model.TenantStatus(s).Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid status")
		}
		q = q.Where("tenant_status = ?", s)
	}
	if kw := strings.ToLower(strings.TrimSpace(c.Query("q"))); kw != "" {
		like := "%" + kw + "%"
		q = q.Where("(LOWER(tenant_name) LIKE ? OR tenant_phone LIKE ? OR LOWER(tenant_room_number) LIKE ?)", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return h.fail(c, err)
	}

	pg := helper.ResolvePaging(c, 20, 100)
	var rows []model.TenantModel
	if err := q.
		Order(helper.ResolveSort(c, map[string]string{
			"name":       "tenant_name",
			"room":       "tenant_room_number",
			"join_date":  "tenant_join_date",
			"created_at": "tenant_created_at",
		}, "created_at")).
		Offset(pg.Offset).Limit(pg.Limit).
		Find(&rows).Error; err != nil {
		return h.fail(c, err)
	}

	pagination := helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage)
	return helper.JsonList(c, "ok", dto.FromModels(rows), &pagination)
}

/* =========================
   POST /blocks/:blockId/tenants
========================= */

func (h *TenantController) Create(c *fiber.Ctx) error {
	b, err := h.ownedBlock(c)
	if err != nil {
		return err
	}
	var req dto.CreateTenantRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	phone, err := helper.NormalizePhone(req.Phone)
	if err != nil {
		return h.fail(c, err)
	}

	t := req.ToModel(b.BlockOwnerUserID, b.BlockID, phone)
	if t.TenantJoinDate.IsZero() {
		t.TenantJoinDate = dbtime.DateOf(dbtime.NowInApp())
	}
	if t.TenantRoomTypeID != nil {
		if err := service.AssignRoomType(c.UserContext(), h.DB, t, *t.TenantRoomTypeID); err != nil {
			return h.fail(c, err)
		}
	}
	if err := h.DB.WithContext(c.UserContext()).Create(t).Error; err != nil {
		return h.fail(c, err)
	}
	return helper.JsonCreated(c, "tenant created", dto.FromModel(t))
}

/* =========================
   GET /tenants/:id
========================= */

func (h *TenantController) Get(c *fiber.Ctx) error {
	t, err := h.owned(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", dto.FromModel(t))
}

/* =========================
   PATCH /tenants/:id
========================= */

func (h *TenantController) Update(c *fiber.Ctx) error {
	t, err := h.owned(c)
	if err != nil {
		return err
	}
	var req dto.UpdateTenantRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	if req.Phone != nil {
		phone, err := helper.NormalizePhone(*req.Phone)
		if err != nil {
			return h.fail(c, err)
		}
		t.TenantPhone = phone
	}
	req.Apply(t)
	if req.RoomTypeID != nil {
		if *req.RoomTypeID == "" {
			t.TenantRoomTypeID = nil
		} else if err := service.AssignRoomType(c.UserContext(), h.DB, t, uuid.MustParse(*req.RoomTypeID)); err != nil {
			return h.fail(c, err)
		}
	}
	if err := h.DB.WithContext(c.UserContext()).Save(t).Error; err != nil {
		return h.fail(c, err)
	}
	return helper.JsonUpdated(c, "tenant updated", dto.FromModel(t))
}

/* =========================
   PATCH /tenants/:id/status
========================= */

// UpdateStatus moves a tenant between active/left/blacklisted/pending. Leaving stamps
// the leave date (today unless given); coming back active clears it.
func (h *TenantController) UpdateStatus(c *fiber.Ctx) error {
	t, err := h.owned(c)
	if err != nil {
		return err
	}
	var req dto.UpdateTenantStatusRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}

	st := model.TenantStatus(req.Status)
	switch st {
	case model.TenantLeft:
		if req.LeaveDate != nil && !req.LeaveDate.IsZero() {
			t.TenantLeaveDate = req.LeaveDate
		} else if t.TenantLeaveDate == nil {
			today := dbtime.DateOf(dbtime.NowInApp())
			t.TenantLeaveDate = &today
		}
	case model.TenantActive:
		t.TenantLeaveDate = nil
	}
	prev := t.TenantStatus
	t.TenantStatus = st

	if err := h.DB.WithContext(c.UserContext()).Save(t).Error; err != nil {
		return h.fail(c, err)
	}
	log.Printf("[INFO] tenant status tenant=%s %s -> %s by=%s", t.TenantID, prev, st, helperAuth.Actor(c))
	return helper.JsonUpdated(c, "tenant status updated", dto.FromModel(t))
}

/* =========================
   DELETE /tenants/:id
========================= */

// Delete soft-deletes the tenant. Payment history stays for the owner.
func (h *TenantController) Delete(c *fiber.Ctx) error {
	t, err := h.owned(c)
	if err != nil {
		return err
	}
	if err := h.DB.WithContext(c.UserContext()).Delete(t).Error; err != nil {
		return h.fail(c, err)
	}
	return helper.JsonDeleted(c, "tenant deleted", fiber.Map{"id": t.TenantID})
}

/* =========================
   GET /public/tenants/search?userId=&phone= (public)
========================= */

func (h *TenantController) PublicSearch(c *fiber.Ctx) error {
	ownerID := strings.TrimSpace(c.Query("userId"))
	if ownerID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "userId is required")
	}
	phone, err := helper.NormalizePhone(c.Query("phone"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res, err := service.PublicLookup(c.UserContext(), h.DB, ownerID, phone)
	if err != nil {
		return h.fail(c, err)
	}
	// no match is an empty list, same shape either way
	return helper.JsonList(c, "ok", res, nil)
}
