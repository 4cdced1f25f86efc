// file: internals/features/hostels/blocks/controller/block_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hostelku_backend/internals/features/hostels/blocks/dto"
	"hostelku_backend/internals/features/hostels/blocks/model"
	"hostelku_backend/internals/features/hostels/blocks/service"
	hostelService "hostelku_backend/internals/features/hostels/hostels/service"
	tenantModel "hostelku_backend/internals/features/tenants/tenants/model"
	helper "hostelku_backend/internals/helpers"
	helperAuth "hostelku_backend/internals/helpers/auth"
)

type BlockController struct {
	DB *gorm.DB
}

func NewBlockController(db *gorm.DB) *BlockController {
	return &BlockController{DB: db}
}

func (h *BlockController) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrBlockNotFound),
		errors.Is(err, hostelService.ErrHostelNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	}
	log.Printf("[ERROR] blocks %s %s: %v", c.Method(), c.Path(), err)
	return helper.JsonError(c, fiber.StatusInternalServerError, "internal error")
}

// owned resolves :blockId to a block of the caller.
func (h *BlockController) owned(c *fiber.Ctx) (*model.BlockModel, error) {
	ownerID, err := helperAuth.GetUserID(c)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("blockId")))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "blockId must be a UUID")
	}
	b, err := service.FindOwnedBlock(c.UserContext(), h.DB, id, ownerID)
	if errors.Is(err, service.ErrBlockNotFound) {
		return nil, fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	return b, err
}

// checkHostel makes sure a referenced hostel belongs to the same owner.
func (h *BlockController) checkHostel(c *fiber.Ctx, hostelID *uuid.UUID, ownerID string) error {
	if hostelID == nil {
		return nil
	}
	_, err := hostelService.FindOwnedHostel(c.UserContext(), h.DB, *hostelID, ownerID)
	return err
}

/* =========================
   GET /blocks
========================= */

func (h *BlockController) List(c *fiber.Ctx) error {
	ownerID, err := helperAuth.GetUserID(c)
	if err != nil {
		return err
	}
	q := h.DB.WithContext(c.UserContext()).Where("block_owner_user_id = ?", ownerID)
	if s := strings.TrimSpace(c.Query("hostelId")); s != "" {
		hid, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "hostelId must be a UUID")
		}
		q = q.Where("block_hostel_id = ?", hid)
	}
	var rows []model.BlockModel
	if err := q.Order("block_name ASC").Find(&rows).Error; err != nil {
		return h.fail(c, err)
	}
	return helper.JsonList(c, "ok", dto.FromModels(rows), nil)
}

/* =========================
   POST /blocks
========================= */

func (h *BlockController) Create(c *fiber.Ctx) error {
	ownerID, err := helperAuth.GetUserID(c)
	if err != nil {
		return err
	}
	var req dto.CreateBlockRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	b := req.ToModel(ownerID)
	if err := h.checkHostel(c, b.BlockHostelID, ownerID); err != nil {
		return h.fail(c, err)
	}
	if err := h.DB.WithContext(c.UserContext()).Create(b).Error; err != nil {
		return h.fail(c, err)
	}
	return helper.JsonCreated(c, "block created", dto.FromModel(b))
}

/* =========================
   GET /blocks/:blockId
========================= */

func (h *BlockController) Get(c *fiber.Ctx) error {
	b, err := h.owned(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", dto.FromModel(b))
}

/* =========================
   PATCH /blocks/:blockId
========================= */

func (h *BlockController) Update(c *fiber.Ctx) error {
	b, err := h.owned(c)
	if err != nil {
		return err
	}
	var req dto.UpdateBlockRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	req.Apply(b)
	if err := h.checkHostel(c, b.BlockHostelID, b.BlockOwnerUserID); err != nil {
		return h.fail(c, err)
	}
	if err := h.DB.WithContext(c.UserContext()).Save(b).Error; err != nil {
		return h.fail(c, err)
	}
	return helper.JsonUpdated(c, "block updated", dto.FromModel(b))
}

/* =========================
   DELETE /blocks/:blockId
========================= */

// Delete refuses while active tenants still live in the block.
func (h *BlockController) Delete(c *fiber.Ctx) error {
	b, err := h.owned(c)
	if err != nil {
		return err
	}
	var active int64
	if err := h.DB.WithContext(c.UserContext()).
		Model(&tenantModel.TenantModel{}).
		Where("tenant_block_id = ? AND tenant_status = ?", b.BlockID, tenantModel.TenantActive).
		Count(&active).Error; err != nil {
		return h.fail(c, err)
	}
	if active > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "block still has active tenants")
	}
	if err := h.DB.WithContext(c.UserContext()).Delete(b).Error; err != nil {
		return h.fail(c, err)
	}
	return helper.JsonDeleted(c, "block deleted", fiber.Map{"id": b.BlockID})
}

/* =========================
   GET /blocks/:blockId/payment-settings
========================= */

func (h *BlockController) GetPaymentSettings(c *fiber.Ctx) error {
	b, err := h.owned(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", dto.SettingsFromModel(b))
}

/* =========================
   PUT /blocks/:blockId/payment-settings
========================= */

func (h *BlockController) UpdatePaymentSettings(c *fiber.Ctx) error {
	b, err := h.owned(c)
	if err != nil {
		return err
	}
	var req dto.PaymentSettingsRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	if req.Empty() {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "no settings to update")
	}
	req.Apply(b)

	if err := h.DB.WithContext(c.UserContext()).Save(b).Error; err != nil {
		return h.fail(c, err)
	}
	log.Printf("[INFO] payment settings block=%s type=%s visibility=%d day=%d enabled=%t",
		b.BlockID, b.BlockPaymentGenerationType, b.BlockPaymentVisibilityDays,
		b.BlockRentGenerationDay, b.BlockRentGenerationEnabled)
	return helper.JsonUpdated(c, "payment settings updated", dto.SettingsFromModel(b))
}
