// file: internals/features/rooms/room_components/controller/room_component_controller.go
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
	"hostelku_backend/internals/features/rooms/room_components/dto"
	"hostelku_backend/internals/features/rooms/room_components/model"
	roomTypeModel "hostelku_backend/internals/features/rooms/room_types/model"
	helper "hostelku_backend/internals/helpers"
	helperAuth "hostelku_backend/internals/helpers/auth"
)

type RoomComponentController struct {
	DB *gorm.DB
}

func NewRoomComponentController(db *gorm.DB) *RoomComponentController {
	return &RoomComponentController{DB: db}
}

func (h *RoomComponentController) ownedBlock(c *fiber.Ctx) (*blockModel.BlockModel, error) {
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

func (h *RoomComponentController) owned(c *fiber.Ctx) (*model.RoomComponentModel, error) {
	ownerID, err := helperAuth.GetUserID(c)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "id must be a UUID")
	}
	var m model.RoomComponentModel
	err = h.DB.WithContext(c.UserContext()).
		Where("room_component_id = ? AND room_component_owner_user_id = ?", id, ownerID).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fiber.NewError(fiber.StatusNotFound, "room component not found")
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func internal(c *fiber.Ctx, err error) error {
	log.Printf("[ERROR] room components %s %s: %v", c.Method(), c.Path(), err)
	return helper.JsonError(c, fiber.StatusInternalServerError, "internal error")
}

/* =========================
   GET /blocks/:blockId/room-components
========================= */

func (h *RoomComponentController) List(c *fiber.Ctx) error {
	b, err := h.ownedBlock(c)
	if err != nil {
		return err
	}
	var rows []model.RoomComponentModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("room_component_block_id = ?", b.BlockID).
		Order("room_component_name ASC").
		Find(&rows).Error; err != nil {
		return internal(c, err)
	}
	return helper.JsonList(c, "ok", dto.FromModels(rows), nil)
}

/* =========================
   POST /blocks/:blockId/room-components
========================= */

func (h *RoomComponentController) Create(c *fiber.Ctx) error {
	b, err := h.ownedBlock(c)
	if err != nil {
		return err
	}
	var req dto.CreateRoomComponentRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	m := model.RoomComponentModel{
		RoomComponentBlockID:     b.BlockID,
		RoomComponentOwnerUserID: b.BlockOwnerUserID,
		RoomComponentName:        strings.TrimSpace(req.Name),
		RoomComponentDescription: req.Description,
	}
	if err := h.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return internal(c, err)
	}
	return helper.JsonCreated(c, "room component created", dto.FromModel(&m))
}

/* =========================
   PATCH /room-components/:id
========================= */

func (h *RoomComponentController) Update(c *fiber.Ctx) error {
	m, err := h.owned(c)
	if err != nil {
		return err
	}
	var req dto.UpdateRoomComponentRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	req.Apply(m)
	if err := h.DB.WithContext(c.UserContext()).Save(m).Error; err != nil {
		return internal(c, err)
	}
	return helper.JsonUpdated(c, "room component updated", dto.FromModel(m))
}

/* =========================
   DELETE /room-components/:id
========================= */

// Delete soft-deletes the component and unlinks it from every room type.
func (h *RoomComponentController) Delete(c *fiber.Ctx) error {
	m, err := h.owned(c)
	if err != nil {
		return err
	}
	err = h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("room_type_component_component_id = ?", m.RoomComponentID).
			Delete(&roomTypeModel.RoomTypeComponentModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(m).Error
	})
	if err != nil {
		return internal(c, err)
	}
	return helper.JsonDeleted(c, "room component deleted", fiber.Map{"id": m.RoomComponentID})
}
