// file: internals/seeds/demo/seed_demo.go
package demo

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	blockModel "hostelku_backend/internals/features/hostels/blocks/model"
	hostelModel "hostelku_backend/internals/features/hostels/hostels/model"
	componentModel "hostelku_backend/internals/features/rooms/room_components/model"
	roomTypeModel "hostelku_backend/internals/features/rooms/room_types/model"
	roomTypeService "hostelku_backend/internals/features/rooms/room_types/service"
	tenantModel "hostelku_backend/internals/features/tenants/tenants/model"
	helper "hostelku_backend/internals/helpers"
	"hostelku_backend/internals/helpers/dbtime"
)

type File struct {
	OwnerUserID string       `json:"ownerUserId"`
	Hostels     []HostelSeed `json:"hostels"`
}

type HostelSeed struct {
	Name           string      `json:"name"`
	Slug           string      `json:"slug"`
	City           string      `json:"city"`
	Address        string      `json:"address"`
	ContactPhone   string      `json:"contactPhone"`
	Description    string      `json:"description"`
	OnlinePresence bool        `json:"onlinePresence"`
	Blocks         []BlockSeed `json:"blocks"`
}

type BlockSeed struct {
	Name           string          `json:"name"`
	Address        string          `json:"address"`
	GenerationType string          `json:"generationType"`
	VisibilityDays *int            `json:"visibilityDays"`
	GenerationDay  int             `json:"generationDay"`
	Components     []ComponentSeed `json:"components"`
	RoomTypes      []RoomTypeSeed  `json:"roomTypes"`
	Tenants        []TenantSeed    `json:"tenants"`
}

type ComponentSeed struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type RoomTypeSeed struct {
	Name       string          `json:"name"`
	Rent       decimal.Decimal `json:"rent"`
	Capacity   int             `json:"capacity"`
	Components []string        `json:"components"` // by component name, in display order
}

type TenantSeed struct {
	Name       string      `json:"name"`
	Phone      string      `json:"phone"`
	RoomNumber string      `json:"roomNumber"`
	RoomType   string      `json:"roomType"`
	JoinDate   dbtime.Date `json:"joinDate"`
}

// SeedDemoFromJSON loads the file and inserts every hostel whose slug is not taken yet.
func SeedDemoFromJSON(db *gorm.DB, filePath string) error {
	log.Println("[SEED] reading", filePath)
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}
	var f File
	if err := sonic.Unmarshal(raw, &f); err != nil {
		return fmt.Errorf("decode seed file: %w", err)
	}
	return Seed(db, f)
}

func Seed(db *gorm.DB, f File) error {
	owner := strings.TrimSpace(f.OwnerUserID)
	if owner == "" {
		return fmt.Errorf("ownerUserId is required")
	}
	for _, h := range f.Hostels {
		slug := helper.Slugify(firstNonEmpty(h.Slug, h.Name), helper.DefaultSlugMaxLen)
		var n int64
		if err := db.Model(&hostelModel.HostelModel{}).Where("hostel_slug = ?", slug).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			log.Printf("[SEED] hostel %q exists, skipping", slug)
			continue
		}
		if err := db.Transaction(func(tx *gorm.DB) error { return seedHostel(tx, owner, slug, h) }); err != nil {
			return fmt.Errorf("hostel %q: %w", slug, err)
		}
		log.Printf("[SEED] hostel %q seeded", slug)
	}
	return nil
}

func seedHostel(tx *gorm.DB, owner, slug string, h HostelSeed) error {
	hostel := hostelModel.HostelModel{
		HostelOwnerUserID:             owner,
		HostelName:                    h.Name,
		HostelSlug:                    slug,
		HostelDescription:             optional(h.Description),
		HostelAddress:                 optional(h.Address),
		HostelCity:                    optional(h.City),
		HostelContactPhone:            optional(h.ContactPhone),
		HostelIsOnlinePresenceEnabled: h.OnlinePresence,
	}
	if err := tx.Create(&hostel).Error; err != nil {
		return err
	}

	for _, bs := range h.Blocks {
		visibility := blockModel.DefaultPaymentVisibilityDays
		if bs.VisibilityDays != nil {
			visibility = *bs.VisibilityDays
		}
		b := blockModel.BlockModel{
			BlockOwnerUserID:           owner,
			BlockHostelID:              &hostel.HostelID,
			BlockName:                  bs.Name,
			BlockAddress:               optional(bs.Address),
			BlockPaymentGenerationType: blockModel.PaymentGenerationType(bs.GenerationType),
			BlockPaymentVisibilityDays: visibility,
			BlockRentGenerationDay:     bs.GenerationDay,
			BlockRentGenerationEnabled: true,
		}
		if err := tx.Create(&b).Error; err != nil {
			return err
		}

		compIDs := make(map[string]uuid.UUID, len(bs.Components))
		for _, cs := range bs.Components {
			comp := componentModel.RoomComponentModel{
				RoomComponentBlockID:     b.BlockID,
				RoomComponentOwnerUserID: owner,
				RoomComponentName:        cs.Name,
				RoomComponentDescription: optional(cs.Description),
			}
			if err := tx.Create(&comp).Error; err != nil {
				return err
			}
			compIDs[strings.ToLower(cs.Name)] = comp.RoomComponentID
		}

		rtIDs := make(map[string]uuid.UUID, len(bs.RoomTypes))
		for _, rs := range bs.RoomTypes {
			capacity := rs.Capacity
			if capacity < 1 {
				capacity = 1
			}
			rt := roomTypeModel.RoomTypeModel{
				RoomTypeBlockID:     b.BlockID,
				RoomTypeOwnerUserID: owner,
				RoomTypeName:        rs.Name,
				RoomTypeRent:        rs.Rent,
				RoomTypeCapacity:    capacity,
			}
			if err := tx.Create(&rt).Error; err != nil {
				return err
			}
			ids := make([]uuid.UUID, 0, len(rs.Components))
			for _, name := range rs.Components {
				id, ok := compIDs[strings.ToLower(name)]
				if !ok {
					return fmt.Errorf("room type %q: unknown component %q", rs.Name, name)
				}
				ids = append(ids, id)
			}
			if err := roomTypeService.ReplaceComponents(tx, rt.RoomTypeID, b.BlockID, ids); err != nil {
				return err
			}
			rtIDs[strings.ToLower(rs.Name)] = rt.RoomTypeID
		}

		for _, ts := range bs.Tenants {
			phone, err := helper.NormalizePhone(ts.Phone)
			if err != nil {
				return fmt.Errorf("tenant %q: %w", ts.Name, err)
			}
			t := tenantModel.TenantModel{
				TenantOwnerUserID:  owner,
				TenantBlockID:      b.BlockID,
				TenantName:         ts.Name,
				TenantPhone:        phone,
				TenantRoomNumber:   ts.RoomNumber,
				TenantRoomTypeName: ts.RoomType,
				TenantJoinDate:     ts.JoinDate,
				TenantStatus:       tenantModel.TenantActive,
			}
			if id, ok := rtIDs[strings.ToLower(ts.RoomType)]; ok {
				t.TenantRoomTypeID = &id
			}
			if t.TenantJoinDate.IsZero() {
				t.TenantJoinDate = dbtime.DateOf(dbtime.NowInApp())
			}
			if err := tx.Create(&t).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
