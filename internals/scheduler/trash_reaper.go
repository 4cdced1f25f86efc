// file: internals/scheduler/trash_reaper.go
package scheduler

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"
)

type reapTarget struct{ Table, Col string }

// Tenants are never reaped: their payment history outlives them.
var reapTargets = []reapTarget{
	{Table: "room_components", Col: "room_component_deleted_at"},
	{Table: "room_types", Col: "room_type_deleted_at"},
	{Table: "blocks", Col: "block_deleted_at"},
	{Table: "hostels", Col: "hostel_deleted_at"},
}

// RunTrashReaper hard-deletes rows soft-deleted before cutoff, plus component links
// left pointing at reaped room types.
func RunTrashReaper(ctx context.Context, db *gorm.DB, cutoff time.Time) (int64, error) {
	var total int64
	for _, t := range reapTargets {
		res := db.WithContext(ctx).Exec(
			`DELETE FROM `+t.Table+` WHERE `+t.Col+` IS NOT NULL AND `+t.Col+` < ?`,
			cutoff,
		)
		if err := res.Error; err != nil {
			log.Printf("[DB-REAPER] %s: delete error: %v", t.Table, err)
			continue
		}
		if res.RowsAffected > 0 {
			log.Printf("[DB-REAPER] %s: hard-deleted %d rows older than %s", t.Table, res.RowsAffected, cutoff.Format(time.RFC3339))
		}
		total += res.RowsAffected
	}

	res := db.WithContext(ctx).Exec(`DELETE FROM room_type_components
		WHERE room_type_component_room_type_id NOT IN (SELECT room_type_id FROM room_types)
		   OR room_type_component_component_id NOT IN (SELECT room_component_id FROM room_components)`)
	if res.Error != nil {
		return total, res.Error
	}
	total += res.RowsAffected

	if total == 0 {
		log.Printf("[DB-REAPER] nothing to delete (cutoff=%s)", cutoff.Format(time.RFC3339))
	}
	return total, nil
}
