package seeds

import (
	"gorm.io/gorm"

	"hostelku_backend/internals/seeds/demo"
)

const DefaultDemoFile = "internals/seeds/demo/data_demo.json"

func RunAllSeeds(db *gorm.DB, demoFile string) error {
	if demoFile == "" {
		demoFile = DefaultDemoFile
	}
	//* Demo hostel, blocks, room types, tenants
	return demo.SeedDemoFromJSON(db, demoFile)
}
