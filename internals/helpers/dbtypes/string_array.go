// file: internals/helpers/dbtypes/string_array.go
package dbtypes

import (
	"database/sql/driver"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// StringArray is a Postgres text[] (through lib/pq) that also migrates on
// dialects without arrays, where the "{a,b}" literal lands in a text column.
type StringArray []string

func (a *StringArray) Scan(src any) error {
	if src == nil {
		*a = StringArray{}
		return nil
	}
	var pa pq.StringArray
	if err := pa.Scan(src); err != nil {
		return err
	}
	*a = StringArray(pa)
	return nil
}

func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return "{}", nil
	}
	return pq.StringArray(a).Value()
}

func (StringArray) GormDataType() string { return "text[]" }

func (StringArray) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "text[]"
	}
	return "text"
}

// Clean trims, drops blanks and duplicates, keeping first-seen order.
func Clean(in []string) StringArray {
	out := make(StringArray, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
