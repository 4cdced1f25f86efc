package helper

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

const DefaultSlugMaxLen = 100

var (
	reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	reHyphen   = regexp.MustCompile(`-+`)
)

// Slugify turns free text into [a-z0-9-]: diacritics stripped, hyphens collapsed,
// trimmed to maxLen (DefaultSlugMaxLen when <= 0). Falls back to "hostel".
func Slugify(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultSlugMaxLen
	}
	var b strings.Builder
	for _, r := range norm.NFD.String(strings.ToLower(strings.TrimSpace(s))) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}

	out := reNonAlnum.ReplaceAllString(b.String(), "-")
	out = strings.Trim(reHyphen.ReplaceAllString(out, "-"), "-")
	if len(out) > maxLen {
		out = strings.Trim(out[:maxLen], "-")
	}
	if out == "" {
		return "hostel"
	}
	return out
}

// EnsureUniqueSlug appends -2, -3, ... until no live row in table.column matches
// (case-insensitive). scope may add tenant filters; softDeleteCol may be empty.
func EnsureUniqueSlug(
	ctx context.Context,
	db *gorm.DB,
	table, column, softDeleteCol, base string,
	scope func(*gorm.DB) *gorm.DB,
) (string, error) {
	slug := base
	for i := 0; i < 50; i++ {
		q := db.WithContext(ctx).Table(table).Where(fmt.Sprintf("LOWER(%s) = ?", column), strings.ToLower(slug))
		if softDeleteCol != "" {
			q = q.Where(softDeleteCol + " IS NULL")
		}
		if scope != nil {
			q = scope(q)
		}
		var count int64
		if err := q.Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return slug, nil
		}
		suffix := fmt.Sprintf("-%d", i+2)
		trimmed := base
		if len(trimmed)+len(suffix) > DefaultSlugMaxLen {
			trimmed = strings.Trim(trimmed[:DefaultSlugMaxLen-len(suffix)], "-")
		}
		slug = trimmed + suffix
	}
	return "", fmt.Errorf("could not find a free slug for %q", base)
}
