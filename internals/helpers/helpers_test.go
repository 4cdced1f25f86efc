package helper

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"9876543210", "9876543210", false},
		{"98765 43210", "9876543210", false},
		{"(987) 654-3210", "9876543210", false},
		{"+91 98765 43210", "", true},
		{"987654321", "", true},
		{"", "", true},
		{"٩٨٧٦٥", "", true},
		{"٩٨٧٦٥43210", "", true},
	}
	for _, tc := range cases {
		got, err := NormalizePhone(tc.in)
		if tc.wantErr {
			assert.ErrorIs(t, err, ErrInvalidPhone, tc.in)
			continue
		}
		assert.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
	}
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "sunrise-pg-koramangala", Slugify("  Sunrise PG, Koramangala!  ", 0))
	assert.Equal(t, "cafe-residency", Slugify("Café Résidency", 0))
	assert.Equal(t, "hostel", Slugify("!!!", 0))
	assert.Equal(t, "abc", Slugify("abc-def", 4))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}))
	assert.True(t, IsUniqueViolation(errors.New("UNIQUE constraint failed: hostels.hostel_slug")))
	assert.False(t, IsUniqueViolation(nil))
	assert.True(t, IsForeignKeyViolation(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}))
}

func TestPagingAndPagination(t *testing.T) {
	app := fiber.New()
	var got Paging
	app.Get("/", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 20, 100)
		return c.SendStatus(fiber.StatusNoContent)
	})

	_, err := app.Test(httptest.NewRequest("GET", "/?page=3&per_page=500", nil))
	require.NoError(t, err)
	assert.Equal(t, Paging{Page: 3, PerPage: 100, Offset: 200, Limit: 100}, got)

	_, err = app.Test(httptest.NewRequest("GET", "/?page=-1&limit=5", nil))
	require.NoError(t, err)
	assert.Equal(t, Paging{Page: 1, PerPage: 5, Offset: 0, Limit: 5}, got)

	p := BuildPaginationFromPage(41, 2, 20)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)
}

func TestBindAndValidate(t *testing.T) {
	type body struct {
		Name string `json:"name" validate:"required"`
	}
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		var in body
		if ok, err := BindAndValidate(c, &in); !ok {
			return err
		}
		return JsonOK(c, "", in)
	})

	req := httptest.NewRequest("POST", "/", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), `"Name":["required"]`)

	req = httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
