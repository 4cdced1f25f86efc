package routes

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"hostelku_backend/internals/databases/dbtest"
	"hostelku_backend/internals/features/finance/rent_payments/gateway"
	helper "hostelku_backend/internals/helpers"
)

const testSecret = "route-test-secret"

type stubGateway struct{ key string }

func (g stubGateway) ServerKey() string { return g.key }

func (g stubGateway) CreateCheckout(_ context.Context, req gateway.CheckoutRequest) (*gateway.CheckoutResult, error) {
	return &gateway.CheckoutResult{Token: "tok", RedirectURL: "https://pay.example/" + req.OrderID}, nil
}

type api struct {
	t   *testing.T
	app *fiber.App
	db  *gorm.DB
}

func newAPI(t *testing.T, gw gateway.Gateway) *api {
	t.Helper()
	db := dbtest.Open(t)
	app := fiber.New(fiber.Config{
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ErrorHandler: helper.ErrorHandler,
	})
	SetupRoutes(app, db, Options{JWTSecret: testSecret, Gateway: gw})
	return &api{t: t, app: app, db: db}
}

func token(t *testing.T, owner string) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  owner,
		"name": "Owner " + owner,
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return s
}

type envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// do sends body as JSON with owner's bearer token (owner "" sends none) and
// decodes the data field into out when out is non-nil.
func (a *api) do(method, path, owner string, body any, out any) int {
	a.t.Helper()
	var rdr io.Reader
	if body != nil {
		raw, err := sonic.Marshal(body)
		require.NoError(a.t, err)
		rdr = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if owner != "" {
		req.Header.Set("Authorization", "Bearer "+token(a.t, owner))
	}
	resp, err := a.app.Test(req, -1)
	require.NoError(a.t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 300 {
		raw, err := io.ReadAll(resp.Body)
		require.NoError(a.t, err)
		require.NoError(a.t, sonic.Unmarshal(raw, out), string(raw))
	}
	return resp.StatusCode
}

type idOnly struct {
	ID   uuid.UUID `json:"id"`
	Slug string    `json:"slug"`
}

func (a *api) createHostel(owner, name string, online bool) idOnly {
	a.t.Helper()
	var env envelope[idOnly]
	code := a.do("POST", "/api/hostels", owner, fiber.Map{"name": name, "isOnlinePresenceEnabled": online}, &env)
	require.Equal(a.t, http.StatusCreated, code)
	return env.Data
}

func (a *api) createBlock(owner string, hostelID *uuid.UUID) uuid.UUID {
	a.t.Helper()
	body := fiber.Map{"name": "Block A"}
	if hostelID != nil {
		body["hostelId"] = hostelID.String()
	}
	var env envelope[idOnly]
	require.Equal(a.t, http.StatusCreated, a.do("POST", "/api/blocks", owner, body, &env))
	return env.Data.ID
}

func TestHealth(t *testing.T) {
	a := newAPI(t, nil)
	resp, err := a.app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestOwnerRoutesRequireTokenAndScopeByOwner(t *testing.T) {
	a := newAPI(t, nil)

	assert.Equal(t, http.StatusUnauthorized, a.do("GET", "/api/hostels", "", nil, nil))

	h := a.createHostel("owner_a", "Sunrise Residency", false)
	assert.Equal(t, "sunrise-residency", h.Slug)

	assert.Equal(t, http.StatusOK, a.do("GET", "/api/hostels/"+h.ID.String(), "owner_a", nil, nil))
	assert.Equal(t, http.StatusNotFound, a.do("GET", "/api/hostels/"+h.ID.String(), "owner_b", nil, nil))
	assert.Equal(t, http.StatusNotFound, a.do("PATCH", "/api/hostels/"+h.ID.String(), "owner_b", fiber.Map{"name": "Mine now"}, nil))

	// a block can't be attached to someone else's hostel
	assert.Equal(t, http.StatusNotFound, a.do("POST", "/api/blocks", "owner_b", fiber.Map{"name": "B", "hostelId": h.ID.String()}, nil))

	var list envelope[[]idOnly]
	require.Equal(t, http.StatusOK, a.do("GET", "/api/hostels", "owner_b", nil, &list))
	assert.Empty(t, list.Data)

	// same name again gets a suffixed slug
	h2 := a.createHostel("owner_b", "Sunrise Residency", false)
	assert.NotEqual(t, h.Slug, h2.Slug)
}

func TestHostelProfileOnlyWhenOnlinePresenceEnabled(t *testing.T) {
	a := newAPI(t, nil)
	h := a.createHostel("owner_a", "Green Nest", false)
	blockID := a.createBlock("owner_a", &h.ID)

	var c1, c2 envelope[idOnly]
	require.Equal(t, http.StatusCreated, a.do("POST", "/api/blocks/"+blockID.String()+"/room-components", "owner_a", fiber.Map{"name": "Wardrobe"}, &c1))
	require.Equal(t, http.StatusCreated, a.do("POST", "/api/blocks/"+blockID.String()+"/room-components", "owner_a", fiber.Map{"name": "Study table"}, &c2))

	rtBody := fiber.Map{
		"name":         "Double Sharing",
		"rent":         "6500",
		"capacity":     2,
		"componentIds": []string{c2.Data.ID.String(), c1.Data.ID.String()},
	}
	require.Equal(t, http.StatusCreated, a.do("POST", "/api/blocks/"+blockID.String()+"/room-types", "owner_a", rtBody, nil))
	require.Equal(t, http.StatusCreated, a.do("POST", "/api/blocks/"+blockID.String()+"/room-types", "owner_a", fiber.Map{"name": "Single", "rent": "9000"}, nil))
	assert.Equal(t, http.StatusUnprocessableEntity, a.do("POST", "/api/blocks/"+blockID.String()+"/room-types", "owner_a", fiber.Map{"name": "Broken", "rent": "-1"}, nil))

	assert.Equal(t, http.StatusNotFound, a.do("GET", "/api/hostels/"+h.Slug+"/profile", "", nil, nil))

	require.Equal(t, http.StatusOK, a.do("PATCH", "/api/hostels/"+h.ID.String(), "owner_a", fiber.Map{"isOnlinePresenceEnabled": true}, nil))

	type component struct {
		Name string `json:"name"`
	}
	type roomType struct {
		Name       string          `json:"name"`
		Rent       decimal.Decimal `json:"rent"`
		Components []component     `json:"components"`
	}
	type profile struct {
		Slug   string `json:"slug"`
		Blocks []struct {
			RoomTypes []roomType `json:"roomTypes"`
		} `json:"blocks"`
		MinRent *decimal.Decimal `json:"minRent"`
		MaxRent *decimal.Decimal `json:"maxRent"`
	}
	var env envelope[profile]
	require.Equal(t, http.StatusOK, a.do("GET", "/api/hostels/"+h.Slug+"/profile", "", nil, &env))
	require.Len(t, env.Data.Blocks, 1)
	rts := env.Data.Blocks[0].RoomTypes
	require.Len(t, rts, 2)
	assert.Equal(t, "Double Sharing", rts[0].Name, "cheapest first")
	require.Len(t, rts[0].Components, 2)
	assert.Equal(t, "Study table", rts[0].Components[0].Name, "components keep the submitted order")
	assert.Equal(t, "Wardrobe", rts[0].Components[1].Name)
	require.NotNil(t, env.Data.MinRent)
	assert.True(t, decimal.NewFromInt(6500).Equal(*env.Data.MinRent))
	assert.True(t, decimal.NewFromInt(9000).Equal(*env.Data.MaxRent))

	// by id works too
	assert.Equal(t, http.StatusOK, a.do("GET", "/api/hostels/"+h.ID.String()+"/profile", "", nil, nil))
}

func TestPaymentSettingsValidation(t *testing.T) {
	a := newAPI(t, nil)
	blockID := a.createBlock("owner_a", nil)
	path := "/api/blocks/" + blockID.String() + "/payment-settings"

	type settings struct {
		PaymentGenerationType string `json:"paymentGenerationType"`
		PaymentVisibilityDays int    `json:"paymentVisibilityDays"`
		RentGenerationDay     int    `json:"rentGenerationDay"`
		RentGenerationEnabled bool   `json:"rentGenerationEnabled"`
	}
	var got envelope[settings]
	require.Equal(t, http.StatusOK, a.do("GET", path, "owner_a", nil, &got))
	assert.Equal(t, "global", got.Data.PaymentGenerationType)
	assert.Equal(t, 5, got.Data.PaymentVisibilityDays)
	assert.Equal(t, 1, got.Data.RentGenerationDay)
	assert.True(t, got.Data.RentGenerationEnabled)

	assert.Equal(t, http.StatusUnprocessableEntity, a.do("PUT", path, "owner_a", fiber.Map{}, nil))
	assert.Equal(t, http.StatusUnprocessableEntity, a.do("PUT", path, "owner_a", fiber.Map{"paymentVisibilityDays": 40}, nil))
	assert.Equal(t, http.StatusUnprocessableEntity, a.do("PUT", path, "owner_a", fiber.Map{"rentGenerationDay": 0}, nil))
	assert.Equal(t, http.StatusUnprocessableEntity, a.do("PUT", path, "owner_a", fiber.Map{"paymentGenerationType": "weekly"}, nil))
	assert.Equal(t, http.StatusNotFound, a.do("PUT", path, "owner_b", fiber.Map{"rentGenerationDay": 10}, nil))

	body := fiber.Map{"paymentGenerationType": "join_date_based", "paymentVisibilityDays": 0, "rentGenerationEnabled": false}
	require.Equal(t, http.StatusOK, a.do("PUT", path, "owner_a", body, nil))
	require.Equal(t, http.StatusOK, a.do("GET", path, "owner_a", nil, &got))
	assert.Equal(t, "join_date_based", got.Data.PaymentGenerationType)
	assert.Equal(t, 0, got.Data.PaymentVisibilityDays)
	assert.Equal(t, 1, got.Data.RentGenerationDay, "untouched fields keep their value")
	assert.False(t, got.Data.RentGenerationEnabled)

	// generation off: manual refresh is refused
	assert.Equal(t, http.StatusConflict, a.do("POST", "/api/rent-payments/refresh", "owner_a", fiber.Map{"blockId": blockID.String()}, nil))
}

func TestPublicTenantSearch(t *testing.T) {
	a := newAPI(t, nil)
	blockID := a.createBlock("owner_a", nil)

	var rt envelope[idOnly]
	require.Equal(t, http.StatusCreated, a.do("POST", "/api/blocks/"+blockID.String()+"/room-types", "owner_a", fiber.Map{"name": "Single", "rent": "8000"}, &rt))

	join := time.Now().AddDate(0, -2, 0).Format("2006-01-02")
	tenant := fiber.Map{
		"name":       "Anita Rao",
		"phone":      "98765-01234",
		"roomNumber": "A-101",
		"roomTypeId": rt.Data.ID.String(),
		"joinDate":   join,
	}
	bad := fiber.Map{"name": "X", "phone": "12345", "roomNumber": "1"}
	assert.Equal(t, http.StatusUnprocessableEntity, a.do("POST", "/api/blocks/"+blockID.String()+"/tenants", "owner_a", bad, nil))

	var created envelope[struct {
		Phone    string `json:"phone"`
		RoomType string `json:"roomType"`
	}]
	require.Equal(t, http.StatusCreated, a.do("POST", "/api/blocks/"+blockID.String()+"/tenants", "owner_a", tenant, &created))
	assert.Equal(t, "9876501234", created.Data.Phone)
	assert.Equal(t, "Single", created.Data.RoomType)

	require.Equal(t, http.StatusOK, a.do("POST", "/api/rent-payments/refresh", "owner_a", fiber.Map{"blockId": blockID.String()}, nil))

	type result struct {
		Name       string `json:"name"`
		BlockName  string `json:"blockName"`
		Payments   []any  `json:"payments"`
		DueSummary struct {
			Count int `json:"count"`
		} `json:"dueSummary"`
	}
	var found envelope[[]result]
	require.Equal(t, http.StatusOK, a.do("GET", "/api/public/tenants/search?userId=owner_a&phone=98765%2001234", "", nil, &found))
	require.Len(t, found.Data, 1)
	assert.Equal(t, "Anita Rao", found.Data[0].Name)
	assert.Equal(t, "Block A", found.Data[0].BlockName)
	assert.NotEmpty(t, found.Data[0].Payments, "this month's rent is already visible")
	assert.GreaterOrEqual(t, found.Data[0].DueSummary.Count, 1)

	var none envelope[[]result]
	require.Equal(t, http.StatusOK, a.do("GET", "/api/public/tenants/search?userId=owner_b&phone=9876501234", "", nil, &none))
	assert.Empty(t, none.Data)

	assert.Equal(t, http.StatusBadRequest, a.do("GET", "/api/public/tenants/search?phone=9876501234", "", nil, nil))
	assert.Equal(t, http.StatusBadRequest, a.do("GET", "/api/public/tenants/search?userId=owner_a&phone=123", "", nil, nil))
}

func TestMidtransWebhook(t *testing.T) {
	off := newAPI(t, nil)
	assert.Equal(t, http.StatusServiceUnavailable, off.do("POST", "/api/webhooks/midtrans", "", fiber.Map{"order_id": "x"}, nil))

	a := newAPI(t, stubGateway{key: "server-key"})
	n := gateway.Notification{OrderID: "RENT-404", StatusCode: "200", GrossAmount: "8000.00", TransactionStatus: "settlement"}

	n.SignatureKey = "deadbeef"
	assert.Equal(t, http.StatusUnauthorized, a.do("POST", "/api/webhooks/midtrans", "", n, nil))

	n.SignatureKey = gateway.Signature(n, "server-key")
	var env envelope[map[string]any]
	require.Equal(t, http.StatusOK, a.do("POST", "/api/webhooks/midtrans", "", n, &env))
	assert.Equal(t, "ignored", fmt.Sprint(env.Data["outcome"]))
}
