package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/servease/servease-api/database"
	"github.com/servease/servease-api/models"
	"github.com/servease/servease-api/routes"
)

type e2e struct {
	t      *testing.T
	r      *gin.Engine
	db     *gorm.DB
	cookie []*http.Cookie
}

func newE2E(t *testing.T) *e2e {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ADMIN_API_KEY", "admin-key")
	t.Setenv("UPLOAD_DIR", t.TempDir())

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.SetupRoutes(r, db)
	return &e2e{t: t, r: r, db: db}
}

func (e *e2e) do(req *http.Request, withSession bool) *httptest.ResponseRecorder {
	if withSession {
		for _, ck := range e.cookie {
			req.AddCookie(ck)
		}
	}
	rec := httptest.NewRecorder()
	e.r.ServeHTTP(rec, req)
	return rec
}

func (e *e2e) postForm(path string, form url.Values, withSession bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return e.do(req, withSession)
}

func (e *e2e) postJSON(path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return e.do(req, true)
}

func (e *e2e) adminForm(method, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-API-KEY", "admin-key")
	return e.do(req, false)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response does not parse: %v (%s)", err, rec.Body.String())
	}
	return body
}

func TestEndToEndOrderFlow(t *testing.T) {
	e := newE2E(t)

	// Unauthenticated pages bounce to login before touching any data.
	rec := e.do(httptest.NewRequest(http.MethodGet, "/dashboard", nil), false)
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/login" {
		t.Fatalf("expected redirect to /login, got %d %q", rec.Code, rec.Header().Get("Location"))
	}

	// Register and pick up the auto-login session.
	rec = e.postForm("/register", url.Values{
		"name":             {"Asha"},
		"mobile":           {"9990001111"},
		"password":         {"Secret123"},
		"confirm_password": {"Secret123"},
	}, false)
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/dashboard" {
		t.Fatalf("registration failed: %d %s", rec.Code, rec.Body.String())
	}
	e.cookie = rec.Result().Cookies()

	// Admin seeds the catalog.
	rec = e.adminForm(http.MethodPost, "/admin/services", url.Values{
		"name":     {"Deep Clean"},
		"price":    {"500"},
		"discount": {"50"},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create service: %d %s", rec.Code, rec.Body.String())
	}
	serviceID := uint(decodeBody(t, rec)["id"].(float64))

	rec = e.adminForm(http.MethodPost, "/admin/menus", url.Values{
		"name":  {"Veg Thali"},
		"price": {"120"},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create menu: %d %s", rec.Code, rec.Body.String())
	}
	menuID := uint(decodeBody(t, rec)["id"].(float64))

	// Empty cart: the order form bounces back to the dashboard.
	rec = e.do(httptest.NewRequest(http.MethodGet, "/order_form", nil), true)
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/dashboard" {
		t.Fatalf("expected empty-cart redirect, got %d", rec.Code)
	}

	// Fill the cart: one service, one menu at quantity two.
	rec = e.postJSON("/api/add_to_cart", fmt.Sprintf(`{"type":"service","id":%d}`, serviceID))
	if rec.Code != http.StatusOK {
		t.Fatalf("add service: %d %s", rec.Code, rec.Body.String())
	}
	rec = e.postJSON("/api/add_to_cart", fmt.Sprintf(`{"type":"menu","id":%d}`, menuID))
	if rec.Code != http.StatusOK {
		t.Fatalf("add menu: %d %s", rec.Code, rec.Body.String())
	}

	var menuLine models.CartItem
	if err := e.db.Where("item_type = ? AND item_id = ?", "menu", menuID).First(&menuLine).Error; err != nil {
		t.Fatalf("menu cart line missing: %v", err)
	}
	rec = e.postJSON("/api/update_cart", fmt.Sprintf(`{"cart_id":%d,"action":"increase"}`, menuLine.ID))
	if rec.Code != http.StatusOK {
		t.Fatalf("increase: %d %s", rec.Code, rec.Body.String())
	}

	// (500-50)*1 + (120-0)*2 = 690
	rec = e.do(httptest.NewRequest(http.MethodGet, "/api/cart", nil), true)
	if rec.Code != http.StatusOK {
		t.Fatalf("get cart: %d", rec.Code)
	}
	if total := decodeBody(t, rec)["total"].(float64); total != 690 {
		t.Fatalf("expected cart total 690, got %v", total)
	}

	rec = e.do(httptest.NewRequest(http.MethodGet, "/order_form", nil), true)
	if rec.Code != http.StatusOK {
		t.Fatalf("order form with a filled cart: %d", rec.Code)
	}

	// Submit.
	rec = e.postJSON("/api/submit_order", `{"payment_method":"cash","location":"Home"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("submit order: %d %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["success"] != true {
		t.Fatalf("expected success, got %v", body)
	}
	orderID := uint(body["order_id"].(float64))

	var order models.Order
	if err := e.db.First(&order, orderID).Error; err != nil {
		t.Fatalf("order row missing: %v", err)
	}
	if order.TotalPrice != 690 || order.Status != models.OrderStatusPending {
		t.Fatalf("unexpected order: total=%v status=%q", order.TotalPrice, order.Status)
	}

	var remaining int64
	e.db.Model(&models.CartItem{}).Count(&remaining)
	if remaining != 0 {
		t.Fatalf("cart not cleared, %d lines remain", remaining)
	}

	// Dashboard aggregates after the order.
	rec = e.do(httptest.NewRequest(http.MethodGet, "/dashboard", nil), true)
	if rec.Code != http.StatusOK {
		t.Fatalf("dashboard: %d", rec.Code)
	}
	dash := decodeBody(t, rec)
	if dash["cart_total"].(float64) != 0 {
		t.Fatalf("expected empty cart on dashboard, got %v", dash["cart_total"])
	}

	// Admin moves the order forward and exports the sheet.
	rec = e.adminJSON(http.MethodPut, fmt.Sprintf("/admin/orders/%d/status", orderID), `{"status":"confirmed"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status update: %d %s", rec.Code, rec.Body.String())
	}
	e.db.First(&order, orderID)
	if order.Status != models.OrderStatusConfirmed {
		t.Fatalf("expected Confirmed, got %q", order.Status)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/orders/export", nil)
	req.Header.Set("X-API-KEY", "admin-key")
	rec = e.do(req, false)
	if rec.Code != http.StatusOK {
		t.Fatalf("export: %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "spreadsheet") {
		t.Fatalf("unexpected export content type %q", ct)
	}
}

func (e *e2e) adminJSON(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-KEY", "admin-key")
	return e.do(req, false)
}

func TestRootRedirectBySession(t *testing.T) {
	e := newE2E(t)

	rec := e.do(httptest.NewRequest(http.MethodGet, "/", nil), false)
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/login" {
		t.Fatalf("expected redirect to /login, got %d %q", rec.Code, rec.Header().Get("Location"))
	}

	rec = e.postForm("/register", url.Values{
		"name":             {"Asha"},
		"mobile":           {"9990002222"},
		"password":         {"Secret123"},
		"confirm_password": {"Secret123"},
	}, false)
	e.cookie = rec.Result().Cookies()

	rec = e.do(httptest.NewRequest(http.MethodGet, "/", nil), true)
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/dashboard" {
		t.Fatalf("expected redirect to /dashboard, got %d %q", rec.Code, rec.Header().Get("Location"))
	}

	// Logout clears the session.
	rec = e.do(httptest.NewRequest(http.MethodGet, "/logout", nil), true)
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/login" {
		t.Fatalf("expected redirect to /login, got %d", rec.Code)
	}
}

func TestAPIRoutesRejectMissingSession(t *testing.T) {
	e := newE2E(t)

	rec := e.do(httptest.NewRequest(http.MethodGet, "/api/cart", nil), false)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["success"] != false {
		t.Fatalf("expected success false, got %v", body)
	}
}

func TestAdminRoutesRequireAPIKey(t *testing.T) {
	e := newE2E(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	rec := e.do(req, false)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without API key, got %d", rec.Code)
	}
}
