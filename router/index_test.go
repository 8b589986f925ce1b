package router

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"studio_booking/database"
	"studio_booking/helper"
	"studio_booking/middleware"
	"studio_booking/model"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET", "router-test-secret")

	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	database.DB = db

	app := fiber.New()
	app.Use(middleware.RequestLogger())
	SetupRoutes(app)
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body string, token string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode: %v", err)
	}
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := helper.GenerateAccessToken(model.TokenClaim{Username: "admin"})
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	return token
}

const aliceBooking = `{"coachId":"1","date":"2025-03-10","hour":"10","minute":"00",
	"clientName":"Alice Chen","phone":"0912345678","email":"alice@example.com",
	"birthday":"1990-05-17","courseType":"Strength Training"}`

func TestHealth(t *testing.T) {
	app := newTestApp(t)
	if resp := do(t, app, http.MethodGet, "/health", "", ""); resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestAvailableTimesEndpoint(t *testing.T) {
	app := newTestApp(t)

	var times []string
	decode(t, do(t, app, http.MethodGet, "/api/v1/available-times?coachId=1&date=2025-03-10", "", ""), &times)
	if len(times) != 24 || times[0] != "9:00" || times[23] != "20:30" {
		t.Fatalf("empty day grid = %v", times)
	}

	if resp := do(t, app, http.MethodPost, "/api/v1/bookings", aliceBooking, ""); resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d", resp.StatusCode)
	}

	decode(t, do(t, app, http.MethodGet, "/api/v1/available-times?coachId=1&date=2025-03-10", "", ""), &times)
	if len(times) != 21 {
		t.Fatalf("expected 21 free slots, got %v", times)
	}
	for _, s := range []string{"9:30", "10:00", "10:30"} {
		for _, got := range times {
			if got == s {
				t.Fatalf("%s should not be offered", s)
			}
		}
	}

	decode(t, do(t, app, http.MethodGet, "/api/v1/available-times?coachId=99&date=2025-03-10", "", ""), &times)
	if len(times) != 24 {
		t.Fatalf("unknown coach should get the full grid, got %d", len(times))
	}
}

func TestCreateBookingEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp := do(t, app, http.MethodPost, "/api/v1/bookings", aliceBooking, "")
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var body envelope
	decode(t, resp, &body)
	var data struct {
		Booking model.Booking        `json:"booking"`
		Summary model.BookingSummary `json:"summary"`
	}
	if err := json.Unmarshal(body.Data, &data); err != nil {
		t.Fatalf("data: %v", err)
	}
	if data.Summary.Coach != "Coach A" || data.Summary.Time != "10:00" || data.Booking.ID == 0 {
		t.Fatalf("unexpected confirmation: %+v", data)
	}

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"too close", strings.Replace(aliceBooking, `"minute":"00"`, `"minute":"30"`, 1), http.StatusConflict},
		{"unknown coach", strings.Replace(aliceBooking, `"coachId":"1"`, `"coachId":"9"`, 1), http.StatusBadRequest},
		{"off grid", strings.Replace(aliceBooking, `"hour":"10"`, `"hour":"21"`, 1), http.StatusBadRequest},
		{"missing phone", strings.Replace(aliceBooking, `"phone":"0912345678"`, `"phone":""`, 1), http.StatusBadRequest},
		{"bad json", `{"coachId":`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if resp := do(t, app, http.MethodPost, "/api/v1/bookings", tt.body, ""); resp.StatusCode != tt.status {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.status)
			}
		})
	}
}

func TestBookingQR(t *testing.T) {
	app := newTestApp(t)
	do(t, app, http.MethodPost, "/api/v1/bookings", aliceBooking, "")

	resp := do(t, app, http.MethodGet, "/api/v1/bookings/1/qr", "", "")
	if resp.StatusCode != http.StatusOK || resp.Header.Get(fiber.HeaderContentType) != "image/png" {
		t.Fatalf("status = %d, type = %s", resp.StatusCode, resp.Header.Get(fiber.HeaderContentType))
	}
	if resp := do(t, app, http.MethodGet, "/api/v1/bookings/42/qr", "", ""); resp.StatusCode != http.StatusNotFound {
		t.Fatalf("missing booking status = %d", resp.StatusCode)
	}
}

func TestAdminRoutesRequireToken(t *testing.T) {
	app := newTestApp(t)

	if resp := do(t, app, http.MethodGet, "/api/v1/admin/bookings", "", ""); resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("no token status = %d", resp.StatusCode)
	}
	if resp := do(t, app, http.MethodGet, "/api/v1/admin/bookings", "", "garbage"); resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("bad token status = %d", resp.StatusCode)
	}
	if resp := do(t, app, http.MethodGet, "/api/v1/admin/bookings", "", adminToken(t)); resp.StatusCode != http.StatusOK {
		t.Fatalf("valid token status = %d", resp.StatusCode)
	}
}

func TestLogin(t *testing.T) {
	app := newTestApp(t)
	hash, err := helper.HashPassword("s3cret")
	if err != nil {
		t.Fatal(err)
	}
	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_PASSWORD_HASH", hash)

	resp := do(t, app, http.MethodPost, "/api/v1/auth/login", `{"username":"admin","password":"s3cret"}`, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if !strings.Contains(resp.Header.Get("Set-Cookie"), "access_token=") {
		t.Fatalf("no access_token cookie: %q", resp.Header.Get("Set-Cookie"))
	}

	if resp := do(t, app, http.MethodPost, "/api/v1/auth/login", `{"username":"admin","password":"nope"}`, ""); resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("wrong password status = %d", resp.StatusCode)
	}
	if resp := do(t, app, http.MethodPost, "/api/v1/auth/login", `{"username":"admin"}`, ""); resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing password status = %d", resp.StatusCode)
	}
}

func TestAdminBookingsListExportDelete(t *testing.T) {
	app := newTestApp(t)
	token := adminToken(t)
	do(t, app, http.MethodPost, "/api/v1/bookings", aliceBooking, "")
	do(t, app, http.MethodPost, "/api/v1/bookings", strings.Replace(aliceBooking, `"coachId":"1"`, `"coachId":"2"`, 1), "")

	var body envelope
	decode(t, do(t, app, http.MethodGet, "/api/v1/admin/bookings?coach=Coach%20B", "", token), &body)
	var list struct {
		Rows []model.Booking `json:"rows"`
	}
	if err := json.Unmarshal(body.Data, &list); err != nil {
		t.Fatalf("data: %v", err)
	}
	if len(list.Rows) != 1 || list.Rows[0].Coach != "Coach B" {
		t.Fatalf("filter returned %+v", list.Rows)
	}

	resp := do(t, app, http.MethodGet, "/api/v1/admin/bookings/export?coach=Coach%20A", "", token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("export status = %d", resp.StatusCode)
	}
	if cd := resp.Header.Get(fiber.HeaderContentDisposition); !strings.Contains(cd, `filename="bookings-coach-a.csv"`) {
		t.Fatalf("Content-Disposition = %q", cd)
	}
	raw, _ := io.ReadAll(resp.Body)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "id,coach,date") {
		t.Fatalf("csv = %q", raw)
	}

	if resp := do(t, app, http.MethodDelete, "/api/v1/admin/bookings/1", "", token); resp.StatusCode != http.StatusOK {
		t.Fatalf("delete status = %d", resp.StatusCode)
	}
	if resp := do(t, app, http.MethodDelete, "/api/v1/admin/bookings/1", "", token); resp.StatusCode != http.StatusNotFound {
		t.Fatalf("second delete status = %d", resp.StatusCode)
	}
	if resp := do(t, app, http.MethodDelete, "/api/v1/admin/bookings/abc", "", token); resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad id status = %d", resp.StatusCode)
	}
}

func TestHistoryLookupAndUpdate(t *testing.T) {
	app := newTestApp(t)
	do(t, app, http.MethodPost, "/api/v1/bookings", aliceBooking, "")

	var body envelope
	decode(t, do(t, app, http.MethodPost, "/api/v1/history", `{"name":"Alice Chen","birthday":"1990-05-17"}`, ""), &body)
	var history model.MemberHistory
	if err := json.Unmarshal(body.Data, &history); err != nil {
		t.Fatalf("data: %v", err)
	}
	if history.Member == nil || len(history.Records) != 1 {
		t.Fatalf("history = %+v", history)
	}

	decode(t, do(t, app, http.MethodPost, "/api/v1/history", `{"name":" Alice Chen  ","birthday":"1990-05-17"}`, ""), &body)
	padded := model.MemberHistory{}
	if err := json.Unmarshal(body.Data, &padded); err != nil {
		t.Fatalf("data: %v", err)
	}
	if padded.Member == nil || len(padded.Records) != 1 {
		t.Fatalf("padded name lookup = %+v", padded)
	}

	update := `{"oldName":"Alice Chen","oldBirthday":"1990-05-17","name":"Alice Wang","birthday":"1990-05-17","phone":"0987"}`
	resp := do(t, app, http.MethodPut, "/api/v1/history", update, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update status = %d", resp.StatusCode)
	}

	decode(t, do(t, app, http.MethodPost, "/api/v1/history", `{"name":"Alice Chen","birthday":"1990-05-17"}`, ""), &body)
	history = model.MemberHistory{}
	_ = json.Unmarshal(body.Data, &history)
	if history.Member != nil || len(history.Records) != 0 {
		t.Fatalf("old identity still has data: %+v", history)
	}

	if resp := do(t, app, http.MethodPut, "/api/v1/history", update, ""); resp.StatusCode != http.StatusNotFound {
		t.Fatalf("stale identity status = %d", resp.StatusCode)
	}
	missing := `{"oldName":"Alice Wang","oldBirthday":"1990-05-17","name":"","birthday":"1990-05-17"}`
	if resp := do(t, app, http.MethodPut, "/api/v1/history", missing, ""); resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("blank name status = %d", resp.StatusCode)
	}
}

func TestAdminMemberEditConflict(t *testing.T) {
	app := newTestApp(t)
	token := adminToken(t)
	do(t, app, http.MethodPost, "/api/v1/bookings", aliceBooking, "")
	bob := strings.NewReplacer(`"Alice Chen"`, `"Bob Lin"`, `"1990-05-17"`, `"1985-11-02"`, `"hour":"10"`, `"hour":"14"`).Replace(aliceBooking)
	do(t, app, http.MethodPost, "/api/v1/bookings", bob, "")

	resp := do(t, app, http.MethodPut, "/api/v1/admin/members/1", `{"name":"Bob Lin","birthday":"1985-11-02"}`, token)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("status = %d, want 409", resp.StatusCode)
	}
	if resp := do(t, app, http.MethodPut, "/api/v1/admin/members/99", `{"name":"X","birthday":"2000-01-01"}`, token); resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown member status = %d", resp.StatusCode)
	}
	if resp := do(t, app, http.MethodGet, "/api/v1/admin/members?keyword=Bob", "", token); resp.StatusCode != http.StatusOK {
		t.Fatalf("list status = %d", resp.StatusCode)
	}
}

func TestAdminCalendarAndDay(t *testing.T) {
	app := newTestApp(t)
	token := adminToken(t)
	do(t, app, http.MethodPost, "/api/v1/bookings", aliceBooking, "")

	var body envelope
	decode(t, do(t, app, http.MethodGet, "/api/v1/admin/calendar?year=2025&month=3", "", token), &body)
	var month model.MonthView
	if err := json.Unmarshal(body.Data, &month); err != nil {
		t.Fatalf("data: %v", err)
	}
	if len(month.EventsByDate["2025-03-10"]) != 1 {
		t.Fatalf("events = %+v", month.EventsByDate)
	}

	decode(t, do(t, app, http.MethodGet, "/api/v1/admin/day?date=2025-03-10&coach=Coach%20A", "", token), &body)
	var day model.DayView
	if err := json.Unmarshal(body.Data, &day); err != nil {
		t.Fatalf("data: %v", err)
	}
	if day.BookingsByTime["10:00"].ClientName != "Alice Chen" {
		t.Fatalf("day = %+v", day)
	}

	if resp := do(t, app, http.MethodGet, "/api/v1/admin/day?coach=Nobody", "", token); resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("unknown coach status = %d", resp.StatusCode)
	}
	if resp := do(t, app, http.MethodGet, "/api/v1/admin/calendar?month=13", "", token); resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad month status = %d", resp.StatusCode)
	}
}
