package helper

import (
	"fmt"
	"strings"
	"testing"

	"studio_booking/config"
	"studio_booking/database"
	"studio_booking/model"
	"studio_booking/utils"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func mustDate(t *testing.T, s string) utils.CustomDate {
	t.Helper()
	d, err := utils.ParseDate(s)
	if err != nil {
		t.Fatalf("parse date %s: %v", s, err)
	}
	return d
}

var roster = config.Studio()

func bookingRequest(t *testing.T, coachID, date, hour, minute, name, birthday string) model.BookingRequest {
	t.Helper()
	return model.BookingRequest{
		CoachId:    coachID,
		Date:       mustDate(t, date),
		Hour:       hour,
		Minute:     minute,
		ClientName: name,
		Phone:      "0912345678",
		Email:      strings.ToLower(strings.ReplaceAll(name, " ", "")) + "@example.com",
		Birthday:   mustDate(t, birthday),
		CourseType: "Strength Training",
	}
}

func mustBook(t *testing.T, db *gorm.DB, req model.BookingRequest) model.Booking {
	t.Helper()
	b, err := CreateBooking(db, roster, req)
	if err != nil {
		t.Fatalf("CreateBooking(%s %s:%s): %v", req.CoachId, req.Hour, req.Minute, err)
	}
	return b
}
