package database

import (
	"time"

	"studio_booking/model"
	"studio_booking/utils"

	"gorm.io/gorm"
)

// SeedData fills an empty database with a few members and their bookings for
// the coming days. Seeded times keep the one-hour gap per coach.
func SeedData(db *gorm.DB) {
	var count int64
	if err := db.Model(&model.Booking{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	now := time.Now()
	today := utils.NewDate(now.Year(), now.Month(), now.Day())

	members := []model.Member{
		{Name: "Alice Chen", Birthday: utils.NewDate(1990, time.May, 17), Phone: "0912000001", Email: "alice@example.com", Gender: "F"},
		{Name: "Bob Lin", Birthday: utils.NewDate(1985, time.November, 2), Phone: "0912000002", Gender: "M", LineId: "boblin"},
	}
	for i := range members {
		if err := db.Where(model.Member{Name: members[i].Name, Birthday: members[i].Birthday}).FirstOrCreate(&members[i]).Error; err != nil {
			utils.Logger.Warn().Err(err).Str("member", members[i].Name).Msg("failed to seed member")
		}
	}

	bookings := []model.Booking{
		{Coach: "Coach A", Date: today.AddDays(1), Time: "10:00", StartMinute: 600, CourseType: "Beginner Training"},
		{Coach: "Coach A", Date: today.AddDays(1), Time: "14:30", StartMinute: 870, CourseType: "Core Improvement"},
		{Coach: "Coach B", Date: today.AddDays(2), Time: "9:00", StartMinute: 540, CourseType: "Strength Training"},
	}
	for i := range bookings {
		m := members[i%len(members)]
		bookings[i].ClientName = m.Name
		bookings[i].Birthday = m.Birthday
		bookings[i].Phone = m.Phone
		bookings[i].Email = m.Email
		bookings[i].Gender = m.Gender
		bookings[i].LineId = m.LineId
		if err := db.Create(&bookings[i]).Error; err != nil {
			utils.Logger.Warn().Err(err).Msg("failed to seed booking")
		}
	}
	utils.Logger.Info().Int("bookings", len(bookings)).Msg("demo data seeded")
}
