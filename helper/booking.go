package helper

import (
	"errors"
	"fmt"
	"strings"

	"studio_booking/config"
	"studio_booking/constants"
	"studio_booking/model"
	"studio_booking/utils"

	"gorm.io/gorm"
)

// AvailableTimes returns the grid slots a coach can still take on date.
// A missing or unknown coach, or an unreadable date, yields the whole grid:
// the listing only pre-filters the form, CreateBooking does the enforcing.
func AvailableTimes(db *gorm.DB, roster config.Roster, coachID, date string) ([]string, error) {
	grid := TimeGrid()
	if coachID == "" || date == "" {
		return grid, nil
	}
	coach, ok := roster.CoachByID(coachID)
	if !ok {
		return grid, nil
	}
	day, err := utils.ParseDate(date)
	if err != nil {
		return grid, nil
	}

	ctx := db.Statement.Context
	gen, cacheable := Slots.Generation(ctx, coach.Name, day)
	if cacheable {
		if cached, ok := Slots.Get(ctx, coach.Name, day, gen); ok {
			return cached, nil
		}
	}

	booked, err := bookedMinutes(db, coach.Name, day)
	if err != nil {
		return nil, err
	}
	available := FilterAvailable(grid, booked)
	if cacheable {
		Slots.Set(ctx, coach.Name, day, gen, available)
	}
	return available, nil
}

// CheckConflict applies the one-hour rule to minute against what is stored
// for (coach, date).
func CheckConflict(db *gorm.DB, coach string, date utils.CustomDate, minute int) error {
	booked, err := bookedMinutes(db, coach, date)
	if err != nil {
		return err
	}
	if HasConflict(minute, booked) {
		return ErrSlotConflict
	}
	return nil
}

func bookedMinutes(db *gorm.DB, coach string, date utils.CustomDate) ([]int, error) {
	var minutes []int
	err := db.Model(&model.Booking{}).
		Where("coach = ? AND date = ?", coach, date).
		Pluck("start_minute", &minutes).Error
	if err != nil {
		return nil, fmt.Errorf("load bookings for %s on %s: %w", coach, date, err)
	}
	return minutes, nil
}

// lockCoachDay serialises submissions for one coach and day until the
// transaction ends. Other dialects rely on the unique slot index.
func lockCoachDay(tx *gorm.DB, coach string, date utils.CustomDate) error {
	if tx.Dialector.Name() != "postgres" {
		return nil
	}
	return tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", coach+"|"+date.String()).Error
}

// CreateBooking validates a submission, stores it and refreshes the member
// record of the client, all in one transaction.
func CreateBooking(db *gorm.DB, roster config.Roster, req model.BookingRequest) (model.Booking, error) {
	if utils.AnyBlank(req.CoachId, req.Hour, req.Minute, req.ClientName, req.Phone, req.CourseType) ||
		req.Date.IsZero() || req.Birthday.IsZero() {
		return model.Booking{}, ErrMissingRequiredField
	}

	coach, ok := roster.CoachByID(req.CoachId)
	if !ok {
		return model.Booking{}, ErrUnknownCoach
	}

	minute, err := ClockFromParts(req.Hour, req.Minute)
	if err != nil || !IsGridMinute(minute) {
		return model.Booking{}, ErrInvalidSlot
	}

	booking := model.Booking{
		Coach:       coach.Name,
		Date:        req.Date,
		Time:        FormatClock(minute),
		StartMinute: minute,
		Note:        strings.TrimSpace(req.Note),
		ClientName:  strings.TrimSpace(req.ClientName),
		Phone:       strings.TrimSpace(req.Phone),
		Email:       strings.TrimSpace(req.Email),
		Gender:      strings.TrimSpace(req.Gender),
		Birthday:    req.Birthday,
		LineId:      strings.TrimSpace(req.LineId),
		CourseType:  strings.TrimSpace(req.CourseType),
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := lockCoachDay(tx, booking.Coach, booking.Date); err != nil {
			return err
		}
		if err := CheckConflict(tx, booking.Coach, booking.Date, minute); err != nil {
			return err
		}
		if err := tx.Create(&booking).Error; err != nil {
			if IsUniqueViolation(err) || IsExclusionViolation(err) {
				return ErrSlotConflict
			}
			return err
		}
		_, err := UpsertMember(tx, model.MemberProfile{
			Name:     booking.ClientName,
			Birthday: booking.Birthday,
			Phone:    booking.Phone,
			Email:    booking.Email,
			Gender:   booking.Gender,
			LineId:   booking.LineId,
		})
		return err
	})
	if err != nil {
		return model.Booking{}, err
	}

	Slots.Invalidate(db.Statement.Context, booking.Coach, booking.Date)
	return booking, nil
}

func Summary(b model.Booking) model.BookingSummary {
	return model.BookingSummary{
		ClientName: b.ClientName,
		Coach:      b.Coach,
		Date:       b.Date.String(),
		Time:       b.Time,
		CourseType: b.CourseType,
		Note:       b.Note,
	}
}

func FindBookings(db *gorm.DB, coach string, date utils.CustomDate) ([]model.Booking, error) {
	var bookings []model.Booking
	err := db.Where("coach = ? AND date = ?", coach, date).
		Order("start_minute ASC").
		Find(&bookings).Error
	return bookings, err
}

// FindBookingsByFilters backs the admin list. Empty or "all" disables a filter.
func FindBookingsByFilters(db *gorm.DB, filter model.BookingFilter) ([]model.Booking, error) {
	query := db.Model(&model.Booking{})

	if filter.Coach != "" && filter.Coach != constants.FILTER_ALL {
		query = query.Where("coach = ?", filter.Coach)
	}
	if filter.Date != "" {
		day, err := utils.ParseDate(filter.Date)
		if err != nil {
			return nil, err
		}
		query = query.Where("date = ?", day)
	}
	if filter.CourseType != "" && filter.CourseType != constants.FILTER_ALL {
		query = query.Where("course_type = ?", filter.CourseType)
	}
	if name := strings.TrimSpace(filter.ClientName); name != "" {
		query = query.Where("client_name LIKE ? ESCAPE '\\'", containsPattern(name))
	}

	var bookings []model.Booking
	err := query.Order("date ASC, start_minute ASC, id ASC").Find(&bookings).Error
	return bookings, err
}

func FindBookingsInRange(db *gorm.DB, start, end utils.CustomDate) ([]model.Booking, error) {
	var bookings []model.Booking
	err := db.Where("date BETWEEN ? AND ?", start, end).
		Order("date ASC, start_minute ASC").
		Find(&bookings).Error
	return bookings, err
}

// FindBookingsByIdentity lists a client's bookings, newest first.
func FindBookingsByIdentity(db *gorm.DB, name string, birthday utils.CustomDate) ([]model.Booking, error) {
	var bookings []model.Booking
	err := db.Where("client_name = ? AND birthday = ?", name, birthday).
		Order("date DESC, start_minute DESC").
		Find(&bookings).Error
	return bookings, err
}

func GetBooking(db *gorm.DB, id uint) (model.Booking, error) {
	var booking model.Booking
	if err := db.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Booking{}, ErrNotFound
		}
		return model.Booking{}, err
	}
	return booking, nil
}

// DeleteBooking removes one booking and reports ErrNotFound when nothing matched.
func DeleteBooking(db *gorm.DB, id uint) (model.Booking, error) {
	booking, err := GetBooking(db, id)
	if err != nil {
		return model.Booking{}, err
	}
	res := db.Delete(&model.Booking{}, id)
	if res.Error != nil {
		return model.Booking{}, res.Error
	}
	if res.RowsAffected == 0 {
		return model.Booking{}, ErrNotFound
	}
	Slots.Invalidate(db.Statement.Context, booking.Coach, booking.Date)
	return booking, nil
}
