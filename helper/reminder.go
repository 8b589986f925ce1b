package helper

import (
	"fmt"
	"time"

	"studio_booking/model"
	"studio_booking/utils"

	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"
)

var reminderScheduler gocron.Scheduler

type ReminderSender func(to string, data utils.BookingReminderData) error

func ReminderData(b model.Booking) utils.BookingReminderData {
	return utils.BookingReminderData{
		ClientName: b.ClientName,
		Coach:      b.Coach,
		Date:       b.Date.String(),
		Time:       b.Time,
		CourseType: b.CourseType,
		Note:       b.Note,
	}
}

// SendReminders mails every client with an email address booked on day and
// returns how many mails went out. A failed send is logged and skipped.
func SendReminders(db *gorm.DB, day utils.CustomDate, send ReminderSender) (int, error) {
	var bookings []model.Booking
	err := db.Where("date = ? AND email <> ''", day).
		Order("start_minute ASC").
		Find(&bookings).Error
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, b := range bookings {
		if err := send(b.Email, ReminderData(b)); err != nil {
			utils.Logger.Warn().Err(err).Uint("bookingId", b.ID).Msg("reminder not sent")
			continue
		}
		sent++
	}
	return sent, nil
}

// StartReminderScheduler runs a daily job at the "H:MM" time at, mailing the
// clients booked for the following day.
func StartReminderScheduler(db *gorm.DB, smtp utils.SMTPConfig, at string, loc *time.Location) error {
	if !smtp.Enabled() {
		utils.Logger.Info().Msg("SMTP not configured, booking reminders disabled")
		return nil
	}

	minutes, err := ParseClock(at)
	if err != nil {
		return fmt.Errorf("reminder time: %w", err)
	}

	s, err := gocron.NewScheduler(gocron.WithLocation(loc))
	if err != nil {
		return err
	}

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(uint(minutes/60), uint(minutes%60), 0),
			),
		),
		gocron.NewTask(func() {
			day := Today(loc).AddDays(1)
			sent, err := SendReminders(db, day, func(to string, data utils.BookingReminderData) error {
				return utils.SendBookingReminderEmail(smtp, to, data)
			})
			if err != nil {
				utils.Logger.Error().Err(err).Str("date", day.String()).Msg("[CRON] reminders failed")
				return
			}
			utils.Logger.Info().Int("sent", sent).Str("date", day.String()).Msg("[CRON] reminders sent")
		}),
	)
	if err != nil {
		return err
	}

	s.Start()
	reminderScheduler = s
	utils.Logger.Info().Str("at", at).Str("tz", loc.String()).Msg("booking reminder scheduler started")
	return nil
}

func StopReminderScheduler() {
	if reminderScheduler != nil {
		if err := reminderScheduler.Shutdown(); err != nil {
			utils.Logger.Warn().Err(err).Msg("reminder scheduler shutdown")
		}
		utils.Logger.Info().Msg("booking reminder scheduler stopped")
	}
}
