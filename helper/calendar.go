package helper

import (
	"sort"
	"time"

	"studio_booking/config"
	"studio_booking/model"
	"studio_booking/utils"
)

// MonthBounds returns the first and last day of a month.
func MonthBounds(year int, month time.Month) (utils.CustomDate, utils.CustomDate) {
	first := utils.NewDate(year, month, 1)
	last := utils.CustomDate{Time: first.AddDate(0, 1, -1)}
	return first, last
}

// MonthWeeks lays the month out in Monday-first weeks; days outside the
// month are 0.
func MonthWeeks(year int, month time.Month) [][]int {
	first, last := MonthBounds(year, month)
	offset := (int(first.Weekday()) + 6) % 7

	var weeks [][]int
	week := make([]int, 7)
	col := offset
	for day := 1; day <= last.Day(); day++ {
		week[col] = day
		col++
		if col == 7 {
			weeks = append(weeks, week)
			week = make([]int, 7)
			col = 0
		}
	}
	if col > 0 {
		weeks = append(weeks, week)
	}
	return weeks
}

func adjacentMonths(year int, month time.Month) (int, int, int, int) {
	prevYear, prevMonth := year, int(month)-1
	if prevMonth < 1 {
		prevYear, prevMonth = year-1, 12
	}
	nextYear, nextMonth := year, int(month)+1
	if nextMonth > 12 {
		nextYear, nextMonth = year+1, 1
	}
	return prevYear, prevMonth, nextYear, nextMonth
}

func BuildMonthView(roster config.Roster, year int, month time.Month, bookings []model.Booking) model.MonthView {
	sorted := make([]model.Booking, len(bookings))
	copy(sorted, bookings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartMinute < sorted[j].StartMinute
	})

	events := make(map[string][]model.CalendarEvent)
	for _, b := range sorted {
		key := b.Date.String()
		events[key] = append(events[key], model.CalendarEvent{
			Coach:      b.Coach,
			Color:      roster.Color(b.Coach),
			Time:       b.Time,
			ClientName: b.ClientName,
			CourseType: b.CourseType,
		})
	}

	prevYear, prevMonth, nextYear, nextMonth := adjacentMonths(year, month)
	return model.MonthView{
		Year:         year,
		Month:        int(month),
		Weeks:        MonthWeeks(year, month),
		EventsByDate: events,
		CoachColors:  roster.Colors(),
		PrevYear:     prevYear,
		PrevMonth:    prevMonth,
		NextYear:     nextYear,
		NextMonth:    nextMonth,
	}
}

func BuildDayView(roster config.Roster, date utils.CustomDate, coach string, bookings []model.Booking) model.DayView {
	byTime := make(map[string]model.DaySlot, len(bookings))
	for _, b := range bookings {
		byTime[b.Time] = model.DaySlot{ClientName: b.ClientName, CourseType: b.CourseType}
	}
	return model.DayView{
		Date:           date.String(),
		Coach:          coach,
		CoachNames:     roster.CoachNames(),
		TimeSlots:      TimeGrid(),
		BookingsByTime: byTime,
		CoachColor:     roster.Color(coach),
	}
}

// Today is the current calendar date in loc.
func Today(loc *time.Location) utils.CustomDate {
	now := time.Now().In(loc)
	return utils.NewDate(now.Year(), now.Month(), now.Day())
}

// StudioLocation is the time zone the studio's calendar days are counted in.
func StudioLocation() *time.Location {
	name := config.Config("STUDIO_TIMEZONE", "Asia/Taipei")
	loc, err := time.LoadLocation(name)
	if err != nil {
		utils.Logger.Warn().Err(err).Str("tz", name).Msg("unknown STUDIO_TIMEZONE, using UTC")
		return time.UTC
	}
	return loc
}
