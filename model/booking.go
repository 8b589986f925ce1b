package model

import "studio_booking/utils"

// Booking is one reserved session. Client fields are denormalised copies of
// the member identified by (ClientName, Birthday).
type Booking struct {
	DTO
	Coach       string           `gorm:"size:50;not null;uniqueIndex:idx_booking_slot,priority:1" json:"coach"`
	Date        utils.CustomDate `gorm:"type:date;not null;uniqueIndex:idx_booking_slot,priority:2" json:"date"`
	Time        string           `gorm:"size:5;not null" json:"time"`
	StartMinute int              `gorm:"not null;uniqueIndex:idx_booking_slot,priority:3" json:"startMinute"`
	Note        string           `json:"note"`
	ClientName  string           `gorm:"size:100;not null;index:idx_booking_identity,priority:1" json:"clientName"`
	Phone       string           `gorm:"size:30;not null" json:"phone"`
	Email       string           `gorm:"size:255" json:"email"`
	Gender      string           `gorm:"size:20" json:"gender"`
	Birthday    utils.CustomDate `gorm:"type:date;not null;index:idx_booking_identity,priority:2" json:"birthday"`
	LineId      string           `gorm:"size:100" json:"lineId"`
	CourseType  string           `gorm:"size:50;not null" json:"courseType"`
}

type CreateBookingInput struct {
	CoachId    string `json:"coachId" form:"coach_id" validate:"required"`
	Date       string `json:"date" form:"date" validate:"required,datetime=2006-01-02"`
	Hour       string `json:"hour" form:"hour" validate:"required,numeric"`
	Minute     string `json:"minute" form:"minute" validate:"required,numeric"`
	Note       string `json:"note" form:"note" validate:"max=1000"`
	ClientName string `json:"clientName" form:"client_name" validate:"required,max=100"`
	Phone      string `json:"phone" form:"phone" validate:"required,max=30"`
	Email      string `json:"email" form:"email" validate:"omitempty,email,max=255"`
	Gender     string `json:"gender" form:"gender" validate:"max=20"`
	Birthday   string `json:"birthday" form:"birthday" validate:"required,datetime=2006-01-02"`
	LineId     string `json:"lineId" form:"line_id" validate:"max=100"`
	CourseType string `json:"courseType" form:"course_type" validate:"required"`
}

// BookingRequest is a submission after it has been parsed, before the coach
// and slot have been checked.
type BookingRequest struct {
	CoachId    string
	Date       utils.CustomDate
	Hour       string
	Minute     string
	Note       string
	ClientName string
	Phone      string
	Email      string
	Gender     string
	Birthday   utils.CustomDate
	LineId     string
	CourseType string
}

// BookingSummary is the confirmation shown to the client after submitting.
type BookingSummary struct {
	ClientName string `json:"clientName"`
	Coach      string `json:"coach"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	CourseType string `json:"courseType"`
	Note       string `json:"note"`
}

type AvailableTimesQuery struct {
	CoachId string `query:"coachId"`
	Date    string `query:"date"`
}

type BookingFilter struct {
	Coach      string `query:"coach"`
	Date       string `query:"date" validate:"omitempty,datetime=2006-01-02"`
	CourseType string `query:"courseType"`
	ClientName string `query:"clientName"`
}

type CalendarQuery struct {
	Year  int `query:"year" validate:"omitempty,min=1900,max=9999"`
	Month int `query:"month" validate:"omitempty,min=1,max=12"`
}

type DayQuery struct {
	Date  string `query:"date" validate:"omitempty,datetime=2006-01-02"`
	Coach string `query:"coach"`
}

type CalendarEvent struct {
	Coach      string `json:"coach"`
	Color      string `json:"color"`
	Time       string `json:"time"`
	ClientName string `json:"clientName"`
	CourseType string `json:"courseType"`
}

type MonthView struct {
	Year         int                        `json:"year"`
	Month        int                        `json:"month"`
	Weeks        [][]int                    `json:"weeks"`
	EventsByDate map[string][]CalendarEvent `json:"eventsByDate"`
	CoachColors  map[string]string          `json:"coachColors"`
	PrevYear     int                        `json:"prevYear"`
	PrevMonth    int                        `json:"prevMonth"`
	NextYear     int                        `json:"nextYear"`
	NextMonth    int                        `json:"nextMonth"`
}

type DaySlot struct {
	ClientName string `json:"clientName"`
	CourseType string `json:"courseType"`
}

type DayView struct {
	Date           string             `json:"date"`
	Coach          string             `json:"coach"`
	CoachNames     []string           `json:"coachNames"`
	TimeSlots      []string           `json:"timeSlots"`
	BookingsByTime map[string]DaySlot `json:"bookingsByTime"`
	CoachColor     string             `json:"coachColor"`
}
