package constants

const (
	ERROR_INPUT              = "Invalid input"
	ERROR_INTERNAL_ERROR     = "Internal server error"
	DATA_INPUT_IS_NOT_NUMBER = "Id must be a number"

	MISSING_REQUIRED_FIELD = "Please make sure coach, date, time, name, phone, birthday and course type are filled in"
	MISSING_MEMBER_FIELD   = "Name and birthday are required"
	UNKNOWN_COACH          = "Coach does not exist, please choose again"
	INVALID_SLOT           = "Time must be a half-hour slot between 9:00 and 20:30"
	SLOT_CONFLICT          = "This time is already booked or too close to another booking, please choose again"
	IDENTITY_CONFLICT      = "A member with the same name and birthday already exists"
	MEMBER_NOT_FOUND       = "Member not found"
	BOOKING_NOT_FOUND      = "Booking not found"

	BOOKING_CREATED = "Booking created"
	BOOKING_DELETED = "Booking deleted"
	MEMBER_UPDATED  = "Member updated"

	MISSING_LOGIN_INPUT = "Username and password are required"
	INVALID_LOGIN       = "Invalid username or password"
	MISSING_TOKEN       = "Missing token"
	INVALID_TOKEN       = "Invalid token"
)

const (
	DATE_LAYOUT = "2006-01-02"
	FILTER_ALL  = "all"
)
