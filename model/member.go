package model

import "studio_booking/utils"

// Member is the canonical contact record for one (Name, Birthday) identity.
type Member struct {
	DTO
	Name     string           `gorm:"size:100;not null;uniqueIndex:idx_member_identity,priority:1" json:"name"`
	Birthday utils.CustomDate `gorm:"type:date;not null;uniqueIndex:idx_member_identity,priority:2" json:"birthday"`
	Phone    string           `gorm:"size:30" json:"phone"`
	Email    string           `gorm:"size:255" json:"email"`
	Gender   string           `gorm:"size:20" json:"gender"`
	LineId   string           `gorm:"size:100" json:"lineId"`
}

// MemberProfile carries an identity plus the contact fields that travel with it.
type MemberProfile struct {
	Name     string
	Birthday utils.CustomDate
	Phone    string
	Email    string
	Gender   string
	LineId   string
}

type EditMemberInput struct {
	Name     string `json:"name" validate:"max=100"`
	Birthday string `json:"birthday" validate:"omitempty,datetime=2006-01-02"`
	Phone    string `json:"phone" validate:"max=30"`
	Email    string `json:"email" validate:"omitempty,email,max=255"`
	Gender   string `json:"gender" validate:"max=20"`
	LineId   string `json:"lineId" validate:"max=100"`
}

type HistoryUpdateInput struct {
	OldName     string `json:"oldName"`
	OldBirthday string `json:"oldBirthday" validate:"omitempty,datetime=2006-01-02"`
	EditMemberInput
}

type HistoryLookupInput struct {
	Name     string `json:"name" validate:"required,max=100"`
	Birthday string `json:"birthday" validate:"required,datetime=2006-01-02"`
}

type MemberFilter struct {
	Keyword string `query:"keyword"`
}

type MemberHistory struct {
	Name     string    `json:"name"`
	Birthday string    `json:"birthday"`
	Member   *Member   `json:"member"`
	Records  []Booking `json:"records"`
}

type MemberEditResult struct {
	Member             Member `json:"member"`
	PropagatedBookings int64  `json:"propagatedBookings"`
}
