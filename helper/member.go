package helper

import (
	"errors"
	"strings"

	"studio_booking/model"
	"studio_booking/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UpsertMember creates the member for (Name, Birthday) or overwrites its
// contact fields with the ones given, empty values included.
func UpsertMember(tx *gorm.DB, p model.MemberProfile) (model.Member, error) {
	p = trimProfile(p)
	if p.Name == "" || p.Birthday.IsZero() {
		return model.Member{}, ErrMissingRequiredField
	}

	member := model.Member{
		Name:     p.Name,
		Birthday: p.Birthday,
		Phone:    p.Phone,
		Email:    p.Email,
		Gender:   p.Gender,
		LineId:   p.LineId,
	}
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}, {Name: "birthday"}},
		DoUpdates: clause.AssignmentColumns([]string{"phone", "email", "gender", "line_id", "updated_at"}),
	}).Create(&member).Error
	if err != nil {
		if IsUniqueViolation(err) {
			return model.Member{}, ErrIdentityConflict
		}
		return model.Member{}, err
	}

	stored, err := FindMember(tx, p.Name, p.Birthday)
	if err != nil {
		return model.Member{}, err
	}
	if stored == nil {
		return model.Member{}, ErrNotFound
	}
	return *stored, nil
}

// FindMember returns nil when no member has the identity.
func FindMember(db *gorm.DB, name string, birthday utils.CustomDate) (*model.Member, error) {
	var member model.Member
	err := db.Where("name = ? AND birthday = ?", name, birthday).First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

// FindMemberConflict looks for a member other than excludingID holding the identity.
func FindMemberConflict(db *gorm.DB, excludingID uint, name string, birthday utils.CustomDate) (*model.Member, error) {
	var member model.Member
	err := db.Where("id <> ? AND name = ? AND birthday = ?", excludingID, name, birthday).First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func GetMember(db *gorm.DB, id uint) (model.Member, error) {
	var member model.Member
	if err := db.First(&member, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Member{}, ErrNotFound
		}
		return model.Member{}, err
	}
	return member, nil
}

func ListMembers(db *gorm.DB, keyword string) ([]model.Member, error) {
	query := db.Model(&model.Member{})
	if keyword = strings.TrimSpace(keyword); keyword != "" {
		query = query.Where("name LIKE ? ESCAPE '\\'", containsPattern(keyword))
	}
	var members []model.Member
	err := query.Order("name ASC, birthday ASC").Find(&members).Error
	return members, err
}

// EditMember rewrites member id and carries the new identity and contact
// fields over to every booking filed under the old identity. Both writes
// commit together or not at all.
func EditMember(db *gorm.DB, id uint, p model.MemberProfile) (model.MemberEditResult, error) {
	p = trimProfile(p)
	if p.Name == "" || p.Birthday.IsZero() {
		return model.MemberEditResult{}, ErrMissingRequiredField
	}

	var result model.MemberEditResult
	err := db.Transaction(func(tx *gorm.DB) error {
		var member model.Member
		if err := tx.First(&member, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		var err error
		result, err = applyMemberEdit(tx, member, p)
		return err
	})
	return result, err
}

// EditMemberByIdentity is EditMember for callers that only know the current
// (name, birthday) of the member.
func EditMemberByIdentity(db *gorm.DB, oldName string, oldBirthday utils.CustomDate, p model.MemberProfile) (model.MemberEditResult, error) {
	p = trimProfile(p)
	if p.Name == "" || p.Birthday.IsZero() {
		return model.MemberEditResult{}, ErrMissingRequiredField
	}

	var result model.MemberEditResult
	err := db.Transaction(func(tx *gorm.DB) error {
		member, err := FindMember(tx, strings.TrimSpace(oldName), oldBirthday)
		if err != nil {
			return err
		}
		if member == nil {
			return ErrNotFound
		}
		result, err = applyMemberEdit(tx, *member, p)
		return err
	})
	return result, err
}

func applyMemberEdit(tx *gorm.DB, member model.Member, p model.MemberProfile) (model.MemberEditResult, error) {
	conflict, err := FindMemberConflict(tx, member.ID, p.Name, p.Birthday)
	if err != nil {
		return model.MemberEditResult{}, err
	}
	if conflict != nil {
		return model.MemberEditResult{}, ErrIdentityConflict
	}

	oldName, oldBirthday := member.Name, member.Birthday
	err = tx.Model(&model.Member{}).Where("id = ?", member.ID).Updates(map[string]interface{}{
		"name":     p.Name,
		"birthday": p.Birthday,
		"phone":    p.Phone,
		"email":    p.Email,
		"gender":   p.Gender,
		"line_id":  p.LineId,
	}).Error
	if err != nil {
		if IsUniqueViolation(err) {
			return model.MemberEditResult{}, ErrIdentityConflict
		}
		return model.MemberEditResult{}, err
	}

	res := tx.Model(&model.Booking{}).
		Where("client_name = ? AND birthday = ?", oldName, oldBirthday).
		Updates(map[string]interface{}{
			"client_name": p.Name,
			"birthday":    p.Birthday,
			"phone":       p.Phone,
			"email":       p.Email,
			"gender":      p.Gender,
			"line_id":     p.LineId,
		})
	if res.Error != nil {
		return model.MemberEditResult{}, res.Error
	}

	updated, err := GetMember(tx, member.ID)
	if err != nil {
		return model.MemberEditResult{}, err
	}
	return model.MemberEditResult{Member: updated, PropagatedBookings: res.RowsAffected}, nil
}

// containsPattern builds a LIKE pattern matching s literally anywhere in the
// column. Use with ESCAPE '\'.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

func trimProfile(p model.MemberProfile) model.MemberProfile {
	p.Name = strings.TrimSpace(p.Name)
	p.Phone = strings.TrimSpace(p.Phone)
	p.Email = strings.TrimSpace(p.Email)
	p.Gender = strings.TrimSpace(p.Gender)
	p.LineId = strings.TrimSpace(p.LineId)
	return p
}
