package models

import "time"

// UserAccountSequenceName is the counter used to allocate user account ids.
const UserAccountSequenceName = "account_sequence"

// UserAccount references its team, office, and role by id only; responses
// embed the resolved entities, assembled by the service layer. TeamID 0
// means the account is not assigned to any team.
type UserAccount struct {
	ID        int64        `gorm:"primarykey" json:"id"`
	Name      string       `gorm:"type:varchar(255);not null" json:"name"`
	Email     string       `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone     string       `gorm:"type:varchar(50);uniqueIndex;not null" json:"phone"`
	Status    EntityStatus `gorm:"not null" json:"status"`
	TeamID    int64        `gorm:"index" json:"team_id"`
	OfficeID  int64        `gorm:"index;not null" json:"office_id"`
	RoleID    int64        `gorm:"index;not null" json:"role_id"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
