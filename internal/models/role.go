package models

import "time"

// RoleSequenceName is the counter used to allocate role ids.
const RoleSequenceName = "role_sequence"

type Role struct {
	ID        int64        `gorm:"primarykey" json:"id"`
	Name      string       `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	ShortName string       `gorm:"type:varchar(50);uniqueIndex;not null" json:"short_name"`
	Status    EntityStatus `gorm:"not null" json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
