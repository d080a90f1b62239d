package models

import "time"

// OfficeSequenceName is the counter used to allocate office ids.
const OfficeSequenceName = "office_sequence"

type Office struct {
	ID        int64        `gorm:"primarykey" json:"id"`
	Name      string       `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Location  string       `gorm:"type:varchar(255);not null" json:"location"`
	Status    EntityStatus `gorm:"not null" json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
