package models

// Sequence is a named monotonically increasing counter row. Ids for every
// entity type are allocated from these counters.
type Sequence struct {
	Name string `gorm:"primarykey;type:varchar(100)" json:"name"`
	Seq  int64  `gorm:"not null" json:"seq"`
}
