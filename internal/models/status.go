package models

// EntityStatus is the lifecycle state shared by all top-level entities.
// DISABLE is terminal: there is no re-enable transition.
type EntityStatus int

const (
	StatusDisable EntityStatus = 0
	StatusActive  EntityStatus = 1
)
