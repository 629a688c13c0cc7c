package models

import "gorm.io/gorm"

// Setting is a global (not per-user) key/value preference, e.g. the
// UI theme.
type Setting struct {
	gorm.Model
	Key   string `gorm:"uniqueIndex;not null"`
	Value string
}
