package models

import "time"

// LicenseKey gates registration. A key is issued for one email address and
// can be activated exactly once; activation is recorded, never reversed.
type LicenseKey struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Key         string     `json:"key" gorm:"size:64;uniqueIndex;not null"`
	Email       string     `json:"email" gorm:"not null;index"`
	IssuedAt    time.Time  `json:"issued_at"`
	ActivatedAt *time.Time `json:"activated_at"`
	Used        bool       `json:"used"`
}
