package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Company is the business profile of a tenant: letterhead identity, GST
// registration and bank details consumed by invoice/report rendering.
type Company struct {
	Id          string `json:"id" gorm:"primaryKey"`
	CompanyName string `json:"company_name" gorm:"not null;unique"`
	Address     string `json:"address" gorm:"not null"`
	City        string `json:"city" gorm:"not null"`
	State       string `json:"state" gorm:"not null"`
	Pincode     string `json:"pincode" gorm:"not null"`
	GSTIN       string `json:"gstin"`
	PAN         string `json:"pan"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	BankName    string `json:"bank_name"`
	AccountNo   string `json:"account_no"`
	IFSC        string `json:"ifsc"`
	LogoURL     string `json:"logo_url"`
	UserId      string `json:"-"`
	User        User   `json:"user" gorm:"foreignKey:UserId;references:Id"`
	SchemaName  string `json:"-"`
}

func (company *Company) BeforeCreate(tx *gorm.DB) (err error) {
	// UUID version 4
	company.Id = uuid.NewString()
	return
}
