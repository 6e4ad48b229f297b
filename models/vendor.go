package models

// Vendor is a supplier the tenant buys from. TDSApplicable marks vendors
// whose payments attract withholding under a linked TDS rule.
type Vendor struct {
	Id            uint   `json:"id" gorm:"primaryKey"`
	Name          string `json:"name" gorm:"not null;unique"`
	Email         string `json:"email" gorm:"unique;not null"`
	PhoneNumber   string `json:"phone_number"`
	Address       string `json:"address"`
	State         string `json:"state"`
	GSTIN         string `json:"gstin"`
	TDSApplicable bool   `json:"tds_applicable"`
}
