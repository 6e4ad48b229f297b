package models

// TDSRule defines the withholding rate for a vendor's payment category,
// e.g. 194C contracts at 2% or 194J professional fees at 10%.
type TDSRule struct {
	Id             uint    `json:"id" gorm:"primaryKey"`
	Category       string  `json:"category" gorm:"not null"`
	Section        string  `json:"section"`
	RatePercentage float64 `json:"rate_percentage" gorm:"not null"`
	VendorId       uint    `json:"vendor_id" gorm:"index"`
	Vendor         Vendor  `json:"-" gorm:"foreignKey:VendorId;references:Id"`
	Active         bool    `json:"active"`
}
