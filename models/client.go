package models

// Client is a billable customer of the tenant business.
type Client struct {
	Id          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"not null;unique"`
	Email       string `json:"email" gorm:"unique;not null"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Pincode     string `json:"pincode"`
	GSTIN       string `json:"gstin"` // optional; unregistered clients have none
	Active      bool   `json:"-"`
}
