package models

// Booking represents a reserved appointment slot at a Lab.
// LabID is a soft reference resolved at read time; bookings survive a lab
// being removed from the reference list.
type Booking struct {
	BaseModel
	LabID string `gorm:"size:36;index" json:"labId"`
	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:50" json:"phone,omitempty"`
	Email string `gorm:"size:255" json:"email,omitempty"`
	Date  string `gorm:"size:10;not null" json:"date"` // ISO-8601 calendar date
	Time  string `gorm:"size:20;not null" json:"time"`
	Notes string `gorm:"type:text" json:"notes,omitempty"`
}

// BookingView is a Booking joined with its lab name for the admin list.
type BookingView struct {
	Booking
	LabName string `json:"labName"`
}
