package models

import (
	"time"

	"gorm.io/datatypes"
)

// Lab represents a diagnostic laboratory users can book slots at.
// Labs carry stable string IDs fixed by the reference dataset; they are
// written only by the startup seed and read-only to end users.
type Lab struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name     string                      `gorm:"size:100;not null" json:"name"`
	Address  string                      `gorm:"size:255" json:"address"`
	Location string                      `gorm:"size:100" json:"location"`
	Phone    string                      `gorm:"size:50" json:"phone,omitempty"`
	Email    string                      `gorm:"size:255" json:"email,omitempty"`
	Rating   float64                     `json:"rating"`
	Reviews  datatypes.JSONSlice[string] `json:"reviews"`
}

// LabSeed returns the fixed reference list of labs. Seeding upserts these
// by ID, so running it any number of times converges to the same records.
func LabSeed() []Lab {
	return []Lab{
		{
			ID:       "lab1",
			Name:     "LifeLine Diagnostics",
			Address:  "12 MG Road",
			Location: "Bengaluru",
			Phone:    "+91-80-4123-5678",
			Email:    "care@lifelinediag.example",
			Rating:   4.6,
			Reviews:  datatypes.NewJSONSlice([]string{"Quick reports", "Friendly staff"}),
		},
		{
			ID:       "lab2",
			Name:     "MotherCare Labs",
			Address:  "45 Park Street",
			Location: "Kolkata",
			Phone:    "+91-33-2287-4410",
			Email:    "hello@mothercarelabs.example",
			Rating:   4.4,
			Reviews:  datatypes.NewJSONSlice([]string{"Clean facility"}),
		},
		{
			ID:       "lab3",
			Name:     "Sunrise Pathology",
			Address:  "8 Nehru Nagar",
			Location: "Pune",
			Phone:    "+91-20-2567-8899",
			Rating:   4.2,
			Reviews:  datatypes.NewJSONSlice([]string{"Affordable packages", "Short waiting time"}),
		},
		{
			ID:       "lab4",
			Name:     "WellWoman Diagnostics",
			Address:  "101 Anna Salai",
			Location: "Chennai",
			Email:    "support@wellwoman.example",
			Rating:   4.8,
			Reviews:  datatypes.NewJSONSlice([]string{"Excellent ultrasound unit"}),
		},
		{
			ID:       "lab5",
			Name:     "Care & Cure Labs",
			Address:  "23 Residency Road",
			Location: "Hyderabad",
			Phone:    "+91-40-6632-1144",
			Rating:   4.1,
			Reviews:  datatypes.NewJSONSlice([]string{"Home sample collection available"}),
		},
	}
}
