package models

import (
	"gorm.io/datatypes"
)

// Symptoms groups the self-reported symptom fields of the questionnaire.
type Symptoms struct {
	Nausea        string `json:"nausea"`
	Swelling      string `json:"swelling"`
	Fatigue       string `json:"fatigue"`
	Cramps        string `json:"cramps"`
	Breath        string `json:"breath"`
	FetalMovement string `json:"fetalMovement"`
}

// Lifestyle groups the diet and habit fields of the questionnaire.
type Lifestyle struct {
	Diet        string `json:"diet"`
	WaterIntake string `json:"waterIntake"`
	Exercise    string `json:"exercise"`
	Smoking     string `json:"smoking"`
}

// LabResults groups the self-reported lab values of the questionnaire.
type LabResults struct {
	Hemoglobin string `json:"hemoglobin"`
	BP         string `json:"bp"`
	Sugar      string `json:"sugar"`
	Urine      string `json:"urine"`
	Ultrasound string `json:"ultrasound"`
}

// DoctorUse groups the fields reserved for the attending doctor.
type DoctorUse struct {
	Risk            string `json:"risk"`
	Suggestions     string `json:"suggestions"`
	NextAppointment string `json:"nextAppointment"`
}

// Personal represents one submitted health-precautions questionnaire.
// Records are intentionally not linked to a User: the intake form is open
// and stores whatever was submitted, including partial or empty values.
type Personal struct {
	BaseModel
	FullName              string  `gorm:"size:100" json:"fullName"`
	Age                   int     `json:"age"`
	Weight                float64 `json:"weight"`
	Height                float64 `json:"height"`
	Contact               string  `gorm:"size:50" json:"contact"`
	EmergencyContact      string  `gorm:"size:50" json:"emergencyContact"`
	GestationalAge        int     `json:"gestationalAge"`
	Gravida               int     `json:"gravida"`
	Para                  int     `json:"para"`
	PreviousComplications string  `gorm:"type:text" json:"previousComplications"`
	ChronicConditions     string  `gorm:"type:text" json:"chronicConditions"`
	Allergies             string  `gorm:"type:text" json:"allergies"`
	Medications           string  `gorm:"type:text" json:"medications"`

	Symptoms   datatypes.JSONType[Symptoms]   `json:"symptoms"`
	Lifestyle  datatypes.JSONType[Lifestyle]  `json:"lifestyle"`
	LabResults datatypes.JSONType[LabResults] `json:"labResults"`
	DoctorUse  datatypes.JSONType[DoctorUse]  `json:"doctorUse"`
}
