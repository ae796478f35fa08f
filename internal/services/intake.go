package services

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"
	"gorm.io/datatypes"

	"womencare-server/internal/models"
	"womencare-server/internal/store"
)

// IntakeService stores submitted health-precautions questionnaires.
type IntakeService struct {
	personals store.PersonalStore
	log       zerolog.Logger
}

// NewIntakeService creates a new IntakeService.
func NewIntakeService(personals store.PersonalStore, log zerolog.Logger) *IntakeService {
	return &IntakeService{personals: personals, log: log}
}

// IntakeForm carries the flat questionnaire fields as submitted. All fields
// are optional; numeric fields that fail to parse are stored as zero.
type IntakeForm struct {
	FullName              string
	Age                   string
	Weight                string
	Height                string
	Contact               string
	EmergencyContact      string
	GestationalAge        string
	Gravida               string
	Para                  string
	PreviousComplications string
	ChronicConditions     string
	Allergies             string
	Medications           string

	Nausea        string
	Swelling      string
	Fatigue       string
	Cramps        string
	Breath        string
	FetalMovement string

	Diet        string
	WaterIntake string
	Exercise    string
	Smoking     string

	Hemoglobin string
	BP         string
	Sugar      string
	Urine      string
	Ultrasound string

	Risk            string
	Suggestions     string
	NextAppointment string
}

// Submit maps the flat form into the nested Personal shape and persists it.
// The stored record is returned for confirmation rendering. Records are not
// linked to the authenticated user.
func (s *IntakeService) Submit(ctx context.Context, form IntakeForm) (*models.Personal, error) {
	personal := models.Personal{
		FullName:              form.FullName,
		Age:                   atoiOrZero(form.Age),
		Weight:                atofOrZero(form.Weight),
		Height:                atofOrZero(form.Height),
		Contact:               form.Contact,
		EmergencyContact:      form.EmergencyContact,
		GestationalAge:        atoiOrZero(form.GestationalAge),
		Gravida:               atoiOrZero(form.Gravida),
		Para:                  atoiOrZero(form.Para),
		PreviousComplications: form.PreviousComplications,
		ChronicConditions:     form.ChronicConditions,
		Allergies:             form.Allergies,
		Medications:           form.Medications,
		Symptoms: datatypes.NewJSONType(models.Symptoms{
			Nausea:        form.Nausea,
			Swelling:      form.Swelling,
			Fatigue:       form.Fatigue,
			Cramps:        form.Cramps,
			Breath:        form.Breath,
			FetalMovement: form.FetalMovement,
		}),
		Lifestyle: datatypes.NewJSONType(models.Lifestyle{
			Diet:        form.Diet,
			WaterIntake: form.WaterIntake,
			Exercise:    form.Exercise,
			Smoking:     form.Smoking,
		}),
		LabResults: datatypes.NewJSONType(models.LabResults{
			Hemoglobin: form.Hemoglobin,
			BP:         form.BP,
			Sugar:      form.Sugar,
			Urine:      form.Urine,
			Ultrasound: form.Ultrasound,
		}),
		DoctorUse: datatypes.NewJSONType(models.DoctorUse{
			Risk:            form.Risk,
			Suggestions:     form.Suggestions,
			NextAppointment: form.NextAppointment,
		}),
	}

	if err := s.personals.Create(ctx, &personal); err != nil {
		return nil, err
	}

	s.log.Info().Str("personalId", personal.ID).Msg("precautions record stored")
	return &personal, nil
}

// atoiOrZero parses an integer form field, returning 0 when it is empty or
// malformed. The intake form accepts and stores partial input as-is.
func atoiOrZero(str string) int {
	val, err := strconv.Atoi(str)
	if err != nil {
		return 0
	}
	return val
}

func atofOrZero(str string) float64 {
	val, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0
	}
	return val
}
