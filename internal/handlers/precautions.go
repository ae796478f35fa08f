package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"womencare-server/internal/services"
	"womencare-server/internal/utils"
)

// PrecautionsHandler handles the health questionnaire submission.
type PrecautionsHandler struct {
	Intake *services.IntakeService
	Log    zerolog.Logger
}

// NewPrecautionsHandler creates a new PrecautionsHandler.
func NewPrecautionsHandler(intake *services.IntakeService, log zerolog.Logger) *PrecautionsHandler {
	return &PrecautionsHandler{Intake: intake, Log: log}
}

// PrecautionsRequest represents the flat intake form submission. Every field
// is optional; the form is accepted and stored as-is.
type PrecautionsRequest struct {
	FullName              string `form:"fullName" json:"fullName"`
	Age                   string `form:"age" json:"age"`
	Weight                string `form:"weight" json:"weight"`
	Height                string `form:"height" json:"height"`
	Contact               string `form:"contact" json:"contact"`
	EmergencyContact      string `form:"emergencyContact" json:"emergencyContact"`
	GestationalAge        string `form:"gestationalAge" json:"gestationalAge"`
	Gravida               string `form:"gravida" json:"gravida"`
	Para                  string `form:"para" json:"para"`
	PreviousComplications string `form:"previousComplications" json:"previousComplications"`
	ChronicConditions     string `form:"chronicConditions" json:"chronicConditions"`
	Allergies             string `form:"allergies" json:"allergies"`
	Medications           string `form:"medications" json:"medications"`

	Nausea        string `form:"nausea" json:"nausea"`
	Swelling      string `form:"swelling" json:"swelling"`
	Fatigue       string `form:"fatigue" json:"fatigue"`
	Cramps        string `form:"cramps" json:"cramps"`
	Breath        string `form:"breath" json:"breath"`
	FetalMovement string `form:"fetalMovement" json:"fetalMovement"`

	Diet        string `form:"diet" json:"diet"`
	WaterIntake string `form:"waterIntake" json:"waterIntake"`
	Exercise    string `form:"exercise" json:"exercise"`
	Smoking     string `form:"smoking" json:"smoking"`

	Hemoglobin string `form:"hemoglobin" json:"hemoglobin"`
	BP         string `form:"bp" json:"bp"`
	Sugar      string `form:"sugar" json:"sugar"`
	Urine      string `form:"urine" json:"urine"`
	Ultrasound string `form:"ultrasound" json:"ultrasound"`

	Risk            string `form:"risk" json:"risk"`
	Suggestions     string `form:"suggestions" json:"suggestions"`
	NextAppointment string `form:"nextAppointment" json:"nextAppointment"`
}

// Submit stores the questionnaire and renders the suggestions confirmation
// with the saved record.
func (h *PrecautionsHandler) Submit(c *gin.Context) {
	var req PrecautionsRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.BadRequest(c, "Invalid precautions form: "+err.Error())
		return
	}

	personal, err := h.Intake.Submit(c.Request.Context(), services.IntakeForm{
		FullName:              req.FullName,
		Age:                   req.Age,
		Weight:                req.Weight,
		Height:                req.Height,
		Contact:               req.Contact,
		EmergencyContact:      req.EmergencyContact,
		GestationalAge:        req.GestationalAge,
		Gravida:               req.Gravida,
		Para:                  req.Para,
		PreviousComplications: req.PreviousComplications,
		ChronicConditions:     req.ChronicConditions,
		Allergies:             req.Allergies,
		Medications:           req.Medications,
		Nausea:                req.Nausea,
		Swelling:              req.Swelling,
		Fatigue:               req.Fatigue,
		Cramps:                req.Cramps,
		Breath:                req.Breath,
		FetalMovement:         req.FetalMovement,
		Diet:                  req.Diet,
		WaterIntake:           req.WaterIntake,
		Exercise:              req.Exercise,
		Smoking:               req.Smoking,
		Hemoglobin:            req.Hemoglobin,
		BP:                    req.BP,
		Sugar:                 req.Sugar,
		Urine:                 req.Urine,
		Ultrasound:            req.Ultrasound,
		Risk:                  req.Risk,
		Suggestions:           req.Suggestions,
		NextAppointment:       req.NextAppointment,
	})
	if err != nil {
		h.Log.Error().Err(err).Msg("precautions submit failed")
		utils.InternalServerError(c)
		return
	}

	utils.Created(c, "Precautions saved", personal)
}
