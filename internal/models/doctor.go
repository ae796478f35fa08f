package models

// Doctor is an in-memory reference entry shown alongside the lab list.
// The list is injected at startup and never persisted or mutated.
type Doctor struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Hospital  string `json:"hospital"`
	Contact   string `json:"contact"`
}

// DefaultDoctors returns the built-in doctor reference list.
func DefaultDoctors() []Doctor {
	return []Doctor{
		{ID: "doc1", Name: "Dr. Asha Menon", Specialty: "Obstetrics & Gynaecology", Hospital: "City Maternity Hospital", Contact: "+91-98450-11223"},
		{ID: "doc2", Name: "Dr. Priya Sharma", Specialty: "Maternal-Fetal Medicine", Hospital: "Sunrise Women's Clinic", Contact: "+91-98231-44556"},
		{ID: "doc3", Name: "Dr. Kavitha Rao", Specialty: "Obstetrics", Hospital: "WellWoman Hospital", Contact: "+91-90350-77889"},
		{ID: "doc4", Name: "Dr. Neha Gupta", Specialty: "Gynaecology", Hospital: "MotherCare Centre", Contact: "+91-98700-33445"},
	}
}
