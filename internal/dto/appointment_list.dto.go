package dto

// AppointmentListDTO is the joined appointment projection served to API
// consumers; dates are already rendered as clinic-local calendar days.
type AppointmentListDTO struct {
	ID              uint   `json:"id"`
	FullName        string `json:"full_name"`
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
	Services        string `json:"services"`
	ClientID        uint   `json:"client_id"`
	Status          string `json:"status"`
}
