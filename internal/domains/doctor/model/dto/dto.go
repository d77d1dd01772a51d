package dto

import (
	"github.com/google/uuid"
	"github.com/lib/pq"

	"medibook/internal/domains/doctor/model"
	"medibook/shared"
	gDto "medibook/shared/dto"
	gModel "medibook/shared/model"
	"medibook/shared/timezone"
)

type CreateDoctorRequest struct {
	Name      string   `json:"name"      validate:"required,max=100"`
	Email     string   `json:"email"     validate:"omitempty,email,max=100"`
	Specialty string   `json:"specialty" validate:"required,max=100"`
	Fee       float64  `json:"fee"       validate:"omitempty,gte=0"`
	Slots     []string `json:"slots"     validate:"required,min=1,dive,max=20"`
	Active    *bool    `json:"active"    validate:"omitempty"`
}

func (c *CreateDoctorRequest) ToModel(user string) model.Doctor {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Doctor{
		ID:        uuid.NewString(),
		Name:      c.Name,
		Email:     c.Email,
		Specialty: c.Specialty,
		Fee:       c.Fee,
		Slots:     pq.StringArray(c.Slots),
		Active:    active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateDoctorRequest struct {
	Name      string   `db:"name"      json:"name"      validate:"omitempty,max=100"`
	Email     string   `db:"email"     json:"email"     validate:"omitempty,email,max=100"`
	Specialty string   `db:"specialty" json:"specialty" validate:"omitempty,max=100"`
	Fee       *float64 `db:"fee"       json:"fee"       validate:"omitempty,gte=0"`
	Active    *bool    `db:"active"    json:"active"    validate:"omitempty"`
}

type DoctorResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email,omitempty"`
	Specialty string   `json:"specialty"`
	Fee       float64  `json:"fee"`
	Slots     []string `json:"slots"`
	Active    bool     `json:"active"`
	gDto.Metadata
}

func (r *DoctorResponse) FromModel(model model.Doctor) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Specialty = model.Specialty
	r.Fee = model.Fee
	r.Slots = []string(model.Slots)
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetDoctorsResponse struct {
	Doctors   []DoctorResponse `json:"doctors"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetDoctorsResponse) FromModels(models []model.Doctor, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Doctors = make([]DoctorResponse, len(models))
	for i, mod := range models {
		r.Doctors[i].FromModel(mod)
	}
}

type SlotAvailability struct {
	Slot      string `json:"slot"`
	Available bool   `json:"available"`
}

type AvailabilityResponse struct {
	DoctorID        string             `json:"doctor_id"`
	AppointmentDate string             `json:"appointment_date"`
	Slots           []SlotAvailability `json:"slots"`
}
