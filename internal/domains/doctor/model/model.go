package model

import (
	"github.com/lib/pq"

	"medibook/shared/model"
)

const (
	TableName  = "doctors"
	EntityName = "doctor"

	FieldID        = "id"
	FieldName      = "name"
	FieldEmail     = "email"
	FieldSpecialty = "specialty"
	FieldFee       = "fee"
	FieldSlots     = "slots"
	FieldActive    = "active"
)

// Doctor carries the consultation catalog for one practitioner. Slots is the
// full set of slot labels the doctor offers each day; bookings consume them
// per calendar date.
type Doctor struct {
	ID        string         `db:"id"`
	Name      string         `db:"name"`
	Email     string         `db:"email"`
	Specialty string         `db:"specialty"`
	Fee       float64        `db:"fee"`
	Slots     pq.StringArray `db:"slots"`
	Active    bool           `db:"active"`
	model.Metadata
}

// OffersSlot reports whether the slot label belongs to the doctor's catalog.
func (d *Doctor) OffersSlot(slot string) bool {
	for _, s := range d.Slots {
		if s == slot {
			return true
		}
	}

	return false
}
