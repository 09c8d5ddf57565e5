package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

// La máquina de estados de la cita: pending -> {confirmed, completed, cancelled},
// confirmed -> {completed, cancelled}; completed y cancelled son terminales.
func TestAppointmentStatus_Transiciones(t *testing.T) {
	cases := []struct {
		from    entity.AppointmentStatus
		to      entity.AppointmentStatus
		allowed bool
	}{
		{entity.StatusPending, entity.StatusConfirmed, true},
		{entity.StatusPending, entity.StatusCompleted, true},
		{entity.StatusPending, entity.StatusCancelled, true},
		{entity.StatusConfirmed, entity.StatusCompleted, true},
		{entity.StatusConfirmed, entity.StatusCancelled, true},
		{entity.StatusConfirmed, entity.StatusPending, false},
		{entity.StatusCompleted, entity.StatusCancelled, false},
		{entity.StatusCompleted, entity.StatusPending, false},
		{entity.StatusCancelled, entity.StatusCompleted, false},
		{entity.StatusCancelled, entity.StatusConfirmed, false},
		{entity.StatusPending, entity.AppointmentStatus("archived"), false},
	}
	for _, tc := range cases {
		got := tc.from.CanTransitionTo(tc.to)
		assert.Equal(t, tc.allowed, got, "%s -> %s", tc.from, tc.to)
	}
}

func TestAppointmentStatus_Terminales(t *testing.T) {
	assert.False(t, entity.StatusPending.IsTerminal())
	assert.False(t, entity.StatusConfirmed.IsTerminal())
	assert.True(t, entity.StatusCompleted.IsTerminal())
	assert.True(t, entity.StatusCancelled.IsTerminal())
}

func TestAppointment_TotalUnits_SumaEntera(t *testing.T) {
	apt := &entity.Appointment{
		Items: []entity.LineItem{
			{ItemID: "a", ItemName: "A4 Bond Paper", Quantity: 50},
			{ItemID: "b", ItemName: "HP Printer", Quantity: 3},
		},
	}
	assert.Equal(t, int64(53), apt.TotalUnits())

	vacia := &entity.Appointment{}
	assert.Equal(t, int64(0), vacia.TotalUnits())
}
