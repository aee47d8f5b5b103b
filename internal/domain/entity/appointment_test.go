package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentStatusValid(t *testing.T) {
	assert.True(t, AppointmentPending.Valid())
	assert.True(t, AppointmentNegotiating.Valid())
	assert.True(t, AppointmentConfirmed.Valid())
	assert.False(t, AppointmentStatus("cancelled").Valid())
	assert.False(t, AppointmentStatus("").Valid())
}

func TestAppointmentTransitions(t *testing.T) {
	cases := []struct {
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{AppointmentPending, AppointmentNegotiating, true},
		{AppointmentPending, AppointmentConfirmed, true},
		{AppointmentNegotiating, AppointmentNegotiating, true},
		{AppointmentNegotiating, AppointmentConfirmed, true},
		// A message on a confirmed appointment re-opens negotiation.
		{AppointmentConfirmed, AppointmentNegotiating, true},
		{AppointmentConfirmed, AppointmentConfirmed, false},
		{AppointmentConfirmed, AppointmentPending, false},
		{AppointmentNegotiating, AppointmentPending, false},
		{AppointmentPending, "cancelled", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransition(tc.to), "%s -> %s", tc.from, tc.to)
	}
}
