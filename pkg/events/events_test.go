package events

import (
	"context"
	"testing"
)

func TestSubject(t *testing.T) {
	tests := []struct {
		prefix, event, want string
	}{
		{"dochouse", AppointmentBooked, "dochouse.appointment.booked"},
		{"dochouse.", AppointmentCancelled, "dochouse.appointment.cancelled"},
		{"", AppointmentBooked, "appointment.booked"},
	}
	for _, tt := range tests {
		if got := Subject(tt.prefix, tt.event); got != tt.want {
			t.Errorf("Subject(%q, %q) = %q, want %q", tt.prefix, tt.event, got, tt.want)
		}
	}
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = Nop{}
	if err := p.Publish(context.Background(), AppointmentBooked, AppointmentEvent{}); err != nil {
		t.Errorf("Nop.Publish() error = %v", err)
	}
}
