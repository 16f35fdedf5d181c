package validator

import "testing"

func TestDomainTags(t *testing.T) {
	type payload struct {
		Type   string `validate:"omitempty,meeting_type"`
		Status string `validate:"omitempty,meeting_status"`
	}

	cv := New()

	tests := []struct {
		name    string
		input   payload
		wantErr bool
	}{
		{"valid type and status", payload{Type: "interview", Status: "scheduled"}, false},
		{"follow_up type", payload{Type: "follow_up"}, false},
		{"terminal status", payload{Status: "cancelled"}, false},
		{"unknown type", payload{Type: "coffee"}, true},
		{"unknown status", payload{Status: "pending"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cv.Validate(&tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%+v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
