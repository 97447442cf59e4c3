package model

import "testing"

func TestHouseStateIsActive(t *testing.T) {
	tests := []struct {
		state HouseState
		want  bool
	}{
		{StateActive, true},
		{StateInactive, false},
		{HouseState(""), false},
		{HouseState("ACTIF"), false},   // matching is exact
		{HouseState("pending"), false}, // unknown values count as inactive
	}

	for _, tt := range tests {
		if got := tt.state.IsActive(); got != tt.want {
			t.Errorf("HouseState(%q).IsActive() = %v, want %v", tt.state, got, tt.want)
		}
	}
}
