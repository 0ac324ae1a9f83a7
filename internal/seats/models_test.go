package seats

import "testing"

func TestFormatSeatNumber(t *testing.T) {
	tests := []struct {
		sceneryID uint
		seq       int
		want      string
	}{
		{1, 1, "1-1"},
		{2, 3, "2-3"},
		{12, 7, "12-7"},
		{100, 50, "100-50"},
	}

	for _, tt := range tests {
		if got := FormatSeatNumber(tt.sceneryID, tt.seq); got != tt.want {
			t.Errorf("FormatSeatNumber(%d, %d) = %q, want %q", tt.sceneryID, tt.seq, got, tt.want)
		}
	}
}

func TestParseSeatNumber(t *testing.T) {
	tests := []struct {
		label         string
		wantSceneryID uint
		wantSeq       int
		wantErr       bool
	}{
		{"1-1", 1, 1, false},
		{"2-3", 2, 3, false},
		// The prefix is everything before the first separator: scenery 12, not 1
		{"12-3", 12, 3, false},
		{"100-50", 100, 50, false},
		{"A1", 0, 0, true},
		{"", 0, 0, true},
		{"x-1", 0, 0, true},
		{"1-x", 0, 0, true},
		{"1-0", 0, 0, true},
		{"1--1", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			sceneryID, seq, err := ParseSeatNumber(tt.label)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseSeatNumber(%q) = (%d, %d), want error", tt.label, sceneryID, seq)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSeatNumber(%q) returned error: %v", tt.label, err)
			}
			if sceneryID != tt.wantSceneryID || seq != tt.wantSeq {
				t.Errorf("ParseSeatNumber(%q) = (%d, %d), want (%d, %d)",
					tt.label, sceneryID, seq, tt.wantSceneryID, tt.wantSeq)
			}
		})
	}
}

func TestSeatStatusIsValid(t *testing.T) {
	valid := []SeatStatus{SeatStatusAvailable, SeatStatusHeld, SeatStatusOccupied}
	for _, status := range valid {
		if !status.IsValid() {
			t.Errorf("%s.IsValid() = false, want true", status)
		}
	}

	invalid := []SeatStatus{"", "available", "RESERVED", "Free"}
	for _, status := range invalid {
		if status.IsValid() {
			t.Errorf("%q.IsValid() = true, want false", status)
		}
	}
}
