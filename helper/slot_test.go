package helper

import (
	"reflect"
	"testing"
)

func TestTimeGrid(t *testing.T) {
	grid := TimeGrid()
	if len(grid) != 24 {
		t.Fatalf("expected 24 slots, got %d", len(grid))
	}
	if grid[0] != "9:00" || grid[1] != "9:30" || grid[23] != "20:30" {
		t.Fatalf("unexpected grid bounds: %v", grid)
	}
	for _, s := range grid {
		m, err := ParseClock(s)
		if err != nil || !IsGridMinute(m) {
			t.Errorf("%s not recognised as grid slot", s)
		}
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"9:00", 540, false},
		{"09:30", 570, false},
		{"20:30", 1230, false},
		{" 14:00 ", 840, false},
		{"14", 0, true},
		{"24:00", 0, true},
		{"10:75", 0, true},
		{"ab:cd", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseClock(%q) err = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	if got := FormatClock(540); got != "9:00" {
		t.Errorf("FormatClock(540) = %s", got)
	}
	if got := FormatClock(1230); got != "20:30" {
		t.Errorf("FormatClock(1230) = %s", got)
	}
}

func TestIsGridMinute(t *testing.T) {
	for _, s := range []string{"8:30", "21:00", "10:15", "10:45"} {
		m, err := ParseClock(s)
		if err != nil {
			t.Fatalf("ParseClock(%s): %v", s, err)
		}
		if IsGridMinute(m) {
			t.Errorf("%s should not be a grid slot", s)
		}
	}
}

func TestHasConflict(t *testing.T) {
	tests := []struct {
		name      string
		candidate int
		existing  []int
		want      bool
	}{
		{"no bookings", 600, nil, false},
		{"same slot", 600, []int{600}, true},
		{"thirty before", 570, []int{600}, true},
		{"thirty after", 630, []int{600}, true},
		{"exactly sixty before", 540, []int{600}, false},
		{"exactly sixty after", 660, []int{600}, false},
		{"fifty nine apart", 659, []int{600}, true},
		{"second booking conflicts", 900, []int{600, 930}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasConflict(tt.candidate, tt.existing); got != tt.want {
				t.Fatalf("HasConflict(%d, %v) = %v, want %v", tt.candidate, tt.existing, got, tt.want)
			}
		})
	}
}

func TestFilterAvailable(t *testing.T) {
	available := FilterAvailable(TimeGrid(), []int{600})

	excluded := map[string]bool{"9:30": true, "10:00": true, "10:30": true}
	for _, s := range available {
		if excluded[s] {
			t.Errorf("%s should be excluded next to a 10:00 booking", s)
		}
	}
	if len(available) != 21 {
		t.Fatalf("expected 21 slots left, got %d: %v", len(available), available)
	}
	if available[0] != "9:00" || available[1] != "11:00" {
		t.Fatalf("grid order not kept: %v", available[:2])
	}
}

func TestFilterAvailableKeepsGridWhenNothingBooked(t *testing.T) {
	if got := FilterAvailable(TimeGrid(), nil); !reflect.DeepEqual(got, TimeGrid()) {
		t.Fatalf("expected full grid, got %v", got)
	}
}
