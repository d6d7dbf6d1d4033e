package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2025-01-15", New(2025, time.January, 15), false},
		{"2025-7-1", New(2025, time.July, 1), false},
		{"", Date{}, false},
		{"invalid-date", Date{}, true},
		{"2025/01/15", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.err {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.err)
			}
			if got != tt.expected {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNewNormalizes(t *testing.T) {
	if got, want := New(2025, time.January, 32), New(2025, time.February, 1); got != want {
		t.Errorf("New(2025, 1, 32) = %v, want %v", got, want)
	}
}

func TestJSON(t *testing.T) {
	type holder struct {
		On Date `json:"on,omitzero"`
	}
	b, err := json.Marshal(holder{On: New(2024, time.March, 5)})
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if want := `{"on":"2024-03-05"}`; string(b) != want {
		t.Errorf("Marshal() = %s, want %s", b, want)
	}

	b, err = json.Marshal(holder{})
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if want := `{}`; string(b) != want {
		t.Errorf("Marshal(zero) = %s, want %s", b, want)
	}

	var h holder
	if err := json.Unmarshal([]byte(`{"on":""}`), &h); err != nil {
		t.Fatalf("Unmarshal(empty) failed: %v", err)
	}
	if !h.On.IsZero() {
		t.Errorf("Unmarshal(empty) = %v, want zero date", h.On)
	}
}

func TestSince(t *testing.T) {
	tests := []struct {
		from, to string
		want     string
	}{
		{"2024-01-15", "2024-06-01", "5m"},
		{"2022-03-01", "2024-03-20", "2y"},
		{"2021-11-10", "2024-02-10", "2y 3m"},
		{"2024-05-01", "2024-05-30", "0m"},
		{"2025-01-01", "2024-01-01", "0m"},
	}
	for _, tt := range tests {
		got := Since(MustParse(tt.from), MustParse(tt.to))
		if got.String() != tt.want {
			t.Errorf("Since(%s, %s) = %q, want %q", tt.from, tt.to, got, tt.want)
		}
	}
}
