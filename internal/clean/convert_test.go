package clean

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"iso", "2023-05-01", time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC), false},
		{"slashes", "2023/05/01", time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC), false},
		{"us format", "5/1/2023", time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC), false},
		{"trimmed", " 2023-05-01 ", time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC), false},
		{"garbage", "yesterday", time.Time{}, true},
		{"empty", "", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDateTime(t *testing.T) {
	got, err := ParseDateTime("2023-05-01 14:30:00")
	if err != nil {
		t.Fatalf("ParseDateTime error = %v", err)
	}
	want := time.Date(2023, 5, 1, 14, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDateTime = %v, want %v", got, want)
	}

	if _, err := ParseDateTime("2023-05-01"); err == nil {
		t.Error("ParseDateTime without time component should fail")
	}
}

func TestParseNumericID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{"plain", "123456", 123456, false},
		{"dashed", "908-424-2890", 9084242890, false},
		{"spaced", " 123 456 ", 123456, false},
		{"no digits", "none", 0, true},
		{"stray decimal point", "12.34", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNumericID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseNumericID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseNumericID(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseCleanedPrice(t *testing.T) {
	got, err := ParseCleanedPrice("$4.50")
	if err != nil {
		t.Fatalf("ParseCleanedPrice error = %v", err)
	}
	if got.String() != "4.5" {
		t.Errorf("ParseCleanedPrice($4.50) = %s, want 4.5", got)
	}

	// Stripping is lossy, not validating: a double decimal point must still
	// fail at coercion rather than being silently repaired.
	if _, err := ParseCleanedPrice("1.2.3"); err == nil {
		t.Error("ParseCleanedPrice(1.2.3) should fail")
	}
}
