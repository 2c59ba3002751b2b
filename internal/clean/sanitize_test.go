package clean

import "testing"

func TestCleanColumnName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"mixed case", "oRdeRs", "orders"},
		{"hyphen", "customer-birthday", "customer_birthday"},
		{"duplicate underscores", "order__type", "order_type"},
		{"special characters", "column-name@1", "column_name_1"},
		{"surrounding whitespace", "  column  ", "column"},
		{"all caps", "COLUMN", "column"},
		{"inner whitespace run", "unit  of   measure", "unit_of_measure"},
		{"already clean", "transaction_date", "transaction_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanColumnName(tt.input)
			if got != tt.want {
				t.Errorf("CleanColumnName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCleanColumnName_Idempotent(t *testing.T) {
	inputs := []string{
		"oRdeRs", "customer-birthday", "order__type", "column-name@1",
		"  column  ", "a b c", "--x--", "Unit Of Measure",
	}

	for _, in := range inputs {
		once := CleanColumnName(in)
		twice := CleanColumnName(once)
		if once != twice {
			t.Errorf("CleanColumnName not idempotent for %q: %q != %q", in, once, twice)
		}
		for _, r := range once {
			if r == ' ' || r == '\t' {
				t.Errorf("CleanColumnName(%q) = %q contains whitespace", in, once)
			}
		}
		if containsDoubleUnderscore(once) {
			t.Errorf("CleanColumnName(%q) = %q contains consecutive underscores", in, once)
		}
	}
}

func containsDoubleUnderscore(s string) bool {
	for i := 0; i+1 < len(s); i++ {
		if s[i] == '_' && s[i+1] == '_' {
			return true
		}
	}
	return false
}

func TestCleanNumeric(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain number", "123.45", "123.45"},
		{"currency symbol", "$4.50", "4.50"},
		{"embedded dashes", "908-424-2890", "9084242890"},
		{"letters and spaces", "about 12 units", "12"},
		{"order preserved", "1a2b3.c4", "123.4"},
		{"double decimal passes through", "12.34.56", "12.34.56"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanNumeric(tt.input)
			if got != tt.want {
				t.Errorf("CleanNumeric(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCleanEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"trim and lowercase", " Jane.DOE+1@Example.com ", "jane.doe1@example.com"},
		{"allowed punctuation kept", "a_b-c.d@host.org", "a_b-c.d@host.org"},
		{"no at sign returned as-is", "not-an-email", "not-an-email"},
		{"strips invalid characters", "jo hn#doe@x.com", "johndoe@x.com"},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanEmail(tt.input)
			if got != tt.want {
				t.Errorf("CleanEmail(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFlagValue(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"Y", true},
		{"N", false},
		{"", false},
		{"y", false},
		{"n", false},
		{"Maybe", false},
		{"true", false},
	}

	for _, tt := range tests {
		if got := FlagValue(tt.input); got != tt.want {
			t.Errorf("FlagValue(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsFlagColumn(t *testing.T) {
	if !IsFlagColumn("promo_yn") {
		t.Error("IsFlagColumn(promo_yn) = false, want true")
	}
	if IsFlagColumn("promotion") {
		t.Error("IsFlagColumn(promotion) = true, want false")
	}
}
