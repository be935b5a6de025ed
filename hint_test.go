package quoter

import "testing"

func TestParseColumnType(t *testing.T) {
	tests := []struct {
		input    string
		expected ColumnType
		wantErr  bool
	}{
		{"", ColumnTypeUnknown, false},
		{"uuid", ColumnTypeUUID, false},
		{"UUID", ColumnTypeUUID, false},
		{" varchar ", ColumnTypeText, false},
		{"character varying", ColumnTypeText, false},
		{"bytea", ColumnTypeBinary, false},
		{"varbyte", ColumnTypeBinary, false},
		{"double precision", ColumnTypeFloat, false},
		{"bigint", ColumnTypeInteger, false},
		{"bool", ColumnTypeBoolean, false},
		{"timestamptz", ColumnTypeTimestamp, false},
		{"date", ColumnTypeDate, false},
		{"geometry", ColumnTypeUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseColumnType(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("ParseColumnType(%q) = %q; want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestColumnTypeHint_IsZero(t *testing.T) {
	if !(ColumnTypeHint{}).IsZero() {
		t.Error("zero hint should be zero")
	}
	if (ColumnTypeHint{Type: ColumnTypeUUID}).IsZero() {
		t.Error("uuid hint should not be zero")
	}
	if (ColumnTypeHint{SQLType: "uuid"}).IsZero() {
		t.Error("hint with SQLType should not be zero")
	}
}
