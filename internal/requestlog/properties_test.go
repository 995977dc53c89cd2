package requestlog

import "testing"

func TestMergeProperties_LastWriteWins(t *testing.T) {
	merged := mergeProperties([]Property{
		{"a", 1},
		{"b", "first"},
		{"b", "second"},
		{"c", true},
	})

	if len(merged) != 3 {
		t.Fatalf("expected 3 properties, got %v", merged)
	}
	// First-seen position, last-written value.
	if merged[1].Name != "b" || merged[1].Value != "second" {
		t.Fatalf("expected b=second at original position, got %v", merged[1])
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		value  any
		format string
		want   string
	}{
		{12.3456789, "0.0000", "12.3457"},
		{12.3456789, "", "12.3456789"},
		{12.3456789, "%.1f", "12.3"},
		{200, "0.0000", "200"}, // precision pattern only applies to floats
		{"text", "whatever", "text"},
	}
	for _, tt := range tests {
		if got := formatValue(tt.value, tt.format); got != tt.want {
			t.Errorf("formatValue(%v, %q) = %q, want %q", tt.value, tt.format, got, tt.want)
		}
	}
}
