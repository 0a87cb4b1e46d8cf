package workflow

import "testing"

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusReady, "ready"},
		{StatusTranslating, "translating"},
		{StatusTranslated, "translated"},
		{StatusFailed, "failed"},
		{Status(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", tt.status, got, tt.want)
		}
	}
}
