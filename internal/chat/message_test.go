package chat

import "testing"

func TestCanTranslate(t *testing.T) {
	tests := []struct {
		name        string
		sender      string
		currentUser string
		want        bool
	}{
		{"other sender", "@alice:example.org", "@bob:example.org", true},
		{"own message", "@bob:example.org", "@bob:example.org", false},
		{"empty sender", "", "@bob:example.org", true},
		{"both empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanTranslate(Message{Sender: tt.sender, CurrentUser: tt.currentUser})
			if got != tt.want {
				t.Errorf("CanTranslate(%q, %q) = %v, want %v", tt.sender, tt.currentUser, got, tt.want)
			}
		})
	}
}

func TestCanTranslate_BodyIrrelevant(t *testing.T) {
	for _, body := range []string{"", "bonjour", "こんにちは"} {
		m := Message{Sender: "@alice:example.org", CurrentUser: "@bob:example.org", Body: body}
		if !CanTranslate(m) {
			t.Errorf("expected true regardless of body, got false for body %q", body)
		}

		m = Message{Sender: "@bob:example.org", CurrentUser: "@bob:example.org", Body: body}
		if CanTranslate(m) {
			t.Errorf("expected false regardless of body, got true for body %q", body)
		}
	}
}
