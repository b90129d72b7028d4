package session

import "testing"

func TestContextStore_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"plain text", "Doc says X"},
		{"empty string", ""},
		{"multiline", "page one\npage two\n"},
		{"unicode", "résumé — 履歴書"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewContextStore()
			store.Set(tt.text)
			if got := store.Get(); got != tt.text {
				t.Errorf("Get() = %q, want %q", got, tt.text)
			}
		})
	}
}

func TestContextStore_SetReplacesEntirely(t *testing.T) {
	store := NewContextStore()

	store.Set("first document")
	store.Set("second document")

	if got := store.Get(); got != "second document" {
		t.Errorf("Get() = %q, want %q with no trace of the first value", got, "second document")
	}
}

func TestContextStore_DefaultIsEmpty(t *testing.T) {
	store := NewContextStore()
	if got := store.Get(); got != "" {
		t.Errorf("new store should be empty, got %q", got)
	}
}
