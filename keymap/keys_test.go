package keymap

import (
	"errors"
	"testing"

	"github.com/gogpu/gpucontext"
)

func TestKeyName(t *testing.T) {
	tests := []struct {
		key  gpucontext.Key
		want string
	}{
		{gpucontext.KeyA, "A"},
		{gpucontext.Key7, "7"},
		{gpucontext.KeyF12, "F12"},
		{gpucontext.KeySpace, "Space"},
		{gpucontext.KeyLeftShift, "LeftShift"},
		{gpucontext.KeyNumpadEnter, "NumpadEnter"},
		{gpucontext.KeyPause, "Pause"},
		{gpucontext.Key(999), "Key(999)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := KeyName(tt.key); got != tt.want {
				t.Errorf("KeyName(%d) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		name string
		want gpucontext.Key
	}{
		{"A", gpucontext.KeyA},
		{"a", gpucontext.KeyA},
		{" space ", gpucontext.KeySpace},
		{"PAGEDOWN", gpucontext.KeyPageDown},
		{"esc", gpucontext.KeyEscape},
		{"Shift", gpucontext.KeyLeftShift},
		{"backtick", gpucontext.KeyGrave},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKey(tt.name)
			if err != nil {
				t.Fatalf("ParseKey(%q) error = %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("ParseKey(%q) = %d, want %d", tt.name, got, tt.want)
			}
		})
	}
}

func TestParseKeyErrors(t *testing.T) {
	for _, name := range []string{"", "Unknown", "Hyper", "F13"} {
		if _, err := ParseKey(name); !errors.Is(err, ErrUnknownKey) {
			t.Errorf("ParseKey(%q) error = %v, want ErrUnknownKey", name, err)
		}
	}
}

func TestKeyNamesRoundTrip(t *testing.T) {
	for k := gpucontext.KeyA; k <= gpucontext.KeyPause; k++ {
		name := KeyName(k)
		got, err := ParseKey(name)
		if err != nil {
			t.Fatalf("ParseKey(KeyName(%d)=%q) error = %v", k, name, err)
		}
		if got != k {
			t.Errorf("ParseKey(%q) = %d, want %d", name, got, k)
		}
	}
}
