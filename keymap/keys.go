package keymap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/gpucontext"
)

// ErrUnknownKey is returned by ParseKey for names that match no key.
var ErrUnknownKey = errors.New("keymap: unknown key")

// keyNames lists the canonical name of every gpucontext key.
var keyNames = map[gpucontext.Key]string{
	gpucontext.KeyUnknown:        "Unknown",
	gpucontext.KeyA:              "A",
	gpucontext.KeyB:              "B",
	gpucontext.KeyC:              "C",
	gpucontext.KeyD:              "D",
	gpucontext.KeyE:              "E",
	gpucontext.KeyF:              "F",
	gpucontext.KeyG:              "G",
	gpucontext.KeyH:              "H",
	gpucontext.KeyI:              "I",
	gpucontext.KeyJ:              "J",
	gpucontext.KeyK:              "K",
	gpucontext.KeyL:              "L",
	gpucontext.KeyM:              "M",
	gpucontext.KeyN:              "N",
	gpucontext.KeyO:              "O",
	gpucontext.KeyP:              "P",
	gpucontext.KeyQ:              "Q",
	gpucontext.KeyR:              "R",
	gpucontext.KeyS:              "S",
	gpucontext.KeyT:              "T",
	gpucontext.KeyU:              "U",
	gpucontext.KeyV:              "V",
	gpucontext.KeyW:              "W",
	gpucontext.KeyX:              "X",
	gpucontext.KeyY:              "Y",
	gpucontext.KeyZ:              "Z",
	gpucontext.Key0:              "0",
	gpucontext.Key1:              "1",
	gpucontext.Key2:              "2",
	gpucontext.Key3:              "3",
	gpucontext.Key4:              "4",
	gpucontext.Key5:              "5",
	gpucontext.Key6:              "6",
	gpucontext.Key7:              "7",
	gpucontext.Key8:              "8",
	gpucontext.Key9:              "9",
	gpucontext.KeyF1:             "F1",
	gpucontext.KeyF2:             "F2",
	gpucontext.KeyF3:             "F3",
	gpucontext.KeyF4:             "F4",
	gpucontext.KeyF5:             "F5",
	gpucontext.KeyF6:             "F6",
	gpucontext.KeyF7:             "F7",
	gpucontext.KeyF8:             "F8",
	gpucontext.KeyF9:             "F9",
	gpucontext.KeyF10:            "F10",
	gpucontext.KeyF11:            "F11",
	gpucontext.KeyF12:            "F12",
	gpucontext.KeyEscape:         "Escape",
	gpucontext.KeyTab:            "Tab",
	gpucontext.KeyBackspace:      "Backspace",
	gpucontext.KeyEnter:          "Enter",
	gpucontext.KeySpace:          "Space",
	gpucontext.KeyInsert:         "Insert",
	gpucontext.KeyDelete:         "Delete",
	gpucontext.KeyHome:           "Home",
	gpucontext.KeyEnd:            "End",
	gpucontext.KeyPageUp:         "PageUp",
	gpucontext.KeyPageDown:       "PageDown",
	gpucontext.KeyLeft:           "Left",
	gpucontext.KeyRight:          "Right",
	gpucontext.KeyUp:             "Up",
	gpucontext.KeyDown:           "Down",
	gpucontext.KeyLeftShift:      "LeftShift",
	gpucontext.KeyRightShift:     "RightShift",
	gpucontext.KeyLeftControl:    "LeftControl",
	gpucontext.KeyRightControl:   "RightControl",
	gpucontext.KeyLeftAlt:        "LeftAlt",
	gpucontext.KeyRightAlt:       "RightAlt",
	gpucontext.KeyLeftSuper:      "LeftSuper",
	gpucontext.KeyRightSuper:     "RightSuper",
	gpucontext.KeyMinus:          "Minus",
	gpucontext.KeyEqual:          "Equal",
	gpucontext.KeyLeftBracket:    "LeftBracket",
	gpucontext.KeyRightBracket:   "RightBracket",
	gpucontext.KeyBackslash:      "Backslash",
	gpucontext.KeySemicolon:      "Semicolon",
	gpucontext.KeyApostrophe:     "Apostrophe",
	gpucontext.KeyGrave:          "Grave",
	gpucontext.KeyComma:          "Comma",
	gpucontext.KeyPeriod:         "Period",
	gpucontext.KeySlash:          "Slash",
	gpucontext.KeyNumpad0:        "Numpad0",
	gpucontext.KeyNumpad1:        "Numpad1",
	gpucontext.KeyNumpad2:        "Numpad2",
	gpucontext.KeyNumpad3:        "Numpad3",
	gpucontext.KeyNumpad4:        "Numpad4",
	gpucontext.KeyNumpad5:        "Numpad5",
	gpucontext.KeyNumpad6:        "Numpad6",
	gpucontext.KeyNumpad7:        "Numpad7",
	gpucontext.KeyNumpad8:        "Numpad8",
	gpucontext.KeyNumpad9:        "Numpad9",
	gpucontext.KeyNumpadDecimal:  "NumpadDecimal",
	gpucontext.KeyNumpadDivide:   "NumpadDivide",
	gpucontext.KeyNumpadMultiply: "NumpadMultiply",
	gpucontext.KeyNumpadSubtract: "NumpadSubtract",
	gpucontext.KeyNumpadAdd:      "NumpadAdd",
	gpucontext.KeyNumpadEnter:    "NumpadEnter",
	gpucontext.KeyCapsLock:       "CapsLock",
	gpucontext.KeyScrollLock:     "ScrollLock",
	gpucontext.KeyNumLock:        "NumLock",
	gpucontext.KeyPrintScreen:    "PrintScreen",
	gpucontext.KeyPause:          "Pause",
}

// keyAliases are accepted by ParseKey in addition to the canonical names.
var keyAliases = map[string]gpucontext.Key{
	"esc":      gpucontext.KeyEscape,
	"return":   gpucontext.KeyEnter,
	"shift":    gpucontext.KeyLeftShift,
	"lshift":   gpucontext.KeyLeftShift,
	"rshift":   gpucontext.KeyRightShift,
	"ctrl":     gpucontext.KeyLeftControl,
	"lctrl":    gpucontext.KeyLeftControl,
	"rctrl":    gpucontext.KeyRightControl,
	"alt":      gpucontext.KeyLeftAlt,
	"super":    gpucontext.KeyLeftSuper,
	"del":      gpucontext.KeyDelete,
	"pgup":     gpucontext.KeyPageUp,
	"pgdn":     gpucontext.KeyPageDown,
	"backtick": gpucontext.KeyGrave,
}

// byName is keyNames inverted with lower-cased names, plus aliases.
var byName = func() map[string]gpucontext.Key {
	m := make(map[string]gpucontext.Key, len(keyNames)+len(keyAliases))
	for k, name := range keyNames {
		m[strings.ToLower(name)] = k
	}
	for alias, k := range keyAliases {
		m[alias] = k
	}
	return m
}()

// KeyName returns the canonical name of k, such as "A", "Space" or
// "LeftShift". Keys outside the gpucontext table are formatted as "Key(n)".
func KeyName(k gpucontext.Key) string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", uint16(k))
}

// ParseKey returns the key with the given name. Matching ignores case and
// accepts a few common aliases ("esc", "shift", "ctrl"). "Unknown" is
// rejected because it cannot be pressed.
func ParseKey(name string) (gpucontext.Key, error) {
	k, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok || k == gpucontext.KeyUnknown {
		return gpucontext.KeyUnknown, fmt.Errorf("%w: %q", ErrUnknownKey, name)
	}
	return k, nil
}
