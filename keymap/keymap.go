package keymap

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/ufo"
	"github.com/gogpu/ufo/input"
	"github.com/pelletier/go-toml/v2"
)

// Errors returned while loading bindings.
var (
	// ErrMissingAction is returned for a binding without an action name.
	ErrMissingAction = errors.New("keymap: binding has no action")

	// ErrDuplicateAction is returned when two bindings share an action.
	ErrDuplicateAction = errors.New("keymap: duplicate action")

	// ErrInvalidRepeat is returned for a repeat interval that is not a
	// positive duration.
	ErrInvalidRepeat = errors.New("keymap: invalid repeat interval")
)

//go:embed default.toml
var defaultBindings []byte

// Binding maps an action to a key.
type Binding struct {
	Action string
	Key    gpucontext.Key

	// Repeat is the auto-repeat interval. Zero means the action follows the
	// held state of the key and is not registered with a KeyRepeater.
	Repeat time.Duration
}

// Bindings is an ordered set of bindings with unique action names.
type Bindings struct {
	list     []Binding
	byAction map[string]int
}

// fileConfig is the TOML structure of a bindings file.
type fileConfig struct {
	Bindings []bindingConfig `toml:"binding"`
}

type bindingConfig struct {
	Action string `toml:"action"`
	Key    string `toml:"key"`
	Repeat string `toml:"repeat"`
}

// Load decodes bindings from TOML.
func Load(r io.Reader) (*Bindings, error) {
	var cfg fileConfig
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&cfg); err != nil {
		return nil, fmt.Errorf("keymap: decoding bindings: %w", err)
	}

	b := &Bindings{byAction: make(map[string]int, len(cfg.Bindings))}
	for i, bc := range cfg.Bindings {
		binding, err := bc.parse()
		if err != nil {
			return nil, fmt.Errorf("keymap: binding %d: %w", i+1, err)
		}
		if err := b.add(binding); err != nil {
			return nil, fmt.Errorf("keymap: binding %d: %w", i+1, err)
		}
	}
	return b, nil
}

// LoadFile loads bindings from a TOML file.
func LoadFile(path string) (*Bindings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("keymap: opening bindings file: %w", err)
	}
	defer f.Close()

	b, err := Load(f)
	if err != nil {
		return nil, err
	}
	ufo.Logger().Info("keymap: bindings loaded", "path", path, "count", b.Len())
	return b, nil
}

// Default returns the built-in bindings of the demo application:
// WASD to move, arrow keys to step with auto-repeat, LeftShift to boost,
// R to reset, H to toggle the overlay and Q to quit.
func Default() *Bindings {
	b, err := Load(bytes.NewReader(defaultBindings))
	if err != nil {
		panic(err)
	}
	return b
}

func (bc bindingConfig) parse() (Binding, error) {
	if bc.Action == "" {
		return Binding{}, ErrMissingAction
	}
	k, err := ParseKey(bc.Key)
	if err != nil {
		return Binding{}, fmt.Errorf("action %q: %w", bc.Action, err)
	}
	binding := Binding{Action: bc.Action, Key: k}
	if bc.Repeat != "" {
		d, err := time.ParseDuration(bc.Repeat)
		if err != nil || d <= 0 {
			return Binding{}, fmt.Errorf("%w: action %q: %q", ErrInvalidRepeat, bc.Action, bc.Repeat)
		}
		binding.Repeat = d
	}
	return binding, nil
}

func (b *Bindings) add(binding Binding) error {
	if _, ok := b.byAction[binding.Action]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateAction, binding.Action)
	}
	b.byAction[binding.Action] = len(b.list)
	b.list = append(b.list, binding)
	return nil
}

// Len returns the number of bindings.
func (b *Bindings) Len() int {
	return len(b.list)
}

// All returns a copy of the bindings in file order.
func (b *Bindings) All() []Binding {
	out := make([]Binding, len(b.list))
	copy(out, b.list)
	return out
}

// Lookup returns the binding of action.
func (b *Bindings) Lookup(action string) (Binding, bool) {
	i, ok := b.byAction[action]
	if !ok {
		return Binding{}, false
	}
	return b.list[i], true
}

// Register registers every binding with a repeat interval with r and
// returns how many were registered.
func (b *Bindings) Register(r *input.KeyRepeater) int {
	n := 0
	for _, binding := range b.list {
		if binding.Repeat > 0 {
			r.Register(binding.Key, binding.Repeat)
			n++
		}
	}
	return n
}

// Held reports whether the key of action is Pressed or Down.
func (b *Bindings) Held(action string, in input.KeyStateReader) bool {
	binding, ok := b.Lookup(action)
	if !ok {
		return false
	}
	st, ok := in.KeyState(binding.Key)
	return ok && st.Active()
}

// Fire reports whether a repeating action triggers this frame. Actions
// without a repeat interval never fire; use Held for them.
func (b *Bindings) Fire(action string, r *input.KeyRepeater, in input.KeyStateReader) bool {
	binding, ok := b.Lookup(action)
	if !ok || binding.Repeat == 0 {
		return false
	}
	return r.Fire(binding.Key, in)
}
