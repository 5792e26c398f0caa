package main

import (
	"fmt"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/mageknight/obj"
	"github.com/milk9111/mageknight/prefabs"
)

type bindings map[obj.Action][]ebiten.Key

// Input polls the keyboard once per tick and answers action queries for the
// rest of the tick.
type Input struct {
	*obj.Held

	schemes map[string]bindings
	names   []string
	active  string
	toggle  ebiten.Key
	hasTog  bool
}

func NewInput(spec prefabs.ControlsSpec) (*Input, error) {
	in := &Input{Held: obj.NewHeld()}
	if err := in.Apply(spec); err != nil {
		return nil, err
	}
	return in, nil
}

// Apply rebuilds the key tables. The active scheme survives when the new
// spec still has it.
func (in *Input) Apply(spec prefabs.ControlsSpec) error {
	schemes := make(map[string]bindings, len(spec.Schemes))
	for name, actions := range spec.Schemes {
		b, err := parseBindings(actions)
		if err != nil {
			return fmt.Errorf("controls scheme %s: %w", name, err)
		}
		schemes[name] = b
	}
	if len(schemes) == 0 {
		return fmt.Errorf("controls: no schemes")
	}

	names := make([]string, 0, len(schemes))
	for name := range schemes {
		names = append(names, name)
	}
	sort.Strings(names)

	active := in.active
	if _, ok := schemes[active]; !ok {
		active = spec.Scheme
	}
	if _, ok := schemes[active]; !ok {
		active = names[0]
	}

	var toggle ebiten.Key
	hasTog := spec.Toggle != ""
	if hasTog {
		if err := toggle.UnmarshalText([]byte(spec.Toggle)); err != nil {
			return fmt.Errorf("controls toggle %q: %w", spec.Toggle, err)
		}
	}

	in.schemes, in.names, in.active = schemes, names, active
	in.toggle, in.hasTog = toggle, hasTog
	return nil
}

func parseBindings(actions map[string][]string) (bindings, error) {
	b := make(bindings, len(actions))
	for action, keys := range actions {
		a := obj.Action(action)
		for _, name := range keys {
			var k ebiten.Key
			if err := k.UnmarshalText([]byte(name)); err != nil {
				return nil, fmt.Errorf("action %s key %q: %w", action, name, err)
			}
			b[a] = append(b[a], k)
		}
	}
	return b, nil
}

// Scheme is the name of the active binding set.
func (in *Input) Scheme() string { return in.active }

// Update samples the keyboard. The toggle key cycles through schemes.
func (in *Input) Update() {
	if in.hasTog && inpututil.IsKeyJustPressed(in.toggle) && len(in.names) > 1 {
		for i, n := range in.names {
			if n == in.active {
				in.active = in.names[(i+1)%len(in.names)]
				break
			}
		}
	}

	in.Step()
	b := in.schemes[in.active]
	for _, a := range obj.Actions {
		down := false
		for _, k := range b[a] {
			if ebiten.IsKeyPressed(k) {
				down = true
				break
			}
		}
		in.Set(a, down)
	}
}

var _ obj.Controls = (*Input)(nil)
