// Package config loads named transitions from TOML catalog files, so
// applications can ship custom transitions as data instead of code.
//
// A catalog lists one table per transition. Symmetric transitions give a
// single effect list; asymmetric transitions give one per direction:
//
//	[transitions.slide]
//	effects = [
//	    { kind = "move", edge = "leading" },
//	    { kind = "fade" },
//	]
//
//	[transitions.rotateAsymmetric]
//	insertion = [{ kind = "rotate", degrees = 180 }]
//	removal = [{ kind = "scale", factor = 0 }]
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/sfumato/pkg/sfumato"
)

type catalog struct {
	Transitions map[string]transitionDef `toml:"transitions"`
}

type transitionDef struct {
	Effects   []effectDef `toml:"effects"`
	Insertion []effectDef `toml:"insertion"`
	Removal   []effectDef `toml:"removal"`
}

type effectDef struct {
	Kind    string  `toml:"kind"`
	Edge    string  `toml:"edge"`
	Factor  float64 `toml:"factor"`
	Degrees float64 `toml:"degrees"`
	X       float64 `toml:"x"`
	Y       float64 `toml:"y"`
}

// Load parses a TOML catalog and returns its transitions by name.
func Load(r io.Reader) (map[string]sfumato.Transition, error) {
	var c catalog
	if _, err := toml.NewDecoder(r).Decode(&c); err != nil {
		return nil, fmt.Errorf("config: parse catalog: %w", err)
	}

	out := make(map[string]sfumato.Transition, len(c.Transitions))
	for name, def := range c.Transitions {
		t, err := buildTransition(def)
		if err != nil {
			return nil, fmt.Errorf("config: transition %q: %w", name, err)
		}
		out[name] = t
	}
	return out, nil
}

// LoadFile parses the TOML catalog at the given path.
func LoadFile(path string) (map[string]sfumato.Transition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Install registers every transition of a loaded catalog.
func Install(reg *sfumato.Registry, transitions map[string]sfumato.Transition) {
	for name, t := range transitions {
		reg.Register(name, t)
	}
}

func buildTransition(def transitionDef) (sfumato.Transition, error) {
	symmetric := def.Effects != nil
	asymmetric := def.Insertion != nil || def.Removal != nil

	switch {
	case symmetric && asymmetric:
		return sfumato.Transition{}, &sfumato.InvalidArgumentError{
			Op: "load", Reason: "effects cannot be combined with insertion/removal",
		}
	case asymmetric && (def.Insertion == nil || def.Removal == nil):
		return sfumato.Transition{}, &sfumato.InvalidArgumentError{
			Op: "load", Reason: "asymmetric transitions need both insertion and removal",
		}
	case asymmetric:
		ins, err := buildComposite(def.Insertion)
		if err != nil {
			return sfumato.Transition{}, err
		}
		rem, err := buildComposite(def.Removal)
		if err != nil {
			return sfumato.Transition{}, err
		}
		return sfumato.Asymmetric(ins, rem), nil
	default:
		return buildComposite(def.Effects)
	}
}

func buildComposite(defs []effectDef) (sfumato.Transition, error) {
	parts := make([]sfumato.Transition, 0, len(defs))
	for _, def := range defs {
		t, err := buildEffect(def)
		if err != nil {
			return sfumato.Transition{}, err
		}
		parts = append(parts, t)
	}
	return sfumato.Combine(parts...), nil
}

func buildEffect(def effectDef) (sfumato.Transition, error) {
	switch def.Kind {
	case "move":
		edge, err := parseEdge(def.Edge)
		if err != nil {
			return sfumato.Transition{}, err
		}
		return sfumato.Move(edge), nil
	case "fade":
		return sfumato.Fade(), nil
	case "scale":
		return sfumato.Scale(def.Factor)
	case "rotate":
		return sfumato.Rotate(def.Degrees), nil
	case "offset":
		return sfumato.Offset(def.X, def.Y), nil
	case "identity":
		return sfumato.Identity(), nil
	default:
		return sfumato.Transition{}, &sfumato.InvalidArgumentError{
			Op: "load", Reason: fmt.Sprintf("unknown effect kind %q", def.Kind),
		}
	}
}

func parseEdge(name string) (sfumato.Edge, error) {
	switch name {
	case "top":
		return sfumato.EdgeTop, nil
	case "bottom":
		return sfumato.EdgeBottom, nil
	case "leading":
		return sfumato.EdgeLeading, nil
	case "trailing":
		return sfumato.EdgeTrailing, nil
	default:
		return 0, &sfumato.InvalidArgumentError{
			Op: "load", Reason: fmt.Sprintf("unknown edge %q", name),
		}
	}
}
