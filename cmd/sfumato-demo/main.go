// Command sfumato-demo shows the three transition variants on a single
// animated square: a symmetric slide-and-fade, an asymmetric pair, and
// a custom transition loaded from a TOML catalog.
//
// Controls: Space toggles the square's visibility, Return (or N)
// advances to the next demo, Escape quits.
package main

import (
	"os"
	"strings"

	"github.com/BrandonKowalski/sfumato/pkg/sfumato"
	"github.com/BrandonKowalski/sfumato/pkg/sfumato/config"
)

// demoCatalog is the catalog an application would normally ship as a
// file next to its binary.
const demoCatalog = `
[transitions.rotateAsymmetric]
insertion = [{ kind = "rotate", degrees = 180 }]
removal = [{ kind = "scale", factor = 0.0 }]

[transitions.slide]
effects = [
    { kind = "move", edge = "leading" },
    { kind = "fade" },
]
`

func main() {
	sfumato.Init(sfumato.Options{LogLevel: os.Getenv("LOG_LEVEL")})
	defer sfumato.Close()
	logger := sfumato.GetLogger()

	transitions, err := config.Load(strings.NewReader(demoCatalog))
	if err != nil {
		logger.Error("Failed to load transition catalog", "error", err)
		os.Exit(1)
	}
	config.Install(sfumato.DefaultRegistry(), transitions)

	custom, err := sfumato.Lookup("rotateAsymmetric")
	if err != nil {
		logger.Warn("Custom transition missing; falling back to identity", "error", err)
		custom = sfumato.Identity()
	}

	slide, err := sfumato.Lookup("slide")
	if err != nil {
		logger.Warn("Slide transition missing; falling back to identity", "error", err)
		slide = sfumato.Identity()
	}

	screens := []demoScreen{
		{name: "symmetric", transition: slide},
		{name: "asymmetric", transition: sfumato.Asymmetric(
			sfumato.Move(sfumato.EdgeTop),
			sfumato.Fade(),
		)},
		{name: "custom", transition: custom},
	}

	w, err := initWindow("sfumato demo", 1024, 768)
	if err != nil {
		logger.Error("Failed to initialize SDL window", "error", err)
		os.Exit(1)
	}
	defer w.close()

	for i := 0; ; i = (i + 1) % len(screens) {
		s := screens[i]
		logger.Info("Showing demo screen", "screen", s.name)

		action, err := runScreen(w, s)
		if err != nil {
			logger.Error("Demo screen failed", "screen", s.name, "error", err)
			os.Exit(1)
		}
		if action == actionQuit {
			return
		}
	}
}
