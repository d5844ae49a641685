package main

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/sfumato/pkg/sfumato"
	"github.com/BrandonKowalski/sfumato/pkg/sfumato/runner"
)

// screenAction represents how the user left a demo screen.
type screenAction int

const (
	actionNext screenAction = iota // Advance to the next demo (Return or N)
	actionQuit                     // Exit the demo (Escape or window close)
)

type demoScreen struct {
	name       string
	transition sfumato.Transition
}

const (
	squareSize     int32 = 160
	transitionTime       = 400 * time.Millisecond
)

// runScreen drives one demo: a single square whose visibility toggles
// with Space, animated by the screen's transition. The square starts
// visible so the screen has something on it.
func runScreen(w *window, s demoScreen) (screenAction, error) {
	square, err := makeSquare(w.renderer)
	if err != nil {
		return actionQuit, err
	}
	defer square.Destroy()

	run := runner.New(s.transition, transitionTime, runner.WithVisible(true))

	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				return actionQuit, nil
			case *sdl.KeyboardEvent:
				if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
					continue
				}
				switch e.Keysym.Sym {
				case sdl.K_ESCAPE:
					return actionQuit, nil
				case sdl.K_RETURN, sdl.K_n:
					return actionNext, nil
				case sdl.K_SPACE:
					visible := run.Toggle()
					sfumato.GetLogger().Debug("visibility toggled",
						"screen", s.name, "visible", visible)
				}
			}
		}

		params, _ := run.Update(time.Now())

		w.renderer.SetDrawColor(24, 24, 32, 255)
		w.renderer.Clear()
		drawSquare(w.renderer, square, w.width(), w.height(), params)
		w.present()
	}
}

// makeSquare renders the demo element once into a target texture so the
// per-frame path is a single textured copy.
func makeSquare(renderer *sdl.Renderer) (*sdl.Texture, error) {
	tex, err := renderer.CreateTexture(sdl.PIXELFORMAT_RGBA8888,
		sdl.TEXTUREACCESS_TARGET, squareSize, squareSize)
	if err != nil {
		return nil, err
	}

	if err := tex.SetBlendMode(sdl.BLENDMODE_BLEND); err != nil {
		tex.Destroy()
		return nil, err
	}

	renderer.SetRenderTarget(tex)
	renderer.SetDrawColor(222, 112, 58, 255)
	renderer.Clear()
	renderer.SetRenderTarget(nil)

	return tex, nil
}

// drawSquare applies the resolved visual parameters: displacement as
// fractions of the square's own size, scale on the destination rect,
// opacity via alpha modulation, and rotation through CopyEx.
func drawSquare(renderer *sdl.Renderer, tex *sdl.Texture, winW, winH int32, p sfumato.VisualParams) {
	opacity := p.Opacity
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}
	tex.SetAlphaMod(uint8(opacity * 255))

	scaled := int32(float64(squareSize) * p.ScaleFactor)
	dst := &sdl.Rect{
		X: winW/2 - scaled/2 + int32(p.DX*float64(squareSize)),
		Y: winH/2 - scaled/2 + int32(p.DY*float64(squareSize)),
		W: scaled,
		H: scaled,
	}

	renderer.CopyEx(tex, nil, dst, p.RotationDegrees, nil, sdl.FLIP_NONE)
}
