package main

import (
	"os"
	"strconv"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/sfumato/pkg/sfumato"
)

// window wraps the SDL window and renderer for the demo.
type window struct {
	win             *sdl.Window
	renderer        *sdl.Renderer
	hasVSync        bool
	lastPresentTime uint64
}

func initWindow(title string, width, height int32) (*window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, err
	}

	if v := os.Getenv("WINDOW_WIDTH"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil {
			width = int32(n)
		} else {
			sfumato.GetLogger().Warn("Invalid WINDOW_WIDTH; using default", "value", v, "error", err)
		}
	}

	if v := os.Getenv("WINDOW_HEIGHT"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil {
			height = int32(n)
		} else {
			sfumato.GetLogger().Warn("Invalid WINDOW_HEIGHT; using default", "value", v, "error", err)
		}
	}

	sfumato.GetLogger().Debug("Initializing SDL window", "width", width, "height", height)

	win, err := sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		width, height, sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		return nil, err
	}

	renderer, err := sdl.CreateRenderer(win, -1,
		sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC|sdl.RENDERER_TARGETTEXTURE)
	if err != nil {
		win.Destroy()
		return nil, err
	}

	renderer.SetLogicalSize(width, height)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &window{
		win:      win,
		renderer: renderer,
		hasVSync: vsync,
	}, nil
}

func (w *window) width() int32 {
	width, _ := w.win.GetSize()
	return width
}

func (w *window) height() int32 {
	_, height := w.win.GetSize()
	return height
}

// present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available. Use this instead of renderer.Present().
func (w *window) present() {
	w.renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}

func (w *window) close() {
	w.renderer.Destroy()
	w.win.Destroy()
	sdl.Quit()
}
