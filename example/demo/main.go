package main

import (
	"image"
	"image/color"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/ddkwork/golibrary/mylog"
	"github.com/ddkwork/toolbox/atexit"
	"github.com/ddkwork/toolbox/cmdline"
	"github.com/ddkwork/toolbox/xio"

	"github.com/ddkwork/wglfw/app"
	"github.com/ddkwork/wglfw/internal/glfw"
)

func main() {
	cl := cmdline.New(true)
	configPath := ""
	cl.NewGeneralOption(&configPath).SetName("config").SetSingle('c').SetUsage("A YAML file with window, framebuffer and context settings")
	fullscreen := false
	cl.NewGeneralOption(&fullscreen).SetName("fullscreen").SetSingle('f').SetUsage("Open the window in fullscreen mode")
	samples := 0
	cl.NewGeneralOption(&samples).SetName("samples").SetSingle('s').SetUsage("The number of multisample buffer samples to request")
	output := ""
	cl.NewGeneralOption(&output).SetName("output").SetSingle('o').SetUsage("Also write the event log to this file")
	cl.Parse(os.Args[1:])

	cfg := app.DefaultConfig()
	if configPath != "" {
		cfg = mylog.Check2(app.LoadConfig(configPath))
	}
	applyFlags(&cfg, fullscreen, samples)
	if output != "" {
		f := mylog.Check2(os.Create(output))
		log.SetOutput(&xio.TeeWriter{Writers: []io.Writer{f, os.Stdout}})
	}

	if err := app.Run(cfg, setup, nil); err != nil {
		slog.Error("demo failed", "error", err)
		atexit.Exit(1)
	}
	atexit.Exit(0)
}

// applyFlags layers the command line over cfg. A title set by the config file
// is kept.
func applyFlags(cfg *app.Config, fullscreen bool, samples int) {
	if cfg.Title == app.DefaultConfig().Title {
		cfg.Title = "wglfw demo"
	}
	cfg.Fullscreen = cfg.Fullscreen || fullscreen
	if samples > 0 {
		cfg.Framebuffer.Samples = samples
	}
}

func setup(w *glfw.Window) {
	mylog.Check(w.SetIcon(checkerIcon(16), checkerIcon(32), checkerIcon(48)))

	w.SetKeyCallback(func(w *glfw.Window, key glfw.Key, action glfw.Action) {
		slog.Info("key", "key", key, "action", action)
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyEscape:
			w.SetShouldClose(true)
		case 'C':
			mode := glfw.CursorCaptured
			if w.CursorMode() == glfw.CursorCaptured {
				mode = glfw.CursorNormal
			}
			mylog.Check(w.SetCursorMode(mode))
		case 'F':
			width, height := w.GetSize()
			mylog.Check(w.SetSize(width+64, height+48))
		}
	})
	w.SetCharCallback(func(w *glfw.Window, char rune) {
		slog.Info("char", "rune", string(char))
	})
	w.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action) {
		slog.Info("mouse button", "button", button, "action", action)
	})
	w.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		slog.Info("scroll", "x", xoff, "y", yoff)
	})
	w.SetFocusCallback(func(w *glfw.Window, focused bool) {
		slog.Info("focus", "focused", focused)
	})
	w.SetSizeCallback(func(w *glfw.Window, width, height int) {
		slog.Info("size", "width", width, "height", height)
	})
	w.SetIconifyCallback(func(w *glfw.Window, iconified bool) {
		slog.Info("iconify", "iconified", iconified)
	})
	w.SetCloseCallback(func(w *glfw.Window) bool {
		slog.Info("close requested")
		return true
	})
}

func checkerIcon(size int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	cell := max(size/4, 1)
	for y := range size {
		for x := range size {
			c := color.NRGBA{R: 0x20, G: 0x60, B: 0xc0, A: 0xff}
			if (x/cell+y/cell)%2 == 0 {
				c = color.NRGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}
