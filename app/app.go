package app

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/ddkwork/golibrary/mylog"
	"github.com/ddkwork/toolbox/log/tracelog"
	"gopkg.in/yaml.v3"

	"github.com/ddkwork/wglfw/internal/glfw"
)

// Config is the window and framebuffer setup of an application. Zero fields
// keep the value of DefaultConfig when loaded from a file.
type Config struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	Resizable  bool   `yaml:"resizable"`
	KeyRepeat  bool   `yaml:"key_repeat"`
	Refresh    int    `yaml:"refresh_rate"`
	SwapEvery  int    `yaml:"swap_interval"`

	Framebuffer struct {
		Red     int  `yaml:"red"`
		Green   int  `yaml:"green"`
		Blue    int  `yaml:"blue"`
		Alpha   int  `yaml:"alpha"`
		Depth   int  `yaml:"depth"`
		Stencil int  `yaml:"stencil"`
		Samples int  `yaml:"samples"`
		Stereo  bool `yaml:"stereo"`
	} `yaml:"framebuffer"`

	Context struct {
		Major         int    `yaml:"major"`
		Minor         int    `yaml:"minor"`
		Profile       string `yaml:"profile"`
		ForwardCompat bool   `yaml:"forward_compat"`
		Debug         bool   `yaml:"debug"`
	} `yaml:"context"`
}

func DefaultConfig() Config {
	h := glfw.DefaultHints()
	var c Config
	c.Title = h.Title
	c.Width = h.Width
	c.Height = h.Height
	c.Resizable = h.Resizable
	c.SwapEvery = 1
	c.Framebuffer.Red = h.RedBits
	c.Framebuffer.Green = h.GreenBits
	c.Framebuffer.Blue = h.BlueBits
	c.Framebuffer.Alpha = h.AlphaBits
	c.Framebuffer.Depth = h.DepthBits
	c.Framebuffer.Stencil = h.StencilBits
	c.Context.Major = h.GLMajor
	c.Context.Minor = h.GLMinor
	return c
}

// LoadConfig reads a YAML file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return c, fmt.Errorf("app: parse %s: %w", path, err)
	}
	return c, nil
}

func parseProfile(s string) (glfw.Profile, error) {
	switch s {
	case "", "none":
		return glfw.NoProfile, nil
	case "core":
		return glfw.CoreProfile, nil
	case "compat":
		return glfw.CompatProfile, nil
	case "es2":
		return glfw.ES2Profile, nil
	default:
		return glfw.NoProfile, fmt.Errorf("app: unknown context profile %q", s)
	}
}

// Hints converts the configuration into window hints.
func (c *Config) Hints() (glfw.Hints, error) {
	profile, err := parseProfile(c.Context.Profile)
	if err != nil {
		return glfw.Hints{}, err
	}
	h := glfw.DefaultHints()
	h.Title = c.Title
	h.Width = c.Width
	h.Height = c.Height
	h.Fullscreen = c.Fullscreen
	h.Resizable = c.Resizable
	h.KeyRepeat = c.KeyRepeat
	h.RefreshRate = c.Refresh
	h.RedBits = c.Framebuffer.Red
	h.GreenBits = c.Framebuffer.Green
	h.BlueBits = c.Framebuffer.Blue
	h.AlphaBits = c.Framebuffer.Alpha
	h.DepthBits = c.Framebuffer.Depth
	h.StencilBits = c.Framebuffer.Stencil
	h.Samples = c.Framebuffer.Samples
	h.Stereo = c.Framebuffer.Stereo
	h.GLMajor = c.Context.Major
	h.GLMinor = c.Context.Minor
	h.Profile = profile
	h.ForwardCompat = c.Context.ForwardCompat
	h.Debug = c.Context.Debug
	return h, nil
}

// Run opens a window described by cfg and pumps its events until the window
// is asked to close. setup runs once after the context is current; frame runs
// after every poll and is followed by a buffer swap. Either may be nil.
func Run(cfg Config, setup func(w *glfw.Window), frame func(w *glfw.Window)) error {
	// Every window, context and message queue belongs to this thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	hints, err := cfg.Hints()
	if err != nil {
		return err
	}
	lib, err := glfw.Init()
	if err != nil {
		return err
	}
	defer func() {
		mylog.Check(lib.Terminate())
	}()
	lib.SetLogger(glfwLogger())

	w, err := lib.OpenWindow(hints)
	if err != nil {
		return err
	}
	if err := lib.SwapInterval(cfg.SwapEvery); err != nil {
		return err
	}
	if err := lib.RefreshWindowParams(); err != nil {
		return err
	}
	fb := w.Framebuffer()
	slog.Info("window opened",
		"title", w.GetTitle(),
		"accelerated", w.Accelerated(),
		"rgba", fmt.Sprintf("%d/%d/%d/%d", fb.RedBits, fb.GreenBits, fb.BlueBits, fb.AlphaBits),
		"depth", fb.DepthBits,
		"stencil", fb.StencilBits,
		"samples", fb.Samples,
		"refresh", w.RefreshRate(),
	)
	if setup != nil {
		setup(w)
	}

	for !w.ShouldClose() {
		if err := lib.PollEvents(); err != nil {
			return err
		}
		if frame != nil {
			frame(w)
		}
		if err := lib.SwapBuffers(); err != nil {
			return err
		}
	}
	return w.Close()
}

// glfwLogger tags backend records so they can be told apart from the
// application's own.
func glfwLogger() *slog.Logger {
	return slog.Default().With("component", "glfw")
}

func init() {
	slog.SetDefault(slog.New(tracelog.New(log.Default().Writer(), slog.LevelInfo)))
}
