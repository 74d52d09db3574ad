// Package window handles SDL2 window and OpenGL context creation.
package window

import (
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/primforge/internal/config"
	"github.com/Faultbox/primforge/internal/logger"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Window wraps SDL2 window and OpenGL context.
type Window struct {
	sdlWindow    *sdl.Window
	glContext    sdl.GLContext
	swapInterval int
}

// New creates a window with an OpenGL 4.1 core context.
func New(title string, cfg config.WindowConfig) (*Window, error) {
	logger.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	// OpenGL 4.1 Core Profile (max supported on macOS)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)

	flags := windowFlags(cfg)

	w := &Window{}
	var err error
	w.sdlWindow, err = sdl.CreateWindow(
		title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		flags,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	w.glContext, err = w.sdlWindow.GLCreateContext()
	if err != nil {
		w.sdlWindow.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_GL_CreateContext failed: %w", err)
	}

	w.setSwapInterval(cfg.VSync)

	logger.Info("window created",
		zap.String("title", title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Int("swap_interval", w.swapInterval),
		zap.Float32("pixel_scale", w.PixelScale()),
	)

	return w, nil
}

// windowFlags returns the SDL creation flags for cfg.
func windowFlags(cfg config.WindowConfig) uint32 {
	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_RESIZABLE | sdl.WINDOW_ALLOW_HIGHDPI)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}
	return flags
}

// swapIntervals lists the swap intervals to try, best first. Adaptive vsync
// (-1) is not supported everywhere, so plain vsync follows it.
func swapIntervals(vsync bool) []int {
	if vsync {
		return []int{-1, 1}
	}
	return []int{0}
}

func (w *Window) setSwapInterval(vsync bool) {
	for _, interval := range swapIntervals(vsync) {
		err := sdl.GLSetSwapInterval(interval)
		if err == nil {
			w.swapInterval = interval
			logger.Debug("swap interval set", zap.Int("interval", interval))
			return
		}
		logger.Debug("swap interval rejected", zap.Int("interval", interval), zap.Error(err))
	}
	logger.Warn("could not set swap interval", zap.Bool("vsync", vsync))
}

// SwapInterval returns the swap interval in effect: 0 off, 1 vsync, -1
// adaptive vsync.
func (w *Window) SwapInterval() int {
	return w.swapInterval
}

// PixelScale returns drawable pixels per window coordinate, 2 on a typical
// Retina display.
func (w *Window) PixelScale() float32 {
	width, _ := w.Size()
	dw, _ := w.DrawableSize()
	return pixelScale(width, dw)
}

func pixelScale(windowWidth int, drawableWidth int32) float32 {
	if windowWidth <= 0 || drawableWidth <= 0 {
		return 1
	}
	return float32(drawableWidth) / float32(windowWidth)
}

// Close destroys the window and cleans up SDL2.
func (w *Window) Close() {
	logger.Info("closing window")

	if w.glContext != nil {
		sdl.GLDeleteContext(w.glContext)
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
	}

	sdl.Quit()
}

// SwapBuffers swaps the OpenGL buffers.
func (w *Window) SwapBuffers() {
	w.sdlWindow.GLSwap()
}

// Size returns the window size in screen coordinates, the space mouse
// events are reported in.
func (w *Window) Size() (int, int) {
	width, height := w.sdlWindow.GetSize()
	return int(width), int(height)
}

// DrawableSize returns the framebuffer size in pixels. It differs from Size
// on HiDPI displays.
func (w *Window) DrawableSize() (int32, int32) {
	return w.sdlWindow.GLGetDrawableSize()
}

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) {
	w.sdlWindow.SetTitle(title)
}
