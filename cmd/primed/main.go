// primed is the primforge editor: an ImGui shell around the editor core with
// a 3D viewport, an outliner and a property panel.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/primforge/internal/config"
	"github.com/Faultbox/primforge/internal/editor"
	"github.com/Faultbox/primforge/internal/engine/debug"
	"github.com/Faultbox/primforge/internal/engine/framebuffer"
	"github.com/Faultbox/primforge/internal/engine/input"
	"github.com/Faultbox/primforge/internal/engine/renderer"
	"github.com/Faultbox/primforge/internal/logger"
)

const appTitle = "primforge"

func main() {
	runtime.LockOSThread()

	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== primed ===")

	app, err := NewApp(cfg)
	if err != nil {
		logger.Error("failed to start editor", zap.Error(err))
		os.Exit(1)
	}
	defer app.Close()

	if cfg.Editor.Project != "" {
		app.openProject(cfg.Editor.Project)
	}

	app.Run()
	logger.Info("editor closed normally")
}

// App holds the editor shell state.
type App struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]
	cfg     *config.Config

	editor      *editor.Editor
	renderer    *renderer.Renderer
	viewport    *framebuffer.Framebuffer
	screenshots *debug.ScreenshotCapture
	pointer     input.PointerState

	// Current project file, empty until saved or opened
	projectPath string

	// Native dialogs run off the main thread and report back here
	dialogs    chan dialogResult
	dialogOpen bool

	// Property panel edit buffers, reset when the selection changes
	props propertyBuffers
}

// NewApp creates the window, GL resources and editor.
func NewApp(cfg *config.Config) (*App, error) {
	app := &App{
		cfg:         cfg,
		editor:      editor.NewFromConfig(cfg),
		screenshots: debug.NewScreenshotCapture(filepath.Join(config.ConfigDir(), "screenshots"), "primforge"),
		dialogs:     make(chan dialogResult, 4),
	}

	var err error
	app.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	app.backend.SetBgColor(imgui.NewVec4(0.1, 0.1, 0.12, 1.0))
	app.backend.CreateWindow(appTitle, cfg.Window.Width, cfg.Window.Height)

	if err := renderer.InitGL(); err != nil {
		return nil, err
	}

	if app.renderer, err = renderer.New(renderer.ConfigFrom(cfg)); err != nil {
		return nil, err
	}
	if app.viewport, err = framebuffer.New(int32(cfg.Window.Width), int32(cfg.Window.Height)); err != nil {
		app.renderer.Close()
		return nil, err
	}

	return app, nil
}

// Close releases GL resources.
func (app *App) Close() {
	if app.viewport != nil {
		app.viewport.Destroy()
	}
	if app.renderer != nil {
		app.renderer.Close()
	}
}

// Run starts the main loop. It returns when the window is closed.
func (app *App) Run() {
	app.backend.Run(app.render)
}

// render draws one frame of UI.
func (app *App) render() {
	app.drainDialogs()
	app.handleShortcuts()
	app.renderMenuBar()

	viewport := imgui.MainViewport()
	workPos := viewport.WorkPos()
	workSize := viewport.WorkSize()

	leftPanelWidth := float32(240)
	rightPanelWidth := float32(280)
	statusBarHeight := float32(30)
	contentHeight := workSize.Y - statusBarHeight
	centerWidth := workSize.X - leftPanelWidth - rightPanelWidth

	flags := imgui.WindowFlagsNoMove | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoCollapse

	// Left panel - tools and outliner
	imgui.SetNextWindowPos(workPos)
	imgui.SetNextWindowSize(imgui.NewVec2(leftPanelWidth, contentHeight))
	if imgui.BeginV("Scene", nil, flags) {
		app.renderToolbox()
		imgui.Separator()
		app.renderOutliner()
	}
	imgui.End()

	// Center panel - 3D viewport
	imgui.SetNextWindowPos(imgui.NewVec2(workPos.X+leftPanelWidth, workPos.Y))
	imgui.SetNextWindowSize(imgui.NewVec2(centerWidth, contentHeight))
	imgui.PushStyleVarVec2(imgui.StyleVarWindowPadding, imgui.NewVec2(0, 0))
	if imgui.BeginV("Viewport", nil, flags|imgui.WindowFlagsNoScrollbar|imgui.WindowFlagsNoScrollWithMouse) {
		app.renderViewport()
	}
	imgui.End()
	imgui.PopStyleVar()

	// Right panel - properties of the selection
	imgui.SetNextWindowPos(imgui.NewVec2(workPos.X+leftPanelWidth+centerWidth, workPos.Y))
	imgui.SetNextWindowSize(imgui.NewVec2(rightPanelWidth, contentHeight))
	if imgui.BeginV("Properties", nil, flags) {
		app.renderProperties()
	}
	imgui.End()

	// Status bar at bottom
	imgui.SetNextWindowPos(imgui.NewVec2(workPos.X, workPos.Y+contentHeight))
	imgui.SetNextWindowSize(imgui.NewVec2(workSize.X, statusBarHeight))
	statusFlags := flags | imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoScrollbar
	if imgui.BeginV("##StatusBar", nil, statusFlags) {
		app.renderStatusBar()
	}
	imgui.End()
}

func (app *App) renderMenuBar() {
	if !imgui.BeginMainMenuBar() {
		return
	}
	if imgui.BeginMenu("File") {
		if imgui.MenuItemBool("New") {
			app.editor.Clear()
			app.setProjectPath("")
		}
		if imgui.MenuItemBool("Open...") {
			app.showDialog(dialogOpenProject)
		}
		if imgui.MenuItemBool("Save") {
			app.saveProject()
		}
		if imgui.MenuItemBool("Save As...") {
			app.showDialog(dialogSaveProject)
		}
		imgui.Separator()
		if imgui.MenuItemBool("Export STL...") {
			app.showDialog(dialogExportSTL)
		}
		imgui.Separator()
		if imgui.MenuItemBool("Save Settings") {
			app.saveSettings()
		}
		if imgui.MenuItemBool("Exit") {
			os.Exit(0)
		}
		imgui.EndMenu()
	}
	if imgui.BeginMenu("Edit") {
		if imgui.MenuItemBool("Duplicate") {
			app.editor.DuplicateSelected()
		}
		if imgui.MenuItemBool("Delete") {
			app.editor.DeleteSelected()
		}
		if imgui.MenuItemBool("Clear Scene") {
			app.editor.Clear()
		}
		imgui.EndMenu()
	}
	if imgui.BeginMenu("View") {
		if imgui.MenuItemBool("Focus Selection") {
			app.editor.FocusSelected()
		}
		if imgui.MenuItemBool("Reset Camera") {
			app.editor.Camera.Reset()
		}
		if imgui.MenuItemBool("Save Screenshot") {
			app.captureScreenshot()
		}
		imgui.EndMenu()
	}
	imgui.EndMainMenuBar()
}

func (app *App) renderStatusBar() {
	ed := app.editor
	snap := "off"
	if s := ed.Snap(); s.Enabled {
		snap = fmt.Sprintf("%g", s.Step)
	}
	imgui.Text(fmt.Sprintf("Objects: %d | Tool: %s | Snap: %s", ed.Scene.Len(), ed.Tool(), snap))
	if status := ed.Status(); status != "" {
		imgui.SameLine()
		imgui.TextDisabled("| " + status)
	}
}

// setProjectPath records the current project file and updates the title.
func (app *App) setProjectPath(path string) {
	app.projectPath = path
	title := appTitle
	if path != "" {
		title = fmt.Sprintf("%s - %s", appTitle, filepath.Base(path))
	}
	app.backend.SetWindowTitle(title)
}

func (app *App) openProject(path string) {
	if app.editor.LoadProject(path) == nil {
		app.setProjectPath(path)
	}
}

func (app *App) saveProject() {
	if app.projectPath == "" {
		app.showDialog(dialogSaveProject)
		return
	}
	_ = app.editor.SaveProject(app.projectPath)
}

// saveSettings writes the current tool and snap settings to the config file.
func (app *App) saveSettings() {
	snap := app.editor.Snap()
	app.cfg.Editor.Tool = app.editor.Tool().String()
	app.cfg.Editor.SnapEnabled = snap.Enabled
	app.cfg.Editor.SnapStep = snap.Step
	if err := app.cfg.Save(); err != nil {
		logger.Warn("saving settings failed", zap.Error(err))
		app.editor.SetStatus("Settings not saved: %v", err)
		return
	}
	app.editor.SetStatus("Settings saved")
}

func (app *App) captureScreenshot() {
	path, err := app.screenshots.Capture(app.viewport.Snapshot())
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		app.editor.SetStatus("Screenshot failed: %v", err)
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
	app.editor.SetStatus("Screenshot saved: %s", filepath.Base(path))
}
