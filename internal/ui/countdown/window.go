package countdown

import (
	"image/color"
	"sync"

	core "taka8rie/internal/core/countdown"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// Config defines countdown window visuals.
type Config struct {
	Title      string
	Fullscreen bool
}

var (
	backgroundColor = color.NRGBA{R: 20, G: 16, B: 34, A: 255}
	defaultColor    = color.NRGBA{R: 232, G: 190, B: 66, A: 255}
	lightColor      = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	dangerColor     = color.NRGBA{R: 241, G: 70, B: 104, A: 255}
)

const (
	windowWidthFraction  = float32(0.5)
	windowHeightFraction = float32(0.3)
	defaultScreenWidth   = float32(1920)
	defaultScreenHeight  = float32(1080)
	textSize             = float32(32)
)

// Window shows the countdown text over the confetti layer.
type Window struct {
	app        fyne.App
	window     fyne.Window
	config     Config
	background *canvas.Rectangle
	layer      *fyne.Container
	label      *canvas.Text

	mu     sync.Mutex
	text   string
	styles map[core.Style]bool
}

// New creates the countdown window. It is hidden until Show is called.
func New(app fyne.App, config Config) *Window {
	window := app.NewWindow(config.Title)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)

	background := canvas.NewRectangle(backgroundColor)
	layer := container.NewWithoutLayout()

	label := canvas.NewText("", defaultColor)
	label.Alignment = fyne.TextAlignCenter
	label.TextStyle = fyne.TextStyle{Bold: true}
	label.TextSize = textSize

	window.SetContent(container.NewStack(background, layer, container.NewCenter(label)))
	// Closing only hides; the tray keeps the app alive.
	window.SetCloseIntercept(window.Hide)

	display := &Window{
		app:        app,
		window:     window,
		config:     config,
		background: background,
		layer:      layer,
		label:      label,
		styles:     make(map[core.Style]bool),
	}
	display.applyWindowMode()
	return display
}

// Layer returns the container the celebration draws into.
func (display *Window) Layer() *fyne.Container {
	return display.layer
}

// SetText replaces the displayed text.
func (display *Window) SetText(text string) {
	display.mu.Lock()
	display.text = text
	display.mu.Unlock()

	display.label.Text = text
	display.label.Refresh()
}

// Text returns the displayed text.
func (display *Window) Text() string {
	display.mu.Lock()
	defer display.mu.Unlock()
	return display.text
}

// AddStyle applies a style class.
func (display *Window) AddStyle(style core.Style) {
	display.setStyle(style, true)
}

// RemoveStyle removes a style class.
func (display *Window) RemoveStyle(style core.Style) {
	display.setStyle(style, false)
}

// HasStyle reports whether a style class is applied.
func (display *Window) HasStyle(style core.Style) bool {
	display.mu.Lock()
	defer display.mu.Unlock()
	return display.styles[style]
}

// TextColor returns the current label color.
func (display *Window) TextColor() color.Color {
	return display.label.Color
}

// Show brings the window to front.
func (display *Window) Show() {
	display.applyWindowMode()
	display.window.Show()
	display.window.RequestFocus()
}

// SetOnClose replaces the close handler. By default closing hides the window.
func (display *Window) SetOnClose(handler func()) {
	display.window.SetCloseIntercept(handler)
}

// Hide hides the window.
func (display *Window) Hide() {
	display.window.Hide()
}

// SetFullscreen switches between fullscreen and the centered window.
func (display *Window) SetFullscreen(enabled bool) {
	display.config.Fullscreen = enabled
	display.applyWindowMode()
}

func (display *Window) setStyle(style core.Style, enabled bool) {
	display.mu.Lock()
	if enabled {
		display.styles[style] = true
	} else {
		delete(display.styles, style)
	}
	textColor := styleColor(display.styles)
	display.mu.Unlock()

	display.label.Color = textColor
	display.label.Refresh()
}

func styleColor(styles map[core.Style]bool) color.NRGBA {
	switch {
	case styles[core.StyleDanger]:
		return dangerColor
	case styles[core.StyleLight]:
		return lightColor
	default:
		return defaultColor
	}
}

func (display *Window) applyWindowMode() {
	if display.config.Fullscreen {
		display.window.SetFullScreen(true)
		return
	}
	display.window.SetFullScreen(false)
	display.resizeToScreenFraction()
}

func (display *Window) resizeToScreenFraction() {
	screenSize := fyne.NewSize(defaultScreenWidth, defaultScreenHeight)
	canvasSize := display.window.Canvas().Size()
	if canvasSize.Width >= 1024 && canvasSize.Height >= 720 {
		screenSize = canvasSize
	}

	width := screenSize.Width * windowWidthFraction
	height := screenSize.Height * windowHeightFraction
	minSize := display.window.Content().MinSize()
	if width < minSize.Width {
		width = minSize.Width
	}
	if height < minSize.Height {
		height = minSize.Height
	}

	display.window.Resize(fyne.NewSize(width, height))
	display.window.CenterOnScreen()
}
