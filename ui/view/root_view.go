package view

import (
	"image"
	"log/slog"

	"github.com/soocke/digit-viewer-go/config"
	"github.com/soocke/digit-viewer-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Handlers are the user actions RootView forwards to the presenter layer.
type Handlers struct {
	Next  func()
	Prev  func()
	First func()
	Exit  func()
}

// RootView composes the top-level layout: the digit canvas and a status line.
type RootView struct {
	cfg    *config.Config
	logger *slog.Logger

	Canvas      DigitCanvas
	StatusLabel *LabelWidget
}

// UI abstracts the subset of view operations needed by presenters, enabling decoupling
// from the concrete RootView implementation.
type UI interface {
	ShowDigit(img *image.RGBA) error
	SetStatus(text string)
}

func NewRootView(cfg *config.Config, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, logger: logger}
}

// Build constructs the layout and binds mouse and keyboard events.
// factor is the display upscale of the 28x28 frame.
func (rv *RootView) Build(factor int, h Handlers) {
	if rv == nil {
		return
	}
	rv.Canvas = NewDigitCanvas(factor)
	if dc, ok := rv.Canvas.(*digitCanvas); ok {
		Bind(dc.label, "<ButtonRelease-1>", Command(call(h.Next)))
		Bind(dc.label, "<ButtonRelease-3>", Command(call(h.Prev)))
	}
	pal := theme.CurrentPalette()
	rv.StatusLabel = Label(Txt("Label: ?"), Borderwidth(1), Relief("ridge"), Background(pal.Surface), Foreground(pal.Text))
	Grid(rv.StatusLabel, Row(1), Column(0), Sticky("we"), Padx("0.4m"), Pady("0.3m"))

	Bind(App, "<Right>", Command(call(h.Next)))
	Bind(App, "<Left>", Command(call(h.Prev)))
	Bind(App, "<Home>", Command(call(h.First)))
	Bind(App, "<Escape>", Command(call(h.Exit)))
	WmProtocol(App, "WM_DELETE_WINDOW", call(h.Exit))
}

func call(fn func()) func() {
	return func() {
		if fn != nil {
			fn()
		}
	}
}

// ShowDigit proxies to the digit canvas.
func (rv *RootView) ShowDigit(img *image.RGBA) error {
	if rv == nil || rv.Canvas == nil {
		return errNotBuilt
	}
	return rv.Canvas.Show(img)
}

// SetStatus updates the status line.
func (rv *RootView) SetStatus(text string) {
	if rv == nil || rv.StatusLabel == nil {
		return
	}
	defer func() { _ = recover() }()
	rv.StatusLabel.Configure(Txt(text))
}
