package app

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/digit-viewer-go/config"
	"github.com/soocke/digit-viewer-go/debug"
	"github.com/soocke/digit-viewer-go/domain/idx"
	"github.com/soocke/digit-viewer-go/ui/images"
	"github.com/soocke/digit-viewer-go/ui/presenter"
	"github.com/soocke/digit-viewer-go/ui/theme"
	"github.com/soocke/digit-viewer-go/ui/view"
)

const (
	memLogInterval = 2 * time.Second
	statusHeight   = 40 // px reserved below the digit for the status line
)

type app struct {
	config *config.Config
	logger *slog.Logger
	c      *AppContainer

	stop     chan struct{}
	stopOnce sync.Once
	err      error // first redraw failure; ends the event loop
}

// NewApp configures the root window for the given container.
func NewApp(cfg *config.Config, logger *slog.Logger, c *AppContainer) *app {
	a := &app{config: cfg, logger: logger, c: c, stop: make(chan struct{})}
	App.WmTitle(cfg.Title)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", cfg.WindowWidth, cfg.WindowHeight))
	return a
}

// DisplayFactor returns the integer upscale used to show a 28x28 digit.
func DisplayFactor(cfg *config.Config) int {
	if cfg.Scale > 0 {
		return cfg.Scale
	}
	return images.FitFactor(idx.Cols, idx.Rows, cfg.WindowWidth, cfg.WindowHeight-statusHeight)
}

// Start builds the UI, draws the first digit and runs the Tk event loop
// until exit. It returns the redraw failure that stopped the loop, if any.
func (a *app) Start() error {
	theme.SetDark(a.config.DarkMode)
	theme.InitStyles()

	p := a.c.Presenter
	a.c.RootView.Build(DisplayFactor(a.config), view.Handlers{
		Next:  func() { a.handle(p.Next()) },
		Prev:  func() { a.handle(p.Prev()) },
		First: func() { a.handle(p.First()) },
		Exit:  a.exitHandler,
	})

	if a.config.Debug {
		debug.StartMemLogger(memLogInterval, a.logger, a.stop)
	}

	a.handle(p.Redraw())
	if a.err == nil {
		App.Wait()
	}
	return a.err
}

// handle stops the event loop on the first redraw failure.
func (a *app) handle(err error) {
	if err == nil || a.err != nil {
		return
	}
	a.err = err
	var se *presenter.SurfaceError
	if errors.As(err, &se) {
		a.logger.Error("display failed", "error", se.Err)
	} else {
		a.logger.Error("redraw failed", "error", err)
	}
	a.exitHandler()
}

func (a *app) exitHandler() {
	a.stopOnce.Do(func() {
		close(a.stop)
		Destroy(App)
	})
}
