package app

import (
	"log/slog"

	"github.com/soocke/digit-viewer-go/app/source"
	"github.com/soocke/digit-viewer-go/config"
	"github.com/soocke/digit-viewer-go/domain/idx"
	"github.com/soocke/digit-viewer-go/ui/model"
	"github.com/soocke/digit-viewer-go/ui/presenter"
	"github.com/soocke/digit-viewer-go/ui/view"
)

// AppContainer assembles the dataset, view model, presenter and root view.
type AppContainer struct {
	Config    *config.Config
	Logger    *slog.Logger
	Dataset   *idx.Dataset
	Model     *model.ViewModel
	RootView  *view.RootView
	UI        view.UI
	Presenter *presenter.DigitPresenter
}

// BuildContainer decodes the dataset and constructs all components.
// Decode errors are returned unchanged; no partial dataset is usable.
func BuildContainer(cfg *config.Config, logger *slog.Logger) (*AppContainer, error) {
	c := &AppContainer{Config: cfg, Logger: logger}
	ds, err := source.Load(cfg, logger)
	if err != nil {
		return nil, err
	}
	c.Dataset = ds
	c.Model = model.NewViewModel(ds.Images, ds.Labels, source.Policy(cfg))
	// View widgets are built by the app once the Tk window is configured.
	c.RootView = view.NewRootView(cfg, logger)
	c.UI = c.RootView
	c.Presenter = presenter.NewDigitPresenter(c.Model, c.UI, logger)
	return c, nil
}
