package source

import (
	"log/slog"

	"github.com/soocke/digit-viewer-go/assets"
	"github.com/soocke/digit-viewer-go/config"
	"github.com/soocke/digit-viewer-go/domain/idx"
	"github.com/soocke/digit-viewer-go/ui/model"
)

// Load returns the dataset selected by cfg: the embedded demo set when
// cfg.Demo is set, otherwise the configured IDX files.
func Load(cfg *config.Config, logger *slog.Logger) (*idx.Dataset, error) {
	var (
		ds  *idx.Dataset
		err error
	)
	if cfg.Demo {
		ds, err = assets.DemoDataset(cfg.LabelsPath != "", cfg.Limit)
	} else {
		ds, err = idx.Load(cfg.ImagesPath, cfg.LabelsPath, cfg.Limit)
	}
	if err != nil {
		return nil, err
	}
	if logger != nil {
		logger.Info("dataset loaded",
			"demo", cfg.Demo,
			"images", len(ds.Images),
			"labels", len(ds.Labels),
			"path", cfg.ImagesPath,
		)
		if ds.Labels != nil && len(ds.Labels) != len(ds.Images) {
			logger.Warn("label count differs from image count", "images", len(ds.Images), "labels", len(ds.Labels))
		}
	}
	return ds, nil
}

// Policy maps the configured bounds mode to a view model policy.
func Policy(cfg *config.Config) model.Policy {
	if cfg != nil && cfg.Bounds == "wrap" {
		return model.PolicyWrap
	}
	return model.PolicyClamp
}
