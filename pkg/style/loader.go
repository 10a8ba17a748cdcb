package style

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/depstyle/pkg/errors"
	"github.com/matzehuels/depstyle/pkg/style/resource"
)

// Loader reads style resources into configurations.
// The zero value is not usable; create loaders with [NewLoader].
type Loader struct {
	logger *log.Logger
}

// NewLoader creates a loader. If logger is nil, log.Default() is used.
func NewLoader(logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.Default()
	}
	return &Loader{logger: logger}
}

// Load reads the main style resource and merges each override into it, in
// argument order. Any failure (an unreadable resource, a syntax fault, an
// invalid shape or resolution name) aborts the whole load; there is no
// partial-success mode, so a bad override means no configuration at all.
func Load(main resource.Resource, overrides ...resource.Resource) (*Configuration, error) {
	return NewLoader(nil).Load(main, overrides...)
}

// Load implements the package-level [Load] with this loader's logger.
func (l *Loader) Load(main resource.Resource, overrides ...resource.Resource) (*Configuration, error) {
	cfg, err := l.read(main)
	if err != nil {
		return nil, err
	}

	for _, override := range overrides {
		overrideCfg, err := l.read(override)
		if err != nil {
			return nil, err
		}
		l.logger.Debug("merging style override", "resource", override.Name())
		cfg.Merge(overrideCfg)
	}

	return cfg, nil
}

func (l *Loader) read(res resource.Resource) (*Configuration, error) {
	rc, err := res.Open()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeResourceAccess, err, "unable to open style resource %s", res.Name())
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeResourceAccess, err, "unable to read style resource %s", res.Name())
	}

	doc, err := decodeDocument(res.Name(), data)
	if err != nil {
		return nil, err
	}

	cfg, err := doc.configuration()
	if err != nil {
		return nil, err
	}

	l.logger.Debug("loaded style configuration",
		"resource", res.Name(),
		"nodeRules", len(cfg.nodeRules),
		"scopeStyles", len(cfg.edgeScopeStyles),
		"resolutionStyles", len(cfg.edgeResolutionStyles))

	return cfg, nil
}
