package catalog

import (
	"os"
	"path/filepath"

	"github.com/provisor/provisor/internal/core"
	"github.com/provisor/provisor/internal/util"

	validator "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

var log = util.GetLogger("catalog")

type catalogFile struct {
	Applications []core.ApplicationDefinition `yaml:"applications"`
}

// Manager holds the application definitions available for installation and
// implements core.Catalog. Definitions are immutable after loading.
type Manager struct {
	apps  map[string]core.ApplicationDefinition
	order []string
}

// CreateManager loads and validates the application catalog from a YAML file
func CreateManager(path string) (*Manager, error) {
	filename, _ := filepath.Abs(path)
	log.Infof("Loading application catalog from '%s'", filename)

	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to read application catalog '%s'", path)
	}

	cf := catalogFile{}
	err = yaml.Unmarshal(content, &cf)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to parse application catalog '%s'", path)
	}

	validate := validator.New()
	manager := &Manager{apps: map[string]core.ApplicationDefinition{}}
	for _, app := range cf.Applications {
		err = validate.Struct(app)
		if err != nil {
			return nil, errors.Wrapf(err, "Invalid definition for application '%s'", app.ID)
		}
		if _, found := manager.apps[app.ID]; found {
			return nil, errors.Errorf("Duplicate application id '%s' in catalog", app.ID)
		}
		manager.apps[app.ID] = app
		manager.order = append(manager.order, app.ID)
	}

	log.Infof("Loaded %d application(s) from catalog", len(manager.apps))
	return manager, nil
}

// GetApplication returns the definition for the provided application id
func (m *Manager) GetApplication(id string) (core.ApplicationDefinition, error) {
	app, found := m.apps[id]
	if found == false {
		return core.ApplicationDefinition{}, core.NewTypedError("Could not find application "+id, core.ErrUnknownApplication)
	}
	return app, nil
}

// GetAll returns all the applications in the catalog, in file order
func (m *Manager) GetAll() []core.ApplicationDefinition {
	apps := make([]core.ApplicationDefinition, 0, len(m.order))
	for _, id := range m.order {
		apps = append(apps, m.apps[id])
	}
	return apps
}
