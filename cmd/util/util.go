// Package util contains helpers shared by the CLI commands.
package util

import (
	"github.com/compbio-workflows/flume/config"
	"github.com/compbio-workflows/flume/environment"
)

// InitEnvironments loads the flow config at confPath (which may be
// empty) and registers the packaged environments unless the
// "import_packaged_environments" key disables that. It returns the
// loaded store for further lookups.
func InitEnvironments(confPath string) (config.Store, error) {
	store, err := config.ParseFile(confPath)
	if err != nil {
		return nil, err
	}
	if on, _ := store.Get("import_packaged_environments", "").(bool); on {
		environment.RegisterDefaults()
	}
	return store, nil
}
