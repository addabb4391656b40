package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ghodss/yaml"
)

// Parse parses a YAML document and returns its flow section. A
// document without a flow section yields an empty store.
func Parse(raw []byte) (Store, error) {
	var doc struct {
		Flow Store `json:"flow"`
	}
	err := yaml.Unmarshal(raw, &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %v", err)
	}
	if doc.Flow == nil {
		doc.Flow = Store{}
	}
	return doc.Flow, nil
}

// ParseFile parses a flow config file, which is formatted in YAML,
// validates it against the schema, and returns its flow section.
func ParseFile(relpath string) (Store, error) {
	if relpath == "" {
		return Store{}, nil
	}

	// Try to get absolute path. If it fails, fall back to relative path.
	path, abserr := filepath.Abs(relpath)
	if abserr != nil {
		path = relpath
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config at path %s: \n%v", path, err)
	}

	store, err := Parse(source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config at path %s: %v", path, err)
	}

	if err := store.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config at path %s: %v", path, err)
	}
	return store, nil
}
