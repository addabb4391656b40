// Package config reads workflow configuration values.
//
// Values live under the top-level "flow" section of a YAML
// configuration file, optionally nested one level under a namespace:
//
//	flow:
//	  eligible_jobs_max_lines: 25
//	  mycluster:
//	    account: abc123
package config

import (
	"fmt"
	"math"
)

// Kind names the expected type of a configuration value.
type Kind string

// Value kinds recognized by the schema.
const (
	Boolean Kind = "boolean"
	Number  Kind = "number"
	Integer Kind = "integer"
	String  Kind = "string"
)

// Schema lists the recognized flow configuration keys and their
// expected kinds. The schema is advisory at lookup time; Validate
// enforces it when a file is loaded.
var Schema = map[string]Kind{
	"import_packaged_environments":      Boolean,
	"status_performance_warn_threshold": Number,
	"show_traceback":                    Boolean,
	"eligible_jobs_max_lines":           Integer,
	"status_parallelization":            String,
}

// Defaults holds the documented default for each schema key.
var Defaults = map[string]interface{}{
	"import_packaged_environments":      true,
	"status_performance_warn_threshold": 0.2,
	"show_traceback":                    false,
	"eligible_jobs_max_lines":           10,
	"status_parallelization":            "none",
}

// KeyError reports a missing required configuration key by its fully
// qualified name, e.g. "flow.status_parallelization".
type KeyError struct {
	Key string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("missing configuration key %q", e.Key)
}

// Store holds the "flow" section of a configuration file. Lookups
// read the store directly on every call; nothing is cached.
type Store map[string]interface{}

// Require returns the value for key, optionally nested one level
// under ns. A missing key yields the caller-supplied default when one
// was given, and fails with a *KeyError naming the fully qualified
// key otherwise. Missing required keys are never silently defaulted.
func (s Store) Require(key, ns string, def ...interface{}) (interface{}, error) {
	section := map[string]interface{}(s)
	if ns != "" {
		section, _ = s[ns].(map[string]interface{})
	}
	if v, ok := section[key]; ok {
		return v, nil
	}
	if len(def) > 0 {
		return def[0], nil
	}
	k := key
	if ns != "" {
		k = ns + "." + key
	}
	return nil, &KeyError{Key: "flow." + k}
}

// Get returns the value for key, falling back to the schema default
// for recognized un-namespaced keys and to nil otherwise. Get never
// fails.
func (s Store) Get(key, ns string) interface{} {
	var def interface{}
	if ns == "" {
		def = Defaults[key]
	}
	v, _ := s.Require(key, ns, def)
	return v
}

// Validate checks every present schema key against its expected kind.
// Namespaced sections and unrecognized keys are advisory-free and
// left alone.
func (s Store) Validate() error {
	for key, kind := range Schema {
		v, ok := s[key]
		if !ok {
			continue
		}
		if !kindMatches(kind, v) {
			return fmt.Errorf("config key flow.%s: expected %s, got %T", key, kind, v)
		}
	}
	return nil
}

// kindMatches checks a parsed YAML value against a schema kind.
// YAML numbers parse as float64, so integers are floats with no
// fractional part.
func kindMatches(kind Kind, v interface{}) bool {
	switch kind {
	case Boolean:
		_, ok := v.(bool)
		return ok
	case Number:
		switch v.(type) {
		case float64, int, int64:
			return true
		}
		return false
	case Integer:
		switch x := v.(type) {
		case int, int64:
			return true
		case float64:
			return x == math.Trunc(x)
		}
		return false
	case String:
		_, ok := v.(string)
		return ok
	}
	return false
}
