package config

import (
	"errors"
	"testing"
)

func TestGetDefaultFallback(t *testing.T) {
	s := Store{}

	v := s.Get("status_parallelization", "")
	if v != "none" {
		t.Fatal("unexpected default:", v)
	}
	if v := s.Get("eligible_jobs_max_lines", ""); v != 10 {
		t.Fatal("unexpected default:", v)
	}
	if v := s.Get("no_such_key", ""); v != nil {
		t.Fatal("unknown keys must default to nil, got:", v)
	}
}

func TestGetNamespacedNoSchemaDefault(t *testing.T) {
	s := Store{}

	// schema defaults only apply to un-namespaced keys
	if v := s.Get("status_parallelization", "mycluster"); v != nil {
		t.Fatal("expected nil for namespaced lookup, got:", v)
	}
}

func TestRequireMissingKey(t *testing.T) {
	s := Store{}

	_, err := s.Require("status_parallelization", "")
	if err == nil {
		t.Fatal("expected KeyError")
	}
	var kerr *KeyError
	if !errors.As(err, &kerr) {
		t.Fatal("unexpected error type:", err)
	}
	if kerr.Key != "flow.status_parallelization" {
		t.Fatal("error must name the fully qualified key:", kerr.Key)
	}
}

func TestRequireMissingNamespacedKey(t *testing.T) {
	s := Store{}

	_, err := s.Require("account", "mycluster")
	var kerr *KeyError
	if !errors.As(err, &kerr) {
		t.Fatal("unexpected error:", err)
	}
	if kerr.Key != "flow.mycluster.account" {
		t.Fatal("error must name the fully qualified key:", kerr.Key)
	}
}

func TestRequireCallerDefault(t *testing.T) {
	s := Store{}

	v, err := s.Require("show_traceback", "", true)
	if err != nil {
		t.Fatal(err)
	}
	if v != true {
		t.Fatal("unexpected value:", v)
	}
}

func TestRequireNamespacedValue(t *testing.T) {
	yaml := `
flow:
  show_traceback: true
  mycluster:
    account: abc123
`
	s, err := Parse([]byte(yaml))
	if err != nil {
		t.Fatal(err)
	}

	v, err := s.Require("account", "mycluster")
	if err != nil {
		t.Fatal(err)
	}
	if v != "abc123" {
		t.Fatal("unexpected value:", v)
	}

	v, err = s.Require("show_traceback", "")
	if err != nil {
		t.Fatal(err)
	}
	if v != true {
		t.Fatal("unexpected value:", v)
	}
}

func TestParseNoFlowSection(t *testing.T) {
	s, err := Parse([]byte("other: 1\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(s) != 0 {
		t.Fatal("expected an empty store")
	}
}

func TestValidate(t *testing.T) {
	s, err := Parse([]byte(`
flow:
  eligible_jobs_max_lines: 25
  status_performance_warn_threshold: 0.5
  status_parallelization: process
`))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Validate(); err != nil {
		t.Fatal(err)
	}

	bad, err := Parse([]byte(`
flow:
  show_traceback: "yes"
`))
	if err != nil {
		t.Fatal(err)
	}
	if err := bad.Validate(); err == nil {
		t.Fatal("expected a validation error for a string boolean")
	}
}
