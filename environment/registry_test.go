package environment

import (
	"testing"

	"github.com/go-test/deep"
)

func TestDetectPrefersLaterRegistration(t *testing.T) {
	setHostname(t, "x1.cluster")

	r := NewRegistry()
	r.Register(&Environment{Name: "a", HostnamePattern: "x1"})
	r.Register(&Environment{Name: "b", HostnamePattern: "x1"})

	env := r.Detect()
	if env.Name != "b" {
		t.Fatal("later registration must win, got:", env.Name)
	}
}

func TestDetectFallsBackToUnknown(t *testing.T) {
	setHostname(t, "nowhere")

	r := NewRegistry()
	r.Register(&Environment{Name: "a", HostnamePattern: "x1"})
	r.Register(&Environment{Name: "b", HostnamePattern: "x2"})

	env := r.Detect()
	if env != Unknown {
		t.Fatal("expected the unknown fallback, got:", env.Name)
	}
	if !env.IsPresent() {
		t.Fatal("fallback environment must always be present")
	}
}

func TestDetectEmptyRegistry(t *testing.T) {
	r := NewRegistry()
	if r.Detect() != Unknown {
		t.Fatal("empty registry must detect the unknown fallback")
	}
}

func TestRegisterDuplicateNameKeepsPosition(t *testing.T) {
	setHostname(t, "x1")

	r := NewRegistry()
	r.Register(&Environment{Name: "a", HostnamePattern: "x1"})
	r.Register(&Environment{Name: "b", HostnamePattern: "x1"})
	// re-registering "a" replaces the entry but not its position,
	// so "b" still wins detection
	r.Register(&Environment{Name: "a", HostnamePattern: "x1", Scheduler: &captureScheduler{}})

	if env := r.Detect(); env.Name != "b" {
		t.Fatal("duplicate registration must not reorder entries, got:", env.Name)
	}

	names := []string{}
	for _, env := range r.List() {
		names = append(names, env.Name)
	}
	if d := deep.Equal(names, []string{"a", "b"}); d != nil {
		t.Fatal("unexpected registry order:", d)
	}

	if _, err := r.List()[0].GetScheduler(); err != nil {
		t.Fatal("last registration under a name must win:", err)
	}
}

func TestListOrder(t *testing.T) {
	r := NewRegistry()
	r.Register(&Environment{Name: "first"})
	r.Register(&Environment{Name: "second"})
	r.Register(&Environment{Name: "third"})

	names := []string{}
	for _, env := range r.List() {
		names = append(names, env.Name)
	}
	if d := deep.Equal(names, []string{"first", "second", "third"}); d != nil {
		t.Fatal("unexpected registry order:", d)
	}
}
