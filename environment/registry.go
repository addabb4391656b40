package environment

// Registry is an ordered collection of environments. Order matters:
// Detect walks the registry in reverse registration order, so
// environments registered later take precedence over earlier, more
// generic ones without needing explicit priority numbers.
//
// A registry is populated once during process initialization and is
// read-only afterwards, so concurrent readers need no locking.
type Registry struct {
	names []string
	envs  map[string]*Environment
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{envs: map[string]*Environment{}}
}

// Register appends env to the registry. Registering a name twice
// replaces the earlier entry in place, keeping its position in the
// detection order.
func (r *Registry) Register(env *Environment) {
	if _, ok := r.envs[env.Name]; !ok {
		r.names = append(r.names, env.Name)
	}
	r.envs[env.Name] = env
}

// Detect returns the last registered environment present on the
// current host. Detection never fails: when nothing matches, the
// Unknown environment is returned.
func (r *Registry) Detect() *Environment {
	for i := len(r.names) - 1; i >= 0; i-- {
		if env := r.envs[r.names[i]]; env.IsPresent() {
			return env
		}
	}
	return Unknown
}

// List returns the registered environments in registration order.
func (r *Registry) List() []*Environment {
	envs := make([]*Environment, 0, len(r.names))
	for _, name := range r.names {
		envs = append(envs, r.envs[name])
	}
	return envs
}

var registry = NewRegistry()

// Register adds env to the default registry.
func Register(env *Environment) {
	registry.Register(env)
}

// Detect returns the present environment from the default registry.
func Detect() *Environment {
	return registry.Detect()
}

// List returns the default registry's environments in registration order.
func List() []*Environment {
	return registry.List()
}
