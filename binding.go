package cellophane

import (
	"sort"
	"sync"
)

// Binding describes one wrapper kind and the external function that
// releases it.
type Binding struct {
	// Probe checks that Function can be resolved on this host. Nil means
	// the function is linked statically.
	Probe func() error

	Kind     string
	Library  string
	Function string

	// Context names the wrapper kind whose handle must outlive values of
	// this kind. Empty for kinds released on their own.
	Context string
}

var (
	bindings   = make(map[string]Binding)
	bindingsMu sync.RWMutex
)

// Register adds bindings to the process-wide table. A later registration of
// the same kind replaces the earlier one.
func Register(bs ...Binding) {
	bindingsMu.Lock()
	defer bindingsMu.Unlock()
	for _, b := range bs {
		bindings[b.Kind] = b
	}
}

// Lookup returns the binding registered for kind.
func Lookup(kind string) (Binding, bool) {
	bindingsMu.RLock()
	defer bindingsMu.RUnlock()
	b, ok := bindings[kind]
	return b, ok
}

// Bindings returns every registered binding sorted by kind.
func Bindings() []Binding {
	bindingsMu.RLock()
	out := make([]Binding, 0, len(bindings))
	for _, b := range bindings {
		out = append(out, b)
	}
	bindingsMu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Kind < out[j].Kind })
	return out
}

// Resolve runs the probe of kind's binding.
func (b Binding) Resolve() error {
	if b.Probe == nil {
		return nil
	}
	return b.Probe()
}
