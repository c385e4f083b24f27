package session

import "fmt"

// Registry holds the declared sessions in declaration order and resolves
// requested session lists into execution order. It is immutable after
// construction.
type Registry struct {
	sessions []Session
	byName   map[string]int
}

// NewRegistry validates the declared sessions and builds a registry.
// Session names must be unique and every dependency must name a declared
// session.
func NewRegistry(sessions []Session) (*Registry, error) {
	r := &Registry{
		sessions: make([]Session, 0, len(sessions)),
		byName:   make(map[string]int, len(sessions)),
	}
	for _, s := range sessions {
		if s.Name == "" {
			return nil, fmt.Errorf("session without a name")
		}
		if _, exists := r.byName[s.Name]; exists {
			return nil, fmt.Errorf("duplicate session %q", s.Name)
		}
		r.byName[s.Name] = len(r.sessions)
		r.sessions = append(r.sessions, s)
	}
	for _, s := range r.sessions {
		for _, dep := range s.DependsOn {
			if _, ok := r.byName[dep]; !ok {
				return nil, fmt.Errorf("session %q depends on undeclared session %q", s.Name, dep)
			}
		}
	}
	return r, nil
}

// Sessions returns the declared sessions in declaration order.
func (r *Registry) Sessions() []Session {
	out := make([]Session, len(r.sessions))
	copy(out, r.sessions)
	return out
}

// Lookup returns the declared session with the given name.
func (r *Registry) Lookup(name string) (Session, bool) {
	idx, ok := r.byName[name]
	if !ok {
		return Session{}, false
	}
	return r.sessions[idx], true
}

// Defaults returns the sessions enabled by default, in declaration order.
func (r *Registry) Defaults() []Session {
	var defaults []Session
	for _, s := range r.sessions {
		if s.Default {
			defaults = append(defaults, s)
		}
	}
	return defaults
}

// visit states for the dependency traversal.
const (
	colorWhite = iota // not visited
	colorGrey         // on the active expansion path
	colorBlack        // fully expanded
)

// Resolve expands a requested session list into the final ordered execution
// list. An empty request resolves the default sessions. Dependencies are
// placed before their dependents, each session appears at most once, and the
// order is deterministic for identical input: ties break by first-requested,
// then by registry declaration order.
//
// Unknown requested names fail with *UnknownSessionError up front; a
// dependency cycle fails with *CycleError naming the offending cycle.
func (r *Registry) Resolve(requested []string) ([]Session, error) {
	effective := requested
	if len(effective) == 0 {
		for _, s := range r.Defaults() {
			effective = append(effective, s.Name)
		}
	} else {
		for _, name := range requested {
			if _, ok := r.byName[name]; !ok {
				return nil, &UnknownSessionError{Name: name}
			}
		}
	}

	colors := make([]int, len(r.sessions))
	var order []Session
	var path []string

	var expand func(idx int) error
	expand = func(idx int) error {
		switch colors[idx] {
		case colorBlack:
			return nil
		case colorGrey:
			name := r.sessions[idx].Name
			return &CycleError{Cycle: cycleFrom(path, name)}
		}
		colors[idx] = colorGrey
		path = append(path, r.sessions[idx].Name)
		for _, dep := range r.sessions[idx].DependsOn {
			if err := expand(r.byName[dep]); err != nil {
				return err
			}
		}
		path = path[:len(path)-1]
		colors[idx] = colorBlack
		order = append(order, r.sessions[idx])
		return nil
	}

	for _, name := range effective {
		if err := expand(r.byName[name]); err != nil {
			return nil, err
		}
	}
	return order, nil
}

// cycleFrom trims the active path down to the cycle and closes it, so the
// error reads "b -> a -> b" rather than the whole expansion path.
func cycleFrom(path []string, name string) []string {
	start := 0
	for i, n := range path {
		if n == name {
			start = i
			break
		}
	}
	cycle := make([]string, 0, len(path)-start+1)
	cycle = append(cycle, path[start:]...)
	cycle = append(cycle, name)
	return cycle
}
