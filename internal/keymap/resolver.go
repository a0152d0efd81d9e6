package keymap

import "slices"

// Resolver maps key strings to actions.
type Resolver struct {
	actions  map[string]Action
	keys     map[Action][]string
	shadowed []string
}

// NewResolver indexes bindings. When a key appears in more than one
// binding the last one wins and the key is reported by Shadowed.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		actions: make(map[string]Action),
		keys:    make(map[Action][]string),
	}
	for _, b := range bindings {
		for _, key := range b.Keys {
			if prev, ok := r.actions[key]; ok && prev != b.Action {
				r.shadowed = append(r.shadowed, key)
			}
			r.actions[key] = b.Action
			if !slices.Contains(r.keys[b.Action], key) {
				r.keys[b.Action] = append(r.keys[b.Action], key)
			}
		}
	}
	return r
}

// Default returns a resolver over All.
func Default() *Resolver {
	return NewResolver(All)
}

// Resolve returns the action bound to key, or "" when unbound.
func (r *Resolver) Resolve(key string) Action {
	return r.actions[key]
}

// KeysFor returns the keys bound to action in declaration order.
func (r *Resolver) KeysFor(action Action) []string {
	return slices.Clone(r.keys[action])
}

// Primary returns the first key bound to action, or "".
func (r *Resolver) Primary(action Action) string {
	if k := r.keys[action]; len(k) > 0 {
		return k[0]
	}
	return ""
}

// Shadowed lists keys bound to more than one action.
func (r *Resolver) Shadowed() []string {
	return slices.Clone(r.shadowed)
}
