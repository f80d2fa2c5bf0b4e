package board

// Registry maps stable group identifiers to their target definitions.
// It is built once at startup and read-only afterwards; dispatch is a
// plain map lookup, never reflection or lookup by name.
type Registry struct {
	groups map[string]*Group
	order  []string
}

// NewRegistry builds a Registry from externally supplied group definitions.
// Group order is preserved for listing.
func NewRegistry(groups ...*Group) *Registry {
	r := &Registry{groups: make(map[string]*Group, len(groups))}
	for _, g := range groups {
		r.groups[g.ID] = g
		r.order = append(r.order, g.ID)
	}
	return r
}

// Groups returns all registered groups in registration order.
func (r *Registry) Groups() []*Group {
	out := make([]*Group, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.groups[id])
	}
	return out
}

// Group looks up a group by ID.
func (r *Registry) Group(groupID string) (*Group, error) {
	g, ok := r.groups[groupID]
	if !ok {
		return nil, &NotFoundError{Kind: "group", ID: groupID}
	}
	return g, nil
}

// Target looks up a target within a group. An unknown target inside a
// known group reports the target identifier, not the group identifier.
func (r *Registry) Target(groupID, targetID string) (*Target, error) {
	g, err := r.Group(groupID)
	if err != nil {
		return nil, err
	}
	for _, t := range g.Targets {
		if t.ID == targetID {
			return t, nil
		}
	}
	return nil, &NotFoundError{Kind: "target", ID: targetID}
}
