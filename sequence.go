package ask

// Asker is one node of a question tree: either a plain *Question or a
// *Confirm owning follow-up children. The sequencer walks the tree
// through these methods instead of inspecting concrete types.
type Asker interface {
	// Run executes the node against the terminal and returns its value.
	Run(t *Terminal) (any, error)

	resultKey() string
	runChildren() bool
	childAskers() []Asker
}

// RunSequence runs askers in order and collects their answers under
// their keys. Nodes without a key still run, for their side effects,
// but are not collected.
//
// When a Confirm is answered yes and owns children, the children run as
// a nested sequence and their map replaces the boolean under the
// Confirm's key. Nesting is unbounded.
//
// On an exhausted input source the map collected so far is returned
// together with the error.
func RunSequence(t *Terminal, askers []Asker) (map[string]any, error) {
	result := make(map[string]any)
	for _, a := range askers {
		value, err := a.Run(t)
		if err != nil {
			return result, err
		}
		key := a.resultKey()
		if key != "" {
			result[key] = value
		}
		if a.runChildren() {
			nested, err := RunSequence(t, a.childAskers())
			if key != "" {
				result[key] = nested
			}
			if err != nil {
				return result, err
			}
		}
	}
	return result, nil
}
