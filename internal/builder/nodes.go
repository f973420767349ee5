package builder

// Copy-on-write helpers for the ordered, id-keyed collections of the workout tree.
// None of them modify their input slice.

type node interface {
	NodeID() string
}

func indexOf[T node](nodes []T, id string) int {
	for i, n := range nodes {
		if n.NodeID() == id {
			return i
		}
	}
	return -1
}

func appendNode[T any](nodes []T, n T) []T {
	out := make([]T, len(nodes), len(nodes)+1)
	copy(out, nodes)
	return append(out, n)
}

func replaceAt[T any](nodes []T, i int, n T) []T {
	out := make([]T, len(nodes))
	copy(out, nodes)
	out[i] = n
	return out
}

// removeAt returns nil rather than an empty slice so that removing the
// last node restores a freshly created collection exactly.
func removeAt[T any](nodes []T, i int) []T {
	if len(nodes) == 1 {
		return nil
	}
	out := make([]T, 0, len(nodes)-1)
	out = append(out, nodes[:i]...)
	return append(out, nodes[i+1:]...)
}

func ptr[T any](v T) *T {
	return &v
}
