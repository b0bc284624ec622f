package suftree

import "fmt"

// buildNaive inserts every suffix of q from the root, splitting edges as
// needed. O(n^2) total work, following [Gusfield1997] §5.4.
func buildNaive[S comparable, ID comparable](t *Tree[S, ID], q *sequence[S, ID], cfg *buildConfig, x *txn[S, ID]) error {
	end := q.length()

	// The suffix made of the terminator alone gets no leaf.
	for i := 0; i < end-1; i++ {
		if err := cfg.gate(i); err != nil {
			return err
		}

		suffix := Path[S, ID]{seq: q, start: i, end: end}
		node, matched, child := t.root.findPath(suffix)
		if child != nil {
			node = x.splitEdge(node, matched, child)
		}

		if matched >= suffix.Len() {
			return &InvariantError{
				Builder: BuilderNaive.String(),
				Reason:  "suffix fully matched an existing path",
				Detail:  fmt.Sprintf("start=%d matched=%d", i, matched),
			}
		}

		key := suffix.at(matched)
		if _, exists := node.children[key]; exists {
			return &InvariantError{
				Builder: BuilderNaive.String(),
				Reason:  "duplicate child key on leaf insert",
				Detail:  fmt.Sprintf("start=%d depth=%d", i, matched),
			}
		}

		leaf := newLeaf(node, Path[S, ID]{seq: q, start: i, end: end}, q.id)
		x.setChild(node, key, leaf)
	}

	return nil
}
