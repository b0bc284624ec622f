package suftree

import "fmt"

// buildMcCreight constructs the suffix tree for q offline in amortised O(n)
// time using McCreight's algorithm: substep A follows a suffix link (or the
// parent's, for a freshly created head), substep B fast-rescans to the
// depth implied by the previous match using only each edge's first symbol,
// and substep C slow-scans the remainder with findPath. See
// [McCreight1976].
func buildMcCreight[S comparable, ID comparable](t *Tree[S, ID], q *sequence[S, ID], cfg *buildConfig, x *txn[S, ID]) error {
	end := q.length()
	root := t.root

	// Every internal node (except root) gets its suffix link no later than
	// one iteration after it is created; the root links to itself.
	x.setSuffixLink(root, root)

	head := root
	matchedLen := 0

	// The suffix made of the terminator alone gets no leaf.
	for start := 0; start < end-1; start++ {
		if err := cfg.gate(start); err != nil {
			return err
		}

		// substep A
		c := head.suffixLink
		if c == nil {
			c = head.parent.suffixLink
		}
		if c == nil {
			return &InvariantError{
				Builder: BuilderMcCreight.String(),
				Reason:  "no suffix link available to follow in substep A",
				Detail:  fmt.Sprintf("start=%d", start),
			}
		}

		// substep B: fast rescan to depth matchedLen-1.
		if matchedLen > 1 {
			target := matchedLen - 1
			headPath := head.path
			for c.path.Len() < target {
				key := headPath.at(c.path.Len() + 1)
				next, ok := c.children[key]
				if !ok {
					return &InvariantError{
						Builder: BuilderMcCreight.String(),
						Reason:  "rescan could not find the guaranteed path (Lemma 1 violated)",
						Detail:  fmt.Sprintf("start=%d target=%d at depth=%d", start, target, c.path.Len()),
					}
				}
				c = next
			}
			if c.path.Len() > target {
				c = x.splitEdge(c.parent, target, c)
			}
		}
		if head.suffixLink == nil {
			x.setSuffixLink(head, c)
		}

		// substep C: slow scan the remaining suffix from c.
		suffix := Path[S, ID]{seq: q, start: start, end: end}
		newHead, matched, child := c.findPath(suffix)
		if child != nil {
			newHead = x.splitEdge(newHead, matched, child)
		}
		head = newHead
		matchedLen = matched

		if matchedLen >= suffix.Len() {
			return &InvariantError{
				Builder: BuilderMcCreight.String(),
				Reason:  "suffix fully matched an existing path",
				Detail:  fmt.Sprintf("start=%d matched=%d", start, matchedLen),
			}
		}

		key := suffix.at(matchedLen)
		if _, exists := head.children[key]; exists {
			return &InvariantError{
				Builder: BuilderMcCreight.String(),
				Reason:  "duplicate child key on leaf insert",
				Detail:  fmt.Sprintf("start=%d depth=%d", start, matchedLen),
			}
		}

		leaf := newLeaf(head, Path[S, ID]{seq: q, start: start, end: end}, q.id)
		x.setChild(head, key, leaf)
	}

	return nil
}
