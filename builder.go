package suftree

// BuilderKind selects which of the three construction algorithms an Add or
// AddSeq call uses.
type BuilderKind uint8

const (
	// BuilderUkkonen builds online in amortised O(n) time via canonical
	// reference pairs [Ukkonen1995]. It is the only builder AddSeq accepts,
	// since only it can consume a pull iterator one symbol at a time.
	BuilderUkkonen BuilderKind = iota
	// BuilderMcCreight builds offline in amortised O(n) time via suffix
	// links, rescan and scan [McCreight1976].
	BuilderMcCreight
	// BuilderNaive builds in O(n^2) time by inserting every suffix from the
	// root. Useful mainly as an oracle for builder-equivalence tests and for
	// sequences too small for the linear builders to matter.
	BuilderNaive
)

// String returns the builder's name, used as the "builder" attribute in
// structured log output (see logger.go).
func (k BuilderKind) String() string {
	switch k {
	case BuilderUkkonen:
		return "ukkonen"
	case BuilderMcCreight:
		return "mccreight"
	case BuilderNaive:
		return "naive"
	default:
		return "unknown"
	}
}
