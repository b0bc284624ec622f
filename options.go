package suftree

import "log/slog"

// BuildOption configures a single Add or AddSeq call, as opposed to a
// TreeOption, which configures the Tree as a whole.
type BuildOption interface {
	applyBuild(*buildConfig)
}

type buildOptionFunc func(*buildConfig)

func (f buildOptionFunc) applyBuild(c *buildConfig) {
	f(c)
}

// WithBuilder selects which construction algorithm this particular Add or
// AddSeq call uses, overriding the tree's default builder. AddSeq only
// accepts BuilderUkkonen; passing anything else to AddSeq returns
// ErrStreamingBuilder.
func WithBuilder(kind BuilderKind) BuildOption {
	return buildOptionFunc(func(c *buildConfig) {
		c.kind = kind
		c.kindSet = true
	})
}

// WithProgress installs a progress callback invoked synchronously every tick
// iterations of the builder's main loop, with the current iteration index.
// The callback must not mutate the tree. tick below 1 is treated as 1.
func WithProgress(tick int, fn func(int)) BuildOption {
	return buildOptionFunc(func(c *buildConfig) {
		if tick < 1 {
			tick = 1
		}
		c.tick = tick
		c.progress = fn
	})
}

// WithAbort installs a caller-provided abort flag, polled at the same gate as
// the progress callback (every tick iterations). Once it reports true,
// Add/AddSeq stops, rolls the partial build back and returns ErrAborted,
// leaving the tree as it was before the call.
func WithAbort(abort func() bool) BuildOption {
	return buildOptionFunc(func(c *buildConfig) {
		c.abort = abort
	})
}

// TreeOption configures a Tree as a whole, applied once at New.
type TreeOption interface {
	applyTree(*treeConfig)
}

type treeOptionFunc func(*treeConfig)

func (f treeOptionFunc) applyTree(c *treeConfig) {
	f(c)
}

// WithDefaultBuilder sets the builder used by Add calls that don't override
// it with WithBuilder. The zero-value default is BuilderUkkonen. AddSeq does
// not consult this setting; it always uses BuilderUkkonen.
func WithDefaultBuilder(kind BuilderKind) TreeOption {
	return treeOptionFunc(func(c *treeConfig) {
		c.defaultKind = kind
	})
}

// WithLogger attaches a structured logger used to report build outcomes (see
// logger.go). A nil logger, the default, disables logging entirely.
func WithLogger(log *slog.Logger) TreeOption {
	return treeOptionFunc(func(c *treeConfig) {
		c.log = log
	})
}

type treeConfig struct {
	defaultKind BuilderKind
	log         *slog.Logger
}

func newTreeConfig(opts []TreeOption) *treeConfig {
	c := &treeConfig{defaultKind: BuilderUkkonen}
	for _, o := range opts {
		o.applyTree(c)
	}
	return c
}

type buildConfig struct {
	kind     BuilderKind
	kindSet  bool
	tick     int
	progress func(int)
	abort    func() bool
}

func newBuildConfig(defaultKind BuilderKind, opts []BuildOption) *buildConfig {
	c := &buildConfig{kind: defaultKind, tick: 1}
	for _, o := range opts {
		o.applyBuild(c)
	}
	return c
}

// gate is called every iteration of a builder's main loop. It reports the
// progress tick to the caller's callback and polls the abort flag, returning
// ErrAborted once the caller signals cancellation.
func (c *buildConfig) gate(iteration int) error {
	if c.progress != nil && iteration%c.tick == 0 {
		c.progress(iteration)
	}
	if c.abort != nil && iteration%c.tick == 0 && c.abort() {
		return ErrAborted
	}
	return nil
}
