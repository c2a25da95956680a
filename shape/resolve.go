package shape

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrInvalidArgument is returned when the value to resolve is not array-like.
var ErrInvalidArgument = errors.New("invalid argument")

// Option configures a Resolver.
type Option func(*config) error

type config struct {
	predicate    Predicate
	logger       *zap.Logger
	maxDepth     int
	siblingCheck bool
}

func defaultConfig() config {
	return config{
		predicate: AsArrayLike,
		logger:    zap.NewNop(),
	}
}

// WithPredicate sets the predicate used to decide whether a value is array-like.
func WithPredicate(predicate Predicate) Option {
	return func(cfg *config) error {
		if predicate == nil {
			return fmt.Errorf("predicate cannot be nil")
		}
		cfg.predicate = predicate
		return nil
	}
}

// WithLogger sets the logger receiving debug traces of resolved shapes.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		cfg.logger = logger
		return nil
	}
}

// WithMaxDepth caps the number of dimensions a resolve may report.
// Without it, traversal only ends where the input stops nesting, which never
// happens for a container that holds itself.
func WithMaxDepth(depth int) Option {
	return func(cfg *config) error {
		if depth < 1 {
			return fmt.Errorf("max depth must be >= 1, got %d", depth)
		}
		cfg.maxDepth = depth
		return nil
	}
}

// WithSiblingCheck switches to level-consistent resolution: a dimension is only
// reported when every container at that level is array-like and all of them
// have the same length. This visits every container above the deepest reported
// level instead of only the first-element spine.
func WithSiblingCheck() Option {
	return func(cfg *config) error {
		cfg.siblingCheck = true
		return nil
	}
}

type stopReason string

const (
	stopEmpty     stopReason = "empty"
	stopScalar    stopReason = "scalar"
	stopIrregular stopReason = "irregular"
	stopMaxDepth  stopReason = "max_depth"
)

// Resolver computes shapes of nested array-like values.
// A Resolver is immutable and safe for concurrent use.
type Resolver struct {
	cfg config
}

// NewResolver creates a Resolver with the given options.
func NewResolver(opts ...Option) (*Resolver, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	return &Resolver{cfg: cfg}, nil
}

// Resolve computes the shape of x with a Resolver built from opts.
func Resolve(x any, opts ...Option) (Shape, error) {
	r, err := NewResolver(opts...)
	if err != nil {
		return nil, err
	}
	return r.Resolve(x)
}

// Resolve returns the length of x followed by the length of each array-like
// value reached by repeatedly taking element 0. Traversal stops at a
// zero-length container or at the first element that is not array-like.
//
// It returns an error wrapping ErrInvalidArgument when x is not array-like.
func (r *Resolver) Resolve(x any) (Shape, error) {
	if r == nil {
		return nil, fmt.Errorf("resolver is nil")
	}

	root, ok := r.arrayLike(x)
	if !ok {
		return nil, fmt.Errorf("%w: must provide an array-like value, got %T", ErrInvalidArgument, x)
	}

	var s Shape
	var stop stopReason
	if r.cfg.siblingCheck {
		s, stop = r.resolveLevels(root)
	} else {
		s, stop = r.resolveSpine(root)
	}

	r.cfg.logger.Debug("resolved shape",
		zap.Int64s("shape", s),
		zap.Int("rank", len(s)),
		zap.String("stop", string(stop)),
	)
	return s, nil
}

// AsArrayLike applies the resolver's predicate to v. Accessors reporting a
// negative length are rejected.
func (r *Resolver) AsArrayLike(v any) (ArrayLike, bool) {
	if r == nil {
		return nil, false
	}
	return r.arrayLike(v)
}

func (r *Resolver) arrayLike(v any) (ArrayLike, bool) {
	a, ok := r.cfg.predicate(v)
	if !ok || a == nil || a.Len() < 0 {
		return nil, false
	}
	return a, true
}

func (r *Resolver) atMaxDepth(s Shape) bool {
	return r.cfg.maxDepth > 0 && len(s) >= r.cfg.maxDepth
}

func (r *Resolver) resolveSpine(current ArrayLike) (Shape, stopReason) {
	s := Shape{}
	for {
		n := current.Len()
		s = append(s, int64(n))
		if n == 0 {
			return s, stopEmpty
		}
		if r.atMaxDepth(s) {
			return s, stopMaxDepth
		}

		next, ok := r.arrayLike(current.At(0))
		if !ok {
			return s, stopScalar
		}
		current = next
	}
}

func (r *Resolver) resolveLevels(root ArrayLike) (Shape, stopReason) {
	s := Shape{int64(root.Len())}
	level := []ArrayLike{root}
	for {
		if s[len(s)-1] == 0 {
			return s, stopEmpty
		}
		if r.atMaxDepth(s) {
			return s, stopMaxDepth
		}

		var next []ArrayLike
		width := -1
		for _, container := range level {
			for i := 0; i < container.Len(); i++ {
				child, ok := r.arrayLike(container.At(i))
				if !ok {
					return s, stopScalar
				}
				if width < 0 {
					width = child.Len()
				} else if child.Len() != width {
					return s, stopIrregular
				}
				next = append(next, child)
			}
		}

		s = append(s, int64(width))
		level = next
	}
}
