package runner

import (
	"errors"

	"go.uber.org/zap"
)

// Sentinel errors returned by Solve.
var (
	// ErrUnknownProblem indicates that no solution is registered for the id.
	ErrUnknownProblem = errors.New("runner: unknown problem")

	// ErrBadInput indicates that the input document could not be decoded.
	ErrBadInput = errors.New("runner: malformed input")

	// ErrLengthMismatch indicates paired sequences of different lengths.
	ErrLengthMismatch = errors.New("runner: sequences must have equal length")

	// ErrIndexOutOfRange indicates a range that does not fit the sequence.
	ErrIndexOutOfRange = errors.New("runner: index out of range")

	// ErrNodeNotFound indicates a designated node value absent from the tree.
	ErrNodeNotFound = errors.New("runner: node not found in tree")

	// ErrInvalidK indicates a subsequence length outside [1, n].
	ErrInvalidK = errors.New("runner: k out of range")

	// ErrInvalidInterval indicates an interval that is not a [left, right] pair with left ≤ right.
	ErrInvalidInterval = errors.New("runner: invalid interval")

	// ErrDuplicate indicates a repeated value where values must be distinct.
	ErrDuplicate = errors.New("runner: values must be distinct")

	// ErrNonPositive indicates a value that must be strictly positive.
	ErrNonPositive = errors.New("runner: value must be positive")
)

// Options configures a Runner.
type Options struct {
	// Logger receives debug records for every Solve call. Never nil after New.
	Logger *zap.Logger
}

// Option represents a functional option for configuring a Runner.
type Option func(*Options)

// WithLogger sets the logger. A nil logger keeps the default no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns Options with a no-op logger.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// solver decodes one input document and returns the answer.
type solver func(input []byte) (any, error)
