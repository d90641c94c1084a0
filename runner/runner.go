package runner

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"go.uber.org/zap"
)

// Runner dispatches input documents to solutions by problem number.
type Runner struct {
	logger  *zap.Logger
	solvers map[int]solver
}

// New returns a Runner with every solution registered.
func New(opts ...Option) *Runner {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Runner{
		logger: cfg.Logger.Named("runner"),
		solvers: map[int]solver{
			300:  solveLIS,
			758:  solveBoldWords,
			823:  solveFactorTrees,
			1676: solveLCA,
			2323: solveMinimumTime,
			2406: solveMinGroups,
			2542: solveMaxScore,
			2586: solveVowelStrings,
		},
	}
}

// IDs returns the registered problem numbers in ascending order.
func (r *Runner) IDs() []int {
	ids := make([]int, 0, len(r.solvers))
	for id := range r.solvers {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// Solve decodes input for problem id, validates it and returns the answer.
//
// Errors wrap one of the package sentinels, so callers can match them with
// errors.Is.
func (r *Runner) Solve(id int, input []byte) (any, error) {
	s, ok := r.solvers[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownProblem, id)
	}

	log := r.logger.With(zap.Int("problem", id))
	log.Debug("solving", zap.Int("input_bytes", len(input)))

	start := time.Now()
	ans, err := s(input)
	if err != nil {
		log.Debug("rejected input", zap.Error(err))
		return nil, fmt.Errorf("problem %d: %w", id, err)
	}
	log.Debug("solved", zap.Duration("elapsed", time.Since(start)), zap.Any("answer", ans))

	return ans, nil
}

// decode strictly unmarshals input into v: unknown fields and trailing data are rejected.
func decode(input []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(input))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrBadInput, err)
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); err != io.EOF {
		return fmt.Errorf("%w: trailing data after document", ErrBadInput)
	}

	return nil
}
