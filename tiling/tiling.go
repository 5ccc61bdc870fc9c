package tiling

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/domino/gridgraph"
)

// HasTiling reports whether every open cell of floor can be covered by
// non-overlapping dominoes. A floor without open cells is tileable.
func HasTiling(floor string, opts ...Option) (bool, error) {
	res, err := Decide(floor, opts...)
	if err != nil {
		return false, err
	}

	return res.Tileable, nil
}

// Decide runs the full pipeline and explains the answer.
//
// Complexity: O(C · E) for C open cells; the flow phase dominates.
func Decide(floor string, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cb := gridgraph.NewCheckerboard(gridgraph.Colorize(floor))
	defer cb.Release()

	res := Result{Black: cb.BlackCount(), Red: cb.RedCount()}
	log := o.Logger.With().Int("black", res.Black).Int("red", res.Red).Logger()

	if o.Dump != nil {
		if err := cb.Dump(o.Dump); err != nil {
			return Result{}, errors.Wrap(err, "tiling: dump network")
		}
	}

	switch {
	case !cb.IsValid():
		res.Reason = Unbalanced
	case o.ComponentCheck && !cb.Balanced():
		res.Reason = ComponentUnbalanced
	default:
		m, err := cb.MatchingSize(o.flowOptions()...)
		if err != nil {
			return Result{}, errors.Wrap(err, "tiling: maximum matching")
		}
		res.Matched = m
		if m == int64(res.Black) {
			res.Tileable, res.Reason = true, Tileable
		} else {
			res.Reason = Unmatched
		}
	}

	log.Debug().
		Bool("tileable", res.Tileable).
		Int64("matched", res.Matched).
		Stringer("reason", res.Reason).
		Msg("tiling decided")

	return res, nil
}
