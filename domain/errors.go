package domain

import "errors"

// Sentinel errors. The engine itself never fails on numeric degeneracy
// (undefined ratios and non-positive headroom resolve to documented
// sentinels and clamps); these cover precondition violations only.
var (
	ErrInvalidParameter = errors.New("invalid parameter")
)
