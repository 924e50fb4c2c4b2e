package domain

import "errors"

// ErrNoData marks a well-formed results document without a usable status
// timestamp. The status date is the only clock for snapshot freshness, so its
// absence invalidates the whole snapshot. Treated as an empty result, not a
// failure.
var ErrNoData = errors.New("no election data available")
