// SPDX-License-Identifier: MIT
// Package: pathlab/pairindex
//
// errors.go - sentinel errors for the pairindex package.
//
// Error policy:
//   - Only sentinel variables are exposed; branch with errors.Is.
//   - Context is attached by the caller site with %w.

package pairindex

import "errors"

// ErrRankDomain indicates a pair or rank outside the bijection's domain.
// Classification: RankError. Inside pathlab this is always a programming
// fault (samplers only draw ranks in [0, M)), so callers propagate it
// instead of retrying.
var ErrRankDomain = errors.New("pairindex: pair or rank out of domain")
