// SPDX-License-Identifier: MIT
// Package: pathlab/builder
//
// strategy.go - named strategies selectable from configuration files and
// command-line flags.

package builder

import (
	"fmt"
	"strings"
)

// TreeStrategy names the spanning-tree generator used before densification.
type TreeStrategy string

const (
	// TreePrufer decodes a uniform random Prüfer sequence: every labeled
	// tree is equally likely.
	TreePrufer TreeStrategy = "prufer"
	// TreeRecursive attaches vertex i to a uniform earlier vertex. Fast, but
	// biased toward shallow trees rooted near vertex 0.
	TreeRecursive TreeStrategy = "recursive"
	// TreePath chains 0—1—…—(n-1). Deterministic.
	TreePath TreeStrategy = "path"
)

// ParseTreeStrategy maps a case-insensitive name to a TreeStrategy.
func ParseTreeStrategy(name string) (TreeStrategy, error) {
	s := TreeStrategy(strings.ToLower(strings.TrimSpace(name)))
	switch s {
	case TreePrufer, TreeRecursive, TreePath:
		return s, nil
	}

	return "", fmt.Errorf("ParseTreeStrategy(%q): %w", name, ErrOptionViolation)
}

// Sampling names the pair-sampling strategy used by Density.
type Sampling string

const (
	// SamplingAuto picks rejection while accepted draws are at least half
	// likely, enumeration otherwise.
	SamplingAuto Sampling = "auto"
	// SamplingRejection draws random ranks and discards ineligible ones.
	// Memory O(k); bounded by the attempt budget.
	SamplingRejection Sampling = "rejection"
	// SamplingEnumeration lists every eligible rank and partially shuffles.
	// Memory O(M); never fails while enough pairs are eligible.
	SamplingEnumeration Sampling = "enumeration"
)

// ParseSampling maps a case-insensitive name to a Sampling.
func ParseSampling(name string) (Sampling, error) {
	s := Sampling(strings.ToLower(strings.TrimSpace(name)))
	if !s.valid() {
		return "", fmt.Errorf("ParseSampling(%q): %w", name, ErrOptionViolation)
	}

	return s, nil
}

func (s Sampling) valid() bool {
	switch s {
	case SamplingAuto, SamplingRejection, SamplingEnumeration:
		return true
	}

	return false
}
