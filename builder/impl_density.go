// SPDX-License-Identifier: MIT
// Package: pathlab/builder
//
// impl_density.go - raise a spanning tree to a target density.
//
// Contract:
//   - d ∈ [0,1] (else ErrInvalidDensity); g.Order() ≥ 2 (else ErrTooFewVertices).
//   - g must be explicit (else ErrUnsupportedGraphMode).
//   - Target edge count T = clamp(round(d·M), n-1, M), M = n(n-1)/2.
//   - d <  threshold: add T - |E| uniformly random absent pairs; g stays explicit.
//   - d ≥ threshold: Reset(g) to the complement representation of K_n and
//     store exactly M - T uniformly random removed pairs, drawn among all
//     pairs or, with WithTreeProtection, among non-tree pairs only.
//   - Postcondition: g.EdgeCount() == T whenever the input held ≤ T edges.
//
// Complexity:
//   - Time: O(k log n) for rejection, O(M) for enumeration; k = pairs drawn.
//   - Space: O(k + |E|) for rejection, O(M) for enumeration.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/pairindex"
)

// TargetEdges returns the logical edge count Density aims for on n vertices:
// round(d·M) clamped to [n-1, M]. The lower clamp keeps the spanning tree.
func TargetEdges(n int, d float64) int {
	if n < MinTreeNodes {
		return 0
	}
	m := pairindex.MaxPairs(n)
	t := int64(math.Round(d * float64(m)))
	if t < int64(n-1) {
		t = int64(n - 1)
	}
	if t > m {
		t = m
	}

	return int(t)
}

// Density returns a Constructor that raises g to density d.
func Density(d float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateDensity(MethodDensity, d); err != nil {
			return err
		}
		if err := validateMin(MethodDensity, g.Order(), MinTreeNodes); err != nil {
			return err
		}
		if g.Inverted() {
			return fmt.Errorf("%s: graph is already inverted: %w", MethodDensity, ErrUnsupportedGraphMode)
		}

		target := TargetEdges(g.Order(), d)
		if d >= cfg.inversionThreshold {
			return invertTo(g, cfg, target)
		}

		return densifyTo(g, cfg, target)
	}
}

// densifyTo adds random absent pairs until g holds target edges.
// An input already above target is left untouched.
func densifyTo(g *core.Graph, cfg builderConfig, target int) error {
	k := target - g.EdgeCount()
	if k <= 0 {
		return nil
	}

	n := g.Order()
	excluded, err := rankEdges(g.StoredEdges(), n)
	if err != nil {
		return err
	}

	return storeSampled(g, cfg, excluded, k)
}

// invertTo switches g to the complement representation and stores exactly
// M - target removed pairs.
func invertTo(g *core.Graph, cfg builderConfig, target int) error {
	n := g.Order()
	var excluded rankSet
	if cfg.protectTree {
		var err error
		if excluded, err = rankEdges(g.StoredEdges(), n); err != nil {
			return err
		}
	}

	g.Reset(true)

	return storeSampled(g, cfg, excluded, g.MaxEdges()-target)
}

// storeSampled draws k eligible ranks and stores the matching pairs.
func storeSampled(g *core.Graph, cfg builderConfig, excluded rankSet, k int) error {
	n := g.Order()
	sampler := pairSampler{
		rng:      cfg.rng,
		total:    pairindex.MaxPairs(n),
		excluded: excluded,
		strategy: cfg.sampling,
		budget:   cfg.attemptBudget(k),
	}
	ranks, err := sampler.sample(MethodDensity, k)
	if err != nil {
		return err
	}

	for _, r := range ranks {
		e, err := pairindex.UnrankEdge(r, n)
		if err != nil {
			return fmt.Errorf("%s: %w", MethodDensity, err)
		}
		if !g.CanInsert(e.U, e.V) {
			return fmt.Errorf("%s: pair (%d,%d) already stored: %w", MethodDensity, e.U, e.V, ErrConstructFailed)
		}
		if err = g.InsertEdge(e.U, e.V); err != nil {
			return fmt.Errorf("%s: InsertEdge(%d,%d): %w", MethodDensity, e.U, e.V, err)
		}
	}

	return nil
}

// rankEdges maps canonical edges to their pair ranks. An out-of-range pair
// surfaces as pairindex.ErrRankDomain, not as a construction failure.
func rankEdges(edges []core.Edge, n int) (rankSet, error) {
	set := make(rankSet, len(edges))
	for _, e := range edges {
		r, err := pairindex.RankEdge(e, n)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", MethodDensity, err)
		}
		set[r] = struct{}{}
	}

	return set, nil
}
