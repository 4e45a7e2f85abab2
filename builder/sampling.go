// SPDX-License-Identifier: MIT
// Package: pathlab/builder
//
// sampling.go - uniform selection of k distinct pair ranks from [0, M)
// minus an excluded set.
//
// Two strategies share one contract:
//   - rejection:   draw rng.Int63n(M), discard excluded or repeated ranks.
//                  O(k) memory; expected O(k·M/(M-|excluded|-k)) draws.
//   - enumeration: collect every eligible rank, partial Fisher–Yates shuffle.
//                  O(M) memory and time; never exceeds its budget.
// Both return ranks in selection order, which is deterministic for a fixed
// rng state.

package builder

import (
	"fmt"
	"math/rand"
)

// rankSet is a set of pair ranks.
type rankSet map[int64]struct{}

// pairSampler carries the inputs of one sampling request.
type pairSampler struct {
	rng      *rand.Rand
	total    int64   // M, the number of pairs
	excluded rankSet // ranks that must never be selected
	strategy Sampling
	budget   int // maximum rejection draws
}

// resolve picks the concrete strategy for k requested ranks. Auto prefers
// rejection while even the last draw is accepted with probability ≥ 1/2.
func (s pairSampler) resolve(k int) Sampling {
	if s.strategy != SamplingAuto {
		return s.strategy
	}
	if int64(k)+int64(len(s.excluded)) <= s.total/2 {
		return SamplingRejection
	}

	return SamplingEnumeration
}

// sample selects k distinct eligible ranks.
// Errors: ErrConstructFailed when fewer than k ranks are eligible or the
// rejection budget runs out.
func (s pairSampler) sample(method string, k int) ([]int64, error) {
	if k <= 0 {
		return nil, nil
	}
	eligible := s.total - int64(len(s.excluded))
	if int64(k) > eligible {
		return nil, fmt.Errorf("%s: need %d pairs, only %d eligible: %w", method, k, eligible, ErrConstructFailed)
	}
	if s.rng == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}

	if s.resolve(k) == SamplingRejection {
		return s.rejection(method, k)
	}

	return s.enumeration(k), nil
}

func (s pairSampler) rejection(method string, k int) ([]int64, error) {
	out := make([]int64, 0, k)
	chosen := make(rankSet, k)
	for attempts := 0; len(out) < k; attempts++ {
		if attempts >= s.budget {
			return nil, fmt.Errorf("%s: %d of %d pairs after %d draws: %w",
				method, len(out), k, attempts, ErrConstructFailed)
		}
		r := s.rng.Int63n(s.total)
		if _, skip := s.excluded[r]; skip {
			continue
		}
		if _, dup := chosen[r]; dup {
			continue
		}
		chosen[r] = struct{}{}
		out = append(out, r)
	}

	return out, nil
}

func (s pairSampler) enumeration(k int) []int64 {
	pool := make([]int64, 0, s.total-int64(len(s.excluded)))
	for r := int64(0); r < s.total; r++ {
		if _, skip := s.excluded[r]; !skip {
			pool = append(pool, r)
		}
	}
	// Partial Fisher–Yates: the first k slots become a uniform k-subset.
	for i := 0; i < k; i++ {
		j := i + int(s.rng.Int63n(int64(len(pool)-i)))
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:k]
}
