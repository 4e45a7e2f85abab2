// Package pairindex implements the bijection between canonical vertex pairs
// (a, b), 0 ≤ a < b < n, and integer ranks in [0, n(n-1)/2).
//
// The bijection lets edge samplers draw K distinct pairs by drawing ranks,
// without ever materializing the O(n²) pair set when K ≪ n².
//
//	idx, _ := pairindex.Rank(2, 5, 10)   // 19
//	a, b, _ := pairindex.Unrank(idx, 10) // 2, 5
//
// Errors:
//
//   - ErrRankDomain for any pair or rank outside the domain.
package pairindex
