// Package prufer samples uniformly random labeled trees through Prüfer
// sequences.
//
// By Cayley's formula there are n^(n-2) labeled trees on n vertices, in
// bijection with sequences of n-2 labels from [0,n). Drawing each label
// uniformly and decoding the sequence therefore yields every labeled tree
// with probability n^-(n-2):
//
//	seq, _ := prufer.RandomSequence(rng, n)
//	edges, _ := prufer.Decode(seq, n) // n-1 canonical edges
//
// Encode is the inverse map, kept for verification.
package prufer
