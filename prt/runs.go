// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prt

import (
	"fmt"
	"math/rand"
)

// runLengths builds the list of category run lengths for one bucket: each
// element is 1 or 2 with equal probability, accumulated until the total is
// exactly BucketSize.  If the running sum reaches BucketSize-1, the final
// draw is forced to 1 -- draws are only ever 1 or 2, so that is the only
// way the accumulation could overshoot.
func runLengths(rnd *rand.Rand) []int {
	return accumRuns(func() int {
		return 1 + rnd.Intn(MaxRunLen)
	})
}

// accumRuns accumulates draws from the given source until the sum is
// exactly BucketSize, forcing a trailing 1 at BucketSize-1.  A sum that
// lands anywhere else is an invariant violation in the draw source and a
// fatal defect, not a recoverable condition.
func accumRuns(draw func() int) []int {
	var runs []int
	sum := 0
	for sum < BucketSize {
		rl := draw()
		if sum == BucketSize-1 {
			rl = 1
		}
		runs = append(runs, rl)
		sum += rl
	}
	if sum != BucketSize {
		panic(fmt.Sprintf("prt: run-length accumulation reached %d, not %d -- draw source returned a length other than 1 or 2", sum, BucketSize))
	}
	return runs
}

// interleaveRuns merges two independent shuffles of the run-length list by
// alternating index: [a0, b0, a1, b1, ...].  Ownership of successive runs
// alternates between the two categories, so no category can hold more than
// MaxRunLen consecutive trials, and the result sums to BlockSize.
func interleaveRuns(runs []int, rnd *rand.Rand) []int {
	a := shuffledInts(runs, rnd)
	b := shuffledInts(runs, rnd)
	il := make([]int, 0, len(a)+len(b))
	for i := range a {
		il = append(il, a[i], b[i])
	}
	return il
}

// shuffledInts returns a shuffled copy, leaving the input unmodified.
func shuffledInts(ins []int, rnd *rand.Rand) []int {
	out := make([]int, len(ins))
	copy(out, ins)
	rnd.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
