// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prt

import (
	"fmt"
	"math/rand"
)

// buildBlock generates one fully ordered 100-trial block: two 50-trial
// category buckets with exact reward-eligibility counts, interleaved
// according to the run-length list so that categories alternate in runs of
// 1 or 2.  Which bucket owns the even interleave slots is a per-block coin
// flip.  The two bucket cursors must exactly exhaust both buckets -- any
// mismatch is a fatal defect in the scheduler arithmetic.
func buildBlock(tp *TaskPattern, rnd *rand.Rand) []TrialSpec {
	bkts := [2][]TrialSpec{
		buildBucket(tp, tp.Frequent, rnd),
		buildBucket(tp, tp.Infrequent(), rnd),
	}
	il := interleaveRuns(runLengths(rnd), rnd)
	if rnd.Intn(2) == 1 {
		bkts[0], bkts[1] = bkts[1], bkts[0]
	}
	trials := make([]TrialSpec, 0, BlockSize)
	var cur [2]int // per-bucket consumption cursors
	for i, rl := range il {
		bi := i % 2
		if cur[bi]+rl > BucketSize {
			panic(fmt.Sprintf("prt: bucket %d cursor overrun: %d + run %d > %d", bi, cur[bi], rl, BucketSize))
		}
		trials = append(trials, bkts[bi][cur[bi]:cur[bi]+rl]...)
		cur[bi] += rl
	}
	if cur[0] != BucketSize || cur[1] != BucketSize {
		panic(fmt.Sprintf("prt: buckets not exhausted: cursors %d, %d, want %d each", cur[0], cur[1], BucketSize))
	}
	return trials
}
