// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prt

import "math/rand"

// buildBucket constructs the 50 trials of one category for one block, with
// the exact reward-eligibility count for that category's frequency class
// (30 frequent, 10 infrequent).  The split is exact by construction, not
// sampled; only the positions of the eligible trials within the bucket are
// randomized, by a uniform shuffle.  The bucket order is consumed front to
// back by the interleaver.
func buildBucket(tp *TaskPattern, cat Category, rnd *rand.Rand) []TrialSpec {
	nelig := InfrequentEligible
	if cat == tp.Frequent {
		nelig = FrequentEligible
	}
	bkt := make([]TrialSpec, BucketSize)
	for i := range bkt {
		bkt[i] = TrialSpec{
			Category:       cat,
			CorrectResp:    tp.Response(cat),
			Frequency:      tp.Frequency(cat),
			RewardEligible: i < nelig,
		}
	}
	rnd.Shuffle(len(bkt), func(i, j int) {
		bkt[i], bkt[j] = bkt[j], bkt[i]
	})
	return bkt
}
