// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prt

import "github.com/emer/emergent/erand"

// Practice builds a short warmup trial list with n trials of each
// category, none reward-eligible, in permuted order.  Practice trials
// carry no statistical constraints, so the shared global random source is
// fine here and no seed is taken.
func Practice(tp *TaskPattern, n int) []TrialSpec {
	trials := make([]TrialSpec, 0, 2*n)
	for _, cat := range []Category{Short, Long} {
		for i := 0; i < n; i++ {
			trials = append(trials, TrialSpec{
				Category:    cat,
				CorrectResp: tp.Response(cat),
				Frequency:   tp.Frequency(cat),
			})
		}
	}
	ord := make([]int, len(trials))
	for i := range ord {
		ord[i] = i
	}
	erand.PermuteInts(ord)
	out := make([]TrialSpec, len(trials))
	for i, oi := range ord {
		out[i] = trials[oi]
		out[i].TrialIndex = i + 1
	}
	return out
}
