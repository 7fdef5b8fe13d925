// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prt

import (
	"fmt"
	"log"
	"strings"
)

// Report is the result of re-deriving the closed-form counts from a
// generated sequence.  It is diagnostic only: producing it never mutates
// the sequence, and a failing report is logged, not raised.
type Report struct {
	NTrials      int      `desc:"total number of trials, expected 300"`
	NFrequent    int      `desc:"frequent-category trials, expected 150"`
	NInfrequent  int      `desc:"infrequent-category trials, expected 150"`
	FreqEligible int      `desc:"reward-eligible frequent trials, expected 90"`
	InfqEligible int      `desc:"reward-eligible infrequent trials, expected 30"`
	MaxRun       int      `desc:"longest same-category run within a block, expected <= 2"`
	Problems     []string `desc:"human-readable description of each failed check"`
}

// Validate recomputes category counts, per-category reward-eligible counts,
// run lengths, and trial indexing over the whole sequence and compares them
// to the expected closed-form values.  Self-check only -- it is not on the
// production path.
func (sq *Sequence) Validate() *Report {
	rp := &Report{}
	rp.NTrials = len(sq.Trials)
	if rp.NTrials != NTrials {
		rp.fail("length %d, want %d", rp.NTrials, NTrials)
	}
	for i := range sq.Trials {
		ts := &sq.Trials[i]
		switch ts.Frequency {
		case Frequent:
			rp.NFrequent++
			if ts.RewardEligible {
				rp.FreqEligible++
			}
		case Infrequent:
			rp.NInfrequent++
			if ts.RewardEligible {
				rp.InfqEligible++
			}
		}
		if ts.TrialIndex != i+1 {
			rp.fail("trial at position %d has index %d, want %d", i, ts.TrialIndex, i+1)
		}
	}
	if rp.NFrequent != NBlocks*BucketSize {
		rp.fail("frequent count %d, want %d", rp.NFrequent, NBlocks*BucketSize)
	}
	if rp.NInfrequent != NBlocks*BucketSize {
		rp.fail("infrequent count %d, want %d", rp.NInfrequent, NBlocks*BucketSize)
	}
	if rp.FreqEligible != NBlocks*FrequentEligible {
		rp.fail("frequent eligible count %d, want %d", rp.FreqEligible, NBlocks*FrequentEligible)
	}
	if rp.InfqEligible != NBlocks*InfrequentEligible {
		rp.fail("infrequent eligible count %d, want %d", rp.InfqEligible, NBlocks*InfrequentEligible)
	}
	rp.MaxRun = maxCategoryRun(sq.Trials)
	if rp.MaxRun > MaxRunLen {
		rp.fail("category run of %d trials, max is %d", rp.MaxRun, MaxRunLen)
	}
	return rp
}

// OK reports whether every check passed.
func (rp *Report) OK() bool {
	return len(rp.Problems) == 0
}

func (rp *Report) fail(format string, args ...interface{}) {
	rp.Problems = append(rp.Problems, fmt.Sprintf(format, args...))
}

func (rp *Report) String() string {
	s := fmt.Sprintf("trials: %d  frequent: %d (%d eligible)  infrequent: %d (%d eligible)  max run: %d",
		rp.NTrials, rp.NFrequent, rp.FreqEligible, rp.NInfrequent, rp.InfqEligible, rp.MaxRun)
	if !rp.OK() {
		s += "\nFAILED: " + strings.Join(rp.Problems, "; ")
	}
	return s
}

// Log writes any failed checks to the standard logger.  A running task
// should keep going on a failed self-check -- the sequence is what it is --
// but the failure needs to be visible in the session log.
func (rp *Report) Log() {
	for _, pb := range rp.Problems {
		log.Printf("prt: sequence validation: %s\n", pb)
	}
}

// maxCategoryRun returns the longest same-category run, restarting the
// count at block boundaries: the constraint is block-internal, and the
// last run of one block may happen to continue into the next.
func maxCategoryRun(trials []TrialSpec) int {
	mx := 0
	run := 0
	cat := NoCategory
	for i := range trials {
		if i%BlockSize == 0 || trials[i].Category != cat {
			cat = trials[i].Category
			run = 0
		}
		run++
		if run > mx {
			mx = run
		}
	}
	return mx
}
