// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reward

import (
	"testing"

	"github.com/emer/prt/prt"
)

func TestApply(t *testing.T) {
	st := State{}

	// eligible + correct pays out
	gr, st := Apply(st, Outcome{Category: prt.Short, Frequency: prt.Frequent, RewardEligible: true, Correct: true})
	if !gr {
		t.Errorf("eligible correct trial not rewarded\n")
	}
	if st.NFrequent != 1 {
		t.Errorf("frequent reward count %d, want 1\n", st.NFrequent)
	}

	// non-eligible correct pays nothing
	gr, st = Apply(st, Outcome{Category: prt.Short, Frequency: prt.Frequent, Correct: true})
	if gr {
		t.Errorf("non-eligible trial rewarded\n")
	}

	// eligible miss sets the carry flag, no payout
	gr, st = Apply(st, Outcome{Category: prt.Long, Frequency: prt.Infrequent, RewardEligible: true, Correct: false})
	if gr {
		t.Errorf("incorrect trial rewarded\n")
	}
	if !st.Pending[prt.Long] {
		t.Errorf("missed eligible reward not carried\n")
	}

	// other category is unaffected by the carry
	gr, st = Apply(st, Outcome{Category: prt.Short, Frequency: prt.Frequent, Correct: true})
	if gr {
		t.Errorf("carry paid out on wrong category\n")
	}

	// next correct same-category response drains the carry
	gr, st = Apply(st, Outcome{Category: prt.Long, Frequency: prt.Infrequent, Correct: true})
	if !gr {
		t.Errorf("carried reward not delivered\n")
	}
	if st.Pending[prt.Long] {
		t.Errorf("carry flag not cleared after delivery\n")
	}
	if st.NInfrequent != 1 {
		t.Errorf("infrequent reward count %d, want 1\n", st.NInfrequent)
	}
	if st.NGranted() != 2 {
		t.Errorf("total granted %d, want 2\n", st.NGranted())
	}
}

func TestApplyEligibleWithCarry(t *testing.T) {
	// an eligible correct trial with a pending carry delivers one reward
	// and leaves the carry for later
	st := State{}
	st.Pending[prt.Short] = true
	gr, st := Apply(st, Outcome{Category: prt.Short, Frequency: prt.Frequent, RewardEligible: true, Correct: true})
	if !gr {
		t.Errorf("eligible correct trial not rewarded\n")
	}
	if !st.Pending[prt.Short] {
		t.Errorf("carry consumed by an already-eligible trial\n")
	}
	if st.NFrequent != 1 {
		t.Errorf("frequent reward count %d, want 1\n", st.NFrequent)
	}
}

func TestApplyPureState(t *testing.T) {
	st := State{}
	_, nst := Apply(st, Outcome{Category: prt.Short, RewardEligible: true, Correct: false})
	if st.Pending[prt.Short] {
		t.Errorf("Apply modified its input state\n")
	}
	if !nst.Pending[prt.Short] {
		t.Errorf("Apply did not set carry in returned state\n")
	}
}

func TestTrialOutcome(t *testing.T) {
	ts := &prt.TrialSpec{Category: prt.Short, CorrectResp: prt.Left, Frequency: prt.Frequent, RewardEligible: true}
	out := TrialOutcome(ts, prt.Left)
	if !out.Correct || !out.RewardEligible || out.Category != prt.Short {
		t.Errorf("outcome from correct response wrong: %+v\n", out)
	}
	out = TrialOutcome(ts, prt.Right)
	if out.Correct {
		t.Errorf("incorrect response scored as correct\n")
	}
}

// TestSequencePayout runs the reducer over a full sequence with an
// always-correct responder: every eligible trial pays, so the realized
// counts equal the scheduled 90 frequent / 30 infrequent.
func TestSequencePayout(t *testing.T) {
	tp := &prt.TaskPattern{}
	tp.Defaults()
	sq, err := prt.Generate(tp, nil)
	if err != nil {
		t.Fatalf("Generate err: %v\n", err)
	}
	st := State{}
	gr := false
	for i := range sq.Trials {
		ts := &sq.Trials[i]
		gr, st = Apply(st, TrialOutcome(ts, ts.CorrectResp))
		_ = gr
	}
	if st.NFrequent != prt.NBlocks*prt.FrequentEligible {
		t.Errorf("frequent rewards %d, want %d\n", st.NFrequent, prt.NBlocks*prt.FrequentEligible)
	}
	if st.NInfrequent != prt.NBlocks*prt.InfrequentEligible {
		t.Errorf("infrequent rewards %d, want %d\n", st.NInfrequent, prt.NBlocks*prt.InfrequentEligible)
	}
}
