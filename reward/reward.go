// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package reward implements the per-trial reward bookkeeping for the
probabilistic reward task, as a pure reducer over explicit state rather
than flags carried in module globals: the trial runner holds a State
value, and for each response calls Apply to find out whether a reward is
actually delivered.

The asymmetry that drives the task lives in the sequence (60% vs. 20% of
trials eligible); the bookkeeping here only handles delivery: a correct
response to an eligible trial pays out, and an eligible trial answered
incorrectly carries its reward forward to the next correct response to
the same category, so the realized reward counts track the scheduled
ones.
*/
package reward

import "github.com/emer/prt/prt"

// State is the bookkeeping carried between trials.  It is a value: Apply
// returns an updated copy and never modifies its input, so a runner can
// keep per-block state snapshots for logging.
type State struct {
	Pending     [prt.CategoryN]bool `desc:"a missed eligible reward is waiting to be delivered for this category"`
	NFrequent   int                 `inactive:"+" desc:"rewards delivered so far on frequent-category trials"`
	NInfrequent int                 `inactive:"+" desc:"rewards delivered so far on infrequent-category trials"`
}

// Outcome is one scored trial: what the sequence said about the trial,
// plus whether the subject's response was correct.
type Outcome struct {
	Category       prt.Category  `desc:"category of the trial"`
	Frequency      prt.Frequency `desc:"frequency class of the trial"`
	RewardEligible bool          `desc:"whether the sequence scheduled this trial as reward-eligible"`
	Correct        bool          `desc:"whether the response was correct"`
}

// TrialOutcome builds an Outcome from a trial spec and response.
func TrialOutcome(ts *prt.TrialSpec, resp prt.Response) Outcome {
	return Outcome{
		Category:       ts.Category,
		Frequency:      ts.Frequency,
		RewardEligible: ts.RewardEligible,
		Correct:        resp == ts.CorrectResp,
	}
}

// Apply decides whether the given trial outcome delivers a reward, and
// returns the updated state.  An eligible trial answered incorrectly sets
// the category's pending flag; the next correct response to that category
// drains it.  An eligible correct trial that also has a pending reward
// delivers only one -- the pending flag stays set for a later trial.
func Apply(st State, out Outcome) (granted bool, nst State) {
	nst = st
	if !out.Correct {
		if out.RewardEligible {
			nst.Pending[out.Category] = true
		}
		return false, nst
	}
	switch {
	case out.RewardEligible:
		granted = true
	case nst.Pending[out.Category]:
		granted = true
		nst.Pending[out.Category] = false
	}
	if granted {
		if out.Frequency == prt.Frequent {
			nst.NFrequent++
		} else {
			nst.NInfrequent++
		}
	}
	return granted, nst
}

// NGranted is the total number of rewards delivered so far.
func (st *State) NGranted() int {
	return st.NFrequent + st.NInfrequent
}
