// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package prtenv wraps a generated prt.Sequence in an emergent env.Env, so a
trial runner can step through the task with the standard counter and state
machinery.  The env presents trials strictly in generated order; blocks are
tracked at the Sequence time scale, and a new sequence is generated at the
start of each epoch.
*/
package prtenv

import (
	"fmt"
	"math/rand"

	"github.com/emer/emergent/env"
	"github.com/emer/etable/etensor"
	"github.com/emer/prt/prt"
)

// PRTEnv presents a probabilistic reward task sequence trial by trial.
type PRTEnv struct {
	Nm        string          `desc:"name of this environment"`
	Dsc       string          `desc:"description of this environment"`
	Pattern   prt.TaskPattern `desc:"counterbalancing pattern to generate under"`
	Seed      int64           `desc:"base random seed; each run generates from Seed + run, for reproducible sequences"`
	Seq       *prt.Sequence   `view:"no-inline" desc:"current generated sequence"`
	CurTrial  prt.TrialSpec   `inactive:"+" desc:"current trial spec"`
	TrialName string          `inactive:"+" desc:"name of current trial"`
	TsrCat    etensor.Float64 `view:"-" desc:"one-hot category input"`
	TsrResp   etensor.Float64 `view:"-" desc:"one-hot correct response"`
	TsrRew    etensor.Float64 `view:"-" desc:"reward eligibility flag"`
	Run       env.Ctr         `view:"inline" desc:"current run of the task as provided during Init"`
	Epoch     env.Ctr         `view:"inline" desc:"number of times through the full sequence"`
	Block     env.Ctr         `view:"inline" desc:"block within the sequence, at the Sequence time scale"`
	Trial     env.Ctr         `view:"inline" desc:"trial within the sequence"`
}

func (ev *PRTEnv) Name() string { return ev.Nm }
func (ev *PRTEnv) Desc() string { return ev.Dsc }

func (ev *PRTEnv) Validate() error {
	if err := ev.Pattern.Validate(); err != nil {
		return err
	}
	if ev.Seq == nil {
		return fmt.Errorf("PRTEnv: %v has no sequence -- Init not called", ev.Nm)
	}
	return nil
}

func (ev *PRTEnv) Counters() []env.TimeScales {
	return []env.TimeScales{env.Run, env.Epoch, env.Sequence, env.Trial}
}

func (ev *PRTEnv) States() env.Elements {
	els := env.Elements{
		{Name: "Category", Shape: []int{2}, DimNames: nil},
		{Name: "CorrectResp", Shape: []int{2}, DimNames: nil},
		{Name: "RewardEligible", Shape: []int{1}, DimNames: nil},
	}
	return els
}

func (ev *PRTEnv) State(element string) etensor.Tensor {
	switch element {
	case "Category":
		return &ev.TsrCat
	case "CorrectResp":
		return &ev.TsrResp
	case "RewardEligible":
		return &ev.TsrRew
	}
	return nil
}

func (ev *PRTEnv) Actions() env.Elements {
	return nil
}

// String returns the current trial as a string
func (ev *PRTEnv) String() string {
	return ev.TrialName
}

func (ev *PRTEnv) Init(run int) {
	ev.Run.Scale = env.Run
	ev.Epoch.Scale = env.Epoch
	ev.Block.Scale = env.Sequence
	ev.Trial.Scale = env.Trial
	ev.Run.Init()
	ev.Epoch.Init()
	ev.Block.Init()
	ev.Trial.Init()
	ev.Run.Cur = run
	ev.Trial.Max = prt.NTrials
	ev.Block.Max = prt.NBlocks
	ev.Trial.Cur = -1 // init state -- key so that first Step() = 0
	ev.TsrCat.SetShape([]int{2}, nil, nil)
	ev.TsrResp.SetShape([]int{2}, nil, nil)
	ev.TsrRew.SetShape([]int{1}, nil, nil)
	ev.NewSequence()
}

// NewSequence generates a fresh sequence, seeded per run and epoch so each
// is distinct but reproducible given Seed.  Generation only fails on an
// invalid pattern, which Validate surfaces; a nil check on Seq covers the
// error path here.
func (ev *PRTEnv) NewSequence() {
	rnd := rand.New(rand.NewSource(ev.Seed + int64(ev.Run.Cur)*1000000 + int64(ev.Epoch.Cur)))
	sq, err := prt.Generate(&ev.Pattern, rnd)
	if err != nil {
		fmt.Printf("PRTEnv: %v sequence generation failed: %v\n", ev.Nm, err)
		return
	}
	ev.Seq = sq
}

// SetTrial sets the current trial state from the sequence at Trial.Cur.
func (ev *PRTEnv) SetTrial() {
	ev.CurTrial = ev.Seq.Trials[ev.Trial.Cur]
	ev.TsrCat.SetZeros()
	ev.TsrCat.SetFloat1D(int(ev.CurTrial.Category)-1, 1)
	ev.TsrResp.SetZeros()
	ev.TsrResp.SetFloat1D(int(ev.CurTrial.CorrectResp)-1, 1)
	ev.TsrRew.SetZeros()
	if ev.CurTrial.RewardEligible {
		ev.TsrRew.SetFloat1D(0, 1)
	}
	ev.TrialName = fmt.Sprintf("%v_%d", ev.CurTrial.Category, ev.CurTrial.TrialIndex)
}

func (ev *PRTEnv) Step() bool {
	ev.Epoch.Same() // outer counters only report changes on the step they happen
	if ev.Trial.Incr() {
		ev.Epoch.Incr()
		ev.NewSequence()
	}
	// Set updates Prv / Chg, so the runner sees the block boundary
	ev.Block.Set(ev.Trial.Cur / prt.BlockSize)
	ev.SetTrial()
	return true
}

// AtBlockEnd is true on the last trial of a block, where the trial runner
// inserts a rest break.
func (ev *PRTEnv) AtBlockEnd() bool {
	return ev.CurTrial.BlockEnd()
}

func (ev *PRTEnv) Action(element string, input etensor.Tensor) {
	// nop
}

func (ev *PRTEnv) Counter(scale env.TimeScales) (cur, prv int, chg bool) {
	switch scale {
	case env.Run:
		return ev.Run.Query()
	case env.Epoch:
		return ev.Epoch.Query()
	case env.Sequence:
		return ev.Block.Query()
	case env.Trial:
		return ev.Trial.Query()
	}
	return -1, -1, false
}

// Compile-time check that implements Env interface
var _ env.Env = (*PRTEnv)(nil)
