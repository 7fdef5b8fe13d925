// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prtenv

import (
	"testing"

	"github.com/emer/emergent/env"
	"github.com/emer/prt/prt"
)

func newEnv(seed int64) *PRTEnv {
	ev := &PRTEnv{Nm: "TestPRT"}
	ev.Pattern.Defaults()
	ev.Seed = seed
	ev.Init(0)
	return ev
}

func TestEnvValidate(t *testing.T) {
	ev := &PRTEnv{Nm: "TestPRT"}
	if err := ev.Validate(); err == nil {
		t.Errorf("unconfigured env passed validation\n")
	}
	ev = newEnv(1)
	if err := ev.Validate(); err != nil {
		t.Errorf("configured env failed validation: %v\n", err)
	}
}

func TestEnvStep(t *testing.T) {
	ev := newEnv(2)
	for i := 0; i < prt.NTrials; i++ {
		ev.Step()
		cur, _, _ := ev.Counter(env.Trial)
		if cur != i {
			t.Fatalf("trial counter %d, want %d\n", cur, i)
		}
		want := ev.Seq.Trials[i]
		if ev.CurTrial != want {
			t.Errorf("step %d: CurTrial %+v, want %+v\n", i, ev.CurTrial, want)
		}
		blk, prv, chg := ev.Counter(env.Sequence)
		if blk != i/prt.BlockSize {
			t.Errorf("step %d: block %d, want %d\n", i, blk, i/prt.BlockSize)
		}
		if chg != (i%prt.BlockSize == 0 && i > 0) {
			t.Errorf("step %d: block chg %v\n", i, chg)
		}
		if chg && prv != blk-1 {
			t.Errorf("step %d: block prv %d, want %d\n", i, prv, blk-1)
		}
		if (i+1)%prt.BlockSize == 0 && !ev.AtBlockEnd() {
			t.Errorf("step %d: AtBlockEnd false at last trial of block\n", i)
		}
	}
	// next step rolls into a new epoch with a fresh sequence
	old := ev.Seq
	ev.Step()
	ep, _, chg := ev.Counter(env.Epoch)
	if ep != 1 || !chg {
		t.Errorf("epoch counter %d chg %v after full sequence, want 1 true\n", ep, chg)
	}
	if ev.Seq == old {
		t.Errorf("sequence not regenerated at epoch start\n")
	}
}

func TestEnvStates(t *testing.T) {
	ev := newEnv(3)
	ev.Step()
	cat := ev.State("Category")
	rsp := ev.State("CorrectResp")
	rew := ev.State("RewardEligible")
	if cat == nil || rsp == nil || rew == nil {
		t.Fatalf("missing state tensors\n")
	}
	csum, ci := 0.0, -1
	for i := 0; i < 2; i++ {
		v := cat.FloatVal1D(i)
		csum += v
		if v == 1 {
			ci = i
		}
	}
	if csum != 1 {
		t.Errorf("category state not one-hot: sum %v\n", csum)
	}
	if ci != int(ev.CurTrial.Category)-1 {
		t.Errorf("category state index %d, want %d\n", ci, int(ev.CurTrial.Category)-1)
	}
	elig := rew.FloatVal1D(0) == 1
	if elig != ev.CurTrial.RewardEligible {
		t.Errorf("reward state %v, trial eligibility %v\n", elig, ev.CurTrial.RewardEligible)
	}
}

func TestEnvDeterminism(t *testing.T) {
	eva := newEnv(42)
	evb := newEnv(42)
	for i := range eva.Seq.Trials {
		if eva.Seq.Trials[i] != evb.Seq.Trials[i] {
			t.Errorf("trial %d differs across same-seed envs\n", i)
			break
		}
	}
	evc := newEnv(43)
	same := true
	for i := range eva.Seq.Trials {
		if eva.Seq.Trials[i] != evc.Seq.Trials[i] {
			same = false
			break
		}
	}
	if same {
		t.Errorf("different seeds produced identical sequences\n")
	}
}
