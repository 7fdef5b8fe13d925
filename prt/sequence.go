// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prt

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Sequence is a complete generated trial sequence: 3 independently
// generated blocks of 100 trials, concatenated, with 1-based trial indexes
// assigned over the flattened result.  It is generated once per task run
// and read-only thereafter.
type Sequence struct {
	RunID   string      `inactive:"+" desc:"unique id for this generated sequence"`
	Pattern TaskPattern `desc:"pattern the sequence was generated under"`
	Trials  []TrialSpec `view:"no-inline" desc:"the full ordered trial list"`
}

// Generate produces a full sequence under the given pattern.  The pattern
// is validated first; no randomness is drawn for an invalid pattern.  rnd
// may be nil, in which case a time-seeded source is used; tests that need
// reproducibility pass a seeded source instead.
func Generate(tp *TaskPattern, rnd *rand.Rand) (*Sequence, error) {
	if err := tp.Validate(); err != nil {
		return nil, err
	}
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	trials := make([]TrialSpec, 0, NTrials)
	for bi := 0; bi < NBlocks; bi++ {
		trials = append(trials, buildBlock(tp, rnd)...)
	}
	for i := range trials {
		trials[i].TrialIndex = i + 1
	}
	return &Sequence{RunID: uuid.New().String(), Pattern: *tp, Trials: trials}, nil
}

// Block returns the trials of the given 1-based block number.
func (sq *Sequence) Block(blk int) []TrialSpec {
	st := (blk - 1) * BlockSize
	return sq.Trials[st : st+BlockSize]
}
