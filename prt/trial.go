// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prt

import "github.com/goki/ki/kit"

// Category is the perceptual category of a stimulus.  The standard PRT
// realizes the two categories as short vs. long mouth lines on a schematic
// face, but nothing downstream depends on that realization.
type Category int

const (
	NoCategory Category = iota
	Short
	Long
	CategoryN
)

var KiT_Category = kit.Enums.AddEnum(CategoryN, kit.NotBitFlag, nil)

func (ct Category) String() string {
	switch ct {
	case Short:
		return "Short"
	case Long:
		return "Long"
	}
	return "NoCategory"
}

// Other returns the other category.
func (ct Category) Other() Category {
	switch ct {
	case Short:
		return Long
	case Long:
		return Short
	}
	return NoCategory
}

// Response is the input symbol that a subject can produce on a trial.
type Response int

const (
	NoResponse Response = iota
	Left
	Right
	ResponseN
)

var KiT_Response = kit.Enums.AddEnum(ResponseN, kit.NotBitFlag, nil)

func (rs Response) String() string {
	switch rs {
	case Left:
		return "Left"
	case Right:
		return "Right"
	}
	return "NoResponse"
}

// Frequency labels which category is the majority (rich reward-eligibility)
// class for a block: the frequent category has 60% of its trials eligible
// for reward, the infrequent one 20%.
type Frequency int

const (
	Frequent Frequency = iota
	Infrequent
	FrequencyN
)

var KiT_Frequency = kit.Enums.AddEnum(FrequencyN, kit.NotBitFlag, nil)

func (fq Frequency) String() string {
	if fq == Infrequent {
		return "Infrequent"
	}
	return "Frequent"
}

// TrialSpec is one element of a generated sequence: everything the trial
// runner needs to present the trial and score the response.  It is
// immutable once the sequence has been generated.
type TrialSpec struct {
	Category       Category  `desc:"perceptual category shown on this trial"`
	CorrectResp    Response  `desc:"response that is correct for this category under the active pattern"`
	Frequency      Frequency `desc:"whether this trial's category is the frequent or infrequent one"`
	RewardEligible bool      `desc:"whether a correct response to this trial may be rewarded, subject to the reward bookkeeping"`
	TrialIndex     int       `inactive:"+" desc:"1-based position in the full concatenated sequence, assigned after generation"`
}

// Block is the 1-based block number this trial belongs to, from its index.
func (ts *TrialSpec) Block() int {
	return 1 + (ts.TrialIndex-1)/BlockSize
}

// BlockEnd is true if this is the last trial of its block, where the
// trial runner typically inserts a rest break.
func (ts *TrialSpec) BlockEnd() bool {
	return ts.TrialIndex%BlockSize == 0
}
