// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prt

import "fmt"

// TaskPattern is the counterbalancing configuration for one task run: which
// response is correct for each category, and which category is the frequent
// (rich) one.  It is fixed before generation and validated before any
// randomness is drawn.
type TaskPattern struct {
	ShortResp Response `desc:"response that is correct for Short stimuli"`
	LongResp  Response `desc:"response that is correct for Long stimuli"`
	Frequent  Category `desc:"category with the rich (60%) reward-eligibility rate"`
}

// Defaults sets the standard pattern: Short on the left key, Long on the
// right, Short frequent.  Counterbalancing across subjects is done by the
// caller varying these fields.
func (tp *TaskPattern) Defaults() {
	tp.ShortResp = Left
	tp.LongResp = Right
	tp.Frequent = Short
}

// Validate checks the pattern for configuration errors: unset fields, or
// both categories mapped to the same response.  Called by Generate before
// any randomness is drawn, so a bad pattern never yields a partial sequence.
func (tp *TaskPattern) Validate() error {
	if tp.ShortResp == NoResponse || tp.LongResp == NoResponse {
		return fmt.Errorf("prt.TaskPattern: category response mapping not set: Short: %v, Long: %v", tp.ShortResp, tp.LongResp)
	}
	if tp.ShortResp == tp.LongResp {
		return fmt.Errorf("prt.TaskPattern: both categories mapped to response %v -- must be distinct", tp.ShortResp)
	}
	if tp.Frequent != Short && tp.Frequent != Long {
		return fmt.Errorf("prt.TaskPattern: frequent category not set")
	}
	return nil
}

// Response returns the correct response for the given category.
func (tp *TaskPattern) Response(cat Category) Response {
	if cat == Short {
		return tp.ShortResp
	}
	return tp.LongResp
}

// Frequency returns the frequency class of the given category.
func (tp *TaskPattern) Frequency(cat Category) Frequency {
	if cat == tp.Frequent {
		return Frequent
	}
	return Infrequent
}

// Infrequent returns the infrequent (lean) category.
func (tp *TaskPattern) Infrequent() Category {
	return tp.Frequent.Other()
}
