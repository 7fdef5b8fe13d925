// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prt

import (
	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"
)

// Table returns the sequence as an etable.Table, one row per trial, for
// logging and offline analysis.  note: use float64 for numeric columns as
// that is best for etable.Table.
func (sq *Sequence) Table() *etable.Table {
	dt := &etable.Table{}
	dt.SetMetaData("name", "PRTSequence")
	dt.SetMetaData("desc", "generated probabilistic reward task trial sequence")
	dt.SetMetaData("run-id", sq.RunID)
	sch := etable.Schema{
		{Name: "TrialIndex", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "Block", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "Category", Type: etensor.STRING, CellShape: nil, DimNames: nil},
		{Name: "CorrectResp", Type: etensor.STRING, CellShape: nil, DimNames: nil},
		{Name: "Frequency", Type: etensor.STRING, CellShape: nil, DimNames: nil},
		{Name: "RewardEligible", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
	}
	dt.SetFromSchema(sch, len(sq.Trials))
	for i := range sq.Trials {
		ts := &sq.Trials[i]
		elig := 0.0
		if ts.RewardEligible {
			elig = 1
		}
		dt.SetCellFloat("TrialIndex", i, float64(ts.TrialIndex))
		dt.SetCellFloat("Block", i, float64(ts.Block()))
		dt.SetCellString("Category", i, ts.Category.String())
		dt.SetCellString("CorrectResp", i, ts.CorrectResp.String())
		dt.SetCellString("Frequency", i, ts.Frequency.String())
		dt.SetCellFloat("RewardEligible", i, elig)
	}
	return dt
}
