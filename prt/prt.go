// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package prt generates stimulus sequences for the probabilistic reward task
(PRT): a two-alternative forced-choice task with asymmetric, probabilistic
reward feedback, used to study reward-learning bias.

A full sequence is 3 blocks of 100 trials.  Within each block the two
stimulus categories each appear exactly 50 times, with exactly 30 of the
frequent-category trials and 10 of the infrequent-category trials eligible
for reward, and no category ever appears on more than 2 consecutive trials.
*/
package prt

// Task structure constants.  These are fixed properties of the standard
// PRT administration, not tunable parameters.
const (
	// NBlocks is the number of independently generated blocks per sequence.
	NBlocks = 3

	// BlockSize is the number of trials per block.
	BlockSize = 100

	// BucketSize is the number of trials of each category per block.
	BucketSize = BlockSize / 2

	// FrequentEligible is the number of reward-eligible trials among the
	// 50 frequent-category trials in a block (60%).
	FrequentEligible = 30

	// InfrequentEligible is the number of reward-eligible trials among the
	// 50 infrequent-category trials in a block (20%).
	InfrequentEligible = 10

	// MaxRunLen is the maximum number of consecutive same-category trials.
	MaxRunLen = 2

	// NTrials is the total sequence length.
	NTrials = NBlocks * BlockSize
)
