// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package prt is the overall repository for the probabilistic reward task (PRT)
stimulus sequence generator, implemented in the Go language (golang).

This top-level of the repository has no functional code -- everything is organized
into the following sub-repositories:

* prt: the core sequence generator: per-block trial buckets with exact
reward-eligibility counts, run-length interleaving so that no category ever
appears on more than 2 consecutive trials, block assembly, and diagnostic
validation of a generated sequence.

* prtenv: an emergent env.Env that presents a generated sequence trial by
trial, with counters for runs, epochs, blocks, and trials, suitable for
driving a trial runner.

* reward: the per-trial reward bookkeeping reducer that decides whether a
reward-eligible trial actually pays out, carrying missed rewards forward.

* examples: these compile into runnable programs.  examples/prt generates a
full sequence, validates it, and writes it out as a tab-separated table.
*/
package prt
