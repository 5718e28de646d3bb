// Package sim provides the core discrete-time simulation engine for a
// multi-server queueing system.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - task.go: Task lifecycle (waiting → in_service → completed)
//   - server.go: the Idle/Busy server state machine and its per-tick transition
//   - engine.go: the driver loop and the fixed intra-step ordering
//
// # Architecture
//
// The engine owns all mutable state. One call to Engine.Step simulates one
// tick of discrete time, in fixed order: arrival+dispatch, one Tick per
// server in ascending id order, statistics recording, clock increment.
// Observer sinks (reporting, charting) live outside this package and consume
// per-step snapshots; see sim/trace for the bundled recorder.
//
// All randomness flows through a seeded PartitionedRNG (rng.go), so a run is
// reproducible step-for-step given the same Config and seed.
package sim
