// Package lotwheel builds lottery "shortened systems": sets of bets drawn
// from a player's number pool such that every G-number subset of the pool
// sits inside at least one bet.
//
// 🚀 What is in the module?
//
//	combo/    — combination enumeration, counting and unranking (gonum combin)
//	cover/    — the engine: counting bound, design library, verifier,
//	            greedy covering solver and the Generate facade
//	internal/ — CLI plumbing: config (YAML), logger (slog+tint),
//	            favorites (Badger), batch (errgroup)
//	cmd/      — the lotwheel command
//	examples/ — runnable scenarios
//
// ✨ Scope:
//
//	The engine arranges the player's own numbers. It predicts nothing and
//	does not change the odds of any draw.
//
// Quick start:
//
//	sys, err := cover.Generate([]int{3, 8, 12, 19, 23, 31, 36, 42, 44, 47}, 6, 3)
//
//	go install github.com/katalvlaran/lotwheel/cmd/lotwheel@latest
package lotwheel
