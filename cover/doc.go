// Package cover builds lottery "shortened systems": covering designs over a
// player's number pool.
//
// 🚀 What is a covering design?
//
//	Given N pool numbers, a bet size K and a guarantee G, a covering design is
//	a set of K-number bets such that every G-number subset of the pool lies
//	inside at least one bet. If G of the drawn numbers are in the pool, some
//	bet holds all G of them.
//
//	The package does not predict draws and does not change jackpot odds; it
//	only arranges the player's own numbers.
//
// ✨ Components:
//   - LowerBound / Efficiency / IsOptimal — ⌈C(N,G)/C(K,G)⌉ counting bound
//     (an approximation, weaker than Schönheim) and the 0.8 efficiency signal.
//   - Lookup / MapDesign / Designs — precomputed designs for small pools at
//     the 6-pick and 5-pick bet sizes, full coverage by construction.
//   - Verify / Uncovered — coverage audit independent of the producer.
//   - Greedy — heuristic set cover with a random filler post-pass.
//   - Generate — the facade: validation → trivial cases → library → solver →
//     audit → metrics.
//
// Guarantees:
//
//	Only library hits (UsedKnownDesign) and the trivial whole-pool bet are
//	full coverage by construction. Solver output is best-effort: callers read
//	CoverageFraction; below 1 the System carries ErrPartialCoverage.
//
// ⚙️ Usage:
//
//	sys, err := cover.Generate([]int{3, 8, 12, 19, 23, 31, 36, 42, 44, 47}, 6, 3)
//	if err != nil {
//	    // ErrInvalidGuarantee, ErrInsufficientPool, ErrInvalidPool, ...
//	}
//	fmt.Println(sys.TotalBets(), sys.CoverageFraction, sys.UsedKnownDesign)
//
// Determinism:
//
//	The library path is fully deterministic. The solver breaks ties by
//	enumeration order; its filler post-pass draws from Options.Rand, or from a
//	seeded stream (WithSeed; 0 ⇒ fixed default). Tests assert properties on
//	that path, not exact bet sequences.
//
// Performance:
//
//   - Library / trivial: O(N log N).
//   - Solver: O(|B|·C(K,G)) per iteration, |B| = C(N,K). Practical for
//     N ≲ 15–18. Generate rejects N > MaxPoolSize (20),
//     C(N,K)+C(N,G) > MaxCombinations (250 000) or estimated probes
//     min(cap,|B|)·|B|·C(K,G) > MaxWork (1e8) with ErrSearchSpaceTooLarge.
//   - Verify: O(C(N,G)·|bets|), refused above MaxAuditWork (2e9).
//
// Concurrency:
//
//	Stateless; safe for concurrent calls as long as callers do not share a
//	RandSource between goroutines.
package cover
