// Package combo enumerates k-sized combinations of a sequence.
//
// 🚀 What is it for?
//
//	Covering-design search needs two combination spaces over the same pool:
//	every candidate bet (k = bet size) and every target subset (k = guarantee).
//	combo produces both, in a stable order, without recursion.
//
// ✨ Key features:
//   - Generic over the element type ([]T in, [][]T out).
//   - Deterministic order by source position (lexicographic over indices):
//     items[0] is chosen before it is skipped, exactly like a choose-or-skip walk.
//   - Iterative: state lives in an index tuple driven by gonum's
//     stat/combin.CombinationGenerator, so depth never grows with k.
//   - Streaming (Each) for callers that do not want to materialize C(n,k) slices.
//   - Counting (Count) and unranking (Unrank) helpers.
//
// Edge policy:
//   - k == 0        → exactly one empty combination.
//   - k > len(items) → no combinations.
//   - k < 0         → no combinations.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lotwheel/combo"
//
//	for _, c := range combo.Combinations([]int{1, 2, 3, 4}, 2) {
//	    fmt.Println(c) // [1 2] [1 3] [1 4] [2 3] [2 4] [3 4]
//	}
//
// Performance:
//
//   - Time:   O(C(n,k)·k)
//   - Memory: O(C(n,k)·k) for Combinations, O(k) for Each.
//
// Practical limits: n≈20 with k≈12 gives C(20,12)=125 970 tuples, which is
// comfortably materialized; beyond that prefer Each.
package combo
