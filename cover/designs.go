// SPDX-License-Identifier: MIT
// Package: lotwheel/cover
//
// designs.go — the precomputed design table.
//
// Every entry is a list of 0-based index tuples into a sorted pool of
// PoolSize numbers. Each tuple has the family's bet size. Each entry covers
// every Guarantee-subset of its pool; design_test.go asserts this over the
// literal table, so the table is never trusted blindly and never rebuilt at
// runtime.
//
// Provenance: entries were found offline by randomized greedy search followed
// by redundancy pruning, except SixPick (8,4), which is the complement of every
// pair inside the first six positions (any 4-subset of 8 misses at least one
// such pair). Sizes are not claimed to be minimal.

package cover

// knownDesigns maps (pool size, guarantee, family) to index tuples.
var knownDesigns = map[DesignKey][][]int{
	{PoolSize: 7, Guarantee: 3, Family: SixPick}: {
		{1, 2, 3, 4, 5, 6}, {0, 2, 3, 4, 5, 6}, {0, 1, 3, 4, 5, 6},
		{0, 1, 2, 4, 5, 6},
	},
	{PoolSize: 7, Guarantee: 4, Family: SixPick}: {
		{0, 1, 2, 3, 4, 5}, {0, 1, 2, 3, 4, 6}, {0, 1, 2, 3, 5, 6},
		{0, 1, 2, 4, 5, 6}, {0, 1, 3, 4, 5, 6},
	},
	{PoolSize: 7, Guarantee: 5, Family: SixPick}: {
		{0, 1, 2, 3, 4, 5}, {0, 1, 2, 3, 4, 6}, {0, 1, 2, 3, 5, 6},
		{0, 1, 2, 4, 5, 6}, {0, 1, 3, 4, 5, 6}, {0, 2, 3, 4, 5, 6},
	},
	{PoolSize: 8, Guarantee: 3, Family: SixPick}: {
		{0, 1, 2, 3, 4, 5}, {0, 1, 2, 3, 6, 7}, {0, 1, 4, 5, 6, 7},
		{2, 3, 4, 5, 6, 7},
	},
	{PoolSize: 8, Guarantee: 4, Family: SixPick}: {
		{2, 3, 4, 5, 6, 7}, {1, 3, 4, 5, 6, 7}, {1, 2, 4, 5, 6, 7},
		{1, 2, 3, 5, 6, 7}, {1, 2, 3, 4, 6, 7}, {0, 3, 4, 5, 6, 7},
		{0, 2, 4, 5, 6, 7}, {0, 2, 3, 5, 6, 7}, {0, 2, 3, 4, 6, 7},
		{0, 1, 4, 5, 6, 7}, {0, 1, 3, 5, 6, 7}, {0, 1, 3, 4, 6, 7},
		{0, 1, 2, 5, 6, 7}, {0, 1, 2, 4, 6, 7}, {0, 1, 2, 3, 6, 7},
	},
	{PoolSize: 9, Guarantee: 3, Family: SixPick}: {
		{0, 1, 2, 4, 5, 8}, {0, 1, 3, 4, 7, 8}, {0, 1, 3, 5, 6, 8},
		{0, 2, 3, 4, 6, 8}, {0, 2, 3, 5, 7, 8}, {0, 3, 4, 5, 6, 7},
		{1, 2, 3, 6, 7, 8}, {1, 2, 4, 5, 6, 7},
	},
	{PoolSize: 9, Guarantee: 4, Family: SixPick}: {
		{0, 1, 2, 3, 4, 6}, {0, 1, 2, 3, 7, 8}, {0, 1, 2, 4, 5, 8},
		{0, 1, 3, 5, 6, 8}, {0, 1, 4, 5, 6, 7}, {0, 2, 3, 4, 5, 7},
		{0, 2, 5, 6, 7, 8}, {0, 3, 4, 6, 7, 8}, {1, 2, 3, 5, 6, 7},
		{1, 2, 4, 6, 7, 8}, {1, 3, 4, 5, 7, 8}, {2, 3, 4, 5, 6, 8},
	},
	{PoolSize: 10, Guarantee: 3, Family: SixPick}: {
		{0, 1, 2, 3, 7, 9}, {0, 1, 2, 4, 6, 9}, {0, 1, 3, 4, 5, 8},
		{0, 1, 3, 4, 7, 8}, {0, 1, 3, 6, 8, 9}, {0, 2, 3, 4, 8, 9},
		{0, 2, 3, 5, 6, 9}, {0, 3, 5, 6, 7, 8}, {1, 2, 3, 4, 5, 8},
		{1, 2, 3, 4, 7, 8}, {1, 2, 3, 5, 6, 7}, {1, 4, 5, 6, 7, 9},
		{2, 3, 4, 6, 8, 9}, {3, 5, 6, 7, 8, 9},
	},
	{PoolSize: 11, Guarantee: 3, Family: SixPick}: {
		{0, 1, 2, 5, 7, 10}, {0, 1, 3, 4, 7, 9}, {0, 1, 6, 8, 9, 10},
		{0, 2, 3, 6, 7, 8}, {0, 2, 4, 5, 6, 9}, {0, 3, 4, 5, 8, 10},
		{1, 2, 3, 4, 6, 10}, {1, 2, 3, 5, 8, 9}, {1, 4, 5, 6, 7, 8},
		{2, 4, 7, 8, 9, 10}, {3, 5, 6, 7, 9, 10},
	},
	{PoolSize: 12, Guarantee: 3, Family: SixPick}: {
		{0, 1, 2, 5, 7, 8}, {0, 1, 2, 6, 9, 11}, {0, 1, 3, 4, 8, 10},
		{0, 2, 3, 4, 5, 11}, {0, 2, 7, 8, 10, 11}, {0, 3, 4, 6, 7, 9},
		{0, 5, 6, 8, 9, 10}, {1, 2, 3, 5, 9, 10}, {1, 2, 4, 6, 7, 10},
		{1, 2, 4, 7, 8, 9}, {1, 3, 6, 7, 10, 11}, {1, 3, 7, 8, 9, 11},
		{1, 4, 5, 6, 8, 11}, {2, 3, 5, 6, 7, 8}, {4, 5, 7, 9, 10, 11},
	},
	{PoolSize: 6, Guarantee: 3, Family: FivePick}: {
		{0, 1, 2, 3, 4}, {0, 1, 3, 4, 5}, {0, 2, 3, 4, 5},
		{1, 2, 3, 4, 5},
	},
	{PoolSize: 6, Guarantee: 4, Family: FivePick}: {
		{0, 1, 2, 3, 4}, {0, 1, 2, 3, 5}, {0, 1, 2, 4, 5},
		{0, 1, 3, 4, 5}, {0, 2, 3, 4, 5},
	},
	{PoolSize: 7, Guarantee: 3, Family: FivePick}: {
		{0, 1, 2, 3, 6}, {0, 1, 3, 4, 6}, {0, 1, 3, 5, 6},
		{0, 2, 3, 4, 5}, {1, 2, 4, 5, 6},
	},
	{PoolSize: 7, Guarantee: 4, Family: FivePick}: {
		{0, 1, 2, 3, 6}, {0, 1, 2, 4, 5}, {0, 1, 3, 4, 6},
		{0, 1, 3, 5, 6}, {0, 2, 3, 4, 5}, {0, 2, 4, 5, 6},
		{1, 2, 3, 4, 5}, {1, 2, 4, 5, 6}, {2, 3, 4, 5, 6},
	},
	{PoolSize: 8, Guarantee: 3, Family: FivePick}: {
		{0, 1, 2, 5, 7}, {0, 1, 3, 4, 6}, {0, 2, 3, 5, 6},
		{0, 2, 4, 6, 7}, {0, 3, 4, 5, 7}, {1, 2, 3, 4, 5},
		{1, 2, 3, 6, 7}, {1, 4, 5, 6, 7},
	},
	{PoolSize: 8, Guarantee: 4, Family: FivePick}: {
		{0, 1, 2, 3, 4}, {0, 1, 2, 3, 5}, {0, 1, 2, 3, 7},
		{0, 1, 2, 4, 6}, {0, 1, 2, 5, 7}, {0, 1, 3, 4, 6},
		{0, 1, 4, 5, 7}, {0, 1, 5, 6, 7}, {0, 2, 3, 5, 6},
		{0, 2, 3, 6, 7}, {0, 2, 4, 5, 6}, {0, 2, 4, 6, 7},
		{0, 3, 4, 5, 7}, {1, 2, 3, 4, 6}, {1, 2, 4, 5, 6},
		{1, 2, 4, 6, 7}, {1, 3, 4, 5, 7}, {1, 3, 5, 6, 7},
		{2, 3, 4, 5, 7}, {2, 4, 5, 6, 7}, {3, 4, 5, 6, 7},
	},
	{PoolSize: 9, Guarantee: 3, Family: FivePick}: {
		{0, 1, 2, 7, 8}, {0, 1, 3, 5, 6}, {0, 1, 4, 5, 8},
		{0, 2, 3, 4, 6}, {0, 2, 4, 5, 7}, {0, 3, 6, 7, 8},
		{1, 2, 3, 4, 5}, {1, 2, 3, 6, 7}, {1, 2, 3, 6, 8},
		{1, 4, 5, 6, 7}, {2, 4, 5, 6, 8}, {3, 4, 5, 7, 8},
	},
	{PoolSize: 10, Guarantee: 3, Family: FivePick}: {
		{0, 1, 2, 5, 8}, {0, 1, 2, 6, 7}, {0, 1, 3, 4, 6},
		{0, 1, 5, 6, 9}, {0, 2, 3, 5, 9}, {0, 2, 4, 5, 7},
		{0, 3, 7, 8, 9}, {0, 4, 6, 8, 9}, {1, 2, 3, 6, 9},
		{1, 2, 4, 5, 9}, {1, 2, 6, 7, 8}, {1, 3, 5, 7, 8},
		{1, 4, 7, 8, 9}, {2, 3, 4, 6, 7}, {2, 3, 4, 8, 9},
		{2, 4, 5, 8, 9}, {2, 5, 6, 7, 9}, {3, 4, 5, 6, 8},
	},
}
