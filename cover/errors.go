// SPDX-License-Identifier: MIT
// Package: lotwheel/cover
//
// errors.go — sentinel errors for the cover package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Context is attached with fmt.Errorf("%w: ...") at the return site.
//   • Fatal errors (validation, resource ceilings) abort generation and return
//     a zero System. No partial objects.
//   • Soft conditions (ErrDegenerateSystem, ErrPartialCoverage) are NEVER
//     returned as the error of Generate; they are carried in System.Warnings.
//   • Algorithms do not panic on user input.

package cover

import "errors"

// ErrInvalidGuarantee indicates G < 1 or G > K.
// Usage: if errors.Is(err, ErrInvalidGuarantee) { /* ask for a smaller G */ }.
var ErrInvalidGuarantee = errors.New("cover: invalid guarantee")

// ErrInsufficientPool indicates the pool has fewer numbers than the guarantee (N < G).
var ErrInsufficientPool = errors.New("cover: pool smaller than guarantee")

// ErrInvalidPool indicates an empty pool, a non-positive number, or a duplicate.
var ErrInvalidPool = errors.New("cover: invalid number pool")

// ErrSearchSpaceTooLarge indicates the request exceeds the configured
// pool-size or combination-count ceiling, or the 64-number representation limit.
var ErrSearchSpaceTooLarge = errors.New("cover: search space too large")

// ErrOptionViolation indicates a WithX option received a meaningless value.
var ErrOptionViolation = errors.New("cover: invalid option value")

// ErrBetOutsidePool indicates a bet references a number that is not in the pool.
var ErrBetOutsidePool = errors.New("cover: bet number outside pool")

// ErrDegenerateSystem tags a trivial N ≤ K result: a single bet holding the
// whole pool. Covering-design semantics do not apply. Soft (warning only).
var ErrDegenerateSystem = errors.New("cover: degenerate system")

// ErrPartialCoverage tags a solver result whose coverage fraction is below 1.
// Expected heuristic outcome, not a failure. Soft (warning only).
var ErrPartialCoverage = errors.New("cover: partial coverage")
