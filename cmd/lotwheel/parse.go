// SPDX-License-Identifier: MIT
// Package: lotwheel/cmd/lotwheel
//
// parse.go — flag parsing and output helpers.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// parseNumbers reads "1,2, 3" into []int.
func parseNumbers(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty number list %q", s)
	}

	out := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("bad number %q: %w", f, err)
		}
		out = append(out, v)
	}

	return out, nil
}

// parseBets reads "1,2,3;4,5,6" into [][]int.
func parseBets(s string) ([][]int, error) {
	var bets [][]int
	for _, part := range strings.Split(s, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		bet, err := parseNumbers(part)
		if err != nil {
			return nil, err
		}
		bets = append(bets, bet)
	}
	if len(bets) == 0 {
		return nil, fmt.Errorf("no bets in %q", s)
	}

	return bets, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, " ")
}
