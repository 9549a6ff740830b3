// SPDX-License-Identifier: MIT
// Package: lotwheel/cover
//
// payload.go — the export contract handed to display, export and favorites
// collaborators. JSON field names are part of that contract.

package cover

// Payload is the serializable view of a System.
type Payload struct {
	Numbers            []int    `json:"numbers" yaml:"numbers"`
	Bets               [][]int  `json:"bets" yaml:"bets"`
	BetSize            int      `json:"betSize" yaml:"betSize"`
	Guarantee          int      `json:"guarantee" yaml:"guarantee"`
	TotalBets          int      `json:"totalBets" yaml:"totalBets"`
	CoverageFraction   float64  `json:"coverageFraction" yaml:"coverageFraction"`
	TheoreticalMinimum int      `json:"theoreticalMinimum" yaml:"theoreticalMinimum"`
	IsOptimal          bool     `json:"isOptimal" yaml:"isOptimal"`
	UsedKnownDesign    bool     `json:"usedKnownDesign" yaml:"usedKnownDesign"`
	Trivial            bool     `json:"trivial,omitempty" yaml:"trivial,omitempty"`
	Short              bool     `json:"short,omitempty" yaml:"short,omitempty"`
	Warnings           []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Payload returns a deep-copied export view of s.
func (s System) Payload() Payload {
	var p = Payload{
		Numbers:            s.Numbers(),
		Bets:               s.BetList(),
		BetSize:            s.K,
		Guarantee:          s.G,
		TotalBets:          len(s.Bets),
		CoverageFraction:   s.CoverageFraction,
		TheoreticalMinimum: s.TheoreticalMinimum,
		IsOptimal:          s.IsOptimal,
		UsedKnownDesign:    s.UsedKnownDesign,
		Trivial:            s.Trivial,
		Short:              s.Short,
	}
	for _, w := range s.Warnings {
		p.Warnings = append(p.Warnings, w.Error())
	}

	return p
}
