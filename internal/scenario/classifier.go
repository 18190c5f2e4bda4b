// Package scenario classifies free-text case facts into a coarse civil-claim
// type by keyword frequency.
package scenario

import "strings"

// Kind tags a claim scenario.
type Kind string

const (
	Loan    Kind = "LOAN"
	Deposit Kind = "DEPOSIT"
	Tort    Kind = "TORT"
	Wage    Kind = "WAGE"
	Sales   Kind = "SALES"
	Estate  Kind = "ESTATE"
	General Kind = "GENERAL"
)

// Definition pairs a scenario with its display label and trigger keywords.
type Definition struct {
	Kind     Kind
	Label    string
	Keywords []string
}

// definitions is scanned in order; the first scenario with the highest
// keyword count wins. General carries no keywords and is the fallback.
var definitions = []Definition{
	{Loan, "💰 대여금 청구", []string{"빌려", "대여", "차용", "차용증"}},
	{Deposit, "🏠 보증금 반환", []string{"보증금", "전세", "월세", "임대차"}},
	{Tort, "🏥 손해배상", []string{"사고", "폭행", "피해", "과실"}},
	{Wage, "💼 임금 청구", []string{"임금", "월급", "퇴직금", "급여"}},
	{Sales, "🏗️ 물품/공사대금", []string{"물품", "공사", "대금", "자재"}},
	{Estate, "🏘️ 부동산 계약", []string{"부동산", "매매", "계약", "등기"}},
	{General, "📝 일반 민사", nil},
}

// fallback is the General definition.
var fallback = definitions[len(definitions)-1]

// Definitions returns the scenario table in scan order.
func Definitions() []Definition {
	out := make([]Definition, len(definitions))
	copy(out, definitions)
	return out
}

// Classify scores text against every scenario definition and returns the
// best-scoring one. Scoring counts trigger keywords contained in text
// (plain substring match, case-sensitive); ties keep the first-defined
// scenario. A zero best score falls back to General.
func Classify(text string) Definition {
	best := fallback
	bestScore := 0
	for _, def := range definitions {
		score := 0
		for _, kw := range def.Keywords {
			if strings.Contains(text, kw) {
				score++
			}
		}
		if score > bestScore {
			best = def
			bestScore = score
		}
	}
	if bestScore == 0 {
		return fallback
	}
	return best
}

// Label is a convenience wrapper returning only the display label.
func Label(text string) string {
	return Classify(text).Label
}
