package casefile

// Verdict grades how ready a case is for filing.
type Verdict string

const (
	VerdictReady     Verdict = "READY"
	VerdictPartial   Verdict = "PARTIAL"
	VerdictNotReady  Verdict = "NOT_READY"
	readinessMaximum         = 3
)

// Checklist is the pre-filing self-check: does the plaintiff know who the
// opponent is, is the claim within its limitation period, and is there
// objective evidence.
type Checklist struct {
	KnowsOpponent    bool
	WithinLimitation bool
	HasEvidence      bool
}

// Readiness is the graded outcome of a checklist.
type Readiness struct {
	Score   int     `json:"score"`
	Max     int     `json:"max"`
	Verdict Verdict `json:"verdict"`
	Advice  string  `json:"advice"`
}

// Assess grades the checklist: all three answers affirmative means the suit
// can proceed, two flags missing prerequisites, fewer means filing now risks
// losing.
func Assess(c Checklist) Readiness {
	score := 0
	for _, ok := range []bool{c.KnowsOpponent, c.WithinLimitation, c.HasEvidence} {
		if ok {
			score++
		}
	}
	r := Readiness{Score: score, Max: readinessMaximum}
	switch {
	case score == readinessMaximum:
		r.Verdict = VerdictReady
		r.Advice = "소송 진행이 충분히 가능한 상태입니다."
	case score == readinessMaximum-1:
		r.Verdict = VerdictPartial
		r.Advice = "일부 요건이 부족합니다. 사실조회 신청 등이 필요할 수 있습니다."
	default:
		r.Verdict = VerdictNotReady
		r.Advice = "현재 상태로는 소송 진행이 어렵거나 패소 위험이 높습니다. 증거를 더 수집하세요."
	}
	return r
}
