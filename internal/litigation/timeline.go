package litigation

import "time"

// Phase keys the advisory registry.
type Phase string

const (
	PhaseStart Phase = "start"
	PhaseWait  Phase = "wait"
	PhaseFight Phase = "fight"
	PhaseTrial Phase = "trial"
	PhaseEnd   Phase = "end"
)

// Advisory is the fixed coaching content attached to a timeline step.
type Advisory struct {
	Message  string `json:"message"`
	MediaRef string `json:"media_ref"`
}

// advisories is static per-phase content; never mutated at runtime.
var advisories = map[Phase]Advisory{
	PhaseStart: {"시작이 반입니다. 권리 구제의 첫걸음을 응원합니다.", "https://www.youtube.com/watch?v=pzlw6fUux4o"},
	PhaseWait:  {"법원은 증거로 말합니다. 차분히 답변서를 기다리며 증거를 재점검하세요.", "https://www.youtube.com/watch?v=HuM1k6d7NXI"},
	PhaseFight: {"감정적 대응은 금물입니다. 법정에서는 오직 팩트와 법리로 승부하세요.", "https://www.youtube.com/watch?v=v2AcV5rV_wA"},
	PhaseTrial: {"재판장 앞에서는 간결하고 명확하게 답변하는 것이 가장 유리합니다.", "https://www.youtube.com/watch?v=inpok4MKVLM"},
	PhaseEnd:   {"수고하셨습니다. 결과와 상관없이 당신의 정당한 권리를 위한 노력은 가치 있습니다.", "https://www.youtube.com/watch?v=CvFH_6DNRCY"},
}

// TimelineStep is one stage of the five-stage procedural model.
type TimelineStep struct {
	WeekOffset  int       `json:"week_offset"`
	Event       string    `json:"event"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Advisory    Advisory  `json:"advisory"`
}

// stepTemplate is the fixed procedural sequence of a first-instance money
// claim: filing, service of process, oral hearing, deliberation, judgment.
var stepTemplate = []struct {
	weeks int
	event string
	desc  string
	phase Phase
}{
	{0, "소장 접수", "인지대/송달료 납부 및 사건번호 부여", PhaseStart},
	{4, "부본 송달", "피고에게 소장이 전달되고 답변서를 기다리는 단계", PhaseWait},
	{12, "변론 기일", "법정에 출석하여 양측의 주장과 증거를 다투는 단계", PhaseFight},
	{20, "재판 심리", "추가 증거 조사 및 판사의 최종 판단 과정", PhaseTrial},
	{28, "판결 선고", "최종 판결문 교부 및 소송의 종결", PhaseEnd},
}

// AdvisoryFor returns the static advisory for a phase; unknown phases get a
// zero value rather than an error.
func AdvisoryFor(p Phase) Advisory {
	return advisories[p]
}

// ProjectTimeline returns the five-step litigation timeline anchored at
// start, plus the filing-cost breakdown surfaced alongside it. The timeline
// shape never varies with case specifics; only dates and costs depend on
// the input.
func ProjectTimeline(amount int64, start time.Time) ([]TimelineStep, CostBreakdown) {
	costs := ComputeCosts(amount)
	steps := make([]TimelineStep, 0, len(stepTemplate))
	for _, t := range stepTemplate {
		steps = append(steps, TimelineStep{
			WeekOffset:  t.weeks,
			Event:       t.event,
			Description: t.desc,
			Date:        start.AddDate(0, 0, 7*t.weeks),
			Advisory:    advisories[t.phase],
		})
	}
	return steps, costs
}
