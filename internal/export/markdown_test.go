package export

import (
	"strings"
	"testing"
	"time"

	"github.com/lawmaster-kr/lawmaster/internal/draft"
	"github.com/lawmaster-kr/lawmaster/internal/litigation"
)

func moneyResult() draft.Result {
	return draft.Result{
		DocType:       "소장",
		Court:         "서울중앙지방법원",
		ScenarioLabel: "💰 대여금 청구",
		MoneyClaim:    true,
		Costs:         litigation.CostBreakdown{Principal: 30_000_000, StampDuty: 140_000, ServiceFee: 52_000},
		Text:          "소장 본문입니다.",
		Model:         "fake-model",
		Disclaimer:    draft.Disclaimer,
	}
}

func TestBuildPacketProjectsTimelineForMoneyClaims(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	p := BuildPacket(moneyResult(), day)
	if len(p.Timeline) != 5 {
		t.Fatalf("expected 5 timeline steps, got %d", len(p.Timeline))
	}
	if p.Timeline[0].WeekOffset != 0 || p.Timeline[4].WeekOffset != 28 {
		t.Fatalf("unexpected offsets: %+v", p.Timeline)
	}

	nonMoney := moneyResult()
	nonMoney.MoneyClaim = false
	if got := BuildPacket(nonMoney, day); len(got.Timeline) != 0 {
		t.Fatalf("non-monetary packet must have no timeline, got %d steps", len(got.Timeline))
	}
}

func TestMarkdownContainsAllSections(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	doc := Markdown(BuildPacket(moneyResult(), day))

	for _, want := range []string{
		"# 소장",
		"서울중앙지방법원",
		"소장 본문입니다.",
		"| 인지액 | 140,000원 |",
		"| 송달료 | 52,000원 |",
		"| 청구 금액 | 30,000,000원 |",
		"예상 진행 일정",
		"소장 접수",
		"판결 선고",
		"시작이 반입니다",
		"법원은 증거로 말합니다",
		"수고하셨습니다",
		"2026-03-02",
		"ecfs.scourt.go.kr",
		draft.Disclaimer,
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestMarkdownSkipsCostsForNonMonetaryDrafts(t *testing.T) {
	res := moneyResult()
	res.MoneyClaim = false
	res.DocType = "고소장"
	doc := Markdown(BuildPacket(res, time.Now()))
	if strings.Contains(doc, "예상 소송 비용") {
		t.Error("non-monetary draft must not render the cost table")
	}
	if strings.Contains(doc, "예상 진행 일정") {
		t.Error("non-monetary draft must not render the timeline")
	}
	if !strings.Contains(doc, "전자소송 제출 안내") {
		t.Error("submission guide must always be present")
	}
}

func TestWithCommas(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-52000, "-52,000"},
	}
	for _, tt := range tests {
		if got := withCommas(tt.in); got != tt.want {
			t.Errorf("withCommas(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildHTMLRendersTables(t *testing.T) {
	html, err := buildHTML("| a | b |\n|---|---|\n| 1 | 2 |\n")
	if err != nil {
		t.Fatalf("buildHTML: %v", err)
	}
	if !strings.Contains(html, "<table>") {
		t.Error("GFM tables must render to <table>")
	}
	if !strings.Contains(html, "charset='utf-8'") {
		t.Error("document must declare utf-8")
	}
}
