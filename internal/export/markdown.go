// Package export renders completed drafts as filing packets, either as
// markdown or as a printable PDF.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/lawmaster-kr/lawmaster/internal/draft"
	"github.com/lawmaster-kr/lawmaster/internal/litigation"
)

// Packet bundles everything that goes into a filing document.
type Packet struct {
	Result    draft.Result
	Timeline  []litigation.TimelineStep
	FilingDay time.Time
}

// BuildPacket projects the litigation timeline for the draft and returns the
// assembled packet.
func BuildPacket(res draft.Result, filingDay time.Time) Packet {
	var steps []litigation.TimelineStep
	if res.MoneyClaim {
		steps, _ = litigation.ProjectTimeline(res.Costs.Principal, filingDay)
	}
	return Packet{Result: res, Timeline: steps, FilingDay: filingDay}
}

// Markdown renders the packet as a single markdown document.
func Markdown(p Packet) string {
	var b strings.Builder
	res := p.Result

	fmt.Fprintf(&b, "# %s\n\n", res.DocType)
	fmt.Fprintf(&b, "- 관할법원: %s\n", res.Court)
	fmt.Fprintf(&b, "- 사건 유형: %s\n", res.ScenarioLabel)
	fmt.Fprintf(&b, "- 작성일: %s\n\n", p.FilingDay.Format("2006-01-02"))

	fmt.Fprintf(&b, "## 서면 본문\n\n")
	fmt.Fprintf(&b, "%s\n\n", strings.TrimSpace(res.Text))

	if res.MoneyClaim {
		fmt.Fprintf(&b, "## 예상 소송 비용\n\n")
		fmt.Fprintf(&b, "| 항목 | 금액 |\n|---|---|\n")
		fmt.Fprintf(&b, "| 청구 금액 | %s원 |\n", withCommas(res.Costs.Principal))
		fmt.Fprintf(&b, "| 인지액 | %s원 |\n", withCommas(res.Costs.StampDuty))
		fmt.Fprintf(&b, "| 송달료 | %s원 |\n\n", withCommas(res.Costs.ServiceFee))
	}

	if len(p.Timeline) > 0 {
		fmt.Fprintf(&b, "## 예상 진행 일정\n\n")
		fmt.Fprintf(&b, "| 주차 | 단계 | 예정일 | 내용 | 조언 |\n|---|---|---|---|---|\n")
		for _, step := range p.Timeline {
			fmt.Fprintf(&b, "| %d주 | %s | %s | %s | %s |\n",
				step.WeekOffset, step.Event, step.Date.Format("2006-01-02"), step.Description, step.Advisory.Message)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "## 전자소송 제출 안내\n\n")
	fmt.Fprintf(&b, "1. 대한민국 법원 전자소송 사이트(https://ecfs.scourt.go.kr)에 접속합니다.\n")
	fmt.Fprintf(&b, "2. 공동인증서 또는 간편인증으로 로그인합니다.\n")
	fmt.Fprintf(&b, "3. [서류 제출] 메뉴에서 사건 유형을 선택하고 본 서면을 업로드합니다.\n")
	fmt.Fprintf(&b, "4. 인지액과 송달료를 전자 납부합니다.\n\n")

	fmt.Fprintf(&b, "---\n\n%s\n", draft.Disclaimer)
	return b.String()
}

func withCommas(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}
