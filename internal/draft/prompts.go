package draft

import (
	"fmt"
	"strings"
)

// DocumentPromptInput collects everything the document prompt interpolates.
type DocumentPromptInput struct {
	Menu          string
	Profile       Profile
	Court         string
	Plaintiff     string
	Defendant     string
	AmountDisplay string
	Facts         string
	Evidence      string
	ScenarioLabel string
}

// BuildDocumentPrompt renders the main drafting prompt: role framing, the
// structured case fields, then the formatting instructions.
func BuildDocumentPrompt(in DocumentPromptInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "역할: 당신은 %s 전문 변호사입니다.\n", in.Menu)
	fmt.Fprintf(&b, "문서: %s\n", in.Profile.DocType)
	fmt.Fprintf(&b, "관할법원: %s\n", in.Court)
	fmt.Fprintf(&b, "%s: %s\n", in.Profile.Role, in.Plaintiff)
	fmt.Fprintf(&b, "%s: %s\n", in.Profile.Opponent, in.Defendant)
	fmt.Fprintf(&b, "금액: %s\n", in.AmountDisplay)
	fmt.Fprintf(&b, "청구원인: %s\n", in.Facts)
	fmt.Fprintf(&b, "입증방법: %s\n", in.Evidence)
	fmt.Fprintf(&b, "사건유형: %s\n\n", in.ScenarioLabel)
	b.WriteString("요청사항: 대한민국의 법률 서식에 맞춰 엄격하고 전문적인 문서를 작성하세요. 청구취지와 청구원인을 명확히 구분하세요.")
	return b.String()
}

// BuildDemandPrompt renders the formal demand letter (내용증명) prompt.
func BuildDemandPrompt(sender, recipient, facts string) string {
	return fmt.Sprintf("%s가 %s에게 보내는 강력한 내용증명을 작성하라. 사유: %s. 법적 조치 예고 포함.", sender, recipient, facts)
}

// BuildCounselPrompt renders the free-consultation chat prompt.
func BuildCounselPrompt(question string) string {
	return fmt.Sprintf("너는 한국 법률 전문가야. 질문: %s. 판례와 법령에 근거하여 상세히 답변하고, 필요하다면 내용증명이나 소송 절차도 안내해줘.", question)
}

// BuildPrecedentPrompt renders the precedent-trend prompt. statuteLines is
// optional context from the statute-search collaborator.
func BuildPrecedentPrompt(keyword string, statuteLines []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "키워드 '%s'와 관련된 주요 대법원 판례 경향을 분석하고, 해당 소송에서 승소하기 위한 핵심 법리를 요약해줘.", keyword)
	if len(statuteLines) > 0 {
		b.WriteString("\n\n참고 법령:\n")
		for _, line := range statuteLines {
			fmt.Fprintf(&b, "- %s\n", line)
		}
	}
	return b.String()
}

// BuildEvidencePrompt renders the evidence-strength analysis prompt.
func BuildEvidencePrompt(listing string) string {
	return fmt.Sprintf("다음 증거들의 민사소송상 증거능력을 별점(5점만점)으로 평가하고, 직접증거와 정황증거로 분류해줘: %s", listing)
}

// ImageAnalysisPrompt asks the vision model to assess an evidence image.
const ImageAnalysisPrompt = "이 이미지의 핵심 법적 내용을 요약하고, 소송에서 유리한 증거가 될지 분석해줘."

// NonMonetaryAmount labels the amount field when the claim is not about money.
const NonMonetaryAmount = "비재산권"
