package draft

import "strings"

// Menus lists the service menu in its canonical order.
var Menus = []string{
	"무료법률상담 (AI 챗봇)",
	"전자소송 (지급명령/채권자)",
	"전자소송 (지급명령/채무자)",
	"민사소송 (대여금)",
	"민사소송 (임차보증금)",
	"민사소송 (손해배상)",
	"민사소송 (기 타)",
	"민사집행 (압류/경매)",
	"형사소송 (고소/고발)",
	"행정소송",
	"가사소송 (이혼,상속)",
	"개인파산/개인회생",
}

// Profile names the document type and party-role labels for a service menu.
type Profile struct {
	DocType  string
	Role     string
	Opponent string
}

// ProfileFor maps a service menu to its document profile. Checks run in the
// original priority order; unmatched menus get the generic 법률 서면 profile.
func ProfileFor(menu string) Profile {
	switch {
	case strings.Contains(menu, "지급명령"):
		return Profile{"지급명령신청서", "채권자", "채무자"}
	case strings.Contains(menu, "민사소송"):
		return Profile{"소장", "원고", "피고"}
	case strings.Contains(menu, "형사"):
		return Profile{"고소장", "고소인", "피고소인"}
	case strings.Contains(menu, "행정"):
		return Profile{"소장", "원고", "피고(처분청)"}
	case strings.Contains(menu, "가사"):
		return Profile{"소장", "원고", "피고"}
	case strings.Contains(menu, "파산"), strings.Contains(menu, "회생"):
		return Profile{"개시신청서", "신청인", "채권자목록"}
	default:
		return Profile{"법률 서면", "신청인", "피신청인"}
	}
}

var moneyClaimTriggers = []string{"민사", "지급", "대여", "손해", "보증금"}

// IsMoneyClaim reports whether the menu concerns a monetary claim, which
// gates the amount field, cost breakdown and timeline.
func IsMoneyClaim(menu string) bool {
	for _, t := range moneyClaimTriggers {
		if strings.Contains(menu, t) {
			return true
		}
	}
	return false
}
