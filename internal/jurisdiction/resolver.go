package jurisdiction

import "strings"

// Category narrows a case to a specialized court system.
type Category string

const (
	CategoryNone           Category = ""
	CategoryFamily         Category = "가사"
	CategoryInsolvency     Category = "회생"
	CategoryAdministrative Category = "행정"
)

var (
	familyTriggers         = []string{"가사", "이혼", "상속"}
	insolvencyTriggers     = []string{"회생", "파산"}
	administrativeTriggers = []string{"행정"}
)

// specialCourts maps a category to a region-prefix override table. The key is
// the first two characters of the geographically matched court; districts
// without a specialized court keep the base match.
var specialCourts = map[Category]map[string]string{
	CategoryFamily: {
		"서울": "서울가정법원", "인천": "인천가정법원", "수원": "수원가정법원", "대전": "대전가정법원",
		"대구": "대구가정법원", "부산": "부산가정법원", "울산": "울산가정법원", "광주": "광주가정법원",
	},
	CategoryInsolvency: {
		"서울": "서울회생법원", "수원": "수원회생법원", "부산": "부산회생법원",
	},
	CategoryAdministrative: {
		"서울": "서울행정법원",
	},
}

// CategoryFor detects the specialized-court category from a free-text case
// category. Triggers are checked in fixed priority: family, then insolvency,
// then administrative; the first matching set wins even when several match.
func CategoryFor(category string) Category {
	if containsAny(category, familyTriggers) {
		return CategoryFamily
	}
	if containsAny(category, insolvencyTriggers) {
		return CategoryInsolvency
	}
	if containsAny(category, administrativeTriggers) {
		return CategoryAdministrative
	}
	return CategoryNone
}

// Resolve returns the court of jurisdiction for a free-text address and case
// category. It is total: unrecognized addresses fall back to DefaultCourt and
// unrecognized categories leave the geographic match untouched.
func Resolve(address, category string) string {
	court := DefaultCourt
	if address != "" {
		for _, m := range byLength {
			if strings.Contains(address, m.Keyword) {
				court = m.Court
				break
			}
		}
	}

	cat := CategoryFor(category)
	if cat == CategoryNone {
		return court
	}
	prefix := regionPrefix(court)
	if override, ok := specialCourts[cat][prefix]; ok {
		return override
	}
	return court
}

// regionPrefix is the first two characters of a court name, e.g. "서울" for
// 서울동부지방법원.
func regionPrefix(court string) string {
	runes := []rune(court)
	if len(runes) < 2 {
		return court
	}
	return string(runes[:2])
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
