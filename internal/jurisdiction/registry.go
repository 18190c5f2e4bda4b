// Package jurisdiction maps Korean addresses and case categories to the
// competent court of first instance.
package jurisdiction

import (
	"sort"
	"unicode/utf8"
)

// DefaultCourt is the fallback venue when no geographic keyword matches.
const DefaultCourt = "서울중앙지방법원"

// courtList holds every selectable court, in the display order used by
// filing forms.
var courtList = []string{
	"서울중앙지방법원", "서울동부지방법원", "서울남부지방법원", "서울북부지방법원", "서울서부지방법원",
	"서울가정법원", "서울행정법원", "서울회생법원",
	"의정부지방법원", "의정부지방법원 고양지원", "의정부지방법원 남양주지원",
	"인천지방법원", "인천지방법원 부천지원", "인천가정법원",
	"수원지방법원", "수원지방법원 성남지원", "수원지방법원 여주지원", "수원지방법원 평택지원", "수원지방법원 안산지원", "수원지방법원 안양지원",
	"수원가정법원", "수원회생법원",
	"춘천지방법원", "춘천지방법원 강릉지원", "춘천지방법원 원주지원", "춘천지방법원 속초지원", "춘천지방법원 영월지원",
	"대전지방법원", "대전지방법원 천안지원", "대전지방법원 서산지원", "대전지방법원 홍성지원", "대전지방법원 논산지원", "대전지방법원 공주지원",
	"대전가정법원",
	"청주지방법원", "청주지방법원 충주지원", "청주지방법원 제천지원", "청주지방법원 영동지원",
	"대구지방법원", "대구지방법원 서부지원", "대구지방법원 포항지원", "대구지방법원 김천지원", "대구지방법원 안동지원", "대구지방법원 경주지원", "대구지방법원 상주지원", "대구지방법원 의성지원", "대구지방법원 영덕지원",
	"대구가정법원",
	"부산지방법원", "부산지방법원 동부지원", "부산지방법원 서부지원", "부산가정법원", "부산회생법원",
	"울산지방법원", "울산가정법원",
	"창원지방법원", "창원지방법원 마산지원", "창원지방법원 진주지원", "창원지방법원 통영지원", "창원지방법원 밀양지원", "창원지방법원 거창지원",
	"광주지방법원", "광주지방법원 순천지원", "광주지방법원 목포지원", "광주지방법원 장흥지원", "광주지방법원 해남지원", "광주가정법원",
	"전주지방법원", "전주지방법원 군산지원", "전주지방법원 정읍지원", "전주지방법원 남원지원",
	"제주지방법원",
}

type mapping struct {
	Keyword string
	Court   string
}

// geoTable maps district/city keywords to their governing court. Order is
// significant: equal-length keywords are scanned in table order.
var geoTable = []mapping{
	// capital area
	{"종로", "서울중앙지방법원"}, {"중구", "서울중앙지방법원"}, {"강남", "서울중앙지방법원"}, {"서초", "서울중앙지방법원"}, {"관악", "서울중앙지방법원"}, {"동작", "서울중앙지방법원"},
	{"성동", "서울동부지방법원"}, {"광진", "서울동부지방법원"}, {"강동", "서울동부지방법원"}, {"송파", "서울동부지방법원"},
	{"영등포", "서울남부지방법원"}, {"강서", "서울남부지방법원"}, {"양천", "서울남부지방법원"}, {"구로", "서울남부지방법원"}, {"금천", "서울남부지방법원"},
	{"동대문", "서울북부지방법원"}, {"중랑", "서울북부지방법원"}, {"성북", "서울북부지방법원"}, {"도봉", "서울북부지방법원"}, {"강북", "서울북부지방법원"}, {"노원", "서울북부지방법원"},
	{"은평", "서울서부지방법원"}, {"서대문", "서울서부지방법원"}, {"마포", "서울서부지방법원"}, {"용산", "서울서부지방법원"},
	{"고양", "의정부지방법원 고양지원"}, {"파주", "의정부지방법원 고양지원"}, {"남양주", "의정부지방법원 남양주지원"}, {"구리", "의정부지방법원 남양주지원"}, {"가평", "의정부지방법원 남양주지원"},
	{"부천", "인천지방법원 부천지원"}, {"김포", "인천지방법원 부천지원"}, {"인천", "인천지방법원"}, {"강화", "인천지방법원"}, {"옹진", "인천지방법원"},
	{"성남", "수원지방법원 성남지원"}, {"하남", "수원지방법원 성남지원"},
	{"안산", "수원지방법원 안산지원"}, {"광명", "수원지방법원 안산지원"}, {"시흥", "수원지방법원 안산지원"},
	{"안양", "수원지방법원 안양지원"}, {"과천", "수원지방법원 안양지원"}, {"의왕", "수원지방법원 안양지원"}, {"군포", "수원지방법원 안양지원"},
	{"평택", "수원지방법원 평택지원"}, {"안성", "수원지방법원 평택지원"}, {"여주", "수원지방법원 여주지원"}, {"이천", "수원지방법원 여주지원"}, {"양평", "수원지방법원 여주지원"},
	{"수원", "수원지방법원"}, {"용인", "수원지방법원"}, {"화성", "수원지방법원"}, {"오산", "수원지방법원"},
	// Gangwon
	{"춘천", "춘천지방법원"}, {"홍천", "춘천지방법원"}, {"양구", "춘천지방법원"}, {"인제", "춘천지방법원"}, {"화천", "춘천지방법원"},
	{"강릉", "춘천지방법원 강릉지원"}, {"동해", "춘천지방법원 강릉지원"}, {"삼척", "춘천지방법원 강릉지원"},
	{"원주", "춘천지방법원 원주지원"}, {"횡성", "춘천지방법원 원주지원"}, {"속초", "춘천지방법원 속초지원"}, {"양양", "춘천지방법원 속초지원"}, {"고성", "춘천지방법원 속초지원"},
	{"영월", "춘천지방법원 영월지원"}, {"태백", "춘천지방법원 영월지원"}, {"정선", "춘천지방법원 영월지원"},
	// Chungcheong
	{"천안", "대전지방법원 천안지원"}, {"아산", "대전지방법원 천안지원"}, {"서산", "대전지방법원 서산지원"}, {"당진", "대전지방법원 서산지원"}, {"태안", "대전지방법원 서산지원"},
	{"홍성", "대전지방법원 홍성지원"}, {"보령", "대전지방법원 홍성지원"}, {"예산", "대전지방법원 홍성지원"}, {"논산", "대전지방법원 논산지원"}, {"계룡", "대전지방법원 논산지원"}, {"부여", "대전지방법원 논산지원"},
	{"공주", "대전지방법원 공주지원"}, {"청양", "대전지방법원 공주지원"}, {"대전", "대전지방법원"}, {"세종", "대전지방법원"},
	{"청주", "청주지방법원"}, {"진천", "청주지방법원"}, {"보은", "청주지방법원"}, {"괴산", "청주지방법원"}, {"증평", "청주지방법원"},
	{"충주", "청주지방법원 충주지원"}, {"음성", "청주지방법원 충주지원"}, {"제천", "청주지방법원 제천지원"}, {"단양", "청주지방법원 제천지원"}, {"영동", "청주지방법원 영동지원"}, {"옥천", "청주지방법원 영동지원"},
	// Yeongnam
	{"달서", "대구지방법원 서부지원"}, {"달성", "대구지방법원 서부지원"}, {"대구 서구", "대구지방법원 서부지원"}, {"대구", "대구지방법원"}, {"수성", "대구지방법원"},
	{"포항", "대구지방법원 포항지원"}, {"울릉", "대구지방법원 포항지원"}, {"경주", "대구지방법원 경주지원"}, {"김천", "대구지방법원 김천지원"}, {"구미", "대구지방법원 김천지원"},
	{"안동", "대구지방법원 안동지원"}, {"영주", "대구지방법원 안동지원"}, {"상주", "대구지방법원 상주지원"}, {"문경", "대구지방법원 상주지원"}, {"의성", "대구지방법원 의성지원"}, {"영덕", "대구지방법원 영덕지원"}, {"울진", "대구지방법원 영덕지원"},
	{"해운대", "부산지방법원 동부지원"}, {"부산남구", "부산지방법원 동부지원"}, {"수영", "부산지방법원 동부지원"}, {"기장", "부산지방법원 동부지원"},
	{"사하", "부산지방법원 서부지원"}, {"사상", "부산지방법원 서부지원"}, {"부산강서", "부산지방법원 서부지원"}, {"북구", "부산지방법원 서부지원"}, {"부산", "부산지방법원"},
	{"울산", "울산지방법원"}, {"양산", "울산지방법원"}, {"창원", "창원지방법원"}, {"함안", "창원지방법원"}, {"의령", "창원지방법원"},
	{"마산", "창원지방법원 마산지원"}, {"진해", "창원지방법원 마산지원"}, {"진주", "창원지방법원 진주지원"}, {"사천", "창원지방법원 진주지원"}, {"통영", "창원지방법원 통영지원"}, {"거제", "창원지방법원 통영지원"},
	{"밀양", "창원지방법원 밀양지원"}, {"창녕", "창원지방법원 밀양지원"}, {"거창", "창원지방법원 거창지원"}, {"함양", "창원지방법원 거창지원"}, {"합천", "창원지방법원 거창지원"},
	// Honam
	{"순천", "광주지방법원 순천지원"}, {"여수", "광주지방법원 순천지원"}, {"광양", "광주지방법원 순천지원"}, {"보성", "광주지방법원 순천지원"}, {"고흥", "광주지방법원 순천지원"}, {"구례", "광주지방법원 순천지원"},
	{"목포", "광주지방법원 목포지원"}, {"무안", "광주지방법원 목포지원"}, {"신안", "광주지방법원 목포지원"}, {"해남", "광주지방법원 해남지원"}, {"완도", "광주지방법원 해남지원"}, {"진도", "광주지방법원 해남지원"},
	{"장흥", "광주지방법원 장흥지원"}, {"강진", "광주지방법원 장흥지원"}, {"광주", "광주지방법원"}, {"나주", "광주지방법원"}, {"화순", "광주지방법원"}, {"장성", "광주지방법원"}, {"곡성", "광주지방법원"},
	{"군산", "전주지방법원 군산지원"}, {"익산", "전주지방법원 군산지원"}, {"정읍", "전주지방법원 정읍지원"}, {"고창", "전주지방법원 정읍지원"}, {"부안", "전주지방법원 정읍지원"},
	{"남원", "전주지방법원 남원지원"}, {"순창", "전주지방법원 남원지원"}, {"장수", "전주지방법원 남원지원"}, {"무주", "전주지방법원 남원지원"}, {"전주", "전주지방법원"}, {"완주", "전주지방법원"}, {"김제", "전주지방법원"},
	// Jeju
	{"제주", "제주지방법원"}, {"서귀포", "제주지방법원"},
}

// byLength is geoTable stable-sorted by keyword rune count, longest first,
// so a province name never shadows a district name that contains it. Built
// once; never mutated afterwards.
var byLength = func() []mapping {
	sorted := make([]mapping, len(geoTable))
	copy(sorted, geoTable)
	sort.SliceStable(sorted, func(i, j int) bool {
		return utf8.RuneCountInString(sorted[i].Keyword) > utf8.RuneCountInString(sorted[j].Keyword)
	})
	return sorted
}()

// Courts returns the full court list in display order.
func Courts() []string {
	out := make([]string, len(courtList))
	copy(out, courtList)
	return out
}

// IsKnownCourt reports whether name is a registered court.
func IsKnownCourt(name string) bool {
	for _, c := range courtList {
		if c == name {
			return true
		}
	}
	return false
}
