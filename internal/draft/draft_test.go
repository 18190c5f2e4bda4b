package draft

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeCaller struct {
	responses []string
	errs      []error
	prompts   []string
	images    [][]byte
	i         int
}

func (f *fakeCaller) Generate(_ context.Context, prompt string, image []byte) (string, error) {
	idx := f.i
	f.i++
	f.prompts = append(f.prompts, prompt)
	f.images = append(f.images, image)
	if idx < len(f.errs) && f.errs[idx] != nil {
		return "", f.errs[idx]
	}
	if idx < len(f.responses) {
		return f.responses[idx], nil
	}
	return "", nil
}

func (f *fakeCaller) ModelName() string { return "fake-model" }

func TestDocumentPromptContainsRuleLayerOutputs(t *testing.T) {
	caller := &fakeCaller{responses: []string{"소장 초안"}}
	d := NewDrafter(caller)

	res, err := d.Document(context.Background(), Request{
		Menu:      "민사소송 (대여금)",
		Address:   "서울 서초구",
		Plaintiff: "홍길동",
		Defendant: "김철수",
		Amount:    "30,000,000",
		Facts:     "차용증을 쓰고 돈을 빌려주었습니다",
		Evidence:  "차용증\n이체내역서",
	})
	if err != nil {
		t.Fatalf("Document: %v", err)
	}

	if res.DocType != "소장" {
		t.Errorf("doc type = %q", res.DocType)
	}
	if res.Court != "서울중앙지방법원" {
		t.Errorf("court = %q", res.Court)
	}
	if res.ScenarioLabel != "💰 대여금 청구" {
		t.Errorf("scenario = %q", res.ScenarioLabel)
	}
	if res.Costs.StampDuty != 140_000 || res.Costs.ServiceFee != 52_000 {
		t.Errorf("costs = %+v", res.Costs)
	}
	if res.Text != "소장 초안" || res.Model != "fake-model" {
		t.Errorf("result = %+v", res)
	}
	if res.Disclaimer == "" {
		t.Error("disclaimer missing")
	}

	prompt := caller.prompts[0]
	for _, want := range []string{"서울중앙지방법원", "원고: 홍길동", "피고: 김철수", "금액: 30000000", "갑 제1호증 (차용증)", "갑 제2호증 (이체내역서)", "💰 대여금 청구", "청구취지"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestDocumentFixedCourtSkipsResolution(t *testing.T) {
	caller := &fakeCaller{responses: []string{"ok"}}
	d := NewDrafter(caller)
	res, err := d.Document(context.Background(), Request{
		Menu:  "민사소송 (기 타)",
		Court: "제주지방법원",
	})
	if err != nil {
		t.Fatalf("Document: %v", err)
	}
	if res.Court != "제주지방법원" {
		t.Fatalf("court = %q, want explicit choice kept", res.Court)
	}
}

func TestDocumentNonMonetaryMenu(t *testing.T) {
	caller := &fakeCaller{responses: []string{"고소장 초안"}}
	d := NewDrafter(caller)
	res, err := d.Document(context.Background(), Request{
		Menu:   "형사소송 (고소/고발)",
		Amount: "5000000",
	})
	if err != nil {
		t.Fatalf("Document: %v", err)
	}
	if res.MoneyClaim {
		t.Error("criminal complaint must not be a money claim")
	}
	if !strings.Contains(caller.prompts[0], NonMonetaryAmount) {
		t.Error("prompt must carry the non-monetary amount label")
	}
	if !strings.Contains(caller.prompts[0], "고소인") {
		t.Error("prompt must use the criminal-complaint role labels")
	}
}

func TestExecutorRetriesServerErrors(t *testing.T) {
	caller := &fakeCaller{
		errs:      []error{errors.New("status code: 500"), nil},
		responses: []string{"", "결과"},
	}
	exec := NewExecutor(caller)
	got, err := exec.Generate(context.Background(), "document", "prompt", nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "결과" {
		t.Fatalf("got %q", got)
	}
	if caller.i != 2 {
		t.Fatalf("expected 2 attempts, got %d", caller.i)
	}
}

func TestExecutorDoesNotRetryClientErrors(t *testing.T) {
	caller := &fakeCaller{errs: []error{errors.New("status code: 401")}}
	exec := NewExecutor(caller)
	if _, err := exec.Generate(context.Background(), "document", "prompt", nil); err == nil {
		t.Fatal("expected error")
	}
	if caller.i != 1 {
		t.Fatalf("client error retried: %d attempts", caller.i)
	}
}

func TestExecutorEmptyResponsesExhaustRetries(t *testing.T) {
	caller := &fakeCaller{responses: []string{"", "", ""}}
	exec := NewExecutor(caller)
	if _, err := exec.Generate(context.Background(), "document", "prompt", nil); err == nil {
		t.Fatal("expected empty-response failure")
	}
	if caller.i != 3 {
		t.Fatalf("expected 3 attempts, got %d", caller.i)
	}
}

func TestAnalyzeImagePassesBytes(t *testing.T) {
	caller := &fakeCaller{responses: []string{"분석"}}
	d := NewDrafter(caller)
	img := []byte("\x89PNG\r\n\x1a\nrest")
	if _, err := d.AnalyzeImage(context.Background(), img); err != nil {
		t.Fatalf("AnalyzeImage: %v", err)
	}
	if string(caller.images[0]) != string(img) {
		t.Fatal("image bytes not forwarded")
	}
}

func TestSniffMediaType(t *testing.T) {
	tests := []struct {
		in   []byte
		want string
	}{
		{[]byte("\x89PNG\r\n\x1a\nxxxx"), "image/png"},
		{[]byte{0xFF, 0xD8, 0xFF, 0xE0}, "image/jpeg"},
		{[]byte("GIF89a"), "image/gif"},
		{[]byte("RIFF....WEBPVP8 "), "image/webp"},
	}
	for _, tt := range tests {
		if got := sniffMediaType(tt.in); got != tt.want {
			t.Errorf("sniffMediaType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestClassifyTransportError(t *testing.T) {
	if classifyTransportError(context.DeadlineExceeded) != failureTimeout {
		t.Error("deadline must classify as timeout")
	}
	if classifyTransportError(errors.New("status code: 429")) != failureRateLimit {
		t.Error("429 must classify as rate limit")
	}
	if classifyTransportError(errors.New("status code: 503")) != failureServer {
		t.Error("503 must classify as server")
	}
	if classifyTransportError(errors.New("status code: 404")) != failureClient {
		t.Error("404 must classify as client")
	}
	if classifyTransportError(errors.New("connection reset")) != failureServer {
		t.Error("unknown transport errors default to server")
	}
}
