package docstore

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/lawmaster-kr/lawmaster/internal/casefile"
	"github.com/lawmaster-kr/lawmaster/internal/draft"
	"github.com/lawmaster-kr/lawmaster/internal/litigation"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "lawmaster.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndGetCase(t *testing.T) {
	s := openTestStore(t)

	rec := casefile.Record{
		Plaintiff: "홍길동",
		Defendant: "김철수",
		Amount:    "30,000,000",
		Facts:     "차용증을 쓰고 빌려주었습니다",
		Evidence:  "차용증\n이체내역서",
		Court:     "서울중앙지방법원",
	}
	id, err := s.SaveCase("", rec)
	if err != nil {
		t.Fatalf("SaveCase: %v", err)
	}
	if id == "" {
		t.Fatal("expected generated case id")
	}

	got, err := s.GetCase(id)
	if err != nil {
		t.Fatalf("GetCase: %v", err)
	}
	if got.Record != rec {
		t.Fatalf("record mismatch: %+v", got.Record)
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Fatal("timestamps not set")
	}
}

func TestSaveCaseUpdatesExistingRow(t *testing.T) {
	s := openTestStore(t)

	id, err := s.SaveCase("", casefile.Record{Plaintiff: "홍길동"})
	if err != nil {
		t.Fatalf("SaveCase: %v", err)
	}
	if _, err := s.SaveCase(id, casefile.Record{Plaintiff: "홍길동", Court: "부산지방법원"}); err != nil {
		t.Fatalf("SaveCase update: %v", err)
	}

	cases, err := s.ListCases()
	if err != nil {
		t.Fatalf("ListCases: %v", err)
	}
	if len(cases) != 1 {
		t.Fatalf("expected 1 case after update, got %d", len(cases))
	}
	if cases[0].Record.Court != "부산지방법원" {
		t.Fatalf("update not applied: %+v", cases[0].Record)
	}
}

func TestGetCaseNotFound(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.GetCase("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSaveAndListDrafts(t *testing.T) {
	s := openTestStore(t)

	caseID, err := s.SaveCase("", casefile.Record{Plaintiff: "홍길동"})
	if err != nil {
		t.Fatalf("SaveCase: %v", err)
	}

	res := draft.Result{
		DocType:       "소장",
		Court:         "서울중앙지방법원",
		ScenarioLabel: "💰 대여금 청구",
		Costs:         litigation.CostBreakdown{Principal: 30_000_000, StampDuty: 140_000, ServiceFee: 52_000},
		Text:          "소장 초안",
		Model:         "fake-model",
	}
	draftID, err := s.SaveDraft(caseID, res)
	if err != nil {
		t.Fatalf("SaveDraft: %v", err)
	}

	got, err := s.GetDraft(draftID)
	if err != nil {
		t.Fatalf("GetDraft: %v", err)
	}
	if got.DocType != "소장" || got.StampDuty != 140_000 || got.Body != "소장 초안" {
		t.Fatalf("draft mismatch: %+v", got)
	}

	drafts, err := s.ListDrafts(caseID)
	if err != nil {
		t.Fatalf("ListDrafts: %v", err)
	}
	if len(drafts) != 1 || drafts[0].DraftID != draftID {
		t.Fatalf("unexpected listing: %+v", drafts)
	}

	other, err := s.ListDrafts("other-case")
	if err != nil {
		t.Fatalf("ListDrafts other: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("expected no drafts for other case, got %d", len(other))
	}
}

func TestGetDraftNotFound(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.GetDraft("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
