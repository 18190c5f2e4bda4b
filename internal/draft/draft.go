package draft

import (
	"context"
	"strconv"

	"github.com/lawmaster-kr/lawmaster/internal/casefile"
	"github.com/lawmaster-kr/lawmaster/internal/jurisdiction"
	"github.com/lawmaster-kr/lawmaster/internal/litigation"
	"github.com/lawmaster-kr/lawmaster/internal/scenario"
)

// Request carries the form fields for a document draft. Court may be left
// empty, in which case it is resolved from Address and Menu.
type Request struct {
	Menu      string
	Address   string
	Court     string
	Plaintiff string
	Defendant string
	Amount    string
	Facts     string
	Evidence  string
}

// Result is a completed draft together with the rule-layer figures the
// caller displays alongside it.
type Result struct {
	DocType       string                   `json:"doc_type"`
	Court         string                   `json:"court"`
	ScenarioLabel string                   `json:"scenario_label"`
	MoneyClaim    bool                     `json:"money_claim"`
	Costs         litigation.CostBreakdown `json:"costs"`
	Text          string                   `json:"text"`
	Model         string                   `json:"model"`
	Disclaimer    string                   `json:"disclaimer"`
}

// Drafter orchestrates the rule layer and the generative model. The rule
// layer itself never calls the model; the Drafter is the only bridge.
type Drafter struct {
	exec *Executor
}

func NewDrafter(caller Caller) *Drafter {
	return &Drafter{exec: NewExecutor(caller)}
}

// Document resolves court, scenario and costs for the request, builds the
// drafting prompt and returns the generated document.
func (d *Drafter) Document(ctx context.Context, req Request) (Result, error) {
	profile := ProfileFor(req.Menu)
	court := req.Court
	if court == "" {
		court = jurisdiction.Resolve(req.Address, req.Menu)
	}
	money := IsMoneyClaim(req.Menu)
	costs := litigation.ComputeCostsInput(req.Amount)
	label := scenario.Label(req.Facts)

	amountDisplay := NonMonetaryAmount
	if money {
		amountDisplay = strconv.FormatInt(costs.Principal, 10)
	}

	prompt := BuildDocumentPrompt(DocumentPromptInput{
		Menu:          req.Menu,
		Profile:       profile,
		Court:         court,
		Plaintiff:     req.Plaintiff,
		Defendant:     req.Defendant,
		AmountDisplay: amountDisplay,
		Facts:         req.Facts,
		Evidence:      casefile.FormatEvidence(req.Evidence),
		ScenarioLabel: label,
	})

	text, err := d.exec.Generate(ctx, "document", prompt, nil)
	if err != nil {
		return Result{}, err
	}
	return Result{
		DocType:       profile.DocType,
		Court:         court,
		ScenarioLabel: label,
		MoneyClaim:    money,
		Costs:         costs,
		Text:          text,
		Model:         d.exec.ModelName(),
		Disclaimer:    Disclaimer,
	}, nil
}

// DemandLetter drafts a pre-litigation formal demand (내용증명).
func (d *Drafter) DemandLetter(ctx context.Context, sender, recipient, facts string) (string, error) {
	return d.exec.Generate(ctx, "demand_letter", BuildDemandPrompt(sender, recipient, facts), nil)
}

// Counsel answers a free-form legal question.
func (d *Drafter) Counsel(ctx context.Context, question string) (string, error) {
	return d.exec.Generate(ctx, "counsel", BuildCounselPrompt(question), nil)
}

// PrecedentAnalysis summarizes case-law trends for a keyword, optionally
// grounded on statute hits supplied by the caller.
func (d *Drafter) PrecedentAnalysis(ctx context.Context, keyword string, statuteLines []string) (string, error) {
	return d.exec.Generate(ctx, "precedent", BuildPrecedentPrompt(keyword, statuteLines), nil)
}

// AnalyzeEvidence grades a textual evidence list.
func (d *Drafter) AnalyzeEvidence(ctx context.Context, listing string) (string, error) {
	return d.exec.Generate(ctx, "evidence", BuildEvidencePrompt(listing), nil)
}

// AnalyzeImage runs the vision analysis over an uploaded evidence image.
func (d *Drafter) AnalyzeImage(ctx context.Context, image []byte) (string, error) {
	return d.exec.Generate(ctx, "image_evidence", ImageAnalysisPrompt, image)
}
