package prompt

import (
	"strings"
	"testing"

	"github.com/akolanti/PdfSummaryAPI/internal/domain/commonModels"
)

func TestBuild(t *testing.T) {
	ps := commonModels.PromptSpec{
		Persona:      SummaryPersona,
		Instruction:  "list the key dates.",
		DocumentText: "Contract signed on 2024-01-10.",
	}

	got := Build(ps)
	want := "From the text content extracted from the PDF, list the key dates.\n\nExtracted text:\nContract signed on 2024-01-10."
	if got != want {
		t.Errorf("Build() = %q; want %q", got, want)
	}
	if Build(ps) != got {
		t.Error("Build should be deterministic")
	}
	if strings.Contains(got, SummaryPersona) {
		t.Error("persona belongs in the system message, not the prompt")
	}
}

func TestBuild_EmptyText(t *testing.T) {
	got := Build(commonModels.PromptSpec{Instruction: SummaryInstruction})
	if !strings.HasSuffix(got, "Extracted text:\n") {
		t.Errorf("empty text should pass through, got %q", got)
	}
}

func TestRequest(t *testing.T) {
	req := Request("gpt-4o", commonModels.PromptSpec{Persona: "p", Instruction: "i", DocumentText: "d"})
	if req.ModelID != "gpt-4o" || req.SystemMessage != "p" {
		t.Errorf("unexpected request %+v", req)
	}
	if !strings.HasSuffix(req.UserMessage, "Extracted text:\nd") {
		t.Errorf("user message got %q", req.UserMessage)
	}
}

func TestManipulationInstruction(t *testing.T) {
	if got := ManipulationInstruction(""); !strings.Contains(got, DefaultManipulationInstruction) {
		t.Errorf("blank task should fall back to the default, got %q", got)
	}
	if got := ManipulationInstruction("translate to English"); !strings.HasSuffix(got, "translate to English") {
		t.Errorf("got %q", got)
	}
}
