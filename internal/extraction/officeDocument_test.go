package extraction

import (
	"context"
	"strings"
	"testing"

	"github.com/akolanti/PdfSummaryAPI/internal/domain/commonModels"
)

func TestOfficeDocument_Text(t *testing.T) {
	path := writeTempFile(t, "notes.txt", []byte("meeting notes\nsecond line"))

	got, err := NewOfficeDocumentExtractor().Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if !strings.Contains(got.Content, "meeting notes") {
		t.Errorf("content got %q", got.Content)
	}
}

func TestOfficeDocument_Blank(t *testing.T) {
	path := writeTempFile(t, "blank.txt", []byte("   \n\t"))

	_, err := NewOfficeDocumentExtractor().Extract(context.Background(), path)
	if got := commonModels.KindOf(err); got != commonModels.EmptyExtraction {
		t.Errorf("kind got %v, want %v (err=%v)", got, commonModels.EmptyExtraction, err)
	}
}

func TestOfficeDocument_RejectsPDF(t *testing.T) {
	path := writeTempFile(t, "doc.pdf", buildTextPDF("x"))

	_, err := NewOfficeDocumentExtractor().Extract(context.Background(), path)
	if got := commonModels.KindOf(err); got != commonModels.InvalidInput {
		t.Errorf("kind got %v, want %v", got, commonModels.InvalidInput)
	}
}
