package extraction

import (
	"context"
	"strings"
	"testing"

	"github.com/akolanti/PdfSummaryAPI/internal/domain/commonModels"
)

func TestTextFromContentStream(t *testing.T) {
	tests := []struct {
		name   string
		stream string
		want   string
	}{
		{"empty", "", ""},
		{"simple Tj", "BT /F1 12 Tf 72 720 Td (Hello World) Tj ET", "Hello World"},
		{"two lines via Td", "BT 72 720 Td (first) Tj 0 -14 Td (second) Tj ET", "first\nsecond"},
		{"T* breaks the line", "BT (one) Tj T* (two) Tj ET", "one\ntwo"},
		{"quote operator", "BT (one) Tj (two) ' ET", "one\ntwo"},
		{"TJ kerning", "BT [(Hel) 20 (lo) -300 (World)] TJ ET", "Hello World"},
		{"escaped parens", `BT (f\(x\) = 1) Tj ET`, "f(x) = 1"},
		{"nested parens", "BT (a (b) c) Tj ET", "a (b) c"},
		{"octal escape", `BT (caf\351) Tj ET`, "café"},
		{"hex string", "BT <48656C6C6F> Tj ET", "Hello"},
		{"dictionary operands ignored", "/P << /MCID 0 >> BDC BT (tagged) Tj ET EMC", "tagged"},
		{"comments skipped", "% a comment (not text) Tj\nBT (real) Tj ET", "real"},
		{"graphics only", "q 100 0 0 100 72 692 cm /Im1 Do Q", ""},
		{"inline image skipped", "BI /W 1 /H 1 ID \x00\xff EI BT (after) Tj ET", "after"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := textFromContentStream([]byte(tt.stream)); got != tt.want {
				t.Errorf("textFromContentStream() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestCleanExtractedText(t *testing.T) {
	got := cleanExtractedText("  a   b \n\n\n c\x07 \n")
	if got != "a b\nc" {
		t.Errorf("cleanExtractedText() = %q", got)
	}
}

func TestPdfcpu_ZeroPages(t *testing.T) {
	path := writeTempFile(t, "empty.pdf", buildZeroPagePDF())

	_, err := NewPdfcpuExtractor().Extract(context.Background(), path)
	if got := commonModels.KindOf(err); got != commonModels.CorruptDocument {
		t.Errorf("kind got %v, want %v (err=%v)", got, commonModels.CorruptDocument, err)
	}
}

func TestPdfcpu_NotAPDF(t *testing.T) {
	path := writeTempFile(t, "junk.pdf", []byte("plain text"))

	_, err := NewPdfcpuExtractor().Extract(context.Background(), path)
	if got := commonModels.KindOf(err); got != commonModels.CorruptDocument {
		t.Errorf("kind got %v, want %v (err=%v)", got, commonModels.CorruptDocument, err)
	}
}

func TestPdfcpu_Extract(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		want     string
		wantKind commonModels.ErrorKind
	}{
		{"text page", buildTextPDF("Hello World"), "Hello World", ""},
		{"no text layer", buildNoContentsPDF(), "", commonModels.EmptyExtraction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempFile(t, "doc.pdf", tt.data)

			got, err := NewPdfcpuExtractor().Extract(context.Background(), path)
			if tt.wantKind != "" {
				if kind := commonModels.KindOf(err); kind != tt.wantKind {
					t.Errorf("kind got %v, want %v (err=%v)", kind, tt.wantKind, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("extract: %v", err)
			}
			if !strings.Contains(got.Content, tt.want) || got.IsEmpty {
				t.Errorf("content got %q, want it to contain %q", got.Content, tt.want)
			}
		})
	}
}

func TestExtract_PageWithoutTextAmongOthers(t *testing.T) {
	path := writeTempFile(t, "mixed.pdf", buildMixedPDF("Second page"))

	for _, e := range []Extractor{NewTextLayerExtractor(), NewLayoutTextExtractor(), NewPdfcpuExtractor()} {
		t.Run(string(e.Strategy()), func(t *testing.T) {
			got, err := e.Extract(context.Background(), path)
			if err != nil {
				t.Fatalf("extract: %v", err)
			}
			if strings.TrimSpace(got.Content) != "Second page" || got.IsEmpty {
				t.Errorf("content got %q, want the text of the second page", got.Content)
			}
		})
	}
}
