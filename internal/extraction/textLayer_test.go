package extraction

import (
	"context"
	"strings"
	"testing"

	"github.com/akolanti/PdfSummaryAPI/internal/domain/commonModels"
	"github.com/dslipak/pdf"
)

func TestTextLayer_Simple(t *testing.T) {
	path := writeTempFile(t, "text.pdf", buildTextPDF("Hello World from PDF extraction test"))

	got, err := NewTextLayerExtractor().Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if !strings.Contains(got.Content, "Hello World") {
		t.Errorf("content got %q, want it to contain %q", got.Content, "Hello World")
	}
	if got.IsEmpty {
		t.Error("IsEmpty should be false")
	}
}

func TestTextLayer_PageWithoutText(t *testing.T) {
	path := writeTempFile(t, "scan.pdf", buildNoContentsPDF())

	got, err := NewTextLayerExtractor().Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("a page without text layer should not fail, got %v", err)
	}
	if !got.IsEmpty || got.Content != "" {
		t.Errorf("expected empty text, got %q", got.Content)
	}
}

func TestTextLayer_Corrupt(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"zero pages", buildZeroPagePDF()},
		{"not a pdf", []byte("this is plain text with a pdf extension")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempFile(t, "doc.pdf", tt.data)
			_, err := NewTextLayerExtractor().Extract(context.Background(), path)
			if got := commonModels.KindOf(err); got != commonModels.CorruptDocument {
				t.Errorf("kind got %v, want %v (err=%v)", got, commonModels.CorruptDocument, err)
			}
		})
	}
}

func TestLayoutText_Simple(t *testing.T) {
	path := writeTempFile(t, "text.pdf", buildTextPDF("Hello"))

	got, err := NewLayoutTextExtractor().Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if !strings.Contains(got.Content, "Hello") {
		t.Errorf("content got %q", got.Content)
	}
}

func TestLayoutText_Failures(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want commonModels.ErrorKind
	}{
		{"zero pages", buildZeroPagePDF(), commonModels.CorruptDocument},
		{"no text layer", buildNoContentsPDF(), commonModels.EmptyExtraction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempFile(t, "doc.pdf", tt.data)
			_, err := NewLayoutTextExtractor().Extract(context.Background(), path)
			if got := commonModels.KindOf(err); got != tt.want {
				t.Errorf("kind got %v, want %v (err=%v)", got, tt.want, err)
			}
		})
	}
}

func TestLayoutRows(t *testing.T) {
	glyph := func(s string, x, y float64) pdf.Text {
		return pdf.Text{S: s, X: x, Y: y, W: 5}
	}

	tests := []struct {
		name   string
		glyphs []pdf.Text
		want   string
	}{
		{"empty", nil, ""},
		{
			name: "out of order glyphs on one row",
			glyphs: []pdf.Text{
				glyph("b", 105, 700), glyph("a", 100, 700), glyph("c", 110, 700),
			},
			want: "abc",
		},
		{
			name: "gap becomes a space",
			glyphs: []pdf.Text{
				glyph("a", 100, 700), glyph("b", 120, 700),
			},
			want: "a b",
		},
		{
			name: "rows top to bottom",
			glyphs: []pdf.Text{
				glyph("2", 100, 680), glyph("1", 100, 700), glyph("3", 100, 660),
			},
			want: "1\n2\n3",
		},
		{
			name: "baseline jitter stays on the row",
			glyphs: []pdf.Text{
				glyph("a", 100, 700), glyph("b", 105, 699.2),
			},
			want: "ab",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := layoutRows(tt.glyphs); got != tt.want {
				t.Errorf("layoutRows() = %q; want %q", got, tt.want)
			}
		})
	}
}
