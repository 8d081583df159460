package extraction

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/akolanti/PdfSummaryAPI/internal/config"
	"github.com/akolanti/PdfSummaryAPI/internal/domain/commonModels"
	"github.com/akolanti/PdfSummaryAPI/internal/domain/pipelineModel"
	"github.com/akolanti/PdfSummaryAPI/pkg/logger_i"
	"github.com/dslipak/pdf"
)

// LayoutTextExtractor rebuilds reading order from glyph positions: rows top to bottom, glyphs left to right.
type LayoutTextExtractor struct {
	logger *logger_i.Logger
}

func NewLayoutTextExtractor() *LayoutTextExtractor {
	return &LayoutTextExtractor{logger: logger_i.NewLogger("extract_layout_text")}
}

func (e *LayoutTextExtractor) Strategy() pipelineModel.Strategy {
	return pipelineModel.StrategyLayoutText
}

func (e *LayoutTextExtractor) Extensions() []string { return []string{config.PdfExtension} }

func (e *LayoutTextExtractor) Extract(ctx context.Context, path string) (commonModels.ExtractedText, error) {
	log := e.logger.FromContext(ctx)
	if err := ValidatePath(path, e.Extensions()...); err != nil {
		return commonModels.ExtractedText{}, err
	}

	file, reader, err := openPDF(path)
	if err != nil {
		log.Error("failed opening of pdf file", "path", path, "error", err)
		return commonModels.ExtractedText{}, corruptDocument(path, err)
	}
	defer file.Close()

	numPages := reader.NumPage()
	if numPages == 0 {
		return commonModels.ExtractedText{}, corruptDocument(path, nil)
	}

	var text strings.Builder
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if !hasTextLayer(page) {
			continue
		}

		content, err := protectExtract(ctx, func() (pdf.Content, error) {
			return page.Content(), nil
		})
		if err != nil {
			if ctx.Err() != nil {
				return commonModels.ExtractedText{}, ctx.Err()
			}
			log.Warn("Error reading page layout", "page", i, "error", err)
			continue
		}

		pageText := layoutRows(content.Text)
		if pageText == "" {
			continue
		}
		text.WriteString(pageText)
		text.WriteString("\n")
	}

	extracted := commonModels.NewExtractedText(text.String())
	if extracted.IsEmpty {
		return commonModels.ExtractedText{}, emptyExtraction(path)
	}
	return extracted, nil
}

// layoutRows groups glyphs whose baselines sit within LayoutRowTolerance into one line.
// PDF user space grows upwards, so higher Y comes first.
func layoutRows(glyphs []pdf.Text) string {
	if len(glyphs) == 0 {
		return ""
	}
	sorted := make([]pdf.Text, len(glyphs))
	copy(sorted, glyphs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var rows [][]pdf.Text
	var current []pdf.Text
	rowY := sorted[0].Y
	for _, g := range sorted {
		if math.Abs(g.Y-rowY) > config.LayoutRowTolerance && len(current) > 0 {
			rows = append(rows, current)
			current = nil
			rowY = g.Y
		}
		current = append(current, g)
	}
	rows = append(rows, current)

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		sort.SliceStable(row, func(i, j int) bool { return row[i].X < row[j].X })
		if line := strings.TrimRight(joinRow(row), " "); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func joinRow(row []pdf.Text) string {
	var b strings.Builder
	for i, g := range row {
		if i > 0 {
			prev := row[i-1]
			gap := g.X - (prev.X + prev.W)
			if gap > config.LayoutWordGap && !strings.HasSuffix(prev.S, " ") && !strings.HasPrefix(g.S, " ") {
				b.WriteByte(' ')
			}
		}
		b.WriteString(g.S)
	}
	return b.String()
}
