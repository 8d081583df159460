package extraction

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/akolanti/PdfSummaryAPI/internal/config"
	"github.com/akolanti/PdfSummaryAPI/internal/domain/commonModels"
	"github.com/akolanti/PdfSummaryAPI/internal/domain/pipelineModel"
	"github.com/akolanti/PdfSummaryAPI/pkg/logger_i"
	"github.com/dslipak/pdf"
)

// TextLayerExtractor concatenates the text layer of every page. Pages without one count as "".
type TextLayerExtractor struct {
	logger *logger_i.Logger
}

func NewTextLayerExtractor() *TextLayerExtractor {
	return &TextLayerExtractor{logger: logger_i.NewLogger("extract_text_layer")}
}

func (e *TextLayerExtractor) Strategy() pipelineModel.Strategy { return pipelineModel.StrategyTextLayer }

func (e *TextLayerExtractor) Extensions() []string { return []string{config.PdfExtension} }

func (e *TextLayerExtractor) Extract(ctx context.Context, path string) (commonModels.ExtractedText, error) {
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
	log.Debug("extractPDF", "number of pages", numPages)
	if numPages == 0 {
		return commonModels.ExtractedText{}, corruptDocument(path, nil)
	}

	var text strings.Builder
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if !hasTextLayer(page) {
			log.Debug("extractPDF", "page without text layer", i)
			continue
		}

		content, err := protectExtract(ctx, func() (string, error) {
			return page.GetPlainText(nil)
		})
		if err != nil {
			if ctx.Err() != nil {
				return commonModels.ExtractedText{}, ctx.Err()
			}
			// a broken page does not fail the document
			log.Warn("Error parsing page content", "page", i, "error", err)
			continue
		}
		text.WriteString(content)
	}

	return commonModels.NewExtractedText(text.String()), nil
}

func hasTextLayer(page pdf.Page) bool {
	return !page.V.IsNull() && !page.V.Key("Contents").IsNull()
}

// openPDF keeps the file handle so callers can close it; pdf.Open would leak it.
func openPDF(path string) (file *os.File, reader *pdf.Reader, err error) {
	file, err = os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			file.Close()
			file, reader, err = nil, nil, fmt.Errorf("pdf reader panic: %v", r)
		}
	}()
	reader, err = pdf.NewReader(file, info.Size())
	if err != nil {
		file.Close()
		return nil, nil, err
	}
	return file, reader, nil
}
