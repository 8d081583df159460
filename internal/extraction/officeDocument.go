package extraction

import (
	"context"

	"github.com/akolanti/PdfSummaryAPI/internal/domain/commonModels"
	"github.com/akolanti/PdfSummaryAPI/internal/domain/pipelineModel"
	"github.com/akolanti/PdfSummaryAPI/pkg/logger_i"
	"github.com/lu4p/cat"
)

// OfficeDocumentExtractor reads .docx, .odt, .rtf and plaintext files.
type OfficeDocumentExtractor struct {
	logger *logger_i.Logger
}

func NewOfficeDocumentExtractor() *OfficeDocumentExtractor {
	return &OfficeDocumentExtractor{logger: logger_i.NewLogger("extract_office_document")}
}

func (e *OfficeDocumentExtractor) Strategy() pipelineModel.Strategy {
	return pipelineModel.StrategyOfficeDoc
}

func (e *OfficeDocumentExtractor) Extensions() []string { return officeExtensions }

func (e *OfficeDocumentExtractor) Extract(ctx context.Context, path string) (commonModels.ExtractedText, error) {
	log := e.logger.FromContext(ctx)
	if err := ValidatePath(path, e.Extensions()...); err != nil {
		return commonModels.ExtractedText{}, err
	}
	log.Debug("extracting document", "path", path, "type", getDocType(path))

	text, err := protectExtract(ctx, func() (string, error) {
		return cat.File(path)
	})
	if err != nil {
		if ctx.Err() != nil {
			return commonModels.ExtractedText{}, ctx.Err()
		}
		log.Error("Error extracting content from doc", "path", path, "error", err)
		return commonModels.ExtractedText{}, corruptDocument(path, err)
	}

	extracted := commonModels.NewExtractedText(text)
	if extracted.IsEmpty {
		return commonModels.ExtractedText{}, emptyExtraction(path)
	}
	return extracted, nil
}
