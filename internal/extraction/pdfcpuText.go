package extraction

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/akolanti/PdfSummaryAPI/internal/config"
	"github.com/akolanti/PdfSummaryAPI/internal/domain/commonModels"
	"github.com/akolanti/PdfSummaryAPI/internal/domain/pipelineModel"
	"github.com/akolanti/PdfSummaryAPI/pkg/logger_i"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PdfcpuExtractor reads the document with pdfcpu and scans each page content stream for text operators.
type PdfcpuExtractor struct {
	logger *logger_i.Logger
}

func NewPdfcpuExtractor() *PdfcpuExtractor {
	return &PdfcpuExtractor{logger: logger_i.NewLogger("extract_pdfcpu")}
}

func (e *PdfcpuExtractor) Strategy() pipelineModel.Strategy { return pipelineModel.StrategyPdfcpu }

func (e *PdfcpuExtractor) Extensions() []string { return []string{config.PdfExtension} }

func (e *PdfcpuExtractor) Extract(ctx context.Context, path string) (commonModels.ExtractedText, error) {
	log := e.logger.FromContext(ctx)
	if err := ValidatePath(path, e.Extensions()...); err != nil {
		return commonModels.ExtractedText{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return commonModels.ExtractedText{}, corruptDocument(path, err)
	}
	defer f.Close()

	pdfCtx, err := protectExtract(ctx, func() (*model.Context, error) {
		return api.ReadValidateAndOptimize(f, model.NewDefaultConfiguration())
	})
	if err != nil {
		if ctx.Err() != nil {
			return commonModels.ExtractedText{}, ctx.Err()
		}
		log.Error("pdfcpu read failed", "path", path, "error", err)
		return commonModels.ExtractedText{}, corruptDocument(path, err)
	}

	log.Debug("pdfcpu read", "number of pages", pdfCtx.PageCount)
	if pdfCtx.PageCount == 0 {
		return commonModels.ExtractedText{}, corruptDocument(path, nil)
	}

	pages := make([]string, 0, pdfCtx.PageCount)
	for pageNr := 1; pageNr <= pdfCtx.PageCount; pageNr++ {
		pageText, err := protectExtract(ctx, func() (string, error) {
			return extractPageText(pdfCtx, pageNr)
		})
		if err != nil {
			if ctx.Err() != nil {
				return commonModels.ExtractedText{}, ctx.Err()
			}
			log.Warn("Error parsing page content", "page", pageNr, "error", err)
			continue
		}
		pages = append(pages, pageText)
	}

	extracted := commonModels.NewExtractedText(strings.Join(pages, "\n"))
	if extracted.IsEmpty {
		return commonModels.ExtractedText{}, emptyExtraction(path)
	}
	return extracted, nil
}

func extractPageText(pdfCtx *model.Context, pageNr int) (string, error) {
	r, err := pdfcpu.ExtractPageContent(pdfCtx, pageNr)
	if err != nil {
		return "", err
	}
	if r == nil {
		return "", nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return textFromContentStream(data), nil
}
