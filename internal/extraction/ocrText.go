package extraction

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/akolanti/PdfSummaryAPI/internal/config"
	"github.com/akolanti/PdfSummaryAPI/internal/domain/commonModels"
	"github.com/akolanti/PdfSummaryAPI/internal/domain/pipelineModel"
	"github.com/akolanti/PdfSummaryAPI/pkg/logger_i"
)

type OCRConfig struct {
	Pdftoppm      string // binary name or absolute path
	Tesseract     string // binary name or absolute path
	TesseractLang string
	DPI           int
}

func OCRConfigFromSettings(s *config.Settings) OCRConfig {
	return OCRConfig{
		Pdftoppm:      s.Pdftoppm,
		Tesseract:     s.Tesseract,
		TesseractLang: s.TesseractLang,
		DPI:           s.OcrDPI,
	}
}

// OCRExtractor rasterizes each page with pdftoppm and reads it back with tesseract.
type OCRExtractor struct {
	cfg    OCRConfig
	runner Runner
	logger *logger_i.Logger
}

func NewOCRExtractor(cfg OCRConfig) *OCRExtractor {
	logger := logger_i.NewLogger("extract_ocr")
	return NewOCRExtractorWithRunner(cfg, execRunner{logger: logger})
}

func NewOCRExtractorWithRunner(cfg OCRConfig, runner Runner) *OCRExtractor {
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = config.DefaultTesseractLang
	}
	if cfg.DPI <= 0 {
		cfg.DPI = config.DefaultOcrDPI
	}
	return &OCRExtractor{cfg: cfg, runner: runner, logger: logger_i.NewLogger("extract_ocr")}
}

func (e *OCRExtractor) Strategy() pipelineModel.Strategy { return pipelineModel.StrategyOCR }

func (e *OCRExtractor) Extensions() []string { return []string{config.PdfExtension} }

func (e *OCRExtractor) Extract(ctx context.Context, path string) (commonModels.ExtractedText, error) {
	log := e.logger.FromContext(ctx)
	if err := ValidatePath(path, e.Extensions()...); err != nil {
		return commonModels.ExtractedText{}, err
	}
	if err := e.checkDependencies(); err != nil {
		log.Error("OCR dependencies missing", "error", err)
		return commonModels.ExtractedText{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, config.OcrTimeout)
	defer cancel()

	tmpDir, err := os.MkdirTemp("", "pdf-ocr-*")
	if err != nil {
		return commonModels.ExtractedText{}, fmt.Errorf("create ocr work dir: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			log.Warn("failed to remove ocr work dir", "dir", tmpDir, "error", err)
		}
	}()

	images, err := e.rasterize(ctx, path, tmpDir)
	if err != nil {
		return commonModels.ExtractedText{}, err
	}
	log.Debug("rasterized pdf", "pages", len(images))

	texts := make([]string, 0, len(images))
	for _, img := range images {
		// tesseract <img> stdout -l <lang>
		out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, img, "stdout", "-l", e.cfg.TesseractLang)
		if err != nil {
			if ctx.Err() != nil {
				return commonModels.ExtractedText{}, ctx.Err()
			}
			return commonModels.ExtractedText{}, fmt.Errorf("tesseract failed on %s: %w (%s)",
				filepath.Base(img), err, truncate(string(errb), 512))
		}
		texts = append(texts, string(out))
	}

	extracted := commonModels.NewExtractedText(strings.Join(texts, "\n"))
	if extracted.IsEmpty {
		return commonModels.ExtractedText{}, emptyExtraction(path)
	}
	return extracted, nil
}

func (e *OCRExtractor) checkDependencies() error {
	if e.cfg.Tesseract == "" {
		return commonModels.NewError(commonModels.MissingDependency, "the Tesseract OCR engine is not configured")
	}
	if _, err := e.runner.LookPath(e.cfg.Tesseract); err != nil {
		return commonModels.WrapError(commonModels.MissingDependency,
			"the Tesseract OCR engine is not installed or not on PATH", err)
	}
	if e.cfg.Pdftoppm == "" {
		return commonModels.NewError(commonModels.MissingDependency, "the pdftoppm rasterizer is not configured")
	}
	if _, err := e.runner.LookPath(e.cfg.Pdftoppm); err != nil {
		return commonModels.WrapError(commonModels.MissingDependency,
			"the pdftoppm rasterizer (poppler) is not installed or not on PATH", err)
	}
	return nil
}

// rasterize returns the rendered page images in page order.
func (e *OCRExtractor) rasterize(ctx context.Context, path string, dir string) ([]string, error) {
	prefix := filepath.Join(dir, "page")
	// pdftoppm -r 300 -png <in.pdf> <dir/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-r", strconv.Itoa(e.cfg.DPI), "-png", path, prefix)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, corruptDocument(path, fmt.Errorf("pdftoppm: %w (%s)", err, truncate(string(errb), 512)))
	}

	images, _ := filepath.Glob(prefix + "-*.png")
	if len(images) == 0 {
		return nil, commonModels.NewError(commonModels.CorruptDocument,
			fmt.Sprintf("the PDF '%s' produced no page images", path))
	}
	sort.Slice(images, func(i, j int) bool {
		return pageNumber(images[i]) < pageNumber(images[j])
	})
	return images, nil
}

// pageNumber reads N out of page-N.png; pdftoppm zero pads N depending on the page count.
func pageNumber(image string) int {
	base := strings.TrimSuffix(filepath.Base(image), ".png")
	idx := strings.LastIndex(base, "-")
	n, err := strconv.Atoi(base[idx+1:])
	if err != nil {
		return 0
	}
	return n
}
