package extraction

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/akolanti/PdfSummaryAPI/internal/domain/commonModels"
	"github.com/akolanti/PdfSummaryAPI/internal/domain/pipelineModel"
)

// Extractor turns a document path into best effort plain text.
// Every implementation runs ValidatePath with its own Extensions before touching the file.
type Extractor interface {
	Extract(ctx context.Context, path string) (commonModels.ExtractedText, error)
	Strategy() pipelineModel.Strategy
	Extensions() []string
}

var officeExtensions = []string{".docx", ".odt", ".rtf", ".txt"}

// ValidatePath checks existence first and extension second, without reading the file.
func ValidatePath(path string, extensions ...string) error {
	if strings.TrimSpace(path) == "" {
		return commonModels.NewError(commonModels.InvalidInput, "no file path was provided")
	}

	info, err := os.Stat(path)
	if err != nil {
		return commonModels.WrapError(commonModels.InvalidInput, fmt.Sprintf("file '%s' was not found", path), err)
	}
	if info.IsDir() {
		return commonModels.NewError(commonModels.InvalidInput, fmt.Sprintf("'%s' is a directory, not a file", path))
	}

	ext := strings.ToLower(filepath.Ext(path))
	for _, allowed := range extensions {
		if ext == allowed {
			return nil
		}
	}
	return commonModels.NewError(commonModels.InvalidInput,
		fmt.Sprintf("file '%s' is not a supported document (expected %s)", path, strings.Join(extensions, ", ")))
}

func getDocType(docPath string) commonModels.DocType {
	ext := strings.ToLower(filepath.Ext(docPath))
	switch ext {
	case ".pdf":
		return commonModels.PDF
	case ".docx", ".odt", ".rtf":
		return commonModels.DOCX
	case ".txt":
		return commonModels.TXT
	default:
		return commonModels.ERR
	}
}

// Registry maps each strategy to its extractor. It is filled once at startup and only read afterwards.
type Registry struct {
	extractors map[pipelineModel.Strategy]Extractor
}

func NewRegistry(extractors ...Extractor) *Registry {
	r := &Registry{extractors: make(map[pipelineModel.Strategy]Extractor, len(extractors))}
	for _, e := range extractors {
		r.extractors[e.Strategy()] = e
	}
	return r
}

func (r *Registry) Get(strategy pipelineModel.Strategy) (Extractor, bool) {
	e, ok := r.extractors[strategy]
	return e, ok
}

func emptyExtraction(path string) error {
	return commonModels.NewError(commonModels.EmptyExtraction,
		fmt.Sprintf("no text was extracted from '%s'; the file may be corrupt or image based", path))
}

func corruptDocument(path string, err error) error {
	return commonModels.WrapError(commonModels.CorruptDocument,
		fmt.Sprintf("the document '%s' is empty or corrupt", path), err)
}
