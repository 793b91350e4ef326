package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"alfredoptarigan/portfolio-importer/internal/models"
)

// ErrExtractionFailed matches every error returned by ExtractorService.
var ErrExtractionFailed = errors.New("extraction failed")

// ExtractionError wraps the underlying cause of a failed extraction. Callers
// should report it as a single failure and keep the cause for logs.
type ExtractionError struct {
	Mode string
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction failed (%s): %v", e.Mode, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

func (e *ExtractionError) Is(target error) bool {
	return target == ErrExtractionFailed
}

const (
	modeDocument = "document"
	modeText     = "text"
)

type ExtractorService interface {
	ExtractFromDocument(ctx context.Context, data, mimeType string) (*models.PortfolioData, error)
	ExtractFromText(ctx context.Context, text string) (*models.PortfolioData, error)
}

type extractorService struct {
	geminiService GeminiService
	promptBuilder *PromptBuilder
	validator     SchemaValidator
}

// NewExtractorService wires the extractor. A nil validator keeps decoding lenient.
func NewExtractorService(geminiService GeminiService, validator SchemaValidator) ExtractorService {
	return &extractorService{
		geminiService: geminiService,
		promptBuilder: NewPromptBuilder(),
		validator:     validator,
	}
}

// ExtractFromDocument implements ExtractorService. data is base64, optionally
// with a data URL prefix.
func (e *extractorService) ExtractFromDocument(ctx context.Context, data, mimeType string) (*models.PortfolioData, error) {
	raw, headerMIMEType, err := decodePayload(data)
	if err != nil {
		return nil, &ExtractionError{Mode: modeDocument, Err: err}
	}
	if len(raw) == 0 {
		return nil, &ExtractionError{Mode: modeDocument, Err: fmt.Errorf("document payload is empty")}
	}
	if mimeType == "" {
		mimeType = headerMIMEType
	}

	log.Printf("📄 Extracting portfolio from %s document (%d bytes)\n", mimeType, len(raw))

	return e.extract(ctx, modeDocument, StructuredRequest{
		Prompt:     e.promptBuilder.BuildDocumentPrompt(),
		Document:   true,
		InlineData: raw,
		MIMEType:   mimeType,
		Schema:     PortfolioSchema(),
	})
}

// ExtractFromText implements ExtractorService.
func (e *extractorService) ExtractFromText(ctx context.Context, text string) (*models.PortfolioData, error) {
	log.Printf("📝 Extracting portfolio from text (%d characters)\n", len(text))

	return e.extract(ctx, modeText, StructuredRequest{
		Prompt: e.promptBuilder.BuildTextPrompt(text),
		Schema: PortfolioSchema(),
	})
}

func (e *extractorService) extract(ctx context.Context, mode string, req StructuredRequest) (*models.PortfolioData, error) {
	response, err := e.geminiService.GenerateStructured(ctx, req)
	if err != nil {
		log.Printf("❌ Portfolio extraction (%s) failed: %v\n", mode, err)
		return nil, &ExtractionError{Mode: mode, Err: err}
	}

	log.Printf("🤖 Extraction response received: %d characters\n", len(response))

	portfolio, err := e.decode(response)
	if err != nil {
		log.Printf("❌ Failed to decode portfolio (%s): %v\n", mode, err)
		return nil, &ExtractionError{Mode: mode, Err: err}
	}

	return portfolio, nil
}

func (e *extractorService) decode(response string) (*models.PortfolioData, error) {
	jsonStr := extractJSON(response)

	if e.validator != nil {
		if err := e.validator.Validate([]byte(jsonStr)); err != nil {
			return nil, err
		}
	}

	var portfolio models.PortfolioData
	if err := json.Unmarshal([]byte(jsonStr), &portfolio); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return &portfolio, nil
}

// extractJSON returns valid JSON untouched. Otherwise it drops an enclosing
// markdown fence and any prose around the outermost object.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if json.Valid([]byte(text)) {
		return text
	}

	if strings.HasPrefix(text, "```") && strings.HasSuffix(text, "```") && len(text) >= 6 {
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSpace(text)
		if json.Valid([]byte(text)) {
			return text
		}
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end > start {
		return text[start : end+1]
	}

	return text
}
