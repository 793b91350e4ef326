package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"alfredoptarigan/portfolio-importer/internal/config"
	"alfredoptarigan/portfolio-importer/internal/models"
	"alfredoptarigan/portfolio-importer/internal/services"
)

func main() {
	filePath := flag.String("file", "", "resume document (PDF or image)")
	mimeType := flag.String("mime", "", "media type of -file; detected when empty")
	pdfText := flag.Bool("pdf-text", false, "extract PDF text locally and import it as text")
	text := flag.String("text", "", "resume text to import instead of a file")
	flag.Parse()

	if *filePath == "" && strings.TrimSpace(*text) == "" {
		log.Fatalln("❌ Either -file or -text is required")
	}

	cfg := config.Load()
	ctx := context.Background()

	geminiService, err := services.NewGeminiService(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini: %v", err)
	}

	var validator services.SchemaValidator
	if cfg.Extraction.StrictSchema {
		if validator, err = services.NewSchemaValidator(services.PortfolioSchema()); err != nil {
			log.Fatalf("❌ Failed to compile portfolio schema: %v", err)
		}
	}
	extractor := services.NewExtractorService(geminiService, validator)

	var portfolio *models.PortfolioData
	switch {
	case *filePath == "":
		portfolio, err = extractor.ExtractFromText(ctx, services.FromText(*text).Text)
	case *pdfText:
		portfolio, err = importPDFText(ctx, extractor, *filePath)
	default:
		portfolio, err = importDocument(ctx, extractor, *filePath, *mimeType)
	}
	if err != nil {
		log.Printf("❌ Import failed: %v", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(portfolio, "", "  ")
	if err != nil {
		log.Fatalf("❌ Failed to encode portfolio: %v", err)
	}
	fmt.Println(string(out))
}

func importDocument(ctx context.Context, extractor services.ExtractorService, path, mimeType string) (*models.PortfolioData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if mimeType == "" {
		mimeType, _, _ = strings.Cut(http.DetectContentType(data), ";")
	}
	log.Printf("📄 Importing %s as %s", path, mimeType)

	payload := services.FromDocument(data, mimeType)
	return extractor.ExtractFromDocument(ctx, payload.Data, payload.MIMEType)
}

func importPDFText(ctx context.Context, extractor services.ExtractorService, path string) (*models.PortfolioData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	content, err := services.NewPDFParserService().ExtractTextFromBytes(data)
	if err != nil {
		return nil, err
	}
	log.Printf("📖 Extracted %d pages, %d characters", content.PageCount, len(content.Text))

	return extractor.ExtractFromText(ctx, services.FromText(content.Text).Text)
}
