package handlers

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/portfolio-importer/internal/models"
	"alfredoptarigan/portfolio-importer/internal/repositories"
	"alfredoptarigan/portfolio-importer/internal/services"
)

const extractionFailedMessage = "Failed to extract portfolio. Try pasting the resume text instead."

type ImportHandler struct {
	extractor     services.ExtractorService
	uploadService services.UploadService
	pdfParser     services.PDFParserService
	portfolioRepo repositories.PortfolioRepository
	timeout       time.Duration
}

func NewImportHandler(
	extractor services.ExtractorService,
	uploadService services.UploadService,
	pdfParser services.PDFParserService,
	portfolioRepo repositories.PortfolioRepository,
	timeout time.Duration,
) *ImportHandler {
	return &ImportHandler{
		extractor:     extractor,
		uploadService: uploadService,
		pdfParser:     pdfParser,
		portfolioRepo: portfolioRepo,
		timeout:       timeout,
	}
}

// HandleImportDocument handles POST /import/document
func (h *ImportHandler) HandleImportDocument(c *fiber.Ctx) error {
	var payload services.DocumentPayload

	if isMultipart(c) {
		file, err := c.FormFile("file")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "file is required",
			})
		}

		data, mimeType, err := h.uploadService.ReadFile(file)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		payload = services.FromDocument(data, mimeType)
	} else {
		var req models.ImportDocumentRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request payload",
			})
		}

		if req.Data == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "data is required",
			})
		}

		if strings.HasPrefix(req.Data, "data:") {
			p, err := services.FromDataURL(req.Data)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "Invalid data URL",
				})
			}
			payload = p
		} else {
			if req.MIMEType == "" {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "mime_type is required with raw base64 data",
				})
			}
			payload = services.DocumentPayload{Data: req.Data, MIMEType: req.MIMEType}
		}
	}

	ctx, cancel := h.extractionContext(c)
	defer cancel()

	portfolio, err := h.extractor.ExtractFromDocument(ctx, payload.Data, payload.MIMEType)
	if err != nil {
		return extractionFailed(c, err)
	}

	return h.save(c, models.SourceDocument, payload.MIMEType, portfolio)
}

// HandleImportText handles POST /import/text
func (h *ImportHandler) HandleImportText(c *fiber.Ctx) error {
	var req models.ImportTextRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if strings.TrimSpace(req.Text) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "text is required",
		})
	}

	payload := services.FromText(req.Text)

	ctx, cancel := h.extractionContext(c)
	defer cancel()

	portfolio, err := h.extractor.ExtractFromText(ctx, payload.Text)
	if err != nil {
		return extractionFailed(c, err)
	}

	return h.save(c, models.SourceText, "", portfolio)
}

// HandleImportPDFText handles POST /import/pdf-text. The PDF is converted to
// text locally and sent through the text path.
func (h *ImportHandler) HandleImportPDFText(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "file is required",
		})
	}

	data, _, err := h.uploadService.ReadFile(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	content, err := h.pdfParser.ExtractTextFromBytes(data)
	if err != nil {
		log.Printf("⚠️  PDF text extraction failed for %s: %v\n", file.Filename, err)
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "Could not read text from PDF",
		})
	}

	log.Printf("📄 Extracted %d pages, %d characters from %s\n", content.PageCount, len(content.Text), file.Filename)

	ctx, cancel := h.extractionContext(c)
	defer cancel()

	portfolio, err := h.extractor.ExtractFromText(ctx, services.FromText(content.Text).Text)
	if err != nil {
		return extractionFailed(c, err)
	}

	return h.save(c, models.SourcePDFText, "application/pdf", portfolio)
}

func (h *ImportHandler) save(c *fiber.Ctx, source models.ImportSource, mimeType string, portfolio *models.PortfolioData) error {
	record, err := models.NewPortfolioRecord(source, mimeType, portfolio)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to encode portfolio",
		})
	}

	if err := h.portfolioRepo.Create(record); err != nil {
		log.Printf("❌ Failed to save portfolio: %v\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save portfolio",
		})
	}

	log.Printf("✅ Imported portfolio %s (%s)\n", record.ID, source)

	return c.Status(fiber.StatusCreated).JSON(models.ImportResponse{
		ID:        record.ID.String(),
		Source:    string(source),
		Portfolio: portfolio,
	})
}

func (h *ImportHandler) extractionContext(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	ctx := c.UserContext()
	if h.timeout > 0 {
		return context.WithTimeout(ctx, h.timeout)
	}
	return context.WithCancel(ctx)
}

func extractionFailed(c *fiber.Ctx, err error) error {
	if !errors.Is(err, services.ErrExtractionFailed) {
		log.Printf("❌ Unexpected extractor error: %v\n", err)
	}

	return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
		"error": extractionFailedMessage,
	})
}

func isMultipart(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm)
}
