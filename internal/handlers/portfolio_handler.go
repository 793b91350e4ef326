package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/portfolio-importer/internal/models"
	"alfredoptarigan/portfolio-importer/internal/repositories"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type PortfolioHandler struct {
	portfolioRepo repositories.PortfolioRepository
}

func NewPortfolioHandler(portfolioRepo repositories.PortfolioRepository) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioRepo: portfolioRepo,
	}
}

// HandleGetPortfolio handles GET /portfolios/:id
func (h *PortfolioHandler) HandleGetPortfolio(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid portfolio ID format",
		})
	}

	record, err := h.portfolioRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrPortfolioNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Portfolio not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load portfolio",
		})
	}

	portfolio, err := record.Decode()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Stored portfolio is corrupted",
		})
	}

	return c.JSON(models.ImportResponse{
		ID:        record.ID.String(),
		Source:    string(record.Source),
		Portfolio: portfolio,
	})
}

// HandleListPortfolios handles GET /portfolios
func (h *PortfolioHandler) HandleListPortfolios(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultListLimit)
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	records, err := h.portfolioRepo.ListRecent(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list portfolios",
		})
	}

	summaries := make([]models.PortfolioSummary, 0, len(records))
	for _, r := range records {
		summaries = append(summaries, models.PortfolioSummary{
			ID:        r.ID.String(),
			Source:    string(r.Source),
			FullName:  r.FullName,
			Tagline:   r.Tagline,
			CreatedAt: r.CreatedAt.Format(time.RFC3339),
		})
	}

	return c.JSON(models.PortfolioListResponse{
		Portfolios: summaries,
		Count:      len(summaries),
	})
}
