package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/portfolio-importer/internal/models"
)

var ErrPortfolioNotFound = errors.New("portfolio not found")

type PortfolioRepository interface {
	Create(portfolio *models.Portfolio) error
	FindByID(id uuid.UUID) (*models.Portfolio, error)
	ListRecent(limit int) ([]models.Portfolio, error)
}

type portfolioRepository struct {
	db *gorm.DB
}

func NewPortfolioRepository(db *gorm.DB) PortfolioRepository {
	return &portfolioRepository{db: db}
}

func (r *portfolioRepository) Create(portfolio *models.Portfolio) error {
	if err := r.db.Create(portfolio).Error; err != nil {
		return fmt.Errorf("failed to create portfolio: %w", err)
	}
	return nil
}

func (r *portfolioRepository) FindByID(id uuid.UUID) (*models.Portfolio, error) {
	var portfolio models.Portfolio
	if err := r.db.Where("id = ?", id).First(&portfolio).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPortfolioNotFound
		}
		return nil, fmt.Errorf("failed to find portfolio: %w", err)
	}
	return &portfolio, nil
}

func (r *portfolioRepository) ListRecent(limit int) ([]models.Portfolio, error) {
	var portfolios []models.Portfolio
	err := r.db.
		Order("created_at DESC").
		Limit(limit).
		Find(&portfolios).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list portfolios: %w", err)
	}

	return portfolios, nil
}
