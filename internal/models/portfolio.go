package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type SkillCategory string

const (
	CategoryFrontend SkillCategory = "Frontend"
	CategoryBackend  SkillCategory = "Backend"
	CategoryDesign   SkillCategory = "Design"
	CategoryDevOps   SkillCategory = "DevOps"
	CategoryTools    SkillCategory = "Tools"
	CategoryOther    SkillCategory = "Other"
)

// SkillCategories returns the closed set of skill categories in display order.
func SkillCategories() []SkillCategory {
	return []SkillCategory{
		CategoryFrontend,
		CategoryBackend,
		CategoryDesign,
		CategoryDevOps,
		CategoryTools,
		CategoryOther,
	}
}

func (c SkillCategory) IsValid() bool {
	for _, known := range SkillCategories() {
		if c == known {
			return true
		}
	}
	return false
}

// PortfolioData is the structured record extracted from a resume.
type PortfolioData struct {
	FullName   string       `json:"fullName"`
	Tagline    string       `json:"tagline"`
	About      string       `json:"about"`
	Email      string       `json:"email,omitempty"`
	Location   string       `json:"location,omitempty"`
	Experience []Experience `json:"experience"`
	Skills     []Skill      `json:"skills"`
	Projects   []Project    `json:"projects"`
	Education  []Education  `json:"education"`
}

type Experience struct {
	Company     string   `json:"company"`
	Role        string   `json:"role"`
	Duration    string   `json:"duration"`
	Description []string `json:"description"`
}

// Skill level is expected in [0,100] but is not enforced here.
type Skill struct {
	Name     string        `json:"name"`
	Level    float64       `json:"level"`
	Category SkillCategory `json:"category"`
}

type Project struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	TechStack   []string `json:"techStack"`
}

type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Year        string `json:"year"`
}

type ImportSource string

const (
	SourceDocument ImportSource = "document"
	SourceText     ImportSource = "text"
	SourcePDFText  ImportSource = "pdf_text"
)

// Portfolio is a stored import. Data holds the PortfolioData as JSON.
type Portfolio struct {
	ID        uuid.UUID    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Source    ImportSource `gorm:"type:text;not null" json:"source"`
	MIMEType  string       `gorm:"type:text" json:"mime_type,omitempty"`
	FullName  string       `gorm:"type:text" json:"full_name"`
	Tagline   string       `gorm:"type:text" json:"tagline"`
	Data      string       `gorm:"type:jsonb;not null" json:"-"`
	CreatedAt time.Time    `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time    `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Portfolio) TableName() string {
	return "portfolios"
}

func NewPortfolioRecord(source ImportSource, mimeType string, data *PortfolioData) (*Portfolio, error) {
	if data == nil {
		return nil, fmt.Errorf("portfolio data is nil")
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode portfolio: %w", err)
	}

	now := time.Now()
	return &Portfolio{
		ID:        uuid.New(),
		Source:    source,
		MIMEType:  mimeType,
		FullName:  data.FullName,
		Tagline:   data.Tagline,
		Data:      string(raw),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Decode returns the stored PortfolioData.
func (p *Portfolio) Decode() (*PortfolioData, error) {
	var data PortfolioData
	if err := json.Unmarshal([]byte(p.Data), &data); err != nil {
		return nil, fmt.Errorf("failed to decode stored portfolio %s: %w", p.ID, err)
	}
	return &data, nil
}
