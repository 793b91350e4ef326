package models

type ImportTextRequest struct {
	Text string `json:"text" validate:"required"`
}

// ImportDocumentRequest carries either a data URL in Data, or raw base64 in
// Data together with MIMEType.
type ImportDocumentRequest struct {
	Data     string `json:"data" validate:"required"`
	MIMEType string `json:"mime_type"`
}

type ImportResponse struct {
	ID        string         `json:"id"`
	Source    string         `json:"source"`
	Portfolio *PortfolioData `json:"portfolio"`
}

type PortfolioSummary struct {
	ID        string `json:"id"`
	Source    string `json:"source"`
	FullName  string `json:"full_name"`
	Tagline   string `json:"tagline"`
	CreatedAt string `json:"created_at"`
}

type PortfolioListResponse struct {
	Portfolios []PortfolioSummary `json:"portfolios"`
	Count      int                `json:"count"`
}
