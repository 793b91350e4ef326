package services

import "fmt"

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildDocumentPrompt creates the instruction sent alongside an inline resume document
func (pb *PromptBuilder) BuildDocumentPrompt() string {
	return `Extract all professional information from this resume/CV document and format it strictly into the requested JSON structure. If any fields are missing, make a best-guess based on context or leave them as professional placeholders. Ensure the tagline is inspiring.`
}

// BuildTextPrompt creates the prompt for pasted resume text
func (pb *PromptBuilder) BuildTextPrompt(text string) string {
	return fmt.Sprintf("Extract all professional information from the following text and format it strictly into the requested JSON structure:\n\n%s", text)
}
