package services

import "alfredoptarigan/portfolio-importer/internal/models"

// portfolioSchema is shared by the document and text extraction paths.
var portfolioSchema = buildPortfolioSchema()

// PortfolioSchema returns the JSON Schema sent to the model. Callers must not
// mutate the returned map.
func PortfolioSchema() map[string]any {
	return portfolioSchema
}

func buildPortfolioSchema() map[string]any {
	categories := make([]string, 0, len(models.SkillCategories()))
	for _, c := range models.SkillCategories() {
		categories = append(categories, string(c))
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"fullName": stringProp(""),
			"tagline":  stringProp("A catchy one-line headline about the person's expertise"),
			"about":    stringProp("A professional summary or about section"),
			"email":    stringProp(""),
			"location": stringProp(""),
			"experience": arrayOf(objectOf(map[string]any{
				"company":     stringProp(""),
				"role":        stringProp(""),
				"duration":    stringProp(""),
				"description": arrayOf(stringProp("")),
			}, "company", "role", "duration", "description")),
			"skills": arrayOf(objectOf(map[string]any{
				"name": stringProp(""),
				"level": map[string]any{
					"type":        "number",
					"description": "Skill level from 0-100 based on experience",
				},
				"category": map[string]any{
					"type": "string",
					"enum": categories,
				},
			}, "name", "level", "category")),
			"projects": arrayOf(objectOf(map[string]any{
				"title":       stringProp(""),
				"description": stringProp(""),
				"techStack":   arrayOf(stringProp("")),
			}, "title", "description", "techStack")),
			"education": arrayOf(objectOf(map[string]any{
				"institution": stringProp(""),
				"degree":      stringProp(""),
				"year":        stringProp(""),
			}, "institution", "degree", "year")),
		},
		"required": []string{"fullName", "tagline", "about", "experience", "skills", "projects", "education"},
	}
}

func stringProp(description string) map[string]any {
	prop := map[string]any{"type": "string"}
	if description != "" {
		prop["description"] = description
	}
	return prop
}

func arrayOf(items map[string]any) map[string]any {
	return map[string]any{
		"type":  "array",
		"items": items,
	}
}

func objectOf(properties map[string]any, required ...string) map[string]any {
	return map[string]any{
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
}
