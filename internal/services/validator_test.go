package services

import "testing"

func TestSchemaValidator(t *testing.T) {
	v, err := NewSchemaValidator(PortfolioSchema())
	if err != nil {
		t.Fatalf("schema should compile: %v", err)
	}

	if err := v.Validate([]byte(adaJSON)); err != nil {
		t.Fatalf("expected valid document, got %v", err)
	}

	tests := map[string]string{
		"missing tagline":  `{"fullName":"A","about":"b","experience":[],"skills":[],"projects":[],"education":[]}`,
		"unknown category": `{"fullName":"A","tagline":"t","about":"b","experience":[],"skills":[{"name":"x","level":1,"category":"Sales"}],"projects":[],"education":[]}`,
		"level not number": `{"fullName":"A","tagline":"t","about":"b","experience":[],"skills":[{"name":"x","level":"high","category":"Other"}],"projects":[],"education":[]}`,
		"not json":         `not json`,
	}
	for name, doc := range tests {
		if err := v.Validate([]byte(doc)); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}
