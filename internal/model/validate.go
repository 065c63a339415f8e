// Package model validates create/update payloads against per-variant JSON
// Schemas before anything is forwarded to the store.
package model

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"portfolio-dashboard/internal/domain"
)

var inputSchemas = map[string]string{
	domain.TypeProjects:       projectInputSchema,
	domain.TypeSkills:         skillInputSchema,
	domain.TypeWorkExperience: workExperienceInputSchema,
	domain.TypeTestimonials:   testimonialInputSchema,
}

// ValidationError reports why a payload was rejected. It is a client
// error, not a store failure.
type ValidationError struct {
	Entity string
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s input: %s", e.Entity, e.Detail)
}

// ValidateInput checks a raw JSON payload against the schema for the
// given entity type. Unknown fields and missing required fields are both
// rejected.
func ValidateInput(entityType string, payload []byte) error {
	schema, ok := inputSchemas[entityType]
	if !ok {
		return fmt.Errorf("no input schema for type %q", entityType)
	}

	res, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(payload),
	)
	if err != nil {
		return &ValidationError{Entity: entityType, Detail: err.Error()}
	}
	if res.Valid() {
		return nil
	}

	// collect errors
	msgs := ""
	for _, e := range res.Errors() {
		msgs += fmt.Sprintf("%s; ", e.String())
	}
	return &ValidationError{Entity: entityType, Detail: msgs}
}
