// Package validation checks create/edit form submissions against JSON
// schemas before they reach the database.
package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/maheshrc27/brandlab-api/internal/apperrors"
	"github.com/maheshrc27/brandlab-api/internal/models"
	"github.com/maheshrc27/brandlab-api/internal/transfer"
	"github.com/xeipuuv/gojsonschema"
)

type form struct {
	schema   *gojsonschema.Schema
	required map[string]bool
}

var (
	clientForm         = mustForm(clientSchemaSource, "brand_name", "domain")
	campaignForm       = mustForm(campaignSchemaSource, "title", "client_id")
	videoForm          = mustForm(videoSchemaSource, "title")
	relevanceScoreForm = mustForm(relevanceScoreSchemaSource, "score")
	loginForm          = mustForm(loginSchemaSource, "email", "password")
)

func mustForm(source string, required ...string) *form {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(source))
	if err != nil {
		panic(fmt.Sprintf("validation: bad schema: %v", err))
	}
	f := &form{schema: schema, required: map[string]bool{}}
	for _, field := range required {
		f.required[field] = true
	}
	return f
}

func ValidateClient(in *transfer.ClientInput) error {
	return clientForm.validate(in)
}

func ValidateCampaign(in *transfer.CampaignInput) error {
	return campaignForm.validate(in)
}

func ValidateVideo(in *transfer.VideoInput) error {
	if err := videoForm.validate(in); err != nil {
		return err
	}
	if in.Craft == models.CraftCreator && strings.TrimSpace(in.CreatorName) == "" {
		return apperrors.Validation("creator_name", "creator_name is required for creator videos")
	}
	return nil
}

func ValidateRelevanceScore(in *transfer.RelevanceScoreUpdate) error {
	return relevanceScoreForm.validate(in)
}

func ValidateLogin(in *transfer.LoginRequest) error {
	return loginForm.validate(in)
}

// validate reports the first failing field in alphabetical order so the
// message is stable across runs.
func (f *form) validate(doc interface{}) error {
	result, err := f.schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("validating form: %w", err)
	}
	if result.Valid() {
		return nil
	}

	errs := result.Errors()
	sort.Slice(errs, func(i, j int) bool {
		return fieldOf(errs[i]) < fieldOf(errs[j])
	})

	first := errs[0]
	field := fieldOf(first)
	if f.required[field] {
		switch first.Type() {
		case "required", "pattern", "string_gte", "invalid_type":
			return apperrors.Validation(field, field+" is required")
		}
	}
	return apperrors.Validation(field, fmt.Sprintf("%s: %s", field, first.Description()))
}

func fieldOf(e gojsonschema.ResultError) string {
	if e.Type() == "required" {
		if property, ok := e.Details()["property"].(string); ok {
			return property
		}
	}
	return e.Field()
}
