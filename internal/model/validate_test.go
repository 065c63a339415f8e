package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-dashboard/internal/domain"
)

func TestValidateInput(t *testing.T) {
	tests := []struct {
		name    string
		entity  string
		payload string
		wantOK  bool
	}{
		{
			name:    "valid project",
			entity:  domain.TypeProjects,
			payload: `{"name":"Site","description":"A site","project_type":"web_app","featured":true}`,
			wantOK:  true,
		},
		{
			name:    "project missing description",
			entity:  domain.TypeProjects,
			payload: `{"name":"Site"}`,
			wantOK:  false,
		},
		{
			name:    "project unknown field rejected",
			entity:  domain.TypeProjects,
			payload: `{"name":"Site","description":"A site","sneaky":"x"}`,
			wantOK:  false,
		},
		{
			name:    "project bad type key",
			entity:  domain.TypeProjects,
			payload: `{"name":"Site","description":"A site","project_type":"hologram"}`,
			wantOK:  false,
		},
		{
			name:    "valid skill",
			entity:  domain.TypeSkills,
			payload: `{"name":"Go","category":"backend","proficiency":"expert","years_experience":5}`,
			wantOK:  true,
		},
		{
			name:    "skill bad category",
			entity:  domain.TypeSkills,
			payload: `{"name":"Go","category":"wizardry"}`,
			wantOK:  false,
		},
		{
			name:    "valid work experience",
			entity:  domain.TypeWorkExperience,
			payload: `{"job_title":"Engineer","company":"Acme","start_date":"2022-01-01","current_position":true}`,
			wantOK:  true,
		},
		{
			name:    "work experience missing start date",
			entity:  domain.TypeWorkExperience,
			payload: `{"job_title":"Engineer","company":"Acme"}`,
			wantOK:  false,
		},
		{
			name:    "work experience malformed date",
			entity:  domain.TypeWorkExperience,
			payload: `{"job_title":"Engineer","company":"Acme","start_date":"January 2022"}`,
			wantOK:  false,
		},
		{
			name:    "valid testimonial",
			entity:  domain.TypeTestimonials,
			payload: `{"name":"Jane","testimonial":"Great","rating":"5"}`,
			wantOK:  true,
		},
		{
			name:    "testimonial rating outside enum",
			entity:  domain.TypeTestimonials,
			payload: `{"name":"Jane","testimonial":"Great","rating":"1"}`,
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInput(tt.entity, []byte(tt.payload))
			if tt.wantOK {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.entity, vErr.Entity)
		})
	}
}

func TestValidateInputUnknownType(t *testing.T) {
	err := ValidateInput("widgets", []byte(`{}`))
	require.Error(t, err)
	var vErr *ValidationError
	assert.False(t, errors.As(err, &vErr))
}
