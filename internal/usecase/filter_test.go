package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"portfolio-dashboard/internal/domain"
)

func filterFixture() []domain.Project {
	typed := func(id, name, desc, typeKey string, featured bool) domain.Project {
		p := domain.Project{
			Object:   domain.Object{ID: id},
			Metadata: domain.ProjectMetadata{Name: name, Description: desc, Featured: featured},
		}
		if typeKey != "" {
			p.Metadata.ProjectType = &domain.KV{Key: typeKey}
		}
		return p
	}
	return []domain.Project{
		typed("p1", "Portfolio Site", "Personal website built with Next.js", "website", true),
		typed("p2", "Task API", "REST api for tasks", "api", false),
		typed("p3", "Budget App", "Mobile budgeting tool", "mobile_app", true),
		typed("p4", "Untyped", "No type set", "", false),
	}
}

func TestFilterProjects(t *testing.T) {
	projects := filterFixture()

	tests := []struct {
		name    string
		query   string
		filter  string
		wantIDs []string
	}{
		{name: "no query no filter", wantIDs: []string{"p1", "p2", "p3", "p4"}},
		{name: "explicit all", filter: FilterAll, wantIDs: []string{"p1", "p2", "p3", "p4"}},
		{name: "search name case-insensitive", query: "PORTFOLIO", wantIDs: []string{"p1"}},
		{name: "search matches description", query: "rest", wantIDs: []string{"p2"}},
		{name: "featured only", filter: FilterFeatured, wantIDs: []string{"p1", "p3"}},
		{name: "type key filter", filter: "api", wantIDs: []string{"p2"}},
		{name: "type filter skips untyped", filter: "website", wantIDs: []string{"p1"}},
		{name: "search and featured combined", query: "app", filter: FilterFeatured, wantIDs: []string{"p3"}},
		{name: "no match", query: "zzz", wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterProjects(projects, tt.query, tt.filter)
			gotIDs := make([]string, 0, len(got))
			for _, p := range got {
				gotIDs = append(gotIDs, p.ID)
			}
			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}
