package usecase

import (
	"strings"

	"portfolio-dashboard/internal/domain"
)

// Filter selector values beyond a project type key.
const (
	FilterAll      = "all"
	FilterFeatured = "featured"
)

// FilterProjects applies the projects screen's search box and filter
// selector. Search matches the name or description case-insensitively;
// the filter is "all", "featured", or a project type key.
func FilterProjects(projects []domain.Project, query, filter string) []domain.Project {
	query = strings.ToLower(query)

	out := make([]domain.Project, 0, len(projects))
	for _, p := range projects {
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Metadata.Name), query) &&
			!strings.Contains(strings.ToLower(p.Metadata.Description), query) {
			continue
		}
		switch filter {
		case "", FilterAll:
		case FilterFeatured:
			if !p.Metadata.Featured {
				continue
			}
		default:
			if p.Metadata.ProjectType == nil || p.Metadata.ProjectType.Key != filter {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}
