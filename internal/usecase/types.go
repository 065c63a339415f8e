// Package usecase builds the dashboard read models on top of the content
// repository: the merged recent-activity timeline, the stats overview and
// the projects screen filter.
package usecase

import (
	"context"

	"portfolio-dashboard/internal/domain"
)

// ContentStore is the slice of the content repository the dashboard read
// models depend on. Lists are expected to arrive already sorted per the
// repository's contracts.
type ContentStore interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
	ListSkills(ctx context.Context) ([]domain.Skill, error)
	ListWorkExperience(ctx context.Context) ([]domain.WorkExperience, error)
	ListTestimonials(ctx context.Context) ([]domain.Testimonial, error)
}

// ActivityItem is one entry of the merged recent-activity timeline.
type ActivityItem struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Href        string `json:"href"`
}

// DashboardStats is the overview card payload.
type DashboardStats struct {
	TotalProjects        int `json:"totalProjects"`
	FeaturedProjects     int `json:"featuredProjects"`
	TotalSkills          int `json:"totalSkills"`
	SkillCategories      int `json:"skillCategories"`
	TotalExperience      int `json:"totalExperience"`
	CurrentPositions     int `json:"currentPositions"`
	TotalTestimonials    int `json:"totalTestimonials"`
	FeaturedTestimonials int `json:"featuredTestimonials"`
}
