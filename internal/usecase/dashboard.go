package usecase

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"portfolio-dashboard/internal/domain"
	"portfolio-dashboard/pkg/format"
)

const (
	recentProjects     = 3
	recentExperience   = 2
	recentTestimonials = 2
	activityLimit      = 6
	descriptionMax     = 100
)

// Dashboard computes the derived overview views. It holds no state of
// its own; every call re-fetches from the store.
type Dashboard struct {
	store ContentStore
}

func NewDashboard(store ContentStore) *Dashboard {
	return &Dashboard{store: store}
}

// RecentActivity merges the newest records across projects, work
// experience and testimonials into one reverse-chronological timeline.
// The three lists are fetched concurrently; if any fetch fails the whole
// view fails.
func (d *Dashboard) RecentActivity(ctx context.Context) ([]ActivityItem, error) {
	var (
		projects     []domain.Project
		experience   []domain.WorkExperience
		testimonials []domain.Testimonial
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		projects, err = d.store.ListProjects(ctx)
		return err
	})
	g.Go(func() (err error) {
		experience, err = d.store.ListWorkExperience(ctx)
		return err
	})
	g.Go(func() (err error) {
		testimonials, err = d.store.ListTestimonials(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	items := make([]ActivityItem, 0, recentProjects+recentExperience+recentTestimonials)

	for _, p := range head(projects, recentProjects) {
		items = append(items, ActivityItem{
			ID:          p.ID,
			Type:        "project",
			Title:       p.Metadata.Name,
			Description: format.TruncateText(p.Metadata.Description, descriptionMax),
			Date:        p.CreatedAt,
			Href:        "/projects/" + p.ID,
		})
	}
	for _, w := range head(experience, recentExperience) {
		items = append(items, ActivityItem{
			ID:          w.ID,
			Type:        "work-experience",
			Title:       w.Metadata.JobTitle + " at " + w.Metadata.Company,
			Description: format.TruncateText(w.Metadata.Description, descriptionMax),
			Date:        w.CreatedAt,
			Href:        "/work-experience/" + w.ID,
		})
	}
	for _, t := range head(testimonials, recentTestimonials) {
		items = append(items, ActivityItem{
			ID:          t.ID,
			Type:        "testimonial",
			Title:       "Testimonial from " + t.Metadata.Name,
			Description: format.TruncateText(t.Metadata.Testimonial, descriptionMax),
			Date:        t.CreatedAt,
			Href:        "/testimonials/" + t.ID,
		})
	}

	// Stable sort keeps input order for equal dates so the timeline is
	// deterministic.
	sort.SliceStable(items, func(i, j int) bool {
		ti, _ := format.ParseDate(items[i].Date)
		tj, _ := format.ParseDate(items[j].Date)
		return ti.After(tj)
	})

	return head(items, activityLimit), nil
}

// Stats fetches all four collections concurrently and reduces them to
// the overview counters.
func (d *Dashboard) Stats(ctx context.Context) (*DashboardStats, error) {
	var (
		projects     []domain.Project
		skills       []domain.Skill
		experience   []domain.WorkExperience
		testimonials []domain.Testimonial
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		projects, err = d.store.ListProjects(ctx)
		return err
	})
	g.Go(func() (err error) {
		skills, err = d.store.ListSkills(ctx)
		return err
	})
	g.Go(func() (err error) {
		experience, err = d.store.ListWorkExperience(ctx)
		return err
	})
	g.Go(func() (err error) {
		testimonials, err = d.store.ListTestimonials(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TotalProjects:     len(projects),
		TotalSkills:       len(skills),
		TotalExperience:   len(experience),
		TotalTestimonials: len(testimonials),
	}
	for _, p := range projects {
		if p.Metadata.Featured {
			stats.FeaturedProjects++
		}
	}
	categories := make(map[string]struct{})
	for _, s := range skills {
		categories[s.Metadata.Category.Key] = struct{}{}
	}
	stats.SkillCategories = len(categories)
	for _, w := range experience {
		if w.Metadata.CurrentPosition {
			stats.CurrentPositions++
		}
	}
	for _, t := range testimonials {
		if t.Metadata.Featured {
			stats.FeaturedTestimonials++
		}
	}

	return stats, nil
}

func head[T any](items []T, n int) []T {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
