// Package repository is the CRUD façade over the hosted object store,
// one set of operations per entity variant. It normalizes the store's
// not-found into empty results for reads, applies the deterministic sort
// orders the dashboard relies on, and tags every failure with the
// operation and entity it belongs to.
package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"portfolio-dashboard/internal/domain"
	"portfolio-dashboard/pkg/apperrors"
	"portfolio-dashboard/pkg/cosmic"
	"portfolio-dashboard/pkg/format"
)

// Entity names used in error tags.
const (
	entityProjects     = "projects"
	entitySkills       = "skills"
	entityExperience   = "work experience"
	entityTestimonials = "testimonials"
)

// expandDepth resolves embedded references (images, logos) one level deep.
const expandDepth = 1

var listProps = []string{"id", "slug", "title", "type", "metadata", "created_at", "modified_at"}

type ContentRepo struct {
	client *cosmic.Client
}

func NewContentRepo(client *cosmic.Client) *ContentRepo {
	return &ContentRepo{client: client}
}

func (r *ContentRepo) findOpts() cosmic.FindOptions {
	return cosmic.FindOptions{Props: listProps, Depth: expandDepth}
}

// sortTime parses a record date for ordering; unparseable or absent
// dates collapse to the zero time and therefore sort last.
func sortTime(s string) time.Time {
	t, ok := format.ParseDate(s)
	if !ok {
		return time.Time{}
	}
	return t
}

// Projects

// ListProjects returns all projects, newest first by creation time. A
// not-found collection is an empty result, not an error.
func (r *ContentRepo) ListProjects(ctx context.Context) ([]domain.Project, error) {
	var projects []domain.Project
	err := r.client.Find(ctx, domain.TypeProjects, r.findOpts(), &projects)
	if errors.Is(err, cosmic.ErrNotFound) {
		return []domain.Project{}, nil
	}
	if err != nil {
		return nil, apperrors.FetchFailed(entityProjects, err)
	}
	sort.SliceStable(projects, func(i, j int) bool {
		return sortTime(projects[i].CreatedAt).After(sortTime(projects[j].CreatedAt))
	})
	return projects, nil
}

// GetProject returns the project with the given id, or nil when absent.
// An id belonging to a different entity type counts as absent.
func (r *ContentRepo) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	var p domain.Project
	err := r.client.FindOne(ctx, id, expandDepth, &p)
	if errors.Is(err, cosmic.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.FetchFailed(entityProjects, err)
	}
	if p.Type != domain.TypeProjects {
		return nil, nil
	}
	return &p, nil
}

func (r *ContentRepo) CreateProject(ctx context.Context, in domain.ProjectInput) (*domain.Project, error) {
	obj := cosmic.NewObject{
		Type:     domain.TypeProjects,
		Title:    in.Title(),
		Metadata: in.Metadata(),
	}
	var p domain.Project
	if err := r.client.InsertOne(ctx, obj, &p); err != nil {
		return nil, apperrors.CreateFailed(entityProjects, err)
	}
	return &p, nil
}

// UpdateProject replaces the project's metadata wholesale with the given
// object; fields absent from metadata do not survive.
func (r *ContentRepo) UpdateProject(ctx context.Context, id string, metadata map[string]any) (*domain.Project, error) {
	var p domain.Project
	if err := r.client.UpdateOne(ctx, id, metadata, &p); err != nil {
		return nil, apperrors.UpdateFailed(entityProjects, err)
	}
	return &p, nil
}

func (r *ContentRepo) DeleteProject(ctx context.Context, id string) error {
	if err := r.client.DeleteOne(ctx, id); err != nil {
		return apperrors.DeleteFailed(entityProjects, err)
	}
	return nil
}

// Skills

// ListSkills returns all skills in store order.
func (r *ContentRepo) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	var skills []domain.Skill
	err := r.client.Find(ctx, domain.TypeSkills, r.findOpts(), &skills)
	if errors.Is(err, cosmic.ErrNotFound) {
		return []domain.Skill{}, nil
	}
	if err != nil {
		return nil, apperrors.FetchFailed(entitySkills, err)
	}
	return skills, nil
}

func (r *ContentRepo) GetSkill(ctx context.Context, id string) (*domain.Skill, error) {
	var s domain.Skill
	err := r.client.FindOne(ctx, id, expandDepth, &s)
	if errors.Is(err, cosmic.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.FetchFailed(entitySkills, err)
	}
	if s.Type != domain.TypeSkills {
		return nil, nil
	}
	return &s, nil
}

func (r *ContentRepo) CreateSkill(ctx context.Context, in domain.SkillInput) (*domain.Skill, error) {
	obj := cosmic.NewObject{
		Type:     domain.TypeSkills,
		Title:    in.Title(),
		Metadata: in.Metadata(),
	}
	var s domain.Skill
	if err := r.client.InsertOne(ctx, obj, &s); err != nil {
		return nil, apperrors.CreateFailed(entitySkills, err)
	}
	return &s, nil
}

func (r *ContentRepo) UpdateSkill(ctx context.Context, id string, metadata map[string]any) (*domain.Skill, error) {
	var s domain.Skill
	if err := r.client.UpdateOne(ctx, id, metadata, &s); err != nil {
		return nil, apperrors.UpdateFailed(entitySkills, err)
	}
	return &s, nil
}

func (r *ContentRepo) DeleteSkill(ctx context.Context, id string) error {
	if err := r.client.DeleteOne(ctx, id); err != nil {
		return apperrors.DeleteFailed(entitySkills, err)
	}
	return nil
}

// Work experience

// ListWorkExperience returns all positions ordered by start date, most
// recent first. Records with a missing or unparseable start date sort
// last.
func (r *ContentRepo) ListWorkExperience(ctx context.Context) ([]domain.WorkExperience, error) {
	var experience []domain.WorkExperience
	err := r.client.Find(ctx, domain.TypeWorkExperience, r.findOpts(), &experience)
	if errors.Is(err, cosmic.ErrNotFound) {
		return []domain.WorkExperience{}, nil
	}
	if err != nil {
		return nil, apperrors.FetchFailed(entityExperience, err)
	}
	sort.SliceStable(experience, func(i, j int) bool {
		return sortTime(experience[i].Metadata.StartDate).After(sortTime(experience[j].Metadata.StartDate))
	})
	return experience, nil
}

func (r *ContentRepo) GetWorkExperience(ctx context.Context, id string) (*domain.WorkExperience, error) {
	var w domain.WorkExperience
	err := r.client.FindOne(ctx, id, expandDepth, &w)
	if errors.Is(err, cosmic.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.FetchFailed(entityExperience, err)
	}
	if w.Type != domain.TypeWorkExperience {
		return nil, nil
	}
	return &w, nil
}

func (r *ContentRepo) CreateWorkExperience(ctx context.Context, in domain.WorkExperienceInput) (*domain.WorkExperience, error) {
	obj := cosmic.NewObject{
		Type:     domain.TypeWorkExperience,
		Title:    in.Title(),
		Metadata: in.Metadata(),
	}
	var w domain.WorkExperience
	if err := r.client.InsertOne(ctx, obj, &w); err != nil {
		return nil, apperrors.CreateFailed(entityExperience, err)
	}
	return &w, nil
}

func (r *ContentRepo) UpdateWorkExperience(ctx context.Context, id string, metadata map[string]any) (*domain.WorkExperience, error) {
	var w domain.WorkExperience
	if err := r.client.UpdateOne(ctx, id, metadata, &w); err != nil {
		return nil, apperrors.UpdateFailed(entityExperience, err)
	}
	return &w, nil
}

func (r *ContentRepo) DeleteWorkExperience(ctx context.Context, id string) error {
	if err := r.client.DeleteOne(ctx, id); err != nil {
		return apperrors.DeleteFailed(entityExperience, err)
	}
	return nil
}

// Testimonials

// ListTestimonials returns all testimonials in store order.
func (r *ContentRepo) ListTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	var testimonials []domain.Testimonial
	err := r.client.Find(ctx, domain.TypeTestimonials, r.findOpts(), &testimonials)
	if errors.Is(err, cosmic.ErrNotFound) {
		return []domain.Testimonial{}, nil
	}
	if err != nil {
		return nil, apperrors.FetchFailed(entityTestimonials, err)
	}
	return testimonials, nil
}

func (r *ContentRepo) GetTestimonial(ctx context.Context, id string) (*domain.Testimonial, error) {
	var t domain.Testimonial
	err := r.client.FindOne(ctx, id, expandDepth, &t)
	if errors.Is(err, cosmic.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.FetchFailed(entityTestimonials, err)
	}
	if t.Type != domain.TypeTestimonials {
		return nil, nil
	}
	return &t, nil
}

func (r *ContentRepo) CreateTestimonial(ctx context.Context, in domain.TestimonialInput) (*domain.Testimonial, error) {
	obj := cosmic.NewObject{
		Type:     domain.TypeTestimonials,
		Title:    in.Title(),
		Metadata: in.Metadata(),
	}
	var t domain.Testimonial
	if err := r.client.InsertOne(ctx, obj, &t); err != nil {
		return nil, apperrors.CreateFailed(entityTestimonials, err)
	}
	return &t, nil
}

func (r *ContentRepo) UpdateTestimonial(ctx context.Context, id string, metadata map[string]any) (*domain.Testimonial, error) {
	var t domain.Testimonial
	if err := r.client.UpdateOne(ctx, id, metadata, &t); err != nil {
		return nil, apperrors.UpdateFailed(entityTestimonials, err)
	}
	return &t, nil
}

func (r *ContentRepo) DeleteTestimonial(ctx context.Context, id string) error {
	if err := r.client.DeleteOne(ctx, id); err != nil {
		return apperrors.DeleteFailed(entityTestimonials, err)
	}
	return nil
}
