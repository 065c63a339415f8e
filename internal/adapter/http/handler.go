// Package http exposes the content repository and dashboard read models
// over a Fiber API consumed by the dashboard UI.
package http

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"portfolio-dashboard/internal/adapter/repository"
	"portfolio-dashboard/internal/domain"
	"portfolio-dashboard/internal/model"
	"portfolio-dashboard/internal/usecase"
	"portfolio-dashboard/pkg/apperrors"
)

type Handler struct {
	repo      *repository.ContentRepo
	dashboard *usecase.Dashboard
	log       *zap.Logger
}

func NewHandler(repo *repository.ContentRepo, dashboard *usecase.Dashboard, log *zap.Logger) *Handler {
	return &Handler{repo: repo, dashboard: dashboard, log: log}
}

// Register mounts all API routes on the app.
func (h *Handler) Register(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/dashboard/activity", h.RecentActivity)
	api.Get("/dashboard/stats", h.DashboardStats)

	api.Get("/projects", h.ListProjects)
	api.Post("/projects", h.CreateProject)
	api.Get("/projects/:id", h.GetProject)
	api.Patch("/projects/:id", h.UpdateProject)
	api.Delete("/projects/:id", h.DeleteProject)

	api.Get("/skills", h.ListSkills)
	api.Post("/skills", h.CreateSkill)
	api.Get("/skills/:id", h.GetSkill)
	api.Patch("/skills/:id", h.UpdateSkill)
	api.Delete("/skills/:id", h.DeleteSkill)

	api.Get("/work-experience", h.ListWorkExperience)
	api.Post("/work-experience", h.CreateWorkExperience)
	api.Get("/work-experience/:id", h.GetWorkExperience)
	api.Patch("/work-experience/:id", h.UpdateWorkExperience)
	api.Delete("/work-experience/:id", h.DeleteWorkExperience)

	api.Get("/testimonials", h.ListTestimonials)
	api.Post("/testimonials", h.CreateTestimonial)
	api.Get("/testimonials/:id", h.GetTestimonial)
	api.Patch("/testimonials/:id", h.UpdateTestimonial)
	api.Delete("/testimonials/:id", h.DeleteTestimonial)
}

// storeError logs the full failure and answers with the operation-level
// message only; store details never reach the client.
func (h *Handler) storeError(c *fiber.Ctx, err error) error {
	h.log.Error("store request failed", zap.Error(err))
	msg := "internal error"
	var entErr *apperrors.EntityError
	if errors.As(err, &entErr) {
		msg = fmt.Sprintf("failed to %s %s", entErr.Op, entErr.Entity)
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": msg})
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
}

// validateBody checks the raw body against the variant's input schema
// and returns it for decoding.
func validateBody(c *fiber.Ctx, entityType string) ([]byte, error) {
	body := c.Body()
	if err := model.ValidateInput(entityType, body); err != nil {
		return nil, err
	}
	return body, nil
}

// Dashboard

func (h *Handler) RecentActivity(c *fiber.Ctx) error {
	items, err := h.dashboard.RecentActivity(c.Context())
	if err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(items)
}

func (h *Handler) DashboardStats(c *fiber.Ctx) error {
	stats, err := h.dashboard.Stats(c.Context())
	if err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(stats)
}

// Projects

func (h *Handler) ListProjects(c *fiber.Ctx) error {
	projects, err := h.repo.ListProjects(c.Context())
	if err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(usecase.FilterProjects(projects, c.Query("search"), c.Query("filter")))
}

func (h *Handler) GetProject(c *fiber.Ctx) error {
	project, err := h.repo.GetProject(c.Context(), c.Params("id"))
	if err != nil {
		return h.storeError(c, err)
	}
	if project == nil {
		return notFound(c)
	}
	return c.JSON(project)
}

func (h *Handler) CreateProject(c *fiber.Ctx) error {
	body, err := validateBody(c, domain.TypeProjects)
	if err != nil {
		return badRequest(c, err)
	}
	var in domain.ProjectInput
	if err := json.Unmarshal(body, &in); err != nil {
		return badRequest(c, err)
	}
	project, err := h.repo.CreateProject(c.Context(), in)
	if err != nil {
		return h.storeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(project)
}

func (h *Handler) UpdateProject(c *fiber.Ctx) error {
	body, err := validateBody(c, domain.TypeProjects)
	if err != nil {
		return badRequest(c, err)
	}
	var metadata map[string]any
	if err := json.Unmarshal(body, &metadata); err != nil {
		return badRequest(c, err)
	}
	project, err := h.repo.UpdateProject(c.Context(), c.Params("id"), metadata)
	if err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(project)
}

func (h *Handler) DeleteProject(c *fiber.Ctx) error {
	if err := h.repo.DeleteProject(c.Context(), c.Params("id")); err != nil {
		return h.storeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Skills

func (h *Handler) ListSkills(c *fiber.Ctx) error {
	skills, err := h.repo.ListSkills(c.Context())
	if err != nil {
		return h.storeError(c, err)
	}
	if c.QueryBool("grouped") {
		return c.JSON(domain.GroupSkillsByCategory(skills))
	}
	return c.JSON(skills)
}

func (h *Handler) GetSkill(c *fiber.Ctx) error {
	skill, err := h.repo.GetSkill(c.Context(), c.Params("id"))
	if err != nil {
		return h.storeError(c, err)
	}
	if skill == nil {
		return notFound(c)
	}
	return c.JSON(skill)
}

func (h *Handler) CreateSkill(c *fiber.Ctx) error {
	body, err := validateBody(c, domain.TypeSkills)
	if err != nil {
		return badRequest(c, err)
	}
	var in domain.SkillInput
	if err := json.Unmarshal(body, &in); err != nil {
		return badRequest(c, err)
	}
	skill, err := h.repo.CreateSkill(c.Context(), in)
	if err != nil {
		return h.storeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(skill)
}

func (h *Handler) UpdateSkill(c *fiber.Ctx) error {
	body, err := validateBody(c, domain.TypeSkills)
	if err != nil {
		return badRequest(c, err)
	}
	var metadata map[string]any
	if err := json.Unmarshal(body, &metadata); err != nil {
		return badRequest(c, err)
	}
	skill, err := h.repo.UpdateSkill(c.Context(), c.Params("id"), metadata)
	if err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(skill)
}

func (h *Handler) DeleteSkill(c *fiber.Ctx) error {
	if err := h.repo.DeleteSkill(c.Context(), c.Params("id")); err != nil {
		return h.storeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Work experience

func (h *Handler) ListWorkExperience(c *fiber.Ctx) error {
	experience, err := h.repo.ListWorkExperience(c.Context())
	if err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(experience)
}

func (h *Handler) GetWorkExperience(c *fiber.Ctx) error {
	work, err := h.repo.GetWorkExperience(c.Context(), c.Params("id"))
	if err != nil {
		return h.storeError(c, err)
	}
	if work == nil {
		return notFound(c)
	}
	return c.JSON(work)
}

func (h *Handler) CreateWorkExperience(c *fiber.Ctx) error {
	body, err := validateBody(c, domain.TypeWorkExperience)
	if err != nil {
		return badRequest(c, err)
	}
	var in domain.WorkExperienceInput
	if err := json.Unmarshal(body, &in); err != nil {
		return badRequest(c, err)
	}
	work, err := h.repo.CreateWorkExperience(c.Context(), in)
	if err != nil {
		return h.storeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(work)
}

func (h *Handler) UpdateWorkExperience(c *fiber.Ctx) error {
	body, err := validateBody(c, domain.TypeWorkExperience)
	if err != nil {
		return badRequest(c, err)
	}
	var metadata map[string]any
	if err := json.Unmarshal(body, &metadata); err != nil {
		return badRequest(c, err)
	}
	work, err := h.repo.UpdateWorkExperience(c.Context(), c.Params("id"), metadata)
	if err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(work)
}

func (h *Handler) DeleteWorkExperience(c *fiber.Ctx) error {
	if err := h.repo.DeleteWorkExperience(c.Context(), c.Params("id")); err != nil {
		return h.storeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Testimonials

func (h *Handler) ListTestimonials(c *fiber.Ctx) error {
	testimonials, err := h.repo.ListTestimonials(c.Context())
	if err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(testimonials)
}

func (h *Handler) GetTestimonial(c *fiber.Ctx) error {
	testimonial, err := h.repo.GetTestimonial(c.Context(), c.Params("id"))
	if err != nil {
		return h.storeError(c, err)
	}
	if testimonial == nil {
		return notFound(c)
	}
	return c.JSON(testimonial)
}

func (h *Handler) CreateTestimonial(c *fiber.Ctx) error {
	body, err := validateBody(c, domain.TypeTestimonials)
	if err != nil {
		return badRequest(c, err)
	}
	var in domain.TestimonialInput
	if err := json.Unmarshal(body, &in); err != nil {
		return badRequest(c, err)
	}
	testimonial, err := h.repo.CreateTestimonial(c.Context(), in)
	if err != nil {
		return h.storeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(testimonial)
}

func (h *Handler) UpdateTestimonial(c *fiber.Ctx) error {
	body, err := validateBody(c, domain.TypeTestimonials)
	if err != nil {
		return badRequest(c, err)
	}
	var metadata map[string]any
	if err := json.Unmarshal(body, &metadata); err != nil {
		return badRequest(c, err)
	}
	testimonial, err := h.repo.UpdateTestimonial(c.Context(), c.Params("id"), metadata)
	if err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(testimonial)
}

func (h *Handler) DeleteTestimonial(c *fiber.Ctx) error {
	if err := h.repo.DeleteTestimonial(c.Context(), c.Params("id")); err != nil {
		return h.storeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
