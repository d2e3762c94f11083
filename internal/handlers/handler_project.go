package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/org_finance_app/internal/apperrors"
	"github.com/SscSPs/org_finance_app/internal/core/domain"
	portssvc "github.com/SscSPs/org_finance_app/internal/core/ports/services"
	"github.com/SscSPs/org_finance_app/internal/dto"
	"github.com/SscSPs/org_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// projectHandler handles HTTP requests related to projects.
type projectHandler struct {
	projectService portssvc.ProjectSvcFacade
}

// newProjectHandler creates a new projectHandler.
func newProjectHandler(ps portssvc.ProjectSvcFacade) *projectHandler {
	return &projectHandler{
		projectService: ps,
	}
}

// registerProjectReadRoutes registers the public read-only project routes.
func registerProjectReadRoutes(rg *gin.RouterGroup, projectService portssvc.ProjectSvcFacade) {
	h := newProjectHandler(projectService)

	projects := rg.Group("/projects")
	{
		projects.GET("", h.listProjects)
		projects.GET("/statuses", h.listStatuses)
		projects.GET("/:id", h.getProjectDetails)
	}
}

// registerProjectWriteRoutes registers the authenticated project mutations.
func registerProjectWriteRoutes(rg *gin.RouterGroup, projectService portssvc.ProjectSvcFacade) {
	h := newProjectHandler(projectService)

	projects := rg.Group("/projects")
	{
		projects.POST("", h.createProject)
		projects.PUT("/:id", h.updateProject)
		projects.DELETE("/:id", h.deleteProject)
		projects.PATCH("/status", h.batchUpdateStatus)
	}
}

// parseListFilter reads the listing query parameters.
func parseListFilter(c *gin.Context) (domain.ProjectFilter, error) {
	filter := domain.ProjectFilter{
		Search:    c.Query("search"),
		Status:    domain.ProjectStatus(c.Query("status")),
		SortBy:    c.DefaultQuery("sortBy", "implementation_date"),
		SortOrder: c.DefaultQuery("sortOrder", "desc"),
	}
	if v := c.Query("startDate"); v != "" {
		t, err := dto.ParseDate(v)
		if err != nil {
			return filter, errors.New("startDate must be YYYY-MM-DD")
		}
		filter.StartDate = &t
	}
	if v := c.Query("endDate"); v != "" {
		t, err := dto.ParseDate(v)
		if err != nil {
			return filter, errors.New("endDate must be YYYY-MM-DD")
		}
		filter.EndDate = &t
	}
	return filter, nil
}

// listProjects godoc
// @Summary List projects
// @Description Lists projects with their expense/revenue totals, optionally filtered and sorted
// @Tags projects
// @Produce  json
// @Param   search query string false "Match against name and description"
// @Param   status query string false "Filter by status"
// @Param   startDate query string false "Earliest implementation date (YYYY-MM-DD)"
// @Param   endDate query string false "Latest implementation date (YYYY-MM-DD)"
// @Param   sortBy query string false "Sort column" Enums(name, submission_date, implementation_date, expenses, revenue, net)
// @Param   sortOrder query string false "Sort direction" Enums(asc, desc)
// @Success 200 {array} dto.ProjectListItemResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 500 {object} map[string]string "Failed to list projects"
// @Router /projects [get]
func (h *projectHandler) listProjects(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	filter, err := parseListFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows, err := h.projectService.ListProjects(c.Request.Context(), filter)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to list projects", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list projects"})
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectListResponse(rows))
}

// listStatuses godoc
// @Summary List project statuses in use
// @Description Returns the distinct status values across all projects
// @Tags projects
// @Produce  json
// @Success 200 {array} string
// @Failure 500 {object} map[string]string "Failed to list statuses"
// @Router /projects/statuses [get]
func (h *projectHandler) listStatuses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	statuses, err := h.projectService.ListStatuses(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list statuses", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list statuses"})
		return
	}

	c.JSON(http.StatusOK, statuses)
}

// getProjectDetails godoc
// @Summary Get project details
// @Description Retrieves a project with its expense and revenue rows and derived totals
// @Tags projects
// @Produce  json
// @Param   id path string true "Project ID"
// @Success 200 {object} dto.ProjectDetailsResponse
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 500 {object} map[string]string "Failed to retrieve project"
// @Router /projects/{id} [get]
func (h *projectHandler) getProjectDetails(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("id")

	details, err := h.projectService.GetProjectDetails(c.Request.Context(), projectID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		logger.Error("Failed to get project details", slog.String("project_id", projectID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDetailsResponse(*details))
}

// createProject godoc
// @Summary Create a project
// @Description Creates a project together with its full expense and revenue sets in one transaction
// @Tags projects
// @Accept  json
// @Produce  json
// @Param   project body dto.SaveProjectRequest true "Project bundle"
// @Success 201 {object} dto.ProjectResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create project"
// @Security BearerAuth
// @Router /projects [post]
func (h *projectHandler) createProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SaveProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createProject", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create project", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToProjectResponse(*project))
}

// updateProject godoc
// @Summary Update a project
// @Description Replaces the project and its entire expense/revenue set in one transaction
// @Tags projects
// @Accept  json
// @Produce  json
// @Param   id path string true "Project ID"
// @Param   project body dto.SaveProjectRequest true "Project bundle"
// @Success 200 {object} dto.ProjectResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 500 {object} map[string]string "Failed to update project"
// @Security BearerAuth
// @Router /projects/{id} [put]
func (h *projectHandler) updateProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("id")

	var req dto.SaveProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateProject", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), projectID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		default:
			logger.Error("Failed to update project", slog.String("project_id", projectID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectResponse(*project))
}

// deleteProject godoc
// @Summary Delete a project
// @Description Removes the project and all of its expense and revenue rows
// @Tags projects
// @Produce  json
// @Param   id path string true "Project ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 500 {object} map[string]string "Failed to delete project"
// @Security BearerAuth
// @Router /projects/{id} [delete]
func (h *projectHandler) deleteProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("id")

	if err := h.projectService.DeleteProject(c.Request.Context(), projectID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		logger.Error("Failed to delete project", slog.String("project_id", projectID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}

	c.Status(http.StatusNoContent)
}

// batchUpdateStatus godoc
// @Summary Batch update project statuses
// @Description Validates every entry against the status-board vocabulary, then applies all updates in one transaction
// @Tags projects
// @Accept  json
// @Produce  json
// @Param   updates body dto.BatchStatusUpdateRequest true "Status changes"
// @Success 200 {object} map[string]int "Number of projects updated"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 500 {object} map[string]string "Failed to update statuses"
// @Security BearerAuth
// @Router /projects/status [patch]
func (h *projectHandler) batchUpdateStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.BatchStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for batchUpdateStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updates := make([]domain.StatusUpdate, len(req.Updates))
	for i, u := range req.Updates {
		updates[i] = domain.StatusUpdate{
			ProjectID: u.ProjectID,
			Status:    domain.ProjectStatus(u.Status),
		}
	}

	if err := h.projectService.BatchUpdateStatus(c.Request.Context(), updates); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "One or more projects not found"})
		default:
			logger.Error("Failed to apply batch status update", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update statuses"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": len(updates)})
}
