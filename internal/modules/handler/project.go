package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/marsestates/brokerage-api/internal/modules/model"
	"github.com/marsestates/brokerage-api/internal/modules/serializer"
	"github.com/marsestates/brokerage-api/internal/modules/service"
)

type ProjectHandler struct {
	svc service.ProjectService
}

func NewProjectHandler(s service.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: s}
}

type CreateProjectReq struct {
	Name                        string  `json:"name" binding:"required"`
	Slug                        string  `json:"slug" binding:"required"`
	City                        string  `json:"city" binding:"required"`
	AppearsInResaleProjects     bool    `json:"appearsInResaleProjects"`
	AppearsInProjects           bool    `json:"appearsInProjects"`
	AppearsInAlexandriaProjects bool    `json:"appearsInAlexandriaProjects"`
	AppearsInAlexandriaResale   bool    `json:"appearsInAlexandriaResale"`
	LogoURL                     *string `json:"logoUrl"`
	ShortDescription            *string `json:"shortDescription"`
	Amenities                   *string `json:"amenities"`
}

type UpdateProjectReq struct {
	Name                        *string `json:"name"`
	Slug                        *string `json:"slug"`
	City                        *string `json:"city"`
	AppearsInResaleProjects     *bool   `json:"appearsInResaleProjects"`
	AppearsInProjects           *bool   `json:"appearsInProjects"`
	AppearsInAlexandriaProjects *bool   `json:"appearsInAlexandriaProjects"`
	AppearsInAlexandriaResale   *bool   `json:"appearsInAlexandriaResale"`
	LogoURL                     *string `json:"logoUrl"`
	ShortDescription            *string `json:"shortDescription"`
	Amenities                   *string `json:"amenities"`
}

// toUpdates maps only the present fields onto their columns so absent
// keys never overwrite stored values.
func (r UpdateProjectReq) toUpdates() map[string]interface{} {
	u := map[string]interface{}{}
	if r.Name != nil {
		u["name"] = *r.Name
	}
	if r.Slug != nil {
		u["slug"] = *r.Slug
	}
	if r.City != nil {
		u["city"] = *r.City
	}
	if r.AppearsInResaleProjects != nil {
		u["appears_in_resale_projects"] = *r.AppearsInResaleProjects
	}
	if r.AppearsInProjects != nil {
		u["appears_in_projects"] = *r.AppearsInProjects
	}
	if r.AppearsInAlexandriaProjects != nil {
		u["appears_in_alexandria_projects"] = *r.AppearsInAlexandriaProjects
	}
	if r.AppearsInAlexandriaResale != nil {
		u["appears_in_alexandria_resale"] = *r.AppearsInAlexandriaResale
	}
	if r.LogoURL != nil {
		u["logo_url"] = optText(r.LogoURL)
	}
	if r.ShortDescription != nil {
		u["short_description"] = optText(r.ShortDescription)
	}
	if r.Amenities != nil {
		u["amenities"] = optText(r.Amenities)
	}
	return u
}

// ListProjects godoc
//
//	@Summary	List projects
//	@Tags		projects
//	@Produce	json
//	@Success	200	{array}	model.Project
//	@Router		/projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.ServerErr(err))
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GetProject godoc
//
//	@Summary		Get one project
//	@Description	Looks up by numeric id, or by slug when the segment is not a number
//	@Tags			projects
//	@Produce		json
//	@Param			id	path		string	true	"Project id or slug"
//	@Success		200	{object}	model.Project
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Router			/projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	key := c.Param("id")

	var (
		project *model.Project
		err     error
	)
	if id, convErr := strconv.Atoi(key); convErr == nil {
		project, err = h.svc.GetByID(c.Request.Context(), id)
	} else {
		project, err = h.svc.GetBySlug(c.Request.Context(), key)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.ServerErr(err))
		return
	}
	if project == nil {
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("project"))
		return
	}
	c.JSON(http.StatusOK, project)
}

// CreateProject godoc
//
//	@Summary	Create project
//	@Tags		projects
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		payload	body		handler.CreateProjectReq	true	"Project payload"
//	@Success	200		{object}	model.Project
//	@Failure	400		{object}	serializer.ErrorResponse
//	@Router		/projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req CreateProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ValidationErr(err))
		return
	}

	project := model.Project{
		Name:                        req.Name,
		Slug:                        req.Slug,
		City:                        req.City,
		AppearsInResaleProjects:     req.AppearsInResaleProjects,
		AppearsInProjects:           req.AppearsInProjects,
		AppearsInAlexandriaProjects: req.AppearsInAlexandriaProjects,
		AppearsInAlexandriaResale:   req.AppearsInAlexandriaResale,
		LogoURL:                     optText(req.LogoURL),
		ShortDescription:            optText(req.ShortDescription),
		Amenities:                   optText(req.Amenities),
	}
	if err := h.svc.Create(c.Request.Context(), &project); err != nil {
		c.JSON(http.StatusInternalServerError, serializer.ServerErr(err))
		return
	}
	c.JSON(http.StatusOK, project)
}

// UpdateProject godoc
//
//	@Summary	Update project
//	@Tags		projects
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		int							true	"Project id"
//	@Param		payload	body		handler.UpdateProjectReq	true	"Partial payload"
//	@Success	200		{object}	model.Project
//	@Failure	404		{object}	serializer.ErrorResponse
//	@Router		/projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req UpdateProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ValidationErr(err))
		return
	}

	project, err := h.svc.Update(c.Request.Context(), id, req.toUpdates())
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.ServerErr(err))
		return
	}
	if project == nil {
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("project"))
		return
	}
	c.JSON(http.StatusOK, project)
}

// DeleteProject godoc
//
//	@Summary		Delete project
//	@Description	Cascades to the project's units, their images and the project gallery
//	@Tags			projects
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Project id"
//	@Success		200	{object}	map[string]bool
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Router			/projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	deleted, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.ServerErr(err))
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("project"))
		return
	}
	c.JSON(http.StatusOK, successBody())
}
