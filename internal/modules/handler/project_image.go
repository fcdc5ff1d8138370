package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marsestates/brokerage-api/internal/modules/repo"
	"github.com/marsestates/brokerage-api/internal/modules/serializer"
)

type ProjectImageHandler struct {
	images repo.ImageRepo
}

func NewProjectImageHandler(images repo.ImageRepo) *ProjectImageHandler {
	return &ProjectImageHandler{images: images}
}

type CreateProjectImageReq struct {
	ImageURL string `json:"imageUrl" binding:"required,url"`
}

// ListProjectImages godoc
//
//	@Summary		List project gallery
//	@Description	These images double as the fallback gallery for units without images
//	@Tags			project-images
//	@Produce		json
//	@Param			id	path	int	true	"Project id"
//	@Success		200	{array}	model.ProjectImage
//	@Router			/projects/{id}/images [get]
func (h *ProjectImageHandler) ListProjectImages(c *gin.Context) {
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}
	images, err := h.images.ListProjectImages(c.Request.Context(), projectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.ServerErr(err))
		return
	}
	c.JSON(http.StatusOK, images)
}

// CreateProjectImage godoc
//
//	@Summary	Append one image to a project gallery
//	@Tags		project-images
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		int								true	"Project id"
//	@Param		payload	body		handler.CreateProjectImageReq	true	"Image URL"
//	@Success	200		{object}	model.ProjectImage
//	@Router		/projects/{id}/images [post]
func (h *ProjectImageHandler) CreateProjectImage(c *gin.Context) {
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req CreateProjectImageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ValidationErr(err))
		return
	}

	img, err := h.images.CreateProjectImage(c.Request.Context(), projectID, req.ImageURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.ServerErr(err))
		return
	}
	c.JSON(http.StatusOK, img)
}

// DeleteProjectImage godoc
//
//	@Summary	Delete one gallery image
//	@Tags		project-images
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"Image id"
//	@Success	200	{object}	map[string]bool
//	@Router		/project-images/{id} [delete]
func (h *ProjectImageHandler) DeleteProjectImage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.images.DeleteProjectImage(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, serializer.ServerErr(err))
		return
	}
	c.JSON(http.StatusOK, successBody())
}

// ClearProjectImages godoc
//
//	@Summary	Delete every image of a project gallery
//	@Tags		project-images
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"Project id"
//	@Success	200	{object}	map[string]bool
//	@Router		/projects/{id}/images [delete]
func (h *ProjectImageHandler) ClearProjectImages(c *gin.Context) {
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.images.DeleteAllProjectImages(c.Request.Context(), projectID); err != nil {
		c.JSON(http.StatusInternalServerError, serializer.ServerErr(err))
		return
	}
	c.JSON(http.StatusOK, successBody())
}
