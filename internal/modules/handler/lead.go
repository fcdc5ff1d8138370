package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marsestates/brokerage-api/internal/modules/model"
	"github.com/marsestates/brokerage-api/internal/modules/serializer"
	"github.com/marsestates/brokerage-api/internal/modules/service"
	"github.com/marsestates/brokerage-api/internal/pkg/types"
)

type LeadHandler struct {
	svc service.LeadService
}

func NewLeadHandler(s service.LeadService) *LeadHandler {
	return &LeadHandler{svc: s}
}

type CreateLeadReq struct {
	ProjectID *types.FlexInt `json:"projectId"`
	UnitID    *types.FlexInt `json:"unitId"`
	FullName  string         `json:"fullName" binding:"required"`
	Phone     string         `json:"phone" binding:"required"`
	Email     *string        `json:"email" binding:"omitempty,email"`
	Message   *string        `json:"message"`
}

// ListLeads godoc
//
//	@Summary	List inquiries
//	@Tags		leads
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	service.LeadView
//	@Router		/leads [get]
func (h *LeadHandler) ListLeads(c *gin.Context) {
	leads, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.ServerErr(err))
		return
	}
	c.JSON(http.StatusOK, leads)
}

// CreateLead godoc
//
//	@Summary		Submit an inquiry
//	@Description	Public endpoint. Referenced project/unit ids are stored as given, not existence-checked.
//	@Tags			leads
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		handler.CreateLeadReq	true	"Inquiry"
//	@Success		200		{object}	model.Lead
//	@Failure		400		{object}	serializer.ErrorResponse
//	@Router			/leads [post]
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var req CreateLeadReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ValidationErr(err))
		return
	}

	lead := model.Lead{
		ProjectID: types.IntPtr(req.ProjectID),
		UnitID:    types.IntPtr(req.UnitID),
		FullName:  req.FullName,
		Phone:     req.Phone,
		Email:     optText(req.Email),
		Message:   optText(req.Message),
	}
	if err := h.svc.Create(c.Request.Context(), &lead); err != nil {
		c.JSON(http.StatusInternalServerError, serializer.ServerErr(err))
		return
	}
	c.JSON(http.StatusOK, lead)
}

// DeleteLead godoc
//
//	@Summary	Delete an inquiry
//	@Tags		leads
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"Lead id"
//	@Success	200	{object}	map[string]bool
//	@Failure	404	{object}	serializer.ErrorResponse
//	@Router		/leads/{id} [delete]
func (h *LeadHandler) DeleteLead(c *gin.Context) {
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
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("lead"))
		return
	}
	c.JSON(http.StatusOK, successBody())
}
