package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marsestates/brokerage-api/internal/modules/serializer"
	"github.com/marsestates/brokerage-api/internal/modules/service"
)

type SettingsHandler struct {
	svc service.SettingsService
}

func NewSettingsHandler(s service.SettingsService) *SettingsHandler {
	return &SettingsHandler{svc: s}
}

type UpdateSettingsReq struct {
	CompanyPhone   *string `json:"companyPhone"`
	WhatsappNumber *string `json:"whatsappNumber"`
	HeroTitle      *string `json:"heroTitle"`
	HeroSubtitle   *string `json:"heroSubtitle"`
}

func (r UpdateSettingsReq) toUpdates() map[string]interface{} {
	u := map[string]interface{}{}
	if r.CompanyPhone != nil {
		u["company_phone"] = *r.CompanyPhone
	}
	if r.WhatsappNumber != nil {
		u["whatsapp_number"] = *r.WhatsappNumber
	}
	if r.HeroTitle != nil {
		u["hero_title"] = *r.HeroTitle
	}
	if r.HeroSubtitle != nil {
		u["hero_subtitle"] = *r.HeroSubtitle
	}
	return u
}

// GetSettings godoc
//
//	@Summary		Get site settings
//	@Description	Creates the default row on first read.
//	@Tags			settings
//	@Produce		json
//	@Success		200	{object}	model.Settings
//	@Router			/settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.svc.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.ServerErr(err))
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettings godoc
//
//	@Summary	Update site settings
//	@Tags		settings
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		payload	body		handler.UpdateSettingsReq	true	"Partial settings"
//	@Success	200		{object}	model.Settings
//	@Router		/settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ValidationErr(err))
		return
	}

	settings, err := h.svc.Update(c.Request.Context(), req.toUpdates())
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.ServerErr(err))
		return
	}
	c.JSON(http.StatusOK, settings)
}
