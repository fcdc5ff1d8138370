package handler

import (
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marsestates/brokerage-api/internal/modules/model"
	"github.com/marsestates/brokerage-api/internal/modules/repo"
	"github.com/marsestates/brokerage-api/internal/modules/serializer"
	"github.com/marsestates/brokerage-api/internal/modules/service"
	"github.com/marsestates/brokerage-api/internal/pkg/types"
)

// Multipart limits for unit creation.
const (
	maxUnitImages      = 10
	imagesField        = "images"
	paymentPlanField   = "paymentPlanPdf"
)

type UnitHandler struct {
	svc     service.UnitService
	uploads service.UploadService
	log     *zap.Logger
}

func NewUnitHandler(s service.UnitService, uploads service.UploadService, log *zap.Logger) *UnitHandler {
	return &UnitHandler{svc: s, uploads: uploads, log: log}
}

type ListUnitsReq struct {
	ProjectID *types.FlexInt `form:"projectId" json:"projectId"`
	MinArea   *types.FlexInt `form:"minArea" json:"minArea"`
	MaxArea   *types.FlexInt `form:"maxArea" json:"maxArea"`
	Bedrooms  *types.FlexInt `form:"bedrooms" json:"bedrooms"`
}

type CreateUnitReq struct {
	ProjectID *types.FlexInt `form:"projectId" json:"projectId" binding:"required"`
	Title     string         `form:"title" json:"title" binding:"required"`
	UnitCode  *string        `form:"unitCode" json:"unitCode"`

	PropertyType *string `form:"propertyType" json:"propertyType"`
	Type         string  `form:"type" json:"type" binding:"required,oneof=primary resale"`

	Price              *types.FlexInt `form:"price" json:"price" binding:"required"`
	OverPrice          *types.FlexInt `form:"overPrice" json:"overPrice"`
	TotalPaid          *types.FlexInt `form:"totalPaid" json:"totalPaid"`
	TotalPaidWithOver  *types.FlexInt `form:"totalPaidWithOver" json:"totalPaidWithOver"`
	InstallmentValue   *types.FlexInt `form:"installmentValue" json:"installmentValue"`
	MaintenanceDeposit *types.FlexInt `form:"maintenanceDeposit" json:"maintenanceDeposit"`
	RepaymentYears     *types.FlexInt `form:"repaymentYears" json:"repaymentYears"`

	Area      *types.FlexInt `form:"area" json:"area" binding:"required"`
	Bedrooms  *types.FlexInt `form:"bedrooms" json:"bedrooms" binding:"required"`
	Bathrooms *types.FlexInt `form:"bathrooms" json:"bathrooms" binding:"required"`

	Location string `form:"location" json:"location" binding:"required"`
	Status   string `form:"status" json:"status" binding:"required,oneof=available sold"`

	MainImageURL   *string `form:"mainImageUrl" json:"mainImageUrl"`
	Description    *string `form:"description" json:"description"`
	PaymentPlanPdf *string `form:"-" json:"paymentPlanPdf"`

	IsFeaturedOnHomepage bool `form:"isFeaturedOnHomepage" json:"isFeaturedOnHomepage"`
}

func (r CreateUnitReq) toModel() model.Unit {
	return model.Unit{
		ProjectID:            r.ProjectID.Int(),
		Title:                r.Title,
		UnitCode:             optText(r.UnitCode),
		PropertyType:         optText(r.PropertyType),
		Type:                 r.Type,
		Price:                r.Price.Int(),
		OverPrice:            types.IntPtr(r.OverPrice),
		TotalPaid:            types.IntPtr(r.TotalPaid),
		TotalPaidWithOver:    types.IntPtr(r.TotalPaidWithOver),
		InstallmentValue:     types.IntPtr(r.InstallmentValue),
		MaintenanceDeposit:   types.IntPtr(r.MaintenanceDeposit),
		RepaymentYears:       types.IntPtr(r.RepaymentYears),
		Area:                 r.Area.Int(),
		Bedrooms:             r.Bedrooms.Int(),
		Bathrooms:            r.Bathrooms.Int(),
		Location:             r.Location,
		Status:               r.Status,
		MainImageURL:         optText(r.MainImageURL),
		Description:          optText(r.Description),
		PaymentPlanPdf:       optText(r.PaymentPlanPdf),
		IsFeaturedOnHomepage: r.IsFeaturedOnHomepage,
	}
}

type UpdateUnitReq struct {
	ProjectID *types.FlexInt `json:"projectId"`
	Title     *string        `json:"title"`
	UnitCode  *string        `json:"unitCode"`

	PropertyType *string `json:"propertyType"`
	Type         *string `json:"type" binding:"omitempty,oneof=primary resale"`

	Price              *types.FlexInt `json:"price"`
	OverPrice          *types.FlexInt `json:"overPrice"`
	TotalPaid          *types.FlexInt `json:"totalPaid"`
	TotalPaidWithOver  *types.FlexInt `json:"totalPaidWithOver"`
	InstallmentValue   *types.FlexInt `json:"installmentValue"`
	MaintenanceDeposit *types.FlexInt `json:"maintenanceDeposit"`
	RepaymentYears     *types.FlexInt `json:"repaymentYears"`

	Area      *types.FlexInt `json:"area"`
	Bedrooms  *types.FlexInt `json:"bedrooms"`
	Bathrooms *types.FlexInt `json:"bathrooms"`

	Location *string `json:"location"`
	Status   *string `json:"status" binding:"omitempty,oneof=available sold"`

	MainImageURL   *string `json:"mainImageUrl"`
	Description    *string `json:"description"`
	PaymentPlanPdf *string `json:"paymentPlanPdf"`

	IsFeaturedOnHomepage *bool `json:"isFeaturedOnHomepage"`
}

func (r UpdateUnitReq) toUpdates() map[string]interface{} {
	u := map[string]interface{}{}
	// Non-nullable numeric columns take a blank input as "leave alone";
	// nullable ones take it as a clear, the same as blank text.
	if r.ProjectID != nil && r.ProjectID.Valid() {
		u["project_id"] = r.ProjectID.Int()
	}
	if r.Title != nil {
		u["title"] = *r.Title
	}
	if r.UnitCode != nil {
		u["unit_code"] = optText(r.UnitCode)
	}
	if r.PropertyType != nil {
		u["property_type"] = optText(r.PropertyType)
	}
	if r.Type != nil {
		u["type"] = *r.Type
	}
	if r.Price != nil && r.Price.Valid() {
		u["price"] = r.Price.Int()
	}
	if r.OverPrice != nil {
		u["over_price"] = types.IntPtr(r.OverPrice)
	}
	if r.TotalPaid != nil {
		u["total_paid"] = types.IntPtr(r.TotalPaid)
	}
	if r.TotalPaidWithOver != nil {
		u["total_paid_with_over"] = types.IntPtr(r.TotalPaidWithOver)
	}
	if r.InstallmentValue != nil {
		u["installment_value"] = types.IntPtr(r.InstallmentValue)
	}
	if r.MaintenanceDeposit != nil {
		u["maintenance_deposit"] = types.IntPtr(r.MaintenanceDeposit)
	}
	if r.RepaymentYears != nil {
		u["repayment_years"] = types.IntPtr(r.RepaymentYears)
	}
	if r.Area != nil && r.Area.Valid() {
		u["area"] = r.Area.Int()
	}
	if r.Bedrooms != nil && r.Bedrooms.Valid() {
		u["bedrooms"] = r.Bedrooms.Int()
	}
	if r.Bathrooms != nil && r.Bathrooms.Valid() {
		u["bathrooms"] = r.Bathrooms.Int()
	}
	if r.Location != nil {
		u["location"] = *r.Location
	}
	if r.Status != nil {
		u["status"] = *r.Status
	}
	if r.MainImageURL != nil {
		u["main_image_url"] = optText(r.MainImageURL)
	}
	if r.Description != nil {
		u["description"] = optText(r.Description)
	}
	if r.PaymentPlanPdf != nil {
		u["payment_plan_pdf"] = optText(r.PaymentPlanPdf)
	}
	if r.IsFeaturedOnHomepage != nil {
		u["is_featured_on_homepage"] = *r.IsFeaturedOnHomepage
	}
	return u
}

// ListUnits godoc
//
//	@Summary		List units
//	@Description	All filters are ANDed. bedrooms is a minimum, not an exact match. Each unit carries its project and resolved gallery.
//	@Tags			units
//	@Produce		json
//	@Param			projectId	query	int	false	"Exact project match"
//	@Param			minArea		query	int	false	"Inclusive lower area bound"
//	@Param			maxArea		query	int	false	"Inclusive upper area bound"
//	@Param			bedrooms	query	int	false	"Inclusive lower bedroom bound"
//	@Success		200	{array}	service.UnitView
//	@Router			/units [get]
func (h *UnitHandler) ListUnits(c *gin.Context) {
	var req ListUnitsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ValidationErr(err))
		return
	}

	units, err := h.svc.List(c.Request.Context(), repo.UnitFilters{
		ProjectID: types.IntPtr(req.ProjectID),
		MinArea:   types.IntPtr(req.MinArea),
		MaxArea:   types.IntPtr(req.MaxArea),
		Bedrooms:  types.IntPtr(req.Bedrooms),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.ServerErr(err))
		return
	}
	c.JSON(http.StatusOK, units)
}

// GetUnit godoc
//
//	@Summary	Get one unit
//	@Tags		units
//	@Produce	json
//	@Param		id	path		int	true	"Unit id"
//	@Success	200	{object}	service.UnitView
//	@Failure	404	{object}	serializer.ErrorResponse
//	@Router		/units/{id} [get]
func (h *UnitHandler) GetUnit(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	unit, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.ServerErr(err))
		return
	}
	if unit == nil {
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("unit"))
		return
	}
	c.JSON(http.StatusOK, unit)
}

// GetUnitByCode godoc
//
//	@Summary		Look up a unit by its human-readable code
//	@Description	Codes are not unique; the lowest id wins.
//	@Tags			units
//	@Produce		json
//	@Param			unitCode	path		string	true	"Unit code"
//	@Success		200			{object}	service.UnitCodeView
//	@Failure		404			{object}	serializer.ErrorResponse
//	@Router			/units/code/{unitCode} [get]
func (h *UnitHandler) GetUnitByCode(c *gin.Context) {
	code := strings.TrimSpace(c.Param("unitCode"))
	if code == "" {
		c.JSON(http.StatusBadRequest, serializer.ErrorResponse{Error: "invalid unitCode"})
		return
	}
	unit, err := h.svc.GetByCode(c.Request.Context(), code)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.ServerErr(err))
		return
	}
	if unit == nil {
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("unit"))
		return
	}
	c.JSON(http.StatusOK, unit)
}

// CreateUnit godoc
//
//	@Summary		Create unit
//	@Description	Accepts JSON or multipart/form-data. In multipart mode up to 10 `images` files and one `paymentPlanPdf` file are transferred to object storage and attached. With no uploaded images the unit snapshots the project gallery.
//	@Tags			units
//	@Accept			multipart/form-data
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	model.Unit
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Router			/units [post]
func (h *UnitHandler) CreateUnit(c *gin.Context) {
	ct := c.GetHeader("Content-Type")
	if strings.HasPrefix(ct, "multipart/form-data") {
		h.createUnitMultipart(c)
		return
	}

	var req CreateUnitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ValidationErr(err))
		return
	}
	unit := req.toModel()
	if err := h.svc.Create(c.Request.Context(), &unit); err != nil {
		c.JSON(http.StatusInternalServerError, serializer.ServerErr(err))
		return
	}
	c.JSON(http.StatusOK, unit)
}

func (h *UnitHandler) createUnitMultipart(c *gin.Context) {
	var req CreateUnitReq
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ValidationErr(err))
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ValidationErr(err))
		return
	}
	imageFiles := form.File[imagesField]
	planFiles := form.File[paymentPlanField]
	if len(imageFiles) > maxUnitImages {
		c.JSON(http.StatusBadRequest, serializer.ErrorResponse{
			Error:   "invalid payload",
			Details: []serializer.FieldError{{Field: imagesField, Message: "at most 10 files"}},
		})
		return
	}
	if len(planFiles) > 1 {
		c.JSON(http.StatusBadRequest, serializer.ErrorResponse{
			Error:   "invalid payload",
			Details: []serializer.FieldError{{Field: paymentPlanField, Message: "at most 1 file"}},
		})
		return
	}

	// Phase one: external transfers. The DB write comes after, so a
	// failure from here on can leave orphaned objects; they are logged
	// for manual cleanup, never rolled back.
	imageURLs, err := h.uploadAll(c, service.KeyPrefixUnitImages, imagesField, imageFiles)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.ServerErr(err))
		return
	}

	var planURL *string
	if len(planFiles) == 1 {
		urls, err := h.uploadAll(c, service.KeyPrefixUnitPlans, paymentPlanField, planFiles)
		if err != nil {
			h.logOrphans(imageURLs)
			c.JSON(http.StatusInternalServerError, serializer.ServerErr(err))
			return
		}
		planURL = &urls[0]
	}

	// Phase two: the unit row plus image rows.
	unit := req.toModel()
	if err := h.svc.CreateWithAssets(c.Request.Context(), &unit, imageURLs, planURL); err != nil {
		orphans := imageURLs
		if planURL != nil {
			orphans = append(orphans, *planURL)
		}
		h.logOrphans(orphans)
		c.JSON(http.StatusInternalServerError, serializer.ServerErr(err))
		return
	}
	c.JSON(http.StatusOK, unit)
}

func (h *UnitHandler) uploadAll(c *gin.Context, keyPrefix, field string, files []*multipart.FileHeader) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, fh := range files {
		url, err := h.uploads.UploadFile(c.Request.Context(), keyPrefix, field, fh)
		if err != nil {
			h.logOrphans(urls)
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func (h *UnitHandler) logOrphans(urls []string) {
	if len(urls) == 0 {
		return
	}
	h.log.Sugar().Errorw("unit creation left orphaned uploads", "urls", urls)
}

// UpdateUnit godoc
//
//	@Summary	Update unit
//	@Tags		units
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		int						true	"Unit id"
//	@Param		payload	body		handler.UpdateUnitReq	true	"Partial payload"
//	@Success	200		{object}	model.Unit
//	@Failure	404		{object}	serializer.ErrorResponse
//	@Router		/units/{id} [put]
func (h *UnitHandler) UpdateUnit(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req UpdateUnitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ValidationErr(err))
		return
	}

	unit, err := h.svc.Update(c.Request.Context(), id, req.toUpdates())
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.ServerErr(err))
		return
	}
	if unit == nil {
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("unit"))
		return
	}
	c.JSON(http.StatusOK, unit)
}

// DeleteUnit godoc
//
//	@Summary	Delete unit
//	@Tags		units
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"Unit id"
//	@Success	200	{object}	map[string]bool
//	@Failure	404	{object}	serializer.ErrorResponse
//	@Router		/units/{id} [delete]
func (h *UnitHandler) DeleteUnit(c *gin.Context) {
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
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("unit"))
		return
	}
	c.JSON(http.StatusOK, successBody())
}
