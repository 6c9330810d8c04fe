package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/casavia/realty-system/internal/api/metrics"
	"github.com/casavia/realty-system/internal/core/domain"
	"github.com/casavia/realty-system/internal/core/ports"
)

// maxImageUploadBytes bounds a single multipart image part.
const maxImageUploadBytes = 10 << 20

// PropertyHandler handles listing CRUD, search and image uploads.
type PropertyHandler struct {
	service ports.PropertyService
}

func NewPropertyHandler(service ports.PropertyService) *PropertyHandler {
	return &PropertyHandler{service: service}
}

type propertyRequest struct {
	Address     string  `json:"address"     validate:"required"`
	City        string  `json:"city"        validate:"required"`
	State       string  `json:"state"       validate:"required"`
	PostalCode  string  `json:"postal_code" validate:"required"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Bedrooms    int     `json:"bedrooms"    validate:"gte=0"`
	Bathrooms   int     `json:"bathrooms"   validate:"gte=0"`
	AreaSqft    float64 `json:"area_sqft"   validate:"gte=0"`
	Description string  `json:"description"`
	Type        string  `json:"type"        validate:"required,oneof=HOUSE APARTMENT CONDO LAND COMMERCIAL"`
	Status      string  `json:"status"      validate:"omitempty,oneof=AVAILABLE SOLD RENTED UNAVAILABLE"`
}

func (r propertyRequest) input() ports.CreatePropertyInput {
	return ports.CreatePropertyInput{
		Address:     r.Address,
		City:        r.City,
		State:       r.State,
		PostalCode:  r.PostalCode,
		Price:       r.Price,
		Bedrooms:    r.Bedrooms,
		Bathrooms:   r.Bathrooms,
		AreaSqft:    r.AreaSqft,
		Description: r.Description,
		Type:        domain.PropertyType(r.Type),
		Status:      domain.PropertyStatus(r.Status),
	}
}

// Create handles POST /api/properties. The owner is the authenticated caller;
// any owner field in the payload is ignored because none is bound.
//
// @Summary      Create a listing
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      propertyRequest  true  "Listing details"
// @Success      201   {object}  domain.Property
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/properties [post]
func (h *PropertyHandler) Create(c echo.Context) error {
	var req propertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	prop, err := h.service.Create(c.Request().Context(), ctxIdentity(c), req.input())
	if err != nil {
		return err
	}

	metrics.PropertiesCreatedTotal.WithLabelValues(string(prop.Type)).Inc()
	return c.JSON(http.StatusCreated, prop)
}

// Get handles GET /api/properties/:id.
//
// @Summary      Get a listing
// @Tags         properties
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Property ID"
// @Success      200  {object}  domain.Property
// @Failure      404  {object}  map[string]string
// @Router       /api/properties/{id} [get]
func (h *PropertyHandler) Get(c echo.Context) error {
	prop, err := h.service.Get(c.Request().Context(), ctxIdentity(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, prop)
}

// Search handles GET /api/properties. Filters come from query parameters;
// non-admin callers only ever see AVAILABLE listings.
//
// @Summary      Search listings
// @Tags         properties
// @Produce      json
// @Security     BearerAuth
// @Param        city           query     string  false  "City"
// @Param        type           query     string  false  "Property type"
// @Param        status         query     string  false  "Status (admin only)"
// @Param        min_price      query     number  false  "Minimum price"
// @Param        max_price      query     number  false  "Maximum price"
// @Param        min_bedrooms   query     int     false  "Minimum bedrooms"
// @Param        min_bathrooms  query     int     false  "Minimum bathrooms"
// @Success      200  {array}   domain.Property
// @Failure      401  {object}  map[string]string
// @Router       /api/properties [get]
func (h *PropertyHandler) Search(c echo.Context) error {
	filter := ports.PropertySearchFilter{
		Status: domain.PropertyStatus(c.QueryParam("status")),
		Type:   domain.PropertyType(c.QueryParam("type")),
		City:   c.QueryParam("city"),
	}
	filter.MinPrice, _ = strconv.ParseFloat(c.QueryParam("min_price"), 64)
	filter.MaxPrice, _ = strconv.ParseFloat(c.QueryParam("max_price"), 64)
	filter.MinBedrooms, _ = strconv.Atoi(c.QueryParam("min_bedrooms"))
	filter.MinBathrooms, _ = strconv.Atoi(c.QueryParam("min_bathrooms"))

	results, err := h.service.Search(c.Request().Context(), ctxIdentity(c), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, results)
}

// Update handles PUT /api/owner/properties/:id. Owner of the listing or admin.
//
// @Summary      Update a listing
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Property ID"
// @Param        body  body      propertyRequest  true  "Listing details"
// @Success      200   {object}  domain.Property
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/owner/properties/{id} [put]
func (h *PropertyHandler) Update(c echo.Context) error {
	var req propertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	prop, err := h.service.Update(c.Request().Context(), ctxIdentity(c), c.Param("id"), req.input())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, prop)
}

// Delete handles DELETE /api/owner/properties/:id. Owner of the listing or admin.
//
// @Summary      Delete a listing
// @Tags         properties
// @Security     BearerAuth
// @Param        id  path  string  true  "Property ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/owner/properties/{id} [delete]
func (h *PropertyHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), ctxIdentity(c), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// UploadImages handles POST /api/owner/properties/:id/images with multipart form
// files under the "images" field.
//
// @Summary      Upload listing images
// @Tags         properties
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id      path      string  true  "Property ID"
// @Param        images  formData  file    true  "Image files"
// @Success      200  {object}  map[string][]string
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/owner/properties/{id}/images [post]
func (h *PropertyHandler) UploadImages(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "multipart form required")
	}
	files := form.File["images"]
	if len(files) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "no images provided")
	}

	uploads := make([]ports.ImageUpload, 0, len(files))
	closers := make([]func() error, 0, len(files))
	defer func() {
		for _, close := range closers {
			_ = close()
		}
	}()

	for _, fh := range files {
		if fh.Size > maxImageUploadBytes {
			return echo.NewHTTPError(http.StatusBadRequest, "image too large")
		}
		src, err := fh.Open()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "unreadable upload")
		}
		closers = append(closers, src.Close)
		uploads = append(uploads, ports.ImageUpload{Filename: fh.Filename, Content: src})
	}

	refs, err := h.service.AttachImages(c.Request().Context(), ctxIdentity(c), c.Param("id"), uploads)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string][]string{"image_refs": refs})
}
