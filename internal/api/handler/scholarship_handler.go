package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/scholarfind/scholarship-api/internal/api/metrics"
	"github.com/scholarfind/scholarship-api/internal/core/domain"
	"github.com/scholarfind/scholarship-api/internal/core/ports"
)

// ScholarshipHandler handles HTTP requests for scholarship listings.
type ScholarshipHandler struct {
	service ports.ScholarshipService
}

func NewScholarshipHandler(service ports.ScholarshipService) *ScholarshipHandler {
	return &ScholarshipHandler{service: service}
}

// List handles GET /api/scholarships.
//
// @Summary      List scholarships
// @Tags         scholarships
// @Produce      json
// @Param        category   query     string  false  "Exact category match"
// @Param        minAmount  query     number  false  "Inclusive lower amount bound"
// @Param        maxAmount  query     number  false  "Inclusive upper amount bound"
// @Param        location   query     string  false  "Case-insensitive location substring"
// @Param        search     query     string  false  "Substring match on title, provider or description"
// @Param        limit      query     int     false  "Maximum number of results"
// @Success      200        {array}   scholarshipResponse
// @Failure      500        {object}  map[string]string
// @Router       /api/scholarships [get]
func (h *ScholarshipHandler) List(c echo.Context) error {
	filter, err := parseListFilter(c)
	if err != nil {
		return err
	}

	items, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toScholarshipListResponse(items))
}

// Get handles GET /api/scholarships/:id.
//
// @Summary      Get a scholarship by id
// @Tags         scholarships
// @Produce      json
// @Param        id   path      int  true  "Scholarship id"
// @Success      200  {object}  scholarshipResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/scholarships/{id} [get]
func (h *ScholarshipHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	s, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toScholarshipResponse(s))
}

// Create handles POST /api/scholarships (admin only).
//
// @Summary      Add a scholarship
// @Tags         scholarships
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      scholarshipRequest  true  "Scholarship details"
// @Success      201   {object}  createScholarshipResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/scholarships [post]
func (h *ScholarshipHandler) Create(c echo.Context) error {
	var req scholarshipRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return domain.ErrMissingFields
	}

	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	id, err := h.service.Create(c.Request().Context(), toScholarshipInput(req), userID)
	if err != nil {
		return err
	}

	metrics.ScholarshipsCreatedTotal.WithLabelValues(req.Category).Inc()

	return c.JSON(http.StatusCreated, createScholarshipResponse{
		Message: "Scholarship added successfully!",
		ID:      id,
	})
}

// Update handles PUT /api/scholarships/:id (admin only). Updating an id with
// no matching row still reports success.
//
// @Summary      Update a scholarship
// @Tags         scholarships
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                 true  "Scholarship id"
// @Param        body  body      scholarshipRequest  true  "Full replacement fields"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/scholarships/{id} [put]
func (h *ScholarshipHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req scholarshipRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return domain.ErrMissingFields
	}

	if err := h.service.Update(c.Request().Context(), id, toScholarshipInput(req)); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Scholarship updated successfully!"})
}

// Delete handles DELETE /api/scholarships/:id (admin only). Like Update, a
// missing id is silent success.
//
// @Summary      Delete a scholarship
// @Tags         scholarships
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Scholarship id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  map[string]string
// @Router       /api/scholarships/{id} [delete]
func (h *ScholarshipHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Scholarship deleted successfully!"})
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

func parseListFilter(c echo.Context) (ports.ScholarshipFilter, error) {
	filter := ports.ScholarshipFilter{
		Category: c.QueryParam("category"),
		Location: c.QueryParam("location"),
		Search:   c.QueryParam("search"),
	}

	if v := c.QueryParam("minAmount"); v != "" {
		min, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return filter, echo.NewHTTPError(http.StatusBadRequest, "minAmount must be a number")
		}
		filter.MinAmount = &min
	}
	if v := c.QueryParam("maxAmount"); v != "" {
		max, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return filter, echo.NewHTTPError(http.StatusBadRequest, "maxAmount must be a number")
		}
		filter.MaxAmount = &max
	}
	if v := c.QueryParam("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			return filter, echo.NewHTTPError(http.StatusBadRequest, "limit must be a non-negative integer")
		}
		filter.Limit = limit
	}

	return filter, nil
}
