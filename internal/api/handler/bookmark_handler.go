package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/scholarfind/scholarship-api/internal/api/metrics"
	"github.com/scholarfind/scholarship-api/internal/core/ports"
)

// BookmarkHandler handles HTTP requests for the caller's bookmarks. All
// routes require authentication; the user id always comes from the verified
// token, never from the request.
type BookmarkHandler struct {
	service ports.BookmarkService
}

func NewBookmarkHandler(service ports.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{service: service}
}

// List handles GET /api/bookmarks.
//
// @Summary      List the caller's bookmarked scholarships
// @Tags         bookmarks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   scholarshipResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/bookmarks [get]
func (h *BookmarkHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	items, err := h.service.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toScholarshipListResponse(items))
}

// Add handles POST /api/bookmarks/:id.
//
// @Summary      Bookmark a scholarship
// @Tags         bookmarks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Scholarship id"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/bookmarks/{id} [post]
func (h *BookmarkHandler) Add(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	scholarshipID, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Add(c.Request().Context(), userID, scholarshipID); err != nil {
		return err
	}

	metrics.BookmarksTotal.WithLabelValues("add").Inc()

	return c.JSON(http.StatusOK, messageResponse{Message: "Bookmark added successfully!"})
}

// Remove handles DELETE /api/bookmarks/:id. Removal is idempotent: deleting
// an absent bookmark still reports success.
//
// @Summary      Remove a bookmark
// @Tags         bookmarks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Scholarship id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/bookmarks/{id} [delete]
func (h *BookmarkHandler) Remove(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	scholarshipID, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Remove(c.Request().Context(), userID, scholarshipID); err != nil {
		return err
	}

	metrics.BookmarksTotal.WithLabelValues("remove").Inc()

	return c.JSON(http.StatusOK, messageResponse{Message: "Bookmark removed successfully!"})
}
