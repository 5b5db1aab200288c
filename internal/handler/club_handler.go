package handler

import (
	"strconv"

	apperrors "clubhub/internal/errors"
	"clubhub/internal/middleware"
	"clubhub/internal/models"
	"clubhub/internal/service"
	"clubhub/pkg/response"

	"github.com/gin-gonic/gin"
)

// ClubHandler handles HTTP requests for club operations.
type ClubHandler struct {
	service service.ClubServicer
}

// NewClubHandler creates a new ClubHandler.
func NewClubHandler(service service.ClubServicer) *ClubHandler {
	return &ClubHandler{service: service}
}

// CreateClub godoc
// @Summary      Create a new club
// @Description  Create a new club. The signed-in user becomes its first admin.
// @Tags         clubs
// @Accept       json
// @Produce      json
// @Param        body  body      models.CreateClubRequest  true  "Club details"
// @Success      201   {object}  response.Response{data=models.Club}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /clubs [post]
func (h *ClubHandler) CreateClub(c *gin.Context) {
	var req models.CreateClubRequest
	if err := decodeJSON(c, &req); err != nil {
		response.Fail(c, apperrors.BadRequest(err))
		return
	}

	club, err := h.service.CreateClub(c.Request.Context(), middleware.GetSession(c), &req)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Created(c, "Club created successfully", club)
}

// ListClubs godoc
// @Summary      List clubs
// @Description  Retrieve a paginated list of clubs. Signed-in callers see which clubs they joined.
// @Tags         clubs
// @Accept       json
// @Produce      json
// @Param        page   query     int  false  "Page number (default: 1)"
// @Param        limit  query     int  false  "Items per page (default: 10, max: 50)"
// @Success      200    {object}  response.Response{data=models.ClubListResponse}
// @Failure      500    {object}  response.Response
// @Router       /clubs [get]
func (h *ClubHandler) ListClubs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	result, err := h.service.ListClubs(c.Request.Context(), middleware.GetSession(c), page, limit)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, "Clubs found successfully", result)
}

// SearchClubs godoc
// @Summary      Search clubs
// @Description  Find clubs whose name contains the query, case-insensitively
// @Tags         clubs
// @Produce      json
// @Param        query  path      string  true  "Search text"
// @Success      200    {object}  response.Response{data=[]models.Club}
// @Failure      400    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Router       /clubs/clubs/{query} [get]
func (h *ClubHandler) SearchClubs(c *gin.Context) {
	clubs, err := h.service.SearchClubs(c.Request.Context(), c.Param("query"))
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, "Clubs found successfully", clubs)
}

// GetClub godoc
// @Summary      Get club details
// @Description  Retrieve a club by its name
// @Tags         clubs
// @Produce      json
// @Param        name  path      string  true  "Club name"
// @Success      200   {object}  response.Response{data=models.Club}
// @Failure      404   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Router       /clubs/{name} [get]
func (h *ClubHandler) GetClub(c *gin.Context) {
	club, err := h.service.GetClub(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, "Club found successfully", club)
}

// UpdateClub godoc
// @Summary      Update a club
// @Description  Update a club's description or interests. Requires the admin role in the club.
// @Tags         clubs
// @Accept       json
// @Produce      json
// @Param        name  path      string                    true  "Club name"
// @Param        body  body      models.UpdateClubRequest  true  "Fields to update"
// @Success      200   {object}  response.Response{data=models.Club}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /clubs/{name} [put]
func (h *ClubHandler) UpdateClub(c *gin.Context) {
	var req models.UpdateClubRequest
	if err := decodeJSON(c, &req); err != nil {
		response.Fail(c, apperrors.BadRequest(err))
		return
	}

	club, err := h.service.UpdateClub(c.Request.Context(), middleware.GetSession(c), c.Param("name"), &req)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, "Club updated successfully", club)
}

// DeleteClub godoc
// @Summary      Delete a club
// @Description  Delete a club with its events and memberships. Requires the admin role in the club.
// @Tags         clubs
// @Produce      json
// @Param        name  path      string  true  "Club name"
// @Success      200   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /clubs/{name} [delete]
func (h *ClubHandler) DeleteClub(c *gin.Context) {
	if err := h.service.DeleteClub(c.Request.Context(), middleware.GetSession(c), c.Param("name")); err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, "Club deleted successfully", nil)
}

// RequestImageUpload godoc
// @Summary      Request a club image upload URL
// @Description  Returns a presigned URL the client uploads the club image to. Requires the admin role in the club.
// @Tags         clubs
// @Accept       json
// @Produce      json
// @Param        name  path      string                     true  "Club name"
// @Param        body  body      models.ImageUploadRequest  true  "Image content type"
// @Success      200   {object}  response.Response{data=models.ImageUploadResponse}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /clubs/{name}/image [post]
func (h *ClubHandler) RequestImageUpload(c *gin.Context) {
	var req models.ImageUploadRequest
	if err := decodeJSON(c, &req); err != nil {
		response.Fail(c, apperrors.BadRequest(err))
		return
	}

	result, err := h.service.RequestImageUpload(c.Request.Context(), middleware.GetSession(c), c.Param("name"), &req)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, "Upload URL generated successfully", result)
}
