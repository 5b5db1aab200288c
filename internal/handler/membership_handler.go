package handler

import (
	apperrors "clubhub/internal/errors"
	"clubhub/internal/middleware"
	"clubhub/internal/models"
	"clubhub/internal/service"
	"clubhub/pkg/response"

	"github.com/gin-gonic/gin"
)

// MembershipHandler handles HTTP requests for club membership.
type MembershipHandler struct {
	service service.MembershipServicer
}

// NewMembershipHandler creates a new MembershipHandler.
func NewMembershipHandler(service service.MembershipServicer) *MembershipHandler {
	return &MembershipHandler{service: service}
}

// JoinClub godoc
// @Summary      Join a club
// @Description  Add the signed-in user to the club as a member
// @Tags         membership
// @Produce      json
// @Param        name  path      string  true  "Club name"
// @Success      201   {object}  response.Response{data=models.ClubRole}
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /clubs/{name}/join [post]
func (h *MembershipHandler) JoinClub(c *gin.Context) {
	role, err := h.service.JoinClub(c.Request.Context(), middleware.GetSession(c), c.Param("name"))
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Created(c, "Joined club successfully", role)
}

// LeaveClub godoc
// @Summary      Leave a club
// @Description  Remove the signed-in user from the club. The last admin cannot leave.
// @Tags         membership
// @Produce      json
// @Param        name  path      string  true  "Club name"
// @Success      200   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /clubs/{name}/join [delete]
func (h *MembershipHandler) LeaveClub(c *gin.Context) {
	if err := h.service.LeaveClub(c.Request.Context(), middleware.GetSession(c), c.Param("name")); err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, "Left club successfully", nil)
}

// GetMyRole godoc
// @Summary      Get my role in a club
// @Tags         membership
// @Produce      json
// @Param        name  path      string  true  "Club name"
// @Success      200   {object}  response.Response{data=models.RoleResponse}
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /clubs/{name}/role [get]
func (h *MembershipHandler) GetMyRole(c *gin.Context) {
	role, err := h.service.GetMyRole(c.Request.Context(), middleware.GetSession(c), c.Param("name"))
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, "Role found successfully", role)
}

// ListMembers godoc
// @Summary      List club members
// @Description  Retrieve all memberships of a club. Requires the admin role in the club.
// @Tags         membership
// @Produce      json
// @Param        name  path      string  true  "Club name"
// @Success      200   {object}  response.Response{data=models.MemberListResponse}
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /clubs/{name}/members [get]
func (h *MembershipHandler) ListMembers(c *gin.Context) {
	result, err := h.service.ListMembers(c.Request.Context(), middleware.GetSession(c), c.Param("name"))
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, "Members found successfully", result)
}

// UpdateMemberRole godoc
// @Summary      Change a member's role
// @Description  Promote or demote a club member. Requires the admin role in the club.
// @Tags         membership
// @Accept       json
// @Produce      json
// @Param        name   path      string                    true  "Club name"
// @Param        email  path      string                    true  "Member email"
// @Param        body   body      models.UpdateRoleRequest  true  "New role"
// @Success      200    {object}  response.Response{data=models.ClubRole}
// @Failure      400    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Failure      409    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Security     BearerAuth
// @Router       /clubs/{name}/members/{email}/role [put]
func (h *MembershipHandler) UpdateMemberRole(c *gin.Context) {
	var req models.UpdateRoleRequest
	if err := decodeJSON(c, &req); err != nil {
		response.Fail(c, apperrors.BadRequest(err))
		return
	}

	role, err := h.service.UpdateMemberRole(c.Request.Context(), middleware.GetSession(c), c.Param("name"), c.Param("email"), &req)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, "Role updated successfully", role)
}

// ListMyClubs godoc
// @Summary      List my clubs
// @Description  Retrieve the clubs the signed-in user belongs to, with their role in each
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.ClubWithRole}
// @Failure      403  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /users/me/clubs [get]
func (h *MembershipHandler) ListMyClubs(c *gin.Context) {
	clubs, err := h.service.ListMyClubs(c.Request.Context(), middleware.GetSession(c))
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, "Clubs found successfully", clubs)
}
