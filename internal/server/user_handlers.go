package server

import (
	"github.com/gofiber/fiber/v2"

	"socialbook/internal/models"
)

// GetUsers handles GET /api/users
func (s *Server) GetUsers(c *fiber.Ctx) error {
	p := parsePagination(c, 20)

	users, err := s.userService.ListUsers(c.Context(), p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	if users == nil {
		users = []models.User{}
	}
	return c.JSON(fiber.Map{"users": users})
}

// GetSuggestions handles GET /api/users/suggestions
func (s *Server) GetSuggestions(c *fiber.Ctx) error {
	viewerID := currentUserID(c)
	limit := c.QueryInt("limit", 10)

	suggestions, err := s.userService.Suggestions(c.Context(), viewerID, limit)
	if err != nil {
		return respondServiceError(c, err)
	}
	if suggestions == nil {
		suggestions = []models.User{}
	}
	return c.JSON(fiber.Map{"suggestions": suggestions})
}

// GetUserProfile handles GET /api/users/:id
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, svcErr := s.userService.GetUser(c.Context(), id)
	if svcErr != nil {
		return respondServiceError(c, svcErr)
	}
	return c.JSON(user)
}

// UpdateMyBio handles PUT /api/users/me
func (s *Server) UpdateMyBio(c *fiber.Ctx) error {
	var req struct {
		Bio string `json:"bio"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateBio(c.Context(), currentUserID(c), req.Bio)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}
