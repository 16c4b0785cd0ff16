package server

import (
	"github.com/gofiber/fiber/v2"

	"socialbook/internal/models"
)

// GetFriends handles GET /api/friends
func (s *Server) GetFriends(c *fiber.Ctx) error {
	friends, err := s.friendService.Friends(c.Context(), currentUserID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	if friends == nil {
		friends = []models.User{}
	}
	return c.JSON(fiber.Map{"friends": friends})
}

// AddFriend handles POST /api/friends/:userId/add
func (s *Server) AddFriend(c *fiber.Ctx) error {
	friendID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	friendIDs, svcErr := s.friendService.AddFriend(c.Context(), currentUserID(c), friendID)
	if svcErr != nil {
		return respondServiceError(c, svcErr)
	}
	return c.JSON(fiber.Map{"friends": friendIDs})
}
