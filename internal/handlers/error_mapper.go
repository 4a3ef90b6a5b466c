package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"catalogo/internal/repositories"
	"catalogo/internal/services"
)

// mapProductError translates the service error taxonomy to an HTTP response.
// action names the operation for the generic failure message, e.g.
// "creating the product".
func mapProductError(c *fiber.Ctx, err error, action string) error {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":   "Validation error.",
			"message": validationErr.Error(),
			"details": validationErr.Fields,
		})
	case errors.Is(err, repositories.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "Product not found.",
			"message": err.Error(),
		})
	default:
		log.Printf("Error %s: %v", action, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   fmt.Sprintf("An error occurred while %s.", action),
			"message": err.Error(),
		})
	}
}
