package tournamentValidator

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/SNAndreatta/prode-master/middleware"
)

var validate = validator.New()

type createTournamentBody struct {
	Name            string `json:"name" validate:"required,min=3,max=100"`
	Description     string `json:"description" validate:"max=500"`
	LeagueID        uint   `json:"league_id" validate:"required"`
	MaxParticipants int    `json:"max_participants" validate:"omitempty,min=2,max=1000"`
}

type updateTournamentBody struct {
	Name            *string `json:"name" validate:"omitempty,min=3,max=100"`
	Description     *string `json:"description" validate:"omitempty,max=500"`
	MaxParticipants *int    `json:"max_participants" validate:"omitempty,min=2,max=1000"`
}

type inviteBody struct {
	Email string `json:"email" validate:"required,email"`
}

func fieldErrors(err error) map[string]string {
	errors := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["body"] = "Invalid request body!"
		return errors
	}
	for _, fieldError := range validationErrors {
		switch fieldError.Tag() {
		case "required":
			errors[fieldError.Field()] = "This field is required!"
		case "email":
			errors[fieldError.Field()] = "Invalid email!"
		case "min":
			errors[fieldError.Field()] = "Value is too small!"
		case "max":
			errors[fieldError.Field()] = "Value is too large!"
		default:
			errors[fieldError.Field()] = "Invalid value!"
		}
	}
	return errors
}

// CreateTournament validator middleware
func CreateTournament() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(createTournamentBody)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		return c.Next()
	}
}

// UpdateTournament validator middleware
func UpdateTournament() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(updateTournamentBody)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		return c.Next()
	}
}

// Invite validator middleware
func Invite() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(inviteBody)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		return c.Next()
	}
}
