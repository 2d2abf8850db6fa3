package predictionValidator

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SNAndreatta/prode-master/middleware"
)

// SavePrediction validator middleware
func SavePrediction() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			MatchID       uint `json:"match_id"`
			GoalsHome     *int `json:"goals_home"`
			GoalsAway     *int `json:"goals_away"`
			PenaltiesHome *int `json:"penalties_home"`
			PenaltiesAway *int `json:"penalties_away"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.MatchID == 0 {
			errors["match_id"] = "Match id is required!"
		}

		if reqData.GoalsHome == nil {
			errors["goals_home"] = "Home goals are required!"
		} else if *reqData.GoalsHome < 0 {
			errors["goals_home"] = "Home goals cannot be negative!"
		}

		if reqData.GoalsAway == nil {
			errors["goals_away"] = "Away goals are required!"
		} else if *reqData.GoalsAway < 0 {
			errors["goals_away"] = "Away goals cannot be negative!"
		}

		// Penalties travel as a pair or not at all
		if (reqData.PenaltiesHome == nil) != (reqData.PenaltiesAway == nil) {
			errors["penalties"] = "Penalties require both home and away values!"
		}
		if reqData.PenaltiesHome != nil && *reqData.PenaltiesHome < 0 {
			errors["penalties_home"] = "Home penalties cannot be negative!"
		}
		if reqData.PenaltiesAway != nil && *reqData.PenaltiesAway < 0 {
			errors["penalties_away"] = "Away penalties cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}

// ScoreMatch validator middleware
func ScoreMatch() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			MatchID      uint `json:"match_id"`
			ExactPoints  *int `json:"exact_points"`
			WinnerPoints *int `json:"winner_points"`
			PenaltyBonus *int `json:"penalty_bonus"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.MatchID == 0 {
			errors["match_id"] = "Match id is required!"
		}

		if reqData.ExactPoints != nil && *reqData.ExactPoints < 0 {
			errors["exact_points"] = "Exact points cannot be negative!"
		}
		if reqData.WinnerPoints != nil && *reqData.WinnerPoints < 0 {
			errors["winner_points"] = "Winner points cannot be negative!"
		}
		if reqData.PenaltyBonus != nil && *reqData.PenaltyBonus < 0 {
			errors["penalty_bonus"] = "Penalty bonus cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}
