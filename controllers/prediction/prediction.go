package predictionController

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/SNAndreatta/prode-master/database"
	"github.com/SNAndreatta/prode-master/middleware"
	"github.com/SNAndreatta/prode-master/services"
)

type predictionBody struct {
	MatchID       uint `json:"match_id"`
	GoalsHome     int  `json:"goals_home"`
	GoalsAway     int  `json:"goals_away"`
	PenaltiesHome *int `json:"penalties_home"`
	PenaltiesAway *int `json:"penalties_away"`
}

// serviceErrorResponse maps service sentinel errors onto the response
// envelope. Controllers call it after any service failure.
func serviceErrorResponse(c *fiber.Ctx, err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, notFoundMsg, nil)
	case errors.Is(err, services.ErrLocked):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Match has already started!", nil)
	case errors.Is(err, services.ErrDuplicate):
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Already exists!", nil)
	case errors.Is(err, services.ErrNotReady):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Match is not finished yet!", nil)
	case errors.Is(err, services.ErrValidation):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	default:
		log.Printf("[PREDICTION] Unexpected error: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}
}

// SavePrediction creates the caller's prediction for a match, or
// overwrites it when one already exists and the match has not started.
func SavePrediction(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	var reqData predictionBody
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	service := services.NewPredictionService(database.Database.Db)

	_, err := service.GetByUserAndFixture(userID, reqData.MatchID)
	if err != nil && !errors.Is(err, services.ErrNotFound) {
		return serviceErrorResponse(c, err, "Match not found!")
	}

	if errors.Is(err, services.ErrNotFound) {
		prediction, err := service.Create(userID, reqData.MatchID, reqData.GoalsHome, reqData.GoalsAway, reqData.PenaltiesHome, reqData.PenaltiesAway)
		if err != nil {
			return serviceErrorResponse(c, err, "Match not found!")
		}
		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Prediction saved.", prediction)
	}

	prediction, err := service.Update(userID, reqData.MatchID, reqData.GoalsHome, reqData.GoalsAway, reqData.PenaltiesHome, reqData.PenaltiesAway)
	if err != nil {
		return serviceErrorResponse(c, err, "Match not found!")
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Prediction updated.", prediction)
}

func ListPredictions(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	roundID := c.QueryInt("round_id")
	leagueID := c.QueryInt("league_id")
	matchID := c.QueryInt("match_id")
	if roundID < 0 || leagueID < 0 || matchID < 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Filter values cannot be negative!", nil)
	}

	filters := services.PredictionFilters{
		RoundID:   uint(roundID),
		LeagueID:  uint(leagueID),
		FixtureID: uint(matchID),
	}

	service := services.NewPredictionService(database.Database.Db)
	predictions, err := service.ListForUser(userID, filters)
	if err != nil {
		return serviceErrorResponse(c, err, "Round not found!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Predictions fetched.", predictions)
}

func DeletePrediction(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	matchID, err := strconv.Atoi(c.Params("matchId"))
	if err != nil || matchID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid match id!", nil)
	}

	service := services.NewPredictionService(database.Database.Db)
	deleted, err := service.Delete(userID, uint(matchID))
	if err != nil {
		return serviceErrorResponse(c, err, "Match not found!")
	}
	if !deleted {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Prediction not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Prediction deleted.", nil)
}

// ListMatchPredictions returns every prediction recorded for a match.
func ListMatchPredictions(c *fiber.Ctx) error {
	matchID, err := strconv.Atoi(c.Params("matchId"))
	if err != nil || matchID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid match id!", nil)
	}

	service := services.NewPredictionService(database.Database.Db)
	predictions, err := service.ListForFixture(uint(matchID))
	if err != nil {
		return serviceErrorResponse(c, err, "Match not found!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Predictions fetched.", predictions)
}

// AdminListMatchPredictions is the admin variant: predictions for a match
// together with the predicting usernames.
func AdminListMatchPredictions(c *fiber.Ctx) error {
	matchID, err := strconv.Atoi(c.Params("matchId"))
	if err != nil || matchID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid match id!", nil)
	}

	service := services.NewPredictionService(database.Database.Db)
	predictions, err := service.ListForFixtureWithUsers(uint(matchID))
	if err != nil {
		return serviceErrorResponse(c, err, "Match not found!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Predictions fetched.", predictions)
}

func PredictionStats(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	service := services.NewPredictionService(database.Database.Db)
	stats, err := service.Stats(userID)
	if err != nil {
		return serviceErrorResponse(c, err, "User not found!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stats fetched.", stats)
}

// ScoreMatch recalculates and persists prediction points for a finished
// match. Optional point overrides let an admin re-run with a custom
// scoring table.
func ScoreMatch(c *fiber.Ctx) error {
	var reqData struct {
		MatchID      uint `json:"match_id"`
		ExactPoints  *int `json:"exact_points"`
		WinnerPoints *int `json:"winner_points"`
		PenaltyBonus *int `json:"penalty_bonus"`
	}

	if err := c.BodyParser(&reqData); err != nil || reqData.MatchID == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	calculator := services.NewScoreCalculator(database.Database.Db)
	if reqData.ExactPoints != nil {
		calculator.Engine.ExactPoints = *reqData.ExactPoints
	}
	if reqData.WinnerPoints != nil {
		calculator.Engine.WinnerPoints = *reqData.WinnerPoints
	}
	if reqData.PenaltyBonus != nil {
		calculator.PenaltyBonus = *reqData.PenaltyBonus
	}

	summary, err := calculator.CalculateAndPersist(reqData.MatchID)
	if err != nil {
		return serviceErrorResponse(c, err, "Match not found!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Scores calculated.", summary)
}
