package tournamentController

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/SNAndreatta/prode-master/database"
	"github.com/SNAndreatta/prode-master/middleware"
	"github.com/SNAndreatta/prode-master/models"
	"github.com/SNAndreatta/prode-master/services"
	"github.com/SNAndreatta/prode-master/utils"
)

func serviceErrorResponse(c *fiber.Ctx, err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, notFoundMsg, nil)
	case errors.Is(err, services.ErrDuplicate):
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Already a participant!", nil)
	case errors.Is(err, services.ErrValidation):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	default:
		log.Printf("[TOURNAMENT] Unexpected error: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}
}

func tournamentIDParam(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

func CreateTournament(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	var reqData struct {
		Name            string `json:"name"`
		Description     string `json:"description"`
		IsPublic        *bool  `json:"is_public"`
		LeagueID        uint   `json:"league_id"`
		MaxParticipants int    `json:"max_participants"`
	}
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	tournament := models.Tournament{
		Name:        reqData.Name,
		Description: reqData.Description,
		IsPublic:    true,
		CreatorID:   userID,
		LeagueID:    reqData.LeagueID,
	}
	if reqData.IsPublic != nil {
		tournament.IsPublic = *reqData.IsPublic
	}
	if reqData.MaxParticipants > 0 {
		tournament.MaxParticipants = reqData.MaxParticipants
	}

	service := services.NewTournamentService(database.Database.Db)
	if err := service.Create(&tournament); err != nil {
		return serviceErrorResponse(c, err, "League not found!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Tournament created.", tournament)
}

func GetTournament(c *fiber.Ctx) error {
	tournamentID, ok := tournamentIDParam(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid tournament id!", nil)
	}

	service := services.NewTournamentService(database.Database.Db)
	tournament, err := service.GetByID(tournamentID)
	if err != nil {
		return serviceErrorResponse(c, err, "Tournament not found!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tournament fetched.", tournament)
}

func ListPublicTournaments(c *fiber.Ctx) error {
	leagueID := c.QueryInt("league_id")
	if leagueID < 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid league id!", nil)
	}

	service := services.NewTournamentService(database.Database.Db)
	tournaments, err := service.ListPublic(uint(leagueID))
	if err != nil {
		return serviceErrorResponse(c, err, "League not found!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tournaments fetched.", tournaments)
}

func ListMyTournaments(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	service := services.NewTournamentService(database.Database.Db)
	tournaments, err := service.ListByCreator(userID)
	if err != nil {
		return serviceErrorResponse(c, err, "User not found!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tournaments fetched.", tournaments)
}

func UpdateTournament(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	tournamentID, ok := tournamentIDParam(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid tournament id!", nil)
	}

	var reqData services.TournamentUpdate
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	service := services.NewTournamentService(database.Database.Db)
	tournament, err := service.Update(tournamentID, userID, reqData)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only the creator can update this tournament!", nil)
		}
		return serviceErrorResponse(c, err, "Tournament not found!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tournament updated.", tournament)
}

func DeleteTournament(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	tournamentID, ok := tournamentIDParam(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid tournament id!", nil)
	}

	service := services.NewTournamentService(database.Database.Db)
	if err := service.Delete(tournamentID, userID); err != nil {
		if errors.Is(err, services.ErrValidation) {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only the creator can delete this tournament!", nil)
		}
		return serviceErrorResponse(c, err, "Tournament not found!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tournament deleted.", nil)
}

func JoinTournament(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	tournamentID, ok := tournamentIDParam(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid tournament id!", nil)
	}

	service := services.NewTournamentService(database.Database.Db)
	participant, err := service.Join(tournamentID, userID)
	if err != nil {
		return serviceErrorResponse(c, err, "Tournament not found!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Joined tournament.", participant)
}

func LeaveTournament(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	tournamentID, ok := tournamentIDParam(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid tournament id!", nil)
	}

	service := services.NewTournamentService(database.Database.Db)
	left, err := service.Leave(tournamentID, userID)
	if err != nil {
		return serviceErrorResponse(c, err, "Tournament not found!")
	}
	if !left {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Not a participant!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Left tournament.", nil)
}

func RemoveParticipant(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	tournamentID, ok := tournamentIDParam(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid tournament id!", nil)
	}

	targetID, err := strconv.Atoi(c.Params("userId"))
	if err != nil || targetID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	service := services.NewTournamentService(database.Database.Db)
	removed, err := service.RemoveParticipant(tournamentID, userID, uint(targetID))
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, err.Error(), nil)
		}
		return serviceErrorResponse(c, err, "Tournament not found!")
	}
	if !removed {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Participant not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Participant removed.", nil)
}

func ListParticipants(c *fiber.Ctx) error {
	tournamentID, ok := tournamentIDParam(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid tournament id!", nil)
	}

	service := services.NewTournamentService(database.Database.Db)
	participants, err := service.Participants(tournamentID)
	if err != nil {
		return serviceErrorResponse(c, err, "Tournament not found!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Participants fetched.", participants)
}

// InviteToTournament emails an invitation. Only participants can invite,
// and the mail goes out in the background.
func InviteToTournament(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	tournamentID, ok := tournamentIDParam(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid tournament id!", nil)
	}

	var reqData struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&reqData); err != nil || reqData.Email == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db
	service := services.NewTournamentService(db)

	tournament, err := service.GetByID(tournamentID)
	if err != nil {
		return serviceErrorResponse(c, err, "Tournament not found!")
	}

	isMember, err := service.IsParticipant(tournamentID, userID)
	if err != nil {
		return serviceErrorResponse(c, err, "Tournament not found!")
	}
	if !isMember {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only participants can send invites!", nil)
	}

	var inviter models.User
	if err := db.First(&inviter, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	utils.SendTournamentInviteEmail(reqData.Email, inviter.Username, tournament.Name)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Invitation sent.", nil)
}

// TournamentLeaderboard serves the standings. Private tournaments are
// visible to the creator and participants only; anonymous callers can
// read public ones.
func TournamentLeaderboard(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(uint)

	tournamentID, ok := tournamentIDParam(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid tournament id!", nil)
	}

	db := database.Database.Db
	service := services.NewTournamentService(db)

	tournament, err := service.GetByID(tournamentID)
	if err != nil {
		return serviceErrorResponse(c, err, "Tournament not found!")
	}

	allowed, err := service.CanViewLeaderboard(tournament, userID)
	if err != nil {
		return serviceErrorResponse(c, err, "Tournament not found!")
	}
	if !allowed {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "This leaderboard is private!", nil)
	}

	standings, err := services.NewLeaderboardService(db).Leaderboard(tournament)
	if err != nil {
		return serviceErrorResponse(c, err, "Tournament not found!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Leaderboard fetched.", standings)
}
