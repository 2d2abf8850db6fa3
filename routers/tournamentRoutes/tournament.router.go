package tournamentRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "github.com/SNAndreatta/prode-master/controllers/tournament"
	"github.com/SNAndreatta/prode-master/middleware"
	validators "github.com/SNAndreatta/prode-master/validators/tournament"
)

func SetupTournamentRoutes(app *fiber.App) {
	tournamentGroup := app.Group("/tournaments")

	tournamentGroup.Post("/", middleware.JWTMiddleware, validators.CreateTournament(), controllers.CreateTournament)
	tournamentGroup.Get("/", controllers.ListPublicTournaments)
	tournamentGroup.Get("/mine", middleware.JWTMiddleware, controllers.ListMyTournaments)
	tournamentGroup.Get("/:id", controllers.GetTournament)
	tournamentGroup.Put("/:id", middleware.JWTMiddleware, validators.UpdateTournament(), controllers.UpdateTournament)
	tournamentGroup.Delete("/:id", middleware.JWTMiddleware, controllers.DeleteTournament)

	tournamentGroup.Post("/:id/join", middleware.JWTMiddleware, controllers.JoinTournament)
	tournamentGroup.Post("/:id/leave", middleware.JWTMiddleware, controllers.LeaveTournament)
	tournamentGroup.Delete("/:id/participants/:userId", middleware.JWTMiddleware, controllers.RemoveParticipant)
	tournamentGroup.Get("/:id/participants", controllers.ListParticipants)
	tournamentGroup.Post("/:id/invite", middleware.JWTMiddleware, validators.Invite(), controllers.InviteToTournament)

	// Leaderboards on public tournaments are readable without a token
	tournamentGroup.Get("/:id/leaderboard", middleware.OptionalJWTMiddleware, controllers.TournamentLeaderboard)
}
