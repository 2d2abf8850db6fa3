package catalogRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "github.com/SNAndreatta/prode-master/controllers/catalog"
	"github.com/SNAndreatta/prode-master/middleware"
)

func SetupCatalogRoutes(app *fiber.App) {
	app.Get("/countries", controllers.GetCountries)
	app.Get("/countries_with_league", controllers.GetCountriesWithLeague)
	app.Get("/leagues", controllers.GetLeagues)
	app.Get("/leagues/:leagueId/teams", controllers.GetTeams)
	app.Get("/leagues/:leagueId/rounds", controllers.GetRounds)
	app.Get("/leagues/:leagueId/matches", controllers.GetFixtures)
	app.Get("/matches/:matchId", controllers.GetFixture)

	adminGroup := app.Group("/admin/sync")
	adminGroup.Post("/catalog", middleware.JWTMiddleware, middleware.AdminMiddleware, controllers.TriggerCatalogSync)
	adminGroup.Post("/fixtures", middleware.JWTMiddleware, middleware.AdminMiddleware, controllers.TriggerFeedSync)
}
