package predictionRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "github.com/SNAndreatta/prode-master/controllers/prediction"
	"github.com/SNAndreatta/prode-master/middleware"
	validators "github.com/SNAndreatta/prode-master/validators/prediction"
)

func SetupPredictionRoutes(app *fiber.App) {
	predictionGroup := app.Group("/predictions")

	predictionGroup.Post("/", middleware.JWTMiddleware, validators.SavePrediction(), controllers.SavePrediction)
	predictionGroup.Get("/", middleware.JWTMiddleware, controllers.ListPredictions)
	predictionGroup.Get("/stats", middleware.JWTMiddleware, controllers.PredictionStats)
	predictionGroup.Get("/match/:matchId", middleware.JWTMiddleware, controllers.ListMatchPredictions)
	predictionGroup.Delete("/:matchId", middleware.JWTMiddleware, controllers.DeletePrediction)

	adminGroup := app.Group("/admin/predictions")
	adminGroup.Get("/match/:matchId", middleware.JWTMiddleware, middleware.AdminMiddleware, controllers.AdminListMatchPredictions)
	adminGroup.Post("/score", middleware.JWTMiddleware, middleware.AdminMiddleware, validators.ScoreMatch(), controllers.ScoreMatch)
}
