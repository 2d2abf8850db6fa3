package authRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "github.com/SNAndreatta/prode-master/controllers/auth"
	"github.com/SNAndreatta/prode-master/middleware"
	validators "github.com/SNAndreatta/prode-master/validators/auth"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", validators.Signup(), controllers.Signup)
	authGroup.Post("/login", validators.Login(), controllers.Login)
	authGroup.Post("/refresh", controllers.Refresh)
	authGroup.Post("/logout", middleware.JWTMiddleware, controllers.Logout)
	authGroup.Get("/me", middleware.JWTMiddleware, controllers.Profile)
}
