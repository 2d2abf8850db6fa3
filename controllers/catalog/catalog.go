package catalogController

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/SNAndreatta/prode-master/cache"
	"github.com/SNAndreatta/prode-master/database"
	"github.com/SNAndreatta/prode-master/middleware"
	"github.com/SNAndreatta/prode-master/models"
	"github.com/SNAndreatta/prode-master/utils"
)

func GetCountries(c *fiber.Ctx) error {
	db := database.Database.Db

	var countries []models.Country
	if err := db.Order("name asc").Find(&countries).Error; err != nil {
		log.Printf("[CATALOG] Error fetching countries: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch countries!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Countries fetched.", countries)
}

// GetCountriesWithLeague lists only the countries that have at least one
// stored league.
func GetCountriesWithLeague(c *fiber.Ctx) error {
	db := database.Database.Db

	var countries []models.Country
	if err := db.Model(&models.Country{}).
		Joins("JOIN leagues ON leagues.country_name = countries.name").
		Distinct().
		Order("countries.name asc").
		Find(&countries).Error; err != nil {
		log.Printf("[CATALOG] Error fetching countries with leagues: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch countries!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Countries fetched.", countries)
}

func GetLeagues(c *fiber.Ctx) error {
	db := database.Database.Db

	query := db.Order("name asc")
	if country := c.Query("country"); country != "" {
		query = query.Where("country_name = ?", country)
	}

	var leagues []models.League
	if err := query.Find(&leagues).Error; err != nil {
		log.Printf("[CATALOG] Error fetching leagues: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch leagues!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Leagues fetched.", leagues)
}

func GetTeams(c *fiber.Ctx) error {
	leagueID, err := strconv.Atoi(c.Params("leagueId"))
	if err != nil || leagueID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid league id!", nil)
	}

	db := database.Database.Db

	if err := db.First(&models.League{}, leagueID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "League not found!", nil)
	}

	var teams []models.Team
	if err := db.Where("league_id = ?", leagueID).Order("name asc").Find(&teams).Error; err != nil {
		log.Printf("[CATALOG] Error fetching teams: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch teams!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Teams fetched.", teams)
}

func GetRounds(c *fiber.Ctx) error {
	leagueID, err := strconv.Atoi(c.Params("leagueId"))
	if err != nil || leagueID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid league id!", nil)
	}

	db := database.Database.Db

	var league models.League
	if err := db.First(&league, leagueID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "League not found!", nil)
	}

	query := db.Where("league_id = ?", league.ID)
	if season := c.QueryInt("season"); season > 0 {
		query = query.Where("season = ?", season)
	} else {
		query = query.Where("season = ?", league.Season)
	}

	var rounds []models.Round
	if err := query.Order("id asc").Find(&rounds).Error; err != nil {
		log.Printf("[CATALOG] Error fetching rounds: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch rounds!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Rounds fetched.", rounds)
}

// GetFixtures lists a league's fixtures, optionally narrowed to one
// round. Results come from the cache when it holds a fresh copy.
func GetFixtures(c *fiber.Ctx) error {
	leagueID, err := strconv.Atoi(c.Params("leagueId"))
	if err != nil || leagueID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid league id!", nil)
	}

	round := c.Query("round")

	if fixtures, ok := cache.GetFixtureList(c.Context(), uint(leagueID), round); ok {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Fixtures fetched.", fixtures)
	}

	db := database.Database.Db

	if err := db.First(&models.League{}, leagueID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "League not found!", nil)
	}

	query := db.Where("league_id = ?", leagueID)
	if round != "" {
		query = query.Where("round = ?", round)
	}

	var fixtures []models.Fixture
	if err := query.Order("date asc").Find(&fixtures).Error; err != nil {
		log.Printf("[CATALOG] Error fetching fixtures: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch fixtures!", nil)
	}

	cache.SetFixtureList(c.Context(), uint(leagueID), round, fixtures)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Fixtures fetched.", fixtures)
}

func GetFixture(c *fiber.Ctx) error {
	fixtureID, err := strconv.Atoi(c.Params("matchId"))
	if err != nil || fixtureID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid match id!", nil)
	}

	db := database.Database.Db

	var fixture models.Fixture
	if err := db.First(&fixture, fixtureID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Match not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Match fetched.", fixture)
}

// TriggerCatalogSync refreshes countries, leagues and teams from the
// feed. Admin only, runs inline so failures surface in the response.
func TriggerCatalogSync(c *fiber.Ctx) error {
	if err := utils.RunCatalogSync(); err != nil {
		log.Printf("[CATALOG] Catalog sync failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Catalog sync failed!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Catalog synced.", nil)
}

// TriggerFeedSync kicks the fixture sync outside the daily window.
func TriggerFeedSync(c *fiber.Ctx) error {
	go utils.RunFeedSync()

	return middleware.JsonResponse(c, fiber.StatusAccepted, true, "Fixture sync started.", nil)
}
