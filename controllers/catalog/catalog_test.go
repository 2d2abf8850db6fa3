package catalogController

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/SNAndreatta/prode-master/database"
	"github.com/SNAndreatta/prode-master/models"
)

func setupCatalogApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Country{}, &models.League{}))

	previous := database.Database
	database.Database = database.DbInstance{Db: db}

	t.Cleanup(func() {
		database.Database = previous
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	app := fiber.New()
	app.Get("/countries", GetCountries)
	app.Get("/countries_with_league", GetCountriesWithLeague)
	return app, db
}

func TestGetCountriesWithLeague(t *testing.T) {
	app, db := setupCatalogApp(t)

	argentina := models.Country{Name: "Argentina", Code: "AR"}
	brazil := models.Country{Name: "Brazil", Code: "BR"}
	iceland := models.Country{Name: "Iceland", Code: "IS"}
	require.NoError(t, db.Create(&argentina).Error)
	require.NoError(t, db.Create(&brazil).Error)
	require.NoError(t, db.Create(&iceland).Error)

	require.NoError(t, db.Create(&models.League{ID: 1, Name: "Liga Profesional", CountryName: "Argentina", Season: 2025}).Error)
	require.NoError(t, db.Create(&models.League{ID: 2, Name: "Primera Nacional", CountryName: "Argentina", Season: 2025}).Error)
	require.NoError(t, db.Create(&models.League{ID: 3, Name: "Serie A", CountryName: "Brazil", Season: 2025}).Error)

	req := httptest.NewRequest(http.MethodGet, "/countries_with_league", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data []models.Country `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	// Two leagues in Argentina still yield one row, Iceland has none.
	require.Len(t, body.Data, 2)
	assert.Equal(t, "Argentina", body.Data[0].Name)
	assert.Equal(t, "Brazil", body.Data[1].Name)
}

func TestGetCountriesListsAll(t *testing.T) {
	app, db := setupCatalogApp(t)

	require.NoError(t, db.Create(&models.Country{Name: "Argentina", Code: "AR"}).Error)
	require.NoError(t, db.Create(&models.Country{Name: "Brazil", Code: "BR"}).Error)

	req := httptest.NewRequest(http.MethodGet, "/countries", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data []models.Country `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Data, 2)
}
