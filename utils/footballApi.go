package utils

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/SNAndreatta/prode-master/config"

	"github.com/go-resty/resty/v2"
)

// FootballApiClient wraps the api-football feed. Every call carries the
// rapidapi headers and a bounded timeout; callers treat each league batch
// as an independent unit of failure.
type FootballApiClient struct {
	client   *resty.Client
	endpoint string
}

// NewFootballApiClient builds a client from the loaded configuration.
func NewFootballApiClient() *FootballApiClient {
	client := resty.New().
		SetTimeout(15 * time.Second).
		SetHeader("x-rapidapi-host", "api-football-v1.p.rapidapi.com").
		SetHeader("x-rapidapi-key", config.AppConfig.FootballApiKey).
		SetHeader("Accept", "application/json")

	return &FootballApiClient{
		client:   client,
		endpoint: config.AppConfig.FootballApiURL,
	}
}

// CountryResponse is one country entry from the feed.
type CountryResponse struct {
	Name string `json:"name"`
	Code string `json:"code"`
	Flag string `json:"flag"`
}

// LeagueResponse is one league entry from the feed.
type LeagueResponse struct {
	League struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
		Logo string `json:"logo"`
	} `json:"league"`
	Country struct {
		Name string `json:"name"`
	} `json:"country"`
	Seasons []struct {
		Year    int  `json:"year"`
		Current bool `json:"current"`
	} `json:"seasons"`
}

// TeamResponse is one team entry from the feed.
type TeamResponse struct {
	Team struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
		Logo string `json:"logo"`
	} `json:"team"`
}

// FixtureResponse is one fixture entry. The feed nests the interesting
// fields several levels deep and omits anything unknown, so every leaf is
// either a pointer or checked for the zero value by the caller.
type FixtureResponse struct {
	Fixture struct {
		ID     uint   `json:"id"`
		Date   string `json:"date"` // ISO-8601 with offset
		Status struct {
			Short string `json:"short"`
		} `json:"status"`
	} `json:"fixture"`
	League struct {
		ID    uint   `json:"id"`
		Name  string `json:"name"`
		Round string `json:"round"`
	} `json:"league"`
	Teams struct {
		Home struct {
			ID uint `json:"id"`
		} `json:"home"`
		Away struct {
			ID uint `json:"id"`
		} `json:"away"`
	} `json:"teams"`
	Goals struct {
		Home *int `json:"home"`
		Away *int `json:"away"`
	} `json:"goals"`
	Score struct {
		Penalty struct {
			Home *int `json:"home"`
			Away *int `json:"away"`
		} `json:"penalty"`
	} `json:"score"`
}

// envelope is the feed's top-level wrapper; only response matters here.
type envelope struct {
	Response json.RawMessage `json:"response"`
}

func (c *FootballApiClient) get(path string, query map[string]string, out interface{}) error {
	resp, err := c.client.R().
		SetQueryParams(query).
		Get(c.endpoint + path)
	if err != nil {
		return fmt.Errorf("feed request failed: %w", err)
	}
	if resp.StatusCode() != 200 {
		return fmt.Errorf("feed returned status %d: %s", resp.StatusCode(), resp.String())
	}

	var wrapper envelope
	if err := json.Unmarshal(resp.Body(), &wrapper); err != nil {
		return fmt.Errorf("failed to parse feed envelope: %w", err)
	}
	if err := json.Unmarshal(wrapper.Response, out); err != nil {
		return fmt.Errorf("failed to parse feed response: %w", err)
	}
	return nil
}

// Countries fetches the feed's country list.
func (c *FootballApiClient) Countries() ([]CountryResponse, error) {
	var countries []CountryResponse
	err := c.get("/countries", nil, &countries)
	return countries, err
}

// Leagues fetches the current leagues for a country.
func (c *FootballApiClient) Leagues(country string) ([]LeagueResponse, error) {
	var leagues []LeagueResponse
	err := c.get("/leagues", map[string]string{"country": country, "current": "true"}, &leagues)
	return leagues, err
}

// Teams fetches the teams of a league season.
func (c *FootballApiClient) Teams(leagueID uint, season int) ([]TeamResponse, error) {
	var teams []TeamResponse
	err := c.get("/teams", map[string]string{
		"league": fmt.Sprintf("%d", leagueID),
		"season": fmt.Sprintf("%d", season),
	}, &teams)
	return teams, err
}

// Rounds fetches the round labels of a league season.
func (c *FootballApiClient) Rounds(leagueID uint, season int) ([]string, error) {
	var rounds []string
	err := c.get("/fixtures/rounds", map[string]string{
		"league": fmt.Sprintf("%d", leagueID),
		"season": fmt.Sprintf("%d", season),
	}, &rounds)
	return rounds, err
}

// Fixtures fetches a league season's fixtures inside a date window.
func (c *FootballApiClient) Fixtures(leagueID uint, season int, from, to string) ([]FixtureResponse, error) {
	query := map[string]string{
		"league": fmt.Sprintf("%d", leagueID),
		"season": fmt.Sprintf("%d", season),
	}
	if from != "" && to != "" {
		query["from"] = from
		query["to"] = to
	}

	var fixtures []FixtureResponse
	err := c.get("/fixtures", query, &fixtures)
	return fixtures, err
}

// ParseFeedDate converts a feed kickoff timestamp (ISO-8601 with offset)
// to UTC. Returns nil for empty or malformed values rather than failing
// the fixture.
func ParseFeedDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil
	}
	utc := parsed.UTC()
	return &utc
}
