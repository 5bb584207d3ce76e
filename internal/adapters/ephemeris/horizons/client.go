// Package horizons implements ports.Ephemeris on top of the JPL Horizons
// REST API, one observer-table request per body.
package horizons

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/randomtoy/natal-go/internal/astro"
	"github.com/randomtoy/natal-go/internal/domain"
)

const DefaultBaseURL = "https://ssd.jpl.nasa.gov/api/horizons.api"

// commands maps bodies to Horizons target ids. Planets use their own
// centre (x99), not the barycentre.
var commands = map[domain.Body]string{
	domain.Sun:     "10",
	domain.Moon:    "301",
	domain.Mercury: "199",
	domain.Venus:   "299",
	domain.Mars:    "499",
	domain.Jupiter: "599",
	domain.Saturn:  "699",
	domain.Uranus:  "799",
	domain.Neptune: "899",
	domain.Pluto:   "999",
}

// Client implements ports.Ephemeris via JPL Horizons.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewClient(httpClient *http.Client, baseURL string, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     logger,
	}
}

type apiResponse struct {
	Result string `json:"result"`
	Error  string `json:"error"`
}

func (c *Client) Position(ctx context.Context, body domain.Body, t time.Time) (domain.CelestialBodyPosition, error) {
	command, ok := commands[body]
	if !ok {
		return domain.CelestialBodyPosition{}, fmt.Errorf("%w: %w: %s", domain.ErrEphemerisLookup, domain.ErrUnknownBody, body)
	}

	result, err := c.query(ctx, command, astro.JulianDay(t))
	if err != nil {
		return domain.CelestialBodyPosition{}, fmt.Errorf("%w: %w", domain.ErrEphemerisLookup, err)
	}

	pos, err := parseObserverTable(result)
	if err != nil {
		c.logger.DebugContext(ctx, "unparseable horizons result", "body", body.String(), "result", result)
		return domain.CelestialBodyPosition{}, fmt.Errorf("%w: parse %s: %w", domain.ErrEphemerisLookup, body, err)
	}
	pos.Body = body
	return pos, nil
}

func (c *Client) query(ctx context.Context, command string, jd float64) (string, error) {
	q := url.Values{}
	q.Set("format", "json")
	q.Set("COMMAND", quote(command))
	q.Set("OBJ_DATA", quote("NO"))
	q.Set("MAKE_EPHEM", quote("YES"))
	q.Set("EPHEM_TYPE", quote("OBSERVER"))
	q.Set("CENTER", quote("500@399"))
	q.Set("TLIST", quote(strconv.FormatFloat(jd, 'f', 6, 64)))
	q.Set("TLIST_TYPE", quote("JD"))
	q.Set("TIME_TYPE", quote("UT"))
	q.Set("QUANTITIES", quote("20,31"))
	q.Set("CSV_FORMAT", quote("YES"))
	q.Set("ANG_FORMAT", quote("DEG"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("http call: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("upstream status %d: %s", resp.StatusCode, truncate(string(respBody), 200))
	}

	var out apiResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if out.Error != "" {
		return "", fmt.Errorf("horizons error: %s", out.Error)
	}
	return out.Result, nil
}

func quote(s string) string { return "'" + s + "'" }

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
