// Package reportes fetches incident reports from the external community
// reports GraphQL API.
package reportes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/firewatch-bo/chiquitos-backend/internal/domain"
)

const reportsQuery = `
    query ObtenerReportes {
        obtenerReportes {
            id
            nombre_reportante
            telefono_contacto
            fecha_hora
            nombre_lugar
            ubicacion {
                coordinates
            }
            tipo_incendio
            gravedad_incendio
        }
    }
`

// Client issues the obtenerReportes query against the configured endpoint.
type Client struct {
	url        string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client for the given GraphQL endpoint.
func NewClient(url string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "reportes"),
	}
}

// FetchReports retrieves the full current report list.
func (c *Client) FetchReports(ctx context.Context) ([]domain.IncidentReport, error) {
	body, err := json.Marshal(graphqlRequest{Query: reportsQuery})
	if err != nil {
		return nil, fmt.Errorf("reportes: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("reportes: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reportes: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("reportes: unexpected status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reportes: read body: %w", err)
	}

	var parsed graphqlResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("reportes: decode json: %w", err)
	}

	if len(parsed.Errors) > 0 {
		return nil, fmt.Errorf("reportes: graphql error: %s", parsed.Errors[0].Message)
	}

	reports, dropped := mapResponse(parsed.Data.ObtenerReportes)
	for _, id := range dropped {
		c.log.WarnContext(ctx, "report dropped: malformed coordinates", slog.String("report_id", id))
	}

	c.log.DebugContext(ctx, "reportes fetched", slog.Int("count", len(reports)))

	return reports, nil
}
