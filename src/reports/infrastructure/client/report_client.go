package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/Diamondarms/loja-sapatos-gateway/src/shared/infrastructure/config"
	"github.com/Diamondarms/loja-sapatos-gateway/src/shared/infrastructure/metrics"
)

// ReportClient cliente HTTP para la familia /Reports del backend.
// Los reportes se consumen como JSON opaco: el gateway no interpreta
// su contenido, solo lo transporta.
type ReportClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewReportClient crea una nueva instancia del cliente.
func NewReportClient() *ReportClient {
	return &ReportClient{
		httpClient: &http.Client{
			Timeout: config.BackendTimeout(),
		},
		baseURL: config.BackendBaseURL(),
	}
}

// GetReport ejecuta GET /Reports/<path>?<query> y devuelve el body crudo.
// Un body vacío es un resultado nulo exitoso.
func (c *ReportClient) GetReport(path string, query url.Values) (json.RawMessage, error) {
	reportURL := fmt.Sprintf("%s/Reports/%s", c.baseURL, path)
	if len(query) > 0 {
		reportURL += "?" + query.Encode()
	}

	req, err := http.NewRequest(http.MethodGet, reportURL, nil)
	if err != nil {
		metrics.ObserveBackend("reports", err)
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	metrics.ObserveBackend("reports", err)
	if err != nil {
		return nil, fmt.Errorf("error calling backend: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("backend returned status %d: %s", resp.StatusCode, string(body))
	}

	if len(body) == 0 {
		return json.RawMessage("null"), nil
	}

	return json.RawMessage(body), nil
}
