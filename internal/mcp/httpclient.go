package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/lkklausen/ironmax/internal/server"
	"github.com/lkklausen/ironmax/internal/strength"
)

// HTTPClient implements Calculator by calling the IronMax REST API.
// Used for remote MCP mode where the binary runs locally (stdio) but the
// calculator is served elsewhere (accessed over Tailscale).
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies Calculator.
var _ Calculator = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("httpclient: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("httpclient: %s: %s", path, apiErr.Error)
		}
		return nil, fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, body)
	}

	return body, nil
}

func liftParams(weight float64, reps int) url.Values {
	params := url.Values{}
	params.Set("weight", strconv.FormatFloat(weight, 'f', -1, 64))
	params.Set("reps", strconv.Itoa(reps))
	return params
}

func (c *HTTPClient) Estimate(ctx context.Context, weight float64, reps int, formula strength.Formula) (*server.EstimateResponse, error) {
	params := liftParams(weight, reps)
	params.Set("formula", formula.String())

	body, err := c.get(ctx, "/api/v1/onerm", params)
	if err != nil {
		return nil, err
	}

	var resp server.EstimateResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("httpclient: decode estimate: %w", err)
	}
	return &resp, nil
}

func (c *HTTPClient) Compare(ctx context.Context, weight float64, reps int) (*strength.Comparison, error) {
	body, err := c.get(ctx, "/api/v1/onerm/compare", liftParams(weight, reps))
	if err != nil {
		return nil, err
	}

	var cmp strength.Comparison
	if err := json.Unmarshal(body, &cmp); err != nil {
		return nil, fmt.Errorf("httpclient: decode comparison: %w", err)
	}
	return &cmp, nil
}

func (c *HTTPClient) Project(ctx context.Context, weight float64, reps int, formula strength.Formula,
	exp strength.Experience, nut strength.Nutrition, weeks int) (*server.ProjectionResponse, error) {
	params := liftParams(weight, reps)
	params.Set("formula", formula.String())
	params.Set("experience", exp.String())
	params.Set("nutrition", nut.String())
	params.Set("weeks", strconv.Itoa(weeks))

	body, err := c.get(ctx, "/api/v1/projection", params)
	if err != nil {
		return nil, err
	}

	var resp server.ProjectionResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("httpclient: decode projection: %w", err)
	}
	return &resp, nil
}
