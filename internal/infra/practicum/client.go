package practicum

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/sirupsen/logrus"
)

// Numbers decode as json.Number so the cursor keeps integer precision.
var bodyJSON = sonic.Config{UseNumber: true}.Froze()

// Client queries the homework statuses endpoint.
type Client struct {
	endpoint string
	token    string
	http     *http.Client
	logger   *logrus.Entry
}

// NewClient builds a client. A zero timeout leaves requests unbounded.
func NewClient(endpoint, token string, timeout time.Duration, logger *logrus.Entry) (*Client, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("empty endpoint specified")
	}
	return &Client{
		endpoint: endpoint,
		token:    token,
		http:     &http.Client{Timeout: timeout},
		logger:   logger,
	}, nil
}

// Fetch requests statuses changed since timestamp and returns the decoded JSON body.
// Every failure is returned as *ConnectivityError.
func (c *Client) Fetch(ctx context.Context, timestamp int64) (any, error) {
	params := RequestParams{Endpoint: c.endpoint, FromDate: timestamp}
	wrap := func(err error) error {
		return &ConnectivityError{Params: params, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, wrap(err)
	}
	req.Header.Set("Authorization", "OAuth "+c.token)
	q := req.URL.Query()
	q.Set("from_date", strconv.FormatInt(timestamp, 10))
	req.URL.RawQuery = q.Encode()

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.WithError(err).WithField("endpoint", c.endpoint).Error("Endpoint is unavailable")
		return nil, wrap(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.WithField("status_code", resp.StatusCode).Error("Endpoint returned unexpected status")
		return nil, wrap(&UnexpectedStatusError{Code: resp.StatusCode, Reason: http.StatusText(resp.StatusCode)})
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, wrap(fmt.Errorf("failed to read response body: %w", err))
	}

	var body any
	if err := bodyJSON.Unmarshal(data, &body); err != nil {
		return nil, wrap(fmt.Errorf("failed to decode response body: %w", err))
	}

	c.logger.Info("Endpoint is available.")
	return body, nil
}
