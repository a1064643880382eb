// Package qiitaapi provides a caller for the Qiita v2 items API. The date
// filter is pushed server-side through the search query string.

package qiitaapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/geeklink/ranking-service/cfg"
	"github.com/geeklink/ranking-service/internal/limiter"
	"github.com/geeklink/ranking-service/pkg/log"
)

type Caller struct {
	Logger      log.Logger
	Config      *cfg.Config
	rateLimiter *limiter.RateLimiter
	client      *http.Client
}

func NewCaller(logger log.Logger, config *cfg.Config) *Caller {
	timeout := time.Duration(config.QiitaApi.FetchTimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	rps := config.QiitaApi.RequestsPerSecond
	if rps <= 0 {
		// A zero cap would admit nothing and starve every fetch.
		rps = 10
	}
	return &Caller{
		Logger:      logger,
		Config:      config,
		rateLimiter: limiter.NewRateLimiter(rps),
		client:      &http.Client{Timeout: timeout},
	}
}

// Items fetches the articles created at or after createdSince, authenticated
// with the user's access token.
func (c *Caller) Items(ctx context.Context, accessToken string, createdSince time.Time) ([]Article, error) {
	throttle := time.Duration(c.Config.QiitaApi.ThrottleDelay) * time.Millisecond
	if err := c.rateLimiter.Wait(ctx, throttle); err != nil {
		return nil, err
	}

	dateFilter := fmt.Sprintf("created:>=%s", createdSince.UTC().Format(time.RFC3339))
	fullUrl := fmt.Sprintf("%s?query=%s", c.Config.QiitaApi.ItemsUrl, url.QueryEscape(dateFilter))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullUrl, nil)
	if err != nil {
		c.Logger.Error(ctx, "Cannot build Qiita API request: %v", err)
		return nil, err
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", accessToken))

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("qiita api returned %s", resp.Status)
	}

	var articles []Article
	if err := json.NewDecoder(resp.Body).Decode(&articles); err != nil {
		return nil, fmt.Errorf("failed to decode qiita items: %w", err)
	}

	return articles, nil
}
