// Package githubapi provides a caller for the GitHub GraphQL API used by the
// ranking updaters. Each call authenticates with the per-user access token
// passed in by the caller; no default credential state is kept on the client.

package githubapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/geeklink/ranking-service/cfg"
	"github.com/geeklink/ranking-service/internal/limiter"
	"github.com/geeklink/ranking-service/pkg/log"
)

const contributionCalendarQuery = `
query($username: String!, $from: DateTime!, $to: DateTime!) {
  user(login: $username) {
    contributionsCollection(from: $from, to: $to) {
      contributionCalendar {
        weeks {
          contributionDays {
            date
            contributionCount
          }
        }
      }
    }
  }
}`

const commitContributionsQuery = `
query($username: String!, $from: DateTime!, $to: DateTime!) {
  user(login: $username) {
    contributionsCollection(from: $from, to: $to) {
      commitContributionsByRepository {
        repository {
          name
          stargazerCount
        }
      }
    }
  }
}`

type Caller struct {
	Logger      log.Logger
	Config      *cfg.Config
	rateLimiter *limiter.RateLimiter
	client      *http.Client
}

func NewCaller(logger log.Logger, config *cfg.Config) *Caller {
	timeout := time.Duration(config.GithubApi.FetchTimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	rps := config.GithubApi.RequestsPerSecond
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

// ContributionCalendar fetches a user's daily contribution counts between
// from and to, flattening the calendar of weeks into one day sequence.
func (c *Caller) ContributionCalendar(ctx context.Context, username, accessToken string, from, to time.Time) ([]ContributionDay, error) {
	body, err := c.post(ctx, accessToken, contributionCalendarQuery, username, from, to)
	if err != nil {
		return nil, err
	}

	parsed := &calendarResponse{}
	if err := json.Unmarshal(body, parsed); err != nil {
		return nil, fmt.Errorf("failed to decode contribution calendar: %w", err)
	}
	if len(parsed.Errors) > 0 {
		return nil, fmt.Errorf("github graphql error: %s", parsed.Errors[0].Message)
	}

	days := make([]ContributionDay, 0, 7*len(parsed.Data.User.ContributionsCollection.ContributionCalendar.Weeks))
	for _, week := range parsed.Data.User.ContributionsCollection.ContributionCalendar.Weeks {
		for _, day := range week.ContributionDays {
			date, err := time.Parse("2006-01-02", day.Date)
			if err != nil {
				return nil, fmt.Errorf("failed to parse contribution date %q: %w", day.Date, err)
			}
			days = append(days, ContributionDay{Date: date, Count: day.ContributionCount})
		}
	}
	return days, nil
}

// CommitContributionsByRepository fetches the repositories a user committed
// to between from and to, with each repository's current star count.
func (c *Caller) CommitContributionsByRepository(ctx context.Context, username, accessToken string, from, to time.Time) ([]RepositoryContribution, error) {
	body, err := c.post(ctx, accessToken, commitContributionsQuery, username, from, to)
	if err != nil {
		return nil, err
	}

	parsed := &repoContributionsResponse{}
	if err := json.Unmarshal(body, parsed); err != nil {
		return nil, fmt.Errorf("failed to decode commit contributions: %w", err)
	}
	if len(parsed.Errors) > 0 {
		return nil, fmt.Errorf("github graphql error: %s", parsed.Errors[0].Message)
	}

	contributions := make([]RepositoryContribution, 0, len(parsed.Data.User.ContributionsCollection.CommitContributionsByRepository))
	for _, item := range parsed.Data.User.ContributionsCollection.CommitContributionsByRepository {
		contributions = append(contributions, RepositoryContribution{
			Name:      item.Repository.Name,
			StarCount: item.Repository.StargazerCount,
		})
	}
	return contributions, nil
}

func (c *Caller) post(ctx context.Context, accessToken, query, username string, from, to time.Time) ([]byte, error) {
	throttle := time.Duration(c.Config.GithubApi.ThrottleDelay) * time.Millisecond
	if err := c.rateLimiter.Wait(ctx, throttle); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(graphqlRequest{
		Query: query,
		Variables: map[string]interface{}{
			"username": username,
			"from":     from.UTC().Format(time.RFC3339),
			"to":       to.UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Config.GithubApi.GraphqlUrl, bytes.NewReader(payload))
	if err != nil {
		c.Logger.Error(ctx, "Cannot build GitHub API request: %v", err)
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("token %s", accessToken))

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if rateRemaining := resp.Header.Get("X-RateLimit-Remaining"); rateRemaining == "0" {
		c.Logger.Warn(ctx, "GitHub API rate limit exhausted for user %s, reset at %s",
			username, resp.Header.Get("X-RateLimit-Reset"))
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github api returned %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}
