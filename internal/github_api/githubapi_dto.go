// DTOs for the GitHub GraphQL API. Responses are mapped into flat
// per-day and per-repository records before scoring.

package githubapi

import "time"

// ContributionDay is one calendar day of a user's contribution activity.
type ContributionDay struct {
	Date  time.Time `json:"date"`
	Count int       `json:"count"`
}

// RepositoryContribution is one repository a user committed to during the
// queried window, with its current star count.
type RepositoryContribution struct {
	Name      string `json:"name"`
	StarCount int    `json:"star_count"`
}

// Wire types for the GraphQL response envelope.

type graphqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

type graphqlError struct {
	Message string `json:"message"`
}

type calendarResponse struct {
	Data struct {
		User struct {
			ContributionsCollection struct {
				ContributionCalendar struct {
					Weeks []struct {
						ContributionDays []struct {
							Date              string `json:"date"`
							ContributionCount int    `json:"contributionCount"`
						} `json:"contributionDays"`
					} `json:"weeks"`
				} `json:"contributionCalendar"`
			} `json:"contributionsCollection"`
		} `json:"user"`
	} `json:"data"`
	Errors []graphqlError `json:"errors"`
}

type repoContributionsResponse struct {
	Data struct {
		User struct {
			ContributionsCollection struct {
				CommitContributionsByRepository []struct {
					Repository struct {
						Name           string `json:"name"`
						StargazerCount int    `json:"stargazerCount"`
					} `json:"repository"`
				} `json:"commitContributionsByRepository"`
			} `json:"contributionsCollection"`
		} `json:"user"`
	} `json:"data"`
	Errors []graphqlError `json:"errors"`
}
