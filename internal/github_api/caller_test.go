package githubapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/geeklink/ranking-service/cfg"
	githubapi "github.com/geeklink/ranking-service/internal/github_api"
	"github.com/geeklink/ranking-service/pkg/log"
)

func newTestCaller(t *testing.T, url string) *githubapi.Caller {
	t.Helper()
	loader, _ := cfg.NewMockLoader()
	config, err := loader.Load()
	if err != nil {
		t.Fatal(err)
	}
	config.GithubApi.GraphqlUrl = url
	logger, err := log.NewCslLogger()
	if err != nil {
		t.Fatal(err)
	}
	return githubapi.NewCaller(logger, config)
}

func TestContributionCalendar(t *testing.T) {
	var gotAuth string
	var gotVariables map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		var body struct {
			Query     string                 `json:"query"`
			Variables map[string]interface{} `json:"variables"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decoding request body: %v", err)
		}
		gotVariables = body.Variables

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"data": {"user": {"contributionsCollection": {"contributionCalendar": {"weeks": [
				{"contributionDays": [
					{"date": "2024-06-10", "contributionCount": 3},
					{"date": "2024-06-11", "contributionCount": 0}
				]},
				{"contributionDays": [
					{"date": "2024-06-17", "contributionCount": 7}
				]}
			]}}}}
		}`))
	}))
	defer server.Close()

	caller := newTestCaller(t, server.URL)
	from := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC)

	days, err := caller.ContributionCalendar(context.Background(), "octocat", "gh-token", from, to)
	if err != nil {
		t.Fatal(err)
	}

	if gotAuth != "token gh-token" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "token gh-token")
	}
	if gotVariables["username"] != "octocat" {
		t.Errorf("username variable = %v, want octocat", gotVariables["username"])
	}
	if gotVariables["from"] != "2024-06-10T00:00:00Z" {
		t.Errorf("from variable = %v, want RFC3339 window start", gotVariables["from"])
	}

	if len(days) != 3 {
		t.Fatalf("got %d days, want 3 flattened across weeks", len(days))
	}
	if days[0].Count != 3 || !days[0].Date.Equal(time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("days[0] = %+v", days[0])
	}
	if days[2].Count != 7 {
		t.Errorf("days[2].Count = %d, want 7", days[2].Count)
	}
}

func TestContributionCalendarGraphqlError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"errors": [{"message": "Could not resolve to a User"}]}`))
	}))
	defer server.Close()

	caller := newTestCaller(t, server.URL)
	_, err := caller.ContributionCalendar(context.Background(), "ghost", "gh-token", time.Now().Add(-24*time.Hour), time.Now())
	if err == nil {
		t.Fatal("expected an error for a graphql errors payload")
	}
}

func TestCommitContributionsByRepository(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"data": {"user": {"contributionsCollection": {"commitContributionsByRepository": [
				{"repository": {"name": "service", "stargazerCount": 12}},
				{"repository": {"name": "tools", "stargazerCount": 4}}
			]}}}
		}`))
	}))
	defer server.Close()

	caller := newTestCaller(t, server.URL)
	repos, err := caller.CommitContributionsByRepository(context.Background(), "octocat", "gh-token", time.Now().Add(-24*time.Hour), time.Now())
	if err != nil {
		t.Fatal(err)
	}

	if len(repos) != 2 {
		t.Fatalf("got %d repositories, want 2", len(repos))
	}
	if repos[0].Name != "service" || repos[0].StarCount != 12 {
		t.Errorf("repos[0] = %+v", repos[0])
	}
}

// A missing requests-per-second setting must not starve the limiter.
func TestCallerDefaultsRequestsPerSecond(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {"user": {"contributionsCollection": {"contributionCalendar": {"weeks": []}}}}}`))
	}))
	defer server.Close()

	loader, _ := cfg.NewMockLoader()
	config, err := loader.Load()
	if err != nil {
		t.Fatal(err)
	}
	config.GithubApi.GraphqlUrl = server.URL
	config.GithubApi.RequestsPerSecond = 0
	logger, _ := log.NewCslLogger()
	caller := githubapi.NewCaller(logger, config)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if _, err := caller.ContributionCalendar(ctx, "octocat", "gh-token", time.Now().Add(-24*time.Hour), time.Now()); err != nil {
		t.Fatalf("fetch with zero configured rps: %v", err)
	}
}

func TestCallerRejectsNonOkStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad credentials", http.StatusUnauthorized)
	}))
	defer server.Close()

	caller := newTestCaller(t, server.URL)
	_, err := caller.ContributionCalendar(context.Background(), "octocat", "bad-token", time.Now().Add(-24*time.Hour), time.Now())
	if err == nil {
		t.Fatal("expected an error for a 401 response")
	}
}
