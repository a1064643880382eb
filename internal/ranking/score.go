package ranking

import (
	githubapi "github.com/geeklink/ranking-service/internal/github_api"
	"github.com/geeklink/ranking-service/internal/period"
	qiitaapi "github.com/geeklink/ranking-service/internal/qiita_api"
)

// Weights applied by the scorers.
const (
	eventWeight = 5
	likeWeight  = 10
)

// ContributionScore sums the contribution counts of the days inside the
// window. The API was already queried for exactly this window, but the
// calendar can spill past it on timezone skew, so days are filtered again
// here. Both window boundaries are inclusive.
func ContributionScore(days []githubapi.ContributionDay, window period.Window) int {
	total := 0
	for _, day := range days {
		if window.Contains(day.Date) {
			total += day.Count
		}
	}
	return total
}

// StarScore sums the star counts over the de-duplicated set of repository
// names. A user can contribute to the same repository several times within
// the window; the first occurrence wins.
func StarScore(repos []githubapi.RepositoryContribution) int {
	seen := make(map[string]bool, len(repos))
	total := 0
	for _, repo := range repos {
		if seen[repo.Name] {
			continue
		}
		seen[repo.Name] = true
		total += repo.StarCount
	}
	return total
}

// ActivityScore weights in-app events five times heavier than posts.
func ActivityScore(postCount, eventCount int64) int {
	return int(postCount + eventCount*eventWeight)
}

// QiitaScore sums likes*10 + views over the fetched articles.
func QiitaScore(articles []qiitaapi.Article) int {
	total := 0
	for _, article := range articles {
		total += article.LikesCount*likeWeight + article.PageViewsCount
	}
	return total
}
