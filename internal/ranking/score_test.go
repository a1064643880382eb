package ranking_test

import (
	"testing"
	"time"

	githubapi "github.com/geeklink/ranking-service/internal/github_api"
	"github.com/geeklink/ranking-service/internal/period"
	qiitaapi "github.com/geeklink/ranking-service/internal/qiita_api"
	"github.com/geeklink/ranking-service/internal/ranking"
	. "github.com/smartystreets/goconvey/convey"
)

func TestContributionScore(t *testing.T) {
	Convey("Given a weekly window", t, func() {
		now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
		window := period.Resolve(period.Weekly, now)

		Convey("Days inside the window are summed", func() {
			days := []githubapi.ContributionDay{
				{Date: now.Add(-24 * time.Hour), Count: 3},
				{Date: now.Add(-48 * time.Hour), Count: 4},
			}
			So(ranking.ContributionScore(days, window), ShouldEqual, 7)
		})

		Convey("Days outside the window are filtered even when the API returned them", func() {
			days := []githubapi.ContributionDay{
				{Date: now.Add(-24 * time.Hour), Count: 3},
				{Date: window.Start.Add(-24 * time.Hour), Count: 100},
				{Date: window.End.Add(24 * time.Hour), Count: 100},
			}
			So(ranking.ContributionScore(days, window), ShouldEqual, 3)
		})

		Convey("Both window boundaries are inclusive", func() {
			days := []githubapi.ContributionDay{
				{Date: window.Start, Count: 1},
				{Date: window.End, Count: 2},
			}
			So(ranking.ContributionScore(days, window), ShouldEqual, 3)
		})

		Convey("No qualifying days scores zero, not negative", func() {
			So(ranking.ContributionScore(nil, window), ShouldEqual, 0)
		})
	})
}

func TestStarScore(t *testing.T) {
	Convey("Given repository contributions", t, func() {
		Convey("Duplicate repository names count once", func() {
			repos := []githubapi.RepositoryContribution{
				{Name: "A", StarCount: 10},
				{Name: "A", StarCount: 10},
				{Name: "B", StarCount: 5},
			}
			So(ranking.StarScore(repos), ShouldEqual, 15)
		})

		Convey("The first occurrence wins for the count lookup", func() {
			repos := []githubapi.RepositoryContribution{
				{Name: "A", StarCount: 10},
				{Name: "A", StarCount: 99},
			}
			So(ranking.StarScore(repos), ShouldEqual, 10)
		})

		Convey("No contributions scores zero", func() {
			So(ranking.StarScore(nil), ShouldEqual, 0)
		})
	})
}

func TestActivityScore(t *testing.T) {
	Convey("Events weigh five times a post", t, func() {
		So(ranking.ActivityScore(3, 2), ShouldEqual, 13)
		So(ranking.ActivityScore(0, 0), ShouldEqual, 0)
		So(ranking.ActivityScore(1, 0), ShouldEqual, 1)
		So(ranking.ActivityScore(0, 1), ShouldEqual, 5)
	})
}

func TestQiitaScore(t *testing.T) {
	Convey("Likes weigh ten, views weigh one", t, func() {
		articles := []qiitaapi.Article{
			{LikesCount: 2, PageViewsCount: 100},
			{LikesCount: 0, PageViewsCount: 50},
		}
		So(ranking.QiitaScore(articles), ShouldEqual, 170)
		So(ranking.QiitaScore(nil), ShouldEqual, 0)
	})
}
