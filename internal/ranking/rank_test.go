package ranking_test

import (
	"testing"

	"github.com/geeklink/ranking-service/internal/ranking"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRank(t *testing.T) {
	Convey("Given users enumerated in listing order", t, func() {
		Convey("Entries sort descending by score with 1-based ranks", func() {
			ranked := ranking.Rank([]ranking.Entry{
				{UserID: "u1", Score: 2},
				{UserID: "u2", Score: 9},
				{UserID: "u3", Score: 5},
			})
			So(ranked[0].UserID, ShouldEqual, "u2")
			So(ranked[0].Rank, ShouldEqual, 1)
			So(ranked[1].UserID, ShouldEqual, "u3")
			So(ranked[1].Rank, ShouldEqual, 2)
			So(ranked[2].UserID, ShouldEqual, "u1")
			So(ranked[2].Rank, ShouldEqual, 3)
		})

		Convey("Equal scores keep listing order, not completion order", func() {
			ranked := ranking.Rank([]ranking.Entry{
				{UserID: "u3", Score: 0},
				{UserID: "u1", Score: 5},
				{UserID: "u2", Score: 5},
			})
			So(ranked[0].UserID, ShouldEqual, "u1")
			So(ranked[1].UserID, ShouldEqual, "u2")
			So(ranked[2].UserID, ShouldEqual, "u3")
		})

		Convey("Ranks form a contiguous 1..N sequence", func() {
			ranked := ranking.Rank([]ranking.Entry{
				{UserID: "a", Score: 4},
				{UserID: "b", Score: 4},
				{UserID: "c", Score: 4},
				{UserID: "d", Score: 1},
			})
			for i, entry := range ranked {
				So(entry.Rank, ShouldEqual, i+1)
			}
		})

		Convey("The input slice is left untouched", func() {
			entries := []ranking.Entry{
				{UserID: "a", Score: 1},
				{UserID: "b", Score: 2},
			}
			_ = ranking.Rank(entries)
			So(entries[0].UserID, ShouldEqual, "a")
			So(entries[0].Rank, ShouldEqual, 0)
		})
	})
}

func TestTopN(t *testing.T) {
	Convey("TopN slices the head of a ranked list", t, func() {
		ranked := ranking.Rank([]ranking.Entry{
			{UserID: "a", Score: 7},
			{UserID: "b", Score: 6},
			{UserID: "c", Score: 5},
		})
		So(ranking.TopN(ranked, 2), ShouldHaveLength, 2)
		So(ranking.TopN(ranked, 5), ShouldHaveLength, 3)
		So(ranking.TopN(ranked, 0), ShouldHaveLength, 3)
	})
}
