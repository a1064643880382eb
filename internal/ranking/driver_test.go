package ranking_test

import (
	"context"
	"errors"
	"testing"

	"github.com/geeklink/ranking-service/internal/period"
	"github.com/geeklink/ranking-service/internal/ranking"
	. "github.com/smartystreets/goconvey/convey"
)

type recordedRun struct {
	source ranking.Source
	period period.Period
}

type fakeUpdater struct {
	source ranking.Source
	runs   *[]recordedRun
	err    error
}

func (f *fakeUpdater) Source() ranking.Source {
	return f.source
}

func (f *fakeUpdater) Update(ctx context.Context, p period.Period) ([]ranking.Entry, error) {
	if f.err != nil {
		return nil, f.err
	}
	*f.runs = append(*f.runs, recordedRun{source: f.source, period: p})
	return nil, nil
}

type fakeResetter struct {
	reset  int64
	called bool
	err    error
}

func (f *fakeResetter) ResetOnline(ctx context.Context) (int64, error) {
	f.called = true
	return f.reset, f.err
}

func TestDriverUpdateAll(t *testing.T) {
	Convey("Given a driver over two ranking families", t, func() {
		runs := []recordedRun{}
		resetter := &fakeResetter{reset: 3}
		driver, err := ranking.NewDriver(testLogger(t), []ranking.Updater{
			&fakeUpdater{source: ranking.SourceContribution, runs: &runs},
			&fakeUpdater{source: ranking.SourceQiita, runs: &runs},
		}, resetter)
		So(err, ShouldBeNil)

		Convey("UpdateAll runs weekly then monthly for each family in order", func() {
			So(driver.UpdateAll(context.Background()), ShouldBeNil)
			So(runs, ShouldResemble, []recordedRun{
				{ranking.SourceContribution, period.Weekly},
				{ranking.SourceContribution, period.Monthly},
				{ranking.SourceQiita, period.Weekly},
				{ranking.SourceQiita, period.Monthly},
			})
			So(resetter.called, ShouldBeFalse)
		})

		Convey("UpdateAll stops at the first failing family", func() {
			failing := &fakeUpdater{source: ranking.SourceActivity, err: errors.New("api down")}
			driver.Updaters = []ranking.Updater{failing, &fakeUpdater{source: ranking.SourceQiita, runs: &runs}}

			err := driver.UpdateAll(context.Background())
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "weekly activity ranking")
			So(runs, ShouldBeEmpty)
		})
	})
}

func TestDriverUpdateDaily(t *testing.T) {
	Convey("Given a driver over two ranking families", t, func() {
		runs := []recordedRun{}
		resetter := &fakeResetter{reset: 3}
		driver, err := ranking.NewDriver(testLogger(t), []ranking.Updater{
			&fakeUpdater{source: ranking.SourceContribution, runs: &runs},
			&fakeUpdater{source: ranking.SourceActivity, runs: &runs},
		}, resetter)
		So(err, ShouldBeNil)

		Convey("UpdateDaily runs the daily period per family, then resets online flags", func() {
			So(driver.UpdateDaily(context.Background()), ShouldBeNil)
			So(runs, ShouldResemble, []recordedRun{
				{ranking.SourceContribution, period.Daily},
				{ranking.SourceActivity, period.Daily},
			})
			So(resetter.called, ShouldBeTrue)
		})

		Convey("A failing family skips the online reset", func() {
			driver.Updaters = []ranking.Updater{&fakeUpdater{source: ranking.SourceQiita, err: errors.New("api down")}}
			So(driver.UpdateDaily(context.Background()), ShouldNotBeNil)
			So(resetter.called, ShouldBeFalse)
		})

		Convey("A reset failure surfaces after the rankings succeeded", func() {
			resetter.err = errors.New("update failed")
			err := driver.UpdateDaily(context.Background())
			So(err, ShouldNotBeNil)
			So(runs, ShouldHaveLength, 2)
		})
	})
}
