package ranking

import (
	"fmt"

	"github.com/geeklink/ranking-service/internal/period"
)

// Source identifies one ranking family independent of period.
type Source string

const (
	SourceContribution     Source = "contribution"
	SourceContributionStar Source = "contribution_star"
	SourceQiita            Source = "qiita"
	SourceActivity         Source = "activity"
)

// Sources lists the families in refresh order. The order carries no
// semantics; runs are sequential across families either way.
func Sources() []Source {
	return []Source{SourceContribution, SourceContributionStar, SourceQiita, SourceActivity}
}

func (s Source) String() string {
	return string(s)
}

// Table is a closed handle over the twelve persisted ranking tables, one per
// (source, period) pair. Table names are statically known; there is no
// runtime string lookup.
type Table struct {
	source Source
	period period.Period
}

// TableFor resolves the table handle for a (source, period) pair.
func TableFor(s Source, p period.Period) (Table, error) {
	switch s {
	case SourceContribution, SourceContributionStar, SourceQiita, SourceActivity:
	default:
		return Table{}, fmt.Errorf("unknown ranking source: %q", string(s))
	}
	switch p {
	case period.Daily, period.Weekly, period.Monthly:
	default:
		return Table{}, fmt.Errorf("unknown ranking period: %q", string(p))
	}
	return Table{source: s, period: p}, nil
}

// AllTables enumerates every persisted ranking table.
func AllTables() []Table {
	tables := make([]Table, 0, len(Sources())*len(period.All()))
	for _, s := range Sources() {
		for _, p := range period.All() {
			table, _ := TableFor(s, p)
			tables = append(tables, table)
		}
	}
	return tables
}

func (t Table) Source() Source {
	return t.source
}

func (t Table) Period() period.Period {
	return t.period
}

// Name returns the MySQL table name. The switch is exhaustive over the
// twelve valid combinations; a zero-value Table panics, which is the
// desired behavior for a handle that skipped TableFor.
func (t Table) Name() string {
	switch t.source {
	case SourceContribution:
		switch t.period {
		case period.Daily:
			return "daily_github_contribution_rankings"
		case period.Weekly:
			return "weekly_github_contribution_rankings"
		case period.Monthly:
			return "monthly_github_contribution_rankings"
		}
	case SourceContributionStar:
		switch t.period {
		case period.Daily:
			return "daily_github_contribution_star_rankings"
		case period.Weekly:
			return "weekly_github_contribution_star_rankings"
		case period.Monthly:
			return "monthly_github_contribution_star_rankings"
		}
	case SourceQiita:
		switch t.period {
		case period.Daily:
			return "daily_qiita_rankings"
		case period.Weekly:
			return "weekly_qiita_rankings"
		case period.Monthly:
			return "monthly_qiita_rankings"
		}
	case SourceActivity:
		switch t.period {
		case period.Daily:
			return "daily_geek_link_activity_rankings"
		case period.Weekly:
			return "weekly_geek_link_activity_rankings"
		case period.Monthly:
			return "monthly_geek_link_activity_rankings"
		}
	}
	panic(fmt.Sprintf("invalid ranking table: source=%q period=%q", string(t.source), string(t.period)))
}
