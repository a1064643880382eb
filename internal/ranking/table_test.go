package ranking_test

import (
	"strings"
	"testing"

	"github.com/geeklink/ranking-service/internal/period"
	"github.com/geeklink/ranking-service/internal/ranking"
)

func TestAllTablesCoversEveryPair(t *testing.T) {
	tables := ranking.AllTables()
	if len(tables) != 12 {
		t.Fatalf("AllTables() returned %d tables, want 12", len(tables))
	}

	names := make(map[string]bool, len(tables))
	for _, table := range tables {
		name := table.Name()
		if names[name] {
			t.Errorf("duplicate table name %q", name)
		}
		names[name] = true
		if !strings.HasPrefix(name, string(table.Period())+"_") {
			t.Errorf("table name %q does not carry period prefix %q", name, table.Period())
		}
	}
}

func TestTableForRejectsUnknownPairs(t *testing.T) {
	if _, err := ranking.TableFor(ranking.Source("bogus"), period.Daily); err == nil {
		t.Error("expected error for unknown source")
	}
	if _, err := ranking.TableFor(ranking.SourceQiita, period.Period("yearly")); err == nil {
		t.Error("expected error for unknown period")
	}
}

func TestTableNames(t *testing.T) {
	tests := []struct {
		source ranking.Source
		period period.Period
		want   string
	}{
		{ranking.SourceContribution, period.Daily, "daily_github_contribution_rankings"},
		{ranking.SourceContributionStar, period.Weekly, "weekly_github_contribution_star_rankings"},
		{ranking.SourceQiita, period.Monthly, "monthly_qiita_rankings"},
		{ranking.SourceActivity, period.Daily, "daily_geek_link_activity_rankings"},
	}

	for _, tt := range tests {
		table, err := ranking.TableFor(tt.source, tt.period)
		if err != nil {
			t.Fatalf("TableFor(%s, %s): %v", tt.source, tt.period, err)
		}
		if got := table.Name(); got != tt.want {
			t.Errorf("Name() = %q, want %q", got, tt.want)
		}
	}
}
