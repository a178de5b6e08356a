package extraction

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/riskibarqy/hltv-api/internal/domain/ranking"
)

func TestExtractor_Ranking(t *testing.T) {
	t.Parallel()

	got, err := newTestExtractor().Ranking(context.Background(), fixture(t, "ranking.html"))
	if err != nil {
		t.Fatalf("Ranking error: %v", err)
	}

	want := []ranking.Entry{
		{
			ID:       9565,
			Position: 1,
			Name:     "Vitality",
			Logo:     "https://img-cdn.hltv.org/teamlogo/vitality.svg",
			Players: []ranking.Player{
				{
					ID:       11893,
					Nickname: "ZywOo",
					FullName: "Mathieu Herbaut",
					Picture:  "https://img-cdn.hltv.org/playerbodyshot/zywoo.png",
					URL:      "https://www.hltv.org/player/11893/zywoo",
				},
				{
					ID:       7322,
					Nickname: "apEX",
					FullName: "Dan Madesclaire",
					Picture:  "https://www.hltv.org/img/static/player/player_silhouette.png",
					URL:      "https://www.hltv.org/player/7322/apex",
				},
			},
		},
		{
			ID:       4608,
			Position: 2,
			Name:     "Natus Vincere",
			Players:  []ranking.Player{},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ranking mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractor_RankingEmptyPage(t *testing.T) {
	t.Parallel()

	got, err := newTestExtractor().Ranking(context.Background(), []byte(`<html><body></body></html>`))
	if err != nil {
		t.Fatalf("Ranking error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil ranking, got %#v", got)
	}
}
