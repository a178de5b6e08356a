package player

// Metric names a single numeric statistic of a player.
type Metric string

const (
	MetricRating                Metric = "rating"
	MetricKAST                  Metric = "kast"
	MetricImpact                Metric = "impact"
	MetricTotalKills            Metric = "total_kills"
	MetricHeadshotPercentage    Metric = "headshot_percentage"
	MetricTotalDeaths           Metric = "total_deaths"
	MetricKDRatio               Metric = "k/d_ratio"
	MetricDamagePerRound        Metric = "damage_per_round"
	MetricGrenadeDamagePerRound Metric = "grenade_damage_per_round"
	MetricMapsPlayed            Metric = "maps_played"
	MetricRoundsPlayed          Metric = "rounds_played"
	MetricKillsPerRound         Metric = "kills_per_round"
	MetricAssistsPerRound       Metric = "assists_per_round"
	MetricDeathsPerRound        Metric = "deaths_per_round"
	MetricSavedByTeammates      Metric = "saved_by_teammates"
	MetricSavedTeammates        Metric = "saved_teammates"
	MetricVsTop5                Metric = "vs_top_5"
	MetricVsTop10               Metric = "vs_top_10"
	MetricVsTop20               Metric = "vs_top_20"
	MetricVsTop30               Metric = "vs_top_30"
	MetricVsTop50               Metric = "vs_top_50"
	MetricZeroKillRounds        Metric = "0_kill_per_rounds"
	MetricOneKillRounds         Metric = "1_kill_per_rounds"
	MetricTwoKillRounds         Metric = "2_kill_per_rounds"
	MetricThreeKillRounds       Metric = "3_kill_per_rounds"
	MetricFourKillRounds        Metric = "4_kill_per_rounds"
	MetricFiveKillRounds        Metric = "5_kill_per_rounds"
	MetricTotalOpeningKills     Metric = "total_opening_kills"
	MetricTotalOpeningDeaths    Metric = "total_opening_deaths"
	MetricOpeningKillRatio      Metric = "opening_kill_ratio"
	MetricOpeningKillRating     Metric = "opening_kill_rating"
	MetricWinAfterOpeningKill   Metric = "win_percentage_after_opening_kill"
	MetricFirstKillInWonRounds  Metric = "first_kill_won_per_round"
	MetricRifleKills            Metric = "rifles"
	MetricSniperKills           Metric = "snipers"
	MetricSMGKills              Metric = "smgs"
	MetricPistolKills           Metric = "pistols"
	MetricGrenadeKills          Metric = "nades"
	MetricOtherKills            Metric = "other"
)

// Statistics is the detailed statistics view of one player.
// A metric absent from Metrics could not be read and renders as null.
type Statistics struct {
	Nickname string
	FullName string
	Age      *int
	Flag     string
	TeamURL  string
	Metrics  map[Metric]float64
}

// Metric returns the value of m and whether it was read.
func (s Statistics) Metric(m Metric) (float64, bool) {
	v, ok := s.Metrics[m]
	return v, ok
}
