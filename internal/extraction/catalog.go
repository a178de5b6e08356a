package extraction

import "github.com/riskibarqy/hltv-api/internal/domain/player"

// Mode is the conversion applied to a resolved field value.
type Mode int

const (
	Text Mode = iota
	LeadingText
	URL
	ID
	Int
	Float
	Percent
	Ranking
	Digits
	Unix
)

// Field declares where a value lives relative to the current selection.
// An empty Path means the selection itself; Attr reads an attribute
// instead of the element text; Index picks the n-th match of Path.
type Field struct {
	Name     string
	Path     string
	Attr     string
	Mode     Mode
	Index    int
	Required bool
}

func (f Field) nth(index int) Field {
	f.Index = index
	return f
}

var upcomingFields = struct {
	Root, Record                   string
	ID, OpponentName, OpponentLogo Field
	TournamentName, TournamentLogo Field
	Type, Date, MatchURL           Field
}{
	Root:           ".upcomingMatchesWrapper",
	Record:         ".upcomingMatch",
	ID:             Field{Name: "id", Path: "a", Attr: "href", Mode: ID, Required: true},
	OpponentName:   Field{Name: "opponent.name", Path: ".matchTeam.team2 .matchTeamName", Required: true},
	OpponentLogo:   Field{Name: "opponent.logo", Path: ".matchTeam.team2 .matchTeamLogo", Attr: "src", Mode: URL},
	TournamentName: Field{Name: "tournament.name", Path: ".matchEvent .matchEventName", Required: true},
	TournamentLogo: Field{Name: "tournament.logo", Path: ".matchEvent .matchEventLogo", Attr: "src", Mode: URL},
	Type:           Field{Name: "type", Path: ".matchMeta", Required: true},
	Date:           Field{Name: "date", Path: ".matchTime", Attr: "data-unix", Mode: Unix, Required: true},
	MatchURL:       Field{Name: "match_url", Path: "a", Attr: "href", Mode: URL, Required: true},
}

var resultFields = struct {
	Root, Day, Record              string
	ID, MatchURL                   Field
	Team1                          Field
	Team2, Team2Logo               Field
	Winner, ScoreWon, ScoreLost    Field
	TournamentName, TournamentLogo Field
	Type                           Field
}{
	Root:           ".results-all",
	Day:            ".results-sublist",
	Record:         ".result-con > a",
	ID:             Field{Name: "id", Attr: "href", Mode: ID, Required: true},
	MatchURL:       Field{Name: "match_url", Attr: "href", Mode: URL, Required: true},
	Team1:          Field{Name: "team1.name", Path: ".team1 .team", Required: true},
	Team2:          Field{Name: "team2.name", Path: ".team2 .team", Required: true},
	Team2Logo:      Field{Name: "team2.logo", Path: ".team2 .team-logo", Attr: "src", Mode: URL},
	Winner:         Field{Name: "winner", Path: ".team-won", Required: true},
	ScoreWon:       Field{Name: "score_won", Path: ".result-score .score-won", Required: true},
	ScoreLost:      Field{Name: "score_lost", Path: ".result-score .score-lost", Required: true},
	TournamentName: Field{Name: "tournament.name", Path: ".event-name", Required: true},
	TournamentLogo: Field{Name: "tournament.logo", Path: ".event-logo", Attr: "src", Mode: URL},
	Type:           Field{Name: "type", Path: ".map-text", Required: true},
}

var rankingFields = struct {
	Record, Player                           string
	ID, Position, Name, Logo                 Field
	PlayerID, PlayerNickname, PlayerFullName Field
	PlayerPicture, PlayerURL                 Field
}{
	Record:         ".ranked-team",
	Player:         ".player-holder",
	ID:             Field{Name: "id", Path: ".moreLink", Attr: "href", Mode: ID, Required: true},
	Position:       Field{Name: "ranking", Path: ".position", Mode: Ranking, Required: true},
	Name:           Field{Name: "name", Path: ".teamLine .name", Required: true},
	Logo:           Field{Name: "logo", Path: ".team-logo img", Attr: "src", Mode: URL},
	PlayerID:       Field{Name: "players.id", Path: "a", Attr: "href", Mode: ID, Required: true},
	PlayerNickname: Field{Name: "players.nickname", Path: ".nick", Required: true},
	PlayerFullName: Field{Name: "players.fullname", Path: ".playerPicture", Attr: "alt"},
	PlayerPicture:  Field{Name: "players.picture", Path: ".playerPicture", Attr: "src", Mode: URL},
	PlayerURL:      Field{Name: "players.hltv_url", Path: "a", Attr: "href", Mode: URL, Required: true},
}

const teamStat = ".profile-team-stats-container > div"

var teamFields = struct {
	Root, Lineup, Social, MapStats, MapName, MapContainer string
	LastMaps, Events, Trophies, GroupRecord               string

	Name, Logo, Ranking, AverageAge, Coach        Field
	CountryName, CountryFlag                      Field
	PlayerID, PlayerNickname, PlayerTitle         Field
	PlayerImage, PlayerCountry, PlayerCountryFlag Field
	SocialLink                                    Field
	MapWinRate                                    Field
	LastMapOpponent, LastMapResult                Field
	EventName, EventLogo, EventDate, EventURL     Field
	TrophyName, TrophyLogo, TrophyURL             Field
}{
	Root:         ".teamProfile",
	Lineup:       ".bodyshot-team > a",
	Social:       ".socialMediaButtons > a",
	MapStats:     ".map-statistics",
	MapName:      ".map-statistics-row-map-mapname",
	MapContainer: ".map-statistics-container",
	LastMaps:     ".last-5-matches",
	Events:       "#ongoingEvents .upcoming-events-holder",
	Trophies:     ".trophyRow",
	GroupRecord:  "a",

	Name:       Field{Name: "name", Path: ".profile-team-name", Required: true},
	Logo:       Field{Name: "logo", Path: ".teamlogo", Attr: "src", Mode: URL, Required: true},
	Ranking:    Field{Name: "ranking", Path: teamStat + ":nth-of-type(1) .right", Mode: Ranking},
	AverageAge: Field{Name: "average_player_age", Path: teamStat + ":nth-of-type(3) .right", Mode: Float},
	Coach:      Field{Name: "coach", Path: teamStat + ":nth-of-type(4) .right"},

	CountryName: Field{Name: "country.name", Path: ".team-country"},
	CountryFlag: Field{Name: "country.flag", Path: ".team-country .flag", Attr: "src", Mode: URL},

	PlayerID:          Field{Name: "players.id", Attr: "href", Mode: ID, Required: true},
	PlayerNickname:    Field{Name: "players.nickname", Attr: "title", Required: true},
	PlayerTitle:       Field{Name: "players.fullname", Path: "img", Attr: "title"},
	PlayerImage:       Field{Name: "players.image", Path: "img", Attr: "src", Mode: URL},
	PlayerCountry:     Field{Name: "players.country.name", Path: ".flag", Attr: "title"},
	PlayerCountryFlag: Field{Name: "players.country.flag", Path: ".flag", Attr: "src", Mode: URL},

	SocialLink: Field{Name: "social_media.link", Attr: "href", Required: true},
	MapWinRate: Field{Name: "map_stats.win_rate", Path: ".map-statistics-row-win-percentage", Mode: Percent, Required: true},

	LastMapOpponent: Field{Name: "last_5_maps.opponent", Path: ".highlighted-team-name", Required: true},
	LastMapResult:   Field{Name: "last_5_maps.result", Path: ".highlighted-match-status", Required: true},

	EventName: Field{Name: "upcoming_events.name", Path: ".eventbox-eventname", Required: true},
	EventLogo: Field{Name: "upcoming_events.logo", Path: ".eventbox-eventlogo img", Attr: "src", Mode: URL},
	EventDate: Field{Name: "upcoming_events.date", Path: "span[data-unix]", Attr: "data-unix", Mode: Unix, Required: true},
	EventURL:  Field{Name: "upcoming_events.hltv_url", Attr: "href", Mode: URL, Required: true},

	TrophyName: Field{Name: "trophies.name", Path: ".trophyDescription", Attr: "title", Required: true},
	TrophyLogo: Field{Name: "trophies.logo", Path: ".trophyIcon", Attr: "src", Mode: URL},
	TrophyURL:  Field{Name: "trophies.hltv_url", Attr: "href", Mode: URL, Required: true},
}

var playerFields = struct {
	Root, Top20, CurrentTeam, PastTeam, TeamTrophies string
	Trophies, MVPs                                   string

	Nickname, RealName, Picture, Age, Flag Field
	Top20Position, Top20Link               Field
	MajorTitles                            Field
	CareerStat                             Field
	TeamName, TeamLogo, TeamDate, TeamURL  Field
	TeamTrophyName, TeamTrophyImage        Field
	TeamTrophyURL                          Field
	TrophyName, TrophyImage, TrophyURL     Field
	StatValue                              Field
}{
	Root:         ".playerProfile",
	Top20:        ".top20ListRight a",
	CurrentTeam:  ".team",
	PastTeam:     ".past-team",
	TeamTrophies: ".trophy-row-trophy a",
	Trophies:     "#Trophies .trophy-detail",
	MVPs:         "#MVPs .trophy-detail",

	Nickname: Field{Name: "nickname", Path: ".playerNickname", Required: true},
	RealName: Field{Name: "name.fullname", Path: ".playerRealname", Required: true},
	Picture:  Field{Name: "picture", Path: ".bodyshot-img", Attr: "src", Mode: URL},
	Age:      Field{Name: "age", Path: ".playerAge", Mode: Digits},
	Flag:     Field{Name: "flag", Path: ".flag", Attr: "src", Mode: URL},

	Top20Position: Field{Name: "top20.position", Mode: Digits, Required: true},
	Top20Link:     Field{Name: "top20.news", Attr: "href", Required: true},
	MajorTitles:   Field{Name: "major_winner.champions", Path: ".majorWinner", Mode: Digits},
	CareerStat:    Field{Name: "general_data", Path: ".stat", Mode: Int, Required: true},

	TeamName: Field{Name: "teams.name", Path: ".team-name", Required: true},
	TeamLogo: Field{Name: "teams.logo", Path: ".team-logo", Attr: "src", Mode: URL},
	TeamDate: Field{Name: "teams.date", Path: ".time-period-cell span[data-unix]", Attr: "data-unix", Mode: Unix, Required: true},
	TeamURL:  Field{Name: "teams.hltv_url", Path: ".team-name-cell a", Attr: "href", Mode: URL, Required: true},

	TeamTrophyName:  Field{Name: "teams.trophies.name", Path: "img", Attr: "title", Required: true},
	TeamTrophyImage: Field{Name: "teams.trophies.trophy", Path: "img", Attr: "src", Mode: URL},
	TeamTrophyURL:   Field{Name: "teams.trophies.event_url", Attr: "href", Mode: URL, Required: true},

	TrophyName:  Field{Name: "trophies.name", Path: ".trophy-event", Required: true},
	TrophyImage: Field{Name: "trophies.trophy", Path: "img", Attr: "src", Mode: URL},
	TrophyURL:   Field{Name: "trophies.event_url", Path: "a", Attr: "href", Mode: URL},

	StatValue: Field{Name: "stats", Path: ".statsVal", Required: true},
}

var statisticsFields = struct {
	Root, SummaryRows, Breakdown, FeaturedRatings, IndividualRows string

	Nickname, FullName, Age, Flag, Team Field
	RowLabel, RowValue                  Field
	BreakdownLabel, BreakdownValue      Field
	FeaturedRating                      Field
}{
	Root:            ".playerSummaryStatBox",
	SummaryRows:     ".statistics .stats-row",
	Breakdown:       ".summaryStatBreakdownRow .summaryStatBreakdown",
	FeaturedRatings: ".featured-ratings-container .rating-value",
	IndividualRows:  ".columns .standard-box .stats-row",

	Nickname: Field{Name: "name", Path: ".summaryNickname", Required: true},
	FullName: Field{Name: "fullname", Path: ".summaryRealname"},
	Age:      Field{Name: "age", Path: ".summaryPlayerAge", Mode: Digits},
	Flag:     Field{Name: "flag", Path: ".flag", Attr: "src", Mode: URL},
	Team:     Field{Name: "team", Path: ".SummaryTeamname a", Attr: "href", Mode: URL},

	RowLabel: Field{Name: "stats.label", Path: "span", Index: 0, Required: true},
	RowValue: Field{Name: "stats.value", Path: "span", Index: 1, Mode: Percent, Required: true},

	BreakdownLabel: Field{Name: "breakdown.label", Path: ".summaryStatBreakdownSubHeader", Mode: LeadingText, Required: true},
	BreakdownValue: Field{Name: "breakdown.value", Path: ".summaryStatBreakdownDataValue", Mode: Percent, Required: true},
	FeaturedRating: Field{Name: "featured_rating", Mode: Float, Required: true},
}

// statLabels maps the label printed on the statistics pages to its metric.
var statLabels = map[string]player.Metric{
	"Rating 1.0":                        player.MetricRating,
	"KAST":                              player.MetricKAST,
	"Impact":                            player.MetricImpact,
	"Total kills":                       player.MetricTotalKills,
	"Headshot %":                        player.MetricHeadshotPercentage,
	"Total deaths":                      player.MetricTotalDeaths,
	"K/D Ratio":                         player.MetricKDRatio,
	"Damage / Round":                    player.MetricDamagePerRound,
	"Grenade dmg / Round":               player.MetricGrenadeDamagePerRound,
	"Maps played":                       player.MetricMapsPlayed,
	"Rounds played":                     player.MetricRoundsPlayed,
	"Kills / round":                     player.MetricKillsPerRound,
	"Assists / round":                   player.MetricAssistsPerRound,
	"Deaths / round":                    player.MetricDeathsPerRound,
	"Saved by teammate / round":         player.MetricSavedByTeammates,
	"Saved teammates / round":           player.MetricSavedTeammates,
	"0 kill rounds":                     player.MetricZeroKillRounds,
	"1 kill rounds":                     player.MetricOneKillRounds,
	"2 kill rounds":                     player.MetricTwoKillRounds,
	"3 kill rounds":                     player.MetricThreeKillRounds,
	"4 kill rounds":                     player.MetricFourKillRounds,
	"5 kill rounds":                     player.MetricFiveKillRounds,
	"Total opening kills":               player.MetricTotalOpeningKills,
	"Total opening deaths":              player.MetricTotalOpeningDeaths,
	"Opening kill ratio":                player.MetricOpeningKillRatio,
	"Opening kill rating":               player.MetricOpeningKillRating,
	"Team win percent after first kill": player.MetricWinAfterOpeningKill,
	"First kill in won rounds":          player.MetricFirstKillInWonRounds,
	"Rifle kills":                       player.MetricRifleKills,
	"Sniper kills":                      player.MetricSniperKills,
	"SMG kills":                         player.MetricSMGKills,
	"Pistol kills":                      player.MetricPistolKills,
	"Grenade":                           player.MetricGrenadeKills,
	"Other":                             player.MetricOtherKills,
}

// featuredRatings lists the rating-vs-tier boxes in page order.
var featuredRatings = []player.Metric{
	player.MetricVsTop5,
	player.MetricVsTop10,
	player.MetricVsTop20,
	player.MetricVsTop30,
	player.MetricVsTop50,
}
