package httpapi

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/hltv-api/internal/domain/match"
	"github.com/riskibarqy/hltv-api/internal/domain/news"
	"github.com/riskibarqy/hltv-api/internal/domain/player"
	"github.com/riskibarqy/hltv-api/internal/domain/ranking"
	"github.com/riskibarqy/hltv-api/internal/domain/search"
	"github.com/riskibarqy/hltv-api/internal/domain/team"
	"github.com/riskibarqy/hltv-api/internal/platform/logging"
	"github.com/riskibarqy/hltv-api/internal/usecase"
)

const unavailable = "unavailable"

type Handler struct {
	teamService    *usecase.TeamService
	playerService  *usecase.PlayerService
	rankingService *usecase.RankingService
	newsService    *usecase.NewsService
	searchService  *usecase.SearchService
	logger         *logging.Logger
	validator      *validator.Validate
}

func NewHandler(
	teamService *usecase.TeamService,
	playerService *usecase.PlayerService,
	rankingService *usecase.RankingService,
	newsService *usecase.NewsService,
	searchService *usecase.SearchService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		teamService:    teamService,
		playerService:  playerService,
		rankingService: rankingService,
		newsService:    newsService,
		searchService:  searchService,
		logger:         logger,
		validator:      validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// parseID reads a positive numeric path value.
func (h *Handler) parseID(ctx context.Context, raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id must be numeric, got %q", usecase.ErrInvalidInput, raw)
	}

	req := idRequest{ID: id}
	if err := h.validateRequest(ctx, req); err != nil {
		return 0, err
	}

	return req.ID, nil
}

type idRequest struct {
	ID int64 `validate:"gt=0"`
}

type searchRequest struct {
	Team   string `validate:"required_without=Player"`
	Player string `validate:"required_without=Team"`
}

type healthDTO struct {
	State string `json:"state"`
}

type errorDTO struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type countryDTO struct {
	Name string `json:"name"`
	Flag string `json:"flag"`
}

type teamPlayerDTO struct {
	ID       int64       `json:"id"`
	Nickname string      `json:"nickname"`
	FullName string      `json:"fullname"`
	Image    string      `json:"image"`
	Country  *countryDTO `json:"country"`
}

type socialLinkDTO struct {
	Name string `json:"name"`
	Link string `json:"link"`
}

type teamTrophyDTO struct {
	Name    string `json:"name"`
	Logo    string `json:"logo"`
	HLTVURL string `json:"hltv_url"`
}

type mapStatsDTO struct {
	Dust2    *float64 `json:"dust2"`
	Mirage   *float64 `json:"mirage"`
	Inferno  *float64 `json:"inferno"`
	Overpass *float64 `json:"overpass"`
	Nuke     *float64 `json:"nuke"`
	Vertigo  *float64 `json:"vertigo"`
	Ancient  *float64 `json:"ancient"`
	Anubis   *float64 `json:"anubis"`
}

type mapResultDTO struct {
	Opponent string `json:"opponent"`
	Result   string `json:"result"`
}

type eventDateDTO struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

type teamEventDTO struct {
	Name    string       `json:"name"`
	Logo    string       `json:"logo"`
	Date    eventDateDTO `json:"date"`
	HLTVURL string       `json:"hltv_url"`
}

type participantDTO struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
}

type upcomingMatchDTO struct {
	ID         int64          `json:"id"`
	Opponent   participantDTO `json:"opponent"`
	Tournament participantDTO `json:"tournament"`
	Type       string         `json:"type"`
	Date       int64          `json:"date"`
	MatchURL   string         `json:"match_url"`
}

type matchResultDTO struct {
	ID         int64          `json:"id"`
	Result     string         `json:"result"`
	Score      string         `json:"score"`
	Opponent   participantDTO `json:"opponent"`
	Tournament participantDTO `json:"tournament"`
	Type       string         `json:"type"`
	MatchURL   string         `json:"match_url"`
}

type teamMatchesDTO struct {
	Incoming []upcomingMatchDTO `json:"incoming"`
	Results  []matchResultDTO   `json:"results"`
}

type teamDTO struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name"`
	Logo             string          `json:"logo"`
	Ranking          *int            `json:"ranking"`
	Country          *countryDTO     `json:"country"`
	AveragePlayerAge *float64        `json:"average_player_age"`
	Coach            *string         `json:"coach"`
	Players          []teamPlayerDTO `json:"players"`
	SocialMedia      []socialLinkDTO `json:"social_media"`
	Trophies         []teamTrophyDTO `json:"trophies"`
	MapStats         any             `json:"map_stats"`
	LastMaps         any             `json:"last_5_maps"`
	UpcomingEvents   []teamEventDTO  `json:"upcoming_events"`
	Matches          teamMatchesDTO  `json:"matches"`
}

type playerNameDTO struct {
	FullName  string `json:"fullname"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
}

type careerDTO struct {
	NumberTeams      int `json:"numbers_teams"`
	DayInCurrentTeam int `json:"day_in_current_team"`
	DayInTeam        int `json:"day_in_team"`
}

type playerTrophyDTO struct {
	Name     string `json:"name"`
	Trophy   string `json:"trophy"`
	EventURL string `json:"event_url"`
}

type stintDateDTO struct {
	Entrance int64  `json:"entrance"`
	Left     *int64 `json:"left"`
}

type stintDTO struct {
	Name     string            `json:"name"`
	Logo     string            `json:"logo"`
	Date     stintDateDTO      `json:"date"`
	Trophies []playerTrophyDTO `json:"trophies"`
	HLTVURL  string            `json:"hltv_url"`
}

type playerTeamsDTO struct {
	GeneralData any        `json:"general_data"`
	CurrentTeam *stintDTO  `json:"current_team"`
	FormerTeams []stintDTO `json:"former_teams"`
}

type appearanceDTO struct {
	Year     int    `json:"year"`
	Position int    `json:"position"`
	News     string `json:"news"`
}

type top20DTO struct {
	HasAppeared    bool            `json:"has_appeared"`
	LastAppearance *appearanceDTO  `json:"last_appearance"`
	AllAppearances []appearanceDTO `json:"all_appearances"`
}

type playerTrophiesDTO struct {
	Trophies []playerTrophyDTO `json:"trophies"`
	MVPs     []playerTrophyDTO `json:"mvps"`
	Top20    top20DTO          `json:"top20"`
}

type playerStatsDTO struct {
	Rating             float64 `json:"rating"`
	KillsPerRound      float64 `json:"kills_per_round"`
	HeadshotPercentage float64 `json:"headshot_percentage"`
	MapsPlayed         int     `json:"maps_played"`
	DeathsPerRound     float64 `json:"deaths_per_round"`
	RoundsContributed  float64 `json:"rounds_contributed"`
}

type majorWinnerDTO struct {
	Winner    bool `json:"winner"`
	Champions *int `json:"champions"`
}

type playerDTO struct {
	ID          int64             `json:"id"`
	Nickname    string            `json:"nickname"`
	Name        playerNameDTO     `json:"name"`
	Picture     *string           `json:"picture"`
	Age         *int              `json:"age"`
	Flag        *string           `json:"flag"`
	Teams       playerTeamsDTO    `json:"teams"`
	Trophies    playerTrophiesDTO `json:"trophies"`
	Stats       *playerStatsDTO   `json:"stats"`
	MajorWinner majorWinnerDTO    `json:"major_winner"`
}

type featuredRatingDTO struct {
	VsTop5  *float64 `json:"vs_top_5"`
	VsTop10 *float64 `json:"vs_top_10"`
	VsTop20 *float64 `json:"vs_top_20"`
	VsTop30 *float64 `json:"vs_top_30"`
	VsTop50 *float64 `json:"vs_top_50"`
}

type roundsStatsDTO struct {
	Zero  *float64 `json:"0_kill_per_rounds"`
	One   *float64 `json:"1_kill_per_rounds"`
	Two   *float64 `json:"2_kill_per_rounds"`
	Three *float64 `json:"3_kill_per_rounds"`
	Four  *float64 `json:"4_kill_per_rounds"`
	Five  *float64 `json:"5_kill_per_rounds"`
}

type openingStatsDTO struct {
	TotalOpeningKills    *float64 `json:"total_opening_kills"`
	TotalOpeningDeaths   *float64 `json:"total_opening_deaths"`
	OpeningKillRatio     *float64 `json:"opening_kill_ratio"`
	OpeningKillRating    *float64 `json:"opening_kill_rating"`
	WinAfterOpeningKill  *float64 `json:"win_percentage_after_opening_kill"`
	FirstKillInWonRounds *float64 `json:"first_kill_won_per_round"`
}

type weaponStatsDTO struct {
	Rifles  *float64 `json:"rifles"`
	Snipers *float64 `json:"snipers"`
	SMGs    *float64 `json:"smgs"`
	Pistols *float64 `json:"pistols"`
	Nades   *float64 `json:"nades"`
	Other   *float64 `json:"other"`
}

type statisticsValuesDTO struct {
	Rating                *float64          `json:"rating"`
	KAST                  *float64          `json:"kast"`
	Impact                *float64          `json:"impact"`
	TotalKills            *float64          `json:"total_kills"`
	HeadshotPercentage    *float64          `json:"headshot_percentage"`
	TotalDeaths           *float64          `json:"total_deaths"`
	KDRatio               *float64          `json:"k/d_ratio"`
	DamagePerRound        *float64          `json:"damage_per_round"`
	GrenadeDamagePerRound *float64          `json:"grenade_damage_per_round"`
	MapsPlayed            *float64          `json:"maps_played"`
	RoundsPlayed          *float64          `json:"rounds_played"`
	KillsPerRound         *float64          `json:"kills_per_round"`
	AssistsPerRound       *float64          `json:"assists_per_round"`
	DeathsPerRound        *float64          `json:"deaths_per_round"`
	SavedByTeammates      *float64          `json:"saved_by_teammates"`
	SavedTeammates        *float64          `json:"saved_teammates"`
	FeaturedRating        featuredRatingDTO `json:"featured_rating"`
	RoundsStats           roundsStatsDTO    `json:"rounds_stats"`
	OpeningStats          openingStatsDTO   `json:"opening_stats"`
	WeaponStats           weaponStatsDTO    `json:"weapon_stats"`
}

type playerStatisticsDTO struct {
	Name     string              `json:"name"`
	FullName string              `json:"fullname"`
	Age      *int                `json:"age"`
	Flag     string              `json:"flag"`
	Team     string              `json:"team"`
	Stats    statisticsValuesDTO `json:"stats"`
}

type rankedPlayerDTO struct {
	ID       int64  `json:"id"`
	Nickname string `json:"nickname"`
	FullName string `json:"fullname"`
	Picture  string `json:"picture"`
	HLTVURL  string `json:"hltv_url"`
}

type rankingEntryDTO struct {
	ID      int64             `json:"id"`
	Ranking int               `json:"ranking"`
	Name    string            `json:"name"`
	Logo    string            `json:"logo"`
	Players []rankedPlayerDTO `json:"players"`
}

type newsItemDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
	PubDate     string `json:"pub_date"`
}

type searchTeamPlayerDTO struct {
	Nickname  string `json:"nickname"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Flag      string `json:"flag"`
	HLTVURL   string `json:"hltv_url"`
}

type searchTeamDTO struct {
	ID      int64                 `json:"id"`
	Name    string                `json:"name"`
	Logo    string                `json:"logo"`
	Flag    string                `json:"flag"`
	HLTVURL string                `json:"hltv_url"`
	Players []searchTeamPlayerDTO `json:"players"`
}

type searchPlayerTeamDTO struct {
	Name    string `json:"name"`
	Logo    string `json:"logo"`
	HLTVURL string `json:"hltv_url"`
}

type searchPlayerDTO struct {
	ID        int64                `json:"id"`
	Nickname  string               `json:"nickname"`
	FirstName string               `json:"firstName"`
	LastName  string               `json:"lastName"`
	Flag      string               `json:"flag"`
	Picture   string               `json:"picture"`
	HLTVURL   string               `json:"hltv_url"`
	Team      *searchPlayerTeamDTO `json:"team"`
}

func countryToDTO(v *team.Country) *countryDTO {
	if v == nil {
		return nil
	}
	return &countryDTO{Name: v.Name, Flag: v.Flag}
}

func teamToDTO(ctx context.Context, v team.Team) teamDTO {
	out := teamDTO{
		ID:               v.ID,
		Name:             v.Name,
		Logo:             v.Logo,
		Ranking:          v.Ranking,
		Country:          countryToDTO(v.Country),
		AveragePlayerAge: v.AveragePlayerAge,
		Coach:            v.Coach,
		Players:          make([]teamPlayerDTO, 0, len(v.Players)),
		SocialMedia:      make([]socialLinkDTO, 0, len(v.SocialMedia)),
		Trophies:         make([]teamTrophyDTO, 0, len(v.Trophies)),
		MapStats:         unavailable,
		LastMaps:         unavailable,
		UpcomingEvents:   make([]teamEventDTO, 0, len(v.UpcomingEvents)),
		Matches: teamMatchesDTO{
			Incoming: upcomingMatchesToDTO(ctx, v.Upcoming),
			Results:  matchResultsToDTO(ctx, v.Results),
		},
	}

	for _, p := range v.Players {
		out.Players = append(out.Players, teamPlayerDTO{
			ID:       p.ID,
			Nickname: p.Nickname,
			FullName: p.FullName,
			Image:    p.Image,
			Country:  countryToDTO(p.Country),
		})
	}
	for _, s := range v.SocialMedia {
		out.SocialMedia = append(out.SocialMedia, socialLinkDTO{Name: s.Name, Link: s.Link})
	}
	for _, t := range v.Trophies {
		out.Trophies = append(out.Trophies, teamTrophyDTO{Name: t.Name, Logo: t.Logo, HLTVURL: t.URL})
	}
	if v.MapStats.Available {
		out.MapStats = mapStatsToDTO(v.MapStats.WinRates)
	}
	if v.RecentMaps.Available {
		items := make([]mapResultDTO, 0, len(v.RecentMaps.Items))
		for _, m := range v.RecentMaps.Items {
			items = append(items, mapResultDTO{Opponent: m.Opponent, Result: m.Result})
		}
		out.LastMaps = items
	}
	for _, e := range v.UpcomingEvents {
		out.UpcomingEvents = append(out.UpcomingEvents, teamEventDTO{
			Name:    e.Name,
			Logo:    e.Logo,
			Date:    eventDateDTO{Start: e.Start, End: e.End},
			HLTVURL: e.URL,
		})
	}

	return out
}

func mapStatsToDTO(rates map[string]float64) mapStatsDTO {
	rate := func(name string) *float64 {
		v, ok := rates[name]
		if !ok {
			return nil
		}
		return &v
	}

	return mapStatsDTO{
		Dust2:    rate("dust2"),
		Mirage:   rate("mirage"),
		Inferno:  rate("inferno"),
		Overpass: rate("overpass"),
		Nuke:     rate("nuke"),
		Vertigo:  rate("vertigo"),
		Ancient:  rate("ancient"),
		Anubis:   rate("anubis"),
	}
}

func upcomingMatchesToDTO(ctx context.Context, items []match.Upcoming) []upcomingMatchDTO {
	_, span := startSpan(ctx, "httpapi.upcomingMatchesToDTO")
	defer span.End()

	out := make([]upcomingMatchDTO, 0, len(items))
	for _, m := range items {
		out = append(out, upcomingMatchDTO{
			ID:         m.ID,
			Opponent:   participantDTO{Name: m.Opponent.Name, Logo: m.Opponent.Logo},
			Tournament: participantDTO{Name: m.Tournament.Name, Logo: m.Tournament.Logo},
			Type:       m.Type,
			Date:       m.StartsAt,
			MatchURL:   m.URL,
		})
	}
	return out
}

func matchResultsToDTO(ctx context.Context, items []match.Result) []matchResultDTO {
	_, span := startSpan(ctx, "httpapi.matchResultsToDTO")
	defer span.End()

	out := make([]matchResultDTO, 0, len(items))
	for _, m := range items {
		out = append(out, matchResultDTO{
			ID:         m.ID,
			Result:     string(m.Outcome),
			Score:      m.Score,
			Opponent:   participantDTO{Name: m.Opponent.Name, Logo: m.Opponent.Logo},
			Tournament: participantDTO{Name: m.Tournament.Name, Logo: m.Tournament.Logo},
			Type:       m.Type,
			MatchURL:   m.URL,
		})
	}
	return out
}

func playerTrophiesToDTO(items []player.Trophy) []playerTrophyDTO {
	out := make([]playerTrophyDTO, 0, len(items))
	for _, t := range items {
		out = append(out, playerTrophyDTO{Name: t.Name, Trophy: t.Image, EventURL: t.EventURL})
	}
	return out
}

func stintToDTO(v player.Stint) stintDTO {
	return stintDTO{
		Name:     v.Name,
		Logo:     v.Logo,
		Date:     stintDateDTO{Entrance: v.Entrance, Left: v.Left},
		Trophies: playerTrophiesToDTO(v.Trophies),
		HLTVURL:  v.URL,
	}
}

func playerToDTO(ctx context.Context, v player.Player) playerDTO {
	_, span := startSpan(ctx, "httpapi.playerToDTO")
	defer span.End()

	out := playerDTO{
		ID:       v.ID,
		Nickname: v.Nickname,
		Name: playerNameDTO{
			FullName:  v.Name.Full,
			FirstName: v.Name.First,
			LastName:  v.Name.Last,
		},
		Picture: v.Picture,
		Age:     v.Age,
		Flag:    v.Flag,
		Teams: playerTeamsDTO{
			GeneralData: unavailable,
			FormerTeams: make([]stintDTO, 0, len(v.FormerTeams)),
		},
		Trophies: playerTrophiesDTO{
			Trophies: playerTrophiesToDTO(v.Trophies),
			MVPs:     playerTrophiesToDTO(v.MVPs),
			Top20: top20DTO{
				HasAppeared:    v.Top20.HasAppeared,
				AllAppearances: make([]appearanceDTO, 0, len(v.Top20.All)),
			},
		},
		MajorWinner: majorWinnerDTO{Winner: v.MajorWinner.Winner, Champions: v.MajorWinner.Champions},
	}

	if v.Career.Available {
		out.Teams.GeneralData = careerDTO{
			NumberTeams:      v.Career.TeamsCount,
			DayInCurrentTeam: v.Career.DaysInCurrentTeam,
			DayInTeam:        v.Career.DaysInTeams,
		}
	}
	if v.CurrentTeam != nil {
		current := stintToDTO(*v.CurrentTeam)
		out.Teams.CurrentTeam = &current
	}
	for _, s := range v.FormerTeams {
		out.Teams.FormerTeams = append(out.Teams.FormerTeams, stintToDTO(s))
	}
	for _, a := range v.Top20.All {
		out.Trophies.Top20.AllAppearances = append(out.Trophies.Top20.AllAppearances, appearanceDTO{Year: a.Year, Position: a.Position, News: a.NewsURL})
	}
	if last := v.Top20.Last; last != nil {
		out.Trophies.Top20.LastAppearance = &appearanceDTO{Year: last.Year, Position: last.Position, News: last.NewsURL}
	}
	if s := v.Stats; s != nil {
		out.Stats = &playerStatsDTO{
			Rating:             s.Rating,
			KillsPerRound:      s.KillsPerRound,
			HeadshotPercentage: s.HeadshotPercentage,
			MapsPlayed:         s.MapsPlayed,
			DeathsPerRound:     s.DeathsPerRound,
			RoundsContributed:  s.RoundsContributed,
		}
	}

	return out
}

func statisticsToDTO(ctx context.Context, v player.Statistics) playerStatisticsDTO {
	_, span := startSpan(ctx, "httpapi.statisticsToDTO")
	defer span.End()

	metric := func(m player.Metric) *float64 {
		value, ok := v.Metric(m)
		if !ok {
			return nil
		}
		return &value
	}

	return playerStatisticsDTO{
		Name:     v.Nickname,
		FullName: v.FullName,
		Age:      v.Age,
		Flag:     v.Flag,
		Team:     v.TeamURL,
		Stats: statisticsValuesDTO{
			Rating:                metric(player.MetricRating),
			KAST:                  metric(player.MetricKAST),
			Impact:                metric(player.MetricImpact),
			TotalKills:            metric(player.MetricTotalKills),
			HeadshotPercentage:    metric(player.MetricHeadshotPercentage),
			TotalDeaths:           metric(player.MetricTotalDeaths),
			KDRatio:               metric(player.MetricKDRatio),
			DamagePerRound:        metric(player.MetricDamagePerRound),
			GrenadeDamagePerRound: metric(player.MetricGrenadeDamagePerRound),
			MapsPlayed:            metric(player.MetricMapsPlayed),
			RoundsPlayed:          metric(player.MetricRoundsPlayed),
			KillsPerRound:         metric(player.MetricKillsPerRound),
			AssistsPerRound:       metric(player.MetricAssistsPerRound),
			DeathsPerRound:        metric(player.MetricDeathsPerRound),
			SavedByTeammates:      metric(player.MetricSavedByTeammates),
			SavedTeammates:        metric(player.MetricSavedTeammates),
			FeaturedRating: featuredRatingDTO{
				VsTop5:  metric(player.MetricVsTop5),
				VsTop10: metric(player.MetricVsTop10),
				VsTop20: metric(player.MetricVsTop20),
				VsTop30: metric(player.MetricVsTop30),
				VsTop50: metric(player.MetricVsTop50),
			},
			RoundsStats: roundsStatsDTO{
				Zero:  metric(player.MetricZeroKillRounds),
				One:   metric(player.MetricOneKillRounds),
				Two:   metric(player.MetricTwoKillRounds),
				Three: metric(player.MetricThreeKillRounds),
				Four:  metric(player.MetricFourKillRounds),
				Five:  metric(player.MetricFiveKillRounds),
			},
			OpeningStats: openingStatsDTO{
				TotalOpeningKills:    metric(player.MetricTotalOpeningKills),
				TotalOpeningDeaths:   metric(player.MetricTotalOpeningDeaths),
				OpeningKillRatio:     metric(player.MetricOpeningKillRatio),
				OpeningKillRating:    metric(player.MetricOpeningKillRating),
				WinAfterOpeningKill:  metric(player.MetricWinAfterOpeningKill),
				FirstKillInWonRounds: metric(player.MetricFirstKillInWonRounds),
			},
			WeaponStats: weaponStatsDTO{
				Rifles:  metric(player.MetricRifleKills),
				Snipers: metric(player.MetricSniperKills),
				SMGs:    metric(player.MetricSMGKills),
				Pistols: metric(player.MetricPistolKills),
				Nades:   metric(player.MetricGrenadeKills),
				Other:   metric(player.MetricOtherKills),
			},
		},
	}
}

func rankingToDTO(ctx context.Context, items []ranking.Entry) []rankingEntryDTO {
	_, span := startSpan(ctx, "httpapi.rankingToDTO")
	defer span.End()

	out := make([]rankingEntryDTO, 0, len(items))
	for _, e := range items {
		players := make([]rankedPlayerDTO, 0, len(e.Players))
		for _, p := range e.Players {
			players = append(players, rankedPlayerDTO{
				ID:       p.ID,
				Nickname: p.Nickname,
				FullName: p.FullName,
				Picture:  p.Picture,
				HLTVURL:  p.URL,
			})
		}
		out = append(out, rankingEntryDTO{
			ID:      e.ID,
			Ranking: e.Position,
			Name:    e.Name,
			Logo:    e.Logo,
			Players: players,
		})
	}
	return out
}

func newsToDTO(items []news.Item) []newsItemDTO {
	out := make([]newsItemDTO, 0, len(items))
	for _, n := range items {
		out = append(out, newsItemDTO{
			Title:       n.Title,
			Description: n.Description,
			Link:        n.Link,
			PubDate:     n.PubDate,
		})
	}
	return out
}

func searchTeamToDTO(v search.Team) searchTeamDTO {
	out := searchTeamDTO{
		ID:      v.ID,
		Name:    v.Name,
		Logo:    v.Logo,
		Flag:    v.Flag,
		HLTVURL: v.URL,
		Players: make([]searchTeamPlayerDTO, 0, len(v.Players)),
	}
	for _, p := range v.Players {
		out.Players = append(out.Players, searchTeamPlayerDTO{
			Nickname:  p.Nickname,
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Flag:      p.Flag,
			HLTVURL:   p.URL,
		})
	}
	return out
}

func searchPlayerToDTO(v search.Player) searchPlayerDTO {
	out := searchPlayerDTO{
		ID:        v.ID,
		Nickname:  v.Nickname,
		FirstName: v.FirstName,
		LastName:  v.LastName,
		Flag:      v.Flag,
		Picture:   v.Picture,
		HLTVURL:   v.URL,
	}
	if v.Team != nil {
		out.Team = &searchPlayerTeamDTO{Name: v.Team.Name, Logo: v.Team.Logo, HLTVURL: v.Team.URL}
	}
	return out
}
