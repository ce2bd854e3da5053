package challenge

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockmocks "github.com/noitanemesis/nnnbot/internal/common/clock/mocks"
	"github.com/noitanemesis/nnnbot/internal/models"
	"github.com/noitanemesis/nnnbot/internal/notify"
	notifymocks "github.com/noitanemesis/nnnbot/internal/notify/mocks"
	challengerepo "github.com/noitanemesis/nnnbot/internal/repositories/challenge"
	playerrepo "github.com/noitanemesis/nnnbot/internal/repositories/player"
	seasonrepo "github.com/noitanemesis/nnnbot/internal/repositories/season"
	"github.com/noitanemesis/nnnbot/internal/services/messaging"
	ratingsvc "github.com/noitanemesis/nnnbot/internal/services/rating"
	ratingmocks "github.com/noitanemesis/nnnbot/internal/services/rating/mocks"
)

// syncRunner runs jobs inline so tests observe their effects immediately
type syncRunner struct{}

func (r *syncRunner) Run(name string, job func(ctx context.Context) error) {
	_ = job(context.Background())
}

// The lifecycle runs against real miniredis-backed repositories so every
// transition exercises the same persistence the production stores apply.
// The Discord edge and the rating recalculation are mocked.
type ServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	mr     *miniredis.Miniredis
	client *redis.Client

	challengeRepo challengerepo.Repository
	playerRepo    playerrepo.Repository
	seasonRepo    seasonrepo.Repository

	notifier      *notifymocks.MockNotifier
	ratingService *ratingmocks.MockService
	clock         *clockmocks.MockClock
	now           time.Time

	alice *models.Player
	bob   *models.Player
	carol *models.Player

	svc Service
	ctx context.Context
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr
	s.client = redis.NewClient(&redis.Options{Addr: mr.Addr()})

	s.challengeRepo, err = challengerepo.NewRedis(&challengerepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.playerRepo, err = playerrepo.NewRedis(&playerrepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.seasonRepo, err = seasonrepo.NewRedis(&seasonrepo.Config{RedisClient: s.client})
	s.Require().NoError(err)

	s.notifier = notifymocks.NewMockNotifier(s.ctrl)
	s.ratingService = ratingmocks.NewMockService(s.ctrl)
	s.clock = clockmocks.NewMockClock(s.ctrl)
	s.now = time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC)
	s.clock.EXPECT().Now().DoAndReturn(func() time.Time { return s.now }).AnyTimes()

	messages, err := messaging.NewService(&messaging.ServiceConfig{})
	s.Require().NoError(err)

	s.svc, err = New(&Config{
		ChallengeRepo:             s.challengeRepo,
		PlayerRepo:                s.playerRepo,
		SeasonRepo:                s.seasonRepo,
		RatingService:             s.ratingService,
		Notifier:                  s.notifier,
		Messages:                  messages,
		Runner:                    &syncRunner{},
		Clock:                     s.clock,
		Logger:                    zerolog.Nop(),
		AlertsChannelID:           "alerts",
		MatchResultsChannelID:     "results",
		ScheduledMatchesChannelID: "scheduled",
	})
	s.Require().NoError(err)

	s.ctx = context.Background()

	s.alice = s.createPlayer("discord-alice", "Alice")
	s.bob = s.createPlayer("discord-bob", "Bob")
	s.carol = s.createPlayer("discord-carol", "Carol")
}

func (s *ServiceTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
	s.ctrl.Finish()
}

func (s *ServiceTestSuite) createPlayer(discordID, name string) *models.Player {
	p, err := s.playerRepo.CreatePlayer(s.ctx, &playerrepo.CreatePlayerInput{
		DiscordID: discordID,
		Name:      name,
	})
	s.Require().NoError(err)
	return p
}

// expectChannelSetup covers the channel provisioning a new challenge
// performs: create, announce, pin. The announcement send is optional so
// a test-wide send expectation can absorb it.
func (s *ServiceTestSuite) expectChannelSetup(channelID string) {
	s.notifier.EXPECT().
		CreatePrivateChannel(gomock.Any(), gomock.Any()).
		Return(&notify.CreatePrivateChannelOutput{ChannelID: channelID}, nil)
	s.notifier.EXPECT().
		SendMessage(gomock.Any(), gomock.Any()).
		Return(&notify.SendMessageOutput{MessageID: "msg"}, nil).
		MaxTimes(1)
	s.notifier.EXPECT().
		PinMessage(gomock.Any(), gomock.Any()).
		Return(nil)
}

// allowMessages lets a test ignore announcement traffic it is not
// asserting on
func (s *ServiceTestSuite) allowMessages() {
	s.notifier.EXPECT().
		SendMessage(gomock.Any(), gomock.Any()).
		Return(&notify.SendMessageOutput{MessageID: "msg"}, nil).
		AnyTimes()
}

func (s *ServiceTestSuite) createChallenge() *models.Challenge {
	s.expectChannelSetup("chan-1")

	out, err := s.svc.CreateChallenge(s.ctx, &CreateChallengeInput{
		ChallengingPlayerID: s.alice.ID,
		ChallengedPlayerID:  s.bob.ID,
	})
	s.Require().NoError(err)
	return out.Challenge
}

// scheduleChallenge moves a fresh challenge to the scheduled state
func (s *ServiceTestSuite) scheduleChallenge(challengeID int64, matchTime time.Time) *models.Challenge {
	out, err := s.svc.SetTime(s.ctx, &SetTimeInput{ChallengeID: challengeID, Date: matchTime})
	s.Require().NoError(err)
	return out.Challenge
}

// confirmChallenge moves a scheduled challenge to the confirmed state
// with the challenging player as the winner
func (s *ServiceTestSuite) confirmChallenge(challengeID int64) *models.Challenge {
	_, err := s.svc.ReportMatch(s.ctx, &ReportMatchInput{ChallengeID: challengeID, PlayerID: s.bob.ID})
	s.Require().NoError(err)

	out, err := s.svc.ConfirmMatch(s.ctx, &ConfirmMatchInput{ChallengeID: challengeID, PlayerID: s.alice.ID})
	s.Require().NoError(err)
	return out.Challenge
}

func (s *ServiceTestSuite) TestCreateChallenge() {
	s.notifier.EXPECT().
		CreatePrivateChannel(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *notify.CreatePrivateChannelInput) (*notify.CreatePrivateChannelOutput, error) {
			s.Equal("alice-bob-1", input.Name)
			s.Contains(input.Topic, "Alice vs Bob")
			s.ElementsMatch([]string{"discord-alice", "discord-bob"}, input.ParticipantDiscordIDs)
			return &notify.CreatePrivateChannelOutput{ChannelID: "chan-1"}, nil
		})
	s.notifier.EXPECT().
		SendMessage(gomock.Any(), &notify.SendMessageInput{ChannelID: "chan-1", Content: "Alice challenged Bob."}).
		Return(&notify.SendMessageOutput{MessageID: "msg-1"}, nil)
	s.notifier.EXPECT().
		PinMessage(gomock.Any(), &notify.PinMessageInput{ChannelID: "chan-1", MessageID: "msg-1"}).
		Return(nil)

	out, err := s.svc.CreateChallenge(s.ctx, &CreateChallengeInput{
		ChallengingPlayerID: s.alice.ID,
		ChallengedPlayerID:  s.bob.ID,
	})
	s.Require().NoError(err)
	s.Equal("chan-1", out.Challenge.ChannelID)
	s.Equal(models.ChallengeStateCreated, out.Challenge.State())
}

func (s *ServiceTestSuite) TestCreateChallengeRejectsSelf() {
	_, err := s.svc.CreateChallenge(s.ctx, &CreateChallengeInput{
		ChallengingPlayerID: s.alice.ID,
		ChallengedPlayerID:  s.alice.ID,
	})
	s.ErrorIs(err, ErrSelfChallenge)
}

func (s *ServiceTestSuite) TestCreateChallengeRejectsOpenDuplicate() {
	s.createChallenge()

	// Either direction counts as the same pair
	_, err := s.svc.CreateChallenge(s.ctx, &CreateChallengeInput{
		ChallengingPlayerID: s.bob.ID,
		ChallengedPlayerID:  s.alice.ID,
	})
	s.ErrorIs(err, ErrExistingChallenge)
}

func (s *ServiceTestSuite) TestSuggestAndConfirmTime() {
	c := s.createChallenge()
	s.allowMessages()

	suggested := s.now.Add(48 * time.Hour)
	out, err := s.svc.SuggestTime(s.ctx, &SuggestTimeInput{
		ChallengeID: c.ID,
		PlayerID:    s.alice.ID,
		Date:        suggested,
	})
	s.Require().NoError(err)
	s.Equal(models.ChallengeStateTimeSuggested, out.Challenge.State())

	// The suggester cannot accept their own suggestion
	_, err = s.svc.ConfirmTime(s.ctx, &ConfirmTimeInput{ChallengeID: c.ID, PlayerID: s.alice.ID})
	s.ErrorIs(err, ErrOwnSuggestion)

	confirmed, err := s.svc.ConfirmTime(s.ctx, &ConfirmTimeInput{ChallengeID: c.ID, PlayerID: s.bob.ID})
	s.Require().NoError(err)
	s.Equal(models.ChallengeStateScheduled, confirmed.Challenge.State())
	s.Require().NotNil(confirmed.Challenge.MatchTime)
	s.True(confirmed.Challenge.MatchTime.Equal(suggested))
	s.Nil(confirmed.Challenge.SuggestedTime)
}

func (s *ServiceTestSuite) TestConfirmTimeRequiresSuggestion() {
	c := s.createChallenge()

	_, err := s.svc.ConfirmTime(s.ctx, &ConfirmTimeInput{ChallengeID: c.ID, PlayerID: s.bob.ID})
	s.ErrorIs(err, ErrNoSuggestedTime)
}

func (s *ServiceTestSuite) TestSuggestTimeRejectsOutsider() {
	c := s.createChallenge()

	_, err := s.svc.SuggestTime(s.ctx, &SuggestTimeInput{
		ChallengeID: c.ID,
		PlayerID:    s.carol.ID,
		Date:        s.now.Add(time.Hour),
	})
	s.ErrorIs(err, ErrNotAParticipant)
}

func (s *ServiceTestSuite) TestScheduledAnnouncementReachesLeagueChannel() {
	c := s.createChallenge()

	matchTime := s.now.Add(24 * time.Hour)
	scheduled := "This match is scheduled for Sat, Mar 16, 2024 6:00 PM UTC."
	s.notifier.EXPECT().
		SendMessage(gomock.Any(), &notify.SendMessageInput{ChannelID: "chan-1", Content: scheduled}).
		Return(&notify.SendMessageOutput{MessageID: "msg"}, nil)
	s.notifier.EXPECT().
		SendMessage(gomock.Any(), &notify.SendMessageInput{ChannelID: "scheduled", Content: scheduled}).
		Return(&notify.SendMessageOutput{MessageID: "msg"}, nil)

	_, err := s.svc.SetTime(s.ctx, &SetTimeInput{ChallengeID: c.ID, Date: matchTime})
	s.Require().NoError(err)
}

func (s *ServiceTestSuite) TestReportMatchHonorsGraceWindow() {
	c := s.createChallenge()
	s.allowMessages()

	// Scheduled well in the future, cannot be reported yet
	s.scheduleChallenge(c.ID, s.now.Add(time.Hour))
	_, err := s.svc.ReportMatch(s.ctx, &ReportMatchInput{ChallengeID: c.ID, PlayerID: s.bob.ID})
	s.ErrorIs(err, ErrMatchNotPlayed)

	// Inside the grace window the report goes through
	s.now = s.now.Add(56 * time.Minute)
	out, err := s.svc.ReportMatch(s.ctx, &ReportMatchInput{ChallengeID: c.ID, PlayerID: s.bob.ID})
	s.Require().NoError(err)
	s.Equal(models.ChallengeStateReported, out.Challenge.State())
}

func (s *ServiceTestSuite) TestReportMatchRequiresMatchTime() {
	c := s.createChallenge()

	_, err := s.svc.ReportMatch(s.ctx, &ReportMatchInput{ChallengeID: c.ID, PlayerID: s.bob.ID})
	s.ErrorIs(err, ErrNoMatchTime)
}

func (s *ServiceTestSuite) TestConfirmMatchOnlyByWinner() {
	c := s.createChallenge()
	s.allowMessages()
	s.scheduleChallenge(c.ID, s.now)

	// Bob reports the loss, crediting Alice with the win
	out, err := s.svc.ReportMatch(s.ctx, &ReportMatchInput{ChallengeID: c.ID, PlayerID: s.bob.ID})
	s.Require().NoError(err)
	winnerID, ok := out.Challenge.WinnerID()
	s.Require().True(ok)
	s.Equal(s.alice.ID, winnerID)

	// The reporter cannot confirm their own report
	_, err = s.svc.ConfirmMatch(s.ctx, &ConfirmMatchInput{ChallengeID: c.ID, PlayerID: s.bob.ID})
	s.ErrorIs(err, ErrNotTheWinner)

	confirmed, err := s.svc.ConfirmMatch(s.ctx, &ConfirmMatchInput{ChallengeID: c.ID, PlayerID: s.alice.ID})
	s.Require().NoError(err)
	s.Equal(models.ChallengeStateConfirmed, confirmed.Challenge.State())
}

func (s *ServiceTestSuite) TestConfirmMatchRequiresReport() {
	c := s.createChallenge()
	s.allowMessages()
	s.scheduleChallenge(c.ID, s.now)

	_, err := s.svc.ConfirmMatch(s.ctx, &ConfirmMatchInput{ChallengeID: c.ID, PlayerID: s.alice.ID})
	s.ErrorIs(err, ErrNotReported)
}

func (s *ServiceTestSuite) TestSetWinnerSkipsTwoStep() {
	c := s.createChallenge()
	s.allowMessages()

	out, err := s.svc.SetWinner(s.ctx, &SetWinnerInput{ChallengeID: c.ID, WinnerPlayerID: s.bob.ID})
	s.Require().NoError(err)
	s.Equal(models.ChallengeStateConfirmed, out.Challenge.State())
	winnerID, ok := out.Challenge.WinnerID()
	s.Require().True(ok)
	s.Equal(s.bob.ID, winnerID)
}

func (s *ServiceTestSuite) TestVoidTransitions() {
	c := s.createChallenge()
	s.allowMessages()

	// Restoring an unvoided challenge is invalid
	_, err := s.svc.Void(s.ctx, &VoidInput{ChallengeID: c.ID, Voiding: false})
	s.ErrorIs(err, ErrChallengeNotVoided)

	out, err := s.svc.Void(s.ctx, &VoidInput{ChallengeID: c.ID, Voiding: true})
	s.Require().NoError(err)
	s.True(out.Challenge.Voided())

	// Voiding twice is invalid
	_, err = s.svc.Void(s.ctx, &VoidInput{ChallengeID: c.ID, Voiding: true})
	s.ErrorIs(err, ErrChallengeVoided)

	// A voided challenge rejects lifecycle operations
	_, err = s.svc.SuggestTime(s.ctx, &SuggestTimeInput{
		ChallengeID: c.ID,
		PlayerID:    s.alice.ID,
		Date:        s.now.Add(time.Hour),
	})
	s.ErrorIs(err, ErrChallengeVoided)

	restored, err := s.svc.Void(s.ctx, &VoidInput{ChallengeID: c.ID, Voiding: false})
	s.Require().NoError(err)
	s.False(restored.Challenge.Voided())
}

func (s *ServiceTestSuite) TestCloseRequiresConfirmedOrVoided() {
	c := s.createChallenge()

	_, err := s.svc.Close(s.ctx, &CloseInput{ChallengeID: c.ID})
	s.ErrorIs(err, ErrNotCloseable)
}

func (s *ServiceTestSuite) TestCloseConfirmedChallenge() {
	season, err := s.seasonRepo.CreateSeason(s.ctx, &seasonrepo.CreateSeasonInput{
		StartDate: s.now.Add(-time.Hour),
		EndDate:   s.now.Add(30 * 24 * time.Hour),
		K:         10,
	})
	s.Require().NoError(err)

	c := s.createChallenge()
	s.allowMessages()
	s.scheduleChallenge(c.ID, s.now)
	s.confirmChallenge(c.ID)

	s.ratingService.EXPECT().
		RecalculateSeason(gomock.Any(), &ratingsvc.RecalculateSeasonInput{Season: season.ID}).
		Return(nil)
	s.notifier.EXPECT().
		DeleteChannel(gomock.Any(), &notify.DeleteChannelInput{ChannelID: "chan-1"}).
		Return(nil)

	out, err := s.svc.Close(s.ctx, &CloseInput{ChallengeID: c.ID})
	s.Require().NoError(err)
	s.Equal(models.ChallengeStateClosed, out.Challenge.State())
	s.Equal(season.ID, out.Challenge.Season)

	// Closed means closed
	_, err = s.svc.Close(s.ctx, &CloseInput{ChallengeID: c.ID})
	s.ErrorIs(err, ErrChallengeClosed)
}

func (s *ServiceTestSuite) TestClosePostseasonCountsTowardPriorSeason() {
	first, err := s.seasonRepo.CreateSeason(s.ctx, &seasonrepo.CreateSeasonInput{
		StartDate: s.now.Add(-30 * 24 * time.Hour),
		EndDate:   s.now.Add(-time.Hour),
		K:         10,
	})
	s.Require().NoError(err)
	_, err = s.seasonRepo.CreateSeason(s.ctx, &seasonrepo.CreateSeasonInput{
		StartDate: s.now.Add(-time.Hour),
		EndDate:   s.now.Add(30 * 24 * time.Hour),
		K:         10,
	})
	s.Require().NoError(err)

	c := s.createChallenge()
	s.allowMessages()
	s.scheduleChallenge(c.ID, s.now)
	_, err = s.svc.SetPostseason(s.ctx, &SetPostseasonInput{ChallengeID: c.ID, Postseason: true})
	s.Require().NoError(err)
	s.confirmChallenge(c.ID)

	s.ratingService.EXPECT().
		RecalculateSeason(gomock.Any(), &ratingsvc.RecalculateSeasonInput{Season: first.ID}).
		Return(nil)
	s.notifier.EXPECT().
		DeleteChannel(gomock.Any(), gomock.Any()).
		Return(nil)

	out, err := s.svc.Close(s.ctx, &CloseInput{ChallengeID: c.ID})
	s.Require().NoError(err)
	s.Equal(first.ID, out.Challenge.Season)
}

func (s *ServiceTestSuite) TestCloseVoidedChallengeSkipsRecalculation() {
	c := s.createChallenge()
	s.allowMessages()

	_, err := s.svc.Void(s.ctx, &VoidInput{ChallengeID: c.ID, Voiding: true})
	s.Require().NoError(err)

	// No rating expectations: a voided close must not recalculate
	s.notifier.EXPECT().
		DeleteChannel(gomock.Any(), &notify.DeleteChannelInput{ChannelID: "chan-1"}).
		Return(nil)

	out, err := s.svc.Close(s.ctx, &CloseInput{ChallengeID: c.ID})
	s.Require().NoError(err)
	s.Equal(models.ChallengeStateClosed, out.Challenge.State())
	s.Zero(out.Challenge.Season)
}

func (s *ServiceTestSuite) TestNotificationFailureStillPersists() {
	c := s.createChallenge()

	s.notifier.EXPECT().
		SendMessage(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("discord is down"))

	suggested := s.now.Add(time.Hour)
	out, err := s.svc.SuggestTime(s.ctx, &SuggestTimeInput{
		ChallengeID: c.ID,
		PlayerID:    s.alice.ID,
		Date:        suggested,
	})

	var notifyErr *NotificationError
	s.Require().ErrorAs(err, &notifyErr)
	s.Require().NotNil(out)
	s.Equal(models.ChallengeStateTimeSuggested, out.Challenge.State())

	// The suggestion survived the failed announcement
	stored, err := s.challengeRepo.GetChallenge(s.ctx, &challengerepo.GetChallengeInput{ChallengeID: c.ID})
	s.Require().NoError(err)
	s.Require().NotNil(stored.SuggestedTime)
	s.True(stored.SuggestedTime.Equal(suggested))
}

func (s *ServiceTestSuite) TestRematchFlow() {
	c := s.createChallenge()
	s.allowMessages()
	s.scheduleChallenge(c.ID, s.now)
	s.confirmChallenge(c.ID)

	// A rematch needs a request first
	_, err := s.svc.CreateRematch(s.ctx, &CreateRematchInput{ChallengeID: c.ID, PlayerID: s.alice.ID})
	s.ErrorIs(err, ErrNoRematchRequested)

	_, err = s.svc.RequestRematch(s.ctx, &RequestRematchInput{ChallengeID: c.ID, PlayerID: s.bob.ID})
	s.Require().NoError(err)

	// The requester cannot accept their own request
	_, err = s.svc.CreateRematch(s.ctx, &CreateRematchInput{ChallengeID: c.ID, PlayerID: s.bob.ID})
	s.ErrorIs(err, ErrOwnRematchRequest)

	s.expectChannelSetup("chan-2")
	out, err := s.svc.CreateRematch(s.ctx, &CreateRematchInput{ChallengeID: c.ID, PlayerID: s.alice.ID})
	s.Require().NoError(err)

	s.NotNil(out.Challenge.RematchedTime)
	s.NotEqual(c.ID, out.Rematch.ID)
	s.Equal("chan-2", out.Rematch.ChannelID)
	s.Equal(models.ChallengeStateScheduled, out.Rematch.State())
	s.Require().NotNil(out.Rematch.MatchTime)
	s.True(out.Rematch.MatchTime.Equal(s.now))

	// A second rematch of the same challenge is invalid
	_, err = s.svc.RequestRematch(s.ctx, &RequestRematchInput{ChallengeID: c.ID, PlayerID: s.alice.ID})
	s.ErrorIs(err, ErrAlreadyRematched)
}

func (s *ServiceTestSuite) TestRematchChannelFailureStillSurfaces() {
	c := s.createChallenge()
	s.allowMessages()
	s.scheduleChallenge(c.ID, s.now)
	s.confirmChallenge(c.ID)

	_, err := s.svc.RequestRematch(s.ctx, &RequestRematchInput{ChallengeID: c.ID, PlayerID: s.bob.ID})
	s.Require().NoError(err)

	s.notifier.EXPECT().
		CreatePrivateChannel(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("discord is down"))

	out, err := s.svc.CreateRematch(s.ctx, &CreateRematchInput{ChallengeID: c.ID, PlayerID: s.alice.ID})

	var notifyErr *NotificationError
	s.Require().ErrorAs(err, &notifyErr)
	s.Require().NotNil(out)
	s.NotNil(out.Challenge.RematchedTime)

	// The rematch persisted and is scheduled even though its channel is
	// missing
	s.Require().NotNil(out.Rematch)
	s.Empty(out.Rematch.ChannelID)
	s.Equal(models.ChallengeStateScheduled, out.Rematch.State())
	s.Require().NotNil(out.Rematch.MatchTime)
	s.True(out.Rematch.MatchTime.Equal(s.now))

	stored, err := s.challengeRepo.GetChallenge(s.ctx, &challengerepo.GetChallengeInput{ChallengeID: out.Rematch.ID})
	s.Require().NoError(err)
	s.Require().NotNil(stored.MatchTime)
	s.True(stored.MatchTime.Equal(s.now))
}

func (s *ServiceTestSuite) TestRematchRequiresConfirmedMatch() {
	c := s.createChallenge()

	_, err := s.svc.RequestRematch(s.ctx, &RequestRematchInput{ChallengeID: c.ID, PlayerID: s.alice.ID})
	s.ErrorIs(err, ErrNotConfirmed)
}

func (s *ServiceTestSuite) TestSetTitleRenamesChannel() {
	c := s.createChallenge()
	s.allowMessages()

	s.notifier.EXPECT().
		RenameChannel(gomock.Any(), &notify.RenameChannelInput{ChannelID: "chan-1", Name: "grudge-match-1"}).
		Return(nil)

	out, err := s.svc.SetTitle(s.ctx, &SetTitleInput{ChallengeID: c.ID, Title: "Grudge Match"})
	s.Require().NoError(err)
	s.Equal("Grudge Match", out.Challenge.Title)
}

func (s *ServiceTestSuite) TestStatsRoundTrip() {
	c := s.createChallenge()
	s.allowMessages()
	s.scheduleChallenge(c.ID, s.now)
	s.confirmChallenge(c.ID)

	out, err := s.svc.SetStat(s.ctx, &SetStatInput{
		ChallengeID: c.ID,
		PlayerID:    s.bob.ID,
		Depth:       1200,
		Time:        1800,
		Completed:   false,
	})
	s.Require().NoError(err)

	stats := out.Challenge.Stats.ChallengedPlayer
	s.Require().NotNil(stats.Depth)
	s.Equal(1200, *stats.Depth)

	removed, err := s.svc.RemoveStat(s.ctx, &RemoveStatInput{ChallengeID: c.ID, PlayerID: s.bob.ID})
	s.Require().NoError(err)

	// The win record survives a stat removal
	stats = removed.Challenge.Stats.ChallengedPlayer
	s.Nil(stats.Depth)
	s.Require().NotNil(stats.Won)
	s.False(*stats.Won)

	commented, err := s.svc.SetComment(s.ctx, &SetCommentInput{
		ChallengeID: c.ID,
		PlayerID:    s.alice.ID,
		Comment:     "lost my third heart to a stevari",
	})
	s.Require().NoError(err)
	s.Equal("lost my third heart to a stevari", commented.Challenge.Stats.ChallengingPlayer.Comment)
}

func (s *ServiceTestSuite) TestStatRejectsOutsider() {
	c := s.createChallenge()

	_, err := s.svc.SetStat(s.ctx, &SetStatInput{ChallengeID: c.ID, PlayerID: s.carol.ID, Depth: 1})
	s.ErrorIs(err, ErrNotAParticipant)
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}
