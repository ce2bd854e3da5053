package messaging

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/noitanemesis/nnnbot/internal/models"
)

type ServiceTestSuite struct {
	suite.Suite
	svc Service
	ctx context.Context
}

func (s *ServiceTestSuite) SetupTest() {
	svc, err := NewService(&ServiceConfig{})
	s.Require().NoError(err)
	s.svc = svc
	s.ctx = context.Background()
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) TestChannelNameIsDiscordSafe() {
	out, err := s.svc.GetChannelName(s.ctx, &GetChannelNameInput{
		ChallengingPlayerName: "Herr Flick",
		ChallengedPlayerName:  "N0ita!Fan",
		ChallengeID:           17,
	})
	s.Require().NoError(err)
	s.Equal("herr-flick-n0itafan-17", out.Message)
}

func (s *ServiceTestSuite) TestChannelNameFollowsTitle() {
	out, err := s.svc.GetChannelName(s.ctx, &GetChannelNameInput{
		ChallengingPlayerName: "Herr Flick",
		ChallengedPlayerName:  "N0ita!Fan",
		ChallengeID:           17,
		Title:                 "Grudge Match",
	})
	s.Require().NoError(err)
	s.Equal("grudge-match-17", out.Message)
}

func (s *ServiceTestSuite) TestMatchReportedMentionsOpponent() {
	out, err := s.svc.GetMatchReportedMessage(s.ctx, &GetMatchReportedMessageInput{
		ReportingPlayerName: "Herr Flick",
		OpponentDiscordID:   "123456",
	})
	s.Require().NoError(err)
	s.Equal("Herr Flick has reported this match as a loss.  <@123456>, type `!confirm` to lock in the win!", out.Message)
}

func (s *ServiceTestSuite) TestScheduledMessageFormatsUTC() {
	out, err := s.svc.GetMatchScheduledMessage(s.ctx, &GetMatchScheduledMessageInput{
		MatchTime: time.Date(2025, 3, 10, 19, 30, 0, 0, time.UTC),
	})
	s.Require().NoError(err)
	s.Equal("This match is scheduled for Mon, Mar 10, 2025 7:30 PM UTC.", out.Message)
}

func (s *ServiceTestSuite) TestResultMessageScoresFromChallengingSide() {
	out, err := s.svc.GetMatchResultMessage(s.ctx, &GetMatchResultMessageInput{
		ChallengingPlayerName: "Alice",
		ChallengedPlayerName:  "Bob",
		ChallengingPlayerWon:  false,
	})
	s.Require().NoError(err)
	s.Equal("Alice 0-1 Bob", out.Message)
}

func (s *ServiceTestSuite) TestTitleMessages() {
	out, err := s.svc.GetTitleSetMessage(s.ctx, &GetTitleSetMessageInput{Title: "Grudge Match"})
	s.Require().NoError(err)
	s.Equal("The title of this challenge has been set to **Grudge Match**.", out.Message)

	out, err = s.svc.GetTitleSetMessage(s.ctx, &GetTitleSetMessageInput{})
	s.Require().NoError(err)
	s.Equal("The title of this challenge has been unset.", out.Message)
}

func (s *ServiceTestSuite) TestStandingsTiesShowDashes() {
	out, err := s.svc.GetStandingsMessage(s.ctx, &GetStandingsMessageInput{
		Standings: []*models.Standing{
			{PlayerID: 1, DiscordID: "a", Rating: 1600, Won: 4, Lost: 1},
			{PlayerID: 2, DiscordID: "b", Rating: 1530, Won: 3, Lost: 2},
			{PlayerID: 3, DiscordID: "c", Rating: 1530, Won: 2, Lost: 1},
			{PlayerID: 4, DiscordID: "d", Rating: 1470, Won: 1, Lost: 4},
		},
	})
	s.Require().NoError(err)
	s.Equal("**Top Noitas**\n\n1) 1600 - 4-1 <@a>\n2) 1530 - 3-2 <@b>\n--- 1530 - 2-1 <@c>\n4) 1470 - 1-4 <@d>", out.Message)
}
