package player

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestCreatePlayerAllocatesSequentialIDs() {
	first, err := s.repo.CreatePlayer(context.Background(), &CreatePlayerInput{
		DiscordID: "discord-1",
		Name:      "Player One",
	})
	s.Require().NoError(err)

	second, err := s.repo.CreatePlayer(context.Background(), &CreatePlayerInput{
		DiscordID: "discord-2",
		Name:      "Player Two",
	})
	s.Require().NoError(err)

	s.Equal(int64(1), first.ID)
	s.Equal(int64(2), second.ID)
	s.True(first.Active)
}

func (s *RedisRepositoryTestSuite) TestGetPlayer() {
	created, err := s.repo.CreatePlayer(context.Background(), &CreatePlayerInput{
		DiscordID: "discord-1",
		Name:      "Player One",
		Timezone:  "Europe/Helsinki",
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetPlayer(context.Background(), &GetPlayerInput{
		PlayerID: created.ID,
	})
	s.Require().NoError(err)

	s.Equal(created.ID, retrieved.ID)
	s.Equal("discord-1", retrieved.DiscordID)
	s.Equal("Player One", retrieved.Name)
	s.Equal("Europe/Helsinki", retrieved.Timezone)
}

func (s *RedisRepositoryTestSuite) TestGetPlayerNotFound() {
	_, err := s.repo.GetPlayer(context.Background(), &GetPlayerInput{
		PlayerID: 42,
	})
	s.Require().ErrorIs(err, ErrPlayerNotFound)
}

func (s *RedisRepositoryTestSuite) TestGetPlayerByDiscordID() {
	created, err := s.repo.CreatePlayer(context.Background(), &CreatePlayerInput{
		DiscordID: "discord-1",
		Name:      "Player One",
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetPlayerByDiscordID(context.Background(), &GetPlayerByDiscordIDInput{
		DiscordID: "discord-1",
	})
	s.Require().NoError(err)
	s.Equal(created.ID, retrieved.ID)

	_, err = s.repo.GetPlayerByDiscordID(context.Background(), &GetPlayerByDiscordIDInput{
		DiscordID: "discord-unknown",
	})
	s.Require().ErrorIs(err, ErrPlayerNotFound)
}

func (s *RedisRepositoryTestSuite) TestSavePlayerUpdates() {
	created, err := s.repo.CreatePlayer(context.Background(), &CreatePlayerInput{
		DiscordID: "discord-1",
		Name:      "Player One",
	})
	s.Require().NoError(err)

	created.Name = "Renamed"
	created.Active = false

	err = s.repo.SavePlayer(context.Background(), &SavePlayerInput{Player: created})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetPlayer(context.Background(), &GetPlayerInput{PlayerID: created.ID})
	s.Require().NoError(err)
	s.Equal("Renamed", retrieved.Name)
	s.False(retrieved.Active)
}
