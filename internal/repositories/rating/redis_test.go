package rating

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/noitanemesis/nnnbot/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
	ctx    context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
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
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) seedSeason() {
	err := s.repo.UpdateRatingsForSeason(s.ctx, &UpdateRatingsForSeasonInput{
		Season: 1,
		Ratings: []*models.Rating{
			{PlayerID: 1, Season: 1, Rating: 1530},
			{PlayerID: 2, Season: 1, Rating: 1470},
			{PlayerID: 3, Season: 1, Rating: 1530},
			{PlayerID: 4, Season: 1, Rating: 1600},
		},
	})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TestGetForPlayerBySeason() {
	s.seedSeason()

	result, err := s.repo.GetForPlayerBySeason(s.ctx, &GetForPlayerBySeasonInput{
		PlayerID: 4,
		Season:   1,
	})
	s.Require().NoError(err)
	s.Equal(1, result.Rank)
	s.Equal(1600.0, result.Rating)
}

func (s *RedisRepositoryTestSuite) TestTiedPlayersShareRank() {
	s.seedSeason()

	for _, playerID := range []int64{1, 3} {
		result, err := s.repo.GetForPlayerBySeason(s.ctx, &GetForPlayerBySeasonInput{
			PlayerID: playerID,
			Season:   1,
		})
		s.Require().NoError(err)
		s.Equal(2, result.Rank)
	}

	// The player below a tie ranks behind both tied players
	result, err := s.repo.GetForPlayerBySeason(s.ctx, &GetForPlayerBySeasonInput{
		PlayerID: 2,
		Season:   1,
	})
	s.Require().NoError(err)
	s.Equal(4, result.Rank)
}

func (s *RedisRepositoryTestSuite) TestGetForPlayerBySeasonNotFound() {
	s.seedSeason()

	_, err := s.repo.GetForPlayerBySeason(s.ctx, &GetForPlayerBySeasonInput{
		PlayerID: 99,
		Season:   1,
	})
	s.Require().ErrorIs(err, ErrRatingNotFound)

	_, err = s.repo.GetForPlayerBySeason(s.ctx, &GetForPlayerBySeasonInput{
		PlayerID: 1,
		Season:   2,
	})
	s.Require().ErrorIs(err, ErrRatingNotFound)
}

func (s *RedisRepositoryTestSuite) TestGetTopPlayersOrdering() {
	s.seedSeason()

	top, err := s.repo.GetTopPlayers(s.ctx, &GetTopPlayersInput{Season: 1, Limit: 3})
	s.Require().NoError(err)
	s.Require().Len(top, 3)
	s.Equal(int64(4), top[0].PlayerID)
	s.Equal(1600.0, top[0].Rating)
	s.Equal(1530.0, top[1].Rating)
	s.Equal(1530.0, top[2].Rating)
}

func (s *RedisRepositoryTestSuite) TestUpdateRatingsReplacesSet() {
	s.seedSeason()

	err := s.repo.UpdateRatingsForSeason(s.ctx, &UpdateRatingsForSeasonInput{
		Season: 1,
		Ratings: []*models.Rating{
			{PlayerID: 1, Season: 1, Rating: 1510},
		},
	})
	s.Require().NoError(err)

	top, err := s.repo.GetTopPlayers(s.ctx, &GetTopPlayersInput{Season: 1})
	s.Require().NoError(err)
	s.Require().Len(top, 1)
	s.Equal(int64(1), top[0].PlayerID)
	s.Equal(1510.0, top[0].Rating)
}
