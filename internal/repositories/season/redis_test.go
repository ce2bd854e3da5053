package season

import (
	"context"
	"testing"
	"time"

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

func (s *RedisRepositoryTestSuite) createFirstSeason() {
	_, err := s.repo.CreateSeason(context.Background(), &CreateSeasonInput{
		StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		K:         10,
	})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TestCreateSeasonNumbersSequentially() {
	s.createFirstSeason()

	second, err := s.repo.CreateSeason(context.Background(), &CreateSeasonInput{
		StartDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		K:         15,
	})
	s.Require().NoError(err)
	s.Equal(int64(2), second.ID)

	numbers, err := s.repo.GetSeasonNumbers(context.Background())
	s.Require().NoError(err)
	s.Equal([]int64{1, 2}, numbers)
}

func (s *RedisRepositoryTestSuite) TestGetSeasonFromDateWithinKnownSeason() {
	s.createFirstSeason()

	season, err := s.repo.GetSeasonFromDate(context.Background(), &GetSeasonFromDateInput{
		Date: time.Date(2025, 2, 14, 18, 0, 0, 0, time.UTC),
	})
	s.Require().NoError(err)
	s.Equal(int64(1), season.ID)
}

func (s *RedisRepositoryTestSuite) TestGetSeasonFromDateEndDateIsExclusive() {
	s.createFirstSeason()

	// The end date itself belongs to the next season
	season, err := s.repo.GetSeasonFromDate(context.Background(), &GetSeasonFromDateInput{
		Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	s.Require().NoError(err)
	s.Equal(int64(2), season.ID)
}

func (s *RedisRepositoryTestSuite) TestGetSeasonFromDateCreatesContiguousSeasons() {
	s.createFirstSeason()

	// Half a year past the first season's end: two more seasons needed
	season, err := s.repo.GetSeasonFromDate(context.Background(), &GetSeasonFromDateInput{
		Date: time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC),
	})
	s.Require().NoError(err)
	s.Equal(int64(3), season.ID)
	s.Equal(10, season.K)

	second, err := s.repo.GetSeason(context.Background(), &GetSeasonInput{Season: 2})
	s.Require().NoError(err)
	s.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), second.StartDate)
	s.Equal(time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), second.EndDate)
	s.Equal(second.EndDate, season.StartDate)
}

func (s *RedisRepositoryTestSuite) TestGetSeasonFromDateBeforeFirstSeason() {
	s.createFirstSeason()

	_, err := s.repo.GetSeasonFromDate(context.Background(), &GetSeasonFromDateInput{
		Date: time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC),
	})
	s.Require().ErrorIs(err, ErrSeasonNotFound)
}

func (s *RedisRepositoryTestSuite) TestGetSeasonFromDateNoSeasons() {
	_, err := s.repo.GetSeasonFromDate(context.Background(), &GetSeasonFromDateInput{
		Date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	s.Require().ErrorIs(err, ErrSeasonNotFound)
}

func (s *RedisRepositoryTestSuite) TestGetSeasonNotFound() {
	_, err := s.repo.GetSeason(context.Background(), &GetSeasonInput{Season: 7})
	s.Require().ErrorIs(err, ErrSeasonNotFound)
}
