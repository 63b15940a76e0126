package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/fiverow/gomoku/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := goredis.NewClient(&goredis.Options{Addr: s.mini.Addr()})
	cfg := DefaultConfig()
	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	s.NoError(s.storage.Close())
}

func (s *StorageSuite) newGame(id model.GameID, size int) *model.Game {
	board, err := model.NewBoard(size)
	s.Require().NoError(err)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	return &model.Game{
		ID:        id,
		Board:     board,
		Tracker:   model.NewRunTracker(),
		Status:    model.GameStatusOngoing,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *StorageSuite) TestSaveAndGetRoundTrip() {
	game := s.newGame("game1", 9)
	game.Board.Place(model.Cell{Row: 1, Col: 1}, model.Black)
	game.Tracker.RecordPlacement(model.Cell{Row: 1, Col: 1}, model.Black)
	game.Board.Place(model.Cell{Row: 1, Col: 2}, model.Black)
	game.Tracker.RecordPlacement(model.Cell{Row: 1, Col: 2}, model.Black)
	game.Board.SetCurrentPlayer(model.White)
	game.History = append(game.History, model.MoveRecord{
		Number:   1,
		Player:   model.Black,
		Point:    model.Cell{Row: 1, Col: 1},
		PlayedAt: game.CreatedAt,
	})

	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	retrieved, err := s.storage.GetGame(s.ctx, "game1")
	s.Require().NoError(err)

	s.Equal(game.ID, retrieved.ID)
	s.Equal(9, retrieved.Board.Size())
	s.Equal(model.Black, retrieved.Board.Occupancy(model.Cell{Row: 1, Col: 1}))
	s.Equal(model.Black, retrieved.Board.Occupancy(model.Cell{Row: 1, Col: 2}))
	s.Equal(model.Empty, retrieved.Board.Occupancy(model.Cell{Row: 2, Col: 1}))
	s.Equal(model.White, retrieved.Board.CurrentPlayer())
	s.Equal(2, retrieved.Tracker.MaxRun(model.Black))
	s.Equal(2, retrieved.Tracker.RunLength(model.Cell{Row: 1, Col: 1}, model.Black, model.Horizontal))
	s.Require().Len(retrieved.History, 1)
	s.Equal(model.Cell{Row: 1, Col: 1}, retrieved.History[0].Point)
	s.True(game.CreatedAt.Equal(retrieved.CreatedAt))
}

func (s *StorageSuite) TestTrackerSurvivesReload() {
	// A merge after reload must see the runs persisted before it
	game := s.newGame("game1", 9)
	for _, col := range []int{1, 2, 4, 5} {
		cell := model.Cell{Row: 1, Col: col}
		s.Require().NoError(game.Board.Place(cell, model.Black))
		game.Tracker.RecordPlacement(cell, model.Black)
	}
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	retrieved, err := s.storage.GetGame(s.ctx, "game1")
	s.Require().NoError(err)

	s.Require().NoError(retrieved.Board.Place(model.Cell{Row: 1, Col: 3}, model.Black))
	maxRun := retrieved.Tracker.RecordPlacement(model.Cell{Row: 1, Col: 3}, model.Black)
	s.Equal(5, maxRun)
}

func (s *StorageSuite) TestGetNotFound() {
	_, err := s.storage.GetGame(s.ctx, "missing")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestDelete() {
	s.Require().NoError(s.storage.SaveGame(s.ctx, s.newGame("game1", 9)))
	s.Require().NoError(s.storage.DeleteGame(s.ctx, "game1"))

	_, err := s.storage.GetGame(s.ctx, "game1")
	s.ErrorIs(err, model.ErrGameNotFound)

	ids, err := s.storage.ListGameIDs(s.ctx)
	s.Require().NoError(err)
	s.Empty(ids)
}

func (s *StorageSuite) TestListGameIDs() {
	s.Require().NoError(s.storage.SaveGame(s.ctx, s.newGame("game1", 9)))
	s.Require().NoError(s.storage.SaveGame(s.ctx, s.newGame("game2", 13)))

	ids, err := s.storage.ListGameIDs(s.ctx)
	s.Require().NoError(err)
	s.ElementsMatch([]model.GameID{"game1", "game2"}, ids)
}

func (s *StorageSuite) TestExpiredGamesArePrunedFromIndex() {
	s.Require().NoError(s.storage.SaveGame(s.ctx, s.newGame("game1", 9)))
	s.Require().NoError(s.storage.SaveGame(s.ctx, s.newGame("game2", 9)))

	s.mini.FastForward(s.storage.cfg.GameTTL + time.Minute)

	ids, err := s.storage.ListGameIDs(s.ctx)
	s.Require().NoError(err)
	s.Empty(ids)

	_, err = s.storage.GetGame(s.ctx, "game1")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestSaveRefreshesTTL() {
	game := s.newGame("game1", 9)
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	s.mini.FastForward(s.storage.cfg.GameTTL - time.Minute)
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))
	s.mini.FastForward(2 * time.Minute)

	_, err := s.storage.GetGame(s.ctx, "game1")
	s.NoError(err)
}
