package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/fiverow/gomoku/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
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

func (s *StorageSuite) TestSaveAndGet() {
	game := s.newGame("game1", 9)
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	retrieved, err := s.storage.GetGame(s.ctx, "game1")
	s.Require().NoError(err)
	s.Equal(game.ID, retrieved.ID)
	s.Equal(9, retrieved.Board.Size())
}

func (s *StorageSuite) TestGetNotFound() {
	_, err := s.storage.GetGame(s.ctx, "missing")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestSaveOverwrites() {
	s.Require().NoError(s.storage.SaveGame(s.ctx, s.newGame("game1", 9)))
	s.Require().NoError(s.storage.SaveGame(s.ctx, s.newGame("game1", 13)))

	retrieved, err := s.storage.GetGame(s.ctx, "game1")
	s.Require().NoError(err)
	s.Equal(13, retrieved.Board.Size())
}

func (s *StorageSuite) TestDelete() {
	s.Require().NoError(s.storage.SaveGame(s.ctx, s.newGame("game1", 9)))
	s.Require().NoError(s.storage.DeleteGame(s.ctx, "game1"))

	_, err := s.storage.GetGame(s.ctx, "game1")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestDeleteMissingIsNoError() {
	s.NoError(s.storage.DeleteGame(s.ctx, "missing"))
}

func (s *StorageSuite) TestListGameIDs() {
	ids, err := s.storage.ListGameIDs(s.ctx)
	s.Require().NoError(err)
	s.Empty(ids)

	s.Require().NoError(s.storage.SaveGame(s.ctx, s.newGame("game1", 9)))
	s.Require().NoError(s.storage.SaveGame(s.ctx, s.newGame("game2", 9)))

	ids, err = s.storage.ListGameIDs(s.ctx)
	s.Require().NoError(err)
	s.ElementsMatch([]model.GameID{"game1", "game2"}, ids)
}
