package bot_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/fiverow/gomoku/internal/dependencies/mocks"
	"github.com/fiverow/gomoku/internal/model"
	"github.com/fiverow/gomoku/internal/services/bot"
	"github.com/fiverow/gomoku/internal/services/game"
	"github.com/fiverow/gomoku/internal/storage/memory"
	"github.com/fiverow/gomoku/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	controller *game.Controller
	service    *bot.Service
	mockRandom *mocks.MockRandom
	ctx        context.Context
	gameID     model.GameID
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	storage := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.mockRandom = mocks.NewMockRandom()
	logger := testutil.NopLogger()
	s.controller = game.NewController(storage, mockClock, s.mockRandom, game.DefaultConfig(), logger)
	s.service = bot.NewService(s.controller, bot.NewRandomStrategy(s.mockRandom), logger)
	s.ctx = context.Background()

	s.mockRandom.QueueString("BOTGAME")
	g, err := s.controller.NewGame(s.ctx, 9)
	s.Require().NoError(err)
	s.gameID = g.ID
}

func (s *ServiceSuite) TestGenerateMovePlaysAndPersists() {
	// Empty queue makes Intn return 0: the first empty cell row-major
	mv, outcome, err := s.service.GenerateMove(s.ctx, s.gameID, model.Black)
	s.Require().NoError(err)

	s.False(mv.Pass)
	s.Equal(model.Cell{Row: 1, Col: 1}, mv.Point)
	s.Equal(model.OutcomeContinue, outcome.Kind)

	g, err := s.controller.GetGame(s.ctx, s.gameID)
	s.Require().NoError(err)
	s.Equal(model.Black, g.Board.Occupancy(model.Cell{Row: 1, Col: 1}))
	s.Equal(model.White, g.Board.CurrentPlayer())
}

func (s *ServiceSuite) TestGenerateMoveUsesRandomIndex() {
	s.mockRandom.QueueIntn(3)

	mv, _, err := s.service.GenerateMove(s.ctx, s.gameID, model.Black)
	s.Require().NoError(err)
	s.Equal(model.Cell{Row: 1, Col: 4}, mv.Point)
}

func (s *ServiceSuite) TestGenerateMoveSkipsOccupiedCells() {
	_, err := s.controller.ApplyMove(s.ctx, s.gameID, model.Black,
		model.PointMove(model.Cell{Row: 1, Col: 1}))
	s.Require().NoError(err)

	mv, _, err := s.service.GenerateMove(s.ctx, s.gameID, model.White)
	s.Require().NoError(err)
	s.Equal(model.Cell{Row: 1, Col: 2}, mv.Point)
}

func (s *ServiceSuite) TestGenerateMoveCanWin() {
	for col := 1; col <= 4; col++ {
		_, err := s.controller.ApplyMove(s.ctx, s.gameID, model.Black,
			model.PointMove(model.Cell{Row: 1, Col: col}))
		s.Require().NoError(err)
	}

	// First empty cell row-major is now e1, completing the row
	mv, outcome, err := s.service.GenerateMove(s.ctx, s.gameID, model.Black)
	s.Require().NoError(err)
	s.Equal(model.Cell{Row: 1, Col: 5}, mv.Point)
	s.Equal(model.OutcomeWin, outcome.Kind)
	s.Equal(model.Black, outcome.Winner)
}

func (s *ServiceSuite) TestGenerateMoveOnDecidedGame() {
	for col := 1; col <= 5; col++ {
		_, err := s.controller.ApplyMove(s.ctx, s.gameID, model.Black,
			model.PointMove(model.Cell{Row: 1, Col: col}))
		s.Require().NoError(err)
	}

	_, _, err := s.service.GenerateMove(s.ctx, s.gameID, model.White)
	s.ErrorIs(err, model.ErrGameOver)
}

func (s *ServiceSuite) TestGenerateMoveGameNotFound() {
	_, _, err := s.service.GenerateMove(s.ctx, "missing", model.Black)
	s.ErrorIs(err, model.ErrGameNotFound)
}
