package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/fiverow/gomoku/internal/api/apierr"
	"github.com/fiverow/gomoku/internal/api/response"
	"github.com/fiverow/gomoku/internal/gtp"
	"github.com/fiverow/gomoku/internal/model"
	"github.com/fiverow/gomoku/internal/services/bot"
	"github.com/fiverow/gomoku/internal/services/game"
)

// GameHandler handles game-related endpoints
type GameHandler struct {
	gameController *game.Controller
	botService     *bot.Service
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameController *game.Controller, botService *bot.Service) *GameHandler {
	return &GameHandler{
		gameController: gameController,
		botService:     botService,
	}
}

type createGameRequest struct {
	Size int `json:"size"`
}

type playRequest struct {
	Color string `json:"color"`
	Move  string `json:"move"` // protocol token: point or "pass"
}

type genmoveRequest struct {
	Color string `json:"color"`
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid JSON body"))
		return
	}
	if req.Size == 0 {
		req.Size = h.gameController.DefaultBoardSize()
	}

	g, err := h.gameController.NewGame(r.Context(), req.Size)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GameFromModel(g))
}

// List handles GET /api/v1/games
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	ids, err := h.gameController.ListGameIDs(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	games := make([]string, 0, len(ids))
	for _, id := range ids {
		games = append(games, string(id))
	}
	response.JSON(w, http.StatusOK, response.GameListResponse{Games: games})
}

// Get handles GET /api/v1/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	g, err := h.gameController.GetGame(r.Context(), gameID(r))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// Delete handles DELETE /api/v1/games/{id}
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.gameController.DeleteGame(r.Context(), gameID(r)); err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusNoContent, nil)
}

// Play handles POST /api/v1/games/{id}/moves
func (h *GameHandler) Play(w http.ResponseWriter, r *http.Request) {
	id := gameID(r)

	var req playRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid JSON body"))
		return
	}

	player, err := gtp.ParseColor(req.Color)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	g, err := h.gameController.GetGame(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	mv, err := gtp.ParseMove(req.Move, g.Board.Size())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	outcome, err := h.gameController.ApplyMove(r.Context(), id, player, mv)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	maxRun, err := h.gameController.MaxRun(r.Context(), id, player)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, outcomeResponse(outcome, mv, maxRun))
}

// Genmove handles POST /api/v1/games/{id}/genmove
func (h *GameHandler) Genmove(w http.ResponseWriter, r *http.Request) {
	id := gameID(r)

	var req genmoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid JSON body"))
		return
	}

	player, err := gtp.ParseColor(req.Color)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	mv, outcome, err := h.botService.GenerateMove(r.Context(), id, player)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	maxRun, err := h.gameController.MaxRun(r.Context(), id, player)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, outcomeResponse(outcome, mv, maxRun))
}

// LegalMoves handles GET /api/v1/games/{id}/legal-moves
func (h *GameHandler) LegalMoves(w http.ResponseWriter, r *http.Request) {
	cells, err := h.gameController.LegalMoves(r.Context(), gameID(r))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	moves := make([]string, 0, len(cells))
	for _, c := range cells {
		moves = append(moves, gtp.FormatPoint(c))
	}
	response.JSON(w, http.StatusOK, response.LegalMovesResponse{Moves: moves})
}

func gameID(r *http.Request) model.GameID {
	return model.GameID(mux.Vars(r)["id"])
}

func outcomeResponse(outcome model.Outcome, mv model.Move, maxRun int) response.OutcomeResponse {
	resp := response.OutcomeResponse{
		Outcome: string(outcome.Kind),
		Move:    gtp.FormatMove(mv),
		MaxRun:  maxRun,
	}
	if outcome.Kind == model.OutcomeWin {
		resp.Winner = outcome.Winner.String()
	}
	return resp
}
