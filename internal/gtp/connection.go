package gtp

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/fiverow/gomoku/internal/model"
	"github.com/fiverow/gomoku/internal/services/bot"
	"github.com/fiverow/gomoku/internal/services/game"
)

// Config holds engine identity and startup settings for a connection
type Config struct {
	// Name and Version are reported by the name/version commands
	Name    string
	Version string
	// BoardSize is the initial board size; 0 uses the controller default
	BoardSize int
}

// DefaultConfig returns the default engine identity
func DefaultConfig() Config {
	return Config{
		Name:    "gomoku",
		Version: "1.0",
	}
}

// errQuit signals a clean stop requested by the quit command
var errQuit = errors.New("quit")

type handler func(ctx context.Context, args []string) error

// argSpec is the required argument count and usage line for commands
// that take arguments
type argSpec struct {
	count int
	usage string
}

// Connection serves the text protocol for one game session: it reads
// commands line by line, dispatches them against a registered-handler
// table, and frames every reply as "= body" or "? message" followed by
// a blank line.
type Connection struct {
	games  *game.Controller
	bot    *bot.Service
	cfg    Config
	logger *slog.Logger

	out    *bufio.Writer
	gameID model.GameID
	komi   float64

	commands map[string]handler
	argmap   map[string]argSpec
}

// NewConnection creates a connection bound to a game controller and a
// move generator
func NewConnection(games *game.Controller, botService *bot.Service, cfg Config, logger *slog.Logger) *Connection {
	if cfg.Name == "" {
		cfg.Name = DefaultConfig().Name
	}
	if cfg.Version == "" {
		cfg.Version = DefaultConfig().Version
	}
	if cfg.BoardSize == 0 {
		cfg.BoardSize = games.DefaultBoardSize()
	}

	c := &Connection{
		games:  games,
		bot:    botService,
		cfg:    cfg,
		logger: logger.With(slog.String("component", "gtp")),
	}

	c.commands = map[string]handler{
		"protocol_version":         c.protocolVersionCmd,
		"quit":                     c.quitCmd,
		"name":                     c.nameCmd,
		"version":                  c.versionCmd,
		"known_command":            c.knownCommandCmd,
		"list_commands":            c.listCommandsCmd,
		"boardsize":                c.boardsizeCmd,
		"clear_board":              c.clearBoardCmd,
		"komi":                     c.komiCmd,
		"showboard":                c.showboardCmd,
		"play":                     c.playCmd,
		"genmove":                  c.genmoveCmd,
		"legal_moves":              c.legalMovesCmd,
		"gogui-rules_game_id":      c.goguiGameIDCmd,
		"gogui-rules_board_size":   c.goguiBoardSizeCmd,
		"gogui-rules_legal_moves":  c.goguiLegalMovesCmd,
		"gogui-rules_side_to_move": c.goguiSideToMoveCmd,
		"gogui-rules_board":        c.goguiBoardCmd,
		"gogui-rules_final_result": c.goguiFinalResultCmd,
		"gogui-analyze_commands":   c.goguiAnalyzeCmd,
	}

	c.argmap = map[string]argSpec{
		"boardsize":     {1, "Usage: boardsize INT"},
		"komi":          {1, "Usage: komi FLOAT"},
		"known_command": {1, "Usage: known_command CMD_NAME"},
		"genmove":       {1, "Usage: genmove {w,b}"},
		"play":          {2, "Usage: play {b,w} MOVE"},
		"legal_moves":   {1, "Usage: legal_moves {w,b}"},
	}

	return c
}

// Run creates the connection's game session and serves commands from r
// until EOF or quit
func (c *Connection) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	c.out = bufio.NewWriter(w)

	g, err := c.games.NewGame(ctx, c.cfg.BoardSize)
	if err != nil {
		return err
	}
	c.gameID = g.ID

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := c.handleLine(ctx, scanner.Text()); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			return err
		}
	}
	return scanner.Err()
}

// handleLine parses and dispatches one command line
func (c *Connection) handleLine(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	// Regression suites prefix commands with a numeric ID; strip it
	fields := strings.Fields(line)
	if _, err := strconv.Atoi(fields[0]); err == nil {
		fields = fields[1:]
		if len(fields) == 0 {
			return nil
		}
	}

	name, args := fields[0], fields[1:]

	if spec, ok := c.argmap[name]; ok && spec.count != len(args) {
		return c.fail(spec.usage)
	}

	cmd, ok := c.commands[name]
	if !ok {
		c.logger.Debug("unknown command", slog.String("command", name))
		return c.fail("unknown command")
	}

	return cmd(ctx, args)
}

// respond writes a success frame
func (c *Connection) respond(body string) error {
	if _, err := fmt.Fprintf(c.out, "= %s\n\n", body); err != nil {
		return err
	}
	return c.out.Flush()
}

// fail writes an error frame
func (c *Connection) fail(msg string) error {
	if _, err := fmt.Fprintf(c.out, "? %s\n\n", msg); err != nil {
		return err
	}
	return c.out.Flush()
}

func (c *Connection) currentGame(ctx context.Context) (*model.Game, error) {
	return c.games.GetGame(ctx, c.gameID)
}

func (c *Connection) protocolVersionCmd(ctx context.Context, args []string) error {
	return c.respond("2")
}

func (c *Connection) quitCmd(ctx context.Context, args []string) error {
	if err := c.respond(""); err != nil {
		return err
	}
	return errQuit
}

func (c *Connection) nameCmd(ctx context.Context, args []string) error {
	return c.respond(c.cfg.Name)
}

func (c *Connection) versionCmd(ctx context.Context, args []string) error {
	return c.respond(c.cfg.Version)
}

func (c *Connection) knownCommandCmd(ctx context.Context, args []string) error {
	if _, ok := c.commands[args[0]]; ok {
		return c.respond("true")
	}
	return c.respond("false")
}

func (c *Connection) listCommandsCmd(ctx context.Context, args []string) error {
	names := make([]string, 0, len(c.commands))
	for name := range c.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return c.respond(strings.Join(names, " "))
}

func (c *Connection) boardsizeCmd(ctx context.Context, args []string) error {
	size, err := strconv.Atoi(args[0])
	if err != nil {
		return c.fail("boardsize is not an integer")
	}
	if err := c.games.Reset(ctx, c.gameID, size); err != nil {
		if errors.Is(err, model.ErrInvalidSize) {
			return c.fail("unacceptable size")
		}
		return err
	}
	return c.respond("")
}

func (c *Connection) clearBoardCmd(ctx context.Context, args []string) error {
	g, err := c.currentGame(ctx)
	if err != nil {
		return err
	}
	if err := c.games.Reset(ctx, c.gameID, g.Board.Size()); err != nil {
		return err
	}
	return c.respond("")
}

func (c *Connection) komiCmd(ctx context.Context, args []string) error {
	komi, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return c.fail("komi is not a float")
	}
	// Accepted for protocol compatibility; komi has no effect on Gomoku
	c.komi = komi
	return c.respond("")
}

func (c *Connection) showboardCmd(ctx context.Context, args []string) error {
	g, err := c.currentGame(ctx)
	if err != nil {
		return err
	}
	return c.respond("\n" + renderBoard(g.Board))
}

func (c *Connection) playCmd(ctx context.Context, args []string) error {
	player, err := ParseColor(args[0])
	if err != nil {
		return c.fail(fmt.Sprintf("invalid color: %s", args[0]))
	}

	g, err := c.currentGame(ctx)
	if err != nil {
		return err
	}

	mv, err := ParseMove(args[1], g.Board.Size())
	if err != nil {
		return c.fail(fmt.Sprintf("illegal move: %s", args[1]))
	}

	if _, err := c.games.ApplyMove(ctx, c.gameID, player, mv); err != nil {
		switch {
		case errors.Is(err, model.ErrGameOver):
			return c.fail("illegal move: game is over")
		case errors.Is(err, model.ErrCellOccupied):
			return c.fail(fmt.Sprintf("illegal move: %s is occupied", args[1]))
		case errors.Is(err, model.ErrOutOfBounds):
			return c.fail(fmt.Sprintf("illegal move: %s is off the board", args[1]))
		default:
			return err
		}
	}
	return c.respond("")
}

func (c *Connection) genmoveCmd(ctx context.Context, args []string) error {
	player, err := ParseColor(args[0])
	if err != nil {
		return c.fail(fmt.Sprintf("invalid color: %s", args[0]))
	}

	mv, _, err := c.bot.GenerateMove(ctx, c.gameID, player)
	if err != nil {
		if errors.Is(err, model.ErrGameOver) {
			return c.respond("resign")
		}
		return err
	}
	return c.respond(FormatMove(mv))
}

func (c *Connection) legalMovesCmd(ctx context.Context, args []string) error {
	// Legal moves are the same for both colors; the color argument is
	// validated but otherwise unused
	if _, err := ParseColor(args[0]); err != nil {
		return c.fail(fmt.Sprintf("invalid color: %s", args[0]))
	}
	return c.respondLegalMoves(ctx)
}

func (c *Connection) goguiLegalMovesCmd(ctx context.Context, args []string) error {
	return c.respondLegalMoves(ctx)
}

func (c *Connection) respondLegalMoves(ctx context.Context) error {
	cells, err := c.games.LegalMoves(ctx, c.gameID)
	if err != nil {
		return err
	}
	points := make([]string, 0, len(cells))
	for _, cell := range cells {
		points = append(points, FormatPoint(cell))
	}
	// Lexicographic token order (a10 before a2) is what existing GTP
	// drivers expect; do not switch to numeric row ordering.
	sort.Strings(points)
	return c.respond(strings.ToUpper(strings.Join(points, " ")))
}

func (c *Connection) goguiGameIDCmd(ctx context.Context, args []string) error {
	return c.respond("Gomoku")
}

func (c *Connection) goguiBoardSizeCmd(ctx context.Context, args []string) error {
	g, err := c.currentGame(ctx)
	if err != nil {
		return err
	}
	return c.respond(strconv.Itoa(g.Board.Size()))
}

func (c *Connection) goguiSideToMoveCmd(ctx context.Context, args []string) error {
	g, err := c.currentGame(ctx)
	if err != nil {
		return err
	}
	return c.respond(FormatColor(g.Board.CurrentPlayer()))
}

func (c *Connection) goguiBoardCmd(ctx context.Context, args []string) error {
	g, err := c.currentGame(ctx)
	if err != nil {
		return err
	}
	return c.respond(renderBoard(g.Board))
}

func (c *Connection) goguiFinalResultCmd(ctx context.Context, args []string) error {
	g, err := c.currentGame(ctx)
	if err != nil {
		return err
	}
	// A win is reported even when the winning move filled the board
	switch {
	case g.Status == model.GameStatusWon:
		return c.respond(FormatColor(g.Winner) + " win")
	case g.Board.IsFull():
		return c.respond("draw")
	default:
		return c.respond("unknown")
	}
}

func (c *Connection) goguiAnalyzeCmd(ctx context.Context, args []string) error {
	return c.respond("pstring/Legal Moves For ToPlay/gogui-rules_legal_moves\n" +
		"pstring/Side to Play/gogui-rules_side_to_move\n" +
		"pstring/Final Result/gogui-rules_final_result\n" +
		"pstring/Board Size/gogui-rules_board_size\n" +
		"pstring/Rules GameID/gogui-rules_game_id\n" +
		"pstring/Show Board/gogui-rules_board\n")
}

// renderBoard draws the board with the top row first: X for black,
// O for white, . for empty
func renderBoard(b *model.Board) string {
	var sb strings.Builder
	for row := b.Size(); row >= 1; row-- {
		for col := 1; col <= b.Size(); col++ {
			switch b.Occupancy(model.Cell{Row: row, Col: col}) {
			case model.Black:
				sb.WriteByte('X')
			case model.White:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
