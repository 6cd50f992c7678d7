package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"gomoku/internal/config"
	"gomoku/internal/game"
	"gomoku/internal/logging"

	"github.com/logrusorgru/aurora"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func main() {
	defaults := config.Load().Engine

	app := &cli.App{
		Name:  "gomoku",
		Usage: "five in a row against a minimax engine",
		Commands: []*cli.Command{
			{
				Name:  "play",
				Usage: "play a game in the terminal",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "size", Value: defaults.BoardSize, Usage: "board side length"},
					&cli.IntFlag{Name: "depth", Value: defaults.SearchDepth, Usage: "search depth in plies"},
					&cli.IntFlag{Name: "radius", Value: defaults.CandidateRadius, Usage: "candidate radius around stones"},
					&cli.BoolFlag{Name: "no-color", Usage: "disable coloured output"},
					&cli.StringFlag{Name: "log-level", Value: "warn", Usage: "engine log level"},
				},
				Action: play,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func play(c *cli.Context) error {
	logger := logging.Setup(c.String("log-level"), true)

	size := c.Int("size")
	if size < game.WinLength {
		return fmt.Errorf("board size must be at least %d", game.WinLength)
	}
	eng := game.NewBot(
		game.WithDepth(c.Int("depth")),
		game.WithRadius(c.Int("radius")),
		game.WithLogger(logger),
	)
	t := &terminal{
		in:  bufio.NewReader(os.Stdin),
		out: os.Stdout,
		au:  aurora.NewAurora(!c.Bool("no-color")),
	}
	return t.run(game.NewGame(size, eng))
}

type terminal struct {
	in  *bufio.Reader
	out io.Writer
	au  aurora.Aurora
}

func (t *terminal) run(g *game.Game) error {
	fmt.Fprintf(t.out, "Engine opens at %s. Enter moves as \"row col\" (1-%d).\n",
		formatMove(g.Board.Center()), g.Board.Size)

	for !g.Over() {
		renderBoard(t.out, g, t.au)

		fmt.Fprint(t.out, "> ")
		line, err := t.in.ReadString('\n')
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(t.out)
			return nil
		}
		if err != nil {
			return err
		}

		m, err := parseMove(line, g.Board.Size)
		if err != nil {
			fmt.Fprintln(t.out, t.au.Yellow(err.Error()))
			continue
		}
		if err := g.ApplyHumanMove(m.Row, m.Col); err != nil {
			fmt.Fprintln(t.out, t.au.Yellow(err.Error()))
			continue
		}
		if g.Over() {
			break
		}

		reply, err := g.PlayEngineMove()
		if err != nil {
			return err
		}
		log.Debug().Int("row", reply.Row).Int("col", reply.Col).Msg("engine-reply")
		fmt.Fprintf(t.out, "Engine plays %s\n", formatMove(reply))
	}

	renderBoard(t.out, g, t.au)
	switch g.Status {
	case game.StatusHumanWon:
		fmt.Fprintln(t.out, t.au.Green("You win!").Bold())
	case game.StatusEngineWon:
		fmt.Fprintln(t.out, t.au.Red("Engine wins.").Bold())
	default:
		fmt.Fprintln(t.out, "Draw.")
	}
	return nil
}
