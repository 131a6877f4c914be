package ui

import (
	"context"
	"fmt"
	"os"
	"politicalchess/src"
	"politicalchess/src/logx"
	"politicalchess/src/stats"
	clic "politicalchess/ui/cli"
	"politicalchess/ui/gui"
	"politicalchess/ui/gui/gbase/gconf"
	"politicalchess/ui/gui/ghelper/gdialog"

	"github.com/urfave/cli/v3"
)

const logfile string = "politicalchess.log"

func GetLogger(file *os.File, c *cli.Command) *logx.Logx {
	l := logx.NewLogx(
		logx.GetLoggerLevelByString(c.String("level")),
		c.Bool("dev"),
		c.Bool("console"),
	)
	l.InitLogger(file)
	return l
}

func openLog() (*os.File, error) {
	file, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("error open logfile: %w", err)
	}
	return file, nil
}

func RunGUI(c *cli.Command) error {
	file, err := openLog()
	if err != nil {
		return err
	}
	defer file.Close()
	logger := GetLogger(file, c)
	defer logger.Sync() //nolint:errcheck

	cfg, err := gconf.NewGUIConfig(c.String("config"))
	if err != nil {
		logger.Errorf("load config: %v", err)
		return err
	}
	if c.IsSet("stats") {
		cfg.StatsPath = c.String("stats")
	}
	g, err := gui.NewGUI(cfg, logger)
	if err != nil {
		logger.Errorf("start gui: %v", err)
		gdialog.ShowError("Political Chess", err)
		return err
	}
	return g.Run()
}

func RunCLI(c *cli.Command) error {
	file, err := openLog()
	if err != nil {
		return err
	}
	defer file.Close()
	logger := GetLogger(file, c)
	defer logger.Sync() //nolint:errcheck

	mode := src.ModeTwoPlayer
	if c.Bool("computer") {
		mode = src.ModeVersusComputer
	}
	s, err := src.NewSession(src.SessionOptions{
		Mode:   mode,
		Clock:  c.Duration("clock"),
		FEN:    c.String("fen"),
		Seed:   int64(c.Int("seed")),
		Logger: logger,
	})
	if err != nil {
		return err
	}

	clic.EnableANSI()
	cl := clic.NewCLI(s, os.Stdin, os.Stdout)
	if c.Bool("plain") {
		cl.Printer().SetColor(false)
	}
	if err := cl.Run(); err != nil {
		return fmt.Errorf("error politicalchess: %w", err)
	}
	if s.Over() {
		if _, err := stats.NewStore(c.String("stats"), logger).Record(s.Result()); err != nil {
			logger.Errorf("save stats: %v", err)
		}
	}
	return nil
}

func RunSimulate(ctx context.Context, c *cli.Command) error {
	file, err := openLog()
	if err != nil {
		return err
	}
	defer file.Close()
	logger := GetLogger(file, c)
	defer logger.Sync() //nolint:errcheck

	report, err := src.Simulate(ctx, src.SimulateOptions{
		Games:     c.Int("games"),
		Seed:      int64(c.Int("seed")),
		StatsPath: c.String("stats"),
		Logger:    logger,
	})
	if err != nil {
		return err
	}
	for i, r := range report.Results {
		fmt.Printf("game %d: %v\n", i+1, r)
	}
	if c.Bool("show") && len(report.Results) > 0 {
		clic.EnableANSI()
		p := clic.NewPrinter(os.Stdout)
		board := mailboxLookup(report.Last.Mailbox)
		p.PrintBoard(board)
		p.PrintCaptured(board)
	}
	fmt.Println(report.Stats)
	return nil
}

func RunStats(c *cli.Command) error {
	rec := stats.NewStore(c.String("stats"), logx.NewNop()).Load()
	fmt.Println(rec)
	fmt.Printf("games played: %d\n", rec.Total())
	return nil
}

func RunPoliticalChess() error {
	df := &cli.BoolFlag{
		Name:    "dev",
		Aliases: []string{"d"},
		Usage:   "development logger encoding",
	}
	lf := &cli.StringFlag{
		Name:    "level",
		Aliases: []string{"l"},
		Value:   "info",
		Usage:   "logger level: debug, info, warn, error",
	}
	cf := &cli.BoolFlag{
		Name:    "console",
		Aliases: []string{"c"},
		Usage:   "log to stdout with console encoding",
	}
	sf := &cli.StringFlag{
		Name:  "stats",
		Value: stats.DefaultFile,
		Usage: "path to the stats file",
	}
	seedf := &cli.IntFlag{
		Name:  "seed",
		Value: 1,
		Usage: "random seed for the computer player",
	}
	conff := &cli.StringFlag{
		Name:  "config",
		Value: gconf.DefaultFile,
		Usage: "path to the JSON config",
	}
	logff := []cli.Flag{df, lf, cf}
	guiff := append([]cli.Flag{conff, sf}, logff...)

	return (&cli.Command{
		Name:  "politicalchess",
		Usage: "Political Chess: USA vs EU",
		Commands: []*cli.Command{
			{
				Name:  "gui",
				Usage: "open the game window",
				Flags: guiff,
				Action: func(ctx context.Context, c *cli.Command) error {
					return RunGUI(c)
				},
			},
			{
				Name:  "cli",
				Usage: "play in the terminal with coordinate moves",
				Flags: append([]cli.Flag{
					sf, seedf,
					&cli.BoolFlag{Name: "computer", Usage: "EU is played by the computer"},
					&cli.StringFlag{Name: "fen", Usage: "start from a FEN position"},
					&cli.DurationFlag{Name: "clock", Value: src.DefaultClock, Usage: "time per side"},
					&cli.BoolFlag{Name: "plain", Usage: "print the board without colors"},
				}, logff...),
				Action: func(ctx context.Context, c *cli.Command) error {
					return RunCLI(c)
				},
			},
			{
				Name:  "simulate",
				Usage: "play computer-vs-computer games and record the results",
				Flags: append([]cli.Flag{
					sf, seedf,
					&cli.IntFlag{Name: "games", Aliases: []string{"n"}, Value: 10, Usage: "number of games"},
					&cli.BoolFlag{Name: "show", Usage: "print the final board of the last game"},
				}, logff...),
				Action: RunSimulate,
			},
			{
				Name:  "stats",
				Usage: "print the recorded results",
				Flags: []cli.Flag{sf},
				Action: func(ctx context.Context, c *cli.Command) error {
					return RunStats(c)
				},
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return RunGUI(c)
		},
	}).Run(context.Background(), os.Args)
}
