package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vladislavdragonenkov/menuboard/internal/app"
	"github.com/vladislavdragonenkov/menuboard/internal/view"
)

const closeTimeout = 5 * time.Second

// errSilent — ошибка, о которой пользователю уже всё напечатано.
var errSilent = errors.New("menuctl: failed")

// cli хранит флаги и лениво открытый runtime одной команды.
type cli struct {
	configPath string
	envFile    string
	dataDir    string
	storage    string
	verbose    bool

	in  io.Reader
	cfg app.Config
	rt  *app.Runtime
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:   "menuctl",
		Short: "Terminal front-end for Christoffel's Digital Menu",
		Long: `menuctl shows and edits the restaurant menu.
Each invocation loads the saved menu snapshot, runs one screen action and saves the result.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.loadConfig(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "path to YAML config (fallback: "+app.EnvConfigFile+")")
	flags.StringVar(&c.envFile, "env-file", app.DefaultEnvFile, "path to .env file")
	flags.StringVar(&c.dataDir, "data-dir", "", "directory for file storage (overrides "+app.EnvDataDir+")")
	flags.StringVar(&c.storage, "storage", "", "storage driver: file|postgres|memory (default file)")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newHomeCmd(c),
		newManageCmd(c),
		newFilterCmd(c),
		newResetCmd(c),
		newEventsCmd(c),
		newVersionCmd(),
	)
	return root
}

func (c *cli) loadConfig(cmd *cobra.Command) error {
	cfg, warnings, err := app.LoadConfig(c.configPath, c.envFile)
	if err != nil {
		return err
	}

	level := cfg.LogLevel
	if c.verbose {
		level = "debug"
	}
	setupLogger(level, cmd.ErrOrStderr())
	for _, w := range warnings {
		log.Warn(w)
	}

	if c.storage != "" {
		cfg.StorageDriver = c.storage
	}
	if c.dataDir != "" {
		cfg.DataDir = c.dataDir
	}

	c.cfg = cfg
	return nil
}

// session открывает runtime, синхронно загружает снимок и создаёт сессию экранов.
func (c *cli) session(ctx context.Context) (*view.Session, error) {
	if c.rt == nil {
		rt, err := app.NewRuntime(ctx, c.cfg, log.WithField("component", "menuctl"))
		if err != nil {
			return nil, err
		}
		c.rt = rt
		if !rt.Menu.Load(ctx) {
			log.Debug("no saved menu, showing default dishes")
		}
	}
	return view.NewSession(c.rt.Menu, view.WithSessionMetrics(c.rt.Metrics)), nil
}

// close дожидается сохранения и закрывает подключения.
func (c *cli) close() error {
	if c.rt == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()
	err := c.rt.Close(ctx)
	c.rt = nil
	return err
}

// show переключает сессию на экран и печатает его.
func show(out io.Writer, s *view.Session, screen view.Screen) error {
	if err := s.Navigate(screen); err != nil {
		return err
	}
	return view.RenderText(out, s.Render())
}

// run выполняет menuctl и возвращает код выхода.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	c := &cli{in: stdin}
	root := newRootCmd(c)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if closeErr := c.close(); closeErr != nil {
		log.WithError(closeErr).Warn("failed to save menu")
	}
	if err != nil {
		if !errors.Is(err, errSilent) {
			_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}
