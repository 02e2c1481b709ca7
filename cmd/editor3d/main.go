package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	_ "editor3d/internal/components"
	"editor3d/internal/editor"
	"editor3d/internal/inspect"
	"editor3d/internal/prefs"

	"github.com/spf13/cobra"
)

// flags shared by every command.
type globals struct {
	prefsFile string
	logLevel  string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	g := &globals{}
	root := &cobra.Command{
		Use:          "editor3d",
		Short:        "Inspect and edit 3D scene files",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&g.prefsFile, "prefs", prefs.DefaultFile, "editor preferences file")
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "log level (debug, info, warn, error); overrides the preferences")
	root.AddCommand(newEditCmd(g), newDumpCmd(g))
	return root
}

// setup loads the preferences and installs the logger.
func (g *globals) setup() (*prefs.Prefs, *slog.Logger) {
	p, err := prefs.Load(g.prefsFile)
	level := p.Level()
	if g.logLevel != "" {
		if lerr := level.UnmarshalText([]byte(g.logLevel)); lerr != nil {
			fmt.Fprintf(os.Stderr, "editor3d: bad --log-level %q, using %s\n", g.logLevel, level)
		}
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	inspect.SetLogger(log)
	if err != nil {
		log.Warn("using default preferences", "err", err)
	}
	return p, log
}

func sessionOptions(p *prefs.Prefs, log *slog.Logger) []editor.Option {
	return []editor.Option{
		editor.WithState(p),
		editor.WithUndoDepth(p.UndoDepth),
		editor.WithMaxDepth(p.Inspector.MaxDepth),
		editor.WithLogger(log),
	}
}

// assetDir finds dir next to the working directory, or next to the
// executable for deployed builds. "go run" binaries live in a temporary
// go-build directory and are skipped.
func assetDir(dir string) string {
	if _, err := os.Stat(dir); err == nil {
		return dir
	}
	exe, err := os.Executable()
	if err != nil || strings.Contains(exe, "go-build") {
		return dir
	}
	return filepath.Join(filepath.Dir(exe), dir)
}
