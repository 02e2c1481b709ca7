package main

import (
	"os"
	"os/signal"
	"time"

	"editor3d/internal/editor"
	"editor3d/internal/textdump"

	"github.com/spf13/cobra"
)

func newDumpCmd(g *globals) *cobra.Command {
	var (
		opts      editor.DumpOptions
		colors    bool
		watchFile bool
		interval  time.Duration
	)
	cmd := &cobra.Command{
		Use:   "dump scene.yaml",
		Short: "Print the inspector panels of a scene as text",
		Long: `Print the inspector panels of a scene as text. With --watch the
command keeps running and prints a diff every time the file changes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, log := g.setup()
			sopts := sessionOptions(p, log)
			if watchFile {
				sopts = append(sopts, editor.WithWatch())
			}
			s, err := editor.Open(args[0], sopts...)
			if err != nil {
				return err
			}
			defer s.Close()

			if colors {
				opts.Colors = textdump.NewColors()
			}
			out := cmd.OutOrStdout()
			if !watchFile {
				return s.Dump(out, opts)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return s.Follow(ctx, out, opts, interval)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.Object, "object", "o", "", "only dump the object with this name")
	f.BoolVar(&colors, "color", false, "color the output")
	f.BoolVar(&opts.Collapsed, "all", false, "include the content of collapsed sections")
	f.BoolVar(&opts.Actions, "actions", false, "list the context menu entries of each field")
	f.BoolVarP(&watchFile, "watch", "w", false, "keep running and print a diff when the file changes")
	f.DurationVar(&interval, "interval", 200*time.Millisecond, "how often to check for changes with --watch")
	return cmd
}

