package main

import (
	"fmt"

	"editor3d/internal/app"
	"editor3d/internal/editor"
	"editor3d/internal/engine"

	"github.com/spf13/cobra"
)

func newEditCmd(g *globals) *cobra.Command {
	var watchFile bool
	cmd := &cobra.Command{
		Use:   "edit [scene.yaml]",
		Short: "Open a scene in the editor window",
		Long: `Open a scene in the editor window. Without an argument the scene
edited last is opened again, or an empty unsaved scene when there is none.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, log := g.setup()
			opts := sessionOptions(p, log)
			if watchFile {
				opts = append(opts, editor.WithWatch())
			}

			path := p.LastScene
			if len(args) == 1 {
				path = args[0]
			}

			var s *editor.Session
			if path == "" {
				s = editor.New(engine.NewScene("Untitled"), opts...)
			} else {
				var err error
				s, err = editor.Open(path, opts...)
				if err != nil {
					return err
				}
				if path == p.LastScene && p.LastSelected != 0 {
					s.SelectUID(engine.UID(p.LastSelected))
				}
			}

			a := app.New(s, p, log, opts...)
			a.FontDir = assetDir("assets/fonts")
			runErr := a.Run()
			if err := a.Session().Close(); err != nil {
				log.Warn("close session", "err", err)
			}
			if err := p.Save(); err != nil {
				log.Warn("save preferences", "err", err)
			}
			if runErr != nil {
				return fmt.Errorf("editor: %w", runErr)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&watchFile, "watch", "w", false, "reload the scene when the file changes on disk")
	return cmd
}
