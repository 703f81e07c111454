// Package commands wires the CLI surface. It is a thin presentation
// layer over the session: every command parses flags, calls into the
// core, and prints.
package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/seriparkdev/haru/internal/app"
	"github.com/seriparkdev/haru/internal/client"
	"github.com/seriparkdev/haru/internal/config"
)

type options struct {
	cfgPath string
}

func (o *options) config() (*config.Config, error) {
	return config.Load(o.cfgPath)
}

// session builds a session whose status labels go to stderr in red, the
// CLI's stand-in for toasts.
func (o *options) session() (*app.Session, error) {
	cfg, err := o.config()
	if err != nil {
		return nil, err
	}
	status := func(msg string) {
		fmt.Fprintln(os.Stderr, color.RedString(msg))
	}
	return app.NewSession(client.New(cfg.APIBaseURL), status), nil
}

func New() *cobra.Command {
	o := &options{}

	root := &cobra.Command{
		Use:           "haru",
		Short:         "개인 일정 관리",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&o.cfgPath, "config", "", "config file (default haru.yaml)")

	root.AddCommand(
		newServeCommand(o),
		newListCommand(o),
		newAddCommand(o),
		newEditCommand(o),
		newRemoveCommand(o),
		newWatchCommand(o),
		newExportCommand(o),
	)
	return root
}
