package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/seriparkdev/haru/internal/models"
)

func newWatchCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "알림 스케줄러 실행",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := o.session()
			if err != nil {
				return err
			}
			if err := s.Load(cmd.Context()); err != nil {
				return err
			}

			sched := s.Scheduler()
			sched.OnNotify = func(n models.Notification) {
				fmt.Fprintln(cmd.OutOrStdout(), color.CyanString(n.Message))
			}
			sched.Run(cmd.Context())
			return nil
		},
	}
}
