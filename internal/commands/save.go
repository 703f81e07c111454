package commands

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/seriparkdev/haru/internal/app"
	"github.com/seriparkdev/haru/internal/models"
)

// eventFlags collects the draft fields shared by add and edit.
type eventFlags struct {
	title    string
	date     string
	start    string
	end      string
	desc     string
	location string
	category string
	repeat   string
	interval int
	endDate  string
	notify   int
	force    bool
}

func (f *eventFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "event title")
	cmd.Flags().StringVar(&f.date, "date", "", "event date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.start, "start", "", "start time (HH:MM)")
	cmd.Flags().StringVar(&f.end, "end", "", "end time (HH:MM)")
	cmd.Flags().StringVar(&f.desc, "desc", "", "description")
	cmd.Flags().StringVar(&f.location, "location", "", "location")
	cmd.Flags().StringVar(&f.category, "category", "", "category")
	cmd.Flags().StringVar(&f.repeat, "repeat", "none", "repeat type: none, daily, weekly, monthly, yearly")
	cmd.Flags().IntVar(&f.interval, "interval", 0, "repeat interval")
	cmd.Flags().StringVar(&f.endDate, "repeat-until", "", "repeat end date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&f.notify, "notify", 10, "reminder lead time in minutes (0 = at start)")
	cmd.Flags().BoolVar(&f.force, "force", false, "save even when the event overlaps existing ones")
}

func (f *eventFlags) draft() models.EventDraft {
	return models.EventDraft{
		Title:       f.title,
		Date:        f.date,
		StartTime:   f.start,
		EndTime:     f.end,
		Description: f.desc,
		Location:    f.location,
		Category:    f.category,
		Repeat: models.Repeat{
			Type:     models.RepeatType(f.repeat),
			Interval: f.interval,
			EndDate:  f.endDate,
		},
		NotificationTime: f.notify,
	}
}

// save runs the session save protocol for both add and edit, rendering
// the conflict set when the save is blocked.
func save(cmd *cobra.Command, o *options, f *eventFlags, editingID string) error {
	s, err := o.session()
	if err != nil {
		return err
	}
	if err := s.Load(cmd.Context()); err != nil {
		return err
	}

	conflicts, err := s.Save(cmd.Context(), f.draft(), editingID, f.force)
	if errors.Is(err, app.ErrOverlap) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, color.YellowString("일정 겹침 경고"))
		fmt.Fprintln(out, "다음 일정과 겹칩니다:")
		for _, e := range conflicts {
			fmt.Fprintf(out, "  %s (%s %s-%s)\n", e.Title, e.Date, e.StartTime, e.EndTime)
		}
		fmt.Fprintln(out, "계속 진행하시겠습니까? --force 플래그로 계속 진행합니다.")
		return err
	}
	return err
}

func newAddCommand(o *options) *cobra.Command {
	f := &eventFlags{}
	cmd := &cobra.Command{
		Use:   "add",
		Short: "일정 추가",
		RunE: func(cmd *cobra.Command, args []string) error {
			return save(cmd, o, f, "")
		},
	}
	f.register(cmd)
	return cmd
}

func newEditCommand(o *options) *cobra.Command {
	f := &eventFlags{}
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "일정 수정",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return save(cmd, o, f, args[0])
		},
	}
	f.register(cmd)
	return cmd
}

func newRemoveCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "일정 삭제",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := o.session()
			if err != nil {
				return err
			}
			return s.Delete(cmd.Context(), args[0])
		},
	}
}
