package commands

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/seriparkdev/haru/internal/holiday"
	"github.com/seriparkdev/haru/internal/timeutil"
	"github.com/seriparkdev/haru/internal/view"
)

func newListCommand(o *options) *cobra.Command {
	var (
		dateFlag  string
		viewFlag  string
		queryFlag string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "주간/월간 일정 보기",
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := view.ParseMode(viewFlag)
			if err != nil {
				return err
			}
			ref := time.Now()
			if dateFlag != "" {
				parsed, ok := timeutil.ParseDate(dateFlag)
				if !ok {
					return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", dateFlag)
				}
				ref = parsed
			}

			s, err := o.session()
			if err != nil {
				return err
			}
			if err := s.Load(cmd.Context()); err != nil {
				return err
			}

			events := s.Filtered(queryFlag, ref, mode)
			if len(events) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "검색 결과가 없습니다.")
				return nil
			}

			holidays := holiday.ForYear(ref.Year())
			table := uitable.New()
			table.AddRow("날짜", "시간", "제목", "위치", "카테고리", "알림")
			for _, e := range events {
				date := e.Date
				if name, ok := holidays[e.Date]; ok {
					date = fmt.Sprintf("%s (%s)", e.Date, color.RedString(name))
				}
				table.AddRow(
					date,
					fmt.Sprintf("%s-%s", e.StartTime, e.EndTime),
					e.Title,
					e.Location,
					e.Category,
					fmt.Sprintf("%d분 전", e.NotificationTime),
				)
			}
			fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "reference date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&viewFlag, "view", "month", "view granularity: week or month")
	cmd.Flags().StringVarP(&queryFlag, "query", "q", "", "search title, description and location")
	return cmd
}
