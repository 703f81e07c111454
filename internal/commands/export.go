package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/seriparkdev/haru/internal/export"
)

func newExportCommand(o *options) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "ICS 파일로 내보내기",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := o.session()
			if err != nil {
				return err
			}
			if err := s.Load(cmd.Context()); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			return export.Write(w, s.Events())
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write to file instead of stdout")
	return cmd
}
