package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"clearview/internal/highlight/merger"
	hlmodels "clearview/internal/highlight/models"
	id "clearview/pkg/domain"
)

func (a *app) flattenCommand() *cobra.Command {
	var (
		spansPath string
		textPath  string
		agent     int64
		highlight int64
	)
	cmd := &cobra.Command{
		Use:   "flatten",
		Short: "Merge highlight spans into non-overlapping ranges",
		Long: "Reads a JSON array of highlight spans. Without --agent the spans of all agents are\n" +
			"flattened; with --agent only that agent's spans are kept, with --highlight only the\n" +
			"spans of one match record. With --text the file is\n" +
			"printed with every highlighted range wrapped in the configured markers.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var spans []hlmodels.HighlightSpan
			if err := a.readJSON(spansPath, &spans); err != nil {
				return err
			}
			mode := hlmodels.Flatten()
			if cmd.Flags().Changed("agent") {
				if agent <= 0 {
					return usageError{fmt.Errorf("--agent must be positive")}
				}
				mode = hlmodels.SingleAgent(id.AgentID(agent))
			}

			set := hlmodels.CompleteSpans(spans...)
			if cmd.Flags().Changed("highlight") {
				if highlight <= 0 {
					return usageError{fmt.Errorf("--highlight must be positive")}
				}
				set = set.OnlyHighlight(id.HighlightID(highlight))
			}

			highlights, err := merger.New(nil).Merge(cmd.Context(), 0, set, mode)
			if err != nil {
				return err
			}
			if textPath == "" {
				return writeJSON(cmd.OutOrStdout(), highlights)
			}

			text, err := a.readAll(textPath)
			if err != nil {
				return err
			}
			markers := hlmodels.Markers{Open: a.cfg.MarkerOpen, Close: a.cfg.MarkerClose}
			rendered, err := merger.Render(text, highlights, markers)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), rendered)
			return err
		},
	}
	cmd.Flags().StringVar(&spansPath, "spans", "-", "JSON array of highlight spans (- for stdin)")
	cmd.Flags().StringVar(&textPath, "text", "", "File whose highlighted ranges to render")
	cmd.Flags().Int64Var(&agent, "agent", 0, "Keep only this agent's spans")
	cmd.Flags().Int64Var(&highlight, "highlight", 0, "Keep only the spans of this match record")
	return cmd
}
