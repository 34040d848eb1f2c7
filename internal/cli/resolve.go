package cli

import (
	"cmp"
	"fmt"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"clearview/internal/clearing/decisiontypes"
	"clearview/internal/clearing/models"
	"clearview/internal/clearing/resolver"
	id "clearview/pkg/domain"
	dErrors "clearview/pkg/domain-errors"
)

func parseFilter(s string) (models.ScopeFilter, error) {
	switch f := models.ScopeFilter(s); f {
	case models.ScopeFilterAll, models.ScopeFilterItem, models.ScopeFilterGlobal:
		return f, nil
	default:
		return "", usageError{fmt.Errorf("unknown scope filter %q (all, item, global)", s)}
	}
}

// loadHistories reads a JSON array of events and groups it per item. Events
// read from a file are taken to be the complete history.
func (a *app) loadHistories(path string) ([]models.EventHistory, error) {
	var events []models.ClearingEvent
	if err := a.readJSON(path, &events); err != nil {
		return nil, err
	}
	byItem := make(map[id.ItemID][]models.ClearingEvent)
	for _, e := range events {
		byItem[e.ItemID] = append(byItem[e.ItemID], e)
	}
	out := make([]models.EventHistory, 0, len(byItem))
	for item, evs := range byItem {
		out = append(out, models.CompleteHistory(item, evs...))
	}
	slices.SortFunc(out, func(x, y models.EventHistory) int { return cmp.Compare(x.ItemID, y.ItemID) })
	return out, nil
}

func (a *app) resolveCommand() *cobra.Command {
	var (
		eventsPath string
		filter     string
		trail      bool
	)
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve the current decision of each item in an event file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := parseFilter(filter)
			if err != nil {
				return err
			}
			histories, err := a.loadHistories(eventsPath)
			if err != nil {
				return err
			}

			if trail {
				var all []models.ClearingDecision
				for _, h := range histories {
					decisions, err := resolver.ResolveHistory(h, f)
					if err != nil {
						return err
					}
					all = append(all, decisions...)
				}
				return writeJSON(cmd.OutOrStdout(), all)
			}

			out := make([]models.ItemDecision, 0, len(histories))
			for _, h := range histories {
				d, err := resolver.Resolve(h, f)
				if err != nil {
					return err
				}
				out = append(out, models.ItemDecision{ItemID: h.ItemID, Decision: d})
			}
			a.logger.Debug("resolved items", "items", len(out), "filter", f)
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVar(&eventsPath, "events", "-", "JSON array of clearing events (- for stdin)")
	cmd.Flags().StringVar(&filter, "filter", string(models.ScopeFilterAll), "Scope filter: all, item, global")
	cmd.Flags().BoolVar(&trail, "trail", false, "Emit the decision after every event, newest first")
	return cmd
}

func (a *app) historyCommand() *cobra.Command {
	var (
		eventsPath string
		item       int64
		asJSON     bool
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Print the clearing history of one item",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if item <= 0 {
				return usageError{fmt.Errorf("--item must be positive")}
			}
			histories, err := a.loadHistories(eventsPath)
			if err != nil {
				return err
			}
			idx := slices.IndexFunc(histories, func(h models.EventHistory) bool { return h.ItemID == id.ItemID(item) })
			if idx < 0 {
				return dErrors.Newf(dErrors.CodeNotFound, "no events for item %d", item)
			}
			decisions, err := resolver.ResolveHistory(histories[idx], models.ScopeFilterAll)
			if err != nil {
				return err
			}
			view, err := resolver.FormatHistory(decisions, decisiontypes.Default())
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), view)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "DATE\tUSER\tSCOPE\tTYPE\tLICENSES")
			for _, row := range view.Rows {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
					row.Date.Format("2006-01-02 15:04:05"), row.UserName, row.Scope, row.TypeName, row.LicenseText)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&eventsPath, "events", "-", "JSON array of clearing events (- for stdin)")
	cmd.Flags().Int64Var(&item, "item", 0, "Item whose history to print")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}

func (a *app) bulkCommand() *cobra.Command {
	var eventsPath string
	cmd := &cobra.Command{
		Use:   "bulk",
		Short: "Group the items of bulk assertions by license",
		RunE: func(cmd *cobra.Command, _ []string) error {
			histories, err := a.loadHistories(eventsPath)
			if err != nil {
				return err
			}
			var decisions []models.ClearingDecision
			for _, h := range histories {
				d, err := resolver.BulkAssertions(h)
				if err != nil {
					return err
				}
				decisions = append(decisions, d...)
			}
			return writeJSON(cmd.OutOrStdout(), resolver.ExtractBulkMatches(decisions))
		},
	}
	cmd.Flags().StringVar(&eventsPath, "events", "-", "JSON array of clearing events (- for stdin)")
	return cmd
}
