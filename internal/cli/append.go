package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"clearview/internal/clearing/decisiontypes"
	"clearview/internal/clearing/models"
	"clearview/internal/clearing/store/event"
	"clearview/internal/clearing/store/license"
	id "clearview/pkg/domain"
	dErrors "clearview/pkg/domain-errors"
	"clearview/pkg/platform/strings"
)

// parseDecisionType accepts a catalog name ("Identified") or its number.
func parseDecisionType(s string) (models.DecisionType, error) {
	types := decisiontypes.Default()
	if t, err := types.TypeByName(s); err == nil {
		return t, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || !types.Contains(models.DecisionType(n)) {
		return 0, dErrors.Newf(dErrors.CodeUnknownDecisionType, "unknown decision type %q", s)
	}
	return models.DecisionType(n), nil
}

func parseLicenseIDs(s string) ([]id.LicenseID, error) {
	var out []id.LicenseID
	for _, part := range strings.SplitList(s, ",") {
		lid, err := id.ParseLicenseID(part)
		if err != nil {
			return nil, err
		}
		out = append(out, lid)
	}
	return out, nil
}

func parseItemIDs(s string) ([]id.ItemID, error) {
	var out []id.ItemID
	for _, part := range strings.SplitList(s, ",") {
		item, err := id.ParseItemID(part)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (a *app) appendCommand() *cobra.Command {
	var (
		item        int64
		user        int64
		userName    string
		typeName    string
		scope       string
		positive    string
		negative    string
		bulk        bool
		catalogPath string
	)
	cmd := &cobra.Command{
		Use:   "append",
		Short: "Append a clearing event to the configured event store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if item <= 0 || user <= 0 {
				return usageError{fmt.Errorf("--item and --user must be positive")}
			}
			sc := models.Scope(scope)
			if !sc.IsValid() {
				return usageError{fmt.Errorf("unknown scope %q (item, global)", scope)}
			}
			t, err := parseDecisionType(typeName)
			if err != nil {
				return err
			}
			posIDs, err := parseLicenseIDs(positive)
			if err != nil {
				return err
			}
			negIDs, err := parseLicenseIDs(negative)
			if err != nil {
				return err
			}

			b, err := a.openBackend(ctx)
			if err != nil {
				return err
			}
			defer b.Close()

			catalog, err := a.licenseCatalog(b, catalogPath)
			if err != nil {
				return err
			}
			e := models.ClearingEvent{
				ItemID:   id.ItemID(item),
				UserID:   id.UserID(user),
				UserName: userName,
				Scope:    sc,
				Type:     t,
				Origin:   models.OriginUser,
			}
			if bulk {
				e.Origin = models.OriginBulk
			}
			for _, lid := range posIDs {
				ref, err := catalog.LookupLicense(ctx, lid)
				if err != nil {
					return err
				}
				e.Positive = append(e.Positive, ref)
			}
			for _, lid := range negIDs {
				ref, err := catalog.LookupLicense(ctx, lid)
				if err != nil {
					return err
				}
				e.Negative = append(e.Negative, ref)
			}

			stored, err := b.log.Append(ctx, e)
			if err != nil {
				return err
			}
			a.logger.InfoContext(ctx, "clearing event appended", "event_id", stored.ID, "item_id", stored.ItemID, "seq", stored.Seq)
			if b.publisher != nil {
				if err := b.publisher.Publish(ctx, stored); err != nil {
					a.logger.ErrorContext(ctx, "clearing event not published", "event_id", stored.ID, "error", err)
				}
			}
			return writeJSON(cmd.OutOrStdout(), stored)
		},
	}
	cmd.Flags().Int64Var(&item, "item", 0, "Item the event applies to")
	cmd.Flags().Int64Var(&user, "user", 0, "Reviewer user id")
	cmd.Flags().StringVar(&userName, "user-name", "", "Reviewer display name")
	cmd.Flags().StringVar(&typeName, "type", "Identified", "Decision type name or number")
	cmd.Flags().StringVar(&scope, "scope", string(models.ScopeItem), "Scope: item or global")
	cmd.Flags().StringVar(&positive, "positive", "", "Comma-separated license ids found")
	cmd.Flags().StringVar(&negative, "negative", "", "Comma-separated license ids ruled out")
	cmd.Flags().BoolVar(&bulk, "bulk", false, "Mark the event as produced by a bulk action")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "YAML license catalog (default: postgres license_ref)")
	return cmd
}

func (a *app) eventsCommand() *cobra.Command {
	var items string
	cmd := &cobra.Command{
		Use:   "events",
		Short: "List stored events of items as JSON (input for resolve, history and bulk)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ids, err := parseItemIDs(items)
			if err != nil {
				return err
			}
			if len(ids) == 0 {
				return usageError{fmt.Errorf("--items is required")}
			}
			b, err := a.openBackend(cmd.Context())
			if err != nil {
				return err
			}
			defer b.Close()

			events, err := b.log.ListByItems(cmd.Context(), ids)
			if err != nil {
				return err
			}
			if events == nil {
				events = []models.ClearingEvent{}
			}
			return writeJSON(cmd.OutOrStdout(), events)
		},
	}
	cmd.Flags().StringVar(&items, "items", "", "Comma-separated item ids")
	return cmd
}

func (a *app) migrateCommand() *cobra.Command {
	var (
		partitions  int32
		replication int16
	)
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create the PostgreSQL tables and the Kafka topic",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			b, err := a.openBackend(ctx)
			if err != nil {
				return err
			}
			defer b.Close()

			if b.db != nil {
				if err := event.NewPostgres(b.db).Migrate(ctx); err != nil {
					return err
				}
				if err := license.NewPostgres(b.db).Migrate(ctx); err != nil {
					return err
				}
				a.logger.InfoContext(ctx, "postgres schema ready")
			}
			if b.publisher != nil {
				if err := b.publisher.EnsureTopic(ctx, partitions, replication); err != nil {
					return err
				}
				a.logger.InfoContext(ctx, "kafka topic ready", "topic", b.publisher.Topic())
			}
			return nil
		},
	}
	cmd.Flags().Int32Var(&partitions, "partitions", 3, "Partitions of a newly created topic")
	cmd.Flags().Int16Var(&replication, "replication", 1, "Replication factor of a newly created topic")
	return cmd
}
