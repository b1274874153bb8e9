package queue

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/batch-dashboard/internal/domain"
)

// LogDispatcher accepts every command and only logs it. It is used when no
// broker is configured.
type LogDispatcher struct {
	log *slog.Logger
}

// NewLogDispatcher creates a LogDispatcher.
func NewLogDispatcher(logger *slog.Logger) *LogDispatcher {
	return &LogDispatcher{log: logger.With("component", "dispatcher")}
}

// Dispatch logs cmd and returns nil.
func (d *LogDispatcher) Dispatch(ctx context.Context, cmd domain.BatchCommand) error {
	attrs := []any{
		slog.String("type", string(cmd.Type)),
		slog.String("task_id", cmd.TaskID.String()),
		slog.String("user_id", cmd.UserID.String()),
	}
	if cmd.Settings != nil {
		attrs = append(attrs,
			slog.Float64("target_percentage", cmd.Settings.TargetPercentage),
			slog.Int64("import_setup_id", cmd.Settings.ImportSetupID),
			slog.Float64("hourly_batch_count", cmd.Settings.HourlyBatchCount))
	}
	d.log.InfoContext(ctx, "batch command accepted", attrs...)
	return nil
}
