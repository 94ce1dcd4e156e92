package workflows

import (
	"context"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/ghuser/taskdeck/pkg/logger"
)

// InvitationSweepTaskQueue is the Temporal task queue for invitation maintenance.
const InvitationSweepTaskQueue = "invitation-sweep"

// InvitationSweepWorkflowID is used with a cron schedule so only one sweep
// runs at a time.
const InvitationSweepWorkflowID = "invitation-sweep"

// StaleSweeper deletes pending invitations older than a TTL and reports how
// many rows were removed.
type StaleSweeper interface {
	SweepStalePending(ctx context.Context, ttl time.Duration) (int64, error)
}

// SweepInput carries the sweep parameters into the workflow.
type SweepInput struct {
	TTL time.Duration
}

// InvitationSweepWorkflow runs the stale-invitation sweep as a single
// activity with retries. Scheduled via cron from cmd/worker.
func InvitationSweepWorkflow(ctx workflow.Context, in SweepInput) error {
	ctx = workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 5 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval: 10 * time.Second,
			MaximumAttempts: 3,
		},
	})

	var a *SweepActivities
	return workflow.ExecuteActivity(ctx, a.SweepStaleInvitations, in).Get(ctx, nil)
}

// SweepActivities holds the dependencies of the sweep activity.
type SweepActivities struct {
	sweeper StaleSweeper
	log     logger.Logger
}

// NewSweepActivities returns activities backed by the given sweeper.
func NewSweepActivities(sweeper StaleSweeper, log logger.Logger) *SweepActivities {
	return &SweepActivities{sweeper: sweeper, log: log}
}

// SweepStaleInvitations removes PENDING invitations older than the TTL.
// Deleting already-deleted rows is a no-op, so retries are safe.
func (a *SweepActivities) SweepStaleInvitations(ctx context.Context, in SweepInput) error {
	removed, err := a.sweeper.SweepStalePending(ctx, in.TTL)
	if err != nil {
		return err
	}

	a.log.InfoContext(ctx, "stale invitations swept", "removed", removed, "ttl", in.TTL.String())
	return nil
}
