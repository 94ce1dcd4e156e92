package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"github.com/ghuser/taskdeck/pkg/app"
	"github.com/ghuser/taskdeck/pkg/cache"
	"github.com/ghuser/taskdeck/pkg/config"
	"github.com/ghuser/taskdeck/pkg/database"
	"github.com/ghuser/taskdeck/pkg/events"
	"github.com/ghuser/taskdeck/pkg/logger"
	"github.com/ghuser/taskdeck/pkg/telemetry"
	"github.com/ghuser/taskdeck/pkg/workflows"
	boardsvcs "github.com/ghuser/taskdeck/services/board/application/services"
	boarddomain "github.com/ghuser/taskdeck/services/board/domain"
	cardEvents "github.com/ghuser/taskdeck/services/board/domain/events"
	boardpg "github.com/ghuser/taskdeck/services/board/infrastructure/persistence/postgres"
	sharesvcs "github.com/ghuser/taskdeck/services/share/application/services"
	shareEvents "github.com/ghuser/taskdeck/services/share/domain/events"
	sharepg "github.com/ghuser/taskdeck/services/share/infrastructure/persistence/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	appConfig := &app.Application{
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	if cfg.TemporalEnabled {
		temporalClient, err := workflows.NewTemporalClient(ctx, cfg.TemporalHostPort, cfg.TemporalNamespace, log)
		if err != nil {
			log.Error("failed to initialize temporal client", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		defer temporalClient.Close()
		appConfig.TemporalClient = temporalClient

		w, err := startSweepWorker(ctx, cfg, appConfig)
		if err != nil {
			log.Error("failed to start temporal worker", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		defer w.Stop()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	inviteRefresh := handleInviteChange(a)
	handlers := map[string]func(context.Context, *message.Message) error{
		cardEvents.TopicCardCreated:     handleCardCreated(a),
		shareEvents.TopicShareRequested: inviteRefresh,
		shareEvents.TopicShareAccepted:  inviteRefresh,
		shareEvents.TopicShareRevoked:   inviteRefresh,
	}

	topics := make([]string, 0, len(handlers))
	for topic, handler := range handlers {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
		if err != nil {
			return err
		}
		topics = append(topics, topic)

		// Drain subscriber errors in background so the channel never blocks.
		go func(topic string) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}(topic)
	}

	a.Logger.Info("event subscribers registered", "topics", topics)
	return nil
}

// handleCardCreated returns a handler for card.created events.
// Handlers must be idempotent: EventBus retries up to 3 times on failure.
// Loads the full card row and warms the Redis read-model cache so subsequent
// GetByID calls are served from cache.
func handleCardCreated(a *app.Application) func(context.Context, *message.Message) error {
	cardCache := cache.NewCardCache(a.Redis)
	cardRepo := boardpg.NewCardRepository(a.Db, a.EventBus)
	return func(ctx context.Context, msg *message.Message) error {
		var evt cardEvents.CardCreatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		card, err := cardRepo.GetByID(ctx, evt.Owner, evt.CardID)
		if err != nil {
			if errors.Is(err, boarddomain.ErrCardNotFound) {
				// Card already deleted before the event was processed.
				return nil
			}
			return err
		}

		if err := cardCache.Set(ctx, boardsvcs.CachedFromCard(card)); err != nil {
			// Cache warming is best-effort; log but do not fail the handler.
			a.Logger.WarnContext(ctx, "cache warm failed for card.created",
				"card_id", evt.CardID, "error", err)
		} else {
			a.Logger.InfoContext(ctx, "cache warmed",
				"card_id", evt.CardID, "owner", evt.Owner)
		}

		return nil
	}
}

// recipientEvent is the common shape of all share lifecycle payloads; only
// the recipient field is needed to refresh that user's pending counter.
type recipientEvent struct {
	Recipient string `json:"recipient"`
}

// handleInviteChange returns a handler shared by all share lifecycle topics.
// It recounts the recipient's pending invitations from the database and
// refreshes the Redis counter badge.
func handleInviteChange(a *app.Application) func(context.Context, *message.Message) error {
	inviteCache := cache.NewInviteCountCache(a.Redis)
	shareRepo := sharepg.NewShareRepository(a.Db, a.EventBus)
	return func(ctx context.Context, msg *message.Message) error {
		var evt recipientEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}
		if evt.Recipient == "" {
			return nil
		}

		pending, err := shareRepo.FindPendingByRecipient(ctx, evt.Recipient)
		if err != nil {
			return err
		}

		if err := inviteCache.Set(ctx, evt.Recipient, int64(len(pending))); err != nil {
			// Counter is best-effort; log but do not fail the handler.
			a.Logger.WarnContext(ctx, "invite counter refresh failed",
				"recipient", evt.Recipient, "error", err)
			return nil
		}

		a.Logger.InfoContext(ctx, "invite counter refreshed",
			"recipient", evt.Recipient, "pending", len(pending))
		return nil
	}
}

// startSweepWorker registers the stale-invitation sweep workflow on its task
// queue and kicks off the nightly cron execution.
func startSweepWorker(ctx context.Context, cfg *config.Config, a *app.Application) (worker.Worker, error) {
	svcs := sharesvcs.New(a)

	w := worker.New(a.TemporalClient.Client, workflows.InvitationSweepTaskQueue, worker.Options{})
	w.RegisterWorkflow(workflows.InvitationSweepWorkflow)
	w.RegisterActivity(workflows.NewSweepActivities(svcs.Share, a.Logger))

	if err := w.Start(); err != nil {
		return nil, err
	}

	ttl := time.Duration(cfg.InvitationTTLDays) * 24 * time.Hour
	_, err := a.TemporalClient.Client.ExecuteWorkflow(ctx, client.StartWorkflowOptions{
		ID:           workflows.InvitationSweepWorkflowID,
		TaskQueue:    workflows.InvitationSweepTaskQueue,
		CronSchedule: "0 3 * * *",
	}, workflows.InvitationSweepWorkflow, workflows.SweepInput{TTL: ttl})
	if err != nil {
		return nil, err
	}

	a.Logger.Info("invitation sweep scheduled", "cron", "0 3 * * *", "ttl_days", cfg.InvitationTTLDays)
	return w, nil
}
