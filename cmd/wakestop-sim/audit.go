package main

import (
	"os/signal"
	"syscall"

	"github.com/piresc/wakestop/internal/pkg/constants"
	"github.com/piresc/wakestop/internal/pkg/logger"
	"github.com/piresc/wakestop/internal/pkg/models"
	"github.com/piresc/wakestop/internal/pkg/nsq"
	"github.com/spf13/cobra"
)

func newAuditCmd() *cobra.Command {
	var address, topic, channel string

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Tail the call backend audit events",
		RunE: func(cmd *cobra.Command, _ []string) error {
			consumer, err := nsq.NewConsumer(topic, channel, address, func(body []byte) error {
				var event models.CallEvent
				if err := nsq.UnmarshalMessage(body, &event); err != nil {
					return err
				}
				logger.Info("Call event",
					logger.String("id", event.ID),
					logger.String("user_id", event.UserID),
					logger.String("outcome", event.Outcome),
					logger.String("provider_id", event.ProviderID),
					logger.String("error", event.Error),
					logger.Time("occurred_at", event.OccurredAt))
				return nil
			})
			if err != nil {
				return err
			}
			defer consumer.Stop()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			<-ctx.Done()
			return nil
		},
	}
	cmd.Flags().StringVar(&address, "nsqd", "localhost:4150", "nsqd TCP address")
	cmd.Flags().StringVar(&topic, "topic", constants.TopicCallEvents, "audit topic")
	cmd.Flags().StringVar(&channel, "channel", constants.ChannelCallAudit, "consumer channel")
	return cmd
}
