package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/piresc/wakestop/internal/pkg/constants"
	"github.com/piresc/wakestop/internal/pkg/feed"
	httpclient "github.com/piresc/wakestop/internal/pkg/http"
	"github.com/piresc/wakestop/internal/pkg/logger"
	"github.com/piresc/wakestop/internal/pkg/models"
	natspkg "github.com/piresc/wakestop/internal/pkg/nats"
	"github.com/spf13/cobra"
)

type replayOptions struct {
	natsURL    string
	trackerURL string
	realtime   bool
}

func newReplayCmd(root *rootOptions) *cobra.Command {
	opts := &replayOptions{}

	cmd := &cobra.Command{
		Use:   "replay <route-file>",
		Short: "Replay a recorded route as position samples",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			route, err := feed.LoadRoute(args[0])
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if opts.trackerURL != "" {
				if err := startTrip(ctx, root, opts.trackerURL, route); err != nil {
					return err
				}
			}
			return replay(ctx, opts, route)
		},
	}
	cmd.Flags().StringVar(&opts.natsURL, "nats-url", "nats://localhost:4222", "NATS server URL")
	cmd.Flags().StringVar(&opts.trackerURL, "tracker-url", "", "tracker base URL; when set the trip is started before replaying")
	cmd.Flags().BoolVar(&opts.realtime, "realtime", false, "wait between samples as recorded")
	return cmd
}

func startTrip(ctx context.Context, root *rootOptions, trackerURL string, route *feed.Route) error {
	token, err := signToken(root, route.UserID, time.Hour)
	if err != nil {
		return err
	}

	destination := route.Destination.Coordinate()
	client := httpclient.NewClient(httpclient.Config{BaseURL: trackerURL})
	resp, err := client.PostJSON(ctx, "/v1/trips", models.StartTripRequest{
		Destination:     &destination,
		ThresholdMeters: route.ThresholdMeters,
	}, map[string]string{"Authorization": "Bearer " + token})
	if err != nil {
		return fmt.Errorf("failed to start trip: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("failed to start trip: %w", httpclient.ReadError(resp))
	}
	logger.Info("Trip started",
		logger.String("user_id", route.UserID),
		logger.Float64("threshold_meters", route.ThresholdMeters))
	return nil
}

func replay(ctx context.Context, opts *replayOptions, route *feed.Route) error {
	client, err := natspkg.NewClient(opts.natsURL)
	if err != nil {
		return err
	}
	defer client.Close()

	filter := feed.NewFilter()
	samples := route.Samples(time.Now())

	var published, skipped int
	for i, sample := range samples {
		if opts.realtime && i > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(sample.Timestamp.Sub(samples[i-1].Timestamp)):
			}
		}

		if !filter.Accept(sample) {
			skipped++
			continue
		}
		if err := client.PublishJSON(constants.SubjectLocationSample, sample); err != nil {
			return fmt.Errorf("failed to publish sample %d: %w", i, err)
		}
		published++
		logger.Debug("Sample published", logger.Coordinate("position", sample.Coordinate))
	}

	if err := client.GetConn().FlushWithContext(ctx); err != nil {
		return fmt.Errorf("failed to flush samples: %w", err)
	}
	logger.Info("Route replayed",
		logger.String("user_id", route.UserID),
		logger.Int("published", published),
		logger.Int("skipped", skipped))
	return nil
}
