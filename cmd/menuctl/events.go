package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vladislavdragonenkov/menuboard/internal/app"
	"github.com/vladislavdragonenkov/menuboard/internal/domain"
	"github.com/vladislavdragonenkov/menuboard/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/menuboard/internal/version"
	"github.com/vladislavdragonenkov/menuboard/internal/view"
)

func newEventsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: "Print menu change events from Kafka until interrupted",
		Long: `events subscribes to the menu change topic and prints every event.
Events are only displayed; they are never applied to the local menu.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			brokers := c.cfg.Brokers()
			if len(brokers) == 0 {
				return fmt.Errorf("no kafka brokers configured, set %s", app.EnvKafkaBrokers)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			consumer, err := kafka.NewConsumer(brokers, c.cfg.KafkaGroup, []string{c.cfg.KafkaTopic}, printEvents(out))
			if err != nil {
				return err
			}
			if err := consumer.Start(ctx); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(out, "listening on %s, press Ctrl+C to stop\n", c.cfg.KafkaTopic)

			<-ctx.Done()
			return consumer.Stop()
		},
	}
}

// printEvents возвращает обработчик, печатающий каждое событие строкой.
func printEvents(out io.Writer) kafka.EventHandler {
	return func(_ context.Context, event domain.MenuEvent) error {
		_, err := fmt.Fprintln(out, formatEvent(event))
		return err
	}
}

func formatEvent(event domain.MenuEvent) string {
	ts := event.Timestamp.Format("2006-01-02 15:04:05")
	stats := fmt.Sprintf("total=%d avg=%s", event.Stats.TotalItems, view.FormatPrice(event.Stats.AveragePrice))

	switch {
	case event.Dish != nil:
		return fmt.Sprintf("%s %-12s %s (%s) [%s] id=%s %s",
			ts, event.Type, event.Dish.Name, view.FormatPrice(event.Dish.Price), event.Dish.Course, event.Dish.ID, stats)
	case event.DishID != "":
		return fmt.Sprintf("%s %-12s id=%s %s", ts, event.Type, event.DishID, stats)
	default:
		return fmt.Sprintf("%s %-12s %s", ts, event.Type, stats)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of menuctl",
		// конфиг для версии не нужен
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.Banner("menuctl"))
			return err
		},
	}
}
