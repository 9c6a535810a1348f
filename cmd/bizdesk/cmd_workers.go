package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/bizdesk/app/jobs"
	"github.com/shashiranjanraj/bizdesk/internal/server"
	"github.com/shashiranjanraj/bizdesk/pkg/cache"
	"github.com/shashiranjanraj/bizdesk/pkg/queue"
	"github.com/shashiranjanraj/bizdesk/pkg/schedule"
)

var queueWorkersFlag int

// bootWorkers wires the store, report service and queue driver for a
// standalone worker process.
func bootWorkers() error {
	st, err := server.NewStore()
	if err != nil {
		return err
	}

	jobs.Configure(server.NewReports(server.NewRepos(st)))
	jobs.Register()

	if err := cache.Connect(); err == nil && cache.RDB != nil {
		queue.SetDriver(queue.NewRedisDriver(cache.RDB))
	} else {
		queue.SetDriver(queue.NewMemoryDriver())
	}
	return nil
}

// bizdesk queue:work
var queueWorkCmd = &cobra.Command{
	Use:   "queue:work",
	Short: "Start the queue worker",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := bootWorkers(); err != nil {
			return err
		}

		workers := queueWorkersFlag
		if workers < 1 {
			workers = 5
		}

		fmt.Printf("Queue worker started (%d workers). Press Ctrl+C to stop.\n", workers)
		queue.StartWorkers(ctx, workers)

		<-ctx.Done()
		fmt.Println("\nQueue worker stopped.")
		return nil
	},
}

// bizdesk schedule:run
var scheduleRunCmd = &cobra.Command{
	Use:   "schedule:run",
	Short: "Start the task scheduler",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		st, err := server.NewStore()
		if err != nil {
			return err
		}
		reports := server.NewReports(server.NewRepos(st))
		jobs.Configure(reports)
		jobs.Register()
		server.RegisterSchedule(reports)

		tasks := schedule.List()
		fmt.Println("Registered scheduled tasks:")
		for _, t := range tasks {
			fmt.Println("  -", t)
		}

		fmt.Println("Scheduler started. Press Ctrl+C to stop.")
		schedule.Start(ctx)

		<-ctx.Done()
		fmt.Println("\nScheduler stopped.")
		return nil
	},
}

func init() {
	queueWorkCmd.Flags().IntVarP(&queueWorkersFlag, "workers", "w", 5, "Number of concurrent workers")
}
