package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/piresc/boleias/internal/pkg/constants"
	"github.com/piresc/boleias/internal/pkg/logger"
	"github.com/piresc/boleias/internal/pkg/models"
	"github.com/piresc/boleias/internal/pkg/nsq"
	"github.com/spf13/cobra"
)

// ExportSyncOptions holds flags for the export-sync command
type ExportSyncOptions struct {
	*RootOptions
	Output  string
	Channel string
}

// NewExportSyncCommand creates the export-sync command
func NewExportSyncCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportSyncOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "export-sync",
		Short: "Append entity-change events to a CSV for the shared spreadsheet",
		Long: `Consume entity-change events from NSQ and append one CSV row per event.

Example:
  boleias export-sync --out /data/changes.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExportSync(opts)
		},
	}

	cmd.Flags().StringVar(&opts.Output, "out", "entity_changes.csv", "CSV file to append to")
	cmd.Flags().StringVar(&opts.Channel, "channel", constants.ChannelExportSync, "NSQ channel name")

	return cmd
}

func runExportSync(opts *ExportSyncOptions) error {
	f, err := os.OpenFile(opts.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open export file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	w := newEventWriter(f, info.Size() == 0)

	topic := opts.configs.NSQ.Topic
	consumer, err := nsq.NewConsumer(topic, opts.Channel, opts.configs.NSQ.NSQDAddress, w.HandleMessage)
	if err != nil {
		return err
	}
	logger.Info("Export sync started",
		logger.String("topic", topic),
		logger.String("channel", opts.Channel),
		logger.String("out", opts.Output))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	consumer.Stop()
	logger.Info("Export sync stopped", logger.Int("rows", w.Rows()))
	return nil
}

var exportHeader = []string{"occurred_at", "action", "entity_type", "entity_id", "previous_status", "new_status", "actor"}

// eventWriter turns entity-change events into CSV rows
type eventWriter struct {
	mu   sync.Mutex
	csv  *csv.Writer
	rows int
	head bool
}

func newEventWriter(out io.Writer, writeHeader bool) *eventWriter {
	return &eventWriter{csv: csv.NewWriter(out), head: writeHeader}
}

// HandleMessage writes one row. A malformed body is logged and dropped so it is not requeued forever.
func (w *eventWriter) HandleMessage(body []byte) error {
	var event models.EntityChangedEvent
	if err := nsq.UnmarshalMessage(body, &event); err != nil {
		logger.Warn("Dropping malformed entity change", logger.Err(err))
		return nil
	}
	return w.write(&event)
}

func (w *eventWriter) write(event *models.EntityChangedEvent) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.head {
		if err := w.csv.Write(exportHeader); err != nil {
			return err
		}
		w.head = false
	}
	row := []string{
		event.OccurredAt.UTC().Format(time.RFC3339),
		event.Action,
		event.EntityType,
		event.EntityID,
		metaString(event.Metadata, constants.MetaPreviousStatus),
		metaString(event.Metadata, constants.MetaNewStatus),
		metaString(event.Metadata, constants.MetaActor),
	}
	if err := w.csv.Write(row); err != nil {
		return err
	}
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		return err
	}
	w.rows++
	return nil
}

func (w *eventWriter) Rows() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.rows
}

func metaString(meta map[string]interface{}, key string) string {
	v, ok := meta[key]
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
