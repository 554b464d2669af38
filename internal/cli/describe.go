package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"edenlog/internal/platform/config"
	"edenlog/pkg/platform/telemetry"
	"edenlog/pkg/platform/telemetry/sinks/memory"
)

var (
	describeType   string
	describeSample bool
)

func init() {
	describeCmd.Flags().StringVarP(&describeType, "type", "t", "", "only describe this event type")
	describeCmd.Flags().BoolVar(&describeSample, "sample", false, "include the session fields this host would attach")
	rootCmd.AddCommand(describeCmd)
}

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Print the container each telemetry event type produces",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var session *telemetry.SessionInfo
		if describeSample {
			info := telemetry.NewSessionInfo(config.Version)
			session = &info
		}
		records, err := sampleRecords(cmd.Context(), describeType, session)
		if err != nil {
			return err
		}
		return writeRecords(cmd.OutOrStdout(), records)
	},
}

// describedEvent is one populated container as printed by describe.
type describedEvent struct {
	Type  string                  `json:"type"`
	Event *telemetry.DynamicEvent `json:"event"`
}

// sampleRecords logs a zero-valued instance of each requested event type
// through a memory sink and returns what the sink captured.
func sampleRecords(ctx context.Context, eventType string, session *telemetry.SessionInfo) ([]describedEvent, error) {
	events := telemetry.Known()
	if eventType != "" {
		e, ok := telemetry.Lookup(eventType)
		if !ok {
			return nil, fmt.Errorf("unknown event type %q", eventType)
		}
		events = []telemetry.Event{e}
	}

	sink := memory.NewSink()
	var opts []telemetry.Option
	if session != nil {
		opts = append(opts, telemetry.WithSession(*session))
	}
	tl := telemetry.New(sink, opts...)
	for _, e := range events {
		tl.LogEvent(ctx, e)
	}

	captured := sink.Events()
	out := make([]describedEvent, 0, len(captured))
	for _, r := range captured {
		out = append(out, describedEvent{Type: r.Type, Event: r.Event})
	}
	return out, nil
}

func writeRecords(w io.Writer, records []describedEvent) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
