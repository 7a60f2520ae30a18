package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/astradev123/obsidian-focus-time/internal/ports"
)

// hostEvent is one line of the JSON event stream fed to track.
type hostEvent struct {
	Type    string `json:"type"`
	Path    string `json:"path,omitempty"`
	OldPath string `json:"oldPath,omitempty"`
}

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Record reading time from a host event stream",
	Long: `Record reading time by consuming newline-delimited JSON events on
stdin until EOF or interrupt. Time accrues once per tick to the active
document while the window is focused.

Event lines:
  {"type":"active","path":"notes/today.md"}
  {"type":"focus"}
  {"type":"blur"}
  {"type":"rename","path":"new.md","oldPath":"old.md"}
  {"type":"rename-folder","path":"new-dir","oldPath":"old-dir"}`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		events := make(chan ports.Event)
		go func() {
			defer close(events)
			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				line := scanner.Bytes()
				if len(line) == 0 {
					continue
				}
				ev, err := parseHostEvent(line)
				if err != nil {
					fmt.Fprintf(os.Stderr, "skipping event: %v\n", err)
					continue
				}
				select {
				case events <- ev:
				case <-ctx.Done():
					return
				}
			}
		}()

		GetPlugin().Run(ctx, events)
		return nil
	},
}

func parseHostEvent(line []byte) (ports.Event, error) {
	var raw hostEvent
	if err := json.Unmarshal(line, &raw); err != nil {
		return nil, fmt.Errorf("malformed event: %w", err)
	}

	switch raw.Type {
	case "active":
		return ports.ActiveDocumentChanged{Path: raw.Path}, nil
	case "focus":
		return ports.WindowFocused{}, nil
	case "blur":
		return ports.WindowBlurred{}, nil
	case "rename":
		return ports.DocumentRenamed{NewPath: raw.Path, OldPath: raw.OldPath}, nil
	case "rename-folder":
		return ports.FolderRenamed{NewPath: raw.Path, OldPath: raw.OldPath}, nil
	default:
		return nil, fmt.Errorf("unknown event type %q", raw.Type)
	}
}

func init() {
	rootCmd.AddCommand(trackCmd)
}
