package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ytget/wav-chopper/internal/platform"
	"github.com/ytget/wav-chopper/internal/session"
	"github.com/ytget/wav-chopper/internal/timecode"
	"github.com/ytget/wav-chopper/internal/toolchain"
)

func newProbeCmd(d deps) *cobra.Command {
	return &cobra.Command{
		Use:   "probe <file.wav>",
		Short: "Print the duration of a WAV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gw := d.newGateway(d.loadConfig())
			sec, err := gw.ProbeDuration(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s s)\n", timecode.Format(sec), toolchain.FormatSeconds(sec))
			return nil
		},
	}
}

func newPlayCmd(d deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play <file.wav>",
		Short: "Play a WAV file without a window, printing the position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fromText, _ := cmd.Flags().GetString("from")

			sess := session.New(d.newGateway(d.loadConfig()))
			defer sess.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			if _, err := sess.Load(ctx, args[0]); err != nil {
				return err
			}
			if fromText != "" {
				from, err := timecode.Parse(fromText)
				if err != nil {
					return fmt.Errorf("--from: %w", err)
				}
				if err := sess.Seek(from); err != nil {
					return err
				}
			}
			return playUntilEnd(ctx, cmd, sess, d.tickInterval)
		},
	}
	cmd.Flags().String("from", "", "Start position (MM:SS, HH:MM:SS or HH:MM:SS:CC)")
	return cmd
}

// playUntilEnd plays and prints the position every tick until the end,
// the player exits, or ctx is cancelled.
func playUntilEnd(ctx context.Context, cmd *cobra.Command, sess *session.Session, interval time.Duration) error {
	if err := sess.Play(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	total := timecode.Format(sess.Duration())
	tk := time.NewTicker(interval)
	defer tk.Stop()

	for {
		select {
		case <-ctx.Done():
			pos := sess.Position()
			if err := sess.Stop(); err != nil {
				return err
			}
			fmt.Fprintf(out, "\nstopped at %s\n", timecode.Format(pos))
			return nil
		case <-tk.C:
			res := sess.Tick()
			fmt.Fprintf(out, "\r%s / %s", timecode.Format(res.Position), total)
			if res.Ended {
				fmt.Fprintln(out)
				return nil
			}
		}
	}
}

func newExportCmd(d deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <file.wav>",
		Short: "Export one range of a WAV file as the next chop_NNN.wav",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			begin, _ := cmd.Flags().GetString("begin")
			end, _ := cmd.Flags().GetString("end")
			outDir, _ := cmd.Flags().GetString("out")
			countFrom, _ := cmd.Flags().GetInt("count-from")

			absOut, err := filepath.Abs(outDir)
			if err != nil {
				return err
			}
			if err := platform.CreateDirectoryIfNotExists(absOut); err != nil {
				return fmt.Errorf("create output folder: %w", err)
			}

			sess := session.New(
				d.newGateway(d.loadConfig()),
				session.WithOutputDir(absOut),
				session.WithFirstIndex(countFrom),
			)
			defer sess.Close()

			if _, err := sess.Load(cmd.Context(), args[0]); err != nil {
				return err
			}
			record, err := sess.Export(cmd.Context(), begin, end)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), record.Label())
			return nil
		},
	}
	cmd.Flags().String("begin", "", "Begin time (MM:SS, HH:MM:SS or HH:MM:SS:CC)")
	cmd.Flags().String("end", "", "End time (MM:SS, HH:MM:SS or HH:MM:SS:CC)")
	cmd.Flags().String("out", ".", "Output folder")
	cmd.Flags().Int("count-from", 1, "Sequence number of the exported chop")
	_ = cmd.MarkFlagRequired("begin")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}

func newCheckCmd(d deps) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check that ffprobe, ffplay and ffmpeg can be found",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			statuses := d.checkTools(d.loadConfig())
			for _, st := range statuses {
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", st.Tool, st.Message)
			}
			if missing := toolchain.MissingTools(statuses); len(missing) > 0 {
				return &toolchain.LaunchError{Tool: missing[0], NotFound: true}
			}
			return nil
		},
	}
}
