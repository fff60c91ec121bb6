package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ytget/wav-chopper/internal/config"
	"github.com/ytget/wav-chopper/internal/playback"
	"github.com/ytget/wav-chopper/internal/toolchain"
	"github.com/ytget/wav-chopper/internal/ui"
)

// version is set during build via -ldflags "-X github.com/ytget/wav-chopper/internal/cli.version=X.Y.Z"
var version = "dev"

// deps are the pieces the commands need from the outside world
type deps struct {
	loadConfig   func() toolchain.Config
	newGateway   func(cfg toolchain.Config) toolchain.Gateway
	checkTools   func(cfg toolchain.Config) []toolchain.ToolStatus
	runGUI       func()
	tickInterval time.Duration
}

func defaultDeps() deps {
	newGateway := func(cfg toolchain.Config) toolchain.Gateway {
		return toolchain.NewService(cfg)
	}
	return deps{
		loadConfig: config.LoadToolchain,
		newGateway: newGateway,
		checkTools: func(cfg toolchain.Config) []toolchain.ToolStatus {
			return toolchain.NewService(cfg).Check()
		},
		runGUI: func() {
			ui.Run(version, newGateway)
		},
		tickInterval: playback.TickInterval,
	}
}

// Main runs the wav-chopper command line
func Main() {
	config.LoadDotEnv() // best-effort: load .env if present

	root := newRootCmd(defaultDeps())
	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(d deps) *cobra.Command {
	root := &cobra.Command{
		Use:           "wav-chopper",
		Short:         "Play a WAV file, mark ranges and export them as chop_NNN.wav",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			d.runGUI()
			return nil
		},
	}

	root.AddCommand(
		newProbeCmd(d),
		newPlayCmd(d),
		newExportCmd(d),
		newCheckCmd(d),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "wav-chopper %s\n", version)
		},
	}
}
