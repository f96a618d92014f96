// Command remapd grabs a physical keyboard device, runs it through a
// compiled remap table, and writes the result to a synthesized virtual
// keyboard. See internal/pipeline for the three-task runtime and
// internal/compose for the tap-toggle resolution it drives.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/layerkey/remapd/internal/compose"
	"github.com/layerkey/remapd/internal/config"
	"github.com/layerkey/remapd/internal/evdevio"
	"github.com/layerkey/remapd/internal/logging"
	"github.com/layerkey/remapd/internal/pipeline"
	"github.com/layerkey/remapd/internal/recorder"
	"github.com/layerkey/remapd/internal/remaptable"
	"github.com/layerkey/remapd/internal/tui"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "remap":
		runRemap(os.Args[2:])
	case "listen":
		runListen(os.Args[2:])
	case "list-devices":
		runListDevices(os.Args[2:])
	case "-h", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "remapd: unknown subcommand %q\n", os.Args[1])
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage:
  remapd remap <device-path> [--passthrough] [--log-keys-to PATH] [-v|-vv|-vvv|-q|-qq]
  remapd listen <device-path>
  remapd list-devices`)
}

// verbosityFlags registers the -v/-vv/-vvv and -q/-qq counters on fs.
// Only the remap subcommand registers them.
func verbosityFlags(fs *flag.FlagSet) (verbose, quiet *int) {
	v, q := new(int), new(int)
	for i, name := range []string{"v", "vv", "vvv"} {
		n := i + 1
		fs.BoolFunc(name, "raise log verbosity (-v, -vv or -vvv)", func(string) error { *v += n; return nil })
	}
	for i, name := range []string{"q", "qq"} {
		n := i + 1
		fs.BoolFunc(name, "lower log verbosity (-q or -qq)", func(string) error { *q += n; return nil })
	}
	return v, q
}

func runRemap(args []string) {
	fs := flag.NewFlagSet("remap", flag.ExitOnError)
	passthrough := fs.Bool("passthrough", false, "forward every key unchanged instead of compiling a remap table")
	logKeysTo := fs.String("log-keys-to", "", "write every input and output event to PATH as a JSON array")
	verbose, quiet := verbosityFlags(fs)
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "remapd remap: missing <device-path>")
		os.Exit(2)
	}
	devicePath := fs.Arg(0)
	// Options may also follow the device path, as the usage line shows.
	fs.Parse(fs.Args()[1:])

	logger := logging.New(os.Stderr, logging.LevelFromVerbosity(*verbose, *quiet))

	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		logger.Error("load config", "err", err)
		os.Exit(1)
	}

	grabDelay := time.Duration(cfg.Startup.GrabDelayMs) * time.Millisecond
	if grabDelay <= 0 {
		grabDelay = config.DefaultGrabDelayMs * time.Millisecond
	}
	time.Sleep(grabDelay)

	source, err := evdevio.OpenSource(devicePath)
	if err != nil {
		logger.Error("open source device", "err", err)
		os.Exit(1)
	}
	sink, err := evdevio.OpenSink()
	if err != nil {
		logger.Error("open sink device", "err", err)
		source.Close()
		os.Exit(1)
	}

	var transform pipeline.Transformer
	if *passthrough {
		transform = compose.NewPassthrough()
	} else {
		// remaptable.Build is the compiled output of cmd/remapgen run
		// against internal/remaptable/example.remap; swapping in a
		// different compiled table means pointing this import at a
		// different generated package, per spec §4.4's "runs at build
		// time, not runtime."
		table, err := remaptable.Build()
		if err != nil {
			logger.Error("build layer table", "err", err)
			os.Exit(1)
		}
		composer := compose.New(table)
		if cfg.Timing.HoldThresholdMs > 0 {
			composer.SetHoldThreshold(time.Duration(cfg.Timing.HoldThresholdMs) * time.Millisecond)
		}
		transform = composer
		fmt.Fprintln(os.Stderr, tui.Banner(devicePath, table))
	}

	var closeRecorder func()
	if *logKeysTo != "" {
		writer, err := recorder.NewWriter(*logKeysTo)
		if err != nil {
			logger.Error("open tap log", "err", err)
			os.Exit(1)
		}
		records := make(chan recorder.Record, pipeline.DefaultQueueSize)
		done := make(chan struct{})
		go func() {
			if err := writer.Run(records, logger); err != nil {
				logger.Warn("tap log writer stopped with an error", "err", err)
			}
			close(done)
		}()
		transform = recorder.New(transform, records)
		closeRecorder = func() {
			close(records)
			<-done
		}
	}

	pl := pipeline.New(source, sink, transform, logger)
	runErr := pl.Run()
	if closeRecorder != nil {
		closeRecorder()
	}
	if runErr != nil {
		logger.Error("pipeline exited with an error", "err", runErr)
		os.Exit(1)
	}
}

func runListen(args []string) {
	fs := flag.NewFlagSet("listen", flag.ExitOnError)
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "remapd listen: missing <device-path>")
		os.Exit(2)
	}
	devicePath := fs.Arg(0)

	source, err := evdevio.OpenSourceUngrabbed(devicePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "remapd listen: open device: %v\n", err)
		os.Exit(1)
	}
	defer source.Close()

	model := tui.NewListenModel(devicePath)
	p := tea.NewProgram(model)
	go tui.FeedEvents(p, source)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "remapd listen: %v\n", err)
		os.Exit(1)
	}
}

func runListDevices(args []string) {
	fs := flag.NewFlagSet("list-devices", flag.ExitOnError)
	fs.Parse(args)

	devices, err := evdevio.ListDevices()
	if err != nil {
		fmt.Fprintf(os.Stderr, "remapd list-devices: %v\n", err)
		os.Exit(1)
	}

	rows := make([]tui.DeviceRow, len(devices))
	for i, d := range devices {
		rows[i] = tui.DeviceRow{Path: d.Path, Name: d.Name, IsKeyboard: d.IsKeyboard}
	}
	fmt.Println(tui.DeviceTable(rows))
}
