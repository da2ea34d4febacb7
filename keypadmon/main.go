// Command keypadmon follows the keypad firmware over USB serial and
// checks every reported button against the host's classifier. With -sim
// it runs the firmware pipeline on the host against a virtual LCD.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/harveysanders/picokeypad/config"
	"github.com/harveysanders/picokeypad/display"
	"github.com/harveysanders/picokeypad/keypad"
	"github.com/harveysanders/picokeypad/loop"
	"github.com/harveysanders/picokeypad/monitor"
	"github.com/harveysanders/picokeypad/sampler"
	"go.bug.st/serial"
)

func main() {
	var (
		configFlag     = flag.String("config", "keypad.yaml", "Configuration file path")
		portFlag       = flag.String("p", "", "Serial port override (e.g., COM3 or /dev/ttyACM0)")
		baudFlag       = flag.Int("baud", 0, "Baud rate override")
		listFlag       = flag.Bool("list", false, "List serial ports and exit")
		simFlag        = flag.Bool("sim", false, "Run the pipeline on the host with a sweeping fake ADC")
		stepFlag       = flag.Uint("step", 97, "Sweep step in raw ADC units (with -sim)")
		iterationsFlag = flag.Int("iterations", 0, "Stop after n readings (0 = until interrupted)")
		verboseFlag    = flag.Bool("v", false, "Log skipped lines")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verboseFlag {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *listFlag {
		if err := listPorts(); err != nil {
			logger.Error("list ports", slog.Any("reason", err))
			os.Exit(1)
		}
		return
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		logger.Error("load config", slog.Any("reason", err))
		os.Exit(1)
	}
	if *portFlag != "" {
		cfg.Serial.Port = *portFlag
	}
	if *baudFlag > 0 {
		cfg.Serial.BaudRate = *baudFlag
	}
	table, err := cfg.Table()
	if err != nil {
		logger.Error("threshold table", slog.Any("reason", err))
		os.Exit(1)
	}

	if *simFlag {
		simulate(os.Stdout, cfg, table, keypad.Sample(*stepFlag), *iterationsFlag, time.Sleep)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := follow(ctx, cfg, table, *iterationsFlag, logger); err != nil {
		logger.Error("monitor", slog.Any("reason", err))
		os.Exit(1)
	}
}

func listPorts() error {
	ports, err := serial.GetPortsList()
	if err != nil {
		return fmt.Errorf("failed to list serial ports: %w", err)
	}
	for _, p := range ports {
		fmt.Println(p)
	}
	return nil
}

// follow opens the configured port and reports readings until ctx is done,
// the port closes or iterations readings have been seen.
func follow(ctx context.Context, cfg *config.Config, table keypad.Table, iterations int, logger *slog.Logger) error {
	port, err := serial.Open(cfg.Serial.Port, &serial.Mode{BaudRate: cfg.Serial.BaudRate})
	if err != nil {
		return fmt.Errorf("failed to open serial port %s: %w", cfg.Serial.Port, err)
	}
	logger.Info("serial:open", slog.String("port", cfg.Serial.Port), slog.Int("baud", cfg.Serial.BaudRate))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		<-ctx.Done()
		port.Close()
	}()

	m := &monitor.Monitor{Table: table, Vref: cfg.ADC.Vref, Logger: logger}
	seen := 0
	err = m.Run(ctx, port, func(ev monitor.Event) {
		r := ev.Reading
		mark := " "
		if !ev.Agrees() {
			mark = "!"
		}
		if ev.Changed || !ev.Agrees() {
			fmt.Printf("%s %s raw=%4d %.3fV\n", mark, r.Button.Label(), r.Raw, r.Voltage)
		}
		seen++
		if iterations > 0 && seen >= iterations {
			cancel()
		}
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// simulate runs the firmware loop against a sweeping fake ADC and prints
// the debug lines and the virtual LCD after every step to out.
// iterations <= 0 sweeps the ADC range once.
func simulate(out io.Writer, cfg *config.Config, table keypad.Table, step keypad.Sample, iterations int, sleep func(time.Duration)) *display.Grid {
	layout := cfg.Layout().WithDefaults()
	grid := display.NewGrid(layout.Columns, layout.Rows)
	p := display.NewPresenter(grid, out, layout)
	p.Splash(cfg.SplashMessage())
	fmt.Fprint(out, grid)

	r := &loop.Runner{
		Sampler:   &sampler.Sweep{Step: step},
		Table:     table,
		Vref:      cfg.ADC.Vref,
		Presenter: p,
		Interval:  cfg.Interval,
		Sleep:     sleep,
		Activity:  func() { fmt.Fprint(out, grid) },
	}
	if iterations <= 0 {
		iterations = int(keypad.MaxSample)/max(int(step), 1) + 1
	}
	r.Run(iterations)
	return grid
}
