// Command gdrive-dl downloads a list of Google Drive links without the GUI.
//
// Links are read one per line from -links (or stdin), saved into -dest and
// reported on stdout as they finish. A YAML summary is written when -report
// is set. The exit code is 1 when any link failed.
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
	"syscall"

	"github.com/spf13/afero"

	"github.com/ytget/gdrive-downloader/internal/config"
	"github.com/ytget/gdrive-downloader/internal/download"
	"github.com/ytget/gdrive-downloader/internal/link"
	"github.com/ytget/gdrive-downloader/internal/logger"
	"github.com/ytget/gdrive-downloader/internal/model"
	"github.com/ytget/gdrive-downloader/internal/report"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

type options struct {
	links    string
	dest     string
	report   string
	logFile  string
	logLevel string
	envFile  string
	endpoint string
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(exitOK)
		}
		os.Exit(exitUsage)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code, err := run(ctx, opts, os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, "gdrive-dl:", err)
	}
	stop()
	os.Exit(code)
}

func parseFlags(args []string, output io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("gdrive-dl", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.links, "links", "-", "File with one link per line, - for stdin")
	fs.StringVar(&opts.dest, "dest", ".", "Destination folder")
	fs.StringVar(&opts.report, "report", "", "Write a YAML batch report to this path")
	fs.StringVar(&opts.logFile, "log", "", "Log file (overrides "+config.EnvLogFile+")")
	fs.StringVar(&opts.logLevel, "level", "", "Log level: debug, info, warn, error (overrides "+config.EnvLogLevel+")")
	fs.StringVar(&opts.envFile, "env", config.DefaultEnvFile, "Optional dotenv file")
	fs.StringVar(&opts.endpoint, "endpoint", "", "Download endpoint (overrides "+config.EnvEndpoint+")")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		err := fmt.Errorf("unexpected arguments: %v", fs.Args())
		fmt.Fprintln(output, err)
		fs.Usage()
		return options{}, err
	}
	return opts, nil
}

// run downloads the links described by opts and returns the exit code
func run(ctx context.Context, opts options, stdin io.Reader, stdout io.Writer) (int, error) {
	env, err := config.LoadEnv(opts.envFile)
	if err != nil {
		return exitUsage, err
	}
	if opts.logFile != "" {
		env.LogFile = opts.logFile
	}
	if opts.logLevel != "" {
		env.LogLevel = opts.logLevel
	}
	if opts.endpoint != "" {
		env.Endpoint = opts.endpoint
	}

	lg, closer, err := logger.OpenFile(env.LogFile, env.LogLevel, false)
	if err != nil {
		return exitUsage, err
	}
	defer closer.Close()

	links, err := readLinks(opts.links, stdin)
	if err != nil {
		return exitUsage, err
	}

	svc := download.NewService(afero.NewOsFs(), lg)
	svc.SetEndpoint(env.Endpoint)
	svc.SetUpdateCallback(func(ev model.StatusEvent) {
		printEvent(stdout, ev)
	})

	result := svc.DownloadAll(ctx, links, opts.dest)
	fmt.Fprintf(stdout, "%d of %d saved, %d failed\n", result.Succeeded(), result.Total(), result.Failed())

	if opts.report != "" {
		if err := report.Save(afero.NewOsFs(), opts.report, result); err != nil {
			lg.Error("Failed to save report", slog.String("path", opts.report), slog.Any("error", err))
			return exitFailed, err
		}
	}

	if result.Failed() > 0 {
		return exitFailed, nil
	}
	return exitOK, nil
}

func readLinks(path string, stdin io.Reader) ([]string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read links: %w", err)
	}
	return link.SplitLines(string(data)), nil
}

func printEvent(w io.Writer, ev model.StatusEvent) {
	switch ev.Status {
	case model.TaskStatusCompleted:
		fmt.Fprintf(w, "[%d] ok     %s -> %s\n", ev.Index+1, ev.URL, ev.OutputPath)
	case model.TaskStatusError:
		fmt.Fprintf(w, "[%d] failed %s: %s\n", ev.Index+1, ev.URL, ev.Reason)
	default:
		fmt.Fprintf(w, "[%d] %s %s\n", ev.Index+1, ev.Status, ev.URL)
	}
}
