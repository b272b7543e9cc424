package dashboard

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/footystats/afl-dashboard/api"
	"github.com/footystats/afl-dashboard/dataset"
	"github.com/footystats/afl-dashboard/metrics"
	"github.com/golang/glog"
	"github.com/peterbourgon/ff"
)

// Build flags to be overwritten at build-time and passed to Run()
type BuildFlags struct {
	Version string
}

type cliFlags struct {
	serverOpts  api.ServerOptions
	datasetOpts dataset.Options

	allowedOriginsFlag string
	loadTimeout        time.Duration
}

func parseFlags(args []string) (cliFlags, error) {
	cli := cliFlags{datasetOpts: dataset.DefaultOptions()}
	fs := flag.NewFlagSet("dashboard", flag.ContinueOnError)

	// Server options
	fs.StringVar(&cli.serverOpts.Host, "host", "localhost", "Hostname to bind to")
	fs.UintVar(&cli.serverOpts.Port, "port", 8080, "Port to listen on")
	fs.DurationVar(&cli.serverOpts.ShutdownGracePeriod, "shutdown-grace-period", 15*time.Second, "Grace period to wait for server shutdown before using the force")
	// API Handler
	fs.StringVar(&cli.serverOpts.APIRoot, "api-root", "/api", "Root path where to bind the JSON and chart API to")
	fs.BoolVar(&cli.serverOpts.Prometheus, "prometheus", false, "Whether to enable Prometheus metrics registry and expose /metrics endpoint")
	fs.StringVar(&cli.allowedOriginsFlag, "allowed-origins", "*", "Comma-separated list of origins allowed to call the API from a browser")
	fs.DurationVar(&cli.serverOpts.CacheTTL, "cache-ttl", 5*time.Minute, "How long to cache computed API responses in memory. 0 disables the cache")
	fs.IntVar(&cli.serverOpts.CacheCapacity, "cache-capacity", 2000, "Maximum number of API responses to keep in the cache")

	// Dataset options
	fs.StringVar(&cli.datasetOpts.Path, "data-file", cli.datasetOpts.Path, "Workbook (.xlsx, .xlsm) or .csv file with one row per player game")
	fs.StringVar(&cli.datasetOpts.Sheet, "data-sheet", cli.datasetOpts.Sheet, "Name of the workbook sheet to read")
	fs.IntVar(&cli.datasetOpts.SkipRows, "data-skip-rows", cli.datasetOpts.SkipRows, "Number of rows to skip before the header row")
	fs.StringVar(&cli.datasetOpts.Columns, "data-columns", cli.datasetOpts.Columns, `Range of spreadsheet columns to load, e.g. "A:N". Empty loads all`)
	fs.IntVar(&cli.datasetOpts.MaxRows, "data-max-rows", cli.datasetOpts.MaxRows, "Maximum number of data rows to load. 0 loads all")
	fs.StringVar(&cli.datasetOpts.SQL.Driver, "sql-driver", cli.datasetOpts.SQL.Driver, "Database driver for a SQL dataset source (sqlite or postgres)")
	fs.StringVar(&cli.datasetOpts.SQL.DSN, "sql-dsn", "", "Connection string of a SQL dataset source. Takes precedence over -data-file when set")
	fs.StringVar(&cli.datasetOpts.SQL.Table, "sql-table", cli.datasetOpts.SQL.Table, "Table holding the player stats in the SQL source")
	fs.StringVar(&cli.datasetOpts.SQL.OrderBy, "sql-order-by", "", "ORDER BY clause giving the stored order of the SQL source rows")
	fs.DurationVar(&cli.loadTimeout, "load-timeout", time.Minute, "Timeout for loading the dataset on startup")

	flag.Set("logtostderr", "true")
	glogVFlag := flag.Lookup("v")
	verbosity := fs.Int("v", 0, "Log verbosity {0-10}")

	fs.String("config", "", "config file (optional)")
	err := ff.Parse(fs, args,
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
		ff.WithEnvVarPrefix("AFL"),
		ff.WithEnvVarIgnoreCommas(true),
	)
	if err != nil {
		return cliFlags{}, err
	}
	flag.CommandLine.Parse(nil)
	if glogVFlag != nil {
		glogVFlag.Value.Set(strconv.Itoa(*verbosity))
	}

	if cli.allowedOriginsFlag != "" {
		cli.serverOpts.AllowedOrigins = strings.Split(cli.allowedOriginsFlag, ",")
	}
	return cli, nil
}

func Run(build BuildFlags) {
	cli, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	} else if err != nil {
		glog.Fatalf("Error parsing flags. err=%q", err)
	}
	cli.serverOpts.ServerName = "afl-dashboard/" + build.Version
	cli.serverOpts.Version = build.Version

	glog.Infof("AFL dashboard starting up... version=%q", build.Version)
	ctx := contextUntilSignal(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	loadCtx, cancel := context.WithTimeout(ctx, cli.loadTimeout)
	ds, err := dataset.Open(loadCtx, cli.datasetOpts)
	cancel()
	if err != nil {
		glog.Fatalf("Error loading dataset. err=%q", err)
	}
	if cli.serverOpts.Prometheus {
		metrics.ObserveDataset(ds.Len(), len(ds.Players()))
	}

	glog.Info("Starting server...")
	err = api.ListenAndServe(ctx, cli.serverOpts, ds)
	if err != nil {
		glog.Fatalf("Error starting api server. err=%q", err)
	}
}

func contextUntilSignal(parent context.Context, sigs ...os.Signal) context.Context {
	ctx, cancel := context.WithCancel(parent)
	go func() {
		defer cancel()
		waitSignal(sigs...)
	}()
	return ctx
}

func waitSignal(sigs ...os.Signal) {
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, sigs...)
	defer signal.Stop(sigc)

	signal := <-sigc
	switch signal {
	case syscall.SIGINT:
		glog.Infof("Got Ctrl-C, shutting down")
	case syscall.SIGTERM:
		glog.Infof("Got SIGTERM, shutting down")
	default:
		glog.Infof("Got signal %d, shutting down", signal)
	}
}
