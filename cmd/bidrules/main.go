package main

import (
	"context"
	"flag"
	"fmt"
	"os"
)

// Command-line flags
var (
	configPath  = flag.String("config", "", "Path to configuration file")
	mode        = flag.String("mode", "settings", "Operation mode: settings, quote, prepare, approve")
	fee         = flag.String("fee", "0", "Association fee for quote and prepare")
	requestPath = flag.String("request", "", "JSON candidate request for prepare")
	bidPath     = flag.String("bid", "", "JSON bid for approve, or the existing bid for prepare")
	metricsFile = flag.String("metrics-file", "", "Write metrics in text format to this file on exit")
)

func main() {
	flag.Parse()

	opts := options{
		ConfigPath:  *configPath,
		Mode:        *mode,
		Fee:         *fee,
		RequestPath: *requestPath,
		BidPath:     *bidPath,
		MetricsFile: *metricsFile,
	}

	if err := run(context.Background(), opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "bidrules: %v\n", err)
		os.Exit(1)
	}
}
