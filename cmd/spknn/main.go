// Command spknn prints the k points of a CSV file nearest to a query point.
//
//	spknn -points points.csv -query 1.5,2 -k 3 -level info
//
// Diagnostics go through splogger: to the -log file or to standard output.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/GaluL/splogger"
	"github.com/GaluL/splogger/sppoint"
)

type options struct {
	points  string
	query   string
	k       int
	logPath string
	level   string
	color   bool
}

func main() {
	var opts options
	flag.StringVar(&opts.points, "points", "", "CSV file with `index,c1,c2,...` rows")
	flag.StringVar(&opts.query, "query", "", "query point `c1,c2,...`")
	flag.IntVar(&opts.k, "k", 1, "number of nearest points to print")
	flag.StringVar(&opts.logPath, "log", "", "log file (standard output if empty)")
	flag.StringVar(&opts.level, "level", "", "log level: error, warning, info or debug (default $"+splogger.LEVEL_ENV_VAR+" or error)")
	flag.BoolVar(&opts.color, "color", false, "colored log titles on a terminal")
	flag.Parse()
	os.Exit(run(opts, os.Stdout, os.Stderr))
}

// resolveLevel picks the level from the flag, then from the environment,
// then the default.
func resolveLevel(flagValue string) (splogger.LogLevel, error) {
	if flagValue == "" {
		flagValue = os.Getenv(splogger.LEVEL_ENV_VAR)
	}
	if flagValue == "" {
		return splogger.DEFAULT_LOG_LEVEL, nil
	}
	return splogger.ParseLevel(flagValue)
}

// logFailure keeps the first error returned by the logger; run reports it
// on exit.
type logFailure struct {
	err error
}

func (f *logFailure) check(err error) {
	if f.err == nil && err != nil {
		f.err = err
	}
}

func run(opts options, out, errOut io.Writer) int {
	level, err := resolveLevel(opts.level)
	if err != nil {
		fmt.Fprintln(errOut, "spknn:", err)
		return 2
	}
	var lopts []splogger.Option
	if opts.color {
		lopts = append(lopts, splogger.WithColor())
	}
	if err := splogger.Create(opts.logPath, level, lopts...); err != nil {
		fmt.Fprintln(errOut, "spknn:", err)
		return 1
	}
	defer splogger.Destroy()
	logger := splogger.Default()

	var lf logFailure
	defer func() {
		if lf.err != nil {
			fmt.Fprintln(errOut, "spknn: logging failed:", lf.err)
		}
	}()
	if err := search(opts, out, logger, &lf); err != nil {
		lf.check(logger.Error(err.Error()))
		return 1
	}
	return 0
}

func search(opts options, out io.Writer, logger *splogger.Logger, lf *logFailure) error {
	query, err := parseQuery(opts.query)
	if err != nil {
		return err
	}
	f, err := os.Open(opts.points)
	if err != nil {
		return err
	}
	defer f.Close()
	points, err := readPoints(f, query.Dim(), logger, lf)
	if err != nil {
		return err
	}
	lf.check(logger.Infof("%d points loaded from %s", len(points), opts.points))
	nearest, err := sppoint.KNearest(query, points, opts.k)
	if err != nil {
		return err
	}
	for _, p := range nearest {
		d, err := sppoint.L2SquaredDistance(query, p)
		if err != nil {
			return err
		}
		lf.check(logger.Debugf("point %d at squared distance %g", p.Index(), d))
		fmt.Fprintf(out, "%d\t%g\n", p.Index(), d)
	}
	lf.check(logger.Infof("%d nearest points printed", len(nearest)))
	return nil
}
