// This file is part of aluoracle.
//
// aluoracle is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// aluoracle is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with aluoracle.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/retrocheck/aluoracle/curated"
	"github.com/retrocheck/aluoracle/logger"
	"github.com/retrocheck/aluoracle/modalflag"
	"github.com/retrocheck/aluoracle/performance"
	"github.com/retrocheck/aluoracle/regression"
	"github.com/retrocheck/aluoracle/statsview"
	"github.com/retrocheck/aluoracle/sweep"
	"github.com/retrocheck/aluoracle/translate"
	"github.com/retrocheck/aluoracle/version"
)

// exit values
const (
	exitArgs = 10
	exitMode = 20
)

// VerifyFailed is the pattern for the error returned by VERIFY mode when one
// or more sweeps do not match the golden table.
const VerifyFailed = "verify: %d sweeps do not match golden digests (%s)"

// StatsUnavailable is the pattern for the error returned when the stats server
// is requested in a build that does not include it.
const StatsUnavailable = "statsview: stats server not available in this build"

func main() {
	// ctrl-c cancels the context. long running modes check the context and
	// finish early
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx, os.Stdout, os.Stderr, os.Stdin, os.Args[1:])
	stop()
	os.Exit(exitVal)
}

// number of log entries shown when a mode fails
const logTail = 10

// logOutput is where the log is echoed and where the tail of the log is
// written when a mode fails.
type logOutput struct {
	w      io.Writer
	echoed bool
}

// echo the log so that it does not interfere with report output
func (lo *logOutput) echo(echo bool) {
	if echo {
		logger.SetEcho(lo.w)
		lo.echoed = true
	}
}

// launch the mode selected by the arguments. returns the value to use with
// os.Exit()
func launch(ctx context.Context, output io.Writer, errOutput io.Writer, input io.Reader, args []string) int {
	logger.Clear()
	logger.SetEcho(nil)
	lo := &logOutput{w: errOutput}

	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("SWEEP", "CALC", "VERIFY", "REGRESS", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitArgs
	}

	switch md.Mode() {
	case "SWEEP":
		err = sweepMode(ctx, md, lo)

	case "CALC":
		err = calc(md)

	case "VERIFY":
		err = verify(ctx, md, lo)

	case "REGRESS":
		err = regress(ctx, md, lo, input)

	case "PERFORMANCE":
		err = perform(ctx, md, lo)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		if !lo.echoed {
			logger.Tail(errOutput, logTail)
		}
		return exitMode
	}

	return 0
}

// add the statsview flag to the mode. the address is only shown if the stats
// server is available in this build
func addStatsFlag(md *modalflag.Modes) *bool {
	if statsview.Available() {
		return md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}
	return md.AddBool("statsview", false, "run stats server (not available in this build)")
}

// launch the stats server if it has been requested
func launchStats(stats bool, lo *logOutput) (func(), error) {
	if !stats {
		return func() {}, nil
	}
	if !statsview.Available() {
		return nil, curated.Errorf(StatsUnavailable)
	}
	return statsview.Launch(lo.w), nil
}

func sweepMode(ctx context.Context, md *modalflag.Modes, lo *logOutput) (rerr error) {
	md.NewMode()

	filter := md.AddString("filter", "", "only output lines matching the starlark `expression` (names: a, operand, result, n, v, z, c)")
	out := md.AddString("out", "", "write report to `file` rather than stdout")
	workers := md.AddInt("workers", 0, "number of sweeps rendered concurrently (0 for number of CPUs)")
	noheader := md.AddBool("noheader", false, "omit the report header")
	log := md.AddBool("log", false, "echo log to stderr")
	stats := addStatsFlag(md)

	md.AdditionalHelp(fmt.Sprintf("sweeps are named op,mode,carry. eg. %s\nwith no sweeps listed, all sweeps are output", sweep.All()[2]))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	lo.echo(*log)

	stop, err := launchStats(*stats, lo)
	if err != nil {
		return err
	}
	defer stop()

	sweeps, err := sweep.ParseSweeps(md.RemainingArgs())
	if err != nil {
		return err
	}

	opts := sweep.Options{
		Workers:  *workers,
		NoHeader: *noheader,
	}

	if *filter != "" {
		opts.Filter, err = sweep.NewFilter(*filter)
		if err != nil {
			return err
		}
	}

	output := md.Output
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return curated.Errorf("sweep: %v", err)
		}
		defer func() {
			if err := f.Close(); err != nil && rerr == nil {
				rerr = curated.Errorf("sweep: %v", err)
			}
		}()
		output = f
	}

	return sweep.Report(ctx, output, sweeps, opts)
}

func verify(ctx context.Context, md *modalflag.Modes, lo *logOutput) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo log to stderr")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	lo.echo(*log)

	sweeps, err := sweep.ParseSweeps(md.RemainingArgs())
	if err != nil {
		return err
	}

	mismatches, err := sweep.Verify(ctx, sweeps)
	if err != nil {
		return err
	}

	failed := make(map[sweep.Sweep]sweep.Mismatch, len(mismatches))
	for _, m := range mismatches {
		failed[m.Sweep] = m
	}

	for _, s := range sweeps {
		if m, ok := failed[s]; ok {
			fmt.Fprintf(md.Output, "fail: %s\n  golden: %s\n current: %s\n", s, m.Want, m.Got)
		} else {
			fmt.Fprintf(md.Output, "pass: %s\n", s)
		}
	}

	fmt.Fprintln(md.Output, translate.From("%d sweeps (%d vectors) checked against %s",
		len(sweeps), len(sweeps)*0x10000, sweep.GoldenVersion))

	if len(mismatches) > 0 {
		return curated.Errorf(VerifyFailed, len(mismatches), sweep.GoldenVersion)
	}

	return nil
}

type yesReader struct{}

func (*yesReader) Read(p []byte) (n int, err error) {
	if len(p) < 2 {
		return 0, io.ErrShortBuffer
	}
	p[0] = 'y'
	p[1] = '\n'
	return 2, nil
}

// the regression database is in the resources directory unless a path has
// been specified
func resolveDB(db string) (string, error) {
	if db != "" {
		return db, nil
	}
	return regression.DefaultDBPath()
}

func regress(ctx context.Context, md *modalflag.Modes, lo *logOutput, input io.Reader) error {
	md.NewMode()
	md.AddSubModes("RUN", "LIST", "ADD", "DELETE")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch md.Mode() {
	case "RUN":
		md.NewMode()

		db := md.AddString("db", "", "regression database `file` (default in resources directory)")
		verbose := md.AddBool("verbose", false, "output recorded and current digests of failures")
		fails := md.AddBool("fails", false, "only run the tests that failed on the previous run")
		log := md.AddBool("log", false, "echo log to stderr")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		lo.echo(*log)

		dbPath, err := resolveDB(*db)
		if err != nil {
			return err
		}

		return regression.RegressRun(ctx, md.Output, dbPath, regression.RunOptions{
			Keys:    md.RemainingArgs(),
			Fails:   *fails,
			Verbose: *verbose,
		})

	case "LIST":
		md.NewMode()

		db := md.AddString("db", "", "regression database `file` (default in resources directory)")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		if len(md.RemainingArgs()) > 0 {
			return fmt.Errorf("no additional arguments required for %s mode", md)
		}

		dbPath, err := resolveDB(*db)
		if err != nil {
			return err
		}

		return regression.RegressList(md.Output, dbPath)

	case "ADD":
		md.NewMode()

		db := md.AddString("db", "", "regression database `file` (default in resources directory)")
		notes := md.AddString("notes", "", "additional annotation for the database")
		log := md.AddBool("log", false, "echo log to stderr")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		lo.echo(*log)

		switch len(md.RemainingArgs()) {
		case 0:
			return fmt.Errorf("sweep required for %s mode", md)
		case 1:
		default:
			return fmt.Errorf("only one sweep can be added at a time")
		}

		s, err := sweep.ParseSweep(md.GetArg(0))
		if err != nil {
			return err
		}

		dbPath, err := resolveDB(*db)
		if err != nil {
			return err
		}

		return regression.RegressAdd(ctx, md.Output, dbPath, s, *notes)

	case "DELETE":
		md.NewMode()

		db := md.AddString("db", "", "regression database `file` (default in resources directory)")
		answerYes := md.AddBool("yes", false, "answer yes to confirmation")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			return fmt.Errorf("database key required for %s mode", md)
		case 1:
		default:
			return fmt.Errorf("only one entry can be deleted at a time")
		}

		dbPath, err := resolveDB(*db)
		if err != nil {
			return err
		}

		// use input for confirmation unless "yes" flag has been sent
		confirmation := input
		if *answerYes {
			confirmation = &yesReader{}
		}

		return regression.RegressDelete(md.Output, confirmation, dbPath, md.GetArg(0))
	}

	return nil
}

func perform(ctx context.Context, md *modalflag.Modes, lo *logOutput) error {
	md.NewMode()

	duration := md.AddDuration("duration", performance.DefaultDuration, "run duration")
	profile := md.AddList("profile", nil, "create profiling reports: cpu, mem, trace")
	workers := md.AddInt("workers", 0, "number of sweeps run concurrently (0 for number of CPUs)")
	rate := md.AddInt("rate", 0, "limit the number of sweeps started per second (0 for unlimited)")
	log := md.AddBool("log", false, "echo log to stderr")
	stats := addStatsFlag(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	lo.echo(*log)

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	stop, err := launchStats(*stats, lo)
	if err != nil {
		return err
	}
	defer stop()

	_, err = performance.Check(ctx, md.Output, performance.Options{
		Duration: *duration,
		Profile:  prf,
		Workers:  *workers,
		Rate:     *rate,
	})
	return err
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *revision {
		v, r, _ := version.Version()
		fmt.Fprintf(md.Output, "%s %s\n", v, r)
	} else {
		fmt.Fprintln(md.Output, version.String())
	}
	fmt.Fprintf(md.Output, "golden table: %s\n", sweep.GoldenVersion)

	return nil
}
