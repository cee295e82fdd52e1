package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"baby-journal/internal/adapters/storage"
	"baby-journal/internal/codec/tabular"
	"baby-journal/internal/domain/events"
	"baby-journal/internal/platform/config"
	"baby-journal/internal/platform/logger"
	"baby-journal/internal/remote"
	"baby-journal/internal/sqldump"
)

const usage = `
usage: babylog [options] <command> [file]

Commands:
	list			print the latest events
	import-csv <file>	merge a spreadsheet export into the journal
	import-json <file>	merge a JSON backup into the journal
	export-json [file]	write a JSON backup (stdout if no file)
	export-csv [file]	write the spreadsheet format
	dump-sql [file]		write a single INSERT for the baby_events table
	push			send every event to REMOTE_URL
	pull			merge the rows stored at REMOTE_URL
	check			test the connection to REMOTE_URL

Options:
`

var errUsage = errors.New("usage")

func main() {
	err := run(context.Background(), os.Args[1:], os.Getenv, os.Stdout)
	switch {
	case errors.Is(err, errUsage):
		os.Exit(2)
	case err != nil:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run ejecuta un comando completo. Todo lo abierto se cierra antes de volver,
// también cuando falla.
func run(ctx context.Context, args []string, getenv func(string) string, stdout io.Writer) error {
	fs := flag.NewFlagSet("babylog", flag.ContinueOnError)
	storeFlag := fs.String("store", "", "store `dsn` (overrides STORE_DSN; empty = sqlite:baby_journal.db)")
	tableFlag := fs.String("table", sqldump.DefaultTable, "target `table` for dump-sql")
	limitFlag := fs.Int("n", 20, "number of events shown by list (0 = all)")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "%s", usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errUsage
	}

	cfg, err := config.LoadFrom(getenv)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	log := logger.FromStrings(cfg.LogLevel, cfg.LogFormat, "babylog")

	dsn := cfg.StoreDSN
	if *storeFlag != "" {
		dsn = *storeFlag
	}
	if dsn == "" {
		dsn = "sqlite:baby_journal.db"
	}

	store, closer, err := storage.Open(ctx, dsn)
	if err != nil {
		return fmt.Errorf("opening store %s: %w", dsn, err)
	}
	defer closer.Close()

	svc := events.NewService(events.NewSlotRepository(store, cfg.EventsSlot), log)
	bridge := remote.NewBridge(remote.Config{
		Endpoint: cfg.RemoteURL,
		Token:    cfg.RemoteToken,
		Timeout:  cfg.RemoteTimeout,
	}, svc, log)

	// arg devuelve el archivo del comando ("" si no vino).
	arg := func() string { return fs.Arg(1) }

	switch cmd := fs.Arg(0); cmd {
	default:
		return fmt.Errorf("unknown command %q", cmd)
	case "list":
		all, err := svc.GetAll(ctx)
		if err != nil {
			return fmt.Errorf("loading events: %w", err)
		}
		for i, e := range all {
			if *limitFlag > 0 && i == *limitFlag {
				break
			}
			fmt.Fprintf(stdout, "%s  %-9s  %s  %s\n", e.Timestamp.In(cfg.ImportLocation).Format("2006-01-02 15:04"), e.Kind(), e.ID, e.Note)
		}
	case "import-csv":
		parsed, err := readArg(arg(), func(r io.Reader) ([]events.Event, error) {
			return tabular.NewImporter(cfg.ImportLocation, log).ParseReader(r)
		})
		if err != nil {
			return err
		}
		res, err := svc.Import(ctx, parsed)
		if err != nil {
			return fmt.Errorf("importing: %w", err)
		}
		fmt.Fprintf(stdout, "%s (parsed %d, duplicates %d, rejected %d)\n", res.Message, len(parsed), res.Duplicates, res.Rejected)
	case "import-json":
		candidates, err := readArg(arg(), events.DecodeBackup)
		if err != nil {
			return err
		}
		res, err := svc.Import(ctx, candidates)
		if err != nil {
			return fmt.Errorf("importing: %w", err)
		}
		fmt.Fprintln(stdout, res.Message)
	case "export-json":
		return writeOut(arg(), stdout, func(w io.Writer) error { return svc.ExportJSON(ctx, w) })
	case "export-csv":
		all, err := svc.GetAll(ctx)
		if err != nil {
			return fmt.Errorf("loading events: %w", err)
		}
		return writeOut(arg(), stdout, func(w io.Writer) error { return tabular.Export(w, all) })
	case "dump-sql":
		all, err := svc.GetAll(ctx)
		if err != nil {
			return fmt.Errorf("loading events: %w", err)
		}
		return writeOut(arg(), stdout, func(w io.Writer) error { return sqldump.NewRenderer(*tableFlag).WriteTo(w, all) })
	case "push":
		res, err := bridge.Push(ctx)
		if err != nil {
			return fmt.Errorf("push: %s", explain(err))
		}
		fmt.Fprintln(stdout, res.Message)
	case "pull":
		start := time.Now()
		res, err := bridge.Pull(ctx)
		if err != nil {
			return fmt.Errorf("pull: %s", explain(err))
		}
		fmt.Fprintf(stdout, "%s (fetched %d, skipped %d) in %v\n", res.Message, res.Fetched, res.Skipped, time.Since(start).Truncate(100*time.Millisecond))
	case "check":
		res, err := bridge.Check(ctx)
		if err != nil {
			return fmt.Errorf("check: %s", explain(err))
		}
		fmt.Fprintf(stdout, "%s reachable (status %d)\n", res.Endpoint, res.StatusCode)
	}
	return nil
}

// explain agrega una pista según el tipo de fallo.
func explain(err error) string {
	if remote.IsNetwork(err) {
		return err.Error() + " (check the URL, the network or a proxy/CORS in between)"
	}
	return err.Error()
}

func readArg(path string, read func(io.Reader) ([]events.Event, error)) ([]events.Event, error) {
	if path == "" {
		return nil, errors.New("missing input file")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	out, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return out, nil
}

// writeOut escribe en path o, si está vacío, en stdout.
func writeOut(path string, stdout io.Writer, write func(io.Writer) error) error {
	if path == "" {
		return write(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
