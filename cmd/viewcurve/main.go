// Command viewcurve analyzes the curves of drawing views.
//
// Usage:
//
//	viewcurve [flags] classify|extents|similar|svg <file>
//	viewcurve [flags] adjacent --id ID <file>
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"honnef.co/go/viewcurve"
	"honnef.co/go/viewcurve/internal/config"
	"honnef.co/go/viewcurve/internal/curvefile"
	"honnef.co/go/viewcurve/internal/report"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var commands = []string{"classify", "extents", "adjacent", "similar", "svg"}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func usage(fs *pflag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "usage: viewcurve [flags] <command> <file>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "commands:")
	fmt.Fprintln(w, "  classify   classify every curve")
	fmt.Fprintln(w, "  extents    print the outermost curves of each view")
	fmt.Fprintln(w, "  adjacent   print the curves connected to --id")
	fmt.Fprintln(w, "  similar    print pairs of similar curves")
	fmt.Fprintln(w, "  svg        render each view as SVG")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "flags:")
	fs.SetOutput(w)
	fs.PrintDefaults()
}

func newLogger(cfg config.LogConfig, w io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), errors.Wrap(err, "invalid log level")
	}
	if cfg.Pretty {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("viewcurve", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	config.RegisterFlags(fs)
	id := fs.String("id", "", "curve id for the adjacent command")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			usage(fs, stdout)
			return exitOK
		}
		fmt.Fprintln(stderr, "viewcurve:", err)
		usage(fs, stderr)
		return exitUsage
	}
	if fs.NArg() != 2 {
		usage(fs, stderr)
		return exitUsage
	}
	cmd, path := fs.Arg(0), fs.Arg(1)
	if !slices.Contains(commands, cmd) {
		fmt.Fprintf(stderr, "viewcurve: unknown command %q\n", cmd)
		usage(fs, stderr)
		return exitUsage
	}
	if cmd == "adjacent" && *id == "" {
		fmt.Fprintln(stderr, "viewcurve: adjacent needs --id")
		return exitUsage
	}

	cfg, err := config.Load(fs)
	if err != nil {
		fmt.Fprintln(stderr, "viewcurve:", err)
		return exitError
	}
	log, err := newLogger(cfg.Log, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "viewcurve:", err)
		return exitError
	}

	if err := execute(ctx, cmd, path, *id, cfg, log, stdout); err != nil {
		log.Error().Err(err).Str("command", cmd).Msg("failed")
		return exitError
	}
	return exitOK
}

func execute(ctx context.Context, cmd, path, id string, cfg *config.Config, log zerolog.Logger, w io.Writer) error {
	d, err := curvefile.Load(path)
	if err != nil {
		return err
	}
	log.Debug().Str("file", path).Int("views", len(d.Views)).Msg("loaded drawing")

	a := report.New(report.OptionsFromConfig(cfg), log)
	asJSON := cfg.Output.Format == "json"

	if cmd == "adjacent" {
		adj, err := a.Adjacent(d, id)
		if err != nil {
			return err
		}
		if asJSON {
			return report.WriteJSON(w, adj)
		}
		return report.WriteAdjacency(w, adj)
	}

	r, err := a.Analyze(ctx, d)
	if err != nil {
		return err
	}

	switch cmd {
	case "classify":
		if asJSON {
			return report.WriteJSON(w, r)
		}
		return report.WriteClassification(w, r)
	case "extents":
		if asJSON {
			ext := make(map[string]report.Extents, len(r.Views))
			for _, v := range r.Views {
				ext[v.ViewID] = v.Extents
			}
			return report.WriteJSON(w, ext)
		}
		return report.WriteExtents(w, r)
	case "similar":
		if asJSON {
			sim := make(map[string][]report.Pair, len(r.Views))
			for _, v := range r.Views {
				sim[v.ViewID] = v.Similar
			}
			return report.WriteJSON(w, sim)
		}
		return report.WriteSimilar(w, r)
	case "svg":
		opts := viewcurve.SVGOptions{MaxPrecision: cfg.Output.SVGPrecision}
		for i, v := range d.Views {
			if err := report.WriteSVG(w, v, report.Highlights(r.Views[i]), opts); err != nil {
				return err
			}
		}
		return nil
	default:
		panic(fmt.Sprintf("unhandled command %q", cmd))
	}
}
