// Command bcard builds business cards from the command line.
//
//	bcard [flags] FIRST LAST PHONE
//	bcard [flags] -batch agents.csv
//	bcard [flags] -measure "801.836.6758" -field phone
package main

import (
    "context"
    "errors"
    "flag"
    "fmt"
    "io"
    "os"
    "os/signal"
    "strings"

    "github.com/youruser/bcard/internal/batch"
    "github.com/youruser/bcard/internal/card"
    imagepkg "github.com/youruser/bcard/internal/image"
    "go.uber.org/zap"
)

type config struct {
    root      string
    template  string
    headshot  string
    batchCSV  string
    only      string
    workers   int
    textsOnly bool
    measure   string
    field     string
    manifest  string
    debug     bool
}

func main() {
    var cfg config
    flag.StringVar(&cfg.root, "root", card.RootFromEnv(), "project root holding static/assets")
    flag.StringVar(&cfg.template, "template", os.Getenv("BCARD_TEMPLATE"), "JSON template overrides")
    flag.StringVar(&cfg.headshot, "headshot", "", "headshot path or URL")
    flag.StringVar(&cfg.batchCSV, "batch", "", "CSV of agents (first,last,phone[,headshot])")
    flag.StringVar(&cfg.only, "only", "", "comma separated slugs to build from -batch")
    flag.IntVar(&cfg.workers, "workers", 0, "parallel builds for -batch (default GOMAXPROCS)")
    flag.BoolVar(&cfg.textsOnly, "texts-only", false, "only render the text assets")
    flag.StringVar(&cfg.measure, "measure", "", "print the glyph layout of this text and exit")
    flag.StringVar(&cfg.field, "field", "name", "field used by -measure: name, phone or email")
    flag.StringVar(&cfg.manifest, "manifest", "", "write the -batch manifest to this file")
    flag.BoolVar(&cfg.debug, "debug", false, "debug logging")
    flag.Parse()

    log, err := newLogger(cfg.debug)
    if err != nil {
        fmt.Fprintln(os.Stderr, err)
        os.Exit(1)
    }
    defer log.Sync()

    ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
    defer stop()

    if err := run(ctx, cfg, flag.Args(), os.Stdout, log); err != nil {
        log.Error("bcard failed", zap.Error(err))
        os.Exit(1)
    }
}

func newLogger(debug bool) (*zap.Logger, error) {
    if debug {
        return zap.NewDevelopment()
    }
    return zap.NewProduction()
}

// run wires the template, builder and the selected mode.
func run(ctx context.Context, cfg config, args []string, stdout io.Writer, log *zap.Logger) error {
    tpl := card.DefaultTemplate(cfg.root)
    if cfg.template != "" {
        var err error
        if tpl, err = card.LoadTemplate(cfg.template, cfg.root); err != nil {
            return err
        }
    }
    b, err := imagepkg.NewBuilder(tpl, card.DirsFromEnv(cfg.root), imagepkg.WithLogger(log))
    if err != nil {
        return err
    }

    switch {
    case cfg.measure != "":
        return measure(b.Composer(), cfg.field, cfg.measure, stdout)
    case cfg.batchCSV != "":
        return runBatch(ctx, b, cfg, stdout, log)
    }

    if len(args) != 3 {
        return errors.New("usage: bcard [flags] FIRST LAST PHONE")
    }
    a := card.Agent{First: args[0], Last: args[1], Phone: args[2], Headshot: cfg.headshot}
    if cfg.textsOnly {
        if err := b.Dirs().Ensure(); err != nil {
            return err
        }
        assets, err := b.Composer().GenerateTextAssets(a, b.Dirs().Texts)
        if err != nil {
            return err
        }
        fmt.Fprintln(stdout, assets.Name)
        fmt.Fprintln(stdout, assets.Phone)
        fmt.Fprintln(stdout, assets.Email)
        return nil
    }
    out, err := b.Build(ctx, a)
    if err != nil {
        return err
    }
    fmt.Fprintln(stdout, out)
    return nil
}

func runBatch(ctx context.Context, b *imagepkg.Builder, cfg config, stdout io.Writer, log *zap.Logger) error {
    agents, err := card.LoadAgents(cfg.batchCSV)
    if err != nil {
        return err
    }
    if cfg.only != "" {
        agents = card.Filter(agents, card.FilterOptions{Slugs: strings.Split(cfg.only, ",")})
    }
    results := batch.Run(ctx, b, agents, batch.Options{Workers: cfg.workers, Log: log})
    manifest := batch.ExportManifest(results)
    if cfg.manifest != "" {
        if err := os.WriteFile(cfg.manifest, []byte(manifest+"\n"), 0o644); err != nil {
            return err
        }
    }
    fmt.Fprintln(stdout, manifest)
    if n := batch.Failed(results); n > 0 {
        return fmt.Errorf("%d of %d cards failed", n, len(results))
    }
    return nil
}

func measure(c *imagepkg.Composer, fieldName, text string, stdout io.Writer) error {
    tpl := c.Template()
    fields := map[string]card.Field{"name": tpl.Name, "phone": tpl.Phone, "email": tpl.Email}
    field, ok := fields[fieldName]
    if !ok {
        return fmt.Errorf("unknown field %q", fieldName)
    }
    l, err := c.Measure(field, text, field.AssetSize)
    if err != nil {
        return err
    }
    fmt.Fprintf(stdout, "%dx%d (ink %d..%d)\n", l.Width, l.Height, l.MinY, l.MaxY)
    for _, g := range l.Glyphs {
        fmt.Fprintf(stdout, "%q\tx=%d y=%d box=%+v\n", g.Rune, g.X, g.Y, g.Box)
    }
    return nil
}
