// godxf is a small inspection and rewrite tool for DXF entity data.
//
//	godxf dump [flags] FILE       decode the ENTITIES section to JSON
//	godxf rewrite [flags] IN OUT  decode and re-encode the ENTITIES section
//	godxf schema TYPE             print the schema table for an entity type
//
// Input files ending in .gz are decompressed transparently.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	gojson "github.com/goccy/go-json"
	"github.com/klauspost/compress/gzip"
	"github.com/spf13/pflag"

	godxf "github.com/reoring/godxf"
	_ "github.com/reoring/godxf/entities"
	"github.com/reoring/godxf/schemadef"
	"github.com/reoring/godxf/schemadoc"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	var err error
	switch os.Args[1] {
	case "dump":
		err = dumpCmd(os.Args[2:])
	case "rewrite":
		err = rewriteCmd(os.Args[2:])
	case "schema":
		err = schemaCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `godxf CLI

Usage:
  godxf dump [--version R2000] [--schemadef defs.yaml] [--quiet] FILE
  godxf rewrite [--target R2000] [--schemadef defs.yaml] IN OUT
  godxf schema TYPE`)
}

func commonFlags(fs *pflag.FlagSet) (version *string, defs *string, quiet *bool) {
	version = fs.String("version", "", "format version override (R12, R2000, ... or an AC10xx token)")
	defs = fs.String("schemadef", "", "YAML file with additional entity schemas")
	quiet = fs.Bool("quiet", false, "suppress per-entity warnings")
	return
}

func dumpCmd(args []string) error {
	fs := pflag.NewFlagSet("dump", pflag.ExitOnError)
	version, defs, quiet := commonFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		usage()
		return fmt.Errorf("dump: one input file required")
	}
	log := newLogger(*quiet)
	if err := loadDefs(*defs); err != nil {
		return err
	}

	in, closeIn, err := openInput(fs.Arg(0))
	if err != nil {
		return err
	}
	defer closeIn()

	doc, err := walk(godxf.NewReader(in), *version, log)
	if err != nil {
		return err
	}

	out := make([]map[string]any, 0, doc.Len())
	for rec := doc.Front(); rec != nil; rec = rec.Next() {
		out = append(out, map[string]any{
			"type":   rec.Type(),
			"fields": rec.Fields(),
		})
	}
	b, err := gojson.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(append(b, '\n'))
	return err
}

func rewriteCmd(args []string) error {
	fs := pflag.NewFlagSet("rewrite", pflag.ExitOnError)
	version, defs, quiet := commonFlags(fs)
	target := fs.String("target", "", "output format version (defaults to the input version)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		usage()
		return fmt.Errorf("rewrite: input and output files required")
	}
	log := newLogger(*quiet)
	if err := loadDefs(*defs); err != nil {
		return err
	}

	in, closeIn, err := openInput(fs.Arg(0))
	if err != nil {
		return err
	}
	defer closeIn()

	doc, err := walk(godxf.NewReader(in), *version, log)
	if err != nil {
		return err
	}

	tv := doc.version
	if *target != "" {
		v, err := resolveVersion(*target)
		if err != nil {
			return err
		}
		tv = v
	}

	f, err := os.Create(fs.Arg(1))
	if err != nil {
		return err
	}
	defer f.Close()
	w := godxf.NewWriter(f)

	if err := writeSectionBegin(w, tv); err != nil {
		return err
	}
	ctx := context.Background()
	for rec := doc.Front(); rec != nil; rec = rec.Next() {
		if rec.Type() == "" {
			continue
		}
		sch, _, ok := godxf.Lookup(rec.Type())
		if !ok {
			log.Warn("no schema for entity; skipped", "type", rec.Type())
			continue
		}
		if err := godxf.Encode(ctx, rec, sch, w, tv); err != nil {
			return err
		}
	}
	if err := writeSectionEnd(w); err != nil {
		return err
	}
	return w.Flush()
}

func schemaCmd(args []string) error {
	if len(args) != 1 {
		usage()
		return fmt.Errorf("schema: one entity type required")
	}
	typ := strings.ToUpper(args[0])
	sch, _, ok := godxf.Lookup(typ)
	if !ok {
		return fmt.Errorf("schema: unknown entity type %q", typ)
	}
	b, err := schemadoc.Bytes(sch)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(append(b, '\n'))
	return err
}

func newLogger(quiet bool) *slog.Logger {
	level := slog.LevelInfo
	if quiet {
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func loadDefs(path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return schemadef.RegisterAll(godxf.DefaultRegistry(), data)
}

func openInput(path string) (io.Reader, func(), error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, nil, err
		}
		return zr, func() { zr.Close(); f.Close() }, nil
	}
	return f, func() { f.Close() }, nil
}

func resolveVersion(s string) (godxf.Version, error) {
	if v, ok := godxf.ParseVersion(s); ok {
		return v, nil
	}
	for v := godxf.R10; v <= godxf.R2018; v++ {
		if strings.EqualFold(v.String(), s) {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown format version %q", s)
}
