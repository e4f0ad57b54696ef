// Command sqlqgen generates sqlq table factories for model structs. It is
// run through go:generate, which sets GOFILE:
//
//	//go:generate go run ../cmd/sqlqgen --type User --out ../query
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/emanuelbalogun/LightBnB/internal/gen"
	"github.com/emanuelbalogun/LightBnB/internal/naming"
)

func main() {
	os.Exit(run(os.Args[1:], os.Getenv, os.Stdout, os.Stderr))
}

type options struct {
	typeName  string
	tableName string
	joins     []string
	out       string
}

func run(args []string, getenv func(string) string, stdout, stderr io.Writer) int {
	var opts options
	cmd := &cobra.Command{
		Use:           "sqlqgen",
		Short:         "Generate sqlq table factories",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := generate(getenv("GOFILE"), opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "sqlqgen: wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.typeName, "type", "", "struct type name (required)")
	cmd.Flags().StringVar(&opts.tableName, "table", "", "table name (inferred from --type if omitted)")
	cmd.Flags().StringArrayVar(&opts.joins, "join", nil, "named join, name:target_table.target_column=source_table.source_column (repeatable)")
	cmd.Flags().StringVar(&opts.out, "out", "", "output directory, relative to the source file (default: alongside it)")
	_ = cmd.MarkFlagRequired("type")

	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, "sqlqgen:", err)
		return 1
	}
	return 0
}

// generate renders opts.typeName from goFile and returns the written path.
func generate(goFile string, opts options) (string, error) {
	if goFile == "" {
		return "", errors.New("GOFILE environment variable is not set (run via go:generate)")
	}

	infos, err := gen.Parse(goFile)
	if err != nil {
		return "", fmt.Errorf("parse: %w", err)
	}
	info, err := gen.Find(infos, opts.typeName)
	if err != nil {
		return "", err
	}

	info.TableName = opts.tableName
	if info.TableName == "" {
		info.TableName = naming.TableName(opts.typeName)
	}
	for _, spec := range opts.joins {
		j, err := gen.ParseJoin(spec)
		if err != nil {
			return "", err
		}
		info.Joins = append(info.Joins, j)
	}

	srcDir := filepath.Dir(goFile)
	outDir := srcDir
	var opt gen.RenderOption
	if opts.out != "" {
		outDir = opts.out
		if !filepath.IsAbs(outDir) {
			outDir = filepath.Join(srcDir, outDir)
		}
		if opt.SourceImport, err = gen.ImportPath(srcDir); err != nil {
			return "", err
		}
		opt.DestPkg = filepath.Base(outDir)
	}

	src, err := gen.RenderFile([]*gen.StructInfo{info}, opt)
	if err != nil {
		return "", fmt.Errorf("render: %w", err)
	}

	outPath := filepath.Join(outDir, naming.CamelToSnake(opts.typeName)+"_gen.go")
	if err := os.WriteFile(outPath, src, 0o644); err != nil { //nolint:gosec // generated code should be world-readable
		return "", fmt.Errorf("write %s: %w", outPath, err)
	}
	return outPath, nil
}
