package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/alnah/go-scholardraft"
	"github.com/alnah/go-scholardraft/internal/content"
	"github.com/alnah/go-scholardraft/internal/fileutil"
)

// exportFlags holds flags for the export command.
type exportFlags struct {
	input    inputFlags
	output   outputFlags
	render   renderFlags
	sections []string
	all      bool
}

func newExportCmd(a *app) *cobra.Command {
	var f exportFlags

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the draft or selected sections",
		Long: `Export assembles the content bundle into documents.

Without --section the full draft is exported. --section may be repeated
or comma separated (cover, chapter1..chapter5, references, appendix, full).
--all exports the full draft and every section as separate files.`,
		Example: `  scholardraft export --content draft.json
  scholardraft export -c draft.yaml --section chapter1,chapter2 --format pdf
  scholardraft export -c - --all --output out/ < draft.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runExport(cmd, &f)
		},
	}

	fs := cmd.Flags()
	f.input.register(fs, false)
	f.output.register(fs, true)
	f.render.register(fs)
	fs.StringSliceVarP(&f.sections, "section", "s", nil, "section(s) to export (default: full)")
	fs.BoolVarP(&f.all, "all", "a", false, "export the full draft and every section")
	return cmd
}

func (a *app) runExport(cmd *cobra.Command, f *exportFlags) error {
	sections, err := resolveSections(f.sections, f.all)
	if err != nil {
		return err
	}
	format, err := scholardraft.ParseFormat(stringFlag(cmd.Flags(), "format", f.output.format, a.cfg.Output.Format))
	if err != nil {
		return err
	}
	bundle, err := a.loadContent(f.input.content)
	if err != nil {
		return err
	}

	exp, err := a.newExporter(f.render.timeout, f.render.workers)
	if err != nil {
		return err
	}
	defer a.closeExporter(exp)

	files, err := exp.ExportSections(cmd.Context(), bundle.Content(), a.cfg.ToExportConfig(), sections, format)
	if err != nil {
		return err
	}

	dir := stringFlag(cmd.Flags(), "output", f.output.dir, a.cfg.Output.Dir)
	for _, file := range files {
		path, err := a.writeFile(dir, file)
		if err != nil {
			return err
		}
		a.logger.Info("exported",
			slog.String("section", string(file.Section)),
			slog.String("path", path),
			slog.Int("footnotes", file.Footnotes),
		)
	}
	return nil
}

// resolveSections turns --section and --all into the export list.
func resolveSections(names []string, all bool) ([]scholardraft.Section, error) {
	if all && len(names) > 0 {
		return nil, fmt.Errorf("%w: --all and --section are mutually exclusive", ErrUsage)
	}
	if all {
		return scholardraft.Sections(), nil
	}
	if len(names) == 0 {
		return []scholardraft.Section{scholardraft.SectionFull}, nil
	}

	seen := make(map[scholardraft.Section]bool, len(names))
	sections := make([]scholardraft.Section, 0, len(names))
	for _, name := range names {
		s, err := scholardraft.ParseSection(name)
		if err != nil {
			return nil, err
		}
		if seen[s] {
			continue
		}
		seen[s] = true
		sections = append(sections, s)
	}
	return sections, nil
}

// loadContent reads the bundle at path; "-" reads JSON from stdin.
func (a *app) loadContent(path string) (*content.Bundle, error) {
	if path == "" {
		return nil, errMissingInput("content")
	}
	if path == "-" {
		return content.Decode(a.env.Stdin, content.FormatJSON)
	}
	return content.Load(path)
}

// writeFile stores file under dir and prints the written path.
func (a *app) writeFile(dir string, file *scholardraft.File) (string, error) {
	path, err := fileutil.WriteFile(dir, file.Name, file.Data)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	fmt.Fprintln(a.env.Stdout, path)
	return path, nil
}
