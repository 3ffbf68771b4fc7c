package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/alnah/go-scholardraft"
	"github.com/alnah/go-scholardraft/internal/content"
)

// bibliographyFlags holds flags for the bibliography command.
type bibliographyFlags struct {
	input  inputFlags
	output outputFlags
}

func newBibliographyCmd(a *app) *cobra.Command {
	var f bibliographyFlags

	cmd := &cobra.Command{
		Use:     "bibliography",
		Aliases: []string{"ris"},
		Short:   "Export the reference list as a RIS file",
		Long: `Bibliography writes referensi_scholardraft.ris for reference managers.

References come from the content bundle (--content) or from a standalone
list (--references) in RIS, JSON or YAML form.`,
		Example: `  scholardraft bibliography --content draft.json
  scholardraft bibliography --references refs.yaml --output out/`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runBibliography(cmd, &f)
		},
	}

	fs := cmd.Flags()
	f.input.register(fs, true)
	f.output.register(fs, false)
	return cmd
}

func (a *app) runBibliography(cmd *cobra.Command, f *bibliographyFlags) error {
	refs, err := a.loadReferences(&f.input)
	if err != nil {
		return err
	}

	exp, err := a.newExporter(0, 0)
	if err != nil {
		return err
	}
	defer a.closeExporter(exp)

	file := exp.ExportBibliography(refs)
	dir := stringFlag(cmd.Flags(), "output", f.output.dir, a.cfg.Output.Dir)
	path, err := a.writeFile(dir, file)
	if err != nil {
		return err
	}
	a.logger.Info("bibliography exported", slog.String("path", path), slog.Int("references", len(refs)))
	return nil
}

// loadReferences reads references from exactly one of --content or
// --references.
func (a *app) loadReferences(in *inputFlags) ([]scholardraft.Reference, error) {
	switch {
	case in.content != "" && in.references != "":
		return nil, fmt.Errorf("%w: --content and --references are mutually exclusive", ErrUsage)
	case in.references != "":
		return content.LoadReferences(in.references)
	case in.content != "":
		bundle, err := a.loadContent(in.content)
		if err != nil {
			return nil, err
		}
		return content.References(bundle.References), nil
	}
	return nil, fmt.Errorf("%w: --content or --references is required", ErrUsage)
}
