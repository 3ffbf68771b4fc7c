package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alnah/go-scholardraft"
	"github.com/alnah/go-scholardraft/internal/yamlutil"
)

// Outline print formats.
const (
	printText = "text"
	printJSON = "json"
	printYAML = "yaml"
)

// tocFlags holds flags for the toc command.
type tocFlags struct {
	input inputFlags
	print string
}

func newTOCCmd(a *app) *cobra.Command {
	var f tocFlags

	cmd := &cobra.Command{
		Use:     "toc",
		Aliases: []string{"outline"},
		Short:   "Print the estimated table of contents and chapter lengths",
		Long: `Toc estimates the start page of every section of the full draft and
compares each chapter's estimated length with its chapterPages target.`,
		Example: `  scholardraft toc --content draft.json
  scholardraft toc -c draft.json --print json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runTOC(cmd, &f)
		},
	}

	fs := cmd.Flags()
	f.input.register(fs, false)
	fs.StringVarP(&f.print, "print", "p", printText, "print format: text, json, yaml")
	return cmd
}

func (a *app) runTOC(cmd *cobra.Command, f *tocFlags) error {
	printer, err := outlinePrinter(f.print)
	if err != nil {
		return err
	}
	bundle, err := a.loadContent(f.input.content)
	if err != nil {
		return err
	}

	exp, err := a.newExporter(0, 0)
	if err != nil {
		return err
	}
	defer a.closeExporter(exp)

	return printer(cmd.OutOrStdout(), exp.Outline(bundle.Content(), a.cfg.ToExportConfig()))
}

type printFunc func(w io.Writer, o scholardraft.Outline) error

func outlinePrinter(name string) (printFunc, error) {
	switch strings.ToLower(name) {
	case printText, "":
		return printOutlineText, nil
	case printJSON:
		return printOutlineJSON, nil
	case printYAML:
		return printOutlineYAML, nil
	}
	return nil, fmt.Errorf("%w: unknown print format %q (want text, json or yaml)", ErrUsage, name)
}

func printOutlineText(w io.Writer, o scholardraft.Outline) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, e := range o.TOC {
		fmt.Fprintf(tw, "%s\t%d\n", e.Title, e.Page)
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "CHAPTER\tTARGET\tESTIMATED\tWORDS\tDELTA")
	for _, r := range o.Chapters {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%+d\n", r.Title, r.Target, r.Estimated, r.Words, r.Delta)
	}
	return tw.Flush()
}

func printOutlineJSON(w io.Writer, o scholardraft.Outline) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(o)
}

func printOutlineYAML(w io.Writer, o scholardraft.Outline) error {
	data, err := yamlutil.Marshal(o)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
