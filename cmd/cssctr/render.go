package main

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/counters/dom"
	"github.com/npillmayer/counters/dom/domdbg"
	"github.com/npillmayer/counters/dom/gencontent"
	"github.com/npillmayer/counters/dom/style/cssom/douceuradapter"
	"github.com/spf13/cobra"
)

var (
	flagFormat string
	flagCSS    string
	flagNoUA   bool
)

var renderCmd = &cobra.Command{
	Use:   "render <document.html>",
	Short: "Print list markers and generated content of an HTML document",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVar(&flagFormat, "format", "tree", "output format: tree|lines|dot")
	renderCmd.Flags().StringVar(&flagCSS, "css", "", "additional style sheet, applied after the document's styles")
	renderCmd.Flags().BoolVar(&flagNoUA, "no-ua", false, "do not apply user-agent list styles")
}

// renderOptions control a rendering run.
type renderOptions struct {
	format       string // tree, lines or dot
	css          string // additional style sheet text
	uaStyles     bool
	markerSuffix string
}

func runRender(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()
	opts := renderOptions{
		format:       flagFormat,
		uaStyles:     conf.GetBool("cssctr.uastyles") && !flagNoUA,
		markerSuffix: conf.GetString("cssctr.markersuffix"),
	}
	if flagCSS != "" {
		text, err := os.ReadFile(flagCSS)
		if err != nil {
			return err
		}
		opts.css = string(text)
	}
	return render(cmd.OutOrStdout(), f, opts)
}

// render processes an HTML document and prints its generated content.
func render(w io.Writer, r io.Reader, opts renderOptions) error {
	switch opts.format {
	case "tree", "lines", "dot":
	default:
		return fmt.Errorf("unknown output format %q", opts.format)
	}
	domopts := []dom.Option{
		dom.WithGenerateOptions(gencontent.IgnoringErrors()),
	}
	if opts.css != "" {
		sheet, err := douceuradapter.Parse(opts.css)
		if err != nil {
			return fmt.Errorf("parsing style sheet: %w", err)
		}
		domopts = append(domopts, dom.WithStyleSheet(sheet))
	}
	if !opts.uaStyles {
		domopts = append(domopts, dom.WithoutUserAgentStyles())
	}
	if opts.markerSuffix != "" {
		domopts = append(domopts, dom.WithGenerateOptions(gencontent.WithMarkerSuffix(opts.markerSuffix)))
	}
	doc, err := dom.Parse(r, domopts...)
	if err != nil {
		return err
	}
	switch opts.format {
	case "lines":
		return printLines(w, doc.Content)
	case "dot":
		return domdbg.ToGraphViz(doc.Styled, doc.Content, w, nil)
	}
	_, err = io.WriteString(w, domdbg.Print(doc.Styled, doc.Content))
	return err
}

// printLines prints one line per node with generated content:
// the path of the node, its marker and its content, separated by tabs.
func printLines(w io.Writer, result *gencontent.Result) error {
	for _, sn := range result.Nodes() {
		g, _ := result.Generated(sn)
		if _, err := fmt.Fprintf(w, "%s\t%q\t%q\n", sn.Path(), g.Marker, g.Content); err != nil {
			return err
		}
	}
	return nil
}
