/*
Package domdbg implements helpers to debug a styled document tree and the
content generated for it.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/counters/dom/gencontent"
	"github.com/npillmayer/counters/dom/style"
	"github.com/npillmayer/counters/dom/styledtree"
	"github.com/npillmayer/counters/tree"
	"github.com/xlab/treeprint"
)

// Print renders a styled tree as an indented tree, annotating every node
// with its list marker and generated content. result may be nil.
func Print(root *gencontent.StyledTree, result *gencontent.Result) string {
	if root == nil {
		return "<empty>\n"
	}
	tp := treeprint.NewWithRoot(label(styledtree.Node(root), result))
	printChildren(tp, root, result)
	return tp.String()
}

func printChildren(branch treeprint.Tree, n *gencontent.StyledTree, result *gencontent.Result) {
	for _, ch := range n.Children() {
		sn := styledtree.Node(ch)
		if ch.ChildCount() == 0 {
			branch.AddNode(label(sn, result))
			continue
		}
		printChildren(branch.AddBranch(label(sn, result)), ch, result)
	}
}

func label(sn *styledtree.StyNode, result *gencontent.Result) string {
	if result == nil {
		return sn.Name()
	}
	g, ok := result.Generated(sn)
	if !ok {
		return sn.Name()
	}
	var b strings.Builder
	b.WriteString(sn.Name())
	if g.Marker != "" {
		fmt.Fprintf(&b, " marker=%q", g.Marker)
	}
	if g.Content != "" {
		fmt.Fprintf(&b, " content=%q", g.Content)
	}
	return b.String()
}

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname       string
	StyleGroups    []string
	NodeTmpl       *template.Template
	EdgeTmpl       *template.Template
	StylegroupTmpl *template.Template
	PgedgeTmpl     *template.Template
}

var defaultGroups = []string{
	style.PGLists,
	style.PGDisplay,
}

// ToGraphViz outputs a diagram for a styled tree. The diagram is in
// GraphViz (DOT) format. Clients have to provide the root node of
// the tree, a Writer, and an optional list of style parameter groups.
// The diagram will include all styles belonging to one of the
// parameter groups. If result is given, generated content is included
// in the node labels.
//
// If the client does not provide a list of style groups, the following
// default will be used:
//
//     - Lists
//     - Display
//
func ToGraphViz(root *gencontent.StyledTree, result *gencontent.Result, w io.Writer, styleGroups []string) error {
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("domnode").Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	gparams.StylegroupTmpl = template.Must(template.New("stylegroup").Parse(styleGroupTmpl))
	gparams.PgedgeTmpl = template.Must(template.New("pgedge").Parse(pgEdgeTmpl))
	gparams.StyleGroups = styleGroups
	if styleGroups == nil {
		gparams.StyleGroups = defaultGroups
	}
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	dict := make(map[*gencontent.StyledTree]string, 256)
	err = tree.Walk(root, func(n *gencontent.StyledTree, _ int) error {
		if err := domNode(n, result, w, dict, &gparams); err != nil {
			return err
		}
		if parent := n.Parent(); parent != nil {
			return gparams.EdgeTmpl.Execute(w, edge{dict[parent], dict[n]})
		}
		return nil
	}, nil)
	if err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

type node struct {
	Name  string
	Label string
}

func domNode(n *gencontent.StyledTree, result *gencontent.Result, w io.Writer,
	dict map[*gencontent.StyledTree]string, gparams *graphParamsType) error {
	//
	name := fmt.Sprintf("node%05d", len(dict)+1)
	dict[n] = name
	sn := styledtree.Node(n)
	if err := gparams.NodeTmpl.Execute(w, &node{name, label(sn, result)}); err != nil {
		return err
	}
	pmap := sn.Styles()
	for _, s := range gparams.StyleGroups {
		if pg := pmap.Group(s); pg != nil {
			if err := gparams.StylegroupTmpl.Execute(w, pg); err != nil {
				return err
			}
			if err := gparams.PgedgeTmpl.Execute(w, pgedge{name, pg}); err != nil {
				return err
			}
		}
	}
	return nil
}

type edge struct {
	N1, N2 string
}

type pgedge struct {
	Name      string
	PropGroup *style.PropertyGroup
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ .Name }}	[ label={{ printf "%q" .Label }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
`

const styleGroupTmpl = `{{ printf "pg%p" . }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ .Name }}</font></td></tr>
      {{ range .Properties }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value | html }}</td></tr>
      {{ else }}
      <tr><td colspan="2">no styles</td></tr>
      {{ end }}
    </table>> ] ;
`

const domEdgeTmpl = `{{ .N1 }} -> {{ .N2 }} [weight=1] ;
`

const pgEdgeTmpl = `{{ .Name }} -> {{ printf "pg%p" .PropGroup }} [dir=none weight=1 style="dashed"] ;
`
