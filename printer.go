// printer.go — node tree to source reprinting.
//
// FormatProgram renders a parsed tree back to brace source. Reparsing the
// result yields the same tree: literal text prints verbatim (escape
// expansions re-escape to \n and \\), and directives print in canonical form
// with no envelope whitespace.
package brace

import "strings"

// FormatProgram renders the program as canonical source text.
func FormatProgram(p *Program) string {
	var b strings.Builder
	if p.Oneline {
		b.WriteString("{#>oneline}")
	}
	formatNodes(p.Nodes, &b)
	return b.String()
}

func formatNodes(nodes []Node, b *strings.Builder) {
	for _, n := range nodes {
		formatNode(n, b)
	}
}

func formatNode(n Node, b *strings.Builder) {
	switch n := n.(type) {
	case *TextNode:
		if n.Raw {
			switch n.Text {
			case "\n":
				b.WriteString(`\n`)
			case "\\":
				b.WriteString(`\\`)
			default:
				b.WriteString(n.Text)
			}
			return
		}
		b.WriteString(n.Text)
	case *PathNode:
		b.WriteByte('{')
		formatPath(n.Path, b)
		b.WriteByte('}')
	case *CallNode:
		b.WriteByte('{')
		if n.HeadPath != nil {
			formatPath(n.HeadPath, b)
		} else {
			b.WriteString(n.Head)
		}
		if n.ArgPath != nil {
			b.WriteByte(':')
			formatPath(n.ArgPath, b)
		}
		for _, arg := range n.Args {
			b.WriteByte(':')
			formatNodes(arg, b)
		}
		b.WriteString(";}")
	}
}

func formatPath(p *PathExpr, b *strings.Builder) {
	b.WriteString(p.Base)
	for _, st := range p.Steps {
		if st.Field != "" {
			b.WriteByte('.')
			b.WriteString(st.Field)
			continue
		}
		b.WriteByte('[')
		formatNodes(st.Index, b)
		b.WriteByte(']')
	}
}
