// output.go — output sinks and the oneline post-filter.
//
// The evaluator emits through a sink. At statement position the sink is a
// writerSink rendering scalar values into the host's io.Writer; in value
// context it is a collector whose gathered values concatenate into the
// enclosing argument's value. The oneline pragma is a wrapper around the
// writer sink, so the evaluator itself never knows about the mode.
package brace

import "io"

// sink receives evaluation results. emitText carries literal program text
// (raw marks escape expansions); emitValue carries directive results.
type sink interface {
	emitText(s string, raw bool)
	emitValue(v Value)
}

// writerSink renders to the host output. Only scalar kinds render; Nil,
// lists, maps and functions produce no output at statement position.
type writerSink struct {
	w io.Writer
}

func (s *writerSink) emitText(text string, raw bool) {
	io.WriteString(s.w, text)
}

func (s *writerSink) emitValue(v Value) {
	switch v.Tag {
	case VTInt, VTFloat, VTBool, VTStr:
		io.WriteString(s.w, v.Render())
	}
}

// onelineSink filters literal text so templates can be laid out with
// indentation: fragments that are nothing but whitespace vanish, and
// whitespace runs at fragment edges — the runs sitting between directive
// emissions — are stripped. Interior whitespace, escape expansions (raw
// fragments) and directive results pass through untouched.
type onelineSink struct {
	inner sink
}

func (s *onelineSink) emitText(text string, raw bool) {
	if raw {
		s.inner.emitText(text, true)
		return
	}
	t := trimRightSpace(trimLeftSpace(text))
	if t == "" {
		return
	}
	s.inner.emitText(t, false)
}

func (s *onelineSink) emitValue(v Value) { s.inner.emitValue(v) }

// collector gathers emissions in value context. Nil values are dropped; a
// single surviving value keeps its identity (containers stay shared), and
// several values concatenate into a Str.
type collector struct {
	vals []Value
}

func (c *collector) emitText(text string, raw bool) {
	c.vals = append(c.vals, Str(text))
}

func (c *collector) emitValue(v Value) {
	if v.Tag == VTNil {
		return
	}
	c.vals = append(c.vals, v)
}

// value folds the collected emissions per the concatenation rule.
func (c *collector) value() Value {
	switch len(c.vals) {
	case 0:
		return Nil
	case 1:
		return c.vals[0]
	default:
		n := 0
		for _, v := range c.vals {
			n += len(v.Render())
		}
		buf := make([]byte, 0, n)
		for _, v := range c.vals {
			buf = append(buf, v.Render()...)
		}
		return Str(string(buf))
	}
}
