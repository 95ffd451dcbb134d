// logger.go defines the instrumentation hook: a polymorphic sink the
// engine reports lifecycle and operation events to. The default sink does
// nothing; TextLogger emits one textual record per line for consumption by
// an off-line analyzer. Neither participates in numerical computation.

package cordic

import (
	"fmt"
	"io"
	"strconv"
)

// Op identifies a logged operation.
type Op uint16

// Operation codes reported to a Logger.
const (
	OpMad Op = iota + 1
	OpMul
	OpDad
	OpDiv
	OpOneOver
	OpSqrt
	OpOneOverSqrt
	OpExp
	OpPow
	OpPowc
	OpPow2
	OpPow10
	OpLog
	OpLogb
	OpLogc
	OpLog2
	OpLog10
	OpSin
	OpCos
	OpSinCos
	OpTan
	OpSec
	OpCsc
	OpCot
	OpAsin
	OpAcos
	OpAtan
	OpAtan2
	OpSinh
	OpCosh
	OpSinhCosh
	OpTanh
	OpAsinh
	OpAcosh
	OpAtanh
	OpAtanh2
	OpNorm
	OpNormh
	OpPolarToRect
	OpRectToPolar

	// Stream-level codes used by external log drivers.
	OpPushConstant
	OpLshift
	OpRshift
	OpPopValue
)

var opNames = [...]string{
	OpMad:         "mad",
	OpMul:         "mul",
	OpDad:         "dad",
	OpDiv:         "div",
	OpOneOver:     "one_over",
	OpSqrt:        "sqrt",
	OpOneOverSqrt: "one_over_sqrt",
	OpExp:         "exp",
	OpPow:         "pow",
	OpPowc:        "powc",
	OpPow2:        "pow2",
	OpPow10:       "pow10",
	OpLog:         "log",
	OpLogb:        "logb",
	OpLogc:        "logc",
	OpLog2:        "log2",
	OpLog10:       "log10",
	OpSin:         "sin",
	OpCos:         "cos",
	OpSinCos:      "sin_cos",
	OpTan:         "tan",
	OpSec:         "sec",
	OpCsc:         "csc",
	OpCot:         "cot",
	OpAsin:        "asin",
	OpAcos:        "acos",
	OpAtan:        "atan",
	OpAtan2:       "atan2",
	OpSinh:        "sinh",
	OpCosh:        "cosh",
	OpSinhCosh:    "sinh_cosh",
	OpTanh:        "tanh",
	OpAsinh:       "asinh",
	OpAcosh:       "acosh",
	OpAtanh:       "atanh",
	OpAtanh2:      "atanh2",
	OpNorm:        "norm",
	OpNormh:       "normh",
	OpPolarToRect: "polar_to_rect",
	OpRectToPolar: "rect_to_polar",

	OpPushConstant: "push_constant",
	OpLshift:       "lshift",
	OpRshift:       "rshift",
	OpPopValue:     "pop_value",
}

func (op Op) String() string {
	if int(op) < len(opNames) && opNames[op] != "" {
		return opNames[op]
	}
	return fmt.Sprintf("op(%d)", uint16(op))
}

// Logger receives instrumentation callbacks from an Engine. Implementations
// observe; they never alter numerical results. All methods may be invoked
// concurrently when the engine is shared across goroutines.
type Logger interface {
	// CordicConstructed records engine birth with its widths and
	// circular iteration count.
	CordicConstructed(engine uint64, intW, fracW, n int)
	// CordicDestructed records engine teardown.
	CordicDestructed(engine uint64)

	// Constructed and Destructed record value lifecycle for drivers that
	// track value identity; engine 0 marks a constant.
	Constructed(value, engine uint64)
	Destructed(value uint64)

	// Op1 through Op4 record operations with their operand encodings.
	Op1(op Op, a int64)
	Op2(op Op, a, b int64)
	Op3(op Op, a, b, c int64)
	Op4(op Op, a, b, c, d int64)

	// Op1f records an operation carrying a floating-point literal.
	Op1f(op Op, f float64)
	// Op2i records an operation carrying a value and an integer.
	Op2i(op Op, a int64, i int)
	// Op2f records an operation carrying a value and a floating-point
	// literal.
	Op2f(op Op, a int64, f float64)

	// Enter and Leave bracket a named function in the stream.
	Enter(name string)
	Leave(name string)
}

// NopLogger discards every record. It is the default sink.
type NopLogger struct{}

func (NopLogger) CordicConstructed(uint64, int, int, int) {}
func (NopLogger) CordicDestructed(uint64)                 {}
func (NopLogger) Constructed(uint64, uint64)              {}
func (NopLogger) Destructed(uint64)                       {}
func (NopLogger) Op1(Op, int64)                           {}
func (NopLogger) Op2(Op, int64, int64)                    {}
func (NopLogger) Op3(Op, int64, int64, int64)             {}
func (NopLogger) Op4(Op, int64, int64, int64, int64)      {}
func (NopLogger) Op1f(Op, float64)                        {}
func (NopLogger) Op2i(Op, int64, int)                     {}
func (NopLogger) Op2f(Op, int64, float64)                 {}
func (NopLogger) Enter(string)                            {}
func (NopLogger) Leave(string)                            {}

// TextLogger writes one record per line in the textual log grammar.
// OpString and ValString customize how operation codes and operand
// encodings are rendered; nil means the defaults (Op.String and decimal).
type TextLogger struct {
	w io.Writer

	OpString  func(Op) string
	ValString func(int64) string
}

// NewTextLogger returns a TextLogger writing to w.
func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) opString(op Op) string {
	if l.OpString != nil {
		return l.OpString(op)
	}
	return op.String()
}

func (l *TextLogger) valString(x int64) string {
	if l.ValString != nil {
		return l.ValString(x)
	}
	return strconv.FormatInt(x, 10)
}

func (l *TextLogger) CordicConstructed(engine uint64, intW, fracW, n int) {
	fmt.Fprintf(l.w, "cordic_constructed( %d, %d, %d, %d );\n", engine, intW, fracW, n)
}

func (l *TextLogger) CordicDestructed(engine uint64) {
	fmt.Fprintf(l.w, "cordic_destructed( %d );\n", engine)
}

func (l *TextLogger) Constructed(value, engine uint64) {
	fmt.Fprintf(l.w, "constructed( %d, %d );\n", value, engine)
}

// Destructed records share the constructed keyword in the trace format;
// analyzers distinguish the two by field count.
func (l *TextLogger) Destructed(value uint64) {
	fmt.Fprintf(l.w, "constructed( %d );\n", value)
}

func (l *TextLogger) Op1(op Op, a int64) {
	fmt.Fprintf(l.w, "op1( %s, %s );\n", l.opString(op), l.valString(a))
}

func (l *TextLogger) Op2(op Op, a, b int64) {
	fmt.Fprintf(l.w, "op2( %s, %s, %s );\n", l.opString(op), l.valString(a), l.valString(b))
}

func (l *TextLogger) Op3(op Op, a, b, c int64) {
	fmt.Fprintf(l.w, "op3( %s, %s, %s, %s );\n", l.opString(op), l.valString(a), l.valString(b), l.valString(c))
}

func (l *TextLogger) Op4(op Op, a, b, c, d int64) {
	fmt.Fprintf(l.w, "op4( %s, %s, %s, %s, %s );\n", l.opString(op), l.valString(a), l.valString(b), l.valString(c), l.valString(d))
}

func (l *TextLogger) Op1f(op Op, f float64) {
	fmt.Fprintf(l.w, "op1f( %s, %g );\n", l.opString(op), f)
}

func (l *TextLogger) Op2i(op Op, a int64, i int) {
	fmt.Fprintf(l.w, "op2i( %s, %s, %d );\n", l.opString(op), l.valString(a), i)
}

func (l *TextLogger) Op2f(op Op, a int64, f float64) {
	fmt.Fprintf(l.w, "op2f( %s, %s, %g );\n", l.opString(op), l.valString(a), f)
}

func (l *TextLogger) Enter(name string) {
	fmt.Fprintf(l.w, "enter( %s );\n", name)
}

func (l *TextLogger) Leave(name string) {
	fmt.Fprintf(l.w, "leave( %s );\n", name)
}
