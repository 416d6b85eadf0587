package templates

import (
	"fmt"
	"go/format"
	"io"

	"github.com/valyala/quicktemplate"
)

// ComputedGen renders the typed ComputedN helpers for 1..count sources,
// gofmt'ed.
func ComputedGen(packageName string, count int) (string, error) {
	bb := quicktemplate.AcquireByteBuffer()
	defer quicktemplate.ReleaseByteBuffer(bb)

	WriteComputedGen(bb, packageName, count)
	src, err := format.Source(bb.B)
	if err != nil {
		return "", fmt.Errorf("formatting generated source: %w", err)
	}
	return string(src), nil
}

func WriteComputedGen(w io.Writer, packageName string, count int) {
	qw := quicktemplate.AcquireWriter(w)
	StreamComputedGen(qw, packageName, count)
	quicktemplate.ReleaseWriter(qw)
}

func StreamComputedGen(qw *quicktemplate.Writer, packageName string, count int) {
	w := qw.N()
	w.S("// Code generated by codegen; DO NOT EDIT.\n\npackage ")
	w.S(packageName)
	w.S("\n")
	for n := 1; n <= count; n++ {
		streamComputedN(w, n)
	}
}

func streamComputedN(w *quicktemplate.QWriter, n int) {
	w.S("\n// Computed")
	w.D(n)
	w.S(" derives a value from ")
	w.S(plural(n, "source"))
	w.S(", calling fn with their current values.\n")

	w.S("func Computed")
	w.D(n)
	w.S("[")
	w.S(prefixedStrings("T", n))
	w.S(", O any](\n")
	for i := 0; i < n; i++ {
		w.S("\ts")
		w.D(i)
		w.S(" ReadonlySignal[T")
		w.D(i)
		w.S("],\n")
	}
	w.S("\tfn func(")
	w.S(prefixedStrings("T", n))
	w.S(") O,\n\topts ...Option,\n) *Computed[O] {\n")

	w.S("\treturn NewComputed(func() O {\n\t\treturn fn(\n")
	for i := 0; i < n; i++ {
		w.S("\t\t\ts")
		w.D(i)
		w.S(".Get(),\n")
	}
	w.S("\t\t)\n\t}, []Source{")
	w.S(prefixedStrings("s", n))
	w.S("}, opts...)\n}\n")
}
