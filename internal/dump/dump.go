// Package dump implements interp-dump, the inspection companion to the
// nacl-interp shim. It derives the same execution context and redirect
// plan the shim would act on and prints them instead of executing, and it
// reports the PT_INTERP of ELF files so installations can be checked.
package dump

import (
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/frobtech/nacl-interp/internal/interp"
	"github.com/frobtech/nacl-interp/internal/linux/startup"
)

// Main is the interp-dump entry point.
func Main() {
	yamlOut := flag.Bool("yaml", false, "emit YAML instead of text")
	flag.Parse()

	if flag.NArg() > 0 {
		os.Exit(runInterpReport(flag.Args()))
	}

	st, err := startup.Current()
	if err != nil {
		fmt.Fprintf(os.Stderr, "interp-dump: %v\n", err)
		os.Exit(1)
	}
	r := build(st)

	if *yamlOut {
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			fmt.Fprintf(os.Stderr, "interp-dump: %v\n", err)
			os.Exit(1)
		}
		enc.Close()
		return
	}
	emitText(os.Stdout, r)
}

// Report is everything the shim would act on, in serializable form.
type Report struct {
	Argv     []string   `yaml:"argv"`
	EnvCount int        `yaml:"env_count"`
	Auxv     []AuxEntry `yaml:"auxv"`
	ExecFN   string     `yaml:"execfn"`
	Platform string     `yaml:"platform"`
	Secure   bool       `yaml:"secure"`
	Redirect []string   `yaml:"redirect,omitempty"`
	Refusal  string     `yaml:"refusal,omitempty"`
}

// AuxEntry is one auxiliary vector entry, with the tag named when known.
type AuxEntry struct {
	Tag   string `yaml:"tag"`
	Value string `yaml:"value"`
}

// build derives the report the same way the shim derives its plan, so what
// gets printed is what the shim would do.
func build(st startup.Stack) Report {
	r := Report{
		Argv:     make([]string, 0, len(st.Argv)),
		EnvCount: len(st.Envp),
	}
	for _, a := range st.Argv {
		r.Argv = append(r.Argv, startup.Str(a))
	}
	for _, a := range st.Auxv {
		if a.Tag == startup.AT_NULL {
			break
		}
		r.Auxv = append(r.Auxv, AuxEntry{Tag: tagLabel(a.Tag), Value: auxValue(a)})
	}

	ctx := interp.Resolve(st)
	r.ExecFN = startup.Str(ctx.ExecFN)
	r.Platform = startup.Str(ctx.Platform)
	r.Secure = ctx.Secure

	plan, err := interp.PlanRedirect(ctx, st)
	if err != nil {
		r.Refusal = err.Error()
		return r
	}
	r.Redirect = plan.Args()
	return r
}

func tagLabel(tag uintptr) string {
	if name := startup.TagName(tag); name != "" {
		return name
	}
	return fmt.Sprintf("%d", tag)
}

// auxValue renders string-valued tags as their strings, everything else
// as hex.
func auxValue(a startup.AuxEnt) string {
	switch a.Tag {
	case startup.AT_PLATFORM, startup.AT_BASE_PLATFORM, startup.AT_EXECFN:
		return startup.Str(a.Ptr())
	default:
		return fmt.Sprintf("%#x", a.Val)
	}
}

func emitText(w io.Writer, r Report) {
	bold := false
	if f, ok := w.(*os.File); ok {
		bold = term.IsTerminal(int(f.Fd()))
	}
	section := func(name string) {
		if bold {
			fmt.Fprintf(w, "\x1b[1m%s\x1b[0m\n", name)
		} else {
			fmt.Fprintf(w, "%s\n", name)
		}
	}

	section("process")
	for i, a := range r.Argv {
		fmt.Fprintf(w, "  argv[%d]  %s\n", i, a)
	}
	fmt.Fprintf(w, "  env      %d entries\n", r.EnvCount)

	section("auxv")
	for _, e := range r.Auxv {
		fmt.Fprintf(w, "  %-20s %s\n", e.Tag, e.Value)
	}

	section("context")
	fmt.Fprintf(w, "  execfn    %s\n", r.ExecFN)
	fmt.Fprintf(w, "  platform  %s\n", r.Platform)
	fmt.Fprintf(w, "  secure    %v\n", r.Secure)

	section("redirect")
	if r.Refusal != "" {
		fmt.Fprintf(w, "  refused: %s\n", r.Refusal)
		return
	}
	for i, a := range r.Redirect {
		fmt.Fprintf(w, "  argv[%d]  %s\n", i, a)
	}
}
