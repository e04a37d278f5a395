// Command genwrappers emits the per-kind boilerplate for wrappers whose
// release function takes the pointer alone.
//
// It reads //wrap directives from the input files:
//
//	// LocalFree frees a local memory object.
//	//wrap LocalFree kernel32 = localFree(p)
//
// and writes, for each directive, a releaser type named after the release
// function, its Name and Release methods, a <Name>Wrapper alias of
// handle.Wrapper, a New<Name>Wrapper constructor and an entry in the
// generatedBindings table. The comment lines directly above a directive
// become the releaser's doc comment. The expression after '=' is the body of
// Release and must evaluate to an error; p is the held pointer.
//
// Usage:
//
//	go run ./internal/cmd/genwrappers -output zwrappers_windows.go -package win32 -tags windows wrappers_windows.go
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"regexp"
	"strings"
	"text/template"
)

var (
	output  = flag.String("output", "", "output file name (standard output if omitted)")
	pkgName = flag.String("package", "", "package name of the generated file")
	tags    = flag.String("tags", "", "build constraint expression for the generated file")
)

var directive = regexp.MustCompile(`^//wrap\s+([A-Z][A-Za-z0-9_]*)\s+([A-Za-z0-9_.]+)\s*=\s*(.+)$`)

// Kind is one parsed //wrap directive.
type Kind struct {
	Name    string
	Library string
	Expr    string
	Doc     []string
}

// Source is the input of the template.
type Source struct {
	Package string
	Tags    string
	Imports []string
	Kinds   []Kind
}

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: genwrappers [-output file] -package name [-tags expr] files...")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 || *pkgName == "" {
		flag.Usage()
		os.Exit(1)
	}

	src := &Source{Package: *pkgName, Tags: *tags}
	for _, file := range flag.Args() {
		kinds, err := ParseFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "genwrappers: %v\n", err)
			os.Exit(1)
		}
		src.Kinds = append(src.Kinds, kinds...)
	}

	code, err := src.Generate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "genwrappers: %v\n", err)
		os.Exit(1)
	}

	if *output == "" {
		os.Stdout.Write(code)
		return
	}
	if err := os.WriteFile(*output, code, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "genwrappers: %v\n", err)
		os.Exit(1)
	}
}

// ParseFile reads the //wrap directives of a file.
func ParseFile(path string) ([]Kind, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	kinds, err := Parse(bufio.NewScanner(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return kinds, nil
}

// Parse reads //wrap directives line by line.
func Parse(s *bufio.Scanner) ([]Kind, error) {
	var (
		kinds []Kind
		doc   []string
		seen  = make(map[string]bool)
		line  int
	)
	for s.Scan() {
		line++
		text := strings.TrimSpace(s.Text())

		if strings.HasPrefix(text, "//wrap") {
			m := directive.FindStringSubmatch(text)
			if m == nil {
				return nil, fmt.Errorf("line %d: malformed directive %q", line, text)
			}
			if seen[m[1]] {
				return nil, fmt.Errorf("line %d: duplicate kind %s", line, m[1])
			}
			seen[m[1]] = true
			kinds = append(kinds, Kind{
				Name:    m[1],
				Library: m[2],
				Expr:    strings.TrimSpace(m[3]),
				Doc:     doc,
			})
			doc = nil
			continue
		}

		if strings.HasPrefix(text, "//") && !strings.HasPrefix(text, "//go:") {
			doc = append(doc, text)
			continue
		}
		doc = nil
	}
	return kinds, s.Err()
}

// Generate renders and formats the output file.
func (src *Source) Generate() ([]byte, error) {
	src.Imports = src.imports()

	var buf bytes.Buffer
	if err := srcTemplate.Execute(&buf, src); err != nil {
		return nil, err
	}
	code, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w\n%s", err, buf.Bytes())
	}
	return code, nil
}

func (src *Source) imports() []string {
	var imports []string
	for _, pkg := range []struct{ ref, path string }{
		{"unsafe.", "unsafe"},
		{"windows.", "golang.org/x/sys/windows"},
	} {
		for _, k := range src.Kinds {
			if strings.Contains(k.Expr, pkg.ref) {
				imports = append(imports, pkg.path)
				break
			}
		}
	}
	return append(imports, "github.com/wippyai/cellophane", "github.com/wippyai/cellophane/handle")
}

// DLL returns the library file name.
func (k Kind) DLL() string {
	if strings.Contains(k.Library, ".") {
		return k.Library
	}
	return k.Library + ".dll"
}

var srcTemplate = template.Must(template.New("wrappers").Parse(`// Code generated by genwrappers; DO NOT EDIT.

{{if .Tags}}//go:build {{.Tags}}

{{end}}package {{.Package}}

import (
{{range .Imports}}	"{{.}}"
{{end}})
{{range .Kinds}}
{{range .Doc}}{{.}}
{{end}}type {{.Name}} struct{}

// Name returns "{{.Name}}".
func ({{.Name}}) Name() string { return "{{.Name}}" }

// Release calls {{.Name}} on p.
func ({{.Name}}) Release(p uintptr) error { return {{.Expr}} }

// {{.Name}}Wrapper owns a pointer released with {{.Name}}.
type {{.Name}}Wrapper = handle.Wrapper[{{.Name}}]

// New{{.Name}}Wrapper takes ownership of p.
func New{{.Name}}Wrapper(p uintptr) *{{.Name}}Wrapper {
	return handle.FromPtr[{{.Name}}](p)
}
{{end}}
var generatedBindings = []cellophane.Binding{
{{range .Kinds}}	{Kind: "{{.Name}}Wrapper", Library: "{{.DLL}}", Function: "{{.Name}}"},
{{end}}}
`))
