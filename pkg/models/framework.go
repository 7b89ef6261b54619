package models

import (
	"fmt"
	"strings"
)

// Framework identifies the markup stack the generated document uses
type Framework string

const (
	FrameworkHTMLCSS               Framework = "html-css"
	FrameworkHTMLTailwind          Framework = "html-tailwind"
	FrameworkHTMLBootstrap         Framework = "html-bootstrap"
	FrameworkHTMLCSSJS             Framework = "html-css-js"
	FrameworkHTMLTailwindBootstrap Framework = "html-tailwind-bootstrap"

	DefaultFramework = FrameworkHTMLCSS
)

var frameworkLabels = map[Framework]string{
	FrameworkHTMLCSS:               "HTML + CSS",
	FrameworkHTMLTailwind:          "HTML + Tailwind CSS",
	FrameworkHTMLBootstrap:         "HTML + Bootstrap",
	FrameworkHTMLCSSJS:             "HTML + CSS + JS",
	FrameworkHTMLTailwindBootstrap: "HTML + Tailwind + Bootstrap",
}

// Frameworks returns the supported frameworks in display order
func Frameworks() []Framework {
	return []Framework{
		FrameworkHTMLCSS,
		FrameworkHTMLTailwind,
		FrameworkHTMLBootstrap,
		FrameworkHTMLCSSJS,
		FrameworkHTMLTailwindBootstrap,
	}
}

// ParseFramework converts an identifier into a Framework
func ParseFramework(s string) (Framework, error) {
	f := Framework(strings.ToLower(strings.TrimSpace(s)))
	if !f.Valid() {
		ids := make([]string, 0, len(frameworkLabels))
		for _, fw := range Frameworks() {
			ids = append(ids, string(fw))
		}
		return "", NewValidationError(fmt.Sprintf("unsupported framework %q (expected one of: %s)", s, strings.Join(ids, ", ")))
	}
	return f, nil
}

// Valid reports whether f belongs to the supported set
func (f Framework) Valid() bool {
	_, ok := frameworkLabels[f]
	return ok
}

// Label returns the human-readable name
func (f Framework) Label() string {
	if label, ok := frameworkLabels[f]; ok {
		return label
	}
	return string(f)
}

// Next returns the following framework, wrapping around
func (f Framework) Next() Framework {
	all := Frameworks()
	return all[(f.index()+1)%len(all)]
}

// Prev returns the preceding framework, wrapping around
func (f Framework) Prev() Framework {
	all := Frameworks()
	return all[(f.index()-1+len(all))%len(all)]
}

func (f Framework) index() int {
	for i, fw := range Frameworks() {
		if fw == f {
			return i
		}
	}
	return 0
}
