// Package hierarchy provides the embedded templates for generated class chains.
package hierarchy

import (
	"embed"
	"text/template"

	core "github.com/example/hiergen/internal/core/hierarchy"
)

//go:embed myrtti/*.tmpl unreal/*.tmpl
var hierarchyTemplates embed.FS

// Template names.
const (
	MyRTTIHeader = "myrtti/header.h"
	UnrealHeader = "unreal/header.h"
	UnrealSource = "unreal/source.cpp"
)

// GetTemplate returns the content of a named template.
func GetTemplate(name string) (string, error) {
	content, err := hierarchyTemplates.ReadFile(name + ".tmpl")
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// TemplateFuncs returns the function map shared by all hierarchy templates.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"header":          core.HeaderName,
		"generatedHeader": core.GeneratedHeaderName,
	}
}
