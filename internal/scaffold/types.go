// Package scaffold renders the class-chain sources for both object models.
package scaffold

import "github.com/example/hiergen/internal/core/hierarchy"

// GeneratedFile is one rendered file.
type GeneratedFile struct {
	Path    string          // relative to the output directory
	Model   hierarchy.Model // model that owns the file
	Content string
}

// myrttiHeaderData feeds myrtti/header.h.tmpl.
type myrttiHeaderData struct {
	Include string
	Levels  []hierarchy.Level
}

// unrealClassData feeds unreal/header.h.tmpl and unreal/source.cpp.tmpl.
type unrealClassData struct {
	ClassName       string
	ParentName      string
	ParentHeader    string // empty: no parent include line
	UmbrellaInclude string
}
