package scaffold

import (
	"bytes"
	"text/template"

	"github.com/example/hiergen/internal/core/hierarchy"
	"github.com/example/hiergen/internal/errors"
	hiertmpl "github.com/example/hiergen/internal/templates/hierarchy"
)

// Generator renders hierarchy sources from the embedded templates.
// The two emitters share naming rules only; neither knows about the other.
type Generator struct {
	naming hierarchy.Naming
	funcs  template.FuncMap
}

// NewGenerator creates a Generator for the given naming.
func NewGenerator(naming hierarchy.Naming) *Generator {
	return &Generator{
		naming: naming,
		funcs:  hiertmpl.TemplateFuncs(),
	}
}

// Naming returns the naming the generator renders with.
func (g *Generator) Naming() hierarchy.Naming {
	return g.naming
}

// EmitMyRTTI renders the single MyRTTI header holding all depth declarations:
// a root-form block for level 0, then one derived-form block per level.
func (g *Generator) EmitMyRTTI(nameBase string, depth int) (GeneratedFile, error) {
	levels := g.naming.Levels(hierarchy.ModelMyRTTI, nameBase, depth)
	if len(levels) == 0 {
		return GeneratedFile{}, errors.Newf("cannot emit MyRTTI hierarchy with depth %d", depth)
	}

	content, err := g.render(hiertmpl.MyRTTIHeader, myrttiHeaderData{
		Include: g.naming.MyRTTIInclude,
		Levels:  levels,
	})
	if err != nil {
		return GeneratedFile{}, err
	}

	return GeneratedFile{
		Path:    g.naming.MyRTTIFileName(nameBase),
		Model:   hierarchy.ModelMyRTTI,
		Content: content,
	}, nil
}

// EmitUnreal renders one header and one source per level, in level order.
// Level 0 derives from the engine base class; level i derives from and
// includes level i-1.
func (g *Generator) EmitUnreal(nameBase string, depth int) ([]GeneratedFile, error) {
	levels := g.naming.Levels(hierarchy.ModelUnreal, nameBase, depth)
	if len(levels) == 0 {
		return nil, errors.Newf("cannot emit Unreal hierarchy with depth %d", depth)
	}

	files := make([]GeneratedFile, 0, 2*len(levels))
	for _, lvl := range levels {
		data := unrealClassData{
			ClassName:       lvl.ClassName,
			ParentName:      lvl.ParentName,
			ParentHeader:    hierarchy.HeaderName(lvl.ParentName),
			UmbrellaInclude: g.naming.UnrealUmbrellaInclude,
		}
		if lvl.IsRoot {
			data.ParentName = g.naming.UnrealBaseClass
			data.ParentHeader = g.naming.UnrealBaseHeader
		}

		header, err := g.render(hiertmpl.UnrealHeader, data)
		if err != nil {
			return nil, err
		}
		source, err := g.render(hiertmpl.UnrealSource, data)
		if err != nil {
			return nil, err
		}

		files = append(files,
			GeneratedFile{Path: hierarchy.HeaderName(lvl.ClassName), Model: hierarchy.ModelUnreal, Content: header},
			GeneratedFile{Path: hierarchy.SourceName(lvl.ClassName), Model: hierarchy.ModelUnreal, Content: source},
		)
	}

	return files, nil
}

// render executes a named embedded template.
func (g *Generator) render(name string, data any) (string, error) {
	tmplContent, err := hiertmpl.GetTemplate(name)
	if err != nil {
		return "", errors.Wrapf(err, "failed to load template %s", name)
	}

	tmpl, err := template.New(name).Funcs(g.funcs).Parse(tmplContent)
	if err != nil {
		return "", errors.Wrapf(err, "failed to parse template %s", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errors.Wrapf(err, "failed to render %s", name)
	}

	return buf.String(), nil
}
