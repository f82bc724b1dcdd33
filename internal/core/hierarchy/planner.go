package hierarchy

// FileKind distinguishes headers from implementation files.
type FileKind string

const (
	KindHeader FileKind = "header"
	KindSource FileKind = "source"
)

// PlanInput contains everything needed to plan a generation run.
// All values are supplied by the caller - no I/O in the planner.
type PlanInput struct {
	NameBase string
	Depth    int
	Naming   Naming
}

// Plan lists the files a run produces, in write order.
type Plan struct {
	NameBase string
	Depth    int
	Files    []FileOp
}

// FileOp describes one planned file.
type FileOp struct {
	Path    string   // relative to the output directory
	Model   Model
	Kind    FileKind
	Classes []string // classes declared in this file
	Include string   // hierarchy header this file includes, if any
}

// GeneratePlan returns the MyRTTI header followed by the engine-style
// header/source pairs, level by level.
func GeneratePlan(input PlanInput) Plan {
	plan := Plan{
		NameBase: input.NameBase,
		Depth:    input.Depth,
	}

	myrtti := input.Naming.Levels(ModelMyRTTI, input.NameBase, input.Depth)
	if len(myrtti) == 0 {
		return plan
	}

	classes := make([]string, len(myrtti))
	for i, lvl := range myrtti {
		classes[i] = lvl.ClassName
	}
	plan.Files = append(plan.Files, FileOp{
		Path:    input.Naming.MyRTTIFileName(input.NameBase),
		Model:   ModelMyRTTI,
		Kind:    KindHeader,
		Classes: classes,
	})

	for _, lvl := range input.Naming.Levels(ModelUnreal, input.NameBase, input.Depth) {
		header := FileOp{
			Path:    HeaderName(lvl.ClassName),
			Model:   ModelUnreal,
			Kind:    KindHeader,
			Classes: []string{lvl.ClassName},
		}
		if !lvl.IsRoot {
			header.Include = HeaderName(lvl.ParentName)
		}
		plan.Files = append(plan.Files, header, FileOp{
			Path:    SourceName(lvl.ClassName),
			Model:   ModelUnreal,
			Kind:    KindSource,
			Classes: []string{lvl.ClassName},
			Include: HeaderName(lvl.ClassName),
		})
	}

	return plan
}

// Count returns the number of planned files for a model.
func (p Plan) Count(m Model) int {
	n := 0
	for _, f := range p.Files {
		if f.Model == m {
			n++
		}
	}
	return n
}
