// Package hierarchy contains the pure naming and planning rules for generated
// class chains. Nothing in this package touches the filesystem.
package hierarchy

import "fmt"

// Model identifies one of the two target object models.
type Model string

const (
	// ModelMyRTTI is the macro-annotated lightweight RTTI hierarchy (one header for all levels).
	ModelMyRTTI Model = "myrtti"
	// ModelUnreal is the engine-style reflected hierarchy (one header/source pair per level).
	ModelUnreal Model = "unreal"
)

// Models lists every model in emission order.
var Models = []Model{ModelMyRTTI, ModelUnreal}

// Naming holds every identifier the two models bake into generated code.
type Naming struct {
	MyRTTIClassPrefix string // "MyRTTI"
	MyRTTIFilePrefix  string // "myrtti"
	MyRTTIInclude     string // "myrtti.h", included with angle brackets

	UnrealClassPrefix     string // "AUnreal"
	UnrealBaseClass       string // "AActor"
	UnrealUmbrellaInclude string // "CoreMinimal.h"
	// UnrealBaseHeader is included by the level 0 header when set.
	UnrealBaseHeader string
}

// DefaultNaming returns the naming used by the benchmark projects.
func DefaultNaming() Naming {
	return Naming{
		MyRTTIClassPrefix:     "MyRTTI",
		MyRTTIFilePrefix:      "myrtti",
		MyRTTIInclude:         "myrtti.h",
		UnrealClassPrefix:     "AUnreal",
		UnrealBaseClass:       "AActor",
		UnrealUmbrellaInclude: "CoreMinimal.h",
	}
}

// ClassPrefix returns the class-name prefix for a model.
func (n Naming) ClassPrefix(m Model) string {
	if m == ModelUnreal {
		return n.UnrealClassPrefix
	}
	return n.MyRTTIClassPrefix
}

// ClassName returns "<Prefix>_<nameBase>_<index>".
func (n Naming) ClassName(m Model, nameBase string, index int) string {
	return fmt.Sprintf("%s_%s_%d", n.ClassPrefix(m), nameBase, index)
}

// MyRTTIFileName returns the single MyRTTI header name for nameBase.
func (n Naming) MyRTTIFileName(nameBase string) string {
	return fmt.Sprintf("%s_%s.h", n.MyRTTIFilePrefix, nameBase)
}

// HeaderName returns the header file name of an engine-style class.
func HeaderName(className string) string {
	return className + ".h"
}

// SourceName returns the implementation file name of an engine-style class.
func SourceName(className string) string {
	return className + ".cpp"
}

// GeneratedHeaderName returns the per-class generated-metadata header name.
func GeneratedHeaderName(className string) string {
	return className + ".generated.h"
}
