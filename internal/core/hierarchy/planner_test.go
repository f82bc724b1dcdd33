package hierarchy

import (
	"testing"
)

func TestClassName(t *testing.T) {
	n := DefaultNaming()

	tests := []struct {
		model Model
		base  string
		index int
		want  string
	}{
		{ModelMyRTTI, "Foo", 0, "MyRTTI_Foo_0"},
		{ModelMyRTTI, "Foo", 12, "MyRTTI_Foo_12"},
		{ModelUnreal, "Foo", 0, "AUnreal_Foo_0"},
		{ModelUnreal, "deep_chain", 3, "AUnreal_deep_chain_3"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := n.ClassName(tt.model, tt.base, tt.index); got != tt.want {
				t.Errorf("ClassName(%s, %q, %d) = %q, want %q", tt.model, tt.base, tt.index, got, tt.want)
			}
		})
	}
}

func TestMyRTTIFileName(t *testing.T) {
	n := DefaultNaming()
	if got := n.MyRTTIFileName("Foo"); got != "myrtti_Foo.h" {
		t.Errorf("MyRTTIFileName(Foo) = %q, want %q", got, "myrtti_Foo.h")
	}

	n.MyRTTIFilePrefix = "rtti"
	if got := n.MyRTTIFileName("Bar"); got != "rtti_Bar.h" {
		t.Errorf("MyRTTIFileName(Bar) = %q, want %q", got, "rtti_Bar.h")
	}
}

func TestEngineFileNames(t *testing.T) {
	if got := HeaderName("AUnreal_Foo_1"); got != "AUnreal_Foo_1.h" {
		t.Errorf("HeaderName = %q", got)
	}
	if got := SourceName("AUnreal_Foo_1"); got != "AUnreal_Foo_1.cpp" {
		t.Errorf("SourceName = %q", got)
	}
	if got := GeneratedHeaderName("AUnreal_Foo_1"); got != "AUnreal_Foo_1.generated.h" {
		t.Errorf("GeneratedHeaderName = %q", got)
	}
}

func TestLevels_Chain(t *testing.T) {
	levels := DefaultNaming().Levels(ModelMyRTTI, "Foo", 3)

	if len(levels) != 3 {
		t.Fatalf("expected 3 levels, got %d", len(levels))
	}
	if !levels[0].IsRoot || levels[0].ParentName != "" {
		t.Errorf("level 0 should be a parentless root, got %+v", levels[0])
	}
	for i := 1; i < len(levels); i++ {
		if levels[i].IsRoot {
			t.Errorf("level %d marked as root", i)
		}
		if levels[i].ParentName != levels[i-1].ClassName {
			t.Errorf("level %d parent = %q, want %q", i, levels[i].ParentName, levels[i-1].ClassName)
		}
		if levels[i].Index != i {
			t.Errorf("level %d index = %d", i, levels[i].Index)
		}
	}
}

func TestLevels_NonPositiveDepth(t *testing.T) {
	for _, depth := range []int{0, -3} {
		if levels := DefaultNaming().Levels(ModelUnreal, "Foo", depth); levels != nil {
			t.Errorf("Levels(depth=%d) = %v, want nil", depth, levels)
		}
	}
}

func TestLevels_Deterministic(t *testing.T) {
	n := DefaultNaming()
	first := n.Levels(ModelUnreal, "Foo", 5)
	second := n.Levels(ModelUnreal, "Foo", 5)

	for i := range first {
		if first[i] != second[i] {
			t.Errorf("level %d differs between calls: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestGeneratePlan_Foo3(t *testing.T) {
	plan := GeneratePlan(PlanInput{NameBase: "Foo", Depth: 3, Naming: DefaultNaming()})

	if len(plan.Files) != 7 {
		t.Fatalf("expected 7 planned files, got %d", len(plan.Files))
	}
	if plan.Count(ModelMyRTTI) != 1 {
		t.Errorf("expected 1 MyRTTI file, got %d", plan.Count(ModelMyRTTI))
	}
	if plan.Count(ModelUnreal) != 6 {
		t.Errorf("expected 6 Unreal files, got %d", plan.Count(ModelUnreal))
	}

	myrtti := plan.Files[0]
	if myrtti.Path != "myrtti_Foo.h" {
		t.Errorf("first file = %q, want myrtti_Foo.h", myrtti.Path)
	}
	if len(myrtti.Classes) != 3 {
		t.Errorf("MyRTTI header declares %d classes, want 3", len(myrtti.Classes))
	}

	expected := []struct {
		path    string
		kind    FileKind
		include string
	}{
		{"AUnreal_Foo_0.h", KindHeader, ""},
		{"AUnreal_Foo_0.cpp", KindSource, "AUnreal_Foo_0.h"},
		{"AUnreal_Foo_1.h", KindHeader, "AUnreal_Foo_0.h"},
		{"AUnreal_Foo_1.cpp", KindSource, "AUnreal_Foo_1.h"},
		{"AUnreal_Foo_2.h", KindHeader, "AUnreal_Foo_1.h"},
		{"AUnreal_Foo_2.cpp", KindSource, "AUnreal_Foo_2.h"},
	}
	for i, exp := range expected {
		f := plan.Files[i+1]
		if f.Path != exp.path || f.Kind != exp.kind || f.Include != exp.include {
			t.Errorf("files[%d] = {%q %s %q}, want {%q %s %q}", i+1, f.Path, f.Kind, f.Include, exp.path, exp.kind, exp.include)
		}
	}
}

func TestGeneratePlan_DepthOne(t *testing.T) {
	plan := GeneratePlan(PlanInput{NameBase: "Solo", Depth: 1, Naming: DefaultNaming()})

	if len(plan.Files) != 3 {
		t.Fatalf("expected 3 planned files, got %d", len(plan.Files))
	}
	if plan.Files[1].Include != "" {
		t.Errorf("root header should not include a hierarchy header, got %q", plan.Files[1].Include)
	}
}

func TestGeneratePlan_Empty(t *testing.T) {
	plan := GeneratePlan(PlanInput{NameBase: "Foo", Depth: 0, Naming: DefaultNaming()})
	if len(plan.Files) != 0 {
		t.Errorf("expected no files for depth 0, got %d", len(plan.Files))
	}
}
