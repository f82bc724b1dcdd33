package ctxutil

import (
	"context"
	"testing"
)

func TestEntryFromContext(t *testing.T) {
	ctx := context.Background()
	if got := EntryFromContext(ctx); got != "" {
		t.Errorf("EntryFromContext(empty) = %q, want empty", got)
	}

	ctx = WithEntry(ctx, "deep")
	if got := EntryFromContext(ctx); got != "deep" {
		t.Errorf("EntryFromContext() = %q, want deep", got)
	}
}
