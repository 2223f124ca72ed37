package gosk

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	g "github.com/reoring/goskema/dsl"

	"github.com/thonymg/maybe-zod/pkg/maybe"
)

func TestWrap_ObjectSuccess(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	user, err := g.Object().
		Field("id", g.StringOf[string]()).
		Field("name", g.StringOf[string]()).
		Require("id", "name").
		UnknownStrict().
		Build()
	if err != nil {
		t.Fatalf("schema build failed: %v", err)
	}

	v := Wrap(user).SafeValidate(ctx, map[string]any{"id": "u_1", "name": "Ada"})
	if !v.OK {
		t.Fatalf("expected pass, got issues: %v", v.Issues)
	}
	if v.Data["name"] != "Ada" {
		t.Fatalf("expected validated data back, got: %#v", v.Data)
	}
}

func TestWrap_ObjectFailureKeepsIssueShape(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	user, err := g.Object().
		Field("id", g.StringOf[string]()).
		Field("name", g.StringOf[string]()).
		Require("id", "name").
		UnknownStrict().
		Build()
	if err != nil {
		t.Fatalf("schema build failed: %v", err)
	}

	v := Wrap(user).SafeValidate(ctx, map[string]any{"nick": "x"})
	if v.OK || len(v.Issues) == 0 {
		t.Fatalf("expected issues for missing required fields, got: %+v", v)
	}
	for i, it := range v.Issues {
		if it.Code == "" {
			t.Fatalf("issue %d lost its code: %v", i, it)
		}
	}

	// the diagnostic round-trips with one entry per engine issue
	diag := maybe.FailFrom[map[string]any](v.Issues).Diagnostic()
	decoded, err := maybe.DecodeIssues(diag)
	if err != nil || len(decoded) != len(v.Issues) {
		t.Fatalf("expected %d decoded entries, got %d (err=%v)", len(v.Issues), len(decoded), err)
	}
}

func TestWrap_ArrayMin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tags := Wrap[[]string](g.Array(g.String()).Min(1))

	if v := tags.SafeValidate(ctx, []any{"dev"}); !v.OK || len(v.Data) != 1 {
		t.Fatalf("expected pass with one element, got: %+v", v)
	}
	if v := tags.SafeValidate(ctx, []any{}); v.OK || len(v.Issues) == 0 {
		t.Fatalf("expected too_short issues for empty array, got: %+v", v)
	}
}

func TestWrap_ArrayOfNumbers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	nums := Wrap[[]json.Number](g.Array(g.NumberJSON()))

	v := nums.SafeValidate(ctx, []any{1.0, 2.5})
	if !v.OK || len(v.Data) != 2 {
		t.Fatalf("expected two numbers, got: %+v", v)
	}

	if v := nums.SafeValidate(ctx, []any{"not a number"}); v.OK {
		t.Fatalf("expected invalid_type for string element")
	}
}

func TestWrap_Async(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	s := Wrap[string](g.String())

	v, err := s.SafeValidateAsync(ctx, "hello").Await(ctx)
	if err != nil || !v.OK || v.Data != "hello" {
		t.Fatalf("expected async pass, got: %+v err=%v", v, err)
	}

	v, err = s.SafeValidateAsync(ctx, 1).Await(ctx)
	if err != nil || v.OK || len(v.Issues) == 0 {
		t.Fatalf("rule failures surface as verdicts, not rejections: %+v err=%v", v, err)
	}
}
