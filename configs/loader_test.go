package configs

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

var testSchema = `
tape?: {
	size?: int
	growth?: int
}
prompt?: string
radii?: [...int]
`

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{"test.cue"}, testSchema)

	var size int
	err := loader.AssignFirst("tape.size", &size)
	if err != nil {
		t.Fatal(err)
	}
	if size != 100 {
		t.Fatalf("got %v", size)
	}

	var radii []int
	err = loader.AssignFirst("radii", &radii)
	if err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", radii); str != "[1 2 3]" {
		t.Fatalf("got %s", str)
	}

	err = loader.AssignFirst("tape.origin", &size)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}

}

func TestLoaderIterCueValues(t *testing.T) {
	loader := NewLoader([]string{
		"test.cue",
		"test2.cue",
	}, testSchema)

	var prompts []string
	for value, err := range loader.IterCueValues("prompt") {
		if err != nil {
			t.Fatal(err)
		}
		var s string
		if err := value.Decode(&s); err != nil {
			t.Fatal(err)
		}
		prompts = append(prompts, s)
	}
	if str := fmt.Sprintf("%q", prompts); str != `["bf> " "> "]` {
		t.Fatalf("got %s", str)
	}

	// first file wins
	var size int
	if err := loader.AssignFirst("tape.size", &size); err != nil {
		t.Fatal(err)
	}
	if size != 100 {
		t.Fatalf("got %v", size)
	}

	// later files fill what earlier ones leave unset
	loader = NewLoader([]string{
		"test2.cue",
		"test.cue",
	}, testSchema)
	if err := loader.AssignFirst("tape.growth", &size); err != nil {
		t.Fatal(err)
	}
	if size != 10 {
		t.Fatalf("got %v", size)
	}

}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{
		"bad.cue",
	}, testSchema)
	var str string
	err := loader.AssignFirst("unknown_field", &str)
	if err == nil {
		t.Fatal("should error")
	}
	if !strings.Contains(err.Error(), "bad.cue") {
		t.Fatalf("got %v", err)
	}
}

func TestMissingFile(t *testing.T) {
	loader := NewLoader([]string{
		"not-exists.cue",
	}, testSchema)
	var str string
	if err := loader.AssignFirst("prompt", &str); err == nil {
		t.Fatal("should error")
	}
}
