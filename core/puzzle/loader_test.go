package puzzle

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"numex-core/rpn"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "puzzles.tsv")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadTSV(t *testing.T) {
	p := writeTemp(t, "p1 1,2,3,4 10 B\n#comment\n\np2 3,5 8\n")
	ps, err := LoadTSV(p)
	if err != nil {
		t.Fatal(err)
	}
	if len(ps) != 2 {
		t.Fatalf("got %d puzzles", len(ps))
	}
	if ps[0].ID != "p1" || !reflect.DeepEqual(ps[0].Numbers, []int{1, 2, 3, 4}) ||
		ps[0].Target != 10 || ps[0].Level != rpn.LevelBasic {
		t.Fatalf("p1: %+v", ps[0])
	}
	if ps[1].Level != rpn.LevelBasic {
		t.Fatalf("missing level should default to B: %+v", ps[1])
	}
}

func TestLoadTSVErrors(t *testing.T) {
	cases := []struct {
		name, content string
	}{
		{"field count", "p1 1,2\n"},
		{"bad target", "p1 1,2 x\n"},
		{"bad level", "p1 1,2 3 9\n"},
		{"bad number", "p1 1,a 3 B\n"},
		{"negative number", "p1 1,-2 3 B\n"},
	}
	for _, c := range cases {
		if _, err := LoadTSV(writeTemp(t, c.content)); err == nil {
			t.Errorf("%s: expected error", c.name)
		}
	}
}

func TestParseNumbers(t *testing.T) {
	got, err := ParseNumbers("1, 5,9,9")
	if err != nil || !reflect.DeepEqual(got, []int{1, 5, 9, 9}) {
		t.Fatalf("ParseNumbers: %v %v", got, err)
	}
	if _, err := ParseNumbers(""); err == nil {
		t.Fatal("empty list must error")
	}
}
