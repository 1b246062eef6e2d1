package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/factorkeys/pkg/errors"
	"github.com/matzehuels/factorkeys/pkg/inference"
	"github.com/matzehuels/factorkeys/pkg/netfile"
)

const testNet = `
[[conditional]]
frontals = [5]
parents  = [2, 9]

[[conditional]]
frontals = [2]
parents  = [9]

[[conditional]]
frontals = [9]

[permutation]
map = { "5" = 0, "2" = 1, "9" = 2 }
`

func writeNet(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "net.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.ExecuteContext(context.Background())
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	for _, name := range []string{"inspect", "permute", "dot", "completion"} {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("Find(%q) = %v, %v", name, cmd, err)
		}
	}
}

func TestInspectStrict(t *testing.T) {
	// 5 is frontal but sorts after its parents, so the raw net is not ordered.
	path := writeNet(t, testNet)
	if err := execute(t, "inspect", path); err != nil {
		t.Errorf("inspect error = %v", err)
	}
	err := execute(t, "inspect", "--strict", path)
	if !errors.Is(err, errors.ErrCodeOrderingViolation) {
		t.Errorf("inspect --strict error = %v, want ORDERING_VIOLATION", err)
	}
}

func TestInspectMissingFile(t *testing.T) {
	err := execute(t, "inspect", filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("inspect error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestPermuteWritesReindexedNet(t *testing.T) {
	path := writeNet(t, testNet)
	out := filepath.Join(t.TempDir(), "out.toml")

	if err := execute(t, "permute", "--policy", "validated", "-o", out, path); err != nil {
		t.Fatalf("permute error = %v", err)
	}

	doc, err := netfile.Load(out)
	if err != nil {
		t.Fatalf("Load(output) error = %v", err)
	}
	net, err := doc.Net()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := net.At(0).Render("X"), "X P( 0 | 1 2)"; got != want {
		t.Errorf("first conditional = %q, want %q", got, want)
	}
	if err := net.Validate(); err != nil {
		t.Errorf("reindexed net Validate() = %v", err)
	}
	if doc.Options.Policy != "validated" {
		t.Errorf("output policy = %q, want validated", doc.Options.Policy)
	}
}

func TestPermuteValidatedRejects(t *testing.T) {
	path := writeNet(t, testNet)
	err := execute(t, "permute", "--policy", "validated", "--map", "5=9,9=5", path)
	if !errors.Is(err, errors.ErrCodeOrderingViolation) {
		t.Errorf("permute error = %v, want ORDERING_VIOLATION", err)
	}
}

func TestPermuteFlagErrors(t *testing.T) {
	path := writeNet(t, testNet)
	tests := []struct {
		name string
		args []string
	}{
		{"bad policy", []string{"--policy", "sometimes"}},
		{"bad map", []string{"--map", "5-1"}},
		{"bad table", []string{"--table", "0,0"}},
		{"map and table", []string{"--map", "5=1", "--table", "0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"permute"}, tt.args...)
			if err := execute(t, append(args, path)...); err == nil {
				t.Errorf("permute %v succeeded, want error", tt.args)
			}
		})
	}
}

func TestPermuteOptionsLayering(t *testing.T) {
	doc, err := netfile.Decode([]byte("[options]\npolicy = \"validated\"\nseparator_only = true\n"))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name    string
		flags   permuteFlags
		changed []string
		want    inference.Policy
		wantSep bool
	}{
		{"file only", permuteFlags{}, nil, inference.Validated, true},
		{"policy flag wins", permuteFlags{policy: "trusted"}, []string{"policy"}, inference.Trusted, true},
		{"separator flag wins", permuteFlags{separatorOnly: false}, []string{"separator-only"}, inference.Validated, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			changed := func(name string) bool {
				for _, c := range tt.changed {
					if c == name {
						return true
					}
				}
				return false
			}
			opts, err := tt.flags.options(doc, changed)
			if err != nil {
				t.Fatalf("options() error = %v", err)
			}
			if opts.Policy != tt.want || opts.SeparatorOnly != tt.wantSep {
				t.Errorf("options() = %+v, want policy %v separator %v", opts, tt.want, tt.wantSep)
			}
		})
	}
}

func TestDotExport(t *testing.T) {
	path := writeNet(t, testNet)
	out := filepath.Join(t.TempDir(), "net.dot")

	if err := execute(t, "dot", "--prefix", "x", "-o", out, path); err != nil {
		t.Fatalf("dot error = %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"digraph", `label="x5"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("dot output missing %q:\n%s", want, data)
		}
	}

	if err := execute(t, "dot", "--format", "png", path); err == nil {
		t.Error("dot --format png succeeded, want error")
	}
}

func TestCompletion(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"completion", "bash"})
	if err := root.Execute(); err != nil {
		t.Fatalf("completion error = %v", err)
	}
	if !strings.Contains(buf.String(), "factorkeys") {
		t.Error("bash completion does not mention factorkeys")
	}
}

func TestExampleNets(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "examples", "nets", "*.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Skip("no example nets")
	}
	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "out.toml")
			if err := execute(t, "permute", "-o", out, path); err != nil {
				t.Errorf("permute %s error = %v", path, err)
			}
		})
	}
}

func TestPermuteTableOutsideKeyRange(t *testing.T) {
	// The table covers 0..2 but the net uses keys 2, 5 and 9.
	path := writeNet(t, testNet)
	for _, policy := range []string{"trusted", "validated"} {
		err := execute(t, "permute", "--policy", policy, "--table", "1,0,2", path)
		if !errors.Is(err, errors.ErrCodeKeyOutOfDomain) {
			t.Errorf("permute --policy %s error = %v, want KEY_OUT_OF_DOMAIN", policy, err)
		}
	}
}

func TestLabelMustBeSingleLine(t *testing.T) {
	path := writeNet(t, testNet)
	for _, command := range []string{"inspect", "permute"} {
		err := execute(t, command, "--label", "a\nb", path)
		if !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("%s --label error = %v, want INVALID_INPUT", command, err)
		}
	}
}
