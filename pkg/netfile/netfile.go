// Package netfile reads and writes the TOML documents used by the
// factorkeys CLI to describe a net of conditionals and a relabeling.
//
// A document looks like:
//
//	[[conditional]]
//	frontals = [5]
//	parents  = [2, 9]
//
//	[permutation]
//	map = { "5" = 1, "2" = 0, "9" = 2 }
//
//	[options]
//	policy = "validated"
//	separator_only = false
//
// The permutation table is optional. It holds either a sparse map from old
// key to new key, where unlisted keys stay put, or a dense table indexed by
// old key. Keys are non-negative integers.
package netfile

import (
	"bytes"
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/factorkeys/pkg/bayesnet"
	"github.com/matzehuels/factorkeys/pkg/errors"
	"github.com/matzehuels/factorkeys/pkg/inference"
	"github.com/matzehuels/factorkeys/pkg/perm"
	"github.com/matzehuels/factorkeys/pkg/reindex"
)

// Document is the decoded form of a net file.
type Document struct {
	Conditionals []Conditional `toml:"conditional"`
	Permutation  *Permutation  `toml:"permutation,omitempty"`
	Options      Options       `toml:"options"`
}

// Conditional lists the frontal and parent keys of one conditional.
type Conditional struct {
	Frontals []int `toml:"frontals"`
	Parents  []int `toml:"parents"`
}

// Permutation is either a sparse map or a dense table. Exactly one must be
// set.
type Permutation struct {
	Map   map[string]int `toml:"map,omitempty"`
	Table []int          `toml:"table,omitempty"`
}

// Options mirrors reindex.Options in document form.
type Options struct {
	Policy        string `toml:"policy,omitempty"`
	SeparatorOnly bool   `toml:"separator_only"`
}

// Load reads and decodes the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "net file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read %s", path)
	}
	return Decode(data)
}

// Decode parses a document. Unknown tables or keys are rejected so typos do
// not silently drop conditionals.
func Decode(data []byte) (*Document, error) {
	var doc Document
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode net file")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		names := make([]string, len(undecoded))
		for i, k := range undecoded {
			names[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown keys: %s", strings.Join(names, ", "))
	}
	return &doc, nil
}

// Encode writes doc as TOML.
func Encode(w io.Writer, doc *Document) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode net file")
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// Net builds a net from the document's conditionals.
func (d *Document) Net() (*bayesnet.Net[int], error) {
	net := bayesnet.New[int]()
	for i, c := range d.Conditionals {
		keys := slices.Concat(c.Frontals, c.Parents)
		if len(keys) == 0 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "conditional %d has no keys", i)
		}
		cond, err := inference.FromSlice(keys, len(c.Frontals))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "conditional %d", i)
		}
		if err := net.Push(cond); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "conditional %d", i)
		}
	}
	return net, nil
}

// HasPermutation reports whether the document carries a permutation table.
func (d *Document) HasPermutation() bool {
	return d.Permutation != nil && (d.Permutation.Map != nil || d.Permutation.Table != nil)
}

// Inverse returns the document's relabeling. A document without one yields
// the identity.
func (d *Document) Inverse() (inference.Permutation[int], error) {
	if !d.HasPermutation() {
		return perm.Map[int]{}, nil
	}
	p := d.Permutation
	if p.Map != nil && p.Table != nil {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "permutation sets both map and table")
	}
	if p.Table != nil {
		table, err := perm.FromSlice(p.Table)
		if err != nil {
			return nil, err
		}
		return table, nil
	}

	m := make(perm.Map[int], len(p.Map))
	for from, to := range p.Map {
		k, err := strconv.Atoi(from)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "permutation key %q", from)
		}
		m[k] = to
	}
	if _, err := m.Inverse(); err != nil {
		return nil, err
	}
	return m, nil
}

// ReindexOptions converts the document options. An empty policy means
// trusted.
func (d *Document) ReindexOptions() (reindex.Options, error) {
	opts := reindex.Options{SeparatorOnly: d.Options.SeparatorOnly}
	if d.Options.Policy != "" {
		policy, err := inference.ParsePolicy(d.Options.Policy)
		if err != nil {
			return opts, err
		}
		opts.Policy = policy
	}
	return opts, nil
}

// FromNet returns a document describing net, with the given options and no
// permutation. Use it to write a net back out after reindexing.
func FromNet(net *bayesnet.Net[int], opts Options) *Document {
	doc := &Document{Options: opts}
	for _, c := range net.All() {
		doc.Conditionals = append(doc.Conditionals, Conditional{
			Frontals: c.Frontals().Slice(),
			Parents:  c.Parents().Slice(),
		})
	}
	return doc
}
