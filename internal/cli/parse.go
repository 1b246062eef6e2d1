package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/factorkeys/pkg/perm"
)

// parseMapping parses a relabeling string like "5=1,2=0" into a sparse map.
func parseMapping(s string) (perm.Map[int], error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("need at least one old=new pair")
	}
	m := make(perm.Map[int])
	for _, pair := range strings.Split(s, ",") {
		from, to, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("pair %q is not old=new", pair)
		}
		k, err := parseKey(from)
		if err != nil {
			return nil, err
		}
		v, err := parseKey(to)
		if err != nil {
			return nil, err
		}
		if _, dup := m[k]; dup {
			return nil, fmt.Errorf("key %d mapped twice", k)
		}
		m[k] = v
	}
	if _, err := m.Inverse(); err != nil {
		return nil, err
	}
	return m, nil
}

// parseIndices parses a comma-separated list like "1,0,2" into a slice of indices.
func parseIndices(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("need at least one index")
	}
	parts := strings.Split(s, ",")
	result := make([]int, len(parts))
	for i, p := range parts {
		n, err := parseKey(p)
		if err != nil {
			return nil, err
		}
		result[i] = n
	}
	return result, nil
}

func parseKey(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid key %q", s)
	}
	return n, nil
}
