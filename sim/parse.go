package sim

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ParseNetwork reads a wiring description, one module per line:
//
//	broadcaster -> a, b
//	%a -> con
//	&con -> output
//
// The broadcaster is named by keyword, flip-flops are prefixed with % and
// conjunctions with &. Destinations that are never declared become sinks.
// Blank lines are skipped. Any grammar violation yields ErrMalformedInput.
func ParseNetwork(r io.Reader) (*Network, error) {
	b := NewNetworkBuilder()
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		name, kind, outputs, err := parseLine(text)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		b.Add(name, kind, outputs...)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading wiring description")
	}
	return b.Build()
}

// ParseNetworkString is ParseNetwork over an in-memory description.
func ParseNetworkString(s string) (*Network, error) {
	return ParseNetwork(strings.NewReader(s))
}

// LoadNetwork reads a network from path. Files ending in .yaml or .yml are
// decoded as a NetworkSpec; anything else is parsed with ParseNetwork.
func LoadNetwork(path string) (*Network, error) {
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		spec, err := LoadNetworkSpec(path)
		if err != nil {
			return nil, err
		}
		return spec.Build()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening wiring description")
	}
	defer f.Close()
	return ParseNetwork(f)
}

func parseLine(text string) (string, Kind, []string, error) {
	left, right, found := strings.Cut(text, "->")
	if !found {
		return "", 0, nil, malformed("missing \"->\" separator in %q", text)
	}
	left = strings.TrimSpace(left)

	var name string
	var kind Kind
	switch {
	case left == BroadcasterName:
		name, kind = left, KindBroadcaster
	case strings.HasPrefix(left, "%"):
		name, kind = left[1:], KindFlipFlop
	case strings.HasPrefix(left, "&"):
		name, kind = left[1:], KindConjunction
	default:
		return "", 0, nil, malformed("unrecognized module %q", left)
	}
	if name == "" {
		return "", 0, nil, malformed("missing name after %q", kind.Prefix())
	}
	if err := checkName(name); err != nil {
		return "", 0, nil, err
	}

	var outputs []string
	if right = strings.TrimSpace(right); right != "" {
		for _, dest := range strings.Split(right, ",") {
			dest = strings.TrimSpace(dest)
			if dest == "" {
				return "", 0, nil, malformed("empty destination for %q", name)
			}
			if err := checkName(dest); err != nil {
				return "", 0, nil, errors.WithMessagef(err, "destination of %q", name)
			}
			outputs = append(outputs, dest)
		}
	}
	return name, kind, outputs, nil
}
