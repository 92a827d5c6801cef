// Package binds rewrites Hyprland movefocus keybindings to run hyprnav and back.
package binds

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strings"

	"hyprnav/internal/nav"
)

// Binding is one `bind = <mod>, <key>, movefocus, <code>` line.
type Binding struct {
	Key       string
	Direction nav.Direction
}

// Bindings is what a scan of the Hyprland config found.
type Bindings struct {
	Modifier string
	Found    []Binding
	// Variables holds `$name = value` definitions, keyed with the leading $.
	Variables map[string]string
}

var variableRe = regexp.MustCompile(`^\s*(\$[A-Za-z_][A-Za-z0-9_]*)\s*=\s*(.*?)\s*$`)

func movefocusRe(modifier string) *regexp.Regexp {
	return regexp.MustCompile(
		`^\s*bind\s*=\s*` + regexp.QuoteMeta(modifier) +
			`\s*,\s*([^,]+?)\s*,\s*movefocus\s*,\s*([lrud])\b`)
}

// Scan collects movefocus bindings on modifier, in file order.
func Scan(r io.Reader, modifier string) Bindings {
	b := Bindings{
		Modifier:  modifier,
		Variables: make(map[string]string),
	}
	bindRe := movefocusRe(modifier)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.Index(line, "#"); i >= 0 {
			line = line[:i]
		}

		if m := variableRe.FindStringSubmatch(line); m != nil {
			b.Variables[m[1]] = m[2]
			continue
		}

		m := bindRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		dir, ok := nav.DirectionFromCode(m[2])
		if !ok {
			continue
		}
		b.Found = append(b.Found, Binding{Key: strings.TrimSpace(m[1]), Direction: dir})
	}

	return b
}

// Load scans the Hyprland config at path. A missing or unreadable file yields
// an empty result together with the error, so callers can fall back to the
// default key set.
func Load(path, modifier string) (Bindings, error) {
	f, err := os.Open(path)
	if err != nil {
		return Scan(strings.NewReader(""), modifier), err
	}
	defer f.Close()

	return Scan(f, modifier), nil
}

// Expand substitutes config variables in mods, e.g. "$mainMod SHIFT".
// Unknown variables are left as written.
func (b Bindings) Expand(mods string) string {
	fields := strings.Fields(mods)
	for i, f := range fields {
		if v, ok := b.Variables[f]; ok {
			fields[i] = v
		}
	}
	return strings.Join(fields, " ")
}
