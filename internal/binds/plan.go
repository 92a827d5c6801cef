package binds

import (
	"fmt"

	"hyprnav/internal/nav"
)

// Command is one `hyprctl keyword <Keyword> <Value>` call.
type Command struct {
	Keyword string
	Value   string
}

func (c Command) String() string {
	return c.Keyword + " " + c.Value
}

func unbind(mods, key string) Command {
	return Command{Keyword: "unbind", Value: fmt.Sprintf("%s, %s", mods, key)}
}

func bind(mods, key, dispatcher, arg string) Command {
	return Command{Keyword: "bind", Value: fmt.Sprintf("%s, %s, %s, %s", mods, key, dispatcher, arg)}
}

// Options controls how plans are built.
type Options struct {
	// Binary is the command bound keys execute, followed by the direction.
	Binary string
	// Fallback is the modifier for the default arrow-key set.
	Fallback string
}

// modifier resolves the scanned modifier, falling back when it is an
// undefined config variable hyprctl could not interpret.
func (b Bindings) modifier(o Options) string {
	mods := b.Expand(b.Modifier)
	if mods == "" || mods[0] == '$' {
		return o.Fallback
	}
	return mods
}

func releaseArrows(o Options) []Command {
	cmds := make([]Command, 0, len(nav.Directions))
	for _, d := range nav.Directions {
		cmds = append(cmds, unbind(o.Fallback, d.String()))
	}
	return cmds
}

// EnablePlan routes the found movefocus keys to hyprnav. Without any found
// binding the fallback modifier plus arrow keys are bound instead.
func EnablePlan(b Bindings, o Options) []Command {
	cmds := releaseArrows(o)

	if len(b.Found) == 0 {
		for _, d := range nav.Directions {
			cmds = append(cmds, bind(o.Fallback, d.String(), "exec", o.Binary+" "+d.String()))
		}
		return cmds
	}

	mods := b.modifier(o)
	for _, f := range b.Found {
		cmds = append(cmds,
			unbind(mods, f.Key),
			bind(mods, f.Key, "exec", o.Binary+" "+f.Direction.String()))
	}
	return cmds
}

// DisablePlan restores movefocus on the found keys, or on the modifier plus
// arrow keys when none were found.
func DisablePlan(b Bindings, o Options) []Command {
	cmds := releaseArrows(o)
	mods := b.modifier(o)

	if len(b.Found) == 0 {
		for _, d := range []nav.Direction{nav.Left, nav.Right, nav.Up, nav.Down} {
			cmds = append(cmds, bind(mods, d.String(), "movefocus", d.Code()))
		}
		return cmds
	}

	for _, f := range b.Found {
		cmds = append(cmds,
			unbind(mods, f.Key),
			bind(mods, f.Key, "movefocus", f.Direction.Code()))
	}
	return cmds
}
