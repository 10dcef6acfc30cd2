package domain

// Template is the command (or ordered command sequence) bound to a
// category/action pair. It is either literal or rendered from a single
// parameter.
type Template struct {
	literal []string
	render  func(param string) ([]string, error)
}

func Literal(commands ...string) Template {
	return Template{literal: commands}
}

func Templated(render func(param string) ([]string, error)) Template {
	return Template{render: render}
}

func (t Template) NeedsParam() bool {
	return t.render != nil
}

// Commands returns the commands to run in order. The parameter is ignored
// for literal templates.
func (t Template) Commands(param string) ([]string, error) {
	if t.render == nil {
		out := make([]string, len(t.literal))
		copy(out, t.literal)
		return out, nil
	}
	return t.render(param)
}

// CommandResult is what a shell invocation produced.
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

func (r CommandResult) Success() bool {
	return r.ExitCode == 0
}
