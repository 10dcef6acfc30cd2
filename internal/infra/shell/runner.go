package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"

	"github.com/mattn/go-shellwords"

	"cmd-agent/internal/domain"
)

// Runner executes command lines. With an empty shell the line is split into
// argv with POSIX quoting rules and run directly, so no shell expansion or
// operators apply; otherwise it is passed to "<shell> -c".
type Runner struct {
	shell  string
	logger *slog.Logger
}

func NewRunner(shell string, logger *slog.Logger) *Runner {
	return &Runner{
		shell:  shell,
		logger: logger,
	}
}

func (r *Runner) Run(ctx context.Context, line string) (domain.CommandResult, error) {
	cmd, err := Command(ctx, r.shell, line)
	if err != nil {
		return domain.CommandResult{}, err
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.logger.Debug("running command", "argv", cmd.Args)

	err = cmd.Run()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return domain.CommandResult{
			ExitCode: exitErr.ExitCode(),
			Stdout:   stdout.String(),
			Stderr:   stderr.String(),
		}, nil
	}
	if err != nil {
		return domain.CommandResult{}, fmt.Errorf("running %s: %w", cmd.Args[0], err)
	}

	return domain.CommandResult{
		ExitCode: 0,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}, nil
}

// Command builds an *exec.Cmd for line without starting it.
func Command(ctx context.Context, shell, line string) (*exec.Cmd, error) {
	if shell != "" {
		return exec.CommandContext(ctx, shell, "-c", line), nil
	}

	args, err := Split(line)
	if err != nil {
		return nil, err
	}
	return exec.CommandContext(ctx, args[0], args[1:]...), nil
}

// Split tokenizes line without env or backtick expansion. Unquoted shell
// operators are rejected rather than silently truncating the command.
func Split(line string) ([]string, error) {
	p := shellwords.NewParser()
	p.ParseEnv = false
	p.ParseBacktick = false

	args, err := p.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("parsing command %q: %w", line, err)
	}
	if p.Position > 0 {
		return nil, fmt.Errorf("parsing command %q: shell operators are not supported without a shell", line)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("empty command")
	}
	return args, nil
}
