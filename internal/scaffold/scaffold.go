// Package scaffold emits the feature-page file set for a normalized name.
package scaffold

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/getpage/cli/internal/name"
	"github.com/getpage/cli/internal/templates"
)

// Options controls emission behavior.
type Options struct {
	// Force overwrites files that already exist.
	Force bool

	// DryRun reports every action without touching the filesystem.
	DryRun bool
}

// ActionKind classifies one reported emitter action.
type ActionKind int

const (
	// ActionMkdir is a directory creation.
	ActionMkdir ActionKind = iota

	// ActionWrite is a file write.
	ActionWrite

	// ActionSkip is a file left untouched because it exists and Force is off.
	ActionSkip
)

// Action is one reported emitter step, in execution order.
type Action struct {
	Kind ActionKind
	Path string
}

// Verb returns the short verb naming the action, used to pick its
// console style.
func (k ActionKind) Verb() string {
	switch k {
	case ActionMkdir:
		return "mkdir"
	case ActionWrite:
		return "write"
	case ActionSkip:
		return "skip"
	default:
		return ""
	}
}

// String renders the action as its console line.
func (a Action) String() string {
	switch a.Kind {
	case ActionMkdir:
		return "mkdir -p " + a.Path
	case ActionWrite:
		return "write: " + a.Path
	case ActionSkip:
		return "skip (exists): " + a.Path
	default:
		return a.Path
	}
}

// Result describes a completed emission.
type Result struct {
	// Pascal is the derived identifier name.
	Pascal string

	// Dir is the feature directory path.
	Dir string

	// Files lists all five generated file paths in role order, written
	// or not.
	Files []string

	// Actions lists every mkdir/write/skip in execution order.
	Actions []Action
}

// Scaffolder writes the feature file set through an afero filesystem.
type Scaffolder struct {
	fs afero.Fs
}

// New creates a Scaffolder backed by the OS filesystem.
func New() *Scaffolder {
	return NewWithFs(afero.NewOsFs())
}

// NewWithFs creates a Scaffolder backed by the given filesystem.
func NewWithFs(fs afero.Fs) *Scaffolder {
	return &Scaffolder{fs: fs}
}

// Generate emits the feature directory, the widget subdirectory, and the
// five role files under root. Existing directories are not an error;
// existing files are skipped unless opts.Force. Under opts.DryRun every
// action is still reported but nothing is mutated.
func (s *Scaffolder) Generate(n name.Name, root string, opts Options) (*Result, error) {
	dir := filepath.Join(root, n.Snake)
	widgetDir := filepath.Join(dir, templates.WidgetDir)

	res := &Result{
		Pascal: n.Pascal,
		Dir:    dir,
	}

	for _, d := range []string{dir, widgetDir} {
		res.Actions = append(res.Actions, Action{Kind: ActionMkdir, Path: d})
		if opts.DryRun {
			continue
		}
		if err := s.fs.MkdirAll(d, 0o755); err != nil {
			return nil, fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	data := templates.TemplateData{Snake: n.Snake, Pascal: n.Pascal}

	for _, role := range templates.Roles() {
		path := filepath.Join(dir, templates.FileName(role, n.Snake))
		res.Files = append(res.Files, path)

		exists, err := afero.Exists(s.fs, path)
		if err != nil {
			return nil, fmt.Errorf("checking %s: %w", path, err)
		}

		if exists && !opts.Force {
			res.Actions = append(res.Actions, Action{Kind: ActionSkip, Path: path})
			continue
		}

		content, err := templates.RenderRole(role, data)
		if err != nil {
			return nil, err
		}

		res.Actions = append(res.Actions, Action{Kind: ActionWrite, Path: path})
		if opts.DryRun {
			continue
		}
		if err := afero.WriteFile(s.fs, path, content, 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", path, err)
		}
	}

	return res, nil
}
