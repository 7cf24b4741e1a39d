package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Event identifies a worktree lifecycle event that hooks attach to.
type Event string

const (
	EventPostCreate Event = "post_create"
	EventPreSwitch  Event = "pre_switch"
	EventPostDelete Event = "post_delete"
)

// Events returns all lifecycle events in declaration order.
func Events() []Event {
	return []Event{EventPostCreate, EventPreSwitch, EventPostDelete}
}

// FailurePolicy controls what happens when a hook fails.
type FailurePolicy string

const (
	FailAbort    FailurePolicy = "abort"    // stop the event, remaining hooks don't run
	FailContinue FailurePolicy = "continue" // keep going silently
	FailWarn     FailurePolicy = "warn"     // keep going, print a warning
)

// Hook defines a single lifecycle hook.
type Hook struct {
	Name       string            `toml:"name"`
	Command    string            `toml:"command"`
	WorkingDir string            `toml:"working_dir"`
	Timeout    int               `toml:"timeout"` // seconds
	Env        map[string]string `toml:"env,omitempty"`
	OnFailure  FailurePolicy     `toml:"on_failure"`
}

// HookSet holds the hook lists for each lifecycle event.
// TOML arrays-of-tables decode in document order, which is the
// execution order.
type HookSet struct {
	PostCreate []Hook `toml:"post_create,omitempty"`
	PreSwitch  []Hook `toml:"pre_switch,omitempty"`
	PostDelete []Hook `toml:"post_delete,omitempty"`
}

// ForEvent returns the hook list for the given event.
func (h HookSet) ForEvent(event Event) []Hook {
	switch event {
	case EventPostCreate:
		return h.PostCreate
	case EventPreSwitch:
		return h.PreSwitch
	case EventPostDelete:
		return h.PostDelete
	}
	return nil
}

// Settings holds behavior toggles with all defaults resolved.
type Settings struct {
	AutoCleanup   bool `toml:"auto_cleanup"`
	ConfirmDelete bool `toml:"confirm_delete"`
	TrackRemote   bool `toml:"track_remote"`
}

// Config is the effective configuration after merging all layers.
// Every field carries a concrete value.
type Config struct {
	WorktreeDir         string   `toml:"worktree_dir"`
	WorktreeDirFallback string   `toml:"worktree_dir_fallback"`
	Hooks               HookSet  `toml:"hooks"`
	Settings            Settings `toml:"settings"`
}

// Defaults for fields absent from every layer.
const (
	DefaultWorktreeDir         = ".worktrees/{branch}"
	DefaultWorktreeDirFallback = "~/.worktrees/{project}/{branch}"
	DefaultWorkingDir          = "{path}"
	DefaultTimeout             = 300 // seconds
)

// Default returns the effective configuration with no layers applied.
func Default() Config {
	return Config{
		WorktreeDir:         DefaultWorktreeDir,
		WorktreeDirFallback: DefaultWorktreeDirFallback,
		Settings: Settings{
			AutoCleanup:   true,
			ConfirmDelete: true,
			TrackRemote:   true,
		},
	}
}

// File is one configuration layer (global or project) as loaded from
// disk. Pointer and zero-value fields mean "not set here" so the merge
// can tell absence from an explicit value.
type File struct {
	WorktreeDir         string       `toml:"worktree_dir"`
	WorktreeDirFallback string       `toml:"worktree_dir_fallback"`
	Hooks               HookSet      `toml:"hooks"`
	Settings            FileSettings `toml:"settings"`
}

// FileSettings mirrors Settings with presence tracking.
type FileSettings struct {
	AutoCleanup   *bool `toml:"auto_cleanup"`
	ConfirmDelete *bool `toml:"confirm_delete"`
	TrackRemote   *bool `toml:"track_remote"`
}

// GlobalPath returns the path of the global config file,
// ~/.config/wt/config.toml.
func GlobalPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "wt", "config.toml"), nil
}

// ProjectConfigFileName is the per-repo config file, placed at the
// main repository root.
const ProjectConfigFileName = ".wt.toml"

// ProjectPath returns the path of the project config file for a repo.
func ProjectPath(repoRoot string) string {
	return filepath.Join(repoRoot, ProjectConfigFileName)
}

// Load reads one configuration layer from path.
// Returns (nil, nil) if the file doesn't exist.
// Returns an error only on read, parse, or validation failure.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	for _, event := range Events() {
		hooks := f.Hooks.ForEvent(event)
		for i := range hooks {
			if err := normalizeHook(&hooks[i]); err != nil {
				return nil, fmt.Errorf("%s: hooks.%s[%d]: %w", path, event, i, err)
			}
		}
	}

	return &f, nil
}

// LoadGlobal reads the global config layer.
func LoadGlobal() (*File, error) {
	path, err := GlobalPath()
	if err != nil {
		return nil, nil
	}
	return Load(path)
}

// LoadProject reads the per-repo config layer from the main repo root.
func LoadProject(repoRoot string) (*File, error) {
	return Load(ProjectPath(repoRoot))
}

// normalizeHook validates required fields and fills per-hook defaults.
func normalizeHook(h *Hook) error {
	if h.Name == "" {
		return errors.New("hook name is required")
	}
	if h.Command == "" {
		return fmt.Errorf("hook %q: command is required", h.Name)
	}
	switch h.OnFailure {
	case "":
		h.OnFailure = FailAbort
	case FailAbort, FailContinue, FailWarn:
	default:
		return fmt.Errorf("hook %q: invalid on_failure %q: must be \"abort\", \"continue\", or \"warn\"", h.Name, h.OnFailure)
	}
	if h.WorkingDir == "" {
		h.WorkingDir = DefaultWorkingDir
	}
	if h.Timeout <= 0 {
		h.Timeout = DefaultTimeout
	}
	return nil
}
