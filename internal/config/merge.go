package config

// Merge combines the global and project layers into an effective
// Config, returning a new value without mutating either input.
// Either layer may be nil (missing file).
//
// Scalars and settings: the project layer wins field-by-field when it
// sets a value. Hook lists: concatenated, global hooks first, order
// preserved within each layer.
func Merge(global, project *File) Config {
	cfg := Default()

	for _, layer := range []*File{global, project} {
		if layer == nil {
			continue
		}
		if layer.WorktreeDir != "" {
			cfg.WorktreeDir = layer.WorktreeDir
		}
		if layer.WorktreeDirFallback != "" {
			cfg.WorktreeDirFallback = layer.WorktreeDirFallback
		}
		if layer.Settings.AutoCleanup != nil {
			cfg.Settings.AutoCleanup = *layer.Settings.AutoCleanup
		}
		if layer.Settings.ConfirmDelete != nil {
			cfg.Settings.ConfirmDelete = *layer.Settings.ConfirmDelete
		}
		if layer.Settings.TrackRemote != nil {
			cfg.Settings.TrackRemote = *layer.Settings.TrackRemote
		}
	}

	cfg.Hooks = HookSet{
		PostCreate: concatHooks(global, project, EventPostCreate),
		PreSwitch:  concatHooks(global, project, EventPreSwitch),
		PostDelete: concatHooks(global, project, EventPostDelete),
	}

	return cfg
}

// concatHooks returns a fresh slice with the global hooks for an event
// followed by the project hooks. Never mutates the inputs.
func concatHooks(global, project *File, event Event) []Hook {
	var globalHooks, projectHooks []Hook
	if global != nil {
		globalHooks = global.Hooks.ForEvent(event)
	}
	if project != nil {
		projectHooks = project.Hooks.ForEvent(event)
	}

	if len(globalHooks)+len(projectHooks) == 0 {
		return nil
	}

	merged := make([]Hook, 0, len(globalHooks)+len(projectHooks))
	merged = append(merged, globalHooks...)
	merged = append(merged, projectHooks...)
	return merged
}
