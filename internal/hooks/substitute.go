package hooks

import "strings"

// Substitute replaces {branch}, {path}, {project}, {date}, and
// {short_hash} in s with values from ctx, plus {key} for every entry
// of extra (hook env values). The replacement is a single pass:
// substituted values are never re-expanded, and unknown {tokens} pass
// through untouched.
func Substitute(s string, ctx Context, extra map[string]string) string {
	pairs := []string{
		"{branch}", ctx.Branch,
		"{path}", ctx.Path,
		"{project}", ctx.Project,
		"{date}", ctx.Date,
		"{short_hash}", ctx.ShortHash,
	}
	for key, value := range extra {
		pairs = append(pairs, "{"+key+"}", value)
	}
	// strings.Replacer scans the input once and never rescans
	// replaced text, so substituted values are not expanded again.
	return strings.NewReplacer(pairs...).Replace(s)
}
