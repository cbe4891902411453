package cmd

import "strings"

// argAliases maps multi-letter single-dash spellings onto their long flags.
// pflag shorthands are a single letter, so these are rewritten before parsing.
var argAliases = map[string]string{
	"-nr": "--no-recursive",
}

// listFlags take every following non-flag token as a value ("-t .py .txt").
// A bare list flag yields an empty list.
var listFlags = map[string]string{
	"-t":       "--types",
	"--types":  "--types",
	"--ignore": "--ignore",
}

// valueFlags consume exactly the next token when it is not attached with "=".
var valueFlags = map[string]bool{
	"-o":          true,
	"--output":    true,
	"-m":          true,
	"--max-size":  true,
	"--config":    true,
	"--log-level": true,
	"--log-dir":   true,
}

// NormalizeArgs rewrites aliased flags in args and folds multi-value list
// flags into a single "--flag=a,b" token. When no positional argument is
// left, the last token taken by a list flag is handed back as the directory,
// so "-t .py ." still names "." as the directory. Arguments after "--" are
// left untouched.
func NormalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	positionals := 0

	lastList := -1
	var lastName string
	var lastValues []string

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "--" {
			out = append(out, args[i:]...)
			positionals += len(args) - i - 1
			break
		}
		if long, ok := argAliases[arg]; ok {
			out = append(out, long)
			continue
		}
		if name, ok := listFlags[arg]; ok {
			var values []string
			for i+1 < len(args) && !isFlagToken(args[i+1]) {
				i++
				values = append(values, args[i])
			}
			out = append(out, name+"="+strings.Join(values, ","))
			lastList, lastName, lastValues = len(out)-1, name, values
			continue
		}
		if valueFlags[arg] && i+1 < len(args) {
			out = append(out, arg, args[i+1])
			i++
			continue
		}

		if !isFlagToken(arg) {
			positionals++
		}
		out = append(out, arg)
	}

	if positionals == 0 && len(lastValues) > 0 {
		n := len(lastValues)
		out[lastList] = lastName + "=" + strings.Join(lastValues[:n-1], ",")
		out = append(out, lastValues[n-1])
	}
	return out
}

func isFlagToken(arg string) bool {
	return len(arg) > 1 && strings.HasPrefix(arg, "-")
}
