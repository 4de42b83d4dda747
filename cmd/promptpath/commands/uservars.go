package commands

import (
	"strings"

	"promptpath/internal/vars"
)

// userVarPrefix marks custom variable options. The flag name after the
// prefix is dynamic, which cobra cannot declare, so these tokens are split
// out of the argument list before Execute.
const userVarPrefix = "--uv-"

// SplitUserVarArgs separates --uv-<name>=<value> tokens from the argument
// list. The detached two-token form (--uv-name value) is accepted as well.
// Names are not validated here; the variables assembler owns that and
// accumulates every defect in one pass.
func SplitUserVarArgs(args []string) ([]string, []vars.UserVar) {
	var rest []string
	var userVars []vars.UserVar

	for i := 0; i < len(args); i++ {
		name, ok := strings.CutPrefix(args[i], userVarPrefix)
		if !ok {
			rest = append(rest, args[i])
			continue
		}

		if eq := strings.IndexByte(name, '='); eq >= 0 {
			userVars = append(userVars, vars.UserVar{Name: name[:eq], Value: name[eq+1:]})
			continue
		}

		value := ""
		if i+1 < len(args) {
			i++
			value = args[i]
		}
		userVars = append(userVars, vars.UserVar{Name: name, Value: value})
	}

	return rest, userVars
}
