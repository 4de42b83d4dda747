package vars

import "promptpath/internal/resolve"

// Set is the assembled, validated variable collection.
type Set struct {
	vars []Variable
}

// Variables returns the entries in assembly order.
func (s Set) Variables() []Variable {
	return s.vars
}

// Table flattens the set into the name-to-value map the renderer consumes.
func (s Set) Table() map[string]string {
	table := make(map[string]string, len(s.vars))
	for _, v := range s.vars {
		table[v.Name] = v.Value
	}
	return table
}

// Assemble merges the path-derived variables, the optional stdin variable and
// the user variables into one set. Either every input is valid and the full
// set is returned, or every defect across the batch is returned as an Errors
// value; a partially assembled set is never produced. Repeated user names are
// not an error: the last occurrence wins.
func Assemble(paths resolve.ResolvedPathSet, stdinText string, hasStdin bool, userVars []UserVar) (Set, error) {
	var set Set
	var errs Errors

	if paths.InputPath != "" {
		set.vars = append(set.vars, Variable{Name: NameInputTextFile, Value: paths.InputPath, Kind: KindStandard})
	}
	set.vars = append(set.vars,
		Variable{Name: NameDestinationPath, Value: paths.OutputPath(), Kind: KindStandard},
		Variable{Name: NameDestinationDir, Value: paths.OutputDir, Kind: KindStandard},
		Variable{Name: NameSchemaFile, Value: paths.SchemaPath, Kind: KindFilePath},
	)

	if hasStdin {
		set.vars = append(set.vars, Variable{Name: NameInputText, Value: stdinText, Kind: KindStdin})
	}

	reserved := reservedNames()
	seen := make(map[string]int)
	for _, uv := range userVars {
		if !userNamePattern.MatchString(uv.Name) {
			errs = append(errs, &InvalidVariableNameError{Name: uv.Name})
			continue
		}
		if reserved[uv.Name] {
			errs = append(errs, &ReservedVariableNameError{Name: uv.Name})
			continue
		}
		if idx, ok := seen[uv.Name]; ok {
			set.vars[idx].Value = uv.Value
			continue
		}
		set.vars = append(set.vars, Variable{Name: uv.Name, Value: uv.Value, Kind: KindUser})
		seen[uv.Name] = len(set.vars) - 1
	}

	if len(errs) > 0 {
		return Set{}, errs
	}
	return set, nil
}
