// Package vars assembles the flat variable-substitution table handed to the
// template renderer. Validation accumulates every defect across the batch so
// one run reports them all.
package vars

import (
	"fmt"
	"regexp"
	"strings"
)

// Kind discriminates the variable union.
type Kind int

const (
	// KindStandard is a fixed reserved variable such as the destination path.
	KindStandard Kind = iota
	// KindFilePath is a file-reference variable such as the schema path.
	KindFilePath
	// KindStdin is the single variable carrying piped input text.
	KindStdin
	// KindUser is a custom variable supplied via a --uv- option.
	KindUser
)

// Reserved variable names produced by the engine itself.
const (
	NameInputTextFile   = "input_text_file"
	NameDestinationPath = "destination_path"
	NameDestinationDir  = "destination_dir"
	NameSchemaFile      = "schema_file"
	NameInputText       = "input_text"
)

// userNamePattern constrains user variable names: a letter followed by
// letters, digits and underscores.
var userNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// Variable is one entry of the substitution table.
type Variable struct {
	Name  string
	Value string
	Kind  Kind
}

// UserVar is a raw --uv- option with the prefix already stripped, in the
// order it appeared on the command line.
type UserVar struct {
	Name  string
	Value string
}

// InvalidVariableNameError reports a malformed user variable name, including
// the empty-after-prefix case.
type InvalidVariableNameError struct {
	Name string
}

func (e *InvalidVariableNameError) Error() string {
	if e.Name == "" {
		return "invalid variable name: empty after uv- prefix"
	}
	return fmt.Sprintf("invalid variable name %q: must match %s", e.Name, userNamePattern.String())
}

// ReservedVariableNameError reports a user variable that would shadow a
// reserved engine variable.
type ReservedVariableNameError struct {
	Name string
}

func (e *ReservedVariableNameError) Error() string {
	return fmt.Sprintf("variable name %q is reserved", e.Name)
}

// Errors accumulates independent validation failures from one assembly pass.
type Errors []error

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%d variable error(s): %s", len(e), strings.Join(msgs, "; "))
}

// Unwrap exposes the accumulated errors to errors.Is/As.
func (e Errors) Unwrap() []error {
	return e
}

func reservedNames() map[string]bool {
	return map[string]bool{
		NameInputTextFile:   true,
		NameDestinationPath: true,
		NameDestinationDir:  true,
		NameSchemaFile:      true,
		NameInputText:       true,
	}
}
