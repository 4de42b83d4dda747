package vars

import (
	"errors"
	"testing"

	"promptpath/internal/resolve"
)

func samplePaths() resolve.ResolvedPathSet {
	return resolve.ResolvedPathSet{
		PromptPath:     "prompts/to/issue/f_issue.md",
		SchemaPath:     "schema/to/issue/base.schema.md",
		InputPath:      "work/issue_4.md",
		OutputDir:      "issue",
		OutputFilename: "report.md",
	}
}

func TestAssembleReservedVariables(t *testing.T) {
	set, err := Assemble(samplePaths(), "", false, nil)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	table := set.Table()
	want := map[string]string{
		NameInputTextFile:   "work/issue_4.md",
		NameDestinationPath: "issue/report.md",
		NameDestinationDir:  "issue",
		NameSchemaFile:      "schema/to/issue/base.schema.md",
	}
	for name, value := range want {
		if table[name] != value {
			t.Errorf("table[%q] = %q, want %q", name, table[name], value)
		}
	}
	if _, ok := table[NameInputText]; ok {
		t.Error("input_text should be absent without stdin")
	}
}

func TestAssembleOmitsInputFileWhenAbsent(t *testing.T) {
	paths := samplePaths()
	paths.InputPath = ""

	set, err := Assemble(paths, "", false, nil)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	if _, ok := set.Table()[NameInputTextFile]; ok {
		t.Error("input_text_file should be omitted when no input path was resolved")
	}
}

func TestAssembleStdinVariable(t *testing.T) {
	set, err := Assemble(samplePaths(), "piped text", true, nil)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	if got := set.Table()[NameInputText]; got != "piped text" {
		t.Errorf("input_text = %q, want the piped content", got)
	}
}

func TestAssembleUserVariables(t *testing.T) {
	set, err := Assemble(samplePaths(), "", false, []UserVar{
		{Name: "project_name", Value: "atlas"},
		{Name: "Reviewer2", Value: "sam"},
	})
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	table := set.Table()
	if table["project_name"] != "atlas" || table["Reviewer2"] != "sam" {
		t.Errorf("user variables missing from table: %v", table)
	}

	for _, v := range set.Variables() {
		if v.Name == "project_name" && v.Kind != KindUser {
			t.Errorf("project_name kind = %v, want KindUser", v.Kind)
		}
	}
}

func TestAssembleLastOccurrenceWins(t *testing.T) {
	set, err := Assemble(samplePaths(), "", false, []UserVar{
		{Name: "env", Value: "staging"},
		{Name: "env", Value: "production"},
	})
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	if got := set.Table()["env"]; got != "production" {
		t.Errorf("env = %q, want the last occurrence", got)
	}
}

func TestAssembleAccumulatesAllErrors(t *testing.T) {
	_, err := Assemble(samplePaths(), "", false, []UserVar{
		{Name: "", Value: "x"},          // empty after prefix
		{Name: "9lives", Value: "x"},    // leading digit
		{Name: "has space", Value: "x"}, // bad charset
		{Name: "ok_name", Value: "x"},   // valid, must not mask the rest
	})
	if err == nil {
		t.Fatal("Assemble should fail")
	}

	var errs Errors
	if !errors.As(err, &errs) {
		t.Fatalf("expected Errors accumulator, got %T", err)
	}
	if len(errs) != 3 {
		t.Errorf("accumulated %d errors, want 3: %v", len(errs), errs)
	}

	var invalid *InvalidVariableNameError
	if !errors.As(err, &invalid) {
		t.Error("accumulator should expose InvalidVariableNameError via errors.As")
	}
}

func TestAssembleRejectsReservedUserName(t *testing.T) {
	_, err := Assemble(samplePaths(), "", false, []UserVar{
		{Name: NameSchemaFile, Value: "shadow"},
	})
	var reserved *ReservedVariableNameError
	if !errors.As(err, &reserved) {
		t.Fatalf("expected ReservedVariableNameError, got %v", err)
	}
}

func TestAssembleAllOrNothing(t *testing.T) {
	set, err := Assemble(samplePaths(), "", false, []UserVar{
		{Name: "good", Value: "x"},
		{Name: "bad name", Value: "y"},
	})
	if err == nil {
		t.Fatal("Assemble should fail")
	}
	if len(set.Variables()) != 0 {
		t.Error("a failed assembly must not return a partial set")
	}
}
