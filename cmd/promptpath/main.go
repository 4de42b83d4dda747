package main

import (
	"fmt"
	"os"

	"promptpath/cmd/promptpath/commands"
	"promptpath/cmd/promptpath/internal/clierr"
)

func main() {
	args, userVars := commands.SplitUserVarArgs(os.Args[1:])

	cmd := commands.NewRootCmd(userVars)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(clierr.ExitCodeOf(err))
	}
}
