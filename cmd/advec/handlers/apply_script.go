package handlers

import (
	"fmt"
	"regexp"

	"github.com/adv-linalg/advec/script"
	"github.com/adv-linalg/advec/vectors"

	"github.com/chzyer/readline"
)

var applyScriptHandler = handler{
	Name:        "APPLY",
	Mnemonic:    "APPLY <SCRIPT> <NAME>",
	Completer:   readline.PcItem("apply"),
	Parser:      regexp.MustCompile(`^(?i)(APPLY)\s+([a-zA-Z_]\w*)\s+([a-zA-Z_]\w*)$`),
	Description: "Overwrite every element of the mutable vector <NAME> with the unary script <SCRIPT> applied to it.",
	Callback: func(cmd string, args []string, reader *readline.Instance, s *Session) error {
		compiled, err := s.transform(args[0])
		if err != nil {
			return err
		}

		if compiled.Arity() != 1 {
			return fmt.Errorf("%s takes %d arguments, APPLY needs an unary script", compiled.Name(), compiled.Arity())
		}

		w, err := s.GetMut(args[1])
		if err != nil {
			return err
		}

		ctx := script.NewContext()
		vectors.MapMut(w, compiled.Unary(ctx))
		if ctx.IsError() {
			return fmt.Errorf("%s", ctx.Message())
		}

		fmt.Printf("%s transformed in place\n", args[1])

		return nil
	},
}
