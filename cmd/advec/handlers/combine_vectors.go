package handlers

import (
	"fmt"
	"regexp"

	"github.com/adv-linalg/advec/script"
	"github.com/adv-linalg/advec/vectors"

	"github.com/chzyer/readline"
)

var combineVectorsHandler = handler{
	Name:        "COMBINE",
	Mnemonic:    "COMBINE <SCRIPT> <A> <B> [AS <NEW>]",
	Completer:   readline.PcItem("combine"),
	Parser:      regexp.MustCompile(`^(?i)(COMBINE)\s+([a-zA-Z_]\w*)\s+([a-zA-Z_]\w*)\s+([a-zA-Z_]\w*)(?:\s+AS\s+([a-zA-Z_]\w*))?$`),
	Description: "Pair the elements of <A> and <B> through the binary script <SCRIPT>, collecting the results into a new vector.",
	Callback: func(cmd string, args []string, reader *readline.Instance, s *Session) error {
		compiled, err := s.transform(args[0])
		if err != nil {
			return err
		}

		if compiled.Arity() != 2 {
			return fmt.Errorf("%s takes %d arguments, COMBINE needs a binary script", compiled.Name(), compiled.Arity())
		}

		lhs, err := s.Get(args[1])
		if err != nil {
			return err
		}

		rhs, err := s.Get(args[2])
		if err != nil {
			return err
		}

		ctx := script.NewContext()
		out := vectors.Combine(lhs, rhs, compiled.Binary(ctx))
		if ctx.IsError() {
			return fmt.Errorf("%s", ctx.Message())
		}

		name := args[3]
		if name == "" {
			name = "ans"
		}
		s.Put(name, out)

		fmt.Printf("%s is a new vector of %d elements\n", name, out.Len())

		return nil
	},
}
