package handlers

import (
	"fmt"
	"regexp"

	"github.com/adv-linalg/advec/script"
	"github.com/adv-linalg/advec/vectors"

	"github.com/chzyer/readline"
)

var mapVectorHandler = handler{
	Name:        "MAP",
	Mnemonic:    "MAP or M <SCRIPT> <NAME> [AS <NEW>]",
	Completer:   readline.PcItem("map"),
	Parser:      regexp.MustCompile(`^(?i)(MAP|M)\s+([a-zA-Z_]\w*)\s+([a-zA-Z_]\w*)(?:\s+AS\s+([a-zA-Z_]\w*))?$`),
	Description: "Apply the unary script <SCRIPT> to every element of <NAME>, collecting the results into a new vector.",
	Callback: func(cmd string, args []string, reader *readline.Instance, s *Session) error {
		compiled, err := s.transform(args[0])
		if err != nil {
			return err
		}

		if compiled.Arity() != 1 {
			return fmt.Errorf("%s takes %d arguments, MAP needs an unary script", compiled.Name(), compiled.Arity())
		}

		v, err := s.Get(args[1])
		if err != nil {
			return err
		}

		ctx := script.NewContext()
		out := vectors.Map(v, compiled.Unary(ctx))
		if ctx.IsError() {
			return fmt.Errorf("%s", ctx.Message())
		}

		name := args[2]
		if name == "" {
			name = "ans"
		}
		s.Put(name, out)

		fmt.Printf("%s is a new vector of %d elements\n", name, out.Len())

		return nil
	},
}
