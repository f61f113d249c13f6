package handlers

import (
	"regexp"

	"github.com/adv-linalg/advec/vectors"

	"github.com/chzyer/readline"
)

var subHandler = handler{
	Name:        "SUB",
	Mnemonic:    "SUB <A> <B> [AS <NAME>]",
	Completer:   readline.PcItem("sub"),
	Parser:      regexp.MustCompile(`^(?i)(SUB)\s+([a-zA-Z_]\w*)\s+([a-zA-Z_]\w*)(?:\s+AS\s+([a-zA-Z_]\w*))?$`),
	Description: "Subtract vector <B> from <A> element by element, reusing mutable storage when possible.",
	Callback: func(cmd string, args []string, reader *readline.Instance, s *Session) error {
		lhs, err := s.Get(args[0])
		if err != nil {
			return err
		}

		rhs, err := s.Get(args[1])
		if err != nil {
			return err
		}

		bindResult(s, vectors.Sub(lhs, rhs), args[2])

		return nil
	},
}
