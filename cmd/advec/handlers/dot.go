package handlers

import (
	"fmt"
	"regexp"

	"github.com/adv-linalg/advec/vectors"

	"github.com/chzyer/readline"
)

var dotHandler = handler{
	Name:        "DOT",
	Mnemonic:    "DOT <A> <B>",
	Completer:   readline.PcItem("dot"),
	Parser:      regexp.MustCompile(`^(?i)(DOT)\s+([a-zA-Z_]\w*)\s+([a-zA-Z_]\w*)$`),
	Description: "Compute the dot product of vectors <A> and <B>.",
	Callback: func(cmd string, args []string, reader *readline.Instance, s *Session) error {
		lhs, err := s.Get(args[0])
		if err != nil {
			return err
		}

		rhs, err := s.Get(args[1])
		if err != nil {
			return err
		}

		fmt.Printf("%f\n", vectors.Dot(lhs, rhs))

		return nil
	},
}
