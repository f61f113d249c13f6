package handlers

import (
	"fmt"
	"regexp"

	"github.com/adv-linalg/advec/vectors"

	"github.com/chzyer/readline"
)

var freezeHandler = handler{
	Name:        "FREEZE",
	Mnemonic:    "FREEZE <NAME>",
	Completer:   readline.PcItem("freeze"),
	Parser:      regexp.MustCompile(`^(?i)(FREEZE)\s+([a-zA-Z_]\w*)$`),
	Description: "Turn the mutable vector <NAME> into an immutable one without copying.",
	Callback: func(cmd string, args []string, reader *readline.Instance, s *Session) error {
		v, err := s.Get(args[0])
		if err != nil {
			return err
		}

		m, ok := v.(*vectors.MutVector[float64])
		if !ok {
			return fmt.Errorf("%s is not a mutable vector", args[0])
		}

		s.Put(args[0], m.AsVector())

		fmt.Printf("%s is now immutable\n", args[0])

		return nil
	},
}
