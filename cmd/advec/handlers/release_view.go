package handlers

import (
	"fmt"
	"regexp"

	"github.com/adv-linalg/advec/vectors"

	"github.com/chzyer/readline"
)

var releaseHandler = handler{
	Name:        "RELEASE",
	Mnemonic:    "RELEASE or REL <NAME>",
	Completer:   readline.PcItem("release"),
	Parser:      regexp.MustCompile(`^(?i)(RELEASE|REL)\s+([a-zA-Z_]\w*)$`),
	Description: "Release the view <NAME>, giving the borrowed region back to its parent.",
	Callback: func(cmd string, args []string, reader *readline.Instance, s *Session) error {
		v, err := s.Get(args[0])
		if err != nil {
			return err
		}

		switch view := v.(type) {
		case *vectors.VectorSlice[float64]:
			view.Release()
		case *vectors.MutVectorSlice[float64]:
			view.Release()
		default:
			return fmt.Errorf("%s is not a view", args[0])
		}

		s.Drop(args[0])

		fmt.Printf("%s released\n", args[0])

		return nil
	},
}
