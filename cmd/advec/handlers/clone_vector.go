package handlers

import (
	"fmt"
	"regexp"

	"github.com/adv-linalg/advec/vectors"

	"github.com/chzyer/readline"
)

var cloneVectorHandler = handler{
	Name:        "CLONE",
	Mnemonic:    "CLONE <NAME> AS <NEW>",
	Completer:   readline.PcItem("clone"),
	Parser:      regexp.MustCompile(`^(?i)(CLONE)\s+([a-zA-Z_]\w*)\s+AS\s+([a-zA-Z_]\w*)$`),
	Description: "Copy the vector <NAME> into an independent mutable vector <NEW>.",
	Callback: func(cmd string, args []string, reader *readline.Instance, s *Session) error {
		v, err := s.Get(args[0])
		if err != nil {
			return err
		}

		var out vectors.Reader[float64]

		switch src := v.(type) {
		case *vectors.MutVector[float64]:
			out = src.Clone()
		case *vectors.VectorSlice[float64]:
			out = src.ToMut()
		case *vectors.MutVectorSlice[float64]:
			out = src.ToMut()
		case *vectors.Vector[float64]:
			out = src.Clone().AsMut()
		default:
			return fmt.Errorf("cannot clone %s", args[0])
		}

		s.Put(args[1], out)

		fmt.Printf("%s is a mutable copy of %s\n", args[1], args[0])

		return nil
	},
}
