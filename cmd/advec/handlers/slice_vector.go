package handlers

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/adv-linalg/advec/vectors"

	"github.com/chzyer/readline"
)

func parseRange(args []string) (int, int, error) {
	from, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, err
	}
	to, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, err
	}
	return from, to, nil
}

var sliceHandler = handler{
	Name:        "SLICE",
	Mnemonic:    "SLICE <NAME> <FROM> <TO> AS <NEW>",
	Completer:   readline.PcItem("slice"),
	Parser:      regexp.MustCompile(`^(?i)(SLICE)\s+([a-zA-Z_]\w*)\s+(\d+)\s+(\d+)\s+AS\s+([a-zA-Z_]\w*)$`),
	Description: "Bind <NEW> to a read only view of <NAME> over the half open range [<FROM>, <TO>).",
	Callback: func(cmd string, args []string, reader *readline.Instance, s *Session) error {
		v, err := s.Get(args[0])
		if err != nil {
			return err
		}

		from, to, err := parseRange(args[1:3])
		if err != nil {
			return err
		}

		var out vectors.Reader[float64]

		switch src := v.(type) {
		case *vectors.Vector[float64]:
			out = src.Slice(from, to)
		case *vectors.MutVector[float64]:
			out = src.Slice(from, to)
		case *vectors.VectorSlice[float64]:
			out = src.Slice(from, to)
		case *vectors.MutVectorSlice[float64]:
			out = src.Slice(from, to)
		default:
			return fmt.Errorf("cannot slice %s", args[0])
		}

		s.Put(args[3], out)

		fmt.Printf("%s is a shared slice of %s over [%d, %d)\n", args[3], args[0], from, to)

		return nil
	},
}

var sliceMutHandler = handler{
	Name:        "MSLICE",
	Mnemonic:    "MSLICE <NAME> <FROM> <TO> AS <NEW>",
	Completer:   readline.PcItem("mslice"),
	Parser:      regexp.MustCompile(`^(?i)(MSLICE)\s+([a-zA-Z_]\w*)\s+(\d+)\s+(\d+)\s+AS\s+([a-zA-Z_]\w*)$`),
	Description: "Bind <NEW> to an exclusive mutable view of <NAME> over the half open range [<FROM>, <TO>).",
	Callback: func(cmd string, args []string, reader *readline.Instance, s *Session) error {
		v, err := s.Get(args[0])
		if err != nil {
			return err
		}

		from, to, err := parseRange(args[1:3])
		if err != nil {
			return err
		}

		var out vectors.Reader[float64]

		switch src := v.(type) {
		case *vectors.MutVector[float64]:
			out = src.SliceMut(from, to)
		case *vectors.MutVectorSlice[float64]:
			out = src.SliceMut(from, to)
		default:
			return fmt.Errorf("%s cannot give out a mutable slice", args[0])
		}

		s.Put(args[3], out)

		fmt.Printf("%s is a mutable slice of %s over [%d, %d)\n", args[3], args[0], from, to)

		return nil
	},
}
