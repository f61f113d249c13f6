package handlers

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/adv-linalg/advec/vectors"

	"github.com/chzyer/readline"
)

func kindOf(v vectors.Reader[float64]) string {
	switch v.(type) {
	case *vectors.MutVector[float64]:
		return "mutable vector"
	case *vectors.VectorSlice[float64]:
		return "shared slice"
	case *vectors.MutVectorSlice[float64]:
		return "mutable slice"
	}
	return "vector"
}

func valuesOf(v vectors.Reader[float64]) []float64 {
	data := make([]float64, v.Len())
	for i := range data {
		data[i] = v.At(i)
	}
	return data
}

func valuesAsString(v vectors.Reader[float64], limit int) string {
	tot := v.Len()
	num := tot
	if limit > 0 && limit < tot {
		num = limit
	}

	strs := make([]string, num)
	for i := 0; i < num; i++ {
		if f := v.At(i); f == 0.0 {
			strs[i] = "0"
		} else if f == 1.0 {
			strs[i] = "1"
		} else {
			strs[i] = fmt.Sprintf("%f", f)
		}
	}

	s := strings.Join(strs, ",")
	if num < tot {
		s += " ..."
	}
	return s
}

func showVector(name string, v vectors.Reader[float64]) {
	fmt.Printf("name : %s\n", name)
	fmt.Printf("kind : %s\n", kindOf(v))
	fmt.Printf("size : %d\n", v.Len())
	fmt.Printf("data : %s\n", valuesAsString(v, 0))
}

var showVectorHandler = handler{
	Name:        "SHOW",
	Mnemonic:    "SHOW or S <NAME>",
	Completer:   readline.PcItem("show"),
	Parser:      regexp.MustCompile(`^(?i)(SHOW|S)\s+([a-zA-Z_]\w*)$`),
	Description: "Show the kind, size and elements of the vector <NAME>.",
	Callback: func(cmd string, args []string, reader *readline.Instance, s *Session) error {
		v, err := s.Get(args[0])
		if err != nil {
			return err
		}

		showVector(args[0], v)

		return nil
	},
}
