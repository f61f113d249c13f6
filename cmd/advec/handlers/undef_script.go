package handlers

import (
	"fmt"
	"regexp"

	"github.com/chzyer/readline"
)

var undefScriptHandler = handler{
	Name:        "UNDEF",
	Mnemonic:    "UNDEF <NAME>",
	Completer:   readline.PcItem("undef"),
	Parser:      regexp.MustCompile(`^(?i)(UNDEF)\s+([a-zA-Z_]\w*)$`),
	Description: "Delete the transform script called <NAME>.",
	Callback: func(cmd string, args []string, reader *readline.Instance, s *Session) error {
		stored := s.Scripts.FindByName(args[0])
		if stored == nil {
			return fmt.Errorf("no script named %s", args[0])
		}

		if deleted := s.Scripts.Delete(stored.ID); deleted == nil {
			return fmt.Errorf("could not delete script %d", stored.ID)
		}

		s.Cache.Del(stored.ID)

		fmt.Printf("script %s deleted\n", stored.Name)

		return nil
	},
}
