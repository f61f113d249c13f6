package handlers

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/chzyer/readline"
)

var deleteRecordHandler = handler{
	Name:        "DELETE",
	Mnemonic:    "DELETE <ID>",
	Completer:   readline.PcItem("delete"),
	Parser:      regexp.MustCompile(`^(?i)(DELETE)\s+(\d+)$`),
	Description: "Delete a stored record given its <ID>.",
	Callback: func(cmd string, args []string, reader *readline.Instance, s *Session) error {
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return err
		}

		if deleted := s.Records.Delete(id); deleted == nil {
			return fmt.Errorf("no record with id %d", id)
		}

		fmt.Printf("record %d successfully deleted.\n", id)

		return nil
	},
}
