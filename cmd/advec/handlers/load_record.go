package handlers

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/adv-linalg/advec/storage"

	"github.com/chzyer/readline"
)

var loadRecordHandler = handler{
	Name:        "LOAD",
	Mnemonic:    "LOAD <ID|NAME> [AS <NEW>]",
	Completer:   readline.PcItem("load"),
	Parser:      regexp.MustCompile(`^(?i)(LOAD)\s+([^\s]+)(?:\s+AS\s+([a-zA-Z_]\w*))?$`),
	Description: "Load a record by id or by its name metadata into a mutable session vector.",
	Callback: func(cmd string, args []string, reader *readline.Instance, s *Session) error {
		var record *storage.Record

		if id, err := strconv.ParseUint(args[0], 10, 64); err == nil {
			record = s.Records.Find(id)
		} else if found := s.Records.FindBy("name", args[0]); len(found) > 0 {
			record = found[0]
		}

		if record == nil {
			return fmt.Errorf("no record %s", args[0])
		}

		name := args[1]
		if name == "" {
			name = record.Meta["name"]
		}
		if name == "" {
			name = fmt.Sprintf("rec%d", record.ID)
		}

		s.Put(name, record.MutVector())

		fmt.Printf("%s is a mutable vector of %d elements from record %d\n", name, len(record.Values), record.ID)

		return nil
	},
}
