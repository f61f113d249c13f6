package handlers

import (
	"fmt"
	"os"

	"github.com/adv-linalg/advec/backend"

	"github.com/dustin/go-humanize"
	"github.com/evilsocket/islazy/tui"

	"github.com/chzyer/readline"
)

var infoHandler = handler{
	Name:        "INFO",
	Mnemonic:    "INFO",
	Completer:   readline.PcItem("info"),
	Description: "Display version, backend and storage information.",
	Callback: func(cmd string, args []string, reader *readline.Instance, s *Session) error {
		rows := [][]string{
			{"version", Version},
			{"backend", backend.Name()},
			{"memory total", humanize.Bytes(backend.Space())},
			{"memory used", humanize.Bytes(backend.Used())},
			{"vectors", fmt.Sprintf("%d", s.Size())},
			{"records", fmt.Sprintf("%d", s.Records.Size())},
			{"scripts", fmt.Sprintf("%d", s.Scripts.Size())},
			{"compiled scripts", fmt.Sprintf("%d", s.Cache.Size())},
		}

		tui.Table(os.Stdout, []string{"name", "value"}, rows)

		return nil
	},
}
