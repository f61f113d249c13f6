package handlers

import (
	"fmt"
	"os"
	"sort"

	"github.com/adv-linalg/advec/storage"

	"github.com/evilsocket/islazy/str"
	"github.com/evilsocket/islazy/tui"

	"github.com/chzyer/readline"
)

func codeAsString(code string, limit int) string {
	oneline := str.Trim(code)
	if len(oneline) > limit {
		oneline = oneline[:limit] + " ..."
	}
	return oneline
}

var listScriptsHandler = handler{
	Name:        "SCRIPTS",
	Mnemonic:    "SCRIPTS",
	Completer:   readline.PcItem("scripts"),
	Description: "List the defined transform scripts.",
	Callback: func(cmd string, args []string, reader *readline.Instance, s *Session) error {
		scripts := []*storage.Script{}
		err := s.Scripts.ForEach(func(stored *storage.Script) error {
			scripts = append(scripts, stored)
			return nil
		})
		if err != nil {
			return err
		}

		sort.Slice(scripts, func(i, j int) bool {
			return scripts[i].ID < scripts[j].ID
		})

		rows := [][]string{}
		for _, stored := range scripts {
			compiled := "no"
			if s.Cache.Find(stored.ID) != nil {
				compiled = "yes"
			}
			rows = append(rows, []string{
				fmt.Sprintf("%d", stored.ID),
				stored.Name,
				compiled,
				codeAsString(stored.Code, 50),
			})
		}

		tui.Table(os.Stdout, []string{"id", "name", "compiled", "code"}, rows)

		return nil
	},
}
