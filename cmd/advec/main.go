package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/adv-linalg/advec/cmd/advec/handlers"
	"github.com/adv-linalg/advec/common"
	"github.com/adv-linalg/advec/storage"

	"github.com/evilsocket/islazy/log"
	"github.com/evilsocket/islazy/str"

	"github.com/chzyer/readline"
)

const (
	prompt  = "\033[31m»\033[0m "
	history = "/tmp/advec.tmp"
)

var (
	dataPath   = flag.String("data", "advec_data", "Workspace data folder for records and scripts.")
	evalString = flag.String("eval", "", "List of commands to run, divided by a semicolon.")
	logFile    = flag.String("log-file", "", "If filled, advec will log to this file.")
	logDebug   = flag.Bool("debug", false, "Enable debug logs.")
	cpuProfile = flag.String("cpu-profile", "", "Write CPU profile to this file.")
	memProfile = flag.String("mem-profile", "", "Write memory profile to this file.")
)

func die(format string, args ...interface{}) {
	fmt.Printf(format, args...)
	os.Exit(1)
}

func main() {
	flag.Parse()

	common.StartProfiling(cpuProfile)
	common.SetupSignals(func(_ os.Signal) { common.DoCleanup(cpuProfile, memProfile) })
	common.SetupLogging(logFile, logDebug)
	defer common.TeardownLogging()

	log.Info("advec v%s is starting ...", handlers.Version)

	recordsPath, scriptsPath := common.SetupDataPath(dataPath)

	records, err := storage.LoadRecords(recordsPath)
	if err != nil {
		die("cannot load records from %s: %v\n", recordsPath, err)
	}

	scripts, err := storage.LoadScripts(scriptsPath)
	if err != nil {
		die("cannot load scripts from %s: %v\n", scriptsPath, err)
	}

	session := handlers.NewSession(records, scripts)

	reader, err := readline.NewEx(&readline.Config{
		Prompt:          fmt.Sprintf("advec %s", prompt),
		HistoryFile:     history,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    handlers.Completers,
	})
	if err != nil {
		die("%v\n", err)
	}
	defer reader.Close()

	for _, cmd := range str.SplitBy(*evalString, ";") {
		if err := handlers.Dispatch(cmd, reader, session); err != nil {
			fmt.Printf("%s\n", err)
		}
	}

	for {
		if line, err := reader.Readline(); err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			break
		} else {
			for _, cmd := range str.SplitBy(line, ";") {
				if err := handlers.Dispatch(cmd, reader, session); err != nil {
					fmt.Printf("%s\n", err)
				}
			}
		}
	}
}
