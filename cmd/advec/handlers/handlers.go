package handlers

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/chzyer/readline"
)

type handlerCb func(cmd string, args []string, reader *readline.Instance, s *Session) error

type handler struct {
	Parser      *regexp.Regexp
	Completer   *readline.PrefixCompleter
	Name        string
	Mnemonic    string
	Description string
	Callback    handlerCb
}

var Handlers = []handler{}
var Completers = (*readline.PrefixCompleter)(nil)

func init() {
	Handlers = []handler{
		helpHandler,
		quitHandler,
		infoHandler,
		// workspace vectors
		newVectorHandler,
		setElementHandler,
		repeatVectorHandler,
		listVectorsHandler,
		showVectorHandler,
		cloneVectorHandler,
		delVectorHandler,
		// operators
		addHandler,
		subHandler,
		dotHandler,
		// mutability and views
		freezeHandler,
		thawHandler,
		sliceHandler,
		sliceMutHandler,
		releaseHandler,
		// transforms
		mapVectorHandler,
		applyScriptHandler,
		combineVectorsHandler,
		defScriptHandler,
		listScriptsHandler,
		undefScriptHandler,
		// persistence
		saveVectorHandler,
		loadRecordHandler,
		listRecordsHandler,
		tagRecordHandler,
		findRecordsHandler,
		deleteRecordHandler,
	}

	tmp := []readline.PrefixCompleterInterface{}
	for _, h := range Handlers {
		if h.Completer != nil {
			tmp = append(tmp, h.Completer)
		}
	}
	Completers = readline.NewPrefixCompleter(tmp...)
}

// Dispatch runs the command line against the first matching handler. The
// vector operators panic on borrow and move violations, this is where those
// panics are turned back into prompt errors.
func Dispatch(cmd string, reader *readline.Instance, s *Session) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			if e, ok := recovered.(error); ok {
				err = e
			} else {
				err = fmt.Errorf("%v", recovered)
			}
		}
	}()

	for _, handler := range Handlers {
		match := false
		args := []string{}

		if handler.Parser != nil {
			if result := handler.Parser.FindStringSubmatch(cmd); result != nil && len(result) == handler.Parser.NumSubexp()+1 {
				cmd = result[1:][0]
				args = result[1:][1:]
				match = true
			}
		} else if strings.EqualFold(handler.Name, cmd) {
			match = true
		}

		if match {
			return handler.Callback(cmd, args, reader, s)
		}
	}

	return fmt.Errorf("command not found: %s", cmd)
}
