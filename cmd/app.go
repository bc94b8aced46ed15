// Package cmd implements the CLI application to draft, generate and track
// quotations.
package cmd

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/cotizador"
	"github.com/google/subcommands"
)

// Commands lists every subcommand. A main package registers them all and
// executes the user-selected one.
var Commands = []subcommands.Command{
	&newCmd{},
	&setCmd{},
	&addCmd{},
	&editCmd{},
	&rmCmd{},
	&showCmd{},
	&generateCmd{},
	&sendCmd{},
	&reviseCmd{},
	&statusCmd{},
	&historyCmd{},
	&clientsCmd{},
	&exportCmd{},
	&configCmd{},
	&rucCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config-file", "config.json", "Path to the application configuration file")
var historyFile = flag.String("history-file", "historial_cotizaciones.json", "Path to the quotation history file")
var draftFile = flag.String("draft-file", "draft.json", "Path to the working draft file")

// smtpPasswordEnv overrides the stored SMTP password when set, so the
// secret never has to live in config.json.
const smtpPasswordEnv = "COTIZA_SMTP_PASSWORD"

func loadConfig() *cotizador.Config {
	return cotizador.LoadConfig(*configFile)
}

func saveConfig(cfg *cotizador.Config) error {
	return cotizador.SaveConfig(*configFile, cfg)
}

func loadHistory() *cotizador.History {
	return cotizador.LoadHistory(*historyFile)
}

func saveHistory(h *cotizador.History) error {
	return cotizador.SaveHistory(*historyFile, h)
}

func loadDraft(cfg *cotizador.Config) *cotizador.Draft {
	return cotizador.LoadDraft(*draftFile, cfg)
}

func saveDraft(d *cotizador.Draft) error {
	return cotizador.SaveDraft(*draftFile, d)
}

// printMarkdown renders markdown to the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// Fall back to the raw markdown rather than losing the content.
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}

// confirm asks a yes/no question on the terminal, defaulting to no.
func confirm(question string) bool {
	fmt.Printf("%s [y/N]: ", question)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
