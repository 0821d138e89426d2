// Package zenity backs the confirmation and notification collaborators
// with the zenity dialog utility.
package zenity

import (
	"errors"
	"log"
	"os/exec"
)

const dialogTitle = "CsFM"

var execRun = func(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

// Dialogs implements both the confirmation and the notification
// collaborator on top of zenity.
type Dialogs struct{}

// Ask shows a yes/no question and reports whether it was confirmed.
// A failure to run the dialog utility itself counts as declined and is
// reported, never as an implicit yes.
func (d Dialogs) Ask(question string) bool {
	err := execRun("zenity", "--question", "--title="+dialogTitle, "--text="+question)
	if err == nil {
		return true
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// Non-zero exit: the user declined.
		return false
	}
	d.Notify("Error: " + err.Error())
	return false
}

// Notify shows an error dialog. Best effort: a failure is logged, not
// escalated.
func (d Dialogs) Notify(message string) {
	if err := execRun("zenity", "--error", "--title="+dialogTitle, "--text="+message); err != nil {
		log.Printf("failed to show notification %q: %v", message, err)
	}
}
