package gdialog

import (
	"github.com/sqweek/dialog"
)

// ShowError pops a native error box; it blocks until dismissed.
func ShowError(title string, err error) {
	if err == nil {
		return
	}
	dialog.Message("%s", err.Error()).Title(title).Error()
}

// Confirm asks a yes/no question.
func Confirm(title, msg string) bool {
	return dialog.Message("%s", msg).Title(title).YesNo()
}
