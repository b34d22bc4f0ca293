package conversation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/resepi/internal/domain"
	"github.com/hammamikhairi/resepi/internal/logger"
)

// Compile-time interface check.
var _ domain.Notifier = (*CLINotifier)(nil)

var (
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7dd3fc")).Bold(true)
	urgentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#fca5a5")).Bold(true)
)

// PrintFunc is a function used to print formatted output.
// Matches the signature of fmt.Printf and display.UI.Printf.
type PrintFunc func(format string, a ...interface{})

// CLINotifier writes status lines for the shell.
type CLINotifier struct {
	log     *logger.Logger
	printFn PrintFunc
}

// NewCLINotifier creates a notifier. If printFn is nil, lines go to stdout.
func NewCLINotifier(log *logger.Logger, printFn PrintFunc) *CLINotifier {
	if printFn == nil {
		printFn = WriterPrintFunc(os.Stdout)
	}
	return &CLINotifier{log: log, printFn: printFn}
}

// WriterPrintFunc prints each message as its own line on w.
func WriterPrintFunc(w io.Writer) PrintFunc {
	return func(format string, a ...interface{}) {
		fmt.Fprintf(w, format+"\n", a...)
	}
}

// Notify prints a normal notification.
func (n *CLINotifier) Notify(ctx context.Context, message string) error {
	n.log.Debug("notify: %s", message)
	n.printFn("%s", noticeStyle.Render(message))
	return nil
}

// NotifyUrgent prints an error or warning.
func (n *CLINotifier) NotifyUrgent(ctx context.Context, message string) error {
	n.log.Debug("notify-urgent: %s", message)
	n.printFn("%s", urgentStyle.Render(message))
	return nil
}

// Outcome returns the status line for an applied event and whether it
// reports a failure. An empty line means there is nothing to say.
func Outcome(ev domain.EventType, err error) (string, bool) {
	switch {
	case err == nil && ev == domain.EventSaveRecipe:
		return "Resep disimpan ke favorit", false
	case err == nil && ev == domain.EventRemoveFavourite:
		return "Resep dihapus dari favorit", false
	case err == nil:
		return "", false
	case ev == domain.EventRemoveFavourite && errors.Is(err, domain.ErrNotFound):
		return "Resep tidak ada di favorit", true
	case errors.Is(err, domain.ErrAlreadyExists):
		return "Resep sudah ada di favorit", false
	case errors.Is(err, domain.ErrNoSelection):
		return "Buka resep terlebih dahulu", true
	case errors.Is(err, domain.ErrPageOutOfRange):
		return "Halaman tidak tersedia", true
	case errors.Is(err, domain.ErrNotFound):
		return "Resep tidak ditemukan", true
	case errors.Is(err, domain.ErrUnknownEvent):
		return "Perintah tidak dikenal, ketik help", true
	default:
		return err.Error(), true
	}
}
