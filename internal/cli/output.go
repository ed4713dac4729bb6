package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/go-pass-vault/models"
)

const maskedPassword = "••••••••"

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// prompt prints label and reads one line from in.
func prompt(in *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	line, err := in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("read %s: %w", strings.TrimSuffix(strings.TrimSpace(label), ":"), err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func renderItems(items []models.VaultItem, showPasswords bool) string {
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		password := maskedPassword
		if showPasswords {
			password = it.Password
		}
		rows = append(rows, []string{
			it.ID,
			it.Title,
			it.Username,
			password,
			it.URL,
			it.UpdatedAt.Local().Format(time.DateTime),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("ID", "TITLE", "USERNAME", "PASSWORD", "URL", "UPDATED").
		Rows(rows...).
		Render()
}
