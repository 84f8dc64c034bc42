package cli

import (
	"fmt"
	"math/big"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/lehmer/pkg/lehmer"
	"github.com/matzehuels/lehmer/pkg/perm"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

const (
	defaultBrowseHeight = 15
	pageJump            = 10
)

// browseCommand creates the browse command.
func (c *CLI) browseCommand() *cobra.Command {
	var start string

	cmd := &cobra.Command{
		Use:   "browse <length>",
		Short: "Step through the permutations of a length interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			length, err := parseLength(args[0])
			if err != nil {
				return err
			}
			m, err := NewBrowseModel(lehmer.Default(), length)
			if err != nil {
				return err
			}
			if start != "" {
				if err := m.Seek(start); err != nil {
					return err
				}
			}

			final, err := tea.NewProgram(m, tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return err
			}
			if bm, ok := final.(BrowseModel); ok && bm.Selected != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", bm.Cursor.String(), perm.Format(bm.Selected))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "code to start at")
	return cmd
}

// =============================================================================
// BrowseModel - Interactive rank browser
// =============================================================================

// BrowseModel is the bubbletea model for stepping through permutations by
// Lehmer code. Codes are big integers so any length can be browsed.
type BrowseModel struct {
	Codec    *lehmer.Codec
	Length   int
	Total    *big.Int // length!
	Cursor   *big.Int // current code
	Offset   *big.Int // first code shown
	Height   int
	Selected []int // set when the user presses enter
	Err      error
}

// NewBrowseModel creates a browser positioned at code 0.
func NewBrowseModel(codec *lehmer.Codec, length int) (BrowseModel, error) {
	total, err := codec.FactorialBig(length)
	if err != nil {
		return BrowseModel{}, err
	}
	return BrowseModel{
		Codec:  codec,
		Length: length,
		Total:  total,
		Cursor: new(big.Int),
		Offset: new(big.Int),
		Height: defaultBrowseHeight,
	}, nil
}

// Seek moves the cursor to the decimal code s.
func (m *BrowseModel) Seek(s string) error {
	code, ok := new(big.Int).SetString(s, 10)
	if !ok || code.Sign() < 0 || code.Cmp(m.Total) >= 0 {
		return fmt.Errorf("start code %q is not in [0, %s)", s, m.Total)
	}
	m.Cursor = code
	m.Offset = new(big.Int).Set(code)
	return nil
}

func (m BrowseModel) Init() tea.Cmd {
	return nil
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m = m.move(-1)
		case "down", "j":
			m = m.move(1)
		case "pgup", "b":
			m = m.move(-pageJump)
		case "pgdown", "f", " ":
			m = m.move(pageJump)
		case "home", "g":
			m = m.moveTo(new(big.Int))
		case "end", "G":
			m = m.moveTo(new(big.Int).Sub(m.Total, big.NewInt(1)))
		case "enter":
			p, err := m.Codec.DecodeBig(m.Length, m.Cursor)
			if err != nil {
				m.Err = err
				return m, nil
			}
			m.Selected = p
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
		m = m.moveTo(m.Cursor)
	}
	return m, nil
}

// move shifts the cursor by delta, clamped to [0, Total).
func (m BrowseModel) move(delta int64) BrowseModel {
	return m.moveTo(new(big.Int).Add(m.Cursor, big.NewInt(delta)))
}

// moveTo places the cursor at code, clamped, and scrolls the window so the
// cursor stays visible. The receiver's big.Ints are never mutated so that
// copies of the model stay independent.
func (m BrowseModel) moveTo(code *big.Int) BrowseModel {
	last := new(big.Int).Sub(m.Total, big.NewInt(1))
	c := new(big.Int).Set(code)
	if c.Sign() < 0 {
		c.SetInt64(0)
	}
	if c.Cmp(last) > 0 {
		c.Set(last)
	}

	off := new(big.Int).Set(m.Offset)
	if c.Cmp(off) < 0 {
		off.Set(c)
	}
	end := new(big.Int).Add(off, big.NewInt(int64(m.Height)))
	if c.Cmp(end) >= 0 {
		off.Sub(c, big.NewInt(int64(m.Height-1)))
	}

	m.Cursor = c
	m.Offset = off
	return m
}

func (m BrowseModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Permutations of %d elements", m.Length)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ step  pgup/pgdn jump  g/G first/last  ⏎ select  q quit"))
	b.WriteString("\n\n")

	rows := [][]string{}
	code := new(big.Int).Set(m.Offset)
	for i := 0; i < m.Height && code.Cmp(m.Total) < 0; i++ {
		cursor := "  "
		if code.Cmp(m.Cursor) == 0 {
			cursor = "▸ "
		}
		p, err := m.Codec.DecodeBig(m.Length, code)
		if err != nil {
			break
		}
		rows = append(rows, []string{cursor, code.String(), perm.Format(p)})
		code.Add(code, big.NewInt(1))
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	cursorRow := new(big.Int).Sub(m.Cursor, m.Offset)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Code", "Permutation").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case cursorRow.IsInt64() && int64(row) == cursorRow.Int64():
				return listSelectedStyle
			case col == 1:
				return listDimStyle
			default:
				return listNormalStyle
			}
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%s/%s]", new(big.Int).Add(m.Cursor, big.NewInt(1)), m.Total)))
	if m.Err != nil {
		b.WriteString("\n")
		b.WriteString(StyleWarning.Render(m.Err.Error()))
	}

	return b.String()
}
