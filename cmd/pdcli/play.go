package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"priests-devils/game"
	"priests-devils/river"
)

const (
	riverWidth  = 12
	helpText    = "p/d board priest/devil • x unload • enter cross • u undo • s auto solve • r reset • q quit"
	readyText   = "Board up to two characters from the boat's bank, then cross."
	defeatText  = "Priests got eaten by Devils! You lose! (r to restart)"
	victoryFmt  = "All priests and devils crossed safely in %d steps and %d seconds!"
	solvingFmt  = "Auto solve: step %d / %d"
	solvedFmt   = "Solved in %d steps and %d seconds!"
	minInterval = 10 * time.Millisecond
)

var logFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play interactively in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		// the TUI owns the terminal, so logs only go to a file when asked
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		if logFile != "" {
			f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return fmt.Errorf("failed to open the log file %w", err)
			}
			defer f.Close()
			logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: cfg.Level()}))
		}

		session, err := game.New(cfg.Totals(), game.Options{Logger: logger})
		if err != nil {
			return err
		}
		_, err = tea.NewProgram(newPlayModel(session, cfg.ReplayInterval)).Run()
		return err
	},
}

func init() {
	playCmd.Flags().StringVar(&logFile, "log-file", "", "append structured logs to this file")
}

// replayTickMsg carries the generation of the replay that scheduled it so
// ticks of an abandoned replay are dropped.
type replayTickMsg struct{ gen int }

type playModel struct {
	session  *game.Session
	replay   *game.Replay
	gen      int
	interval time.Duration
	status   string
	isError  bool
	quitting bool
}

func newPlayModel(s *game.Session, interval time.Duration) playModel {
	return playModel{session: s, interval: max(interval, minInterval), status: readyText}
}

func (m playModel) Init() tea.Cmd { return nil }

func (m playModel) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.interval, func(time.Time) tea.Msg { return replayTickMsg{gen: gen} })
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case replayTickMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		return m.stepReplay()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m playModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.session
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		if m.replay != nil {
			m.replay.Stop()
		}
		return m, tea.Quit
	case "p":
		m = m.result(s.Board(river.Priest, s.Position().Boat), readyText)
	case "d":
		m = m.result(s.Board(river.Devil, s.Position().Boat), readyText)
	case "x":
		m = m.result(s.Disembark(), readyText)
	case "enter", " ", "m":
		outcome, err := s.Cross()
		switch {
		case err != nil:
			m = m.result(err, "")
		case outcome == game.Defeat:
			m.status, m.isError = defeatText, true
		case outcome == game.Victory:
			m.status, m.isError = fmt.Sprintf(victoryFmt, s.Steps(), seconds(s)), false
		default:
			m.status, m.isError = readyText, false
		}
	case "u":
		m = m.result(s.Undo(), readyText)
	case "s":
		r, err := s.Solve()
		if err != nil {
			return m.result(err, ""), nil
		}
		if r.Len() == 0 {
			m.status, m.isError = fmt.Sprintf(solvedFmt, s.Steps(), seconds(s)), false
			return m, nil
		}
		m.replay = r
		m.gen++
		m.status, m.isError = fmt.Sprintf(solvingFmt, 0, r.Len()), false
		return m, m.tick()
	case "r":
		if m.replay != nil {
			m.replay.Stop()
			m.replay = nil
		}
		s.Reset()
		m.status, m.isError = readyText, false
	}
	return m, nil
}

func (m playModel) stepReplay() (tea.Model, tea.Cmd) {
	if m.replay == nil {
		return m, nil
	}
	if _, err := m.replay.Next(); err != nil {
		m.replay = nil
		return m.result(err, ""), nil
	}
	if m.session.Status() == game.Won {
		m.replay = nil
		m.status, m.isError = fmt.Sprintf(solvedFmt, m.session.Steps(), seconds(m.session)), false
		return m, nil
	}
	m.status = fmt.Sprintf(solvingFmt, m.replay.Len()-m.replay.Remaining(), m.replay.Len())
	return m, m.tick()
}

// result turns an action's error into the status line, or shows ok when
// the action went through.
func (m playModel) result(err error, ok string) playModel {
	if err == nil {
		if ok != "" {
			m.status, m.isError = ok, false
		}
		return m
	}
	m.status, m.isError = noticeText(err), true
	return m
}

func noticeText(err error) string {
	switch {
	case errors.Is(err, river.ErrNoHistory):
		return "No more moves to undo!"
	case errors.Is(err, river.ErrPassengersAboard):
		return "Unload the boat (x) before undoing."
	case errors.Is(err, river.ErrBoatFull):
		return "Boat can only carry 2 characters!"
	case errors.Is(err, river.ErrEmptyBoat):
		return "Select at least one character to move!"
	case errors.Is(err, river.ErrUnavailableCharacter):
		return "Nobody of that kind is waiting on the boat's bank."
	case errors.Is(err, game.ErrGameOver):
		return "The game is over, press r to play again."
	case errors.Is(err, game.ErrReplayInProgress):
		return "Auto solve is running."
	default:
		return err.Error()
	}
}

func seconds(s *game.Session) int {
	return int(s.Elapsed() / time.Second)
}

func (m playModel) View() string {
	if m.quitting {
		return ""
	}
	s := m.session
	var b strings.Builder
	b.WriteString(styles.Title.Render("Priests and Devils"))
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render(fmt.Sprintf("Step: %d    Time: %ds    Boat: %s", s.Steps(), seconds(s), s.Position().Boat)))
	b.WriteString("\n\n")
	b.WriteString(styles.Box.Render(renderRiver(s.Position(), s.Passengers(), riverWidth)))
	b.WriteString("\n")

	status := styles.Success
	if m.isError {
		status = styles.Warning
	}
	if s.Status() == game.Lost {
		status = styles.Error
	}
	b.WriteString(status.Render(m.status))
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render(helpText))
	b.WriteString("\n")
	return b.String()
}
