package main

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/spf13/cobra"

	"priests-devils/config"
	"priests-devils/game"
	"priests-devils/river"
)

const (
	windowTitle  = "Interactive Priests and Devils"
	windowWidth  = 820
	windowHeight = 680

	infoFmt          = "Step: %d    Time: %ds"
	statusReady      = "Select up to two characters on the boat's bank, then move the boat."
	statusSolvingFmt = "Auto solve • step %d / %d"
	msgVictoryFmt    = "All priests and devils crossed safely in %d steps and %d seconds!"
	msgDefeat        = "Priests got eaten by Devils! You lose!"
	msgSolvedFmt     = "Solved in %d steps and %d seconds!"

	buttonMoveText  = "Move Boat"
	buttonUndoText  = "Undo"
	buttonSolveText = "Auto Solve (BFS)"
	buttonResetText = "Reset"
)

// Colors (hex)
const (
	colorBgDarkHex      = "#0f172a"
	colorBgLightHex     = "#f8fafc"
	colorFgDarkHex      = "#e5e7eb"
	colorFgLightHex     = "#0f172a"
	colorPrimaryHex     = "#22c55e"
	colorButtonHex      = "#334155"
	colorInputHex       = "#1f2937"
	colorPlaceholderHex = "#9ca3af"
)

// Theme
type sleekTheme struct{}

func (sleekTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		if variant == theme.VariantLight {
			return mustHex(colorBgLightHex)
		}
		return mustHex(colorBgDarkHex)
	case theme.ColorNameForeground:
		if variant == theme.VariantLight {
			return mustHex(colorFgLightHex)
		}
		return mustHex(colorFgDarkHex)
	case theme.ColorNamePrimary:
		return mustHex(colorPrimaryHex)
	case theme.ColorNameButton:
		return mustHex(colorButtonHex)
	case theme.ColorNameInputBackground:
		if variant == theme.VariantLight {
			return color.White
		}
		return mustHex(colorInputHex)
	case theme.ColorNamePlaceHolder:
		return mustHex(colorPlaceholderHex)
	default:
		return theme.DefaultTheme().Color(name, variant)
	}
}

func (sleekTheme) Font(style fyne.TextStyle) fyne.Resource { return theme.DefaultTheme().Font(style) }
func (sleekTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}
func (sleekTheme) Size(name fyne.ThemeSizeName) float32 { return theme.DefaultTheme().Size(name) }

// Color helpers
func mustHex(s string) color.Color {
	c, err := parseHexColor(s)
	if err != nil {
		return color.White
	}
	return c
}

func parseHexColor(s string) (color.NRGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.NRGBA{}, fmt.Errorf("invalid hex: %s", s)
	}
	var rr, gg, bb uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &rr, &gg, &bb); err != nil {
		return color.NRGBA{}, err
	}
	return color.NRGBA{R: rr, G: gg, B: bb, A: 255}, nil
}

// ---------- UI state ----------
type puzzleUI struct {
	window  fyne.Window
	session *game.Session
	logger  *slog.Logger

	// auto solve
	replayInterval time.Duration
	replayCancel   context.CancelFunc
	replays        sync.WaitGroup

	scene       *scene
	infoLabel   *widget.Label
	statusLabel *widget.Label

	// refs to enable/disable
	charButtons []*widget.Button
	btnMove     *widget.Button
	btnUndo     *widget.Button
	btnSolve    *widget.Button
	btnReset    *widget.Button
}

var configPath string

var rootCmd = &cobra.Command{
	Use:   "priests-devils",
	Short: "Play the Priests and Devils river crossing puzzle",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		a := app.New()
		a.Settings().SetTheme(sleekTheme{})
		ui, err := newPuzzleUI(a, cfg, cfg.Logger())
		if err != nil {
			return err
		}
		go ui.tickClock()
		ui.window.ShowAndRun()
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "priests-devils.yaml", "path to the YAML config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newPuzzleUI(a fyne.App, cfg config.Config, logger *slog.Logger) (*puzzleUI, error) {
	session, err := game.New(cfg.Totals(), game.Options{Logger: logger})
	if err != nil {
		return nil, err
	}
	w := a.NewWindow(windowTitle)
	w.Resize(fyne.NewSize(windowWidth, windowHeight))

	ui := &puzzleUI{
		window:         w,
		session:        session,
		logger:         logger,
		replayInterval: cfg.ReplayInterval,
		infoLabel:      widget.NewLabel(fmt.Sprintf(infoFmt, 0, 0)),
		statusLabel:    widget.NewLabel(statusReady),
	}
	ui.scene = newScene(func() { ui.moveBoat() })

	// Character buttons
	controls := session.Controls()
	buttons := make([]fyne.CanvasObject, 0, len(controls))
	for _, c := range controls {
		c := c
		btn := widget.NewButton(c.Label(), func() { ui.selectPassenger(c) })
		ui.charButtons = append(ui.charButtons, btn)
		buttons = append(buttons, btn)
	}

	// Toolbar
	ui.btnMove = widget.NewButton(buttonMoveText, func() { ui.moveBoat() })
	ui.btnUndo = widget.NewButton(buttonUndoText, func() { ui.undoMove() })
	ui.btnSolve = widget.NewButton(buttonSolveText, func() { ui.autoSolve() })
	ui.btnReset = widget.NewButton(buttonResetText, func() { ui.reset() })

	// Title
	titleText := canvas.NewText(windowTitle, mustHex(colorFgDarkHex))
	titleText.TextStyle = fyne.TextStyle{Bold: true}
	titleText.Alignment = fyne.TextAlignCenter

	actions := widget.NewCard("Controls", "",
		container.NewVBox(
			container.NewGridWithColumns(4, buttons...),
			widget.NewSeparator(),
			container.NewHBox(ui.btnMove, ui.btnUndo, ui.btnSolve, ui.btnReset),
		),
	)

	root := container.NewBorder(
		container.NewVBox(container.NewPadded(container.NewCenter(titleText)), ui.infoLabel),
		ui.statusLabel,
		nil,
		nil,
		container.NewVBox(ui.scene.view, actions),
	)
	w.SetContent(container.NewPadded(root))
	ui.refresh()
	return ui, nil
}

// Actions
func (ui *puzzleUI) selectPassenger(c game.Control) {
	if err := ui.session.Board(c.Kind, c.Side); err != nil {
		ui.notice(err)
		return
	}
	ui.refresh()
}

func (ui *puzzleUI) moveBoat() {
	outcome, err := ui.session.Cross()
	if err != nil {
		ui.notice(err)
		return
	}
	ui.refresh()
	switch outcome {
	case game.Defeat:
		dialog.ShowInformation("Game Over", msgDefeat, ui.window)
	case game.Victory:
		dialog.ShowInformation("Victory", fmt.Sprintf(msgVictoryFmt, ui.session.Steps(), ui.seconds()), ui.window)
	}
}

func (ui *puzzleUI) undoMove() {
	if err := ui.session.Undo(); err != nil {
		ui.notice(err)
		return
	}
	ui.refresh()
}

func (ui *puzzleUI) reset() {
	ui.stopReplay()
	ui.session.Reset()
	ui.statusLabel.SetText(statusReady)
	ui.refresh()
}

func (ui *puzzleUI) autoSolve() {
	replay, err := ui.session.Solve()
	if err != nil {
		ui.notice(err)
		return
	}
	ui.refresh()
	if replay.Len() == 0 {
		ui.showSolved()
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	ui.replayCancel = cancel
	total := replay.Len()
	ui.replays.Add(1)
	go func() {
		defer ui.replays.Done()
		defer cancel()
		err := replay.Run(ctx, ui.replayInterval, func(river.Position) {
			ui.statusLabel.SetText(fmt.Sprintf(statusSolvingFmt, total-replay.Remaining(), total))
			ui.refresh()
		})
		if err != nil {
			if !errors.Is(err, context.Canceled) {
				ui.notice(err)
			}
			return
		}
		ui.refresh()
		ui.showSolved()
	}()
}

// Replay helpers

func (ui *puzzleUI) showSolved() {
	dialog.ShowInformation("Auto Solved", fmt.Sprintf(msgSolvedFmt, ui.session.Steps(), ui.seconds()), ui.window)
}

// stopReplay cancels a running auto solve and waits for its goroutine, so
// nothing touches the board after it returns.
func (ui *puzzleUI) stopReplay() {
	if ui.replayCancel != nil {
		ui.replayCancel()
		ui.replayCancel = nil
	}
	ui.replays.Wait()
}

// UI utilities
func (ui *puzzleUI) notice(err error) {
	title := "Invalid"
	switch {
	case errors.Is(err, river.ErrBoatFull):
		title = "Full Boat"
	case errors.Is(err, river.ErrUnavailableCharacter):
		title = "Unavailable"
	case errors.Is(err, river.ErrEmptyBoat):
		title = "Empty Boat"
	case errors.Is(err, river.ErrNoHistory), errors.Is(err, river.ErrPassengersAboard):
		title = "Undo"
	case errors.Is(err, river.ErrNoSolution):
		title = "Auto Solve"
	case errors.Is(err, game.ErrGameOver), errors.Is(err, game.ErrReplayInProgress):
		title = "Please wait"
	}
	ui.logger.Debug("notice", "title", title, "error", err)
	dialog.ShowInformation(title, err.Error(), ui.window)
}

func (ui *puzzleUI) seconds() int {
	return int(ui.session.Elapsed() / time.Second)
}

// refresh redraws everything from the session; no widget keeps state of its own.
func (ui *puzzleUI) refresh() {
	ui.scene.paint(ui.session)
	ui.infoLabel.SetText(fmt.Sprintf(infoFmt, ui.session.Steps(), ui.seconds()))

	for i, c := range ui.session.Controls() {
		setEnabled(ui.charButtons[i], c.Enabled)
	}
	playing := ui.session.Status() == game.Playing
	setEnabled(ui.btnMove, playing && len(ui.session.Passengers()) > 0)
	setEnabled(ui.btnUndo, ui.session.CanUndo())
	setEnabled(ui.btnSolve, playing)
}

func (ui *puzzleUI) tickClock() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for range ticker.C {
		ui.infoLabel.SetText(fmt.Sprintf(infoFmt, ui.session.Steps(), ui.seconds()))
	}
}

func setEnabled(w fyne.Disableable, enabled bool) {
	if enabled {
		w.Enable()
	} else {
		w.Disable()
	}
}
