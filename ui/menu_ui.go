package ui

import (
	"bytes"
	"fmt"
	"image/color"

	cfg "github.com/automoto/fishhunt/config"
	"github.com/automoto/fishhunt/leaderboard"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuUI is the main menu: name entry, leaderboard and the Play/Quit buttons.
type MenuUI struct {
	UI *ebitenui.UI

	OnPlay func(username string)
	OnQuit func()
	OnMute func() bool

	nameInput   *widget.TextInput
	statusLabel *widget.Label
	totalsLabel *widget.Label
	muteButton  *widget.Button
	rows        []*widget.Button
	rowNames    []string

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewMenuUI(username string, muted bool, onPlay func(string), onQuit func(), onMute func() bool) (*MenuUI, error) {
	ui := &MenuUI{
		OnPlay: onPlay,
		OnQuit: onQuit,
		OnMute: onMute,
	}
	if err := ui.loadFonts(); err != nil {
		return nil, err
	}
	ui.buildUI(muted)
	ui.nameInput.SetText(username)
	return ui, nil
}

func (ui *MenuUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("failed to load UI font: %w", err)
	}
	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 36}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 16}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 13}
	return nil
}

func (ui *MenuUI) buildUI(muted bool) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.UI.BackgroundTop)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	content := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.UI.MenuPanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	content.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("MONSTER FISH HUNT", &ui.titleFace, &widget.LabelColor{Idle: cfg.UI.PlayerColor}),
	))
	content.AddChild(ui.buildNameRow())

	ui.totalsLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.smallFace, &widget.LabelColor{Idle: cfg.UI.TextColor}),
	)
	content.AddChild(ui.totalsLabel)

	ui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.smallFace, &widget.LabelColor{Idle: cfg.UI.WarningColor}),
	)
	content.AddChild(ui.statusLabel)

	content.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("LEADERBOARD", &ui.normalFace, &widget.LabelColor{Idle: cfg.UI.TextColor}),
	))
	content.AddChild(ui.buildLeaderboard())
	content.AddChild(ui.buildButtons(muted))

	rootContainer.AddChild(content)
	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *MenuUI) buildNameRow() *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)
	row.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Name:", &ui.normalFace, &widget.LabelColor{Idle: color.RGBA{200, 200, 200, 255}}),
	))

	ui.nameInput = widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(240, 26)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(cfg.UI.InputBackground),
			Disabled: image.NewNineSliceColor(cfg.UI.ButtonDisabled),
		}),
		widget.TextInputOpts.Face(&ui.normalFace),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          cfg.UI.TextColor,
			Disabled:      color.RGBA{128, 128, 128, 255},
			Caret:         cfg.UI.TextColor,
			DisabledCaret: color.RGBA{128, 128, 128, 255},
		}),
		widget.TextInputOpts.Placeholder("your name"),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(4)),
	)
	row.AddChild(ui.nameInput)
	return row
}

// buildLeaderboard makes a fixed set of row buttons; SetLeaderboard fills them.
func (ui *MenuUI) buildLeaderboard() *widget.Container {
	list := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(2),
		)),
	)
	n := cfg.UI.LeaderboardRows
	ui.rows = make([]*widget.Button, n)
	ui.rowNames = make([]string, n)
	for i := range n {
		btn := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(360, 20)),
			widget.ButtonOpts.Image(&widget.ButtonImage{
				Idle:     image.NewNineSliceColor(cfg.UI.MenuPanelColor),
				Hover:    image.NewNineSliceColor(cfg.UI.ButtonHover),
				Pressed:  image.NewNineSliceColor(cfg.UI.ButtonPressed),
				Disabled: image.NewNineSliceColor(cfg.UI.MenuPanelColor),
			}),
			widget.ButtonOpts.Text("", &ui.smallFace, &widget.ButtonTextColor{
				Idle:     cfg.UI.TextColor,
				Disabled: color.RGBA{110, 110, 130, 255},
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if name := ui.rowNames[i]; name != "" {
					ui.nameInput.SetText(name)
					ui.SetStatus("")
				}
			}),
		)
		btn.GetWidget().Disabled = true
		ui.rows[i] = btn
		list.AddChild(btn)
	}
	return list
}

func (ui *MenuUI) buildButtons(muted bool) *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	container.AddChild(ui.newButton("Play", func() {
		if ui.OnPlay != nil {
			ui.OnPlay(ui.Username())
		}
	}))
	ui.muteButton = ui.newButton(muteLabel(muted), func() {
		if ui.OnMute != nil {
			ui.setMuteLabel(ui.OnMute())
		}
	})
	container.AddChild(ui.muteButton)
	container.AddChild(ui.newButton("Quit", func() {
		if ui.OnQuit != nil {
			ui.OnQuit()
		}
	}))
	return container
}

func (ui *MenuUI) newButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(100, 30)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(cfg.UI.ButtonIdle),
			Hover:   image.NewNineSliceColor(cfg.UI.ButtonHover),
			Pressed: image.NewNineSliceColor(cfg.UI.ButtonPressed),
		}),
		widget.ButtonOpts.Text(label, &ui.normalFace, &widget.ButtonTextColor{
			Idle:    cfg.UI.TextColor,
			Hover:   color.RGBA{220, 240, 255, 255},
			Pressed: color.RGBA{180, 200, 220, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// SetLeaderboard shows the top rows; clicking a row copies its name.
func (ui *MenuUI) SetLeaderboard(results []leaderboard.GameData) {
	for i, btn := range ui.rows {
		label, name := "", ""
		if i < len(results) {
			r := results[i]
			name = r.Username
			label = fmt.Sprintf("%2d.  %-16s  %5d pts  %3d fish", i+1, r.Username, r.Score, r.Count)
		} else if i == 0 {
			label = "No results yet"
		}
		ui.rowNames[i] = name
		if t := btn.Text(); t != nil {
			t.Label = label
		}
		btn.GetWidget().Disabled = name == ""
	}
}

// SetTotals shows the lifetime totals stored for the entered name.
func (ui *MenuUI) SetTotals(result leaderboard.GameData, found bool) {
	if ui.totalsLabel == nil {
		return
	}
	switch {
	case !found || result.Username == "":
		ui.totalsLabel.Label = ""
	default:
		ui.totalsLabel.Label = fmt.Sprintf("%s so far: %d pts, %d fish", result.Username, result.Score, result.Count)
	}
}

func (ui *MenuUI) SetStatus(msg string) {
	if ui.statusLabel != nil {
		ui.statusLabel.Label = msg
	}
}

func (ui *MenuUI) Username() string {
	return ui.nameInput.GetText()
}

func (ui *MenuUI) Update() {
	ui.UI.Update()
}

func (ui *MenuUI) setMuteLabel(muted bool) {
	if t := ui.muteButton.Text(); t != nil {
		t.Label = muteLabel(muted)
	}
}

func muteLabel(muted bool) string {
	if muted {
		return "Sound: off"
	}
	return "Sound: on"
}
