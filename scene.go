package main

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"priests-devils/game"
	"priests-devils/river"
)

const (
	sceneWidth  = 800
	sceneHeight = 300

	groundTop   = 220
	riverLeft   = 300
	riverRight  = 500
	boatTop     = 180
	boatWidth   = 80
	boatHeight  = 40
	figureSize  = 20
	figureGap   = 30
	priestRowY  = 160
	devilRowY   = 190
	leftBankX   = 20
	rightBankX  = 760
	passengerY  = 150
	passengerX0 = 10

	colorSkyHex    = "#bae6fd"
	colorGroundHex = "#16a34a"
	colorRiverHex  = "#1d4ed8"
	colorBoatHex   = "#111827"
	colorPriestHex = "#ffffff"
	colorDevilHex  = "#dc2626"
)

// tapArea is a transparent widget that reports taps, laid over the boat so
// clicking it sets sail.
type tapArea struct {
	widget.BaseWidget
	onTap func()
}

func newTapArea(onTap func()) *tapArea {
	t := &tapArea{onTap: onTap}
	t.ExtendBaseWidget(t)
	return t
}
func (t *tapArea) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(color.NRGBA{0, 0, 0, 0})
	return widget.NewSimpleRenderer(rect)
}
func (t *tapArea) Tapped(*fyne.PointEvent) {
	if t.onTap != nil {
		t.onTap()
	}
}
func (t *tapArea) TappedSecondary(*fyne.PointEvent) {}
func (t *tapArea) MinSize() fyne.Size               { return fyne.NewSize(boatWidth, boatHeight) }

type scene struct {
	view    fyne.CanvasObject
	drawing *fyne.Container
	boatTap *tapArea
}

func newScene(onBoatTap func()) *scene {
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(sceneWidth, sceneHeight))
	s := &scene{
		drawing: container.NewWithoutLayout(),
		boatTap: newTapArea(onBoatTap),
	}
	s.view = container.NewMax(spacer, s.drawing)
	s.boatTap.Resize(fyne.NewSize(boatWidth, boatHeight))
	return s
}

func place(o fyne.CanvasObject, x, y, w, h float32) fyne.CanvasObject {
	o.Move(fyne.NewPos(x, y))
	o.Resize(fyne.NewSize(w, h))
	return o
}

func figure(k river.Kind, x, y float32) fyne.CanvasObject {
	fill := mustHex(colorPriestHex)
	if k == river.Devil {
		fill = mustHex(colorDevilHex)
	}
	c := canvas.NewCircle(fill)
	c.StrokeColor = color.Black
	c.StrokeWidth = 1
	return place(c, x, y, figureSize, figureSize)
}

// paint redraws the banks, the boat and its passengers. Left-bank figures
// grow rightwards from the edge, right-bank figures leftwards.
func (s *scene) paint(session *game.Session) {
	p, passengers := session.Position(), session.Passengers()
	objects := []fyne.CanvasObject{
		place(canvas.NewRectangle(mustHex(colorSkyHex)), 0, 0, sceneWidth, sceneHeight),
		place(canvas.NewRectangle(mustHex(colorGroundHex)), 0, groundTop, sceneWidth, sceneHeight-groundTop),
		place(canvas.NewRectangle(mustHex(colorRiverHex)), riverLeft, groundTop-20, riverRight-riverLeft, sceneHeight-groundTop+20),
	}

	boatX := float32(riverLeft)
	if p.Boat == river.Right {
		boatX = riverRight - boatWidth
	}
	objects = append(objects, place(canvas.NewRectangle(mustHex(colorBoatHex)), boatX, boatTop, boatWidth, boatHeight))
	for i, k := range passengers {
		objects = append(objects, figure(k, boatX+passengerX0+float32(i*figureGap), passengerY))
	}

	for _, row := range []struct {
		kind river.Kind
		y    float32
	}{{river.Priest, priestRowY}, {river.Devil, devilRowY}} {
		for i := 0; i < session.Idle(row.kind, river.Left); i++ {
			objects = append(objects, figure(row.kind, float32(leftBankX+i*figureGap), row.y))
		}
		for i := 0; i < session.Idle(row.kind, river.Right); i++ {
			objects = append(objects, figure(row.kind, float32(rightBankX-i*figureGap), row.y))
		}
	}

	s.boatTap.Move(fyne.NewPos(boatX, boatTop))
	objects = append(objects, s.boatTap)

	s.drawing.Objects = objects
	s.drawing.Refresh()
}
