package systems

import (
	"testing"

	"github.com/automoto/playmates/components"
	cfg "github.com/automoto/playmates/config"
	"github.com/automoto/playmates/shared/gamemath"
	"github.com/automoto/playmates/systems/factory"
	"github.com/automoto/playmates/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newGarden(t *testing.T) *ecs.ECS {
	t.Helper()
	grab := cfg.Net.GrabCursor
	cfg.Net.GrabCursor = false
	t.Cleanup(func() { cfg.Net.GrabCursor = grab })

	SetViewport(1280, 720)
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 4096, 4096)
	factory.CreateNet(e, Viewport(), func() { OnCatch(e) })
	factory.CreateCage(e, Viewport())
	return e
}

func TestTapOnNetOverCageKeepsCageClosed(t *testing.T) {
	e := newGarden(t)
	cage, ok := CageRect(e)
	if !ok {
		t.Fatal("no cage")
	}
	entry, _ := tags.Net.First(e.World)
	net := components.Net.Get(entry)
	// Park the net on top of the cage.
	c := cage.Center()
	net.Position = gamemath.Point{X: c.X - net.Size.W/2, Y: c.Y - net.Size.H/2}

	s := GetOrCreateSession(e)
	s.Spawned()
	s.Catch()
	caught := s.Caught

	p := &getOrCreateInput(e).Pointer
	p.BeginFrame()
	p.Press(cage.Center())
	UpdateNet(e)
	if !net.Dragging {
		t.Fatal("press on the net should grab it")
	}

	p.BeginFrame()
	p.Release()
	UpdateNet(e)
	UpdateRelease(e)

	if net.Dragging {
		t.Error("release should drop the net")
	}
	if s.Caught != caught {
		t.Errorf("caught = %d, want %d: the tap opened the cage", s.Caught, caught)
	}
	if Clicked(p, cage) {
		t.Error("claimed tap reported as a cage click")
	}
}

func TestTapBesideNetStillClicksCage(t *testing.T) {
	e := newGarden(t)
	cage, _ := CageRect(e)

	p := &getOrCreateInput(e).Pointer
	p.BeginFrame()
	p.Press(cage.Center())
	UpdateNet(e)
	p.BeginFrame()
	p.Release()
	UpdateNet(e)

	if !Clicked(p, cage) {
		t.Error("tap on the bare cage should count as a click")
	}
}
