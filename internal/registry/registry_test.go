package registry

import (
	"testing"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterCreateList(t *testing.T) {
	Register("zz_stub", func() Game { return &stubGame{id: "zz_stub"} })
	Register("aa_stub", func() Game { return &stubGame{id: "aa_stub"} })

	if !Exists("zz_stub") || Exists("nope") {
		t.Fatal("Exists() reports wrong registrations")
	}

	g, err := Create("aa_stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "aa_stub" {
		t.Errorf("created game ID = %q", g.ID())
	}
	if _, err := Create("nope"); err == nil {
		t.Error("Create() of unknown game should fail")
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Fatalf("List() not sorted: %v", list)
		}
	}
	if Title("aa_stub") != "Stub aa_stub" || Title("nope") != "nope" {
		t.Error("Title() returned unexpected values")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup_stub", func() Game { return &stubGame{id: "dup_stub"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("dup_stub", func() Game { return &stubGame{id: "dup_stub"} })
}
