package chess

import (
	"errors"
	"testing"
)

func buildGame(moves ...*Move) *Game {
	g := NewGame()
	for _, m := range moves {
		g.AppendMove(m)
	}
	return g
}

func TestGame_AppendMove(t *testing.T) {
	first := &Move{Number: 1, Side: White}
	second := &Move{Number: 1, Side: Black}
	g := buildGame(first, second)

	if g.Moves != first || first.Next != second || second.Prev != first {
		t.Fatal("AppendMove did not link moves in order")
	}
	if g.PlyCount() != 2 {
		t.Errorf("PlyCount() = %d, want 2", g.PlyCount())
	}
	if g.LastMove() != second {
		t.Errorf("LastMove() = %+v, want second move", g.LastMove())
	}
	if NewGame().LastMove() != nil {
		t.Error("LastMove() of empty game should be nil")
	}
}

func TestGame_Result(t *testing.T) {
	g := NewGame()
	if g.Result() != "" {
		t.Errorf("Result() = %q, want empty", g.Result())
	}
	g.TerminatingResult = "1-0"
	if g.Result() != "1-0" {
		t.Errorf("Result() = %q, want 1-0", g.Result())
	}
	g.SetTag("Result", "0-1")
	if g.Result() != "0-1" {
		t.Errorf("Result() = %q, tag should win", g.Result())
	}
}

func TestGame_Failures(t *testing.T) {
	bad := &Move{Number: 1, Side: Black, Err: errors.New("unparsable token")}
	g := buildGame(&Move{Number: 1, Side: White}, bad, &Move{Number: 2, Side: White})

	failed := g.Failures()
	if len(failed) != 1 || failed[0] != bad {
		t.Errorf("Failures() = %v, want only the black move", failed)
	}
}

func TestMove_NumberLabel(t *testing.T) {
	w1 := &Move{Number: 1, Side: White}
	b1 := &Move{Number: 1, Side: Black}
	b2 := &Move{Number: 2, Side: Black}
	w3 := &Move{Number: 3, Side: White, Label: "3."}
	b3 := &Move{Number: 3, Side: Black, Label: "3..."}
	buildGame(w1, b1, b2, w3, b3)

	tests := []struct {
		name string
		move *Move
		want string
	}{
		{"white", w1, "1."},
		{"black after white", b1, ""},
		{"black without white", b2, "2..."},
		{"label kept", w3, "3."},
		{"black label kept", b3, "3..."},
	}
	for _, tt := range tests {
		if got := tt.move.NumberLabel(); got != tt.want {
			t.Errorf("%s: NumberLabel() = %q, want %q", tt.name, got, tt.want)
		}
	}

	lone := &Move{Number: 1, Side: Black}
	if got := lone.NumberLabel(); got != "1..." {
		t.Errorf("lone black NumberLabel() = %q, want 1...", got)
	}
}

func TestIsResult(t *testing.T) {
	for _, r := range []string{"1-0", "0-1", "1/2-1/2", "*"} {
		if !IsResult(r) {
			t.Errorf("IsResult(%q) = false", r)
		}
	}
	for _, s := range []string{"", "1-1", "O-O", "P-K4"} {
		if IsResult(s) {
			t.Errorf("IsResult(%q) = true", s)
		}
	}
}
