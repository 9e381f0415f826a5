package main

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"strings"
	"testing"

	"github.com/ArowuTest/teamdesk-backend/internal/ladder"
	"github.com/fatih/color"
)

func init() {
	color.NoColor = true
}

func TestSimulate(t *testing.T) {
	rep, err := simulate(rand.New(rand.NewSource(3)), 5, 200, 4)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if rep.Rungs.Samples != 200 {
		t.Fatalf("samples = %d, want 200", rep.Rungs.Samples)
	}
	if rep.Rungs.Max > 5*ladder.DefaultRungsPerLine || rep.Rungs.Min < 0 {
		t.Fatalf("rung range %d..%d out of bounds", rep.Rungs.Min, rep.Rungs.Max)
	}
	if rep.Crossings.Samples != 200*5 {
		t.Fatalf("crossing samples = %d, want 1000", rep.Crossings.Samples)
	}
	if rep.Bijective != 200 {
		t.Fatalf("bijective boards = %d, want 200", rep.Bijective)
	}
}

func TestSimulateIndependentOfWorkers(t *testing.T) {
	one, err := simulate(rand.New(rand.NewSource(17)), 7, 120, 1)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	many, err := simulate(rand.New(rand.NewSource(17)), 7, 120, 8)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if one.Rungs != many.Rungs || one.Crossings != many.Crossings || one.Bijective != many.Bijective {
		t.Fatalf("reports differ: %+v vs %+v", one, many)
	}
}

func TestSimulateRejectsSingleParticipant(t *testing.T) {
	if _, err := simulate(rand.New(rand.NewSource(1)), 1, 10, 2); err == nil {
		t.Fatalf("expected error for one participant")
	}
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("ENV_FILE", "")
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	out, err := runCmd(t, "--participants", "4", "--runs", "50", "--seed", "9")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, want := range []string{"participants:    4", "boards:          50", "bijective:       100.00%"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRootCommandJSON(t *testing.T) {
	out, err := runCmd(t, "--participants", "3", "--runs", "20", "--seed", "2", "--json")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	var s reportSummary
	if err := json.Unmarshal([]byte(out), &s); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if s.Participants != 3 || s.Boards != 20 || s.BijectiveRate != 1 {
		t.Fatalf("unexpected summary: %+v", s)
	}
}

func TestRootCommandRejectsBadRuns(t *testing.T) {
	if _, err := runCmd(t, "--runs", "0"); err == nil {
		t.Fatalf("expected error for zero runs")
	}
}

func TestBoardCommand(t *testing.T) {
	out, err := runCmd(t, "board", "--participants", "3", "--seed", "4")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "board: 3 lines") {
		t.Fatalf("missing board header:\n%s", out)
	}
	for _, want := range []string{"line 0 -> ", "line 1 -> ", "line 2 -> "} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}
