package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-life/internal/storage"
)

func TestRunBoardsShowsLongestRuns(t *testing.T) {
	oldDB, oldTop := flagDBPath, flagTop
	t.Cleanup(func() {
		flagDBPath, flagTop = oldDB, oldTop
		boardsCmd.SetOut(nil)
	})
	flagDBPath = filepath.Join(t.TempDir(), "life.db")
	flagTop = 2

	store, err := storage.Open(flagDBPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	for _, gens := range []int{40, 700, 125} {
		if _, err := store.RecordRun(storage.Run{Cols: 80, Rows: 50, Generations: gens, PeakPopulation: 90, FinalPopulation: 12, Wrap: true}); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}
	store.Close()

	var buf bytes.Buffer
	boardsCmd.SetOut(&buf)
	if err := runBoards(boardsCmd, nil); err != nil {
		t.Fatalf("runBoards() failed: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "No saved boards yet.") {
		t.Errorf("output should note the empty board list:\n%s", out)
	}
	if !strings.Contains(out, "Runs: 3") {
		t.Errorf("output should summarize three runs:\n%s", out)
	}
	idx := strings.Index(out, "Longest runs:")
	if idx < 0 {
		t.Fatalf("output should list the longest runs:\n%s", out)
	}
	table := out[idx:]
	first, second := strings.Index(table, "700"), strings.Index(table, "125")
	if first < 0 || second < 0 || first > second {
		t.Errorf("longest runs should be ordered 700 then 125:\n%s", table)
	}
	if strings.Contains(table, " 40 ") {
		t.Errorf("--top 2 should drop the shortest run:\n%s", table)
	}
}

func TestRunBoardsTopZeroHidesRuns(t *testing.T) {
	oldDB, oldTop := flagDBPath, flagTop
	t.Cleanup(func() {
		flagDBPath, flagTop = oldDB, oldTop
		boardsCmd.SetOut(nil)
	})
	flagDBPath = filepath.Join(t.TempDir(), "life.db")
	flagTop = 0

	store, err := storage.Open(flagDBPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.RecordRun(storage.Run{Cols: 10, Rows: 10, Generations: 5}); err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}
	store.Close()

	var buf bytes.Buffer
	boardsCmd.SetOut(&buf)
	if err := runBoards(boardsCmd, nil); err != nil {
		t.Fatalf("runBoards() failed: %v", err)
	}
	if strings.Contains(buf.String(), "Longest runs:") {
		t.Errorf("--top 0 should hide the longest runs:\n%s", buf.String())
	}
}
