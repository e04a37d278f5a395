package main

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wippyai/cellophane"
)

var testBindings = []cellophane.Binding{
	{Kind: "FreeWrapper", Library: "libc", Function: "free"},
	{Kind: "LocalFreeWrapper", Library: "kernel32.dll", Function: "LocalFree",
		Probe: func() error { return stderrors.New("not windows") }},
	{Kind: "CatalogWrapper", Library: "wintrust.dll", Function: "CryptCATAdminReleaseCatalogContext",
		Context: "CryptCATAdminReleaseContextWrapper"},
}

func TestPrintBindings_Plain(t *testing.T) {
	var buf bytes.Buffer
	printBindings(&buf, testBindings, false)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header and 3 rows, got %d lines:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "KIND") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[3], "CryptCATAdminReleaseContextWrapper") {
		t.Errorf("context column missing: %q", lines[3])
	}
	if strings.Contains(buf.String(), "\x1b[") {
		t.Error("plain output should not contain escape sequences")
	}
}

func TestPrintBindings_Empty(t *testing.T) {
	var buf bytes.Buffer
	printBindings(&buf, nil, false)
	if !strings.Contains(buf.String(), "No wrapper kinds") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestProbeBindings(t *testing.T) {
	var buf bytes.Buffer
	failed := probeBindings(&buf, testBindings, false)
	if failed != 1 {
		t.Fatalf("failed = %d, want 1", failed)
	}
	out := buf.String()
	if !strings.Contains(out, "FAIL LocalFreeWrapper: kernel32.dll!LocalFree: not windows") {
		t.Errorf("missing failure line:\n%s", out)
	}
	if !strings.Contains(out, "ok   FreeWrapper: libc!free") {
		t.Errorf("missing success line:\n%s", out)
	}
}

func TestInteractiveModel_Filter(t *testing.T) {
	m := newInteractiveModel(testBindings)
	if len(m.visible) != 3 {
		t.Fatalf("visible = %d, want 3", len(m.visible))
	}

	m.filter.SetValue("WINTRUST")
	m.applyFilter()
	if len(m.visible) != 1 || m.visible[0].Kind != "CatalogWrapper" {
		t.Fatalf("filter by library: %+v", m.visible)
	}

	m.filter.SetValue("nothing matches")
	m.applyFilter()
	if _, ok := m.current(); ok {
		t.Fatal("no binding should be selected")
	}
	if !strings.Contains(m.View(), "No matching kinds.") {
		t.Error("view should report an empty result")
	}
}

func TestInteractiveModel_Probe(t *testing.T) {
	m := newInteractiveModel(testBindings)
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.selected != 1 {
		t.Fatalf("selected = %d after down", m.selected)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should return a probe command")
	}
	m.Update(cmd())

	err, ok := m.probes["LocalFreeWrapper"]
	if !ok || err == nil {
		t.Fatalf("probe result not recorded: %v, %v", err, ok)
	}
	if !strings.Contains(m.View(), "unresolved: not windows") {
		t.Error("detail pane should show the probe failure")
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc with an empty filter should quit")
	}
}
