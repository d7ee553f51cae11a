package models

import "testing"

func TestNewMaterial(t *testing.T) {
	headers := []string{"Name", "Tier", "Durability"}

	m := NewMaterial(1, headers, []string{"Iron", "2", "250"})
	if m.Name() != "Iron" {
		t.Errorf("Expected 'Iron', got %q", m.Name())
	}
	if m.Get("Tier") != "2" {
		t.Errorf("Expected '2', got %q", m.Get("Tier"))
	}
	if m.Get("Missing") != "" {
		t.Errorf("Expected empty value for missing column, got %q", m.Get("Missing"))
	}
	if m.Has("Missing") {
		t.Error("Missing column should not exist")
	}
}

func TestNewMaterialShortFields(t *testing.T) {
	headers := []string{"Name", "Tier", "Durability"}

	m := NewMaterial(2, headers, []string{"Bone"})
	if m.Get("Tier") != "" || m.Get("Durability") != "" {
		t.Error("Missing trailing fields should read as empty")
	}
	if !m.Has("Tier") {
		t.Error("Padded column should exist on the material")
	}
}

func TestNewMaterialExtraFields(t *testing.T) {
	headers := []string{"Name"}

	m := NewMaterial(3, headers, []string{"Iron", "stray"})
	if !m.Has("Name") || m.Has("stray") {
		t.Error("Fields beyond the header should be dropped")
	}
}

func TestDumpHasColumn(t *testing.T) {
	d := &Dump{Headers: []string{"Name", "Tier"}}
	if !d.HasColumn("Tier") {
		t.Error("Expected Tier to exist")
	}
	if d.HasColumn("Durability") {
		t.Error("Did not expect Durability")
	}
}
