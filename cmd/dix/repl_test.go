package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestComplete(t *testing.T) {
	for code, expected := range map[string]bool{
		"num x;":                       true,
		"x = 1":                        false,
		"if (1 < 2) {":                 false,
		"while (i < 3) { i = i + 1;":   false,
		"while (i < 3) { i = i + 1; }": true,
		"x = (1 + 2;":                  true,
		"}":                            true,
		"x = 1 {":                      true,
		"x = 1 {\nx = 2; }":            true,
		"num x;\nx = x +":              false,
	} {
		if got := complete(code); got != expected {
			t.Fatalf("%q: got %v", code, got)
		}
	}
}

func TestSources(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.dix")
	if err := os.WriteFile(path, []byte("x = 1;"), 0644); err != nil {
		t.Fatal(err)
	}
	var names []string
	for src, err := range sources([]string{"num a;", "num b;"}, []string{path, path + ".missing"}) {
		if err != nil {
			names = append(names, "error")
			break
		}
		names = append(names, src.Name)
	}
	if strings.Join(names, ",") != "-e#1,-e#2,"+path+",error" {
		t.Fatalf("got %v", names)
	}
}

func TestLoadSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.dix")
	if err := os.WriteFile(path, []byte("num x;\nx = 5;\n"), 0644); err != nil {
		t.Fatal(err)
	}
	src, err := loadSource(path)
	if err != nil {
		t.Fatal(err)
	}
	if src.Name != path || len(src.Lines) != 3 {
		t.Fatalf("got %+v", src)
	}
	if _, err := loadSource(filepath.Join(t.TempDir(), "none.dix")); err == nil {
		t.Fatal("should error")
	}
}
