package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
)

func TestGetSimpleText(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("hello world\n"))
	var out bytes.Buffer
	got, err := GetSimpleText(in, "Name?", &out)
	if err != nil || got != "hello world" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetSimpleTextEOF(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("lastline"))
	var out bytes.Buffer
	got, err := GetSimpleText(in, "Name?", &out)
	if err != nil || got != "lastline" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetTextWithDefault(t *testing.T) {
	tests := []struct {
		name  string
		input string
		def   string
		want  string
	}{
		{"empty line takes default", "\n", "sunset", "sunset"},
		{"input overrides default", "dawn\n", "sunset", "dawn"},
		{"no default, empty line", "\n", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := bufio.NewReader(strings.NewReader(tc.input))
			var out bytes.Buffer
			got, err := GetTextWithDefault(in, "Title", tc.def, &out)
			if err != nil || got != tc.want {
				t.Fatalf("got %q, err=%v", got, err)
			}
		})
	}
}

func TestGetTextWithDefault_ShowsDefaultInPrompt(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("\n"))
	var out bytes.Buffer
	_, err := GetTextWithDefault(in, "Title", "sunset", &out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "[sunset]") {
		t.Fatalf("prompt missing default: %q", out.String())
	}
}

func TestGetMultiline_DoubleEnter(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("a\nb\n\n\n"))
	var out bytes.Buffer
	got, err := GetMultiline(in, "Enter text", &out)
	if err != nil {
		t.Fatal(err)
	}
	want := "a\nb"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
