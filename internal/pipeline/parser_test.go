package pipeline

import (
	"strings"
	"testing"
)

func TestParseResponseTitlesAndBullets(t *testing.T) {
	raw := strings.Join([]string{
		"Title 1: Foo",
		"Title 2: Bar",
		"Description:",
		"- item one",
		"- item two",
	}, "\n")

	titles, desc := ParseResponse(raw)

	if titles[1] != "Foo" || titles[2] != "Bar" {
		t.Errorf("titles = %v", titles)
	}
	if _, ok := titles[3]; ok {
		t.Error("slot 3 should be absent, not empty")
	}
	if _, ok := titles[4]; ok {
		t.Error("slot 4 should be absent, not empty")
	}
	if want := "* item one\n* item two"; desc != want {
		t.Errorf("description = %q, want %q", desc, want)
	}
}

func TestParseResponseNoHeaders(t *testing.T) {
	titles, desc := ParseResponse("just some prose\nwith no structure at all")
	if len(titles) != 0 {
		t.Errorf("titles = %v, want empty", titles)
	}
	if desc != "" {
		t.Errorf("description = %q, want empty", desc)
	}
}

func TestParseResponseEmptyInput(t *testing.T) {
	titles, desc := ParseResponse("")
	if len(titles) != 0 || desc != "" {
		t.Errorf("got %v, %q", titles, desc)
	}
}

func TestParseResponseIndentedHeaders(t *testing.T) {
	raw := "   Title 3: Indented title\n\t Description:\n  some text"
	titles, desc := ParseResponse(raw)
	if titles[3] != "Indented title" {
		t.Errorf("titles = %v", titles)
	}
	if desc != "some text" {
		t.Errorf("description = %q", desc)
	}
}

func TestParseResponseDescriptionStopsAtNewHeader(t *testing.T) {
	raw := strings.Join([]string{
		"Description:",
		"first part",
		"Title 1: Late title",
		"this line is after a title, not description",
	}, "\n")

	titles, desc := ParseResponse(raw)
	if titles[1] != "Late title" {
		t.Errorf("titles = %v", titles)
	}
	if desc != "first part" {
		t.Errorf("description = %q", desc)
	}
}

func TestParseResponseBlankDescriptionLinesDropped(t *testing.T) {
	raw := "Description:\nline one\n\n\nline two"
	_, desc := ParseResponse(raw)
	if want := "line one\nline two"; desc != want {
		t.Errorf("description = %q, want %q", desc, want)
	}
}

func TestParseResponseBulletOnlyLeadingMarker(t *testing.T) {
	raw := "Description:\n- soft-touch finish - easy care"
	_, desc := ParseResponse(raw)
	if want := "* soft-touch finish - easy care"; desc != want {
		t.Errorf("description = %q, want %q", desc, want)
	}
}

func TestParseResponseTitleIsSingleLine(t *testing.T) {
	raw := "Title 1: Foo\ncontinuation that must not join the title"
	titles, desc := ParseResponse(raw)
	if titles[1] != "Foo" {
		t.Errorf("titles = %v", titles)
	}
	if desc != "" {
		t.Errorf("stray line leaked into description: %q", desc)
	}
}
