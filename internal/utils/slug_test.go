package utils

import "testing"

func TestSlugifyBasic(t *testing.T) {
	if got := Slugify("Hello World"); got != "hello-world" {
		t.Fatalf("expected hello-world, got %q", got)
	}
}

func TestSlugifyStripsPunctuation(t *testing.T) {
	if got := Slugify("What's New, Today?"); got != "whats-new-today" {
		t.Fatalf("unexpected slug: %q", got)
	}
}

func TestSlugifyAmpersand(t *testing.T) {
	if got := Slugify("Law & Order"); got != "law-and-order" {
		t.Fatalf("unexpected slug: %q", got)
	}
}

func TestSlugifyDeterministic(t *testing.T) {
	a := Slugify("Estate Planning 101")
	b := Slugify("Estate Planning 101")
	if a != b {
		t.Fatalf("expected identical slugs, got %q and %q", a, b)
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	once := Slugify("Ten / Common — Mistakes")
	twice := Slugify(once)
	if once != twice {
		t.Fatalf("expected idempotent slug, got %q then %q", once, twice)
	}
}

func TestSlugifyTrimsDashes(t *testing.T) {
	if got := Slugify("  --Spaced Out--  "); got != "spaced-out" {
		t.Fatalf("unexpected slug: %q", got)
	}
}
