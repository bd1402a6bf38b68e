package player

import (
	"testing"
)

func TestResolveRankingOrder(t *testing.T) {
	// Snapshot order is collaborator-defined; resolution must impose
	// ranking order regardless.
	matches := Resolve(Ranking(), snapshot(
		&fakePlayer{identity: "chrome"},
		&fakePlayer{identity: "Spotify"},
		&fakePlayer{identity: "mpv"},
	))

	var got []string
	for _, m := range matches {
		got = append(got, m.Ranked.String())
	}

	expected := []string{"mpv", "Spotify", "chrome"}
	if len(got) != len(expected) {
		t.Fatalf("got %d matches %v, expected %v", len(got), got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("match %d = %q, expected %q", i, got[i], expected[i])
		}
	}
}

func TestResolveExcludesUnrankedPlayers(t *testing.T) {
	matches := Resolve(Ranking(), snapshot(
		&fakePlayer{identity: "Lollypop"},
		&fakePlayer{identity: "vlc"},
	))

	if len(matches) != 1 || matches[0].Player.Identity() != "vlc" {
		t.Errorf("got %d matches, expected just vlc", len(matches))
	}
}

func TestResolveIsCaseSensitive(t *testing.T) {
	// The Spotify identity is capitalized on the bus; a lowercase
	// variant is a different player.
	matches := Resolve(Ranking(), snapshot(&fakePlayer{identity: "spotify"}))
	if len(matches) != 0 {
		t.Errorf("got %d matches for %q, expected 0", len(matches), "spotify")
	}
}

func TestResolveDuplicateIdentities(t *testing.T) {
	a := &fakePlayer{identity: "mpv"}
	b := &fakePlayer{identity: "mpv"}

	matches := Resolve(Ranking(), snapshot(a, b))
	if len(matches) != 2 {
		t.Fatalf("got %d matches, expected 2", len(matches))
	}
	if matches[0].Player != RunningPlayer(a) || matches[1].Player != RunningPlayer(b) {
		t.Error("duplicate identities must each produce a match, in snapshot order")
	}
}

func TestResolveEmptySnapshot(t *testing.T) {
	if matches := Resolve(Ranking(), nil); len(matches) != 0 {
		t.Errorf("got %d matches from an empty snapshot, expected 0", len(matches))
	}
}
