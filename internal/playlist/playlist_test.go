package playlist

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func names(p *Playlist) string {
	s := ""
	for _, t := range p.Tracks() {
		s += t.TrackName
	}
	return s
}

func abc() []Track {
	return []Track{
		{TrackName: "A", AudioFile: "/audio/a.mp3"},
		{TrackName: "B", AudioFile: "/audio/b.mp3"},
		{TrackName: "C", AudioFile: "/audio/c.mp3"},
	}
}

func TestMoveOtherTrackPastActive(t *testing.T) {
	p := New(abc())
	if err := p.SetActive(2); err != nil {
		t.Fatal(err)
	}
	if err := p.Move(0, 2); err != nil {
		t.Fatal(err)
	}
	if got := names(p); got != "BCA" {
		t.Fatalf("order = %s, want BCA", got)
	}
	if p.Active() != 1 {
		t.Fatalf("active = %d, want 1", p.Active())
	}
	if tr, _ := p.ActiveTrack(); tr.TrackName != "C" {
		t.Fatalf("active track = %s, want C", tr.TrackName)
	}
}

func TestMoveTrackAboveActive(t *testing.T) {
	p := New(abc())
	if err := p.Move(2, 0); err != nil {
		t.Fatal(err)
	}
	if got := names(p); got != "CAB" {
		t.Fatalf("order = %s, want CAB", got)
	}
	if p.Active() != 1 {
		t.Fatalf("active = %d, want 1", p.Active())
	}
}

func TestMoveActiveTrackFollows(t *testing.T) {
	p := New(abc())
	if err := p.Move(0, 2); err != nil {
		t.Fatal(err)
	}
	if p.Active() != 2 {
		t.Fatalf("active = %d, want 2", p.Active())
	}
	if tr, _ := p.ActiveTrack(); tr.TrackName != "A" {
		t.Fatalf("active track = %s, want A", tr.TrackName)
	}
}

func TestMoveKeepsActiveTrackIdentity(t *testing.T) {
	tracks := []Track{{TrackName: "A"}, {TrackName: "B"}, {TrackName: "C"}, {TrackName: "D"}, {TrackName: "E"}}
	for active := range tracks {
		for from := range tracks {
			for to := range tracks {
				p := New(tracks)
				_ = p.SetActive(active)
				want, _ := p.ActiveTrack()
				if err := p.Move(from, to); err != nil {
					t.Fatal(err)
				}
				got, _ := p.ActiveTrack()
				if got != want {
					t.Fatalf("active=%d move %d->%d: active track %s, want %s", active, from, to, got.TrackName, want.TrackName)
				}
			}
		}
	}
}

func TestMoveOutOfRange(t *testing.T) {
	p := New(abc())
	if err := p.Move(-1, 0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("Move(-1,0) err = %v", err)
	}
	if err := p.Move(0, 3); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("Move(0,3) err = %v", err)
	}
	if got := names(p); got != "ABC" {
		t.Fatalf("order changed on failed move: %s", got)
	}
}

func TestReplaceKeepsActiveByFile(t *testing.T) {
	p := New(abc())
	_ = p.SetActive(1)
	p.Replace([]Track{
		{TrackName: "Z", AudioFile: "/audio/z.mp3"},
		{TrackName: "C", AudioFile: "/audio/c.mp3"},
		{TrackName: "B", AudioFile: "/audio/b.mp3"},
	})
	if p.Active() != 2 {
		t.Fatalf("active = %d, want 2", p.Active())
	}

	p.Replace([]Track{{TrackName: "Q", AudioFile: "/audio/q.mp3"}})
	if p.Active() != 0 {
		t.Fatalf("active after clamp = %d, want 0", p.Active())
	}

	p.Replace(nil)
	if p.Active() != -1 {
		t.Fatalf("active on empty = %d, want -1", p.Active())
	}
	if _, ok := p.ActiveTrack(); ok {
		t.Fatal("empty playlist reported an active track")
	}
}

func TestYearLabel(t *testing.T) {
	if got := (Track{}).YearLabel(); got != "Unknown Year" {
		t.Fatalf("YearLabel() = %q", got)
	}
	if got := (Track{Year: 2021}).YearLabel(); got != "2021" {
		t.Fatalf("YearLabel() = %q", got)
	}
}

func TestTrackJSONYear(t *testing.T) {
	unknown, err := json.Marshal(Track{TrackName: "A", AudioFile: "/audio/a.wav"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(unknown), `"year":"Unknown Year"`) {
		t.Fatalf("missing year should be written as a label: %s", unknown)
	}
	if !strings.Contains(string(unknown), `"trackName":"A"`) || !strings.Contains(string(unknown), `"audioFile":"/audio/a.wav"`) {
		t.Fatalf("other fields lost: %s", unknown)
	}

	known, err := json.Marshal(Track{Year: 1999})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(known), `"year":1999`) {
		t.Fatalf("known year should be a number: %s", known)
	}

	var back Track
	if err := json.Unmarshal(known, &back); err != nil || back.Year != 1999 {
		t.Fatalf("round trip of numeric year: %+v, %v", back, err)
	}
	back = Track{Year: 5}
	if err := json.Unmarshal(unknown, &back); err != nil {
		t.Fatal(err)
	}
	if back.Year != 0 || back.TrackName != "A" || back.AudioFile != "/audio/a.wav" {
		t.Fatalf("round trip of unknown year: %+v", back)
	}
}
