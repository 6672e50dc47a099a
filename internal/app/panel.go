package app

import (
	"skyplayer/internal/player"
	"skyplayer/internal/playlist"
)

// panelState is what the now-playing panel shows for one frame.
type panelState struct {
	Track    playlist.Track
	HasTrack bool
	Playing  bool
}

// panelFor shows the active track whether or not its audio is loaded.
func panelFor(list *playlist.Playlist, tr *player.Transport) panelState {
	track, ok := list.ActiveTrack()
	return panelState{
		Track:    track,
		HasTrack: ok,
		Playing:  tr.Status() == player.Playing,
	}
}
