// Package audio plays short tones when a search finishes.
//
// Cues are plain beep.Streamers (FoundCue, NotFoundCue) so they can be
// sampled and checked without an audio device. Player owns the speaker and a
// mixer; every method is a no-op until Init succeeds, which keeps sound
// strictly optional for the host.
package audio
