// Package app drives an Application once per frame.
//
// An Application receives the input snapshot twice per frame, first in
// Input for discrete reactions (toggles, one-shot actions) and then in
// Update for continuous simulation, and draws with a gg.Context. A Loop
// owns the window or replay source and calls into a Driver:
//
//	events -> Input -> Update -> Cache.PreUpdate -> Draw
//
// Two loops are provided: HeadlessLoop in this package replays scripted
// events against a manual clock and renders the last frame to an image,
// and window.Loop in app/window hosts the application in a gogpu window.
package app
