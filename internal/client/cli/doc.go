// Package cli provides the interactive VidTube terminal client.
//
// The REPL is the view layer: it reads commands, validates form input locally
// and hands sign-in, sign-up and sign-out to the session Manager. Profile and
// video commands go straight to the Gateway with the session's credential.
// The prompt follows the session through a subscription, so it changes as
// soon as a login or logout is published.
//
// Start it with App.Run, which blocks until the user exits or input ends.
package cli
