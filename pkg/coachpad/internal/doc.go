// Package internal contains the core infrastructure for the coachpad app:
// SDL initialization, window and font management, input processing, the icon
// cache, and the hardware back-button watcher. Types and functions in this
// package are not part of the public API.
package internal

import _ "github.com/BrandonKowalski/certifiable" // Add CA certificates to the default trust store
