// Package internal contains the shared infrastructure for the navigator packages.
// This includes logging, theming, localized engine messages and hardware back key input.
// Types and functions in this package are not part of the public API.
package internal
