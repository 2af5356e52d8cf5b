// Package prompt drives the interactive questions asked by blitgen init.
//
// Driver hides the terminal library so the wizard can be exercised with a
// Scripted driver in tests.
package prompt
