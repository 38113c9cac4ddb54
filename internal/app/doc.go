// Package app contains the checker's application logic. It defines the App
// struct, its configuration, and the check lifecycle that loads node
// parameter documents and builds nodes from them, decoupled from any specific
// entrypoint like a CLI.
package app
