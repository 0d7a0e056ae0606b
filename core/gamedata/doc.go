// Package gamedata locates the inputs of an extraction run: the version file
// and the XML files below the configured gamedata directories.
package gamedata
