// Package narrator provides the canned dungeon-master voice: embedded
// response pools keyed by command category, with a weighted random pick.
package narrator

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
