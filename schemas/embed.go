// Package schemas embeds the JSON Schema documents describing the files and
// request bodies exchanged with the roommate matcher.
package schemas

import "embed"

// Schema file names
const (
	PreferenceProfile = "preference_profile.schema.json"
	Candidates        = "candidates.schema.json"
	Onboarding        = "onboarding.schema.json"
	RankedCandidates  = "ranked_candidates.schema.json"
	SwipeLog          = "swipe_log.schema.json"
)

// FS holds every *.schema.json file of this directory.
//
//go:embed *.schema.json
var FS embed.FS

// Names returns all embedded schema file names.
func Names() []string {
	return []string{PreferenceProfile, Candidates, Onboarding, RankedCandidates, SwipeLog}
}
